// Package stats holds the mutable aggregate populated by one analysis pass.
//
// All collections preserve insertion order so the report iterates charms,
// severities and messages in first-seen order.
package stats

import "github.com/charmkit/logstats/internal/model"

// MessageKey identifies a duplicate-detection bucket: the exact message
// text combined with its resolved severity.
type MessageKey struct {
	Message  string
	Severity model.Severity
}

// MessageCount is one (message, severity) bucket and its occurrence count.
type MessageCount struct {
	Key   MessageKey
	Count int
}

// CharmCounts accumulates per-severity counts for a single charm.
type CharmCounts struct {
	Name string

	order  []model.Severity
	counts map[model.Severity]int
}

func newCharmCounts(name string) *CharmCounts {
	return &CharmCounts{
		Name:   name,
		counts: make(map[model.Severity]int),
	}
}

func (c *CharmCounts) add(sev model.Severity) {
	if _, ok := c.counts[sev]; !ok {
		c.order = append(c.order, sev)
	}
	c.counts[sev]++
}

// Severities returns the severities seen for this charm in first-seen order.
func (c *CharmCounts) Severities() []model.Severity { return c.order }

// Count returns the number of records seen for sev, zero if none.
func (c *CharmCounts) Count(sev model.Severity) int { return c.counts[sev] }

// Has reports whether at least one record with sev was counted.
func (c *CharmCounts) Has(sev model.Severity) bool {
	_, ok := c.counts[sev]
	return ok
}

// Total returns the sum of counts across all severities for this charm.
// It is at least 1 whenever the charm exists in the store.
func (c *CharmCounts) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Store is the statistics aggregate for one analysis run. It is created
// empty, mutated by the cleaner (dropped counter) and the analyzer
// (severity and message counts), then read-only during reporting.
type Store struct {
	charmOrder []string
	charms     map[string]*CharmCounts

	msgOrder  []MessageKey
	msgCounts map[MessageKey]int

	dropped int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		charms:    make(map[string]*CharmCounts),
		msgCounts: make(map[MessageKey]int),
	}
}

// AddRecord counts one analyzed record against its charm and its
// (message, severity) bucket, creating entries on first use.
func (s *Store) AddRecord(charm string, sev model.Severity, message string) {
	cc, ok := s.charms[charm]
	if !ok {
		cc = newCharmCounts(charm)
		s.charms[charm] = cc
		s.charmOrder = append(s.charmOrder, charm)
	}
	cc.add(sev)

	key := MessageKey{Message: message, Severity: sev}
	if _, ok := s.msgCounts[key]; !ok {
		s.msgOrder = append(s.msgOrder, key)
	}
	s.msgCounts[key]++
}

// IncDropped tallies one input line rejected by the cleaner. Records the
// analyzer skips (charm filter, unresolvable severity) are never tallied
// here; that asymmetry is part of the reported totals.
func (s *Store) IncDropped() { s.dropped++ }

// Dropped returns the number of lines rejected by the cleaner.
func (s *Store) Dropped() int { return s.dropped }

// Charms returns per-charm counts in charm first-seen order.
func (s *Store) Charms() []*CharmCounts {
	out := make([]*CharmCounts, 0, len(s.charmOrder))
	for _, name := range s.charmOrder {
		out = append(out, s.charms[name])
	}
	return out
}

// Messages returns every (message, severity) bucket in first-seen order.
func (s *Store) Messages() []MessageCount {
	out := make([]MessageCount, 0, len(s.msgOrder))
	for _, key := range s.msgOrder {
		out = append(out, MessageCount{Key: key, Count: s.msgCounts[key]})
	}
	return out
}

// TotalAnalyzed returns the number of records counted across all charms.
func (s *Store) TotalAnalyzed() int {
	total := 0
	for _, cc := range s.charms {
		total += cc.Total()
	}
	return total
}
