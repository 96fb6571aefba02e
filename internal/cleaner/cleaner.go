// Package cleaner filters raw log lines down to well-formed unit records.
package cleaner

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/charmkit/logstats/internal/model"
	"github.com/charmkit/logstats/internal/stats"
)

const (
	// minFields is the minimum number of whitespace-delimited fields a
	// valid unit log line must tokenize into.
	minFields = 4

	// DefaultMaxLineSize is the default maximum size (in bytes) of a
	// single input line.
	DefaultMaxLineSize = 1024 * 1024 // 1MB
)

// Config holds tunable parameters for a Cleaner.
type Config struct {
	MaxLineSize int
}

// Cleaner scans an input stream and emits one cleaned record per
// well-formed unit log line. Its usage follows bufio.Scanner:
//
//	c := cleaner.New(r, store, logger)
//	for c.Scan() {
//		rec := c.Record()
//	}
//	if err := c.Err(); err != nil { ... }
//
// A Cleaner makes a single forward pass and is not restartable. Lines it
// rejects are tallied on the store's dropped counter; that is its only
// store mutation.
type Cleaner struct {
	scanner *bufio.Scanner
	store   *stats.Store
	logger  *zap.Logger
	rec     model.LogRecord
}

// New creates a Cleaner reading from r. The logger may be zap.NewNop().
func New(r io.Reader, store *stats.Store, logger *zap.Logger, conf ...Config) *Cleaner {
	maxLineSize := DefaultMaxLineSize
	if len(conf) > 0 && conf[0].MaxLineSize > 0 {
		maxLineSize = conf[0].MaxLineSize
	}
	scanner := bufio.NewScanner(r)
	buf := make([]byte, maxLineSize)
	scanner.Buffer(buf, maxLineSize)
	return &Cleaner{
		scanner: scanner,
		store:   store,
		logger:  logger,
	}
}

// Scan advances to the next well-formed record, skipping and tallying
// rejected lines. It returns false at end of input or on a read error.
func (c *Cleaner) Scan() bool {
	for c.scanner.Scan() {
		line := c.scanner.Text()
		rec, ok := c.clean(line)
		if !ok {
			c.store.IncDropped()
			c.logger.Debug("dropped malformed line", zap.String("line", line))
			continue
		}
		c.rec = rec
		return true
	}
	return false
}

// Record returns the record produced by the last successful Scan.
func (c *Cleaner) Record() model.LogRecord { return c.rec }

// Err returns the first error encountered while reading the input.
func (c *Cleaner) Err() error { return c.scanner.Err() }

func (c *Cleaner) clean(line string) (model.LogRecord, bool) {
	fields := splitFields(line, minFields)
	if len(fields) < minFields {
		return model.LogRecord{}, false
	}

	unitField := strings.Split(fields[0], "-")
	if len(unitField) < 3 || unitField[0] != "unit" {
		return model.LogRecord{}, false
	}

	// Chop the leading "unit" token and the trailing id, keeping hyphens
	// inside the charm's own name.
	charm := strings.Join(unitField[1:len(unitField)-1], "-")

	return model.LogRecord{
		Charm:        charm,
		SeverityText: fields[2],
		Message:      strings.TrimSpace(fields[3]),
	}, true
}

// splitFields splits line on runs of whitespace into at most max fields.
// The final field keeps all remaining text, including internal whitespace.
// Trailing whitespace-only remainders produce no field.
func splitFields(line string, max int) []string {
	fields := make([]string, 0, max)
	rest := line
	for len(fields) < max-1 {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			return fields
		}
		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			return append(fields, rest)
		}
		fields = append(fields, rest[:i])
		rest = rest[i:]
	}
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	if rest != "" {
		fields = append(fields, rest)
	}
	return fields
}
