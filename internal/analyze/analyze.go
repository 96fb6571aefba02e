// Package analyze aggregates cleaned records into the statistics store.
package analyze

import (
	"go.uber.org/zap"

	"github.com/charmkit/logstats/internal/model"
	"github.com/charmkit/logstats/internal/stats"
)

// Source yields cleaned log records one at a time. *cleaner.Cleaner
// satisfies it.
type Source interface {
	Scan() bool
	Record() model.LogRecord
	Err() error
}

// Run consumes src to exhaustion, counting each record against the store.
// When charmFilter is non-empty, records from other charms are skipped
// outright. Records whose severity text does not resolve against the
// closed severity set are skipped without touching the dropped counter;
// only the cleaner tallies drops.
func Run(src Source, store *stats.Store, charmFilter string, logger *zap.Logger) error {
	for src.Scan() {
		rec := src.Record()
		if charmFilter != "" && rec.Charm != charmFilter {
			continue
		}
		sev, ok := model.ParseSeverity(rec.SeverityText)
		if !ok {
			logger.Debug("ignoring record with unknown severity",
				zap.String("charm", rec.Charm),
				zap.String("severity", rec.SeverityText))
			continue
		}
		store.AddRecord(rec.Charm, sev, rec.Message)
	}
	return src.Err()
}
