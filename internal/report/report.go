// Package report hands evaluation events to the outside world through a zap logger.
package report

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/todmy/forecast-values/internal/event"
	"github.com/todmy/forecast-values/pkg/models"
)

// Reporter logs events and keeps a running count per type.
// It is not safe for concurrent use.
type Reporter struct {
	log     *zap.Logger
	summary models.Summary
	now     func() time.Time
}

// NewReporter creates a Reporter. A nil logger discards output.
func NewReporter(log *zap.Logger) *Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reporter{log: log, now: time.Now}
}

// Report logs every event at the level matching its type and returns the records written.
func (r *Reporter) Report(events ...event.Event) []models.EventRecord {
	records := make([]models.EventRecord, 0, len(events))

	for _, e := range events {
		rec := models.EventRecord{
			ID:        uuid.New().String(),
			Type:      string(e.Type()),
			Message:   e.Message(),
			CreatedAt: r.now().UTC(),
		}
		fields := []zap.Field{zap.String("event_id", rec.ID), zap.String("event_type", rec.Type)}

		switch e.Type() {
		case event.Warn:
			r.log.Warn(rec.Message, fields...)
			r.summary.Warn++
		case event.Debug:
			r.log.Debug(rec.Message, fields...)
			r.summary.Debug++
		case event.Error:
			r.log.Error(rec.Message, fields...)
			r.summary.Error++
		case event.Info:
			r.log.Info(rec.Message, fields...)
			r.summary.Info++
		default:
			continue
		}

		records = append(records, rec)
	}

	return records
}

// Summary returns the counts of events reported so far.
func (r *Reporter) Summary() models.Summary {
	return r.summary
}
