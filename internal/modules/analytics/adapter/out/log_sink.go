package out

import (
	"context"

	"go.uber.org/zap"

	"folio/internal/modules/analytics/domain"
)

// LogSink writes events to the application log. It stands in for the
// remote sink when none is configured.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogSink{log: log.Named("analytics")}
}

func (s *LogSink) Send(_ context.Context, clientID string, events []domain.Event) error {
	for _, e := range events {
		fields := []zap.Field{
			zap.String("client_id", clientID),
			zap.String("event", e.Name),
			zap.String("category", e.Category),
		}
		if e.Label != "" {
			fields = append(fields, zap.String("label", e.Label))
		}
		if e.Path != "" {
			fields = append(fields, zap.String("path", e.Path))
		}
		if e.Value != nil {
			fields = append(fields, zap.Int64("value", *e.Value))
		}
		s.log.Info("event", fields...)
	}
	return nil
}
