package tracking_update

import (
	"context"
	"time"

	"connector/pkg/logger"
)

type Service interface {
	UpdateStatuses(ctx context.Context) (int64, error)
}

type TrackingUpdate struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewTrackingUpdate(log logger.Logger, service Service, interval time.Duration) *TrackingUpdate {
	return &TrackingUpdate{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (t *TrackingUpdate) TTL() time.Duration {
	return t.interval
}

func (t *TrackingUpdate) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	updated, err := t.service.UpdateStatuses(ctxWithTimeout)

	if updated > 0 {
		t.log.With(
			logger.NewField("updated_notes", updated),
		).Info("tracking update")
	}

	return err
}

func (t *TrackingUpdate) Info() string {
	return "tracking update"
}
