package service

import (
	"context"
	"errors"
	"time"

	"github.com/Skotchmaster/astrion_panel/internal/errx"
	"github.com/Skotchmaster/astrion_panel/pkg/events"
	"github.com/Skotchmaster/astrion_panel/pkg/logging"
	"github.com/Skotchmaster/astrion_panel/pkg/metrics"
)

const (
	kindProduct = "product"
	kindUser    = "user"

	publishTimeout = 5 * time.Second
)

// Runtime carries what both services share. The zero value works: no delay,
// no events, no metrics and the wall clock.
type Runtime struct {
	Publisher events.Publisher
	Metrics   *metrics.Metrics
	Latency   time.Duration
	Now       func() time.Time
}

func (r Runtime) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now().UTC()
}

// simulate holds the call for the configured latency, or until ctx is done.
func (r Runtime) simulate(ctx context.Context) error {
	if r.Latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(r.Latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r Runtime) observe(kind, op string, err error) {
	r.Metrics.Operation(kind, op, outcome(err))
}

func (r Runtime) publish(ctx context.Context, topic string, ev events.Event) {
	if r.Publisher == nil {
		return
	}
	ev.At = r.now()

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := r.Publisher.PublishEvent(pubCtx, topic, ev.ID, ev); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "topic", topic, "type", ev.Type, "id", ev.ID, "error", err)
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errx.ErrNotFound):
		return "not_found"
	case errors.Is(err, errx.ErrValidation):
		return "invalid"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}
