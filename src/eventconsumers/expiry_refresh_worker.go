package eventconsumers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
	"github.com/jiaming2012/expiry-tracker/src/eventpubsub"
	"github.com/jiaming2012/expiry-tracker/src/eventservices"
)

var ErrRefreshInFlight = errors.New("expiry refresh already in flight")

// ExpiryRefreshWorker pulls the configured feed on a fixed interval and on
// demand. At most one run is in flight; triggers that arrive during a run are
// dropped rather than queued.
type ExpiryRefreshWorker struct {
	ctx       context.Context
	wg        *sync.WaitGroup
	feedName  eventmodels.FeedName
	feed      eventmodels.FeedFunc
	whitelist eventmodels.Whitelist
	loc       *time.Location
	interval  time.Duration
	bus       *eventpubsub.Bus
	inFlight  atomic.Bool
	now       func() time.Time

	tracer   trace.Tracer
	runs     metric.Int64Counter
	failures metric.Int64Counter
}

func NewExpiryRefreshWorker(ctx context.Context, wg *sync.WaitGroup, feedName eventmodels.FeedName, feed eventmodels.FeedFunc, whitelist eventmodels.Whitelist, loc *time.Location, interval time.Duration, bus *eventpubsub.Bus) *ExpiryRefreshWorker {
	meter := otel.Meter("eventconsumers/expiry_refresh_worker")

	runs, err := meter.Int64Counter("expiry_refresh_runs", metric.WithDescription("Completed expiry refresh runs"))
	if err != nil {
		log.Warnf("NewExpiryRefreshWorker: failed to create runs counter: %v", err)
	}

	failures, err := meter.Int64Counter("expiry_refresh_failures", metric.WithDescription("Expiry refresh runs that produced no result"))
	if err != nil {
		log.Warnf("NewExpiryRefreshWorker: failed to create failures counter: %v", err)
	}

	if interval <= 0 {
		interval = eventmodels.DefaultRefreshInterval
	}

	if loc == nil {
		loc = time.Local
	}

	return &ExpiryRefreshWorker{
		ctx:       ctx,
		wg:        wg,
		feedName:  feedName,
		feed:      feed,
		whitelist: whitelist,
		loc:       loc,
		interval:  interval,
		bus:       bus,
		now:       time.Now,
		tracer:    otel.Tracer("eventconsumers/expiry_refresh_worker"),
		runs:      runs,
		failures:  failures,
	}
}

// Refresh runs one refresh on the caller's goroutine. When the feed was
// structurally unusable the NO DATA result is returned together with the
// structural error.
func (w *ExpiryRefreshWorker) Refresh(ctx context.Context) (eventmodels.AggregateResult, error) {
	if !w.inFlight.CompareAndSwap(false, true) {
		return eventmodels.AggregateResult{}, ErrRefreshInFlight
	}

	defer w.inFlight.Store(false)

	return w.run(ctx)
}

// TriggerRefresh starts a manual refresh in the background under the
// worker's context.
func (w *ExpiryRefreshWorker) TriggerRefresh() error {
	if err := w.ctx.Err(); err != nil {
		return fmt.Errorf("TriggerRefresh: worker stopped: %w", err)
	}

	if !w.inFlight.CompareAndSwap(false, true) {
		return ErrRefreshInFlight
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.inFlight.Store(false)

		w.run(w.ctx)
	}()

	return nil
}

func (w *ExpiryRefreshWorker) IsRefreshing() bool {
	return w.inFlight.Load()
}

func (w *ExpiryRefreshWorker) run(ctx context.Context) (eventmodels.AggregateResult, error) {
	runID := uuid.New()
	logger := log.WithFields(log.Fields{
		"run_id": runID,
		"feed":   w.feedName,
	})

	ctx, span := w.tracer.Start(ctx, "ExpiryRefreshWorker.run", trace.WithAttributes(
		attribute.String("run_id", runID.String()),
		attribute.String("feed", string(w.feedName)),
	))
	defer span.End()

	w.publish(eventpubsub.ExpiriesRefreshStartedEvent, eventmodels.ExpiriesRefreshStartedEvent{
		RunID:     runID,
		Feed:      w.feedName,
		StartedAt: w.now(),
	})

	parsed, err := w.feed(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		w.count(ctx, w.failures)

		logger.WithContext(ctx).Errorf("Failed to refresh expiries: %v", err)
		w.publish(eventpubsub.ExpiriesRefreshFailedEvent, eventmodels.ExpiriesRefreshFailedEvent{
			RunID:      runID,
			Feed:       w.feedName,
			FinishedAt: w.now(),
			Err:        err,
		})

		return eventmodels.AggregateResult{}, err
	}

	if parsed.IsUnusable() {
		span.RecordError(parsed.Err)
		logger.WithContext(ctx).Errorf("Feed unusable, reporting no data: %v", parsed.Err)
	}

	result := eventservices.BuildExpiryRows(parsed, w.whitelist, w.loc)
	w.count(ctx, w.runs)

	logger.WithFields(log.Fields{
		"records": len(parsed.Records),
		"skipped": parsed.Skipped,
		"dropped": result.Dropped,
	}).Infof("Refreshed %d expiry rows", len(result.Rows))

	w.publish(eventpubsub.ExpiriesUpdatedEvent, eventmodels.ExpiriesUpdatedEvent{
		RunID:      runID,
		Feed:       w.feedName,
		Rows:       result.Rows,
		Dropped:    result.Dropped,
		Skipped:    parsed.Skipped,
		FinishedAt: w.now(),
		Err:        parsed.Err,
	})

	return result, parsed.Err
}

func (w *ExpiryRefreshWorker) publish(topic string, event interface{}) {
	if w.bus == nil {
		return
	}

	w.bus.Publish(topic, event)
}

func (w *ExpiryRefreshWorker) count(ctx context.Context, counter metric.Int64Counter) {
	if counter == nil {
		return
	}

	counter.Add(ctx, 1, metric.WithAttributes(attribute.String("feed", string(w.feedName))))
}

func (w *ExpiryRefreshWorker) refreshOnSchedule() {
	if _, err := w.Refresh(w.ctx); errors.Is(err, ErrRefreshInFlight) {
		log.Debug("ExpiryRefreshWorker: previous run still in flight, skipping tick")
	}
}

// Start runs a refresh immediately and then once per interval until the
// worker's context is cancelled.
func (w *ExpiryRefreshWorker) Start() {
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.refreshOnSchedule()

		for {
			select {
			case <-ticker.C:
				w.refreshOnSchedule()
			case <-w.ctx.Done():
				log.Info("stopping ExpiryRefreshWorker")
				return
			}
		}
	}()
}
