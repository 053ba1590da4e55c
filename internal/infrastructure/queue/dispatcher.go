// Package queue fans swap completion events out to background workers.
package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillsaathi/skill-swap/internal/api/metrics"
	"github.com/skillsaathi/skill-swap/internal/core/domain"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Processor handles one completion event.
type Processor interface {
	Process(ctx context.Context, event domain.SwapCompletedEvent) error
}

// Dispatcher routes completion events to a fixed set of workers using
// consistent hashing on the rated user id, so ratings for one user are
// applied in completion order.
type Dispatcher struct {
	workers   []chan domain.SwapCompletedEvent
	processor Processor
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor Processor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan domain.SwapCompletedEvent, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.SwapCompletedEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands event to the worker owning its rated user. It blocks while
// that worker's buffer is full, until ctx is done.
func (d *Dispatcher) Enqueue(ctx context.Context, event domain.SwapCompletedEvent) error {
	idx := d.shardIndex(event.RatedUserID)
	select {
	case d.workers[idx] <- event:
		metrics.RatingQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Handler adapts the dispatcher to the swap service's completion hook.
func (d *Dispatcher) Handler() ports.SwapCompletedHandler {
	return func(ctx context.Context, event domain.SwapCompletedEvent) {
		// the request context ends with the HTTP call; queueing must not
		if err := d.Enqueue(context.WithoutCancel(ctx), event); err != nil {
			d.log.Error().Err(err).Str("swap_id", event.Request.ID).Msg("failed to enqueue completion event")
		}
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.SwapCompletedEvent) {
	depth := metrics.RatingQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			depth.Dec()

			start := time.Now()
			err := d.processor.Process(ctx, event)
			metrics.RatingProcessingDuration.Observe(time.Since(start).Seconds())
			if err != nil {
				metrics.RatingEventsErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("swap_id", event.Request.ID).
					Str("rated_user_id", event.RatedUserID).
					Int("worker_id", id).
					Msg("rating aggregation failed")
				continue
			}
			metrics.RatingEventsProcessedTotal.Inc()
		}
	}
}
