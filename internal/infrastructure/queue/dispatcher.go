package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hcmnotify/sandbox/internal/api/metrics"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

const (
	defaultWorkers = 4
	defaultDelay   = 2 * time.Second
	channelBuffer  = 256
)

// Sender performs one outbound delivery.
type Sender interface {
	Send(ctx context.Context, d ports.WebhookDelivery) error
}

// Dispatcher delivers webhook events on a fixed set of workers after a delay.
// Deliveries for one webhook always land on the same worker, so they go out
// in scheduling order. Failures are logged and dropped; nothing is retried.
type Dispatcher struct {
	workers []chan ports.WebhookDelivery
	sender  Sender
	delay   time.Duration
	log     zerolog.Logger

	startOnce sync.Once
	done      chan struct{}
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used; a negative delay means defaultDelay.
func NewDispatcher(numWorkers int, delay time.Duration, sender Sender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if delay < 0 {
		delay = defaultDelay
	}
	d := &Dispatcher{
		workers: make([]chan ports.WebhookDelivery, numWorkers),
		sender:  sender,
		delay:   delay,
		log:     log,
		done:    make(chan struct{}),
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.WebhookDelivery, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// deliveries scheduled after that are dropped. Calls after the first are
// no-ops.
func (d *Dispatcher) Start(ctx context.Context) {
	d.startOnce.Do(func() {
		for i, ch := range d.workers {
			go d.runWorker(ctx, i, ch)
		}
		go func() {
			<-ctx.Done()
			close(d.done)
		}()
	})
}

// Schedule queues a delivery once the configured delay has elapsed. It returns
// immediately and is independent of the caller's request lifetime.
func (d *Dispatcher) Schedule(del ports.WebhookDelivery) {
	time.AfterFunc(d.delay, func() { d.enqueue(del) })
}

func (d *Dispatcher) enqueue(del ports.WebhookDelivery) {
	select {
	case <-d.done:
		metrics.WebhookDeliveriesTotal.WithLabelValues("dropped").Inc()
		return
	default:
	}

	idx := d.shardIndex(del.WebhookID)
	select {
	case d.workers[idx] <- del:
		metrics.WebhookQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		metrics.WebhookDeliveriesTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("webhook_id", del.WebhookID).Int("worker_id", idx).Msg("webhook queue full, delivery dropped")
	}
}

// shardIndex maps a webhook id deterministically to a worker index.
func (d *Dispatcher) shardIndex(webhookID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(webhookID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.WebhookDelivery) {
	depth := metrics.WebhookQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case del, ok := <-ch:
			if !ok {
				return
			}
			depth.Dec()
			if err := d.sender.Send(ctx, del); err != nil {
				metrics.WebhookDeliveriesTotal.WithLabelValues("failed").Inc()
				d.log.Warn().Err(err).
					Str("webhook_id", del.WebhookID).
					Str("tenant_id", del.TenantID).
					Int("worker_id", id).
					Msg("webhook delivery failed")
				continue
			}
			metrics.WebhookDeliveriesTotal.WithLabelValues("delivered").Inc()
			d.log.Debug().Str("webhook_id", del.WebhookID).Msg("webhook delivered")
		}
	}
}
