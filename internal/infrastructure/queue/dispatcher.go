package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/proyecto-awi/wallet-dashboard/internal/api/metrics"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/domain"
	"github.com/proyecto-awi/wallet-dashboard/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	insertTimeout  = 5 * time.Second
)

// Dispatcher routes gate records to a fixed set of workers using consistent
// hashing on the browser profile id, so one profile's decisions are written
// in the order they were made.
type Dispatcher struct {
	workers []chan domain.GateRecord
	repo    ports.AuditRepository
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.GateRecord, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.GateRecord, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled,
// after draining what is already queued.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker started by Start has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Record hands rec to the worker responsible for its profile. It never
// blocks: when that worker's buffer is full the record is dropped.
func (d *Dispatcher) Record(rec domain.GateRecord) {
	idx := d.shardIndex(rec.ProfileID)
	select {
	case d.workers[idx] <- rec:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditDroppedTotal.Inc()
		d.log.Warn().
			Str("profile_id", rec.ProfileID).
			Str("gate", rec.Gate).
			Int("worker_id", idx).
			Msg("audit queue full, dropping gate record")
	}
}

// shardIndex maps a profile id deterministically to a worker index.
func (d *Dispatcher) shardIndex(profileID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(profileID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.GateRecord) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			d.drain(id, ch)
			return
		case rec := <-ch:
			metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.write(context.WithoutCancel(ctx), id, rec)
		}
	}
}

// drain writes whatever is still buffered once shutdown has begun.
func (d *Dispatcher) drain(id int, ch <-chan domain.GateRecord) {
	for {
		select {
		case rec := <-ch:
			d.write(context.Background(), id, rec)
		default:
			metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(0)
			return
		}
	}
}

func (d *Dispatcher) write(ctx context.Context, id int, rec domain.GateRecord) {
	ctx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	if err := d.repo.Insert(ctx, rec); err != nil {
		metrics.AuditErrorsTotal.Inc()
		d.log.Error().Err(err).
			Str("profile_id", rec.ProfileID).
			Str("gate", rec.Gate).
			Int("worker_id", id).
			Msg("gate record write failed")
	}
}
