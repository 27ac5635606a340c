package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tasksQueued = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "order_service",
		Subsystem: "tasks",
		Name:      "queued",
		Help:      "Number of background tasks waiting for a worker.",
	})

	tasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "tasks",
		Name:      "completed_total",
		Help:      "Total number of finished background tasks.",
	}, []string{"task", "outcome"})

	tasksOverflow = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "tasks",
		Name:      "overflow_total",
		Help:      "Tasks started outside the worker pool because the queue was full.",
	})
)

type Func func(ctx context.Context) error

type task struct {
	name string
	fn   Func
}

// Runner executes fire-and-forget tasks on a fixed pool of workers.
// Outcomes are only observable through logs and metrics.
type Runner struct {
	logger  *slog.Logger
	workers int
	timeout time.Duration

	queue chan task
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewRunner(logger *slog.Logger, workers, queueSize int, timeout time.Duration) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		logger:  logger.With(slog.String("component", "tasks")),
		workers: workers,
		timeout: timeout,
		queue:   make(chan task, queueSize),
	}
}

// Submit schedules fn and returns immediately. When the queue is full the task
// gets its own goroutine instead of blocking the caller.
func (r *Runner) Submit(name string, fn Func) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := task{name: name, fn: fn}

	if r.closed {
		r.logger.Warn("runner closed, running task detached", slog.String("task", name))
		go r.run(t)
		return
	}

	select {
	case r.queue <- t:
		tasksQueued.Inc()
	default:
		tasksOverflow.Inc()
		r.logger.Warn("task queue full, running task detached", slog.String("task", name))
		r.spawn(t)
	}
}

// Start launches the workers. The ctx only bounds the runner lifetime, tasks
// are not cancelled when it is done: Close drains the queue instead.
func (r *Runner) Start(_ context.Context) error {
	for range r.workers {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			for t := range r.queue {
				tasksQueued.Dec()
				r.run(t)
			}
		}()
	}
	r.logger.Info("task runner started", slog.Int("workers", r.workers))
	return nil
}

// Close stops accepting queued work and waits until every submitted task has finished.
func (r *Runner) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	r.wg.Wait()
	r.logger.Info("task runner stopped")
	return nil
}

func (r *Runner) spawn(t task) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(t)
	}()
}

func (r *Runner) run(t task) {
	ctx := context.Background()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	defer func() {
		if rec := recover(); rec != nil {
			tasksTotal.WithLabelValues(t.name, "panic").Inc()
			r.logger.Error("task panicked", slog.String("task", t.name), slog.Any("panic", rec))
		}
	}()

	start := time.Now()
	if err := t.fn(ctx); err != nil {
		tasksTotal.WithLabelValues(t.name, "error").Inc()
		r.logger.Error("task failed", slog.String("task", t.name), slog.Any("error", err))
		return
	}

	tasksTotal.WithLabelValues(t.name, "ok").Inc()
	r.logger.Debug("task done", slog.String("task", t.name), slog.Duration("duration", time.Since(start)))
}
