package jobs

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job identifies one unit of work inside a batch.
type Job struct {
	ID      string
	Index   int
	Attempt int
}

// Handler processes a job and returns its value.
type Handler[T any] func(context.Context, Job) (T, error)

// Result pairs a job with its outcome. Results are returned in submission
// order regardless of completion order.
type Result[T any] struct {
	Job   Job
	Value T
	Err   error
}

// PoolConfig configures worker pool behaviour.
type PoolConfig struct {
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
	// Retryable decides whether a failed attempt is tried again. Nil retries
	// every error except context cancellation.
	Retryable func(error) bool
	Logger    *zap.Logger
}

// Pool runs batches of jobs over a bounded number of goroutines.
type Pool struct {
	name       string
	workers    int
	maxRetries int
	retryDelay time.Duration
	retryable  func(error) bool
	logger     *zap.Logger
}

// NewPool builds a pool. Zero workers means one; negative retries mean none.
func NewPool(name string, cfg PoolConfig) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = 0
	}
	if cfg.Retryable == nil {
		cfg.Retryable = func(error) bool { return true }
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		name:       name,
		workers:    cfg.Workers,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		retryable:  cfg.Retryable,
		logger:     cfg.Logger,
	}
}

// Workers reports the concurrency bound.
func (p *Pool) Workers() int { return p.workers }

// Process runs handler once per id and blocks until every job has finished
// or ctx is done. Jobs not started before cancellation report ctx.Err().
func Process[T any](ctx context.Context, p *Pool, ids []string, handler Handler[T]) []Result[T] {
	results := make([]Result[T], len(ids))
	if len(ids) == 0 {
		return results
	}

	workers := p.workers
	if workers > len(ids) {
		workers = len(ids)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = run(ctx, p, Job{ID: ids[i], Index: i}, handler)
			}
		}()
	}

dispatch:
	for i := range ids {
		select {
		case <-ctx.Done():
			for j := i; j < len(ids); j++ {
				results[j] = Result[T]{Job: Job{ID: ids[j], Index: j}, Err: ctx.Err()}
			}
			break dispatch
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	return results
}

func run[T any](ctx context.Context, p *Pool, job Job, handler Handler[T]) Result[T] {
	for {
		job.Attempt++
		value, err := handler(ctx, job)
		if err == nil {
			return Result[T]{Job: job, Value: value}
		}
		if job.Attempt > p.maxRetries || !p.shouldRetry(err) {
			if job.Attempt > 1 {
				p.logger.Sugar().Errorw("job exceeded retries", "pool", p.name, "job_id", job.ID, "attempts", job.Attempt, "error", err)
			}
			return Result[T]{Job: job, Value: value, Err: err}
		}
		p.logger.Sugar().Warnw("job failed, retrying", "pool", p.name, "job_id", job.ID, "attempt", job.Attempt, "error", err)

		timer := time.NewTimer(p.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Result[T]{Job: job, Err: ctx.Err()}
		case <-timer.C:
		}
	}
}

func (p *Pool) shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return p.retryable(err)
}
