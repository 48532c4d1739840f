package batch

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"runtime/debug"

	errors2 "github.com/JohnScience/sorted-vec2/errors"
	"github.com/JohnScience/sorted-vec2/lazy"
	"github.com/JohnScience/sorted-vec2/shutdown"
	"github.com/alitto/pond/v2"
)

// sharedPool is the lazy-initialized worker pool used by constructions that
// do not bring their own pool via WithWorkers. Shard sorting is CPU bound,
// so the pool is sized to the number of usable CPUs.
var sharedPool = lazy.New[pond.Pool](func() pond.Pool {
	count := runtime.GOMAXPROCS(0)

	slog.Debug("Initializing batch worker pool", "workers", count)

	pool := pond.NewPool(count)

	shutdown.BeforeShutdown(func() {
		slog.Debug("Stopping batch worker pool")
		pool.StopAndWait()
		slog.Debug("Batch worker pool stopped")
	})

	return pool
})

// taskPanic carries a value recovered from a panicking task so the join
// point can re-raise it on the calling goroutine.
type taskPanic struct {
	val   any
	stack []byte
}

// Compile-time check that taskPanic implements error.
var _ error = (*taskPanic)(nil)

// Error formats the panic value and stack through errors.FromPanic.
func (p *taskPanic) Error() string {
	return errors2.FromPanic(p.val, p.stack).Error()
}

// recovered wraps a task so a panic inside it surfaces as a *taskPanic
// error instead of unwinding the worker goroutine.
func recovered(task func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &taskPanic{val: r, stack: debug.Stack()}
			}
		}()

		return task()
	}
}

// runTasks submits every task to the pool and waits for all of them to
// settle. Errors accumulate across tasks rather than short-circuiting, so
// one failed shard does not leave sibling tasks unobserved. Context errors
// collapse to a single entry because every task observes the same
// cancellation. If any task panicked, the first recovered panic value is
// re-raised here on the calling goroutine after all tasks have settled.
func runTasks(pool pond.Pool, tasks []func() error) error {
	handles := make([]pond.Task, len(tasks))

	for i, task := range tasks {
		handles[i] = pool.SubmitErr(recovered(task))
	}

	var (
		errs   errors2.Collection
		ctxErr error
		panics []*taskPanic
	)

	for _, handle := range handles {
		err := handle.Wait()
		if err == nil {
			continue
		}

		var tp *taskPanic
		if errors.As(err, &tp) {
			panics = append(panics, tp)

			continue
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			if ctxErr == nil {
				ctxErr = err
			}

			continue
		}

		errs.Add(err)
	}

	if len(panics) > 0 {
		panic(panics[0].val)
	}

	errs.Add(ctxErr)

	return errs.GetError()
}
