// Package batch builds sorted containers from large unsorted inputs by
// sorting fixed-size shards on a worker pool and merging the sorted runs.
//
// The constructors mirror sorted.FromUnsorted and sorted.SetFromUnsorted:
// they take ownership of the input slice and return a fully constructed
// container. Inputs that fit in one shard are sorted serially; larger
// inputs are split, sorted concurrently, and merged pairwise until a
// single ascending run remains.
//
// The comparator contract is the same as in the sorted package. A
// comparator panic in a worker, such as the partial package's response to
// an incomparable pair, is re-raised on the calling goroutine with its
// original panic value.
package batch

import (
	"context"
	"log/slog"
	"slices"

	"github.com/JohnScience/sorted-vec2/compare"
	"github.com/JohnScience/sorted-vec2/contexts"
	"github.com/JohnScience/sorted-vec2/logger"
	"github.com/JohnScience/sorted-vec2/sorted"
	"github.com/JohnScience/sorted-vec2/spans"
	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultShardSize = 2048

// Option configures a single batch construction.
type Option func(*config)

type config struct {
	shardSize int
	workers   int
	log       *slog.Logger
}

// WithShardSize sets the number of elements per shard. Inputs at or below
// one shard are sorted serially without touching the worker pool. Values
// below 1 are ignored.
func WithShardSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.shardSize = size
		}
	}
}

// WithWorkers runs the construction on a dedicated pool of the given size
// instead of the shared pool. The dedicated pool is stopped when the
// construction returns. Values below 1 are ignored.
func WithWorkers(count int) Option {
	return func(c *config) {
		if count > 0 {
			c.workers = count
		}
	}
}

// WithLogger routes the construction's log output to the given logger
// instead of the one derived from the context.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

func newConfig(ctx context.Context, opts []Option) *config {
	cfg := &config{shardSize: defaultShardSize}

	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	if cfg.log == nil {
		cfg.log = logger.Get(ctx)
	}

	cfg.log = cfg.log.With("job_id", uuid.NewString())

	return cfg
}

// pool returns the pool the construction runs on and a release function
// for it. A dedicated pool is stopped on release; the shared pool is not.
func (c *config) pool() (pond.Pool, func()) { //nolint:ireturn
	if c.workers > 0 {
		dedicated := pond.NewPool(c.workers)

		return dedicated, dedicated.StopAndWait
	}

	return sharedPool.Get(), func() {}
}

// FromUnsortedParallel returns a new sorted vector holding the given items,
// sorting shards of the input concurrently. It takes ownership of the
// slice and sorts it in place; the sort is not stable, so the relative
// order of equal elements is unspecified. The caller must not use the
// slice afterwards.
//
// The context cancels the construction between phases; a canceled context
// yields a nil vector and the context's error. Tracing is opt-in through
// spans.WithTracer.
func FromUnsortedParallel[T any](
	ctx context.Context, cmp compare.Func[T], items []T, opts ...Option,
) (*sorted.Vector[T], error) {
	ctx = contexts.EnsureContext(ctx)
	cfg := newConfig(ctx, opts)

	statJobs.Inc()
	statElements.Add(int64(len(items)))
	elementsTotal.Add(float64(len(items)))

	v, err := spans.StartValErr[*sorted.Vector[T]](ctx, "batch.from_unsorted",
		spans.WithSpanStartOptions(trace.WithAttributes(
			attribute.Int("batch.items", len(items)),
			attribute.Int("batch.shards", shardCount(len(items), cfg.shardSize)),
		)),
		spans.WithErrorMessage("parallel vector construction failed"),
	).Enter(func(ctx context.Context, span trace.Span) (*sorted.Vector[T], error) {
		if len(items) <= cfg.shardSize {
			cfg.log.Debug("Input fits one shard, sorting serially", "items", len(items))

			return sorted.FromUnsorted(cmp, items), nil
		}

		merged, err := sortParallel(ctx, cfg, cmp, items)
		if err != nil {
			return nil, err
		}

		return sorted.FromSorted(cmp, merged)
	})

	recordOutcome(kindVector, err)

	return v, err
}

// SetFromUnsortedParallel returns a new sorted set holding the given items
// sorted and deduplicated, sorting shards of the input concurrently. It
// takes ownership of the slice; the caller must not use it afterwards.
// When the input carries several elements of one equivalence class, which
// of them survives is unspecified.
//
// Cancellation and tracing behave as in FromUnsortedParallel.
func SetFromUnsortedParallel[T any](
	ctx context.Context, cmp compare.Func[T], items []T, opts ...Option,
) (*sorted.Set[T], error) {
	ctx = contexts.EnsureContext(ctx)
	cfg := newConfig(ctx, opts)

	statJobs.Inc()
	statElements.Add(int64(len(items)))
	elementsTotal.Add(float64(len(items)))

	s, err := spans.StartValErr[*sorted.Set[T]](ctx, "batch.set_from_unsorted",
		spans.WithSpanStartOptions(trace.WithAttributes(
			attribute.Int("batch.items", len(items)),
			attribute.Int("batch.shards", shardCount(len(items), cfg.shardSize)),
		)),
		spans.WithErrorMessage("parallel set construction failed"),
	).Enter(func(ctx context.Context, span trace.Span) (*sorted.Set[T], error) {
		if len(items) <= cfg.shardSize {
			cfg.log.Debug("Input fits one shard, sorting serially", "items", len(items))

			return sorted.SetFromUnsorted(cmp, items), nil
		}

		merged, err := sortParallel(ctx, cfg, cmp, items)
		if err != nil {
			return nil, err
		}

		merged = slices.CompactFunc(merged, func(a, b T) bool {
			return cmp(a, b) == 0
		})

		return sorted.SetFromSorted(cmp, merged)
	})

	recordOutcome(kindSet, err)

	return s, err
}

func shardCount(items, shardSize int) int {
	return (items + shardSize - 1) / shardSize
}

// sortParallel splits items into shards, sorts the shards on the pool, and
// merges them pairwise into a single ascending run. The shards are views
// into items, so the shard sort reorders items in place; the returned run
// is freshly allocated by the final merge round.
func sortParallel[T any](ctx context.Context, cfg *config, cmp compare.Func[T], items []T) ([]T, error) {
	if !contexts.IsContextAlive(ctx) {
		return nil, ctx.Err()
	}

	pool, release := cfg.pool()
	defer release()

	shards := slices.Collect(slices.Chunk(items, cfg.shardSize))

	cfg.log.Debug("Sorting shards", "shards", len(shards), "items", len(items))

	err := spans.StartErr(ctx, "batch.sort_shards").Enter(func(ctx context.Context, span trace.Span) error {
		return sortShards(ctx, pool, cmp, shards)
	})
	if err != nil {
		return nil, logger.AnnotateError(err, "phase", "sort", "shards", len(shards))
	}

	return spans.StartValErr[[]T](ctx, "batch.merge_shards").Enter(
		func(ctx context.Context, span trace.Span) ([]T, error) {
			merged, err := mergeShards(ctx, cfg, pool, cmp, shards)
			if err != nil {
				return nil, logger.AnnotateError(err, "phase", "merge", "runs", len(shards))
			}

			return merged, nil
		},
	)
}

// sortShards sorts every shard in place, one pool task per shard.
func sortShards[T any](ctx context.Context, pool pond.Pool, cmp compare.Func[T], shards [][]T) error {
	tasks := make([]func() error, len(shards))

	for i, shard := range shards {
		tasks[i] = func() error {
			if !contexts.IsContextAlive(ctx) {
				return ctx.Err()
			}

			slices.SortFunc(shard, cmp)
			statShards.Inc()

			return nil
		}
	}

	return runTasks(pool, tasks)
}

// mergeShards repeatedly merges pairs of ascending runs until one remains.
// Each round merges its pairs concurrently; an odd run carries over to the
// next round unmerged.
func mergeShards[T any](
	ctx context.Context, cfg *config, pool pond.Pool, cmp compare.Func[T], runs [][]T,
) ([]T, error) {
	for round := 1; len(runs) > 1; round++ {
		if !contexts.IsContextAlive(ctx) {
			return nil, ctx.Err()
		}

		cfg.log.Debug("Merging runs", "round", round, "runs", len(runs))

		pairs := len(runs) / 2
		carry := len(runs) % 2

		next := make([][]T, pairs+carry)
		tasks := make([]func() error, pairs)

		for j := 0; j < pairs; j++ {
			a, b := runs[2*j], runs[2*j+1]

			tasks[j] = func() error {
				if !contexts.IsContextAlive(ctx) {
					return ctx.Err()
				}

				next[j] = mergePair(a, b, cmp)
				statMerges.Inc()

				return nil
			}
		}

		if carry == 1 {
			next[pairs] = runs[len(runs)-1]
		}

		if err := runTasks(pool, tasks); err != nil {
			return nil, err
		}

		runs = next
	}

	return runs[0], nil
}

// mergePair merges two ascending runs into a new slice. Ties take from a,
// so elements of the left run order before equal elements of the right.
func mergePair[T any](a, b []T, cmp compare.Func[T]) []T {
	out := make([]T, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if cmp(b[j], a[i]) < 0 {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}

	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}
