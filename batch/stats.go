package batch

import "go.uber.org/atomic"

// Running totals for batch activity. They complement the prometheus
// metrics with values tests and callers can read directly.
var (
	statJobs     = atomic.NewInt64(0) //nolint:gochecknoglobals
	statElements = atomic.NewInt64(0) //nolint:gochecknoglobals
	statShards   = atomic.NewInt64(0) //nolint:gochecknoglobals
	statMerges   = atomic.NewInt64(0) //nolint:gochecknoglobals
)

// Stats is a snapshot of the work done by this package since process start.
type Stats struct {
	// Jobs is the number of batch constructions started.
	Jobs int64
	// Elements is the number of elements ingested across all jobs.
	Elements int64
	// Shards is the number of shards sorted.
	Shards int64
	// Merges is the number of pairwise run merges performed.
	Merges int64
}

// CollectStats returns a snapshot of the running totals.
func CollectStats() Stats {
	return Stats{
		Jobs:     statJobs.Load(),
		Elements: statElements.Load(),
		Shards:   statShards.Load(),
		Merges:   statMerges.Load(),
	}
}
