// Package analysis implements the reporting pipeline over run records:
// cleaning, dataset descriptive statistics, the completed/timed-out
// partition, per-trial statistics, cross-solver consistency sets and the
// final summary table. Every stage is a pure function; derived tables are
// built once and never mutated.
package analysis

import (
	"errors"

	"github.com/solvestat/solvestat/internal/model"
)

// ErrEmptyResultSet is returned when a stage is asked to aggregate an
// empty input. The pipeline fails loudly instead of emitting blanks.
var ErrEmptyResultSet = errors.New("analysis: empty result set")

// Clean drops every record with Nodes == 0. Such rows are malformed or
// placeholder entries and must not reach any aggregation. The filter is
// idempotent.
func Clean(records []model.Record) []model.Record {
	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if rec.Nodes == 0 {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Split partitions cleaned records into completed runs and timed-out
// runs. Times holds every record with Done set. Timeouts holds only
// records whose trial key never completed: if any trial for an ID
// finished, all timeout rows for that ID are discarded. Completion
// preempts timeout reporting at ID granularity, not row granularity.
func Split(records []model.Record) (times, timeouts []model.Record) {
	completed := make(map[string]bool)
	for _, rec := range records {
		if rec.Done {
			completed[rec.ID()] = true
		}
	}

	for _, rec := range records {
		switch {
		case rec.Done:
			times = append(times, rec)
		case !completed[rec.ID()]:
			timeouts = append(timeouts, rec)
		}
	}
	return times, timeouts
}
