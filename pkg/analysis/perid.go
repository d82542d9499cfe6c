package analysis

import (
	"sort"

	"github.com/solvestat/solvestat/internal/model"
	"github.com/solvestat/solvestat/pkg/stats"
)

// TimeStats holds the central-tendency statistics of the completed trials
// of one trial key.
type TimeStats struct {
	ID      string
	Model   string
	Dataset string
	Solver  string

	Trials int
	Median float64
	Mean   float64
	StdDev float64
}

// TimeoutStats holds the timeout bound reached by a trial key that never
// completed. MaxTime is the largest timeout threshold observed.
type TimeoutStats struct {
	ID      string
	Model   string
	Dataset string
	Solver  string

	Trials  int
	MaxTime float64
}

// SolveTimes groups completed records by trial key and computes median,
// mean and sample standard deviation of the solve time. Output is sorted
// by ID.
func SolveTimes(times []model.Record) ([]TimeStats, error) {
	groups, order := groupByID(times)

	out := make([]TimeStats, 0, len(order))
	for _, id := range order {
		recs := groups[id]
		values := make([]float64, len(recs))
		for i, rec := range recs {
			values[i] = rec.Time
		}

		ts := TimeStats{
			ID:      id,
			Model:   recs[0].Model,
			Dataset: recs[0].Dataset,
			Solver:  recs[0].Solver,
			Trials:  len(recs),
		}
		var err error
		if ts.Median, err = stats.Median(values); err != nil {
			return nil, err
		}
		if ts.Mean, err = stats.Mean(values); err != nil {
			return nil, err
		}
		if ts.StdDev, err = stats.StdDev(values); err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, nil
}

// TimeoutBounds groups never-completed records by trial key and reports
// the maximum timeout threshold reached. Output is sorted by ID.
func TimeoutBounds(timeouts []model.Record) ([]TimeoutStats, error) {
	groups, order := groupByID(timeouts)

	out := make([]TimeoutStats, 0, len(order))
	for _, id := range order {
		recs := groups[id]
		values := make([]float64, len(recs))
		for i, rec := range recs {
			values[i] = rec.Time
		}

		ts := TimeoutStats{
			ID:      id,
			Model:   recs[0].Model,
			Dataset: recs[0].Dataset,
			Solver:  recs[0].Solver,
			Trials:  len(recs),
		}
		var err error
		if ts.MaxTime, err = stats.Max(values); err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, nil
}

func groupByID(records []model.Record) (map[string][]model.Record, []string) {
	groups := make(map[string][]model.Record)
	for _, rec := range records {
		groups[rec.ID()] = append(groups[rec.ID()], rec)
	}
	order := make([]string, 0, len(groups))
	for id := range groups {
		order = append(order, id)
	}
	sort.Strings(order)
	return groups, order
}
