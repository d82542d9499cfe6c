package analysis

import (
	"sort"

	"github.com/solvestat/solvestat/internal/model"
	"github.com/solvestat/solvestat/pkg/stats"
)

// UnsplitPriorities marks the describe view that is not split by the
// priority count.
const UnsplitPriorities int64 = -1

// DatasetStats holds the descriptive statistics of one dataset group,
// computed over the distinct benchmark instances in the group.
type DatasetStats struct {
	Dataset    string
	Priorities int64 // UnsplitPriorities in the dataset-only view

	Models    int
	MeanNodes float64
	MaxNodes  float64
	MeanEdges float64
	MaxEdges  float64
	MeanRatio float64 // edges per node
	MaxRatio  float64
}

// Describe groups cleaned records by dataset, or by dataset and priority
// count when byPriorities is set, and computes size statistics over the
// distinct models of each group. Repeated trials and solver variants of
// the same model count once.
func Describe(records []model.Record, byPriorities bool) ([]DatasetStats, error) {
	if len(records) == 0 {
		return nil, ErrEmptyResultSet
	}

	type groupKey struct {
		dataset    string
		priorities int64
	}

	// First record wins per model; trials of the same instance carry the
	// same size fields.
	sizes := make(map[groupKey]map[string]model.Record)
	for _, rec := range records {
		key := groupKey{dataset: rec.Dataset, priorities: UnsplitPriorities}
		if byPriorities {
			key.priorities = rec.Priorities
		}
		group, ok := sizes[key]
		if !ok {
			group = make(map[string]model.Record)
			sizes[key] = group
		}
		if _, seen := group[rec.Model]; !seen {
			group[rec.Model] = rec
		}
	}

	out := make([]DatasetStats, 0, len(sizes))
	for key, group := range sizes {
		nodes := make([]float64, 0, len(group))
		edges := make([]float64, 0, len(group))
		ratios := make([]float64, 0, len(group))
		for _, rec := range group {
			nodes = append(nodes, float64(rec.Nodes))
			edges = append(edges, float64(rec.Edges))
			ratios = append(ratios, float64(rec.Edges)/float64(rec.Nodes))
		}

		ds := DatasetStats{
			Dataset:    key.dataset,
			Priorities: key.priorities,
			Models:     len(group),
		}
		var err error
		if ds.MeanNodes, err = stats.Mean(nodes); err != nil {
			return nil, err
		}
		if ds.MaxNodes, err = stats.Max(nodes); err != nil {
			return nil, err
		}
		if ds.MeanEdges, err = stats.Mean(edges); err != nil {
			return nil, err
		}
		if ds.MaxEdges, err = stats.Max(edges); err != nil {
			return nil, err
		}
		if ds.MeanRatio, err = stats.Mean(ratios); err != nil {
			return nil, err
		}
		if ds.MaxRatio, err = stats.Max(ratios); err != nil {
			return nil, err
		}
		out = append(out, ds)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Dataset != out[j].Dataset {
			return out[i].Dataset < out[j].Dataset
		}
		return out[i].Priorities < out[j].Priorities
	})
	return out, nil
}
