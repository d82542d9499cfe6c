package analysis

import "sort"

// Summary is the final comparison table: per dataset, the sum of mean
// solve times over the AllSolved models, one column per solver.
type Summary struct {
	// Solvers is the column order: the configured solver order
	// restricted to solvers actually present in the data.
	Solvers []string
	Rows    []SummaryRow
}

// SummaryRow is one dataset row of the summary.
type SummaryRow struct {
	Dataset string
	// Totals maps solver to the summed mean time. A solver with no
	// eligible runs in the dataset has no entry.
	Totals map[string]float64
}

// Summarize restricts completed-time statistics to the AllSolved models,
// sums the mean times per (dataset, solver) and orders the solver
// columns by solverOrder. Solvers missing from solverOrder are dropped
// from the table; an empty solverOrder keeps every observed solver in
// lexical order.
func Summarize(times []TimeStats, allSolved []ModelKey, solverOrder []string) (Summary, error) {
	eligible := make(map[ModelKey]bool, len(allSolved))
	for _, key := range allSolved {
		eligible[key] = true
	}

	totals := make(map[string]map[string]float64) // dataset -> solver -> sum
	observed := make(map[string]bool)
	for _, ts := range times {
		if !eligible[ModelKey{Model: ts.Model, Dataset: ts.Dataset}] {
			continue
		}
		row, ok := totals[ts.Dataset]
		if !ok {
			row = make(map[string]float64)
			totals[ts.Dataset] = row
		}
		row[ts.Solver] += ts.Mean
		observed[ts.Solver] = true
	}
	if len(totals) == 0 {
		return Summary{}, ErrEmptyResultSet
	}

	var solvers []string
	if len(solverOrder) == 0 {
		for solver := range observed {
			solvers = append(solvers, solver)
		}
		sort.Strings(solvers)
	} else {
		for _, solver := range solverOrder {
			if observed[solver] {
				solvers = append(solvers, solver)
			}
		}
	}

	summary := Summary{Solvers: solvers}
	datasets := make([]string, 0, len(totals))
	for dataset := range totals {
		datasets = append(datasets, dataset)
	}
	sort.Strings(datasets)

	for _, dataset := range datasets {
		row := SummaryRow{Dataset: dataset, Totals: make(map[string]float64, len(solvers))}
		for _, solver := range solvers {
			if sum, ok := totals[dataset][solver]; ok {
				row.Totals[solver] = sum
			}
		}
		summary.Rows = append(summary.Rows, row)
	}
	return summary, nil
}
