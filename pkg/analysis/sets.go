package analysis

// ConsistencySets holds the model subsets usable for a fair cross-solver
// comparison. AllSolved contains the models every solver completed;
// AllDoneOrTimedOut additionally admits models where a solver recorded a
// definitive timeout. Models a solver neither solved nor timed out on
// (silent failures) are in neither set, which is the point: they would
// introduce survivorship bias.
type ConsistencySets struct {
	// Solvers is the full solver column set observed in either pivot.
	Solvers []string

	AllSolved         []ModelKey
	AllDoneOrTimedOut []ModelKey

	// AllSolvedByDataset restricts AllSolved to each configured dataset
	// label. Labels absent from the data map to an empty subset.
	AllSolvedByDataset map[string][]ModelKey
}

// Sets computes the consistency sets from the per-trial statistics.
// The solver column set is taken from the union of both reshapes, so a
// solver that only ever timed out still disqualifies models it has no
// completed entry for.
func Sets(times []TimeStats, timeouts []TimeoutStats, datasets []string) ConsistencySets {
	timesPivot := PivotTimes(times)
	union := Union(timesPivot, PivotTimeouts(timeouts))

	sets := ConsistencySets{
		Solvers:           union.Solvers,
		AllSolved:         timesPivot.CompleteFor(union.Solvers),
		AllDoneOrTimedOut: union.CompleteFor(union.Solvers),
	}

	sets.AllSolvedByDataset = make(map[string][]ModelKey, len(datasets))
	for _, dataset := range datasets {
		subset := []ModelKey{}
		for _, key := range sets.AllSolved {
			if key.Dataset == dataset {
				subset = append(subset, key)
			}
		}
		sets.AllSolvedByDataset[dataset] = subset
	}
	return sets
}
