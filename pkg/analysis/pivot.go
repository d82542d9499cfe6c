package analysis

import "sort"

// ModelKey identifies one row of a solver pivot: one benchmark instance
// within its dataset.
type ModelKey struct {
	Model   string
	Dataset string
}

// Pivot is a wide reshape of per-trial statistics: one row per model,
// one column per solver. A missing cell means the solver has no entry
// for that model.
type Pivot struct {
	Solvers []string
	cells   map[ModelKey]map[string]float64
}

// PivotTimes reshapes completed-time statistics, cell value = median.
func PivotTimes(times []TimeStats) Pivot {
	p := newPivot()
	for _, ts := range times {
		p.set(ModelKey{Model: ts.Model, Dataset: ts.Dataset}, ts.Solver, ts.Median)
	}
	p.finish()
	return p
}

// PivotTimeouts reshapes timeout bounds, cell value = max timeout.
func PivotTimeouts(timeouts []TimeoutStats) Pivot {
	p := newPivot()
	for _, ts := range timeouts {
		p.set(ModelKey{Model: ts.Model, Dataset: ts.Dataset}, ts.Solver, ts.MaxTime)
	}
	p.finish()
	return p
}

// Union merges two pivots cell-wise. Cells of a win on overlap; the
// solver column set is the union of both.
func Union(a, b Pivot) Pivot {
	out := newPivot()
	for key, row := range b.cells {
		for solver, v := range row {
			out.set(key, solver, v)
		}
	}
	for key, row := range a.cells {
		for solver, v := range row {
			out.set(key, solver, v)
		}
	}
	out.finish()
	return out
}

// Value returns the cell for (key, solver) and whether it is present.
func (p Pivot) Value(key ModelKey, solver string) (float64, bool) {
	row, ok := p.cells[key]
	if !ok {
		return 0, false
	}
	v, ok := row[solver]
	return v, ok
}

// Keys returns all row keys, sorted by dataset then model.
func (p Pivot) Keys() []ModelKey {
	keys := make([]ModelKey, 0, len(p.cells))
	for key := range p.cells {
		keys = append(keys, key)
	}
	sortKeys(keys)
	return keys
}

// CompleteFor returns the row keys that have a cell for every solver in
// solvers, sorted by dataset then model.
func (p Pivot) CompleteFor(solvers []string) []ModelKey {
	var keys []ModelKey
	for key, row := range p.cells {
		complete := true
		for _, solver := range solvers {
			if _, ok := row[solver]; !ok {
				complete = false
				break
			}
		}
		if complete {
			keys = append(keys, key)
		}
	}
	sortKeys(keys)
	return keys
}

func newPivot() Pivot {
	return Pivot{cells: make(map[ModelKey]map[string]float64)}
}

func (p *Pivot) set(key ModelKey, solver string, v float64) {
	row, ok := p.cells[key]
	if !ok {
		row = make(map[string]float64)
		p.cells[key] = row
	}
	row[solver] = v
}

// finish recomputes the sorted solver column list from the cells.
func (p *Pivot) finish() {
	seen := make(map[string]bool)
	for _, row := range p.cells {
		for solver := range row {
			seen[solver] = true
		}
	}
	p.Solvers = p.Solvers[:0]
	for solver := range seen {
		p.Solvers = append(p.Solvers, solver)
	}
	sort.Strings(p.Solvers)
}

func sortKeys(keys []ModelKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Dataset != keys[j].Dataset {
			return keys[i].Dataset < keys[j].Dataset
		}
		return keys[i].Model < keys[j].Model
	})
}
