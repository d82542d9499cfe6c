// Package model defines the benchmark run record shared by all stages.
package model

// Dataset labels used by the default benchmark suites.
const (
	DatasetModelChecking = "modelchecking"
	DatasetEquivChecking = "equivchecking"
	DatasetSynt          = "synt"
)

// Record is one solver run on one benchmark instance. A (Model, Dataset,
// Solver) triple may occur multiple times, once per repeated trial.
//
// For timed-out runs Time holds the timeout threshold that was reached,
// not a solve time, and Done is false.
type Record struct {
	Model   string
	Dataset string
	Solver  string
	Time    float64
	Done    bool

	// Instance size statistics. Nodes == 0 marks a malformed or
	// placeholder entry that must be dropped before aggregation.
	Nodes      int64
	Edges      int64
	Priorities int64

	// Solver-specific outputs, parsed but never aggregated.
	Solving int64
	Metric  float64
}

// ID returns the composite trial key: one solver on one instance.
func (r Record) ID() string {
	return r.Model + "-" + r.Solver
}
