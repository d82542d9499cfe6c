// Package pipe wires the reporting stages into one forward pipeline:
// read, clean, describe, partition, per-trial statistics, consistency
// sets, summary, render. There is no control state; each stage consumes
// the previous stage's immutable output.
package pipe

import (
	"errors"
	"fmt"
	"io"

	"github.com/solvestat/solvestat/internal/model"
	"github.com/solvestat/solvestat/pkg/analysis"
	"github.com/solvestat/solvestat/pkg/render"
	"github.com/solvestat/solvestat/pkg/results"
)

// Config controls one pipeline run.
type Config struct {
	// Datasets are the category labels reported in the consistency-set
	// status lines, in order.
	Datasets []string

	// SolverOrder is the declared solver column order of the summary.
	SolverOrder []string

	// Reader configures the results file reader.
	Reader results.Config
}

// Pipeline computes reports from results files.
type Pipeline struct {
	cfg Config
}

// New creates a pipeline with the given configuration.
func New(cfg Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Report holds every derived table of one pipeline run.
type Report struct {
	// RawRows is the row count before cleaning.
	RawRows int

	// Cleaned are the surviving records (Nodes != 0).
	Cleaned []model.Record

	ByDataset    []analysis.DatasetStats
	ByPriorities []analysis.DatasetStats

	Times    []analysis.TimeStats
	Timeouts []analysis.TimeoutStats

	Sets    analysis.ConsistencySets
	Summary analysis.Summary
}

// Load reads the results file at path and computes all derived tables.
func (p *Pipeline) Load(path string) (*Report, error) {
	reader := results.NewReader(p.cfg.Reader)
	records, err := reader.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.build(records)
}

// LoadFrom is Load over an arbitrary reader.
func (p *Pipeline) LoadFrom(in io.Reader) (*Report, error) {
	reader := results.NewReader(p.cfg.Reader)
	records, err := reader.Read(in)
	if err != nil {
		return nil, err
	}
	return p.build(records)
}

func (p *Pipeline) build(records []model.Record) (*Report, error) {
	rep := &Report{
		RawRows: len(records),
		Cleaned: analysis.Clean(records),
	}

	var err error
	if rep.ByDataset, err = analysis.Describe(rep.Cleaned, false); err != nil {
		return nil, fmt.Errorf("describe: %w", err)
	}
	if rep.ByPriorities, err = analysis.Describe(rep.Cleaned, true); err != nil {
		return nil, fmt.Errorf("describe by priorities: %w", err)
	}

	times, timeouts := analysis.Split(rep.Cleaned)
	if rep.Times, err = analysis.SolveTimes(times); err != nil {
		return nil, fmt.Errorf("solve times: %w", err)
	}
	if rep.Timeouts, err = analysis.TimeoutBounds(timeouts); err != nil {
		return nil, fmt.Errorf("timeout bounds: %w", err)
	}

	rep.Sets = analysis.Sets(rep.Times, rep.Timeouts, p.cfg.Datasets)

	// An empty AllSolved set is a legitimate outcome, not a failure:
	// the set cardinalities are still worth reporting, the summary
	// table is simply empty.
	if rep.Summary, err = analysis.Summarize(rep.Times, rep.Sets.AllSolved, p.cfg.SolverOrder); err != nil {
		if errors.Is(err, analysis.ErrEmptyResultSet) {
			rep.Summary = analysis.Summary{}
		} else {
			return nil, fmt.Errorf("summarize: %w", err)
		}
	}
	return rep, nil
}

// RenderOptions selects the emitted table formats.
type RenderOptions struct {
	Plain bool
	LaTeX bool
}

// Render writes the report tables and status lines to w, in the order
// the paper consumes them: dataset statistics, consistency-set
// cardinalities, cross-solver summary.
func (p *Pipeline) Render(w io.Writer, rep *Report, opts RenderOptions) error {
	if opts.Plain {
		if err := writeAll(w,
			render.Plain(render.DescribeLong(rep.ByDataset, false)),
			render.Plain(render.DescribeLong(rep.ByPriorities, true)),
		); err != nil {
			return err
		}
	}
	if opts.LaTeX {
		if err := writeAll(w,
			render.LaTeX(render.DescribeMatrix(rep.ByDataset, false)),
			render.LaTeX(render.DescribeMatrix(rep.ByPriorities, true)),
		); err != nil {
			return err
		}
	}

	for _, line := range render.SetsReport(rep.Sets, p.cfg.Datasets) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if len(rep.Summary.Rows) == 0 {
		return nil
	}
	if opts.Plain {
		if err := writeAll(w, render.Plain(render.SummaryTable(rep.Summary, false))); err != nil {
			return err
		}
	}
	if opts.LaTeX {
		if err := writeAll(w, render.LaTeX(render.SummaryTable(rep.Summary, true))); err != nil {
			return err
		}
	}
	return nil
}

func writeAll(w io.Writer, blocks ...string) error {
	for _, block := range blocks {
		if _, err := io.WriteString(w, block); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
