// Solvestat - statistical reporting over parity-game solver benchmarks.
// Reads the experiment results file and emits readable and LaTeX tables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solvestat/solvestat/internal/pipe"
	"github.com/solvestat/solvestat/pkg/config"
	"github.com/solvestat/solvestat/pkg/engine"
	"github.com/solvestat/solvestat/pkg/results"
	"github.com/solvestat/solvestat/pkg/tui"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// CLI flags
var (
	inputFile  string
	engineFlag string
	plainOnly  bool
	latexOnly  bool
	verbose    bool

	// Export flags
	exportPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "solvestat",
	Short: "Solvestat - report parity-game solver benchmark results",
	Long: `Solvestat aggregates the results file of a parity-game solver experiment
run and prints dataset statistics, cross-solver consistency sets and the
summed-mean-time comparison table, as readable text and as LaTeX
booktabs fragments.

Running without a subcommand produces the full report.`,
	Version: fmt.Sprintf("%s (%s)", version, commit),
	RunE:    runReport,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Produce the full report",
	Long: `Produce the full report: dataset statistics (plain and LaTeX, with and
without the priorities split), consistency-set cardinalities, and the
cross-solver summary table.

Examples:
  solvestat report
  solvestat report -i results.csv
  solvestat report --latex-only
  solvestat report --engine duckdb`,
	RunE: runReport,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "Results file path (default from config)")
	rootCmd.PersistentFlags().StringVar(&engineFlag, "engine", "mem", "Descriptive statistics engine (mem, duckdb)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	for _, cmd := range []*cobra.Command{rootCmd, reportCmd, describeCmd, summaryCmd} {
		cmd.Flags().BoolVar(&plainOnly, "plain-only", false, "Emit only the readable tables")
		cmd.Flags().BoolVar(&latexOnly, "latex-only", false, "Emit only the LaTeX fragments")
	}

	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "report.xlsx", "Output workbook path")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(exportCmd)
}

// resolveInput returns the results path from the flag or the config.
func resolveInput() string {
	if inputFile != "" {
		return inputFile
	}
	return config.Global().Get().Input
}

// newPipeline builds the pipeline from the loaded configuration. In
// verbose mode a progress bar tracks the file read.
func newPipeline(path string) *pipe.Pipeline {
	cfg := config.Global().Get()

	pcfg := pipe.Config{
		Datasets:    cfg.Datasets,
		SolverOrder: cfg.Solvers,
	}
	if verbose {
		if stat, err := os.Stat(path); err == nil {
			bar := tui.ShowProgress(stat.Size(), "Reading "+path)
			pcfg.Reader.Progress = func(n int64) { bar.Set64(n) }
		}
	}
	return pipe.New(pcfg)
}

// loadReport runs the pipeline and, when the DuckDB engine is selected,
// replaces the descriptive pass with the SQL-computed statistics.
func loadReport(path string) (*pipe.Pipeline, *pipe.Report, error) {
	pipeline := newPipeline(path)
	rep, err := pipeline.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if engineFlag == "duckdb" {
		eng, err := engine.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer eng.Close()

		if rep.ByDataset, err = eng.Describe(false); err != nil {
			return nil, nil, err
		}
		if rep.ByPriorities, err = eng.Describe(true); err != nil {
			return nil, nil, err
		}
	}
	return pipeline, rep, nil
}

func renderOptions() (pipe.RenderOptions, error) {
	if plainOnly && latexOnly {
		return pipe.RenderOptions{}, fmt.Errorf("--plain-only and --latex-only are mutually exclusive")
	}
	return pipe.RenderOptions{
		Plain: !latexOnly,
		LaTeX: !plainOnly,
	}, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	opts, err := renderOptions()
	if err != nil {
		return err
	}

	path := resolveInput()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", results.ErrInputNotFound, path)
	}

	if verbose {
		tui.PrintHeader(os.Stdout, version)
		tui.PrintStatus(os.Stdout, "Input", path)
		tui.PrintStatus(os.Stdout, "Engine", engineFlag)
	}

	pipeline, rep, err := loadReport(path)
	if err != nil {
		return err
	}
	if verbose {
		tui.ClearLine()
		tui.PrintStatus(os.Stdout, "Rows", fmt.Sprintf("%d (%d after cleaning)", rep.RawRows, len(rep.Cleaned)))
	}

	return pipeline.Render(os.Stdout, rep, opts)
}
