package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solvestat/solvestat/pkg/config"
	"github.com/solvestat/solvestat/pkg/engine"
	"github.com/solvestat/solvestat/pkg/export"
	"github.com/solvestat/solvestat/pkg/render"
	"github.com/solvestat/solvestat/pkg/tui"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the dataset statistics only",
	Long: `Print the descriptive statistics of the benchmark datasets: distinct
model counts and node/edge size statistics, with and without the
priorities split.

Examples:
  solvestat describe
  solvestat describe --engine duckdb --latex-only`,
	RunE: runDescribe,
}

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Print the consistency-set cardinalities",
	Long: `Print the cardinality of each cross-solver consistency set: the models
every solver solved, the models every solver either solved or timed out
on, and the per-dataset restrictions. With -v the members are listed.`,
	RunE: runSets,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the cross-solver summary table only",
	RunE:  runSummary,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display information about the results file",
	RunE:  runInfo,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the report tables to an Excel workbook",
	Long: `Write the dataset statistics and the cross-solver summary to an .xlsx
workbook, one sheet per table.

Examples:
  solvestat export
  solvestat export -i results.csv -o paper-tables.xlsx`,
	RunE: runExport,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	opts, err := renderOptions()
	if err != nil {
		return err
	}

	_, rep, err := loadReport(resolveInput())
	if err != nil {
		return err
	}

	if opts.Plain {
		fmt.Print(render.Plain(render.DescribeLong(rep.ByDataset, false)))
		fmt.Println()
		fmt.Print(render.Plain(render.DescribeLong(rep.ByPriorities, true)))
		fmt.Println()
	}
	if opts.LaTeX {
		fmt.Print(render.LaTeX(render.DescribeMatrix(rep.ByDataset, false)))
		fmt.Println()
		fmt.Print(render.LaTeX(render.DescribeMatrix(rep.ByPriorities, true)))
	}
	return nil
}

func runSets(cmd *cobra.Command, args []string) error {
	_, rep, err := loadReport(resolveInput())
	if err != nil {
		return err
	}

	datasets := config.Global().Get().Datasets
	for _, line := range render.SetsReport(rep.Sets, datasets) {
		fmt.Println(line)
	}

	if verbose {
		tui.PrintSection(os.Stdout, "MEMBERS OF AllSolved")
		for _, key := range rep.Sets.AllSolved {
			fmt.Printf("  %s (%s)\n", key.Model, key.Dataset)
		}
	}
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	opts, err := renderOptions()
	if err != nil {
		return err
	}

	_, rep, err := loadReport(resolveInput())
	if err != nil {
		return err
	}

	if opts.Plain {
		fmt.Print(render.Plain(render.SummaryTable(rep.Summary, false)))
		fmt.Println()
	}
	if opts.LaTeX {
		fmt.Print(render.LaTeX(render.SummaryTable(rep.Summary, true)))
	}
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := resolveInput()
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("results file not accessible: %w", err)
	}

	_, rep, err := loadReport(path)
	if err != nil {
		return err
	}

	datasets := make(map[string]bool)
	solvers := make(map[string]bool)
	models := make(map[string]bool)
	for _, rec := range rep.Cleaned {
		datasets[rec.Dataset] = true
		solvers[rec.Solver] = true
		models[rec.Model] = true
	}

	tui.PrintStatus(os.Stdout, "File", path)
	tui.PrintStatus(os.Stdout, "Size", fmt.Sprintf("%d B", stat.Size()))
	tui.PrintStatus(os.Stdout, "Rows", fmt.Sprintf("%d (%d after cleaning)", rep.RawRows, len(rep.Cleaned)))
	if engineFlag == "duckdb" {
		eng, err := engine.Open(path)
		if err != nil {
			return err
		}
		defer eng.Close()
		count, err := eng.RowCount()
		if err != nil {
			return err
		}
		tui.PrintStatus(os.Stdout, "Rows (duckdb)", fmt.Sprintf("%d", count))
	}
	tui.PrintStatus(os.Stdout, "Models", fmt.Sprintf("%d", len(models)))
	tui.PrintStatus(os.Stdout, "Datasets", joinSorted(datasets))
	tui.PrintStatus(os.Stdout, "Solvers", joinSorted(solvers))
	tui.PrintStatus(os.Stdout, "Completed trial keys", fmt.Sprintf("%d", len(rep.Times)))
	tui.PrintStatus(os.Stdout, "Timed-out trial keys", fmt.Sprintf("%d", len(rep.Timeouts)))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	_, rep, err := loadReport(resolveInput())
	if err != nil {
		return err
	}

	sheets := map[string]render.Table{
		"Datasets":     render.DescribeLong(rep.ByDataset, false),
		"byPriorities": render.DescribeLong(rep.ByPriorities, true),
		"Summary":      render.SummaryTable(rep.Summary, false),
	}
	order := []string{"Datasets", "byPriorities", "Summary"}

	if err := export.Workbook(exportPath, sheets, order); err != nil {
		return err
	}
	tui.PrintDone(os.Stdout, "Wrote "+exportPath)
	return nil
}

func joinSorted(set map[string]bool) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
