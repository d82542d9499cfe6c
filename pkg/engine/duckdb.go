// Package engine provides the DuckDB-backed descriptive engine. The
// in-process pipeline in pkg/analysis is the default; this engine pushes
// the dataset statistics into SQL, which is faster on very large result
// files and doubles as a cross-check of the in-process numbers.
package engine

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/solvestat/solvestat/pkg/analysis"
)

// DuckDB wraps an in-memory DuckDB instance with the results file loaded
// into a `runs` table matching the declared schema.
type DuckDB struct {
	db *sql.DB
}

// Open creates the engine and loads the results file at path. The file
// is headerless and semicolon separated; fields are trimmed during load
// so DuckDB sees the same values as the in-process reader.
func Open(path string) (*DuckDB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("engine: open duckdb: %w", err)
	}

	load := fmt.Sprintf(`
		CREATE TABLE runs AS
		SELECT
			TRIM(column00)                         AS model,
			TRIM(column01)                         AS dataset,
			TRIM(column02)                         AS solver,
			CAST(TRIM(column03) AS DOUBLE)         AS time,
			CAST(TRIM(column04) AS BIGINT) <> 0    AS done,
			CAST(TRIM(column05) AS BIGINT)         AS nodes,
			CAST(TRIM(column06) AS BIGINT)         AS edges,
			CAST(TRIM(column07) AS BIGINT)         AS priorities,
			CAST(TRIM(column08) AS BIGINT)         AS solving,
			CAST(TRIM(column09) AS DOUBLE)         AS metric
		FROM read_csv('%s', header=false, delim=';', all_varchar=true)
	`, quoteLiteral(path))

	if _, err := db.Exec(load); err != nil {
		db.Close()
		return nil, fmt.Errorf("engine: load results: %w", err)
	}
	return &DuckDB{db: db}, nil
}

// Describe computes the dataset statistics in SQL, matching
// analysis.Describe on the same input.
func (e *DuckDB) Describe(byPriorities bool) ([]analysis.DatasetStats, error) {
	groupCols := "dataset"
	prioritiesExpr := fmt.Sprintf("%d", analysis.UnsplitPriorities)
	if byPriorities {
		groupCols = "dataset, priorities"
		prioritiesExpr = "priorities"
	}

	query := fmt.Sprintf(`
		WITH instances AS (
			SELECT %s, model,
				MAX(nodes) AS nodes,
				MAX(edges) AS edges
			FROM runs
			WHERE nodes <> 0
			GROUP BY %s, model
		)
		SELECT dataset, %s,
			COUNT(*)                        AS models,
			AVG(nodes)                      AS mean_nodes,
			MAX(nodes)                      AS max_nodes,
			AVG(edges)                      AS mean_edges,
			MAX(edges)                      AS max_edges,
			AVG(edges * 1.0 / nodes)        AS mean_ratio,
			MAX(edges * 1.0 / nodes)        AS max_ratio
		FROM instances
		GROUP BY %s
		ORDER BY %s
	`, groupCols, groupCols, prioritiesExpr, groupCols, groupCols)

	rows, err := e.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("engine: describe: %w", err)
	}
	defer rows.Close()

	var out []analysis.DatasetStats
	for rows.Next() {
		var ds analysis.DatasetStats
		var maxNodes, maxEdges int64
		if err := rows.Scan(&ds.Dataset, &ds.Priorities, &ds.Models,
			&ds.MeanNodes, &maxNodes, &ds.MeanEdges, &maxEdges,
			&ds.MeanRatio, &ds.MaxRatio); err != nil {
			return nil, err
		}
		ds.MaxNodes = float64(maxNodes)
		ds.MaxEdges = float64(maxEdges)
		out = append(out, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, analysis.ErrEmptyResultSet
	}
	return out, nil
}

// RowCount returns the number of rows loaded from the results file.
func (e *DuckDB) RowCount() (int64, error) {
	var count int64
	if err := e.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Close releases the DuckDB instance.
func (e *DuckDB) Close() error {
	return e.db.Close()
}

// quoteLiteral escapes a value for use inside a single-quoted SQL
// string literal. read_csv takes the path as a literal, so quotes in
// the file name must be doubled.
func quoteLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
