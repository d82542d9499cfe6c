// Package results reads the delimited solver results file into run records.
//
// The file is semicolon separated with no header row and a fixed column
// order: model, dataset, solver, time, done, nodes, edges, priorities,
// solving, metric. Fields are trimmed of surrounding whitespace. Schema
// violations are fatal for the whole read; silently dropping bad rows
// would skew the reported figures.
package results

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/solvestat/solvestat/internal/model"
)

// fieldCount is the declared schema width.
const fieldCount = 10

// Config controls reading behavior.
type Config struct {
	// Delimiter separating fields. Defaults to ';'.
	Delimiter byte

	// Progress, if set, is called with the cumulative number of input
	// bytes consumed. Used by the CLI to drive a progress bar.
	Progress func(bytes int64)
}

// Reader parses results files.
type Reader struct {
	cfg Config
}

// NewReader creates a reader with the given configuration.
func NewReader(cfg Config) *Reader {
	if cfg.Delimiter == 0 {
		cfg.Delimiter = ';'
	}
	return &Reader{cfg: cfg}
}

// ReadFile reads all run records from the file at path.
func (r *Reader) ReadFile(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("results: open %s: %w", path, err)
	}
	defer f.Close()

	return r.Read(f)
}

// Read reads all run records from the reader until EOF.
func (r *Reader) Read(in io.Reader) ([]model.Record, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		records  []model.Record
		lineNum  int
		consumed int64
	)

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++
		consumed += int64(len(line)) + 1
		if r.cfg.Progress != nil {
			r.cfg.Progress(consumed)
		}

		// A trailing newline yields one empty final line; that is not
		// a row and not a schema violation.
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := r.parseLine(line, lineNum)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("results: read: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	return records, nil
}

// parseLine parses one data row against the declared schema.
func (r *Reader) parseLine(line string, lineNum int) (model.Record, error) {
	fields := strings.Split(line, string(r.cfg.Delimiter))
	if len(fields) != fieldCount {
		return model.Record{}, fmt.Errorf("%w: line %d: got %d fields, want %d",
			ErrMalformedRow, lineNum, len(fields), fieldCount)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var (
		rec  model.Record
		err  error
		done int64
	)

	rec.Model = fields[0]
	rec.Dataset = fields[1]
	rec.Solver = fields[2]

	if rec.Time, err = strconv.ParseFloat(fields[3], 64); err != nil {
		return model.Record{}, malformed(lineNum, "time", fields[3])
	}
	if done, err = strconv.ParseInt(fields[4], 10, 64); err != nil {
		return model.Record{}, malformed(lineNum, "done", fields[4])
	}
	rec.Done = done != 0
	if rec.Nodes, err = strconv.ParseInt(fields[5], 10, 64); err != nil {
		return model.Record{}, malformed(lineNum, "nodes", fields[5])
	}
	if rec.Edges, err = strconv.ParseInt(fields[6], 10, 64); err != nil {
		return model.Record{}, malformed(lineNum, "edges", fields[6])
	}
	if rec.Priorities, err = strconv.ParseInt(fields[7], 10, 64); err != nil {
		return model.Record{}, malformed(lineNum, "priorities", fields[7])
	}
	if rec.Solving, err = strconv.ParseInt(fields[8], 10, 64); err != nil {
		return model.Record{}, malformed(lineNum, "solving", fields[8])
	}
	if rec.Metric, err = strconv.ParseFloat(fields[9], 64); err != nil {
		return model.Record{}, malformed(lineNum, "metric", fields[9])
	}

	return rec, nil
}

func malformed(lineNum int, column, value string) error {
	return fmt.Errorf("%w: line %d: column %s: %q", ErrMalformedRow, lineNum, column, value)
}
