// SPDX-License-Identifier: MIT

package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ringnet/matrix"
)

// CSVOptions selects what ReadMatrixCSV extracts.
type CSVOptions struct {
	// Columns names the numeric columns, in dimension order. Empty means every
	// header column except LabelColumn.
	Columns []string
	// LabelColumn optionally names a column carried as a per-row string label.
	LabelColumn string
}

// Dataset is a numeric table plus the metadata needed to join results back.
type Dataset struct {
	Matrix  *matrix.Dense
	Columns []string // Columns[d] is the header name of dimension d
	Labels  []string // Labels[r] is the label of row r; nil without LabelColumn
}

// ReadMatrixCSV reads a CSV whose first record is a header.
// Header names and cells are whitespace-trimmed before use; a name that
// repeats after trimming is rejected with ErrDuplicateColumn.
// Complexity: O(R·C).
func ReadMatrixCSV(r io.Reader, opts CSVOptions) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ReadMatrixCSV: missing header: %w", ErrNoRows)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadMatrixCSV: header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
		if first, dup := index[header[i]]; dup {
			return nil, fmt.Errorf("ReadMatrixCSV: %q at columns %d and %d: %w", header[i], first, i, ErrDuplicateColumn)
		}
		index[header[i]] = i
	}

	columns := opts.Columns
	if len(columns) == 0 {
		for _, h := range header {
			if h != opts.LabelColumn {
				columns = append(columns, h)
			}
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("ReadMatrixCSV: no numeric columns: %w", ErrMissingColumn)
	}
	pos := make([]int, len(columns))
	for d, name := range columns {
		i, ok := index[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("ReadMatrixCSV: %q: %w", name, ErrMissingColumn)
		}
		pos[d] = i
	}
	labelPos := -1
	if opts.LabelColumn != "" {
		i, ok := index[strings.TrimSpace(opts.LabelColumn)]
		if !ok {
			return nil, fmt.Errorf("ReadMatrixCSV: label %q: %w", opts.LabelColumn, ErrMissingColumn)
		}
		labelPos = i
	}

	var (
		rows   [][]float64
		labels []string
	)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadMatrixCSV: line %d: %w", line, err)
		}
		row := make([]float64, len(pos))
		for d, i := range pos {
			cell := strings.TrimSpace(rec[i])
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("ReadMatrixCSV: line %d column %q value %q: %w", line, columns[d], cell, ErrParse)
			}
			row[d] = v
		}
		rows = append(rows, row)
		if labelPos >= 0 {
			labels = append(labels, strings.TrimSpace(rec[labelPos]))
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("ReadMatrixCSV: %w", ErrNoRows)
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrixCSV: %w", err)
	}

	return &Dataset{Matrix: m, Columns: append([]string(nil), columns...), Labels: labels}, nil
}
