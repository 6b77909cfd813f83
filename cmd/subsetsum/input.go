package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/subsetsum/runner"
)

// errColumnMissing reports a row too short for the selected column.
var errColumnMissing = errors.New("subsetsum: column missing")

// readColumn returns the numeric cells of one CSV column, one value per data row.
// Blank cells become NaN so positions stay aligned with rows; the search drops them.
func readColumn(r io.Reader, column int, header bool) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		values []float64
		row    int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		row++
		if header && row == 1 {
			continue
		}
		if column >= len(rec) {
			return nil, fmt.Errorf("%w: row %d has %d fields, need column %d", errColumnMissing, row, len(rec), column)
		}
		cell := strings.TrimSpace(rec[column])
		if cell == "" {
			values = append(values, math.NaN())

			continue
		}
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		values = append(values, f)
	}
}

// parseTargets parses a comma-separated list of non-negative numbers.
func parseTargets(list string) ([]uint64, error) {
	var out []uint64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", field, err)
		}
		t, ok := runner.TargetFromFloat(f)
		if !ok {
			return nil, fmt.Errorf("target %q: out of range", field)
		}
		out = append(out, t)
	}

	return out, nil
}
