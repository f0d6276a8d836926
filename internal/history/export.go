package history

import (
	"encoding/csv"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

var csvHeader = []string{"id", "created_at", "chapter", "equation", "solver", "symbol", "param", "value", "inputs"}

// ExportCSV writes records as CSV. Inputs are flattened to
// "param=value" pairs separated by semicolons, sorted by name.
func ExportCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.ID,
			r.CreatedAt.Format(time.RFC3339),
			r.Chapter,
			r.Equation,
			r.Solver,
			r.Symbol,
			r.Param,
			strconv.FormatFloat(r.Value, 'g', -1, 64),
			formatInputs(r.Inputs),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatInputs(inputs map[string]float64) string {
	parts := make([]string, 0, len(inputs))
	for _, k := range slices.Sorted(maps.Keys(inputs)) {
		parts = append(parts, k+"="+strconv.FormatFloat(inputs[k], 'g', -1, 64))
	}
	return strings.Join(parts, ";")
}
