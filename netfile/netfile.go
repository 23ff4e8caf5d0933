package netfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// catalogueHeader is the column header ReadCatalogue recognizes and
// WriteCatalogue emits. A first row that fails to parse as a float is
// treated as this header and skipped; any other unparseable row is an
// error.
const catalogueHeader = "value"

// ReadCatalogue reads a list of resistance values from CSV, one value
// per row in the first column. An optional header row is tolerated and
// skipped.
func ReadCatalogue(r io.Reader) ([]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("%w: row %d: %q", ErrMalformedRow, i, row[0])
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, ErrEmptyCatalogue
	}

	return values, nil
}

// WriteCatalogue writes values as a single-column CSV with a header row.
func WriteCatalogue(w io.Writer, values []float64) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{catalogueHeader}); err != nil {
		return err
	}
	for _, v := range values {
		if err := writer.Write([]string{strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	writer.Flush()

	return writer.Error()
}

// Result is one synthesis outcome, suited to a batch run over many
// targets.
type Result struct {
	Target     float64
	Achieved   float64
	Components int
	Expression string
}

// resultHeader is the fixed column order WriteResults emits.
var resultHeader = []string{"target", "achieved", "absolute_error", "relative_error", "components", "expression"}

// WriteResults writes a batch of synthesis results as CSV, with derived
// absolute and relative error columns.
func WriteResults(w io.Writer, results []Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(resultHeader); err != nil {
		return err
	}

	for _, res := range results {
		absErr := res.Achieved - res.Target
		relErr := 0.0
		if res.Target != 0 {
			relErr = absErr / res.Target
		}

		row := []string{
			strconv.FormatFloat(res.Target, 'g', -1, 64),
			strconv.FormatFloat(res.Achieved, 'g', -1, 64),
			strconv.FormatFloat(absErr, 'g', -1, 64),
			strconv.FormatFloat(relErr, 'g', -1, 64),
			strconv.Itoa(res.Components),
			res.Expression,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()

	return writer.Error()
}
