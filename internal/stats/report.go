package stats

import (
	"fmt"

	"github.com/dbsmedya/tablestats/internal/query"
	"github.com/dbsmedya/tablestats/internal/types"
	"github.com/dbsmedya/tablestats/internal/warehouse"
)

// NotAvailable is shown for statistics the source returned as NULL.
const NotAvailable = "n/a"

// ColumnReport is the formatted result for one column: an UnsupportedReport,
// CategoricalReport or NumericReport.
type ColumnReport interface {
	ColumnName() string
	Kind() Kind
	columnReport()
}

// UnsupportedReport carries only the name of a column that was skipped.
type UnsupportedReport struct {
	Name string
}

// Summary holds the statistics every supported column has.
type Summary struct {
	Observations     int64
	DistinctCount    int64
	DistinctCountPct string
	MissingCount     int64
	MissingCountPct  string
}

// CategoricalReport describes a non-numeric column.
type CategoricalReport struct {
	Name string
	Summary
	CountsImage string
}

// NumericReport describes a numeric column.
type NumericReport struct {
	Name string
	Summary
	InfiniteCount    int64
	InfiniteCountPct string
	Average          string
	Minimum          string
	Maximum          string
	ZeroCount        int64
	ZeroCountPct     string
	NegativeCount    int64
	NegativeCountPct string
	CountsImage      string
}

func (r UnsupportedReport) ColumnName() string { return r.Name }
func (r UnsupportedReport) Kind() Kind         { return KindUnsupported }
func (UnsupportedReport) columnReport()        {}

func (r CategoricalReport) ColumnName() string { return r.Name }
func (r CategoricalReport) Kind() Kind         { return KindCategorical }
func (CategoricalReport) columnReport()        {}

func (r NumericReport) ColumnName() string { return r.Name }
func (r NumericReport) Kind() Kind         { return KindNumeric }
func (NumericReport) columnReport()        {}

// TableSummary is everything the report template renders.
type TableSummary struct {
	TableID     string
	ColumnCount int
	RowCount    int64
	ByteSize    int64
	Columns     []ColumnReport
}

// FormatDecimal renders a statistic with one decimal place, or NotAvailable
// for NULL.
func FormatDecimal(v any) string {
	f, ok := types.ToFloat64(v)
	if !ok {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f", f)
}

// rowReader pulls named fields out of a statistics row and remembers the
// first missing one.
type rowReader struct {
	row warehouse.Row
	err error
}

func (r *rowReader) value(name string) any {
	v, ok := r.row[name]
	if !ok && r.err == nil {
		r.err = fmt.Errorf("statistics row has no %s column", name)
	}
	return v
}

func (r *rowReader) count(name string) int64 {
	return types.ToInt64(r.value(name))
}

func (r *rowReader) decimal(name string) string {
	return FormatDecimal(r.value(name))
}

func (r *rowReader) summary() Summary {
	return Summary{
		Observations:     r.count(query.ColObservations),
		DistinctCount:    r.count(query.ColDistinctCount),
		DistinctCountPct: r.decimal(query.ColDistinctCountPct),
		MissingCount:     r.count(query.ColMissingCount),
		MissingCountPct:  r.decimal(query.ColMissingCountPct),
	}
}

// NewCategoricalReport formats a categorical statistics row.
func NewCategoricalReport(name string, row warehouse.Row, countsImage string) (CategoricalReport, error) {
	r := &rowReader{row: row}
	report := CategoricalReport{
		Name:        name,
		Summary:     r.summary(),
		CountsImage: countsImage,
	}
	if r.err != nil {
		return CategoricalReport{}, r.err
	}
	return report, nil
}

// NewNumericReport formats a numeric statistics row.
func NewNumericReport(name string, row warehouse.Row, countsImage string) (NumericReport, error) {
	r := &rowReader{row: row}
	report := NumericReport{
		Name:             name,
		Summary:          r.summary(),
		InfiniteCount:    r.count(query.ColInfiniteCount),
		InfiniteCountPct: r.decimal(query.ColInfiniteCountPct),
		Average:          r.decimal(query.ColAverage),
		Minimum:          r.decimal(query.ColMinimum),
		Maximum:          r.decimal(query.ColMaximum),
		ZeroCount:        r.count(query.ColZeroCount),
		ZeroCountPct:     r.decimal(query.ColZeroCountPct),
		NegativeCount:    r.count(query.ColNegativeCount),
		NegativeCountPct: r.decimal(query.ColNegativeCountPct),
		CountsImage:      countsImage,
	}
	if r.err != nil {
		return NumericReport{}, r.err
	}
	return report, nil
}
