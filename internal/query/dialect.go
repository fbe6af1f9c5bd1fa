package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownDialect is returned by ForName for an unregistered dialect.
var ErrUnknownDialect = errors.New("unknown dialect")

// Result column aliases produced by StatsQuery and CountsQuery.
const (
	ColName             = "name"
	ColObservations     = "observations"
	ColDistinctCount    = "Distinct_Count"
	ColDistinctCountPct = "Distinct_Count_Pct"
	ColMissingCount     = "Is_Missing_Count"
	ColMissingCountPct  = "Is_Missing_Count_Pct"
	ColInfiniteCount    = "Is_Infinite_Count"
	ColInfiniteCountPct = "Is_Infinite_Count_Pct"
	ColAverage          = "Average"
	ColMinimum          = "Minimum"
	ColMaximum          = "Maximum"
	ColZeroCount        = "Zero_Count"
	ColZeroCountPct     = "Zero_Count_Pct"
	ColNegativeCount    = "Negative_Count"
	ColNegativeCountPct = "Negative_Count_Pct"
	ColCount            = "count"
	ColRowCount         = "row_count"
	ColByteSize         = "byte_size"
	ColTableCatalog     = "table_catalog"
	ColTableSchema      = "table_schema"
	ColTableName        = "table_name"
	ColColumnName       = "column_name"
	ColFieldPath        = "field_path"
	ColDataType         = "data_type"
)

// Dialect builds query text for one SQL flavour.
type Dialect interface {
	// Name is the configuration key of the dialect.
	Name() string
	// SchemaQuery lists the table's columns with the projection
	// table_catalog, table_schema, table_name, column_name, field_path, data_type.
	SchemaQuery(ref TableRef) string
	// StatsQuery computes the single-row summary statistics of a column.
	StatsQuery(ref TableRef, column string, numeric bool) string
	// CountsQuery returns the top values of a column by descending count.
	CountsQuery(ref TableRef, column string, top int) string
	// TableInfoQuery returns row_count and byte_size. It is empty for
	// dialects whose executor reads table metadata through an API.
	TableInfoQuery(ref TableRef) string
	// NormalizeType maps a native column type onto the canonical type names
	// (INT64, STRING, ...). Unknown types are returned upper-cased.
	NormalizeType(native string) string
}

// Request is a statistics query that has been built but not yet executed.
type Request struct {
	Table   TableRef
	Column  string
	Numeric bool
	SQL     string
}

// NewStatsRequest builds the deferred statistics request for a column.
func NewStatsRequest(d Dialect, ref TableRef, column string, numeric bool) *Request {
	return &Request{
		Table:   ref,
		Column:  column,
		Numeric: numeric,
		SQL:     d.StatsQuery(ref, column, numeric),
	}
}

var registry = map[string]func() Dialect{
	"bigquery":  BigQuery,
	"mysql":     MySQL,
	"postgres":  Postgres,
	"sqlserver": SQLServer,
	"sqlite":    SQLite,
}

// ForName returns the dialect registered under name.
func ForName(name string) (Dialect, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
	}
	return ctor(), nil
}

// Names lists the registered dialects in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sqlDialect assembles queries from per-dialect hooks.
type sqlDialect struct {
	name      string
	quote     func(string) string
	literal   func(string) string
	tableName func(TableRef) string
	// countIf counts the rows matching cond.
	countIf   func(cond string) string
	// isInf is the condition matching +/-Inf values of col.
	isInf     func(col string) string
	// average wraps col for AVG.
	average   func(col string) string
	useTop    bool
	schema    func(d *sqlDialect, ref TableRef) string
	tableInfo func(d *sqlDialect, ref TableRef) string
	normalize func(native string) string
}

func (d *sqlDialect) Name() string { return d.name }

func (d *sqlDialect) SchemaQuery(ref TableRef) string { return d.schema(d, ref) }

func (d *sqlDialect) TableInfoQuery(ref TableRef) string {
	if d.tableInfo == nil {
		return ""
	}
	return d.tableInfo(d, ref)
}

func (d *sqlDialect) NormalizeType(native string) string { return d.normalize(native) }

func (d *sqlDialect) pct(expr string) string {
	return fmt.Sprintf("100.0 * %s / NULLIF(COUNT(1), 0)", expr)
}

func (d *sqlDialect) StatsQuery(ref TableRef, column string, numeric bool) string {
	col := d.quote(column)
	distinct := fmt.Sprintf("COUNT(DISTINCT %s)", col)
	missing := d.countIf(col + " IS NULL")

	selects := []string{
		d.literal(column) + " AS " + ColName,
		"COUNT(1) AS " + ColObservations,
		distinct + " AS " + ColDistinctCount,
		d.pct(distinct) + " AS " + ColDistinctCountPct,
		missing + " AS " + ColMissingCount,
		d.pct(missing) + " AS " + ColMissingCountPct,
	}

	if numeric {
		infinite := d.countIf(d.isInf(col))
		zero := d.countIf(col + " = 0")
		negative := d.countIf(col + " < 0")
		selects = append(selects,
			infinite+" AS "+ColInfiniteCount,
			d.pct(infinite)+" AS "+ColInfiniteCountPct,
			fmt.Sprintf("AVG(%s) AS %s", d.average(col), ColAverage),
			fmt.Sprintf("MIN(%s) AS %s", col, ColMinimum),
			fmt.Sprintf("MAX(%s) AS %s", col, ColMaximum),
			zero+" AS "+ColZeroCount,
			d.pct(zero)+" AS "+ColZeroCountPct,
			negative+" AS "+ColNegativeCount,
			d.pct(negative)+" AS "+ColNegativeCountPct,
		)
	}

	var b strings.Builder
	b.WriteString("SELECT\n  ")
	b.WriteString(strings.Join(selects, ",\n  "))
	b.WriteString("\nFROM ")
	b.WriteString(d.tableName(ref))
	return b.String()
}

func (d *sqlDialect) CountsQuery(ref TableRef, column string, top int) string {
	col := d.quote(column)
	count := d.quote(ColCount)

	var b strings.Builder
	b.WriteString("SELECT ")
	if d.useTop {
		fmt.Fprintf(&b, "TOP (%d) ", top)
	}
	fmt.Fprintf(&b, "%s, COUNT(%s) AS %s\n", col, col, count)
	fmt.Fprintf(&b, "FROM %s\n", d.tableName(ref))
	fmt.Fprintf(&b, "GROUP BY %s\n", col)
	fmt.Fprintf(&b, "ORDER BY %s DESC", count)
	if !d.useTop {
		fmt.Fprintf(&b, "\nLIMIT %d", top)
	}
	return b.String()
}

// countIfCase is the portable COUNTIF.
func countIfCase(cond string) string {
	return "COUNT(CASE WHEN " + cond + " THEN 1 END)"
}

func noInfinity(string) string { return "1 = 0" }

func identity(col string) string { return col }

// schemaProjection is the SELECT list shared by the information_schema
// based schema queries. Column names are reported as their own field path.
func schemaProjection(ref TableRef, schemaCol, tableCol, nameCol, typeCol string) string {
	return fmt.Sprintf("SELECT\n  %s AS %s,\n  %s AS %s,\n  %s AS %s,\n  %s AS %s,\n  %s AS %s,\n  %s AS %s",
		singleQuote(ref.Catalog), ColTableCatalog,
		schemaCol, ColTableSchema,
		tableCol, ColTableName,
		nameCol, ColColumnName,
		nameCol, ColFieldPath,
		typeCol, ColDataType,
	)
}
