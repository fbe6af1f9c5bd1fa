package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/tablestats/internal/chart"
	"github.com/dbsmedya/tablestats/internal/query"
	"github.com/dbsmedya/tablestats/internal/report"
	"github.com/dbsmedya/tablestats/internal/stats"
)

// maxNameWidth caps the column name cell in terminal tables.
const maxNameWidth = 40

func printSuccess(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.Green.Sprint("✅ ")+fmt.Sprintf(format, a...))
}

func printFailure(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.Red.Sprint("❌ ")+fmt.Sprintf(format, a...))
}

// progressPrinter reports profiler checkpoints on a terminal stream.
type progressPrinter struct {
	w io.Writer
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w}
}

func (p *progressPrinter) SchemaFetched(columns int) {
	fmt.Fprintf(p.w, "Discovered %s columns\n", color.Cyan.Sprint(columns))
}

func (p *progressPrinter) JobStarted(index, total int, column stats.ColumnDescriptor) {
	fmt.Fprintf(p.w, "[%d/%d] %s\n", index+1, total, column.FieldPath)
}

func (p *progressPrinter) JobCompleted(index, total int, r stats.ColumnReport) {
	if r.Kind() == stats.KindUnsupported {
		fmt.Fprintf(p.w, "[%d/%d] %s %s\n", index+1, total, r.ColumnName(), color.Yellow.Sprint("skipped"))
	}
}

// printSummary writes one line per column with its headline statistics.
func printSummary(w io.Writer, s *stats.TableSummary) {
	fmt.Fprintf(w, "\n=== %s ===\n", color.Bold.Sprint(s.TableID))
	fmt.Fprintf(w, "Columns: %d  Rows: %d  Bytes: %d\n\n", s.ColumnCount, s.RowCount, s.ByteSize)

	width := nameWidth(len("Column"), s.Columns)
	fmt.Fprintf(w, "%s  %-12s  %s\n", pad("Column", width), "Kind", "Statistics")
	for _, c := range s.Columns {
		fields := report.Fields(c)
		var parts []string
		for el := fields.Front(); el != nil; el = el.Next() {
			if el.Key == "Observations" || el.Key == "Missing" || el.Key == "Distinct count" || el.Key == "Mean" {
				parts = append(parts, el.Key+"="+el.Value)
			}
		}
		kind := c.Kind().String()
		if c.Kind() == stats.KindUnsupported {
			kind = color.Yellow.Sprintf("%-12s", kind)
		} else {
			kind = fmt.Sprintf("%-12s", kind)
		}
		fmt.Fprintf(w, "%s  %s  %s\n", pad(c.ColumnName(), width), kind, strings.Join(parts, " "))
	}
}

// printColumns writes the discovered schema of ref.
func printColumns(w io.Writer, ref query.TableRef, descriptors []stats.ColumnDescriptor) {
	fmt.Fprintf(w, "\n=== Columns of %s ===\n", ref)

	width := len("Field path")
	for _, d := range descriptors {
		if n := runewidth.StringWidth(d.FieldPath); n > width {
			width = n
		}
	}
	if width > maxNameWidth {
		width = maxNameWidth
	}

	fmt.Fprintf(w, "%s  %-12s  %-20s  %s\n", pad("Field path", width), "Type", "Native type", "Kind")
	for _, d := range descriptors {
		fmt.Fprintf(w, "%s  %-12s  %-20s  %s\n",
			pad(d.FieldPath, width), d.DataType, d.NativeType, stats.Classify(d))
	}
	fmt.Fprintf(w, "\nTotal: %d columns\n", len(descriptors))
}

func nameWidth(floor int, columns []stats.ColumnReport) int {
	width := floor
	for _, c := range columns {
		if n := runewidth.StringWidth(c.ColumnName()); n > width {
			width = n
		}
	}
	if width > maxNameWidth {
		width = maxNameWidth
	}
	return width
}

// pad fits s into width display cells, truncating wide names.
func pad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, chart.Ellipsis), width)
}
