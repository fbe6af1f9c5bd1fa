package report

import (
	"strconv"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/tablestats/internal/stats"
)

// Fields lists the displayed statistics of a column report in layout order.
// Unsupported columns have no fields.
func Fields(r stats.ColumnReport) *orderedmap.OrderedMap[string, string] {
	m := orderedmap.NewOrderedMap[string, string]()

	switch v := r.(type) {
	case stats.CategoricalReport:
		addSummary(m, v.Summary)
	case stats.NumericReport:
		addSummary(m, v.Summary)
		m.Set("Infinite", strconv.FormatInt(v.InfiniteCount, 10))
		m.Set("Infinite (%)", v.InfiniteCountPct)
		m.Set("Mean", v.Average)
		m.Set("Minimum", v.Minimum)
		m.Set("Maximum", v.Maximum)
		m.Set("Zeros", strconv.FormatInt(v.ZeroCount, 10))
		m.Set("Zeros (%)", v.ZeroCountPct)
		m.Set("Negative", strconv.FormatInt(v.NegativeCount, 10))
		m.Set("Negative (%)", v.NegativeCountPct)
	case stats.UnsupportedReport:
	}

	return m
}

func addSummary(m *orderedmap.OrderedMap[string, string], s stats.Summary) {
	m.Set("Observations", strconv.FormatInt(s.Observations, 10))
	m.Set("Distinct count", strconv.FormatInt(s.DistinctCount, 10))
	m.Set("Unique (%)", s.DistinctCountPct)
	m.Set("Missing", strconv.FormatInt(s.MissingCount, 10))
	m.Set("Missing (%)", s.MissingCountPct)
}
