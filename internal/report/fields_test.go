package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbsmedya/tablestats/internal/stats"
)

func TestFields_Numeric(t *testing.T) {
	summary := testSummary()
	m := Fields(summary.Columns[1])

	assert.Equal(t, []string{
		"Observations", "Distinct count", "Unique (%)", "Missing", "Missing (%)",
		"Infinite", "Infinite (%)", "Mean", "Minimum", "Maximum",
		"Zeros", "Zeros (%)", "Negative", "Negative (%)",
	}, m.Keys())

	mean, ok := m.Get("Mean")
	assert.True(t, ok)
	assert.Equal(t, "10.0", mean)

	zeros, _ := m.Get("Zeros")
	assert.Equal(t, "4", zeros)
}

func TestFields_Categorical(t *testing.T) {
	m := Fields(testSummary().Columns[0])

	assert.Equal(t, 5, m.Len())
	obs, _ := m.Get("Observations")
	assert.Equal(t, "1234567", obs)

	_, ok := m.Get("Mean")
	assert.False(t, ok)
}

func TestFields_Unsupported(t *testing.T) {
	m := Fields(stats.UnsupportedReport{Name: "x"})
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Front())
}
