package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/dbsmedya/tablestats/internal/query"
	"github.com/dbsmedya/tablestats/internal/warehouse"
)

// ErrNoRows is returned when a statistics query produces no result row.
var ErrNoRows = errors.New("statistics query returned no rows")

// Job is the statistics work for one column. Request is nil for unsupported
// columns, which issue no query.
type Job struct {
	Supported bool
	Kind      Kind
	Request   *query.Request
	Column    ColumnDescriptor
}

// Execute runs the job's statistics request and returns its single row.
func (j Job) Execute(ctx context.Context, exec warehouse.Executor) (warehouse.Row, error) {
	if !j.Supported || j.Request == nil {
		return nil, fmt.Errorf("column %q has no statistics request", j.Column.FieldPath)
	}

	res, err := exec.Query(ctx, j.Request.SQL)
	if err != nil {
		return nil, err
	}

	row, ok := res.First()
	if !ok {
		return nil, ErrNoRows
	}
	return row, nil
}

// BuildJobs creates one job per descriptor, in order. Supported columns get a
// statistics request against their own catalog.schema.table.
func BuildJobs(d query.Dialect, descriptors []ColumnDescriptor) []Job {
	jobs := make([]Job, 0, len(descriptors))
	for _, desc := range descriptors {
		kind := Classify(desc)
		if kind == KindUnsupported {
			jobs = append(jobs, Job{Kind: kind, Column: desc})
			continue
		}
		jobs = append(jobs, Job{
			Supported: true,
			Kind:      kind,
			Request:   query.NewStatsRequest(d, desc.Table(), desc.FieldPath, kind == KindNumeric),
			Column:    desc,
		})
	}
	return jobs
}
