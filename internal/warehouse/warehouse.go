// Package warehouse runs tablestats queries against a data source and
// returns their results as plain rows.
package warehouse

import (
	"context"

	"github.com/dbsmedya/tablestats/internal/query"
)

// Row is one result row keyed by column name.
type Row map[string]any

// Result is a fully materialized query result. Columns keeps the select-list
// order so callers can address a column by position.
type Result struct {
	Columns []string
	Rows    []Row
}

// First returns the first row, or false when the result is empty.
func (r *Result) First() (Row, bool) {
	if r == nil || len(r.Rows) == 0 {
		return nil, false
	}
	return r.Rows[0], true
}

// TableInfo is the size of a table as reported by the source.
type TableInfo struct {
	RowCount int64
	ByteSize int64
}

// Executor runs queries against one data source.
type Executor interface {
	Query(ctx context.Context, sql string) (*Result, error)
	TableInfo(ctx context.Context, ref query.TableRef) (TableInfo, error)
	Close() error
}
