package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dbsmedya/tablestats/internal/logger"
	"github.com/dbsmedya/tablestats/internal/query"
	"github.com/dbsmedya/tablestats/internal/types"
)

// SQL executes queries through database/sql.
type SQL struct {
	db      *sql.DB
	dialect query.Dialect
	logger  *logger.Logger
}

// NewSQL wraps an open database handle.
func NewSQL(db *sql.DB, d query.Dialect, log *logger.Logger) (*SQL, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is nil")
	}
	if d == nil {
		return nil, fmt.Errorf("dialect is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &SQL{db: db, dialect: d, logger: log}, nil
}

// Query runs q and reads every row. []byte values are returned as strings.
func (s *SQL) Query(ctx context.Context, q string) (*Result, error) {
	s.logger.Debugf("Running %s query: %s", s.dialect.Name(), logger.TruncateSQL(q))

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get column names: %w", err)
	}

	result := &Result{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

// TableInfo runs the dialect's table metadata query.
func (s *SQL) TableInfo(ctx context.Context, ref query.TableRef) (TableInfo, error) {
	q := s.dialect.TableInfoQuery(ref)
	if q == "" {
		return TableInfo{}, fmt.Errorf("dialect %s has no table info query", s.dialect.Name())
	}

	res, err := s.Query(ctx, q)
	if err != nil {
		return TableInfo{}, fmt.Errorf("failed to read table info for %s: %w", ref, err)
	}

	row, ok := res.First()
	if !ok {
		return TableInfo{}, fmt.Errorf("table info for %s returned no rows", ref)
	}

	return TableInfo{
		RowCount: types.ToInt64(row[query.ColRowCount]),
		ByteSize: types.ToInt64(row[query.ColByteSize]),
	}, nil
}

// Close closes the database handle.
func (s *SQL) Close() error {
	return s.db.Close()
}
