package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dbsmedya/tablestats/internal/logger"
	"github.com/dbsmedya/tablestats/internal/query"
)

func newMockExecutor(t *testing.T) (*SQL, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	exec, err := NewSQL(db, query.MySQL(), logger.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return exec, mock
}

func TestNewSQL_NilArguments(t *testing.T) {
	_, err := NewSQL(nil, query.MySQL(), logger.NewNop())
	assert.Error(t, err)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = NewSQL(db, nil, logger.NewNop())
	assert.Error(t, err)

	exec, err := NewSQL(db, query.MySQL(), nil)
	require.NoError(t, err)
	assert.NotNil(t, exec.logger)
}

func TestSQLQuery(t *testing.T) {
	exec, mock := newMockExecutor(t)

	rows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow([]byte("paid"), int64(40)).
		AddRow(nil, int64(0))
	mock.ExpectQuery("SELECT status, count FROM t").WillReturnRows(rows)

	res, err := exec.Query(context.Background(), "SELECT status, count FROM t")
	require.NoError(t, err)

	assert.Equal(t, []string{"status", "count"}, res.Columns)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "paid", res.Rows[0]["status"])
	assert.Equal(t, int64(40), res.Rows[0]["count"])
	assert.Nil(t, res.Rows[1]["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLQuery_ErrorPreserved(t *testing.T) {
	exec, mock := newMockExecutor(t)

	driverErr := errors.New("Table 'shop.missing' doesn't exist")
	mock.ExpectQuery("SELECT 1 FROM missing").WillReturnError(driverErr)

	_, err := exec.Query(context.Background(), "SELECT 1 FROM missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, driverErr))
	assert.Contains(t, err.Error(), "Table 'shop.missing' doesn't exist")
}

func TestSQLQuery_RowError(t *testing.T) {
	exec, mock := newMockExecutor(t)

	rowErr := errors.New("connection reset")
	rows := sqlmock.NewRows([]string{"a"}).AddRow(1).AddRow(2).RowError(1, rowErr)
	mock.ExpectQuery("SELECT a FROM t").WillReturnRows(rows)

	_, err := exec.Query(context.Background(), "SELECT a FROM t")
	require.Error(t, err)
	assert.True(t, errors.Is(err, rowErr))
}

func TestSQLTableInfo(t *testing.T) {
	exec, mock := newMockExecutor(t)
	ref := query.TableRef{Catalog: "def", Schema: "shop", Table: "orders"}

	rows := sqlmock.NewRows([]string{"row_count", "byte_size"}).AddRow(int64(1200), []byte("65536"))
	mock.ExpectQuery(query.MySQL().TableInfoQuery(ref)).WillReturnRows(rows)

	info, err := exec.TableInfo(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, TableInfo{RowCount: 1200, ByteSize: 65536}, info)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTableInfo_NoRows(t *testing.T) {
	exec, mock := newMockExecutor(t)
	ref := query.TableRef{Catalog: "def", Schema: "shop", Table: "orders"}

	mock.ExpectQuery(query.MySQL().TableInfoQuery(ref)).
		WillReturnRows(sqlmock.NewRows([]string{"row_count", "byte_size"}))

	_, err := exec.TableInfo(context.Background(), ref)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned no rows")
}

func TestSQLTableInfo_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE orders (id INTEGER, status TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO orders VALUES (1, 'paid'), (2, 'open'), (3, 'paid')`)
	require.NoError(t, err)

	exec, err := NewSQL(db, query.SQLite(), logger.NewNop())
	require.NoError(t, err)

	info, err := exec.TableInfo(context.Background(), query.TableRef{Catalog: "local", Schema: "main", Table: "orders"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.RowCount)
	assert.Greater(t, info.ByteSize, int64(0))
}

func TestSQLClose(t *testing.T) {
	exec, mock := newMockExecutor(t)
	mock.ExpectClose()

	require.NoError(t, exec.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResultFirst(t *testing.T) {
	var nilResult *Result
	_, ok := nilResult.First()
	assert.False(t, ok)

	_, ok = (&Result{}).First()
	assert.False(t, ok)

	row, ok := (&Result{Rows: []Row{{"a": 1}, {"a": 2}}}).First()
	assert.True(t, ok)
	assert.Equal(t, 1, row["a"])
}
