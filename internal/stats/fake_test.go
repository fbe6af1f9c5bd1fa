package stats

import (
	"context"
	"fmt"

	"github.com/dbsmedya/tablestats/internal/chart"
	"github.com/dbsmedya/tablestats/internal/query"
	"github.com/dbsmedya/tablestats/internal/warehouse"
)

// fakeExecutor answers queries by exact SQL text.
type fakeExecutor struct {
	results map[string]*warehouse.Result
	errs    map[string]error
	info    warehouse.TableInfo
	infoErr error
	queries []string
	closed  bool
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{
		results: make(map[string]*warehouse.Result),
		errs:    make(map[string]error),
	}
}

func (f *fakeExecutor) Query(_ context.Context, sql string) (*warehouse.Result, error) {
	f.queries = append(f.queries, sql)
	if err, ok := f.errs[sql]; ok {
		return nil, err
	}
	if res, ok := f.results[sql]; ok {
		return res, nil
	}
	return nil, fmt.Errorf("unexpected query: %s", sql)
}

func (f *fakeExecutor) TableInfo(context.Context, query.TableRef) (warehouse.TableInfo, error) {
	return f.info, f.infoErr
}

func (f *fakeExecutor) Close() error {
	f.closed = true
	return nil
}

// stubCharts records the columns it was asked to draw.
type stubCharts struct {
	columns []string
	tables  []chart.FrequencyTable
	err     error
}

func (s *stubCharts) Render(ft chart.FrequencyTable, column string, top int) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.columns = append(s.columns, column)
	s.tables = append(s.tables, ft)
	return fmt.Sprintf("data:image/png;base64,%s-%d", column, top), nil
}

// recordingObserver captures checkpoints as strings.
type recordingObserver struct {
	events []string
}

func (r *recordingObserver) SchemaFetched(columns int) {
	r.events = append(r.events, fmt.Sprintf("schema:%d", columns))
}

func (r *recordingObserver) JobStarted(index, total int, column ColumnDescriptor) {
	r.events = append(r.events, fmt.Sprintf("start:%d/%d:%s", index, total, column.FieldPath))
}

func (r *recordingObserver) JobCompleted(index, total int, report ColumnReport) {
	r.events = append(r.events, fmt.Sprintf("done:%d/%d:%s:%s", index, total, report.ColumnName(), report.Kind()))
}

func schemaRow(catalog, schema, table, column, fieldPath, dataType string) warehouse.Row {
	return warehouse.Row{
		query.ColTableCatalog: catalog,
		query.ColTableSchema:  schema,
		query.ColTableName:    table,
		query.ColColumnName:   column,
		query.ColFieldPath:    fieldPath,
		query.ColDataType:     dataType,
	}
}
