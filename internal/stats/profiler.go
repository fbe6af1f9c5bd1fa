package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/dbsmedya/tablestats/internal/chart"
	"github.com/dbsmedya/tablestats/internal/logger"
	"github.com/dbsmedya/tablestats/internal/query"
	"github.com/dbsmedya/tablestats/internal/types"
	"github.com/dbsmedya/tablestats/internal/warehouse"
)

// DefaultTopValues is the number of most frequent values charted per column.
const DefaultTopValues = 20

// ChartRenderer turns a column's frequency table into an embeddable image.
type ChartRenderer interface {
	Render(ft chart.FrequencyTable, column string, top int) (string, error)
}

// Profiler computes the statistics of one table, column by column.
type Profiler struct {
	exec    warehouse.Executor
	dialect query.Dialect
	charts  ChartRenderer
	logger  *logger.Logger

	// TopValues bounds the counts query of each column.
	TopValues int
	// Observer receives progress checkpoints. Nil means none.
	Observer Observer
}

// NewProfiler creates a Profiler. A nil logger falls back to the default.
func NewProfiler(exec warehouse.Executor, d query.Dialect, charts ChartRenderer, log *logger.Logger) (*Profiler, error) {
	if exec == nil {
		return nil, fmt.Errorf("executor is nil")
	}
	if d == nil {
		return nil, fmt.Errorf("dialect is nil")
	}
	if charts == nil {
		return nil, fmt.Errorf("chart renderer is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Profiler{
		exec:      exec,
		dialect:   d,
		charts:    charts,
		logger:    log,
		TopValues: DefaultTopValues,
	}, nil
}

func (p *Profiler) observer() Observer {
	if p.Observer == nil {
		return NopObserver{}
	}
	return p.Observer
}

// Run profiles ref: table metadata, schema discovery, then one statistics
// and one counts query per supported column. The first failure aborts the
// run.
func (p *Profiler) Run(ctx context.Context, ref query.TableRef) (*TableSummary, error) {
	start := time.Now()
	log := p.logger.WithTable(ref.String())

	info, err := p.exec.TableInfo(ctx, ref)
	if err != nil {
		return nil, err
	}

	descriptors, err := p.Schema(ctx, ref)
	if err != nil {
		return nil, err
	}
	p.observer().SchemaFetched(len(descriptors))
	log.Infof("Profiling %d columns (%d rows, %d bytes)", len(descriptors), info.RowCount, info.ByteSize)

	jobs := BuildJobs(p.dialect, descriptors)

	reports, err := p.CollectReports(ctx, ref, jobs)
	if err != nil {
		return nil, err
	}

	log.Infof("Profile complete: %d columns, duration: %s", len(reports), time.Since(start).Round(time.Millisecond))

	return &TableSummary{
		TableID:     ref.String(),
		ColumnCount: len(reports),
		RowCount:    info.RowCount,
		ByteSize:    info.ByteSize,
		Columns:     reports,
	}, nil
}

// Schema discovers the columns of ref in source order.
func (p *Profiler) Schema(ctx context.Context, ref query.TableRef) ([]ColumnDescriptor, error) {
	res, err := p.exec.Query(ctx, p.dialect.SchemaQuery(ref))
	if err != nil {
		return nil, fmt.Errorf("failed to read schema of %s: %w", ref, err)
	}
	return DescriptorsFromResult(res, p.dialect)
}

// CollectReports executes jobs in order and formats one report per job.
func (p *Profiler) CollectReports(ctx context.Context, ref query.TableRef, jobs []Job) ([]ColumnReport, error) {
	obs := p.observer()
	reports := make([]ColumnReport, 0, len(jobs))

	for i, job := range jobs {
		obs.JobStarted(i, len(jobs), job.Column)

		report, err := p.collect(ctx, ref, job)
		if err != nil {
			return nil, err
		}

		obs.JobCompleted(i, len(jobs), report)
		reports = append(reports, report)
	}

	return reports, nil
}

func (p *Profiler) collect(ctx context.Context, ref query.TableRef, job Job) (ColumnReport, error) {
	name := job.Column.FieldPath
	log := p.logger.WithColumn(name)

	if !job.Supported {
		log.Debugf("Skipping column with unsupported type %q", job.Column.NativeType)
		return UnsupportedReport{Name: name}, nil
	}

	row, err := job.Execute(ctx, p.exec)
	if err != nil {
		return nil, fmt.Errorf("failed to compute statistics for column %q: %w", name, err)
	}

	img, err := p.countsImage(ctx, ref, name)
	if err != nil {
		return nil, err
	}

	switch job.Kind {
	case KindNumeric:
		report, err := NewNumericReport(name, row, img)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		return report, nil
	case KindCategorical:
		report, err := NewCategoricalReport(name, row, img)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		return report, nil
	case KindUnsupported:
		return UnsupportedReport{Name: name}, nil
	default:
		return nil, fmt.Errorf("column %q has unknown kind %d", name, job.Kind)
	}
}

func (p *Profiler) countsImage(ctx context.Context, ref query.TableRef, column string) (string, error) {
	res, err := p.exec.Query(ctx, p.dialect.CountsQuery(ref, column, p.TopValues))
	if err != nil {
		return "", fmt.Errorf("failed to count values of column %q: %w", column, err)
	}

	ft, err := FrequencyTableFromResult(res)
	if err != nil {
		return "", fmt.Errorf("column %q: %w", column, err)
	}

	return p.charts.Render(ft, column, p.TopValues)
}

// FrequencyTableFromResult reads counts query rows: the first column holds
// the value, the count column its number of occurrences. NULL values are
// labelled "NULL".
func FrequencyTableFromResult(res *warehouse.Result) (chart.FrequencyTable, error) {
	if len(res.Rows) == 0 {
		return chart.FrequencyTable{}, nil
	}
	if len(res.Columns) < 2 {
		return nil, fmt.Errorf("counts result has %d columns, expected 2", len(res.Columns))
	}

	valueCol := res.Columns[0]
	ft := make(chart.FrequencyTable, 0, len(res.Rows))
	for _, row := range res.Rows {
		count, ok := row[query.ColCount]
		if !ok {
			return nil, fmt.Errorf("counts result has no %s column", query.ColCount)
		}
		ft = append(ft, chart.Bar{
			Label: types.ToString(row[valueCol]),
			Count: types.ToInt64(count),
		})
	}
	return ft, nil
}
