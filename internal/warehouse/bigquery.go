package warehouse

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/dbsmedya/tablestats/internal/config"
	"github.com/dbsmedya/tablestats/internal/logger"
	"github.com/dbsmedya/tablestats/internal/query"
)

// BigQuery executes queries with the BigQuery client library.
type BigQuery struct {
	client *bigquery.Client
	logger *logger.Logger
}

// NewBigQuery creates a client for cfg.Project. An empty project is detected
// from the credentials; an empty credentials file uses application default
// credentials.
func NewBigQuery(ctx context.Context, cfg *config.SourceConfig, log *logger.Logger) (*BigQuery, error) {
	if log == nil {
		log = logger.NewDefault()
	}

	project := cfg.Project
	if project == "" {
		project = bigquery.DetectProjectID
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := bigquery.NewClient(ctx, project, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bigquery client: %w", err)
	}
	if cfg.Location != "" {
		client.Location = cfg.Location
	}

	return &BigQuery{client: client, logger: log}, nil
}

// Query runs q as a BigQuery job and reads every row.
func (b *BigQuery) Query(ctx context.Context, q string) (*Result, error) {
	b.logger.Debugf("Running bigquery query: %s", logger.TruncateSQL(q))

	it, err := b.client.Query(q).Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	result := &Result{}
	for {
		var values map[string]bigquery.Value
		err := it.Next(&values)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating rows: %w", err)
		}

		row := make(Row, len(values))
		for k, v := range values {
			row[k] = v
		}
		result.Rows = append(result.Rows, row)
	}

	for _, field := range it.Schema {
		result.Columns = append(result.Columns, field.Name)
	}

	return result, nil
}

// TableInfo reads the row count and logical byte size from table metadata.
func (b *BigQuery) TableInfo(ctx context.Context, ref query.TableRef) (TableInfo, error) {
	md, err := b.client.DatasetInProject(ref.Catalog, ref.Schema).Table(ref.Table).Metadata(ctx)
	if err != nil {
		return TableInfo{}, fmt.Errorf("failed to read table metadata for %s: %w", ref, err)
	}
	return TableInfo{
		RowCount: int64(md.NumRows),
		ByteSize: md.NumBytes,
	}, nil
}

// Close closes the client.
func (b *BigQuery) Close() error {
	return b.client.Close()
}
