package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	_ "github.com/go-sql-driver/mysql"  // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"  // PostgreSQL driver (pgx)
	_ "github.com/microsoft/go-mssqldb" // SQL Server driver
	_ "modernc.org/sqlite"              // SQLite driver

	"github.com/dbsmedya/tablestats/internal/config"
	"github.com/dbsmedya/tablestats/internal/logger"
	"github.com/dbsmedya/tablestats/internal/query"
)

// Open connects to the configured source and returns its executor together
// with the matching query dialect. The connection is pinged once.
func Open(ctx context.Context, cfg *config.SourceConfig, log *logger.Logger) (Executor, query.Dialect, error) {
	d, err := query.ForName(cfg.Dialect)
	if err != nil {
		return nil, nil, err
	}

	if d.Name() == "bigquery" {
		bq, err := NewBigQuery(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return bq, d, nil
	}

	db, err := connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s source: %w", cfg.Dialect, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to %s source: %w", cfg.Dialect, err)
	}

	exec, err := NewSQL(db, d, log)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return exec, d, nil
}

// DriverName returns the database/sql driver registered for a dialect.
func DriverName(dialect string) (string, error) {
	switch dialect {
	case "mysql":
		return "mysql", nil
	case "postgres":
		return "pgx", nil
	case "sqlserver":
		return "sqlserver", nil
	case "sqlite":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("%w: %q has no database/sql driver", query.ErrUnknownDialect, dialect)
	}
}

// connect creates a database handle.
func connect(cfg *config.SourceConfig) (*sql.DB, error) {
	driver, err := DriverName(cfg.Dialect)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, BuildDSN(cfg))
	if err != nil {
		return nil, err
	}

	// An in-memory SQLite database lives inside a single connection.
	if cfg.Dialect == "sqlite" {
		db.SetMaxOpenConns(1)
	} else if cfg.MaxConnections > 0 {
		db.SetMaxOpenConns(cfg.MaxConnections)
	}
	db.SetConnMaxLifetime(10 * time.Minute)

	return db, nil
}

// BuildDSN constructs a driver DSN from configuration. An explicit DSN
// always wins.
func BuildDSN(cfg *config.SourceConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	switch cfg.Dialect {
	case "mysql":
		return buildMySQLDSN(cfg)
	case "postgres":
		return buildPostgresDSN(cfg)
	case "sqlserver":
		return buildSQLServerDSN(cfg)
	case "sqlite":
		return cfg.Database
	default:
		return ""
	}
}

func buildMySQLDSN(cfg *config.SourceConfig) string {
	// Format: user:password@tcp(host:port)/database?params
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
	)

	if cfg.Database != "" {
		dsn += cfg.Database
	}

	params := "?parseTime=true"
	switch cfg.TLS {
	case "disable":
		params += "&tls=false"
	case "required":
		params += "&tls=true"
	case "preferred", "":
		params += "&tls=preferred"
	}

	return dsn + params
}

func buildPostgresDSN(cfg *config.SourceConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.Database,
	}

	q := url.Values{}
	switch cfg.TLS {
	case "disable":
		q.Set("sslmode", "disable")
	case "required":
		q.Set("sslmode", "require")
	case "preferred", "":
		q.Set("sslmode", "prefer")
	}
	u.RawQuery = q.Encode()

	return u.String()
}

func buildSQLServerDSN(cfg *config.SourceConfig) string {
	u := url.URL{
		Scheme: "sqlserver",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
	}

	q := url.Values{}
	if cfg.Database != "" {
		q.Set("database", cfg.Database)
	}
	switch cfg.TLS {
	case "disable":
		q.Set("encrypt", "disable")
	case "required":
		q.Set("encrypt", "true")
	case "preferred", "":
		q.Set("encrypt", "false")
	}
	u.RawQuery = q.Encode()

	return u.String()
}
