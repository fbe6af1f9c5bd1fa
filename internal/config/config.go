// Package config provides configuration structures and loading for tablestats.
package config

// Config represents the complete application configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source" mapstructure:"source"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// SourceConfig describes the warehouse the statistics queries run against.
// BigQuery uses Project/CredentialsFile/Location; every other dialect is
// reached through database/sql using either DSN or the discrete fields.
type SourceConfig struct {
	Dialect         string `yaml:"dialect" mapstructure:"dialect"` // bigquery, mysql, postgres, sqlserver, sqlite
	Project         string `yaml:"project" mapstructure:"project"`
	CredentialsFile string `yaml:"credentials_file" mapstructure:"credentials_file"`
	Location        string `yaml:"location" mapstructure:"location"`

	DSN            string `yaml:"dsn" mapstructure:"dsn"`
	Host           string `yaml:"host" mapstructure:"host"`
	Port           int    `yaml:"port" mapstructure:"port"`
	User           string `yaml:"user" mapstructure:"user"`
	Password       string `yaml:"password" mapstructure:"password"`
	Database       string `yaml:"database" mapstructure:"database"`
	TLS            string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections int    `yaml:"max_connections" mapstructure:"max_connections"`
}

// ReportConfig controls the statistics and chart output.
type ReportConfig struct {
	TopValues      int     `yaml:"top_values" mapstructure:"top_values"`
	MaxLabelLength int     `yaml:"max_label_length" mapstructure:"max_label_length"`
	ChartWidth     float64 `yaml:"chart_width" mapstructure:"chart_width"`   // inches
	ChartHeight    float64 `yaml:"chart_height" mapstructure:"chart_height"` // inches
	IFrameWidth    string  `yaml:"iframe_width" mapstructure:"iframe_width"`
	IFrameHeight   string  `yaml:"iframe_height" mapstructure:"iframe_height"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Dialect:        "bigquery",
			TLS:            "preferred",
			MaxConnections: 4,
		},
		Report: ReportConfig{
			TopValues:      20,
			MaxLabelLength: 48,
			ChartWidth:     6.4,
			ChartHeight:    4.8,
			IFrameWidth:    "100%",
			IFrameHeight:   "1200px",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			// stdout carries the rendered report
			Output: "stderr",
		},
	}
}

// DefaultPort returns the conventional port for a network dialect, or 0.
func DefaultPort(dialect string) int {
	switch dialect {
	case "mysql":
		return 3306
	case "postgres":
		return 5432
	case "sqlserver":
		return 1433
	default:
		return 0
	}
}
