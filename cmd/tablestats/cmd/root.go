package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/tablestats/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// DefaultConfigFile is read when --config is not given. It may be absent.
const DefaultConfigFile = "tablestats.yaml"

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	dialect   string
	project   string
)

var rootCmd = &cobra.Command{
	Use:   "tablestats",
	Short: "Descriptive statistics reports for warehouse tables",
	Long: `A CLI tool that profiles a table in BigQuery or a SQL database and renders
a self-contained HTML report with per-column statistics and value charts.

Features:
  - Schema discovery from the source's column metadata
  - Distinct, missing, zero, negative and infinite counts per column
  - Mean, minimum and maximum for numeric columns
  - Top-N value count charts embedded as PNG data URIs
  - BigQuery, MySQL, PostgreSQL, SQL Server and SQLite sources`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", DefaultConfigFile,
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Source overrides
	rootCmd.PersistentFlags().StringVar(&dialect, "dialect", "",
		"Override source dialect (bigquery, mysql, postgres, sqlserver, sqlite)")
	rootCmd.PersistentFlags().StringVar(&project, "project", "",
		"Override BigQuery billing project")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	Dialect   string
	Project   string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Dialect:   dialect,
		Project:   project,
	}
}

// loadConfig reads the configuration, applies flag overrides and validates
// the result. A missing default config file falls back to defaults; a missing
// file named with --config is an error.
func loadConfig(cmd *cobra.Command, topValues int) (*config.Config, error) {
	configFile := GetConfigFile()

	var (
		cfg *config.Config
		err error
	)
	if f := cmd.Flag("config"); f != nil && f.Changed {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.LoadOrDefault(configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Dialect, overrides.Project, topValues)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
