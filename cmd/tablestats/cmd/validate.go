package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/tablestats/internal/logger"
	"github.com/dbsmedya/tablestats/internal/warehouse"
)

var validateOffline bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and source connectivity",
	Long: `Validate checks the configuration file and connects to the configured
source to ensure a report can run.

Checks performed:
  - Configuration syntax and required fields
  - Source connectivity (skipped with --offline)
  - Query execution with a trivial SELECT

Example:
  tablestats validate --config tablestats.yaml`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateOffline, "offline", false,
		"Only validate the configuration, do not connect")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(cmd, 0)
	if err != nil {
		printFailure(out, "Configuration invalid")
		return err
	}

	fmt.Fprintf(out, "\n=== Configuration Validation ===\n")
	fmt.Fprintf(out, "Config file: %s\n", GetConfigFile())
	fmt.Fprintf(out, "Dialect:     %s\n", cfg.Source.Dialect)
	fmt.Fprintf(out, "Source:      %s\n", describeSource(cfg.Source.Dialect, cfg.Source.Project, cfg.Source.Host, cfg.Source.Port, cfg.Source.Database))
	printSuccess(out, "Configuration valid")

	if validateOffline {
		return nil
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	ctx := warehouse.SetupSignalHandler()

	exec, _, err := warehouse.Open(ctx, &cfg.Source, log)
	if err != nil {
		printFailure(out, "Connection failed")
		return err
	}
	defer exec.Close()

	if _, err := exec.Query(ctx, "SELECT 1"); err != nil {
		printFailure(out, "Test query failed")
		return err
	}
	printSuccess(out, "Source reachable")

	fmt.Fprintln(out, "=== Validation Complete ===")
	return nil
}

// describeSource renders the connection target without credentials.
func describeSource(dialect, project, host string, port int, database string) string {
	switch dialect {
	case "bigquery":
		if project == "" {
			return "project detected from credentials"
		}
		return "project " + project
	case "sqlite":
		return database
	default:
		if host == "" {
			return "dsn"
		}
		return fmt.Sprintf("%s:%d/%s", host, port, database)
	}
}
