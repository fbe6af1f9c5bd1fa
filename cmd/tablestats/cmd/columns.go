package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/tablestats/internal/chart"
	"github.com/dbsmedya/tablestats/internal/logger"
	"github.com/dbsmedya/tablestats/internal/query"
	"github.com/dbsmedya/tablestats/internal/stats"
	"github.com/dbsmedya/tablestats/internal/warehouse"
)

var columnsCmd = &cobra.Command{
	Use:   "columns <catalog.schema.table>",
	Short: "List a table's columns and how they will be profiled",
	Long: `Columns runs schema discovery only and prints every column with its
native type, canonical type and the kind of statistics the report computes:
numeric, categorical or unsupported. No statistics queries are issued.

Example:
  tablestats columns my-project.sales.orders`,
	Args: cobra.ExactArgs(1),
	RunE: runColumns,
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}

func runColumns(cmd *cobra.Command, args []string) error {
	ref, err := query.ParseTableID(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, 0)
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	ctx := warehouse.SetupSignalHandler()

	exec, d, err := warehouse.Open(ctx, &cfg.Source, log)
	if err != nil {
		return err
	}
	defer exec.Close()

	profiler, err := stats.NewProfiler(exec, d, chart.DefaultRenderer(), log)
	if err != nil {
		return err
	}

	descriptors, err := profiler.Schema(ctx, ref)
	if err != nil {
		return err
	}

	printColumns(cmd.OutOrStdout(), ref, descriptors)
	return nil
}
