package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/tablestats/internal/chart"
	"github.com/dbsmedya/tablestats/internal/logger"
	"github.com/dbsmedya/tablestats/internal/query"
	"github.com/dbsmedya/tablestats/internal/report"
	"github.com/dbsmedya/tablestats/internal/stats"
	"github.com/dbsmedya/tablestats/internal/warehouse"
)

var (
	reportOut    string
	reportTop    int
	reportIFrame bool
	reportQuiet  bool
)

var reportCmd = &cobra.Command{
	Use:   "report <catalog.schema.table>",
	Short: "Profile a table and render its HTML statistics report",
	Long: `Report discovers the columns of a table, computes summary statistics
and value counts for every supported column and renders a self-contained
HTML document.

The report process follows these steps:
  1. Read the table's row count and size
  2. Discover columns from the source's column metadata
  3. Run a statistics query and a top-N counts query per supported column
  4. Render one chart per column and assemble the HTML report

Nested fields and columns of unsupported types are listed without statistics.
The document is written to stdout unless --out names a file.

Example:
  tablestats report my-project.sales.orders --out orders.html`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "",
		"Write the report to this file instead of stdout")
	reportCmd.Flags().IntVar(&reportTop, "top", 0,
		"Override the number of most frequent values charted per column")
	reportCmd.Flags().BoolVar(&reportIFrame, "iframe", false,
		"Wrap the report in an <iframe> data URL for inline notebook display")
	reportCmd.Flags().BoolVarP(&reportQuiet, "quiet", "q", false,
		"Do not print progress and the column summary")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ref, err := query.ParseTableID(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, reportTop)
	if err != nil {
		return err
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	ctx := warehouse.SetupSignalHandlerWithCallback(func(sig os.Signal) {
		log.Warnf("Received %s, cancelling report", sig)
	})

	exec, d, err := warehouse.Open(ctx, &cfg.Source, log)
	if err != nil {
		return err
	}
	defer exec.Close()

	renderer := chart.NewRenderer(cfg.Report.ChartWidth, cfg.Report.ChartHeight, cfg.Report.MaxLabelLength)
	profiler, err := stats.NewProfiler(exec, d, renderer, log)
	if err != nil {
		return err
	}
	profiler.TopValues = cfg.Report.TopValues

	status := io.Discard
	if !reportQuiet {
		status = cmd.ErrOrStderr()
	}
	profiler.Observer = newProgressPrinter(status)

	summary, err := profiler.Run(ctx, ref)
	if err != nil {
		return err
	}

	doc, err := report.RenderString(summary)
	if err != nil {
		return err
	}
	if reportIFrame {
		doc = report.IFrame(doc, cfg.Report.IFrameWidth, cfg.Report.IFrameHeight)
	}

	if err := writeDocument(cmd.OutOrStdout(), reportOut, doc); err != nil {
		return err
	}

	printSummary(status, summary)
	if reportOut != "" {
		printSuccess(status, "Report written to %s", reportOut)
	}
	return nil
}

// writeDocument writes doc to path, or to stdout when path is empty or "-".
func writeDocument(stdout io.Writer, path, doc string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(stdout, doc)
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
