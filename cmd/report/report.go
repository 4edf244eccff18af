// Package report handles the aging summary report command
package report

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/ar-aging/cmd/root"
	"fjacquet/ar-aging/internal/fileutils"
	"fjacquet/ar-aging/internal/ingest"
	"fjacquet/ar-aging/internal/logging"
	"fjacquet/ar-aging/internal/report"
)

// Format is the report output format flag (yaml or json). Empty means the
// configured default.
var Format string

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Ingest an aging ledger and print an aging summary report",
	Long: `Report ingests a ledger and aggregates record counts and balance totals per
risk category. The summary is rendered as YAML or JSON.`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Format, "format", "f", "", "Report format: yaml or json (default from config)")
}

func reportFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	input := root.SharedFlags.Input
	if input == "" {
		logger.Fatal("No input file provided, use --input")
	}

	format := Format
	if format == "" {
		format = root.Cfg.Report.Format
	}

	raw, err := fileutils.ReadFileContent(input)
	if err != nil {
		logger.Fatalf("Error reading input file: %v", err)
	}

	builder := ingest.NewRecordBuilder(root.Cfg.Ingest.IDPrefix, root.Cfg.Ingest.UnknownName)
	pipeline := ingest.NewPipelineWithBuilder(logger, builder)

	records, err := pipeline.Ingest(raw)
	if err != nil {
		logger.Fatalf("Ingestion failed: %v", err)
	}

	generator := report.NewGenerator()
	summary := generator.Summarize(records)

	rendered, err := generator.Render(summary, format)
	if err != nil {
		logger.Fatalf("Error rendering report: %v", err)
	}

	if output := root.SharedFlags.Output; output != "" {
		if err := fileutils.WriteFileContent(output, rendered); err != nil {
			logger.Fatalf("Error writing report file: %v", err)
		}
		logger.Info("Wrote aging summary report",
			logging.Field{Key: logging.FieldOutputFile, Value: output})
		return
	}

	fmt.Print(string(rendered))
}
