// Package ingest handles the ledger ingestion command
package ingest

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fjacquet/ar-aging/cmd/root"
	"fjacquet/ar-aging/internal/common"
	"fjacquet/ar-aging/internal/fileutils"
	"fjacquet/ar-aging/internal/ingest"
	"fjacquet/ar-aging/internal/logging"
)

// Cmd represents the ingest command
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest an aging ledger and export classified audit records",
	Long: `Ingest reads a delimited-text aging ledger, classifies every receivable by
payment-aging risk, and writes the resulting audit records to a standardized CSV file.`,
	Run: ingestFunc,
}

func ingestFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	input := root.SharedFlags.Input
	if input == "" {
		logger.Fatal("No input file provided, use --input")
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = strings.TrimSuffix(input, ".csv") + "-records.csv"
	}

	logger.Info("Ingesting aging ledger",
		logging.Field{Key: logging.FieldInputFile, Value: input},
		logging.Field{Key: logging.FieldOutputFile, Value: output})

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

	if err := common.WriteRecordsToCSV(records, output); err != nil {
		logger.Fatalf("Error writing records: %v", err)
	}

	fmt.Printf("Ingested %d record(s) into %s\n", len(records), output)
}
