// Package template handles ledger template and sample data generation
package template

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/ar-aging/cmd/root"
	"fjacquet/ar-aging/internal/sample"
)

// WithData controls whether the template is filled with the sample ledger.
var WithData bool

// Cmd represents the template command
var Cmd = &cobra.Command{
	Use:   "template",
	Short: "Generate a ledger template or sample data file",
	Long: `Template writes a header-only ledger template, or with --with-data the
deterministic eight-row sample ledger, to the output file.`,
	Run: templateFunc,
}

func init() {
	Cmd.Flags().BoolVar(&WithData, "with-data", false, "Fill the template with sample ledger rows")
}

func templateFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	output := root.SharedFlags.Output
	if output == "" {
		output = "ledger-template.csv"
	}

	if err := sample.WriteFile(output, WithData); err != nil {
		logger.Fatalf("Error writing template: %v", err)
	}

	fmt.Printf("Wrote ledger template to %s\n", output)
}
