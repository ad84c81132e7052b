package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-duster/duster/pipeline"
)

// convertCmd converts between CSV and JSON without filtering
var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert CSV<->JSON without filtering",
	Long: `Reads the input file, normalizes columns, removes empty rows and full
duplicates, and writes the result to the target file (either CSV or JSON).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		csv, err := csvOptions()
		if err != nil {
			return err
		}
		summary, err := pipeline.Process(args[0], args[1], pipeline.Options{CSV: csv, Logger: logger})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (rows=%d, cols=%d)\n", args[1], summary.Rows, summary.Columns)
		return nil
	},
}
