package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-duster/duster/pipeline"
)

// summaryCmd prints a JSON summary of a dataset after cleaning
var summaryCmd = &cobra.Command{
	Use:   "summary <input>",
	Short: "Print a quick data summary",
	Long: `Loads and transforms the input dataset, then prints a JSON summary
showing number of rows, columns, null counts, and column data types.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		csv, err := csvOptions()
		if err != nil {
			return err
		}
		f, err := pipeline.LoadTransform(args[0], pipeline.Options{CSV: csv, Logger: logger})
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(pipeline.Summarize(f), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
