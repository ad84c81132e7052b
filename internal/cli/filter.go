package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-duster/duster/pipeline"
)

var (
	filterQuery  string
	filterSubset string

	// filterCmd runs the full clean/dedupe/filter pipeline
	filterCmd = &cobra.Command{
		Use:   "filter <input> <output>",
		Short: "Clean, deduplicate, filter, and save data",
		Long: `Combines cleaning, filtering, and deduplication into one command.
Prints a JSON summary of the written dataset.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			csv, err := csvOptions()
			if err != nil {
				return err
			}
			opts := pipeline.Options{
				Query:  filterQuery,
				Subset: splitSubset(filterSubset),
				CSV:    csv,
				Logger: logger,
			}
			summary, err := pipeline.Process(args[0], args[1], opts)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", args[1])
			return nil
		},
	}
)

func init() {
	filterCmd.Flags().StringVar(&filterQuery, "query", "", `filter expression, e.g. 'amount > 100 && country == "DE"'`)
	filterCmd.Flags().StringVar(&filterSubset, "subset", "", "comma-separated subset of columns for duplicate removal")
}

// splitSubset parses the --subset flag into trimmed column names
func splitSubset(subset string) []string {
	if len(strings.TrimSpace(subset)) == 0 {
		return nil
	}
	parts := strings.Split(subset, ",")
	cols := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); len(trimmed) > 0 {
			cols = append(cols, trimmed)
		}
	}
	return cols
}
