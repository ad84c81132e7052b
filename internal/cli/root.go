// Package cli contains all CLI commands for duster.
package cli

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-duster/duster/datasource"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	// verbose enables debug logging
	verbose bool
	// delimiter is the CSV field delimiter
	delimiter string
	// nilValue is the string representing missing cells in CSV data
	nilValue string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:     "duster",
		Short:   "Simple ETL for CSV/JSON: clean, filter, dedupe, summarize",
		Version: Version,
		Long: `duster is a small batch ETL tool for tabular data. It loads CSV or JSON
files, normalizes column names to snake_case, drops fully-empty rows,
removes duplicates, optionally filters rows with an expression, and
writes the result back out as CSV or JSON. Files with a trailing .lz4
extension are read and written lz4-compressed.

Examples:
  duster summary data/input.csv
  duster convert data/input.csv data/output.json
  duster filter data/input.csv data/clean.csv \
      --query 'amount > 100 && country == "DE"' --subset id,name`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&delimiter, "delimiter", ",", "CSV field delimiter")
	rootCmd.PersistentFlags().StringVar(&nilValue, "nil-value", "", "string representing missing CSV cells")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(filterCmd)
}

// csvOptions builds datasource Options from the global flags
func csvOptions() (datasource.Options, error) {
	delim, size := utf8.DecodeRuneInString(delimiter)
	if size == 0 || size != len(delimiter) || delim == utf8.RuneError {
		return datasource.Options{}, fmt.Errorf("delimiter must be a single character, got %q", delimiter)
	}
	return datasource.Options{Delimiter: delim, NilValue: nilValue}, nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}
