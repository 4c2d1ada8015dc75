package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "1.0.0"

	// Global flags
	verbose    bool
	chromePath string
)

var rootCmd = &cobra.Command{
	Use:   "invoice-builder",
	Short: "Build and export styled invoices as PDF or PNG",
	Long: `Invoice Builder renders invoice data through one of five layout
templates and exports the result as a paginated A4 PDF or a lossless PNG.

Capture uses a headless Chrome/Chromium binary; point --chrome-path at
one if it is not on PATH.

Examples:
  # Start the editing/export API
  invoice-builder serve

  # One-shot export of an invoice JSON file
  invoice-builder export invoice.json --format pdf

  # List the available layouts
  invoice-builder templates

  # Write the rendered HTML for inspection
  invoice-builder preview --template classic -o invoice.html`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&chromePath, "chrome-path", "", "Headless browser binary (env: CHROME_PATH)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// newLogger builds the process logger; verbose switches to the human
// readable development encoder at debug level.
func newLogger() *zap.Logger {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
