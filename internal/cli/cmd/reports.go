package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportsFlags struct {
	limit      int
	jsonOutput bool
}

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List recently settled scans",
	Long: `List the scans recorded by 'tinyguard serve', newest first.

The history keeps database.keep_reports entries.`,
	Args: cobra.NoArgs,
	RunE: runReports,
}

func init() {
	rootCmd.AddCommand(reportsCmd)
	reportsCmd.Flags().IntVarP(&reportsFlags.limit, "limit", "n", 20, "Maximum number of reports")
	reportsCmd.Flags().BoolVar(&reportsFlags.jsonOutput, "json", false, "Print reports as JSON")
}

func runReports(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if reportsFlags.limit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}

	records, err := app.Reports.Recent(app.Ctx(), reportsFlags.limit)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if reportsFlags.jsonOutput {
		return printJSON(records)
	}
	fmt.Println(app.Theme.RenderScanRecords(records))
	return nil
}
