package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tinyguard/internal/infrastructure/clock"
)

var diagnosticsJSON bool

var diagnosticsCmd = &cobra.Command{
	Use:     "diagnostics",
	Aliases: []string{"diag"},
	Short:   "Show catalog and rule table health",
	Long: `Load the catalog and the compiled rule table and report how much of the
catalog the rule table covers.`,
	Args: cobra.NoArgs,
	RunE: runDiagnostics,
}

func init() {
	rootCmd.AddCommand(diagnosticsCmd)
	diagnosticsCmd.Flags().BoolVar(&diagnosticsJSON, "json", false, "Print diagnostics as JSON")
}

func runDiagnostics(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	svc := app.NewServices(clock.New())
	defer svc.Aggregator.Close()

	if _, err := svc.ReloadCatalog.Execute(ctx); err != nil {
		app.Logger.Warn().Err(err).Msg("catalog unavailable")
	}

	diag := svc.Diagnostics.Execute(ctx)
	if diagnosticsJSON {
		return printJSON(diag)
	}
	fmt.Println(app.Theme.RenderDiagnostics(diag))
	return nil
}
