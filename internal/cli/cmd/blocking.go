package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tinyguard/internal/application/usecase"
)

var blockingCmd = &cobra.Command{
	Use:       "blocking [on|off]",
	Short:     "Show or set the blocking toggle",
	Long:      `Without argument, print whether blocking is enabled. With on or off, store the new value.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE:      runBlocking,
}

func init() {
	rootCmd.AddCommand(blockingCmd)
}

func runBlocking(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	enabled := usecase.NewGetBlockingUseCase(app.Blocking).Execute(ctx)
	if len(args) == 1 {
		out, err := usecase.NewSetBlockingUseCase(app.Blocking).Execute(ctx, args[0] == "on")
		if err != nil {
			return err
		}
		enabled = out.Enabled
	}

	if enabled {
		fmt.Println(app.Theme.SuccessStyle.Render("blocking: on"))
	} else {
		fmt.Println(app.Theme.Subtle.Render("blocking: off"))
	}
	return nil
}
