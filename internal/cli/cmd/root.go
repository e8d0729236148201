// Package cmd provides Cobra CLI commands for tinyguard.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tinyguard/internal/cli"
	"github.com/bnema/tinyguard/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootOpts  cli.Options
	rootCmd   = &cobra.Command{
		Use:   "tinyguard",
		Short: "A tiny tracker detector and blocker",
		Long: `TinyGuard - watch what a page loads, spot trackers, score its privacy.

Every observed request is classified against a catalog of known tracker
domains. Requests are grouped per tab; once a tab goes quiet its scan is
settled and scored from A to F.

The catalog also compiles into a static block-rule table for the browser's
declarative request blocker.

Use 'tinyguard serve' to run the local API a browser extension reports to,
or explore the subcommands for offline tooling like compile and classify.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema", "init":
				return nil
			}

			var err error
			app, err = cli.NewApp(rootOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOpts.ConfigPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/tinyguard/config.toml)")
	rootCmd.PersistentFlags().StringVar(&rootOpts.LogLevel, "log-level", "", "Override logging.level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
