package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tinyguard/internal/cli/styles"
	"github.com/bnema/tinyguard/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Write a default config file or show which file is in use.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every default setting",
	Long: `Write the default configuration as TOML to the --config path, or to
$XDG_CONFIG_HOME/tinyguard/config.toml. An existing file is kept unless
--force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file in use",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing config file")
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path := rootOpts.ConfigPath
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}

	theme := styles.NewTheme()
	if err := config.WriteConfig(config.DefaultConfig(), path, configForce); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			fmt.Println(theme.WarningStyle.Render(fmt.Sprintf("%s already exists, use --force to overwrite", path)))
			return nil
		}
		return err
	}

	fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("%s Config written to %s", styles.IconCheck, path)))
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if used := app.Manager.ConfigFileUsed(); used != "" {
		fmt.Println(used)
		return nil
	}

	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	fmt.Println(path + app.Theme.Subtle.Render(" (not created, using defaults)"))
	return nil
}
