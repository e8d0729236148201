package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tinyguard/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display the build and the files this configuration resolves to.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	paths := styles.AboutPaths{
		ConfigFile: app.Manager.ConfigFileUsed(),
		Database:   app.Config.Database.Path,
		Catalog:    app.CatalogPath(),
		Rules:      app.RulesDestination().RulesPath,
	}
	fmt.Println(styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo, paths))
	return nil
}
