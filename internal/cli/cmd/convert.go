package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bnema/tinyguard/internal/application/usecase"
	"github.com/bnema/tinyguard/internal/cli/styles"
	"github.com/bnema/tinyguard/internal/infrastructure/config"
	"github.com/bnema/tinyguard/internal/infrastructure/filtering"
)

var convertFlags struct {
	output  string
	noCache bool
}

var convertCmd = &cobra.Command{
	Use:   "convert [source...]",
	Short: "Build the tracker list from adblock filter lists",
	Long: `Fetch adblock-syntax filter lists or hosts files and extract the tracker
domains of their plain domain-anchor rules ("||domain^") and "0.0.0.0 domain"
entries.

Sources are URLs or local files. Without arguments the lists from
sources.filter_lists are used. Downloads are cached so a later network
failure falls back to the last good copy.

The output format follows the file extension: .yaml/.yml or JSON.

Examples:
  tinyguard convert                                   # Configured lists into catalog.path
  tinyguard convert ./easyprivacy.txt -o trackers.yaml
  tinyguard convert https://example.org/list.txt --no-cache`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertFlags.output, "output", "o", "", "Tracker list output (default catalog.path)")
	convertCmd.Flags().BoolVar(&convertFlags.noCache, "no-cache", false, "Do not read or write the download cache")
}

func runConvert(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	locations := args
	if len(locations) == 0 {
		locations = app.Config.Sources.FilterLists
	}

	cacheDir := ""
	if !convertFlags.noCache {
		if cacheDir, err = config.GetFilterCacheDir(); err != nil {
			return fmt.Errorf("resolve cache dir: %w", err)
		}
	}

	output := convertFlags.output
	if output == "" {
		output = app.CatalogPath()
	}

	uc := usecase.NewConvertFilterListUseCase(filtering.NewDownloader(cacheDir).WithUserAgent(app.BuildInfo.UserAgent()), app.TrackerLists)
	out, err := uc.Execute(app.Ctx(), usecase.ConvertFilterListInput{
		Sources:    filtering.SourcesFromLocations(locations),
		OutputPath: output,
	})
	if err != nil {
		return err
	}

	names := make([]string, 0, len(out.PerSource))
	for name := range out.PerSource {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(app.Theme.Subtle.Render(fmt.Sprintf("  %s: %d domains", name, out.PerSource[name])))
	}
	fmt.Println(app.Theme.SuccessStyle.Render(fmt.Sprintf("%s %d tracker domains written to %s",
		styles.IconCheck, len(out.Domains), output)))
	return nil
}
