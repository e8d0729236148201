package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tinyguard/internal/application/usecase"
	"github.com/bnema/tinyguard/internal/cli/styles"
	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/domain/tracker"
	domainurl "github.com/bnema/tinyguard/internal/domain/url"
)

var classifyFlags struct {
	page       string
	jsonOutput bool
}

var classifyCmd = &cobra.Command{
	Use:   "classify <url>",
	Short: "Classify a single request URL",
	Long: `Classify one request URL against the tracker catalog, as the scanner would.

With --page the request is also checked for being third-party relative to
that page. The root domain uses the last-two-labels heuristic; when the
public suffix list disagrees a note is printed.

Examples:
  tinyguard classify https://www.google-analytics.com/collect
  tinyguard classify https://cdn.example.net/app.js --page https://example.com/`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVarP(&classifyFlags.page, "page", "p", "", "URL of the page that made the request")
	classifyCmd.Flags().BoolVar(&classifyFlags.jsonOutput, "json", false, "Print the event as JSON")
}

func runClassify(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	domains, err := app.TrackerLists.LoadFile(ctx, app.CatalogPath())
	if err != nil {
		return err
	}

	pageHost := ""
	if classifyFlags.page != "" {
		if pageHost, _ = domainurl.Hostname(classifyFlags.page); pageHost == "" {
			return fmt.Errorf("page URL %q has no hostname", classifyFlags.page)
		}
	}

	catalog := tracker.NewCatalog(domains...)
	classifier := usecase.NewEventClassifier(catalog)
	event, ok := classifier.Classify(args[0], pageHost)
	if !ok {
		return fmt.Errorf("URL %q has no hostname", args[0])
	}

	if classifyFlags.jsonOutput {
		return printJSON(event)
	}

	verdict := app.Theme.SuccessStyle.Render(styles.IconCheck + " not a known tracker")
	if event.IsTracker {
		verdict = app.Theme.ErrorStyle.Render(styles.IconShield + " tracker")
	}
	fmt.Println(app.Theme.Title.Render(event.Hostname) + "  " + verdict)
	fmt.Println(app.Theme.Subtle.Render("root domain:  ") + event.RootDomain)
	if entry, ok := matchedEntry(catalog, event); ok {
		fmt.Println(app.Theme.Subtle.Render("matched:      ") + entry)
	}
	if pageHost != "" {
		fmt.Println(app.Theme.Subtle.Render("third-party:  ") + fmt.Sprintf("%t", event.IsThirdParty))
	}

	if domainurl.HeuristicDiverges(event.Hostname) {
		registrable, _ := domainurl.RegistrableDomain(event.Hostname)
		fmt.Println(app.Theme.WarningStyle.Render(
			fmt.Sprintf("note: public suffix list gives %s as the registrable domain", registrable)))
	}
	return nil
}

// matchedEntry names the most specific catalog entry that made event a tracker.
func matchedEntry(catalog *tracker.Catalog, event entity.ClassifiedEvent) (string, bool) {
	if !event.IsTracker {
		return "", false
	}
	return catalog.Match(event.Hostname)
}
