package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/tinyguard/internal/application/usecase"
	"github.com/bnema/tinyguard/internal/cli"
	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/infrastructure/clock"
)

var scanFlags struct {
	page       string
	tab        int64
	jsonOutput bool
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Score a page from a list of request URLs",
	Long: `Read request URLs from stdin, one per line, and score them as one tab.

Blank lines and lines starting with '#' are skipped. Once input ends the
scan waits for the settle delay (scan.settle_delay) before printing the
report.

Examples:
  cat requests.txt | tinyguard scan --page https://news.example.com/
  tinyguard scan --page https://example.com/ --json < har-urls.txt`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVarP(&scanFlags.page, "page", "p", "", "URL of the scanned page")
	scanCmd.Flags().Int64Var(&scanFlags.tab, "tab", 1, "Tab id to record under")
	scanCmd.Flags().BoolVar(&scanFlags.jsonOutput, "json", false, "Print the report as JSON")
}

func runScan(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := scanReader(ctx, app, cmd.InOrStdin(), entity.TabID(scanFlags.tab), scanFlags.page)
	if err != nil {
		return err
	}

	if scanFlags.jsonOutput {
		return printJSON(report)
	}
	fmt.Println(app.Theme.RenderScanReport(report))
	return nil
}

// scanReader feeds every URL of r into a fresh aggregator and returns the
// report once the tab settles.
func scanReader(ctx context.Context, app *cli.App, r io.Reader, tabID entity.TabID, page string) (entity.ScanReport, error) {
	svc := app.NewServices(clock.New())
	defer svc.Aggregator.Close()

	if _, err := svc.ReloadCatalog.Execute(ctx); err != nil {
		return entity.ScanReport{}, err
	}

	settled, unsubscribe := svc.Aggregator.Subscribe(1)
	defer unsubscribe()

	recorded := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out := svc.ReportRequest.Execute(ctx, usecase.ReportRequestInput{
			TabID:   tabID,
			URL:     line,
			PageURL: page,
		})
		if out.Recorded {
			recorded++
		}
	}
	if err := scanner.Err(); err != nil {
		return entity.ScanReport{}, fmt.Errorf("read urls: %w", err)
	}

	if recorded > 0 {
		app.Logger.Debug().Int("requests", recorded).Dur("settle_delay", app.Config.Scan.Delay()).Msg("waiting for scan to settle")
		for waiting := true; waiting; {
			select {
			case <-ctx.Done():
				return entity.ScanReport{}, ctx.Err()
			case ev := <-settled:
				waiting = ev.TabID != tabID
			}
		}
	}

	return svc.ScanData.Execute(ctx, tabID), nil
}
