package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tinyguard/internal/infrastructure/api"
	"github.com/bnema/tinyguard/internal/infrastructure/clock"
	"github.com/bnema/tinyguard/internal/infrastructure/config"
	"github.com/bnema/tinyguard/internal/infrastructure/trackerlist"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local scan API",
	Long: `Run the local HTTP API that a browser extension reports requests to.

The catalog is loaded at startup and reloaded whenever the tracker list
document changes (catalog.watch). Every settled scan is stored in the
report history. Edits to the config file update the granted host
permissions without a restart.

Routes:
  POST   /v1/tabs/{tabID}/requests   report an observed request
  GET    /v1/tabs/{tabID}/scan       scan report of a tab
  GET    /v1/tabs/{tabID}/settled    whether the tab has settled
  DELETE /v1/tabs/{tabID}            end a tab session
  GET    /v1/tabs                    tabs with a session
  GET|PUT /v1/blocking               read or set the blocking flag
  GET    /v1/diagnostics             catalog and rule table health
  POST   /v1/catalog/reload          reload the tracker list

Examples:
  tinyguard serve
  tinyguard serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default server.listen_addr)")
}

func runServe(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	log := app.Logger.With().Str("component", "serve").Logger()

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := app.NewServices(clock.New())
	defer svc.Aggregator.Close()

	// A missing or broken list is not fatal; reload once it is fixed.
	if _, err := svc.ReloadCatalog.Execute(ctx); err != nil {
		log.Warn().Err(err).Msg("starting with an empty catalog")
	}

	if app.Manager.ConfigFileUsed() != "" {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			app.Permissions.Set(cfg.Host.GrantedPermissions)
			log.Info().Strs("permissions", cfg.Host.GrantedPermissions).Msg("host permissions updated")
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch disabled")
		}
	}

	addr := app.Config.Server.ListenAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	handler := api.NewRouter(app.Logger, api.Deps{
		Aggregator:    svc.Aggregator,
		ReportRequest: svc.ReportRequest,
		ScanData:      svc.ScanData,
		SetBlocking:   svc.SetBlocking,
		GetBlocking:   svc.GetBlocking,
		Diagnostics:   svc.Diagnostics,
		ReloadCatalog: svc.ReloadCatalog,
	})
	server := api.NewServer(handler, app.Config.Server.GracePeriod())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(gctx, addr)
	})
	g.Go(func() error {
		svc.RecordScans.Run(gctx)
		return nil
	})
	if app.Config.Catalog.Watch {
		watcher := trackerlist.NewWatcher(svc.ReloadCatalog.Path(), trackerlist.DefaultDebounce, func(ctx context.Context) error {
			_, err := svc.ReloadCatalog.Execute(ctx)
			return err
		})
		g.Go(func() error {
			if err := watcher.Run(gctx); err != nil {
				log.Warn().Err(err).Msg("catalog watch disabled")
			}
			return nil
		})
	}

	return g.Wait()
}
