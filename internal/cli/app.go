// Package cli wires configuration, storage and use cases for the commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/tinyguard/internal/application/port"
	"github.com/bnema/tinyguard/internal/application/usecase"
	"github.com/bnema/tinyguard/internal/cli/styles"
	"github.com/bnema/tinyguard/internal/domain/build"
	"github.com/bnema/tinyguard/internal/domain/repository"
	domainruleset "github.com/bnema/tinyguard/internal/domain/ruleset"
	"github.com/bnema/tinyguard/internal/domain/tracker"
	"github.com/bnema/tinyguard/internal/infrastructure/config"
	"github.com/bnema/tinyguard/internal/infrastructure/host"
	"github.com/bnema/tinyguard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tinyguard/internal/infrastructure/ruleset"
	"github.com/bnema/tinyguard/internal/infrastructure/trackerlist"
	"github.com/bnema/tinyguard/internal/logging"
)

// Options holds the global flags.
type Options struct {
	ConfigPath string
	// LogLevel overrides logging.level when set.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Logger    zerolog.Logger

	Blocking     repository.BlockingStateRepository
	Reports      repository.ScanReportRepository
	Permissions  *host.StaticPermissions
	TrackerLists *trackerlist.Store

	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and builds the shared dependencies.
// The database is opened on first use.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	fileCfg := logging.FileConfig{
		Enabled:       cfg.Logging.File.Enabled,
		MaxSizeMB:     cfg.Logging.File.MaxSizeMB,
		MaxBackups:    cfg.Logging.File.MaxBackups,
		MaxAgeDays:    cfg.Logging.File.MaxAgeDays,
		Compress:      cfg.Logging.File.Compress,
		WriteToStderr: true,
	}
	if fileCfg.Enabled {
		if fileCfg.Dir, err = config.GetLogDir(); err != nil {
			return nil, fmt.Errorf("resolve log dir: %w", err)
		}
	}

	logger, logCleanup, err := logging.NewWithFile(logging.Config{
		Level:      lvl,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	}, fileCfg)
	if err != nil {
		logger.Warn().Err(err).Msg("file logging disabled")
	}

	if used := mgr.ConfigFileUsed(); used != "" {
		logger.Debug().Str("path", used).Msg("config loaded")
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)

	return &App{
		Config:       cfg,
		Manager:      mgr,
		Theme:        styles.NewTheme(),
		Logger:       logger,
		Blocking:     sqlite.NewLazyBlockingStateRepository(db),
		Reports:      sqlite.NewLazyScanReportRepository(db),
		Permissions:  host.NewStaticPermissions(cfg.Host.GrantedPermissions),
		TrackerLists: trackerlist.NewStore(),
		db:           db,
		ctx:          logging.WithContext(context.Background(), logger),
		logCleanup:   logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	err := a.db.Close()
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// CatalogPath returns the tracker list document path.
func (a *App) CatalogPath() string {
	return a.Manager.ResolvePath("catalog.path", a.Config.Catalog.Path)
}

// RulesDestination is where compile writes and diagnostics read.
func (a *App) RulesDestination() port.RuleTableDestination {
	dest := port.RuleTableDestination{
		RulesPath: a.Manager.ResolvePath("rules.output", a.Config.Rules.Output),
	}
	if a.Config.Rules.BlockedList != "" {
		dest.BlockedListPath = a.Manager.ResolvePath("rules.blocked_list", a.Config.Rules.BlockedList)
	}
	return dest
}

// CompileOptions returns the compiler options from the rules section.
func (a *App) CompileOptions() domainruleset.Options {
	return domainruleset.Options{
		MaxRules: a.Config.Rules.MaxRules,
		Priority: a.Config.Rules.PriorityDomains,
	}
}

// Services is the runtime graph behind scan and serve.
type Services struct {
	Catalog       *tracker.Catalog
	Aggregator    *usecase.ScanAggregator
	ReportRequest *usecase.ReportRequestUseCase
	ScanData      *usecase.GetScanDataUseCase
	SetBlocking   *usecase.SetBlockingUseCase
	GetBlocking   *usecase.GetBlockingUseCase
	Diagnostics   *usecase.GetDiagnosticsUseCase
	ReloadCatalog *usecase.ReloadCatalogUseCase
	RecordScans   *usecase.RecordSettledScansUseCase
}

// NewServices builds the use cases around an empty catalog.
// Call ReloadCatalog.Execute to fill it.
func (a *App) NewServices(scheduler port.Scheduler) *Services {
	catalog := tracker.NewCatalog()
	agg := usecase.NewScanAggregator(scheduler, a.Config.Scan.Delay())
	scanData := usecase.NewGetScanDataUseCase(agg, a.Permissions, a.Blocking, a.Config.Scan.RiskyPermissions)
	rules := ruleset.NewFileTable(a.RulesDestination().RulesPath)

	return &Services{
		Catalog:       catalog,
		Aggregator:    agg,
		ReportRequest: usecase.NewReportRequestUseCase(usecase.NewEventClassifier(catalog), agg),
		ScanData:      scanData,
		SetBlocking:   usecase.NewSetBlockingUseCase(a.Blocking),
		GetBlocking:   usecase.NewGetBlockingUseCase(a.Blocking),
		Diagnostics:   usecase.NewGetDiagnosticsUseCase(catalog, rules, a.Blocking),
		ReloadCatalog: usecase.NewReloadCatalogUseCase(catalog, a.TrackerLists, a.CatalogPath()),
		RecordScans:   usecase.NewRecordSettledScansUseCase(agg, scanData, a.Reports, a.Config.Database.KeepReports),
	}
}
