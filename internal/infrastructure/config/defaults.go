package config

import (
	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/domain/ruleset"
	"github.com/bnema/tinyguard/internal/infrastructure/filtering"
)

// Default configuration constants
const (
	defaultCatalogPath     = "trackers.json"
	defaultRulesOutput     = "rules.json"
	defaultBlockedList     = "blocked-trackers.txt"
	defaultKeepReports     = 500
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
	defaultLogMaxSizeMB    = 10
	defaultLogMaxBackups   = 3
	defaultLogMaxAgeDays   = 7
	defaultSettleDelay     = "3s"
	defaultListenAddr      = "127.0.0.1:7878"
	defaultShutdownTimeout = "5s"
)

// DefaultConfig returns the built-in configuration. Database.Path is left
// empty and resolved to the XDG data directory on load.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:  defaultCatalogPath,
			Watch: true,
		},
		Database: DatabaseConfig{
			KeepReports: defaultKeepReports,
		},
		Host: HostConfig{
			GrantedPermissions: []string{},
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			File: LogFileConfig{
				MaxSizeMB:  defaultLogMaxSizeMB,
				MaxBackups: defaultLogMaxBackups,
				MaxAgeDays: defaultLogMaxAgeDays,
				Compress:   true,
			},
		},
		Rules: RulesConfig{
			Output:          defaultRulesOutput,
			BlockedList:     defaultBlockedList,
			MaxRules:        ruleset.DefaultMaxRules,
			PriorityDomains: ruleset.DefaultPriorityDomains(),
		},
		Scan: ScanConfig{
			SettleDelay:      defaultSettleDelay,
			RiskyPermissions: entity.DefaultRiskyPermissions(),
		},
		Server: ServerConfig{
			ListenAddr:      defaultListenAddr,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Sources: SourcesConfig{
			FilterLists: []string{filtering.EasyPrivacyURL},
		},
	}
}
