package config

import "time"

// Config represents the complete configuration for tinyguard.
// Sections are declared in alphabetical order so the written file is stable.
type Config struct {
	// Catalog locates the tracker list loaded into the detection catalog.
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog" toml:"catalog"`
	// Database holds the persisted blocking flag and scan history.
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database"`
	// Host stands in for the permission API of the embedding browser.
	Host     HostConfig    `mapstructure:"host" yaml:"host" toml:"host"`
	Logging  LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Rules    RulesConfig   `mapstructure:"rules" yaml:"rules" toml:"rules"`
	Scan     ScanConfig    `mapstructure:"scan" yaml:"scan" toml:"scan"`
	Server   ServerConfig  `mapstructure:"server" yaml:"server" toml:"server"`
	Sources  SourcesConfig `mapstructure:"sources" yaml:"sources" toml:"sources"`
}

// CatalogConfig configures the tracker list.
type CatalogConfig struct {
	// Path is a JSON or YAML document with a "trackers" array.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
	// Watch reloads the catalog when the file changes while serving.
	Watch bool `mapstructure:"watch" yaml:"watch" toml:"watch"`
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
	// KeepReports bounds the stored scan history. Zero keeps everything.
	KeepReports int `mapstructure:"keep_reports" yaml:"keep_reports" toml:"keep_reports"`
}

// HostConfig lists the permissions reported as granted.
type HostConfig struct {
	GrantedPermissions []string `mapstructure:"granted_permissions" yaml:"granted_permissions" toml:"granted_permissions"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level" toml:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
	// File adds a rotating log file, mostly useful for serve.
	File LogFileConfig `mapstructure:"file" yaml:"file" toml:"file"`
}

// LogFileConfig enables a rotating JSON log file under the XDG state directory.
type LogFileConfig struct {
	Enabled    bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	MaxSizeMB  int  `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool `mapstructure:"compress" yaml:"compress" toml:"compress"`
}

// RulesConfig configures the rule compiler.
type RulesConfig struct {
	Output          string   `mapstructure:"output" yaml:"output" toml:"output"`
	BlockedList     string   `mapstructure:"blocked_list" yaml:"blocked_list" toml:"blocked_list"`
	MaxRules        int      `mapstructure:"max_rules" yaml:"max_rules" toml:"max_rules"`
	PriorityDomains []string `mapstructure:"priority_domains" yaml:"priority_domains" toml:"priority_domains"`
}

// ScanConfig configures per-tab sessions.
type ScanConfig struct {
	// SettleDelay is a Go duration string such as "3s".
	SettleDelay      string   `mapstructure:"settle_delay" yaml:"settle_delay" toml:"settle_delay"`
	RiskyPermissions []string `mapstructure:"risky_permissions" yaml:"risky_permissions" toml:"risky_permissions"`
}

// Delay returns the parsed settle delay. Load rejects unparsable values.
func (s ScanConfig) Delay() time.Duration {
	d, err := time.ParseDuration(s.SettleDelay)
	if err != nil {
		return 0
	}
	return d
}

// ServerConfig configures the local HTTP API.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr" toml:"listen_addr"`
	// ShutdownTimeout is a Go duration string.
	ShutdownTimeout string `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// GracePeriod returns the parsed shutdown timeout.
func (s ServerConfig) GracePeriod() time.Duration {
	d, err := time.ParseDuration(s.ShutdownTimeout)
	if err != nil {
		return 0
	}
	return d
}

// SourcesConfig lists filter lists fetched by the convert command.
type SourcesConfig struct {
	// FilterLists holds URLs or local paths in Adblock or hosts syntax.
	FilterLists []string `mapstructure:"filter_lists" yaml:"filter_lists" toml:"filter_lists"`
}
