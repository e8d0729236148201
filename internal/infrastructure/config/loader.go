package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	explicit  bool
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager. An empty path searches the XDG
// config directory and the working directory for config.toml; a non-empty
// path must exist.
func NewManager(path string) (*Manager, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	// TINYGUARD_DATABASE_PATH, TINYGUARD_SERVER_LISTEN_ADDR and so on are
	// picked up by AutomaticEnv. The bindings below cover shorter names.
	v.SetEnvPrefix("TINYGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TINYGUARD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TINYGUARD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TINYGUARD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TINYGUARD_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		explicit:  path != "",
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load reads defaults, the config file if any, and the environment.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.buildConfig()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	if !m.explicit && errors.Is(err, os.ErrNotExist) {
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile = configFileName
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

// buildConfig unmarshals, fills derived values and validates.
func (m *Manager) buildConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	config.Rules.PriorityDomains = lowerAll(config.Rules.PriorityDomains)
	config.Host.GrantedPermissions = trimAll(config.Host.GrantedPermissions)
	config.Scan.RiskyPermissions = trimAll(config.Scan.RiskyPermissions)
}

func lowerAll(in []string) []string {
	out := trimAll(in)
	for i := range out {
		out[i] = strings.ToLower(out[i])
	}
	return out
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Get returns the loaded configuration, or the defaults before Load succeeds.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config
}

// ConfigFileUsed returns the file Load read, or "" when running on defaults.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// ResolvePath anchors a relative path that was set in the config file to the
// file's directory. Defaults, flags and env values stay relative to the
// working directory.
func (m *Manager) ResolvePath(key, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	used := m.viper.ConfigFileUsed()
	if used == "" || !m.viper.InConfig(key) {
		return p
	}
	return filepath.Join(filepath.Dir(used), p)
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("catalog.path", defaults.Catalog.Path)
	m.viper.SetDefault("catalog.watch", defaults.Catalog.Watch)

	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.viper.SetDefault("database.keep_reports", defaults.Database.KeepReports)

	m.viper.SetDefault("host.granted_permissions", defaults.Host.GrantedPermissions)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file.enabled", defaults.Logging.File.Enabled)
	m.viper.SetDefault("logging.file.max_size_mb", defaults.Logging.File.MaxSizeMB)
	m.viper.SetDefault("logging.file.max_backups", defaults.Logging.File.MaxBackups)
	m.viper.SetDefault("logging.file.max_age_days", defaults.Logging.File.MaxAgeDays)
	m.viper.SetDefault("logging.file.compress", defaults.Logging.File.Compress)

	m.viper.SetDefault("rules.output", defaults.Rules.Output)
	m.viper.SetDefault("rules.blocked_list", defaults.Rules.BlockedList)
	m.viper.SetDefault("rules.max_rules", defaults.Rules.MaxRules)
	m.viper.SetDefault("rules.priority_domains", defaults.Rules.PriorityDomains)

	m.viper.SetDefault("scan.settle_delay", defaults.Scan.SettleDelay)
	m.viper.SetDefault("scan.risky_permissions", defaults.Scan.RiskyPermissions)

	m.viper.SetDefault("server.listen_addr", defaults.Server.ListenAddr)
	m.viper.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)

	m.viper.SetDefault("sources.filter_lists", defaults.Sources.FilterLists)
}
