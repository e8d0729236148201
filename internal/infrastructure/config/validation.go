package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/bnema/tinyguard/internal/logging"
)

// validateConfig collects every problem instead of stopping at the first one.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateCatalog(config)...)
	validationErrors = append(validationErrors, validateDatabase(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateRules(config)...)
	validationErrors = append(validationErrors, validateScan(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateCatalog(config *Config) []string {
	if strings.TrimSpace(config.Catalog.Path) == "" {
		return []string{"catalog.path must not be empty"}
	}
	return nil
}

func validateDatabase(config *Config) []string {
	if config.Database.KeepReports < 0 {
		return []string{"database.keep_reports must be non-negative"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a valid level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be console or json, got %q", config.Logging.Format))
	}
	if f := config.Logging.File; f.MaxSizeMB < 0 || f.MaxBackups < 0 || f.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.file limits must be non-negative")
	}
	return validationErrors
}

func validateRules(config *Config) []string {
	var validationErrors []string
	if strings.TrimSpace(config.Rules.Output) == "" {
		validationErrors = append(validationErrors, "rules.output must not be empty")
	}
	if config.Rules.MaxRules <= 0 {
		validationErrors = append(validationErrors, "rules.max_rules must be greater than zero")
	}
	return validationErrors
}

func validateScan(config *Config) []string {
	d, err := time.ParseDuration(config.Scan.SettleDelay)
	if err != nil {
		return []string{fmt.Sprintf("scan.settle_delay %q is not a duration", config.Scan.SettleDelay)}
	}
	if d <= 0 {
		return []string{"scan.settle_delay must be positive"}
	}
	return nil
}

func validateServer(config *Config) []string {
	var validationErrors []string
	if _, _, err := net.SplitHostPort(config.Server.ListenAddr); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("server.listen_addr %q must be host:port", config.Server.ListenAddr))
	}
	if d, err := time.ParseDuration(config.Server.ShutdownTimeout); err != nil || d < 0 {
		validationErrors = append(validationErrors, fmt.Sprintf("server.shutdown_timeout %q is not a non-negative duration", config.Server.ShutdownTimeout))
	}
	return validationErrors
}
