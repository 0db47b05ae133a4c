package config

import (
	"fmt"
	"strings"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	// UI validation
	if c.UI.TickIntervalMs < 1 {
		errs = append(errs, "ui.tick_interval_ms must be >= 1")
	}
	if c.UI.SidebarWidth < 10 {
		errs = append(errs, "ui.sidebar_width must be >= 10")
	}
	if c.UI.HighlightOutput && c.UI.GlamourStyle == "" {
		errs = append(errs, "ui.glamour_style is required when ui.highlight_output is set")
	}

	// Transforms validation
	if c.Transforms.JSONIndent < 0 || c.Transforms.JSONIndent > 16 {
		errs = append(errs, "transforms.json_indent must be between 0 and 16")
	}
	if c.Transforms.SQLIndent < 0 || c.Transforms.SQLIndent > 16 {
		errs = append(errs, "transforms.sql_indent must be between 0 and 16")
	}
	if c.Transforms.SQLLinesBetweenQueries < 0 {
		errs = append(errs, "transforms.sql_lines_between_queries must be >= 0")
	}

	// Persistence validation
	if c.Persistence.Enabled && c.Persistence.AppID == "" {
		errs = append(errs, "persistence.app_id is required when persistence is enabled")
	}

	// Log validation
	if !contains(logLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Sprintf("log.level must be one of %v", logLevels))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
