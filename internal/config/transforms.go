package config

import (
	"log/slog"
	"strings"

	"github.com/Cyclone1070/devtoolbox/internal/transform"
	"github.com/Cyclone1070/devtoolbox/internal/transform/sqlfmt"
)

// TransformOptions maps the transforms section onto the formatter styles.
func (c *Config) TransformOptions() transform.Options {
	return transform.Options{
		JSON: transform.JSONOptions{
			Indent:        strings.Repeat(" ", c.Transforms.JSONIndent),
			AllowComments: c.Transforms.JSONAllowComments,
		},
		SQL: sqlfmt.Options{
			Indent:              strings.Repeat(" ", c.Transforms.SQLIndent),
			Uppercase:           c.Transforms.SQLUppercase,
			LinesBetweenQueries: c.Transforms.SQLLinesBetweenQueries,
		},
	}
}

// SlogLevel parses log.level. Validate guarantees a known value.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
