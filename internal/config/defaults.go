package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	UI          UIConfig          `json:"ui" yaml:"ui"`
	Transforms  TransformsConfig  `json:"transforms" yaml:"transforms"`
	Persistence PersistenceConfig `json:"persistence" yaml:"persistence"`
	Log         LogConfig         `json:"log" yaml:"log"`
}

type UIConfig struct {
	TickIntervalMs  int    `json:"tick_interval_ms" yaml:"tick_interval_ms"`   // Default: 1000 (UTC Now refresh)
	SidebarWidth    int    `json:"sidebar_width" yaml:"sidebar_width"`         // Default: 30
	HighlightOutput bool   `json:"highlight_output" yaml:"highlight_output"`   // Default: true
	GlamourStyle    string `json:"glamour_style" yaml:"glamour_style"`         // Default: "dark"
	ColorPrimary    string `json:"color_primary" yaml:"color_primary"`         // Default: "63"
	ColorMuted      string `json:"color_muted" yaml:"color_muted"`             // Default: "241"
	ShowLineNumbers bool   `json:"show_line_numbers" yaml:"show_line_numbers"` // Default: false
}

type TransformsConfig struct {
	JSONIndent             int  `json:"json_indent" yaml:"json_indent"`                             // Default: 2
	JSONAllowComments      bool `json:"json_allow_comments" yaml:"json_allow_comments"`             // Default: true
	SQLIndent              int  `json:"sql_indent" yaml:"sql_indent"`                               // Default: 4
	SQLUppercase           bool `json:"sql_uppercase" yaml:"sql_uppercase"`                         // Default: true
	SQLLinesBetweenQueries int  `json:"sql_lines_between_queries" yaml:"sql_lines_between_queries"` // Default: 1
}

type PersistenceConfig struct {
	Enabled      bool   `json:"enabled" yaml:"enabled"`             // Default: true
	AppID        string `json:"app_id" yaml:"app_id"`               // Default: "devtoolbox"
	DatabasePath string `json:"database_path" yaml:"database_path"` // Default: ~/.config/devtoolbox/state.db
}

type LogConfig struct {
	File  string `json:"file" yaml:"file"`   // Default: "" (logging disabled)
	Level string `json:"level" yaml:"level"` // Default: "info"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			TickIntervalMs:  1000,
			SidebarWidth:    30,
			HighlightOutput: true,
			GlamourStyle:    "dark",
			ColorPrimary:    "63",
			ColorMuted:      "241",
		},
		Transforms: TransformsConfig{
			JSONIndent:             2,
			JSONAllowComments:      true,
			SQLIndent:              4,
			SQLUppercase:           true,
			SQLLinesBetweenQueries: 1,
		},
		Persistence: PersistenceConfig{
			Enabled: true,
			AppID:   "devtoolbox",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
