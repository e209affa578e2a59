package domain

// Setting keys stored in the settings table.
const (
	// SettingAllowedTopic holds the id of the single conversation thread the
	// bot accepts commands from. Absent or SettingTopicOff means
	// unrestricted.
	SettingAllowedTopic = "topico_permitido"

	// SettingTopicOff is the sentinel that disables the topic restriction.
	SettingTopicOff = "off"
)

// Config holds the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	// Token is the chat platform bot token. Never written to the config
	// file; supplied via environment.
	Token string `toml:"-"`

	// DBPath is the sqlite database file path.
	DBPath string `toml:"db_path"`

	// LogDir is the directory for log files. Empty disables file logging.
	LogDir string `toml:"log_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// NewDefaultConfig returns the configuration defaults.
func NewDefaultConfig() *Config {
	return &Config{
		DBPath:   "tarefas_bot.db",
		LogLevel: "info",
	}
}
