// internal/config/types.go
package config

// Global configuration shared by both tools, loaded from config.yaml and
// overridden by environment variables.
type Global struct {
	Logging     LoggingConfig     `yaml:"logging"`
	CleanScript CleanScriptConfig `yaml:"cleanscript"`
	Router      RouterConfig      `yaml:"ir"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type LoggingConfig struct {
	Format     string `yaml:"format" env:"SCRIPTTOOLS_LOG_FORMAT"`
	Level      string `yaml:"level" env:"SCRIPTTOOLS_LOG_LEVEL"`
	File       string `yaml:"file" env:"SCRIPTTOOLS_LOG_FILE"` // empty = stderr only
	MaxSizeMB  int    `yaml:"max_size_mb" env:"SCRIPTTOOLS_LOG_MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups" env:"SCRIPTTOOLS_LOG_MAX_BACKUPS"`
	MaxAgeDays int    `yaml:"max_age_days" env:"SCRIPTTOOLS_LOG_MAX_AGE_DAYS"`
	Compress   bool   `yaml:"compress" env:"SCRIPTTOOLS_LOG_COMPRESS"` // defaults to true
}

type CleanScriptConfig struct {
	MaxLineLength int `yaml:"max_line_length" env:"CLEANSCRIPT_MAX_LINE"`
}

type RouterConfig struct {
	InputBuffer   int    `yaml:"input_buffer" env:"IR_INPUT_BUFFER"`
	ConsoleDevice string `yaml:"console_device" env:"IR_CONSOLE_DEVICE"`
	TTYDevice     string `yaml:"tty_device" env:"IR_TTY_DEVICE"`
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile" env:"SCRIPTTOOLS_METRICS_TEXTFILE"` // empty = disabled
}

// CompressLogs reports whether rotated log files are gzipped.
func (l LoggingConfig) CompressLogs() bool {
	return l.Compress
}
