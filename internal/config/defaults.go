package config

const (
	defaultConfigPath   = "~/.config/seqenc/config.toml"
	projectConfigName   = "seqenc.toml"
	defaultLogDir       = "~/.local/share/seqenc/logs"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultShowMetadata = true
	logFileName         = "seqenc.log"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Encoder: Encoder{
			ShowMetadata: defaultShowMetadata,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir,
		},
	}
}
