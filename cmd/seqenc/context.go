package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"seqenc/internal/config"
	"seqenc/internal/deps"
	"seqenc/internal/logging"
)

type commandContext struct {
	configFlag   *string
	ffmpegFlag   *string
	logLevelFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
	logWarning error
	closeLog   func() error
}

func newCommandContext(configFlag, ffmpegFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		ffmpegFlag:   ffmpegFlag,
		logLevelFlag: logLevelFlag,
	}
}

// ensureConfig loads the configuration once and applies flag overrides.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if binary := flagValue(c.ffmpegFlag); binary != "" {
			cfg.Encoder.Binary = binary
		}
		if level := flagValue(c.logLevelFlag); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
			if err := cfg.Validate(); err != nil {
				c.configErr = fmt.Errorf("--log-level: %w", err)
				return
			}
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// ensureLogger builds the logger once. File logging is optional: when the
// log target cannot be opened the returned logger discards records and the
// error is reported as a warning, leaving the wizard usable.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, closeLog, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			c.logWarning = fmt.Errorf("file logging disabled: %w", err)
			return
		}
		c.logger = logger
		c.closeLog = closeLog
	})
	return c.logger, c.loggerErr
}

// closeLogger releases the log file opened by ensureLogger.
func (c *commandContext) closeLogger() error {
	if c.closeLog == nil {
		return nil
	}
	closeLog := c.closeLog
	c.closeLog = nil
	return closeLog()
}

// ffmpegBinary resolves the executable the wizard launches.
func (c *commandContext) ffmpegBinary() string {
	var configured string
	if cfg, err := c.ensureConfig(); err == nil && cfg != nil {
		configured = cfg.Encoder.Binary
	}
	return deps.ResolveFFmpeg(configured)
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
