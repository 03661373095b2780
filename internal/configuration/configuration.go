// Package configuration implements the reading of the application
// configuration from dotenv-style files.
package configuration

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/desertwitch/mkpath/internal/io"
)

const (
	// SettingDirMode is the octal permission mode for new directories.
	SettingDirMode = "MKPATH_DIR_MODE"

	// SettingLogLevel is the minimum level of emitted log messages.
	SettingLogLevel = "MKPATH_LOG_LEVEL"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// AppConfiguration is the principal structure holding the application
// configuration.
type AppConfiguration struct {
	DirMode  uint32
	LogLevel slog.Level
}

// NewAppConfiguration returns a pointer to a new [AppConfiguration] holding
// the default values.
func NewAppConfiguration() *AppConfiguration {
	return &AppConfiguration{
		DirMode:  io.DefaultDirMode,
		LogLevel: slog.LevelInfo,
	}
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	genericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		genericHandler: genericHandler,
	}
}

// ReadGeneric reads generic configuration files into a map (map[key]value).
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.genericHandler.Read(filenames...)
}

// ReadAppConfiguration returns the [AppConfiguration] from the given
// configuration files. Without any files the defaults are returned, settings
// missing from the files keep their default values.
func (c *Handler) ReadAppConfiguration(filenames ...string) (*AppConfiguration, error) {
	config := NewAppConfiguration()

	if len(filenames) == 0 {
		return config, nil
	}

	envMap, err := c.ReadGeneric(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config) failed to read: %w", err)
	}

	if value := c.MapKeyToString(envMap, SettingDirMode); value != "" {
		mode, err := ParseDirMode(value)
		if err != nil {
			return nil, fmt.Errorf("(config) %s: %w", SettingDirMode, err)
		}
		config.DirMode = mode
	}

	if value := c.MapKeyToString(envMap, SettingLogLevel); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err != nil {
			return nil, fmt.Errorf("(config) %w: %s: %w", ErrInvalidLogLevel, SettingLogLevel, err)
		}
		config.LogLevel = level
	}

	return config, nil
}

// MapKeyToString returns the value for a key, or an empty string if the key
// does not exist.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

// ParseDirMode parses an octal permission mode (such as "755" or "0o700").
// The mode must grant the owner read, write and execute permissions.
func ParseDirMode(value string) (uint32, error) {
	value = strings.TrimPrefix(strings.TrimPrefix(value, "0o"), "0O")

	mode, err := strconv.ParseUint(value, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidDirMode, value, err)
	}

	if mode > 0o7777 {
		return 0, fmt.Errorf("%w: %q: out of range", ErrInvalidDirMode, value)
	}

	if mode&0o700 != 0o700 {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidDirMode, value, ErrOwnerNotPermitted)
	}

	return uint32(mode), nil
}
