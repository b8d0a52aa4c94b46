package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings holds configuration settings for logging, including log level, type and file path
type LoggerSettings struct {
	LogLevel   string `yaml:"log_level" env:"CRYPTOUTIL_LOG_LEVEL" env-default:"info" validate:"required,oneof=info debug error warning critical"`
	LogType    string `yaml:"log_type" env:"CRYPTOUTIL_LOG_TYPE" env-default:"console" validate:"required,oneof=console file"`
	FilePath   string `yaml:"file_path" env:"CRYPTOUTIL_LOG_FILE_PATH"`
	MaxSize    int    `yaml:"max_size" env:"CRYPTOUTIL_LOG_MAX_SIZE"`
	MaxBackups int    `yaml:"max_backups" env:"CRYPTOUTIL_LOG_MAX_BACKUPS"`
	MaxAge     int    `yaml:"max_age" env:"CRYPTOUTIL_LOG_MAX_AGE"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType == LogTypeFile {
		if s.FilePath == "" {
			return fmt.Errorf("file path is required for file logger")
		}
		if s.MaxSize < 1 || s.MaxSize > 100 {
			return fmt.Errorf("max size must be between 1 and 100 MB")
		}
		if s.MaxBackups < 1 || s.MaxBackups > 10 {
			return fmt.Errorf("max backups must be between 1 and 10")
		}
		if s.MaxAge < 1 || s.MaxAge > 365 {
			return fmt.Errorf("max age must be between 1 and 365 days")
		}
	}

	return nil
}
