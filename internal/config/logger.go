package config

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "figma-px"

type LoggerConfig struct {
	Level       string `yaml:"level"`
	Destination string `yaml:"destination,omitempty"`
	Mode        string `yaml:"mode,omitempty"`
}

type LoggingConfig struct {
	ConsoleLogger LoggerConfig `yaml:"console"`
	FileLogger    LoggerConfig `yaml:"file"`
}

// Validate checks logger levels and modes.
func (conf *LoggingConfig) Validate() error {
	for name, l := range map[string]LoggerConfig{"console": conf.ConsoleLogger, "file": conf.FileLogger} {
		switch l.Level {
		case "none", "normal", "debug":
		default:
			return fmt.Errorf("%s.level must be one of none, normal, debug, got %q", name, l.Level)
		}
		switch l.Mode {
		case "", "append", "overwrite":
		default:
			return fmt.Errorf("%s.mode must be append or overwrite, got %q", name, l.Mode)
		}
	}
	if conf.FileLogger.Level != "none" && conf.FileLogger.Destination == "" {
		return fmt.Errorf("file.destination is required when file logging is enabled")
	}
	return nil
}

// Prepare returns the program logger. Console output is split: errors go to
// stderr, everything else to stdout. The returned close function syncs and
// closes the log file, if any.
func (conf *LoggingConfig) Prepare() (*zap.Logger, func() error, error) {
	return conf.prepare(os.Stdout, os.Stderr)
}

func (conf *LoggingConfig) prepare(stdout, stderr io.Writer) (*zap.Logger, func() error, error) {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(ec)

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	var consoleCoreHP, consoleCoreLP zapcore.Core
	switch conf.ConsoleLogger.Level {
	case "normal":
		consoleCoreLP = zapcore.NewCore(consoleEncoder, zapcore.AddSync(stdout),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return zapcore.InfoLevel <= lvl && lvl < zapcore.ErrorLevel
			}))
		consoleCoreHP = zapcore.NewCore(consoleEncoder, zapcore.AddSync(stderr), highPriority)
	case "debug":
		consoleCoreLP = zapcore.NewCore(consoleEncoder, zapcore.AddSync(stdout),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return zapcore.DebugLevel <= lvl && lvl < zapcore.ErrorLevel
			}))
		consoleCoreHP = zapcore.NewCore(consoleEncoder, zapcore.AddSync(stderr), highPriority)
	default:
		consoleCoreLP = zapcore.NewNopCore()
		consoleCoreHP = zapcore.NewNopCore()
	}

	closer := func() error { return nil }
	fileCore := zapcore.NewNopCore()

	var level zapcore.Level
	switch conf.FileLogger.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "normal":
		level = zapcore.InfoLevel
	}
	if conf.FileLogger.Level == "debug" || conf.FileLogger.Level == "normal" {
		flags := os.O_CREATE | os.O_WRONLY
		if conf.FileLogger.Mode == "overwrite" {
			flags |= os.O_TRUNC
		} else {
			flags |= os.O_APPEND
		}
		f, err := os.OpenFile(conf.FileLogger.Destination, flags, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to access file log destination (%s): %w", conf.FileLogger.Destination, err)
		}
		fileCore = zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), zap.NewAtomicLevelAt(level))
		closer = func() error {
			_ = f.Sync()
			return f.Close()
		}
	}

	log := zap.New(zapcore.NewTee(consoleCoreHP, consoleCoreLP, fileCore), zap.AddCaller())
	return log.Named(appName), closer, nil
}
