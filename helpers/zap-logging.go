// Package helpers carries the operational logger of the command.
package helpers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.SugaredLogger

// LogLevelFlags adds the log-level flag to the flag set and records its environment
// variable
func LogLevelFlags(pf *flag.FlagSet, argToEnv map[string]string) {
	pf.StringP("log-level", "", "error", "Level of the operational log written to stderr (debug, info, warn, error)")
	viper.BindPFlag("log-level", pf.Lookup("log-level"))
	argToEnv["log-level"] = "GET_TOKEN_LOG_LEVEL"
}

// LoggerToLogr converts the zap logger to a logr.Logger, for code written against logr.
func LoggerToLogr() logr.Logger {
	if Logger == nil {
		return logr.Discard()
	}
	return zapr.NewLogger(Logger.Desugar())
}

func coloredLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var lvl string
	switch l {
	case zapcore.DebugLevel:
		lvl = color.BlueString("DEBUG")
	case zapcore.InfoLevel:
		lvl = color.GreenString("INFO")
	case zapcore.WarnLevel:
		lvl = color.YellowString("WARN")
	case zapcore.ErrorLevel:
		lvl = color.RedString("ERROR")
	case zapcore.DPanicLevel, zapcore.PanicLevel:
		lvl = color.HiRedString("PANIC")
	case zapcore.FatalLevel:
		lvl = color.MagentaString("FATAL")
	default:
		lvl = l.String()
	}
	enc.AppendString(lvl)
}

// InitLogger (re)builds the console logger at the given level. Output goes to stderr,
// stdout is reserved for the diagnostics and the token.
func InitLogger(logLevel string) error {
	if logLevel == "" {
		logLevel = "error"
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level '%s'", logLevel)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.CallerKey = "caller"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.ConsoleSeparator = " | "

	cfg.Level = zap.NewAtomicLevelAt(lvl)

	if viper.GetBool("no-colors") {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		cfg.EncoderConfig.EncodeLevel = coloredLevelEncoder
	}

	z, err := cfg.Build()
	if err != nil {
		return err
	}

	Logger = z.Sugar()
	return nil
}

func init() {
	if Logger == nil {
		if err := InitLogger("error"); err != nil {
			Logger = zap.NewNop().Sugar()
		}
	}
}
