package logger

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"golang.org/x/term"
)

const defaultLogFilePermissions fs.FileMode = 0644

type LogrusConfig struct {
	EnableConsole bool
	EnableFile    bool
	Structured    bool
	Level         logrus.Level
	FileLocation  string
}

type LogrusLogger struct {
	Config LogrusConfig
	Logger *logrus.Logger
	Output io.Writer
}

func NewLogrusLogger(cfg LogrusConfig) *LogrusLogger {
	appLogger := logrus.New()

	var output io.Writer
	switch {
	case cfg.EnableConsole && cfg.EnableFile:
		output = io.MultiWriter(os.Stderr, openLogFile(cfg.FileLocation))
	case cfg.EnableConsole:
		output = os.Stderr
	case cfg.EnableFile:
		output = openLogFile(cfg.FileLocation)
	default:
		output = io.Discard
	}

	appLogger.SetOutput(output)
	appLogger.SetLevel(cfg.Level)

	if cfg.Structured {
		appLogger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:   "2006-01-02 15:04:05",
			DisableTimestamp:  false,
			DisableHTMLEscape: false,
			PrettyPrint:       false,
		})
	} else {
		// colors only make sense on an interactive console
		interactive := cfg.EnableConsole && !cfg.EnableFile && term.IsTerminal(int(os.Stderr.Fd()))
		appLogger.SetFormatter(&prefixed.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     interactive,
			DisableColors:   !interactive,
			ForceFormatting: true,
		})
	}

	return &LogrusLogger{
		Config: cfg,
		Logger: appLogger,
		Output: output,
	}
}

func openLogFile(location string) io.Writer {
	logFile, err := os.OpenFile(location, os.O_WRONLY|os.O_CREATE|os.O_APPEND, defaultLogFilePermissions)
	if err != nil {
		panic(fmt.Errorf("unable to setup log file: %w", err))
	}
	return logFile
}

// LevelFromVerbosity maps the count of -v flags onto a log level, starting from errors only.
func LevelFromVerbosity(verbosity int) logrus.Level {
	switch {
	case verbosity <= 0:
		return logrus.ErrorLevel
	case verbosity == 1:
		return logrus.InfoLevel
	case verbosity == 2:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

func (l *LogrusLogger) Tracef(format string, args ...interface{}) {
	l.Logger.Tracef(format, args...)
}

func (l *LogrusLogger) Debugf(format string, args ...interface{}) {
	l.Logger.Debugf(format, args...)
}

func (l *LogrusLogger) Infof(format string, args ...interface{}) {
	l.Logger.Infof(format, args...)
}

func (l *LogrusLogger) Warnf(format string, args ...interface{}) {
	l.Logger.Warnf(format, args...)
}

func (l *LogrusLogger) Errorf(format string, args ...interface{}) {
	l.Logger.Errorf(format, args...)
}

func (l *LogrusLogger) Trace(args ...interface{}) {
	l.Logger.Trace(args...)
}

func (l *LogrusLogger) Debug(args ...interface{}) {
	l.Logger.Debug(args...)
}

func (l *LogrusLogger) Info(args ...interface{}) {
	l.Logger.Info(args...)
}

func (l *LogrusLogger) Warn(args ...interface{}) {
	l.Logger.Warn(args...)
}

func (l *LogrusLogger) Error(args ...interface{}) {
	l.Logger.Error(args...)
}
