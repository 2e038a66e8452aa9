// Package logging builds the zerolog logger shared by the game and routes
// raylib's own trace output into it.
package logging

import (
	"io"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level. Unknown names
// fall back to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup sets the global level and returns a logger writing colored console
// lines to console and, when file is non-nil, plain lines to file.
func Setup(level string, console io.Writer, file io.Writer) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
		},
	}
	if file != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        file,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
}

// RaylibLevel maps a raylib trace log level to a zerolog level.
func RaylibLevel(level int) zerolog.Level {
	switch {
	case level >= int(rl.LogFatal):
		return zerolog.FatalLevel
	case level >= int(rl.LogError):
		return zerolog.ErrorLevel
	case level >= int(rl.LogWarning):
		return zerolog.WarnLevel
	case level >= int(rl.LogInfo):
		return zerolog.InfoLevel
	case level >= int(rl.LogDebug):
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// RouteRaylib sends raylib's trace log through logger. Fatal raylib
// messages are logged at error level so they do not exit the process.
func RouteRaylib(logger zerolog.Logger) {
	l := logger.With().Str("component", "raylib").Logger()
	rl.SetTraceLogCallback(func(level int, text string) {
		lvl := RaylibLevel(level)
		if lvl == zerolog.FatalLevel {
			lvl = zerolog.ErrorLevel
		}
		l.WithLevel(lvl).Msg(text)
	})
}
