// Package logging wraps a single package-level zerolog.Logger so that the
// rest of the module can log with logging.Debug()/logging.Fatal() the way
// the teacher CLI chains logging.Fatal().Msgf(...) off a shared logger.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-level logger. Replace it (e.g. in tests, or to
// change the output sink) by assigning a new value.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).
	With().Timestamp().Logger().Level(zerolog.InfoLevel)

// SetLevel parses a level name (trace, debug, info, warn, error, fatal)
// and applies it to Logger, leaving the level unchanged on an unknown name.
func SetLevel(name string) {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return
	}
	Logger = Logger.Level(lvl)
}

func Trace() *zerolog.Event { return Logger.Trace() }
func Debug() *zerolog.Event { return Logger.Debug() }
func Info() *zerolog.Event  { return Logger.Info() }
func Warn() *zerolog.Event  { return Logger.Warn() }
func Error() *zerolog.Event { return Logger.Error() }
func Fatal() *zerolog.Event { return Logger.Fatal() }
