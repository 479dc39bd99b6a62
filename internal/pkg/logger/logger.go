// Package logger adapts zerolog to the ports.Logger interface.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ZeroLogger routes structured logs to stderr. Unless verbose is set every
// level is discarded, keeping command output clean for capture and piping.
type ZeroLogger struct {
	log zerolog.Logger
}

// New creates a ZeroLogger. verbose enables debug-level output.
func New(verbose bool) *ZeroLogger {
	if !verbose {
		return &ZeroLogger{log: zerolog.Nop()}
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return &ZeroLogger{
		log: zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
}

func (l *ZeroLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.Error().Err(err).Fields(fields).Msg(msg)
}
