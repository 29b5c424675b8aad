package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// zeroLogger adapts a zerolog.Logger to rtree.Logger.
type zeroLogger struct {
	l zerolog.Logger
}

func newZeroLogger(w io.Writer, level string, pretty bool) (zeroLogger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zeroLogger{}, err
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zeroLogger{l: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}, nil
}

func (z zeroLogger) Debug(msg string, args ...any) { z.l.Debug().Fields(args).Msg(msg) }

func (z zeroLogger) Info(msg string, args ...any) { z.l.Info().Fields(args).Msg(msg) }

func (z zeroLogger) Warn(msg string, args ...any) { z.l.Warn().Fields(args).Msg(msg) }

func (z zeroLogger) Error(msg string, args ...any) { z.l.Error().Fields(args).Msg(msg) }
