package main

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// newLogger writes "LEVEL: message" lines. Timestamps and fields only show at debug level.
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:         w,
		NoColor:     true,
		PartsOrder:  []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: formatLevel,
	}
	if level <= zerolog.DebugLevel {
		cw.PartsOrder = append([]string{zerolog.TimestampFieldName}, cw.PartsOrder...)
		return zerolog.New(cw).Level(level).With().Timestamp().Logger()
	}

	cw.FormatPrepare = func(evt map[string]interface{}) error {
		for k := range evt {
			if k != zerolog.LevelFieldName && k != zerolog.MessageFieldName {
				delete(evt, k)
			}
		}
		return nil
	}
	return zerolog.New(cw).Level(level)
}

func formatLevel(i interface{}) string {
	s, ok := i.(string)
	if !ok {
		return ""
	}
	if s == zerolog.WarnLevel.String() {
		return "WARNING:"
	}
	return strings.ToUpper(s) + ":"
}
