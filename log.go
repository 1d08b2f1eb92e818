package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

//
// Developer tracing.  Everything the program itself prints goes
// through fmt; this logger is for watching the interpreter work and
// writes to stderr so it never mixes with program output
//

func init() {

	g.log = zerolog.Nop()
}

func setupLogger(w io.Writer, debug bool) zerolog.Logger {

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    !g.color,
	}

	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
