package main

import (
	"flag"
	"io"
	"log/slog"
)

// verbosity holds the -v, -vv and -q flags shared by every command.
type verbosity struct {
	verbose, veryVerbose, quiet bool
}

func (v *verbosity) register(fs *flag.FlagSet) {
	fs.BoolVar(&v.verbose, "v", false, "log route selection and playback (info)")
	fs.BoolVar(&v.veryVerbose, "vv", false, "log everything (debug)")
	fs.BoolVar(&v.quiet, "q", false, "log errors only")
}

// levelFromFlags picks the log level: -q wins, then -vv, then -v;
// without any of them the fallback applies.
func levelFromFlags(verbose, veryVerbose, quiet bool, fallback slog.Level) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case veryVerbose:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	default:
		return fallback
	}
}

func (v verbosity) logger(w io.Writer, fallback slog.Level) *slog.Logger {
	level := levelFromFlags(v.verbose, v.veryVerbose, v.quiet, fallback)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
