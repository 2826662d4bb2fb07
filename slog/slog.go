// Package slog registers logging options on a getopt.Set and configures the
// default log/slog logger from the parsed result.
package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/isobit/getopt"
)

type SlogOptions struct {
	LogLevel slog.Level
	LogJSON  bool
}

// Register adds "--log-level <level>" and "--log-json" to set.
func Register(set *getopt.Set) *getopt.Set {
	return set.
		LongValue("log-level ", getopt.NewValue(slog.LevelInfo).Name("level"), "minimum level of log messages").
		Long("log-json", "write log messages as JSON")
}

// FromRegistry reads the options added by Register from a parsed registry.
func FromRegistry(r *getopt.Registry) (SlogOptions, error) {
	opts := SlogOptions{}
	level, err := r.LookupLong("log-level ")
	if err != nil {
		return opts, err
	}
	opts.LogLevel, err = getopt.Get[slog.Level](level)
	if err != nil {
		return opts, err
	}
	json, err := r.LookupLong("log-json")
	if err != nil {
		return opts, err
	}
	opts.LogJSON = json.Used()
	return opts, nil
}

func (opts *SlogOptions) Handler(w io.Writer, handlerOpts *slog.HandlerOptions) slog.Handler {
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{}
	}
	handlerOpts.Level = opts.LogLevel

	if opts.LogJSON {
		return slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.NewTextHandler(w, handlerOpts)
}

func (opts *SlogOptions) ConfigureWithHandlerOptions(w io.Writer, handlerOpts *slog.HandlerOptions) {
	slog.SetDefault(slog.New(opts.Handler(w, handlerOpts)))
}

func (opts *SlogOptions) Configure() {
	opts.ConfigureWithHandlerOptions(os.Stderr, nil)
}
