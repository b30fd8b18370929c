// internal/router/destination.go
package router

import (
	"io"
	"log/slog"
	"os"

	"github.com/colebrumley/scripttools/internal/logging"
)

// Env supplies the process handles and device paths destinations open.
// Stdout and Stderr are never closed by a destination; they stay usable
// for diagnostics until the process exits.
type Env struct {
	Stdout      io.Writer
	Stderr      io.Writer
	ConsolePath string
	TTYPath     string
}

// Destination is one open output. A destination that fails a write is
// disabled for the rest of the run.
type Destination struct {
	name string
	w    io.WriteCloser
	live bool
}

// NewDestination wraps an already open writer.
func NewDestination(name string, w io.WriteCloser) *Destination {
	return &Destination{name: name, w: w, live: true}
}

func (d *Destination) Name() string { return d.name }

// Live reports whether the destination still receives lines.
func (d *Destination) Live() bool { return d.live }

func (d *Destination) write(p []byte) error {
	_, err := d.w.Write(p)
	return err
}

// Close releases the handle. Disabled destinations are closed too.
func (d *Destination) Close() error {
	return d.w.Close()
}

// OpenDestinations opens targets in order. A target that can't be opened
// is reported and left out; the rest still open.
func OpenDestinations(targets []Target, env Env, logger *slog.Logger) []*Destination {
	dests := make([]*Destination, 0, len(targets))
	for _, t := range targets {
		w, err := openTarget(t, env)
		if err != nil {
			logging.WithDestination(logger, t.Name()).Error("cannot open destination", "error", err)
			continue
		}
		dests = append(dests, NewDestination(t.Name(), w))
	}
	return dests
}

func openTarget(t Target, env Env) (io.WriteCloser, error) {
	switch t.Kind {
	case KindStdout:
		return processStream{env.Stdout}, nil
	case KindStderr:
		return processStream{env.Stderr}, nil
	case KindFile:
		return os.OpenFile(t.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	case KindAppend:
		return os.OpenFile(t.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	case KindConsole:
		return os.OpenFile(env.ConsolePath, os.O_WRONLY, 0)
	case KindTTY:
		return os.OpenFile(env.TTYPath, os.O_WRONLY, 0)
	default:
		return nil, &UsageError{Msg: "unknown destination " + t.Name()}
	}
}

// processStream is a destination over a stream the process doesn't own.
type processStream struct {
	io.Writer
}

func (processStream) Close() error { return nil }
