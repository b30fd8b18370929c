// internal/router/router.go
package router

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/colebrumley/scripttools/internal/lineio"
	"github.com/colebrumley/scripttools/internal/logging"
	"github.com/colebrumley/scripttools/internal/metrics"
)

// DefaultInputBuffer bounds a single read from the input. Longer lines
// are delivered in pieces.
const DefaultInputBuffer = 4096

// Config holds router settings.
type Config struct {
	InputBuffer int
	Logger      *slog.Logger
}

// Router copies each input line to syslog and every live destination.
type Router struct {
	dests        []*Destination
	syslog       Syslog
	logger       *slog.Logger
	bufSize      int
	syslogFailed bool
}

// New creates a router. sl may be nil.
func New(dests []*Destination, sl Syslog, cfg Config) *Router {
	if cfg.InputBuffer <= 1 {
		cfg.InputBuffer = DefaultInputBuffer
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	return &Router{
		dests:   dests,
		syslog:  sl,
		logger:  cfg.Logger,
		bufSize: cfg.InputBuffer,
	}
}

// Destinations returns the destinations in delivery order.
func (r *Router) Destinations() []*Destination {
	return r.dests
}

// Route delivers one line: syslog first, then each live destination in
// order. A failed destination write is reported and that destination is
// skipped from then on. Route never fails.
func (r *Router) Route(line []byte) {
	metrics.IncLine()

	if r.syslog != nil {
		err := r.syslog.Log(line)
		metrics.IncSyslog(err == nil)
		if err != nil && !r.syslogFailed {
			r.syslogFailed = true
			r.logger.Error("syslog write failed", "error", err)
		}
	}

	for _, d := range r.dests {
		if !d.live {
			continue
		}
		if err := d.write(line); err != nil {
			d.live = false
			metrics.IncDestinationFailure(d.name)
			logging.WithDestination(r.logger, d.name).Error("write failed, destination disabled", "error", err)
			continue
		}
		metrics.IncDestinationWrite(d.name)
	}
}

// Run routes lines from in until end of input. Only a read error is
// returned; destination failures never stop the run.
func (r *Router) Run(in io.Reader) error {
	lr := lineio.NewReader(in)
	buf := make([]byte, r.bufSize)
	for {
		n, _, err := lr.Read(buf)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		r.Route(buf[:n])
	}
}

// Close closes every destination in order, then the syslog channel.
func (r *Router) Close() error {
	var errs []error
	for _, d := range r.dests {
		if err := d.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", d.name, err))
		}
	}
	if r.syslog != nil {
		if err := r.syslog.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing syslog: %w", err))
		}
	}
	return errors.Join(errs...)
}
