// internal/metrics/metrics.go
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Collectors are process-wide. Each binary runs once per process, so they
// start at zero; tests that share a process compare deltas, not totals.
var (
	filesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cleanscript_files_total",
		Help: "Files processed by cleanscript, by result code",
	}, []string{"code"})
	recordsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cleanscript_records_total",
		Help: "Records written by cleanscript",
	})
	tooLongTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cleanscript_lines_too_long_total",
		Help: "Records replaced by the line-too-long diagnostic",
	})
	regrowsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cleanscript_buffer_regrows_total",
		Help: "Buffer growths followed by a reread",
	})

	linesRouted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ir_lines_total",
		Help: "Input lines read by ir",
	})
	destinationWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ir_destination_writes_total",
		Help: "Successful writes per destination",
	}, []string{"destination"})
	destinationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ir_destination_failures_total",
		Help: "Destinations disabled after a failed write",
	}, []string{"destination"})
	syslogRecords = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ir_syslog_records_total",
		Help: "Records sent to syslog, by outcome",
	}, []string{"outcome"})
)

// Register registers all collectors. Call once per registry at startup.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(
		filesTotal, recordsTotal, tooLongTotal, regrowsTotal,
		linesRouted, destinationWrites, destinationFailures, syslogRecords,
	)
}

// IncFile counts a processed file under its result code.
func IncFile(code int) { filesTotal.WithLabelValues(fmt.Sprint(code)).Inc() }

// AddRecords adds written records.
func AddRecords(n int) { recordsTotal.Add(float64(n)) }

// IncTooLong counts one diagnostic replacement.
func IncTooLong() { tooLongTotal.Inc() }

// IncRegrow counts one buffer growth.
func IncRegrow() { regrowsTotal.Inc() }

// IncLine counts one routed input line.
func IncLine() { linesRouted.Inc() }

// IncDestinationWrite counts a successful write to the named destination.
func IncDestinationWrite(name string) { destinationWrites.WithLabelValues(name).Inc() }

// IncDestinationFailure counts a destination being disabled.
func IncDestinationFailure(name string) { destinationFailures.WithLabelValues(name).Inc() }

// IncSyslog counts a syslog record; ok reports whether the write succeeded.
func IncSyslog(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	syslogRecords.WithLabelValues(outcome).Inc()
}

// WriteTextfile writes the registry in text exposition format for the
// node_exporter textfile collector. An empty path is a no-op.
func WriteTextfile(path string, registry *prometheus.Registry) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
