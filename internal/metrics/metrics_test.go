// internal/metrics/metrics_test.go
package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(destinationFailures.WithLabelValues("file:/tmp/x"))
	IncDestinationFailure("file:/tmp/x")
	require.Equal(t, before+1, testutil.ToFloat64(destinationFailures.WithLabelValues("file:/tmp/x")))

	before = testutil.ToFloat64(recordsTotal)
	AddRecords(3)
	require.Equal(t, before+3, testutil.ToFloat64(recordsTotal))

	before = testutil.ToFloat64(syslogRecords.WithLabelValues("error"))
	IncSyslog(false)
	require.Equal(t, before+1, testutil.ToFloat64(syslogRecords.WithLabelValues("error")))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg)
	IncLine()
	IncFile(0)

	path := filepath.Join(t.TempDir(), "scripttools.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "ir_lines_total"))
	require.True(t, strings.Contains(string(data), `cleanscript_files_total{code="0"}`))
}

func TestWriteTextfile_EmptyPath(t *testing.T) {
	require.NoError(t, WriteTextfile("", prometheus.NewRegistry()))
}
