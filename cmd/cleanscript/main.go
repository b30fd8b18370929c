// cmd/cleanscript/main.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/colebrumley/scripttools/internal/cleaner"
	"github.com/colebrumley/scripttools/internal/config"
	"github.com/colebrumley/scripttools/internal/logging"
	"github.com/colebrumley/scripttools/internal/metrics"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const programName = "cleanscript"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes cleanscript and returns the exit status: 1 for a usage
// error, otherwise the highest per-file result code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return 1
	}

	logOut, logCloser, err := logging.Output(cfg.Logging, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return 1
	}
	defer logCloser.Close()
	logger := logging.WithRun(logging.NewLogger(cfg.Logging.Format, cfg.Logging.Level, logOut), programName)

	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	status := cleaner.CodeOK
	var maxLine int
	cmd := &cobra.Command{
		Use:           programName + " [-l lengthlimit] inputfile...",
		Short:         "Strip backspace sequences and trailing carriage returns from files in place",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxLine <= 0 {
				return fmt.Errorf("invalid line length %d", maxLine)
			}
			status = cleanFiles(args, maxLine, logger)
			return nil
		},
	}
	cmd.Flags().IntVarP(&maxLine, "length", "l", cfg.CleanScript.MaxLineLength, "maximum line `length`")
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		fmt.Fprintf(stderr, "usage: %s\n", cmd.Use)
		return 1
	}

	if err := metrics.WriteTextfile(cfg.Metrics.Textfile, registry); err != nil {
		logger.Warn("metrics export failed", "error", err)
	}
	return status
}

// cleanFiles processes paths in order. A failed file is reported and left
// alone; the rest are still processed.
func cleanFiles(paths []string, maxLine int, logger *slog.Logger) int {
	worst := cleaner.CodeOK
	for _, path := range paths {
		flog := logging.WithFile(logger, path)
		stats, err := cleaner.CleanFile(path, cleaner.Options{
			MaxLine: maxLine,
			Name:    programName,
			Logger:  flog,
		})

		code := cleaner.ExitCode(err)
		metrics.IncFile(code)
		if err != nil {
			flog.Error("file left unmodified", "code", code, "error", err)
		} else {
			flog.Info("cleaned",
				"records", stats.Records,
				"too_long", stats.TooLong,
				"split", stats.Split,
				"in", humanize.Bytes(uint64(stats.BytesIn)),
				"out", humanize.Bytes(uint64(stats.BytesOut)))
		}
		worst = max(worst, code)
	}
	return worst
}
