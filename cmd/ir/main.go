// cmd/ir/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/colebrumley/scripttools/internal/config"
	"github.com/colebrumley/scripttools/internal/logging"
	"github.com/colebrumley/scripttools/internal/metrics"
	"github.com/colebrumley/scripttools/internal/router"
	"github.com/colebrumley/scripttools/internal/security"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const programName = "ir"

const (
	exitOK     = 0
	exitUsage  = 1 // also -h and an input read failure
	exitConfig = 2 // bad value or missing privilege
)

// openSyslog is replaced in tests.
var openSyslog = router.OpenSyslog

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func main() {
	// A closed stdout or stderr must fail that destination, not kill us.
	signal.Ignore(syscall.SIGPIPE)
	os.Exit(run(os.Args[1:], streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}, security.IsPrivileged))
}

func run(args []string, s streams, privileged func() bool) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(s.err, "%s: %v\n", programName, err)
		return exitConfig
	}

	logOut, logCloser, err := logging.Output(cfg.Logging, s.err)
	if err != nil {
		fmt.Fprintf(s.err, "%s: %v\n", programName, err)
		return exitConfig
	}
	defer logCloser.Close()
	logger := logging.WithRun(logging.NewLogger(cfg.Logging.Format, cfg.Logging.Level, logOut), programName)

	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	status := exitOK
	cmd := &cobra.Command{
		Use:   programName + " [-h] [-o] [-e] [-l] [-c] [-y] [-p] [-f file] [-a file] [-t tag] [-P priority] [-F facility]",
		Short: "Copy standard input to several destinations",
		Args:  cobra.ArbitraryArgs,
		// Options are parsed in order by router.ParseOptions.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := router.ParseOptions(cmd.Flags(), args, privileged)
			if err != nil {
				return err
			}
			if opts.Help {
				router.WriteHelp(s.out, programName, cmd.Flags())
				status = exitUsage
				return nil
			}
			status = route(opts, cfg, s, logger)
			return nil
		},
	}
	router.DefineFlags(cmd.Flags())
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(s.out)
	cmd.SetErr(s.err)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(s.err, "%s: %v\n", programName, err)
		var cfgErr *router.ConfigError
		var authErr *router.AuthorizationError
		if errors.As(err, &cfgErr) || errors.As(err, &authErr) {
			return exitConfig
		}
		fmt.Fprintf(s.err, "usage: %s\n", cmd.Use)
		return exitUsage
	}

	if err := metrics.WriteTextfile(cfg.Metrics.Textfile, registry); err != nil {
		logger.Warn("metrics export failed", "error", err)
	}
	return status
}

// route opens what it can, copies s.in through, then closes everything.
func route(opts *router.Options, cfg *config.Global, s streams, logger *slog.Logger) int {
	dests := router.OpenDestinations(opts.Targets, router.Env{
		Stdout:      s.out,
		Stderr:      s.err,
		ConsolePath: cfg.Router.ConsoleDevice,
		TTYPath:     cfg.Router.TTYDevice,
	}, logger)

	var sl router.Syslog
	if opts.Syslog != nil {
		ch, err := openSyslog(*opts.Syslog, cfg.Router.ConsoleDevice)
		if err != nil {
			logger.Error("syslog unavailable", "error", err)
		} else {
			sl = ch
		}
	}

	r := router.New(dests, sl, router.Config{
		InputBuffer: cfg.Router.InputBuffer,
		Logger:      logger,
	})
	runErr := r.Run(s.in)
	if runErr != nil {
		logger.Error("input failed", "error", runErr)
	}

	if err := r.Close(); err != nil {
		logger.Debug("closing destinations", "error", err)
	}
	if runErr != nil {
		return exitUsage
	}
	return exitOK
}
