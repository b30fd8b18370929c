// internal/router/options.go
package router

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// errHelp stops parsing once -h is seen; later options are not examined.
var errHelp = errors.New("help requested")

// Kind identifies what sort of sink a destination writes to.
type Kind int

const (
	KindStdout Kind = iota
	KindStderr
	KindFile   // truncate on open
	KindAppend // append on open
	KindConsole
	KindTTY
)

// Target is a destination as requested on the command line.
type Target struct {
	Kind Kind
	Path string // KindFile and KindAppend only
}

// Name identifies the target in diagnostics and metrics.
func (t Target) Name() string {
	switch t.Kind {
	case KindStdout:
		return "stdout"
	case KindStderr:
		return "stderr"
	case KindFile:
		return "file:" + t.Path
	case KindAppend:
		return "append:" + t.Path
	case KindConsole:
		return "console"
	case KindTTY:
		return "tty"
	default:
		return fmt.Sprintf("kind(%d)", int(t.Kind))
	}
}

// Flag holds syslog channel options.
type Flag int

const (
	FlagConsole Flag = 1 << iota // copy to the console when syslog fails
	FlagNoWait
	FlagPID // include the process ID in each record
)

// SyslogConfig describes the syslog channel for a run.
type SyslogConfig struct {
	Tag      string
	Priority int
	Facility int
	Flags    Flag
}

// DefaultSyslogConfig is the channel used when only -l is given.
func DefaultSyslogConfig() SyslogConfig {
	return SyslogConfig{
		Priority: LogInfo,
		Facility: LogUser,
		Flags:    FlagConsole | FlagNoWait,
	}
}

// Options is a fully resolved command line.
type Options struct {
	Targets []Target
	Syslog  *SyslogConfig // nil when no syslog option was given
	Help    bool
}

// DefineFlags registers the router's options on fs.
func DefineFlags(fs *pflag.FlagSet) {
	fs.BoolP("help", "h", false, "print this help and exit")
	fs.BoolP("stdout", "o", false, "copy input to standard output")
	fs.BoolP("stderr", "e", false, "copy input to standard error")
	fs.BoolP("syslog", "l", false, "copy input to the system log")
	fs.BoolP("console", "c", false, "copy input to the console device")
	fs.BoolP("tty", "y", false, "copy input to the controlling terminal")
	fs.BoolP("pid", "p", false, "include the process ID in syslog records")
	fs.StringArrayP("file", "f", nil, "copy input to `file`, truncating it first (repeatable)")
	fs.StringArrayP("append", "a", nil, "append input to `file` (repeatable)")
	fs.StringP("tag", "t", "", "syslog message `tag`")
	fs.StringP("priority", "P", "", "syslog message `priority`")
	fs.StringP("facility", "F", "", "syslog message `facility`")
}

// ParseOptions parses args against a flag set prepared by DefineFlags.
// Options are handled in the order given, so destinations keep command-line
// order and the first bad option decides the error; -h ends parsing with
// Options.Help set. privileged gates priorities more severe than LOG_ERR
// and facilities other than LOG_USER. Nothing is opened here.
func ParseOptions(fs *pflag.FlagSet, args []string, privileged func() bool) (*Options, error) {
	opts := &Options{}
	syslogCfg := func() *SyslogConfig {
		if opts.Syslog == nil {
			c := DefaultSyslogConfig()
			opts.Syslog = &c
		}
		return opts.Syslog
	}

	var failure error
	err := fs.ParseAll(args, func(f *pflag.Flag, value string) error {
		if f.Value.Type() == "bool" {
			on, err := strconv.ParseBool(value)
			if err != nil {
				failure = &UsageError{Msg: fmt.Sprintf("invalid value %q for -%s", value, f.Shorthand)}
				return failure
			}
			if !on {
				return nil
			}
		}

		switch f.Name {
		case "help":
			opts.Help = true
			return errHelp
		case "stdout":
			opts.Targets = append(opts.Targets, Target{Kind: KindStdout})
		case "stderr":
			opts.Targets = append(opts.Targets, Target{Kind: KindStderr})
		case "console":
			opts.Targets = append(opts.Targets, Target{Kind: KindConsole})
		case "tty":
			opts.Targets = append(opts.Targets, Target{Kind: KindTTY})
		case "file":
			opts.Targets = append(opts.Targets, Target{Kind: KindFile, Path: value})
		case "append":
			opts.Targets = append(opts.Targets, Target{Kind: KindAppend, Path: value})
		case "syslog":
			syslogCfg()
		case "pid":
			syslogCfg().Flags |= FlagPID
		case "tag":
			syslogCfg().Tag = value
		case "priority":
			code, ok := Lookup(Priorities, value)
			if !ok {
				failure = &ConfigError{Option: "priority", Value: value}
				return failure
			}
			if code < LogErr && !privileged() {
				failure = &AuthorizationError{Option: "priority", Value: value}
				return failure
			}
			syslogCfg().Priority = code
		case "facility":
			code, ok := Lookup(Facilities, value)
			if !ok {
				failure = &ConfigError{Option: "facility", Value: value}
				return failure
			}
			if code != LogUser && !privileged() {
				failure = &AuthorizationError{Option: "facility", Value: value}
				return failure
			}
			syslogCfg().Facility = code
		}
		return nil
	})
	if opts.Help {
		return opts, nil
	}
	if failure != nil {
		return nil, failure
	}
	if err != nil {
		return nil, &UsageError{Msg: err.Error()}
	}

	if fs.NArg() > 0 {
		return nil, &UsageError{Msg: fmt.Sprintf("incorrect parameters: %v", fs.Args())}
	}
	return opts, nil
}
