// internal/router/syslog.go
package router

import (
	"fmt"
	"os"
	"time"

	"github.com/RackSec/srslog"
)

// Syslog is the system log channel. Messages are sent as given; they are
// never used as a format string.
type Syslog interface {
	Log(msg []byte) error
	Close() error
}

type syslogChannel struct {
	w        *srslog.Writer
	priority srslog.Priority
	console  string // failed records are copied here when set
}

// OpenSyslog connects to the local syslog daemon. The connection is made
// immediately, so FlagNoWait needs no further handling.
func OpenSyslog(cfg SyslogConfig, consolePath string) (Syslog, error) {
	p := srslog.Priority(cfg.Facility | cfg.Priority)
	w, err := srslog.Dial("", "", p, cfg.Tag)
	if err != nil {
		return nil, fmt.Errorf("connecting to syslog: %w", err)
	}
	w.SetFormatter(Formatter(cfg.Flags&FlagPID != 0))

	ch := &syslogChannel{w: w, priority: p}
	if cfg.Flags&FlagConsole != 0 {
		ch.console = consolePath
	}
	return ch, nil
}

func (c *syslogChannel) Log(msg []byte) error {
	_, err := c.w.WriteWithPriority(c.priority, msg)
	if err != nil && c.console != "" {
		copyToConsole(c.console, msg)
	}
	return err
}

func (c *syslogChannel) Close() error {
	return c.w.Close()
}

func copyToConsole(path string, msg []byte) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(msg)
}

// Formatter builds a local syslog record. The process ID is appended to
// the tag only when withPID is set.
func Formatter(withPID bool) srslog.Formatter {
	return func(p srslog.Priority, hostname, tag, content string) string {
		if withPID {
			tag = fmt.Sprintf("%s[%d]", tag, os.Getpid())
		}
		return fmt.Sprintf("<%d>%s %s: %s", p, time.Now().Format(time.Stamp), tag, content)
	}
}
