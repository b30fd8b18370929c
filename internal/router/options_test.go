// internal/router/options_test.go
package router

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("ir", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	DefineFlags(fs)
	return fs
}

func unprivileged() bool { return false }
func privileged() bool   { return true }

func parse(t *testing.T, priv func() bool, args ...string) (*Options, error) {
	t.Helper()
	return ParseOptions(newFlagSet(), args, priv)
}

func TestParseOptions_TargetsKeepOrder(t *testing.T) {
	opts, err := parse(t, unprivileged, "-e", "-f", "/tmp/a", "-o", "-a", "/tmp/b", "-y", "-c", "-f", "/tmp/c")
	require.NoError(t, err)

	assert.Equal(t, []Target{
		{Kind: KindStderr},
		{Kind: KindFile, Path: "/tmp/a"},
		{Kind: KindStdout},
		{Kind: KindAppend, Path: "/tmp/b"},
		{Kind: KindTTY},
		{Kind: KindConsole},
		{Kind: KindFile, Path: "/tmp/c"},
	}, opts.Targets)
	assert.Nil(t, opts.Syslog)
}

func TestParseOptions_RepeatedStdout(t *testing.T) {
	opts, err := parse(t, unprivileged, "-o", "--stdout", "-o")
	require.NoError(t, err)
	assert.Len(t, opts.Targets, 3)
}

func TestParseOptions_NoOptions(t *testing.T) {
	opts, err := parse(t, unprivileged)
	require.NoError(t, err)
	assert.Empty(t, opts.Targets)
	assert.Nil(t, opts.Syslog)
	assert.False(t, opts.Help)
}

func TestParseOptions_SyslogDefaults(t *testing.T) {
	opts, err := parse(t, unprivileged, "-l")
	require.NoError(t, err)
	require.NotNil(t, opts.Syslog)

	assert.Equal(t, LogInfo, opts.Syslog.Priority)
	assert.Equal(t, LogUser, opts.Syslog.Facility)
	assert.Equal(t, FlagConsole|FlagNoWait, opts.Syslog.Flags)
	assert.Empty(t, opts.Syslog.Tag)
}

func TestParseOptions_SyslogImpliedBy(t *testing.T) {
	for _, args := range [][]string{
		{"-t", "backup"},
		{"-P", "WARNING"},
		{"-F", "USER"},
		{"-p"},
	} {
		opts, err := parse(t, unprivileged, args...)
		require.NoError(t, err, "%v", args)
		assert.NotNil(t, opts.Syslog, "%v should enable syslog", args)
	}
}

func TestParseOptions_SyslogSettings(t *testing.T) {
	opts, err := parse(t, unprivileged, "-t", "nightly", "-P", "LOG_NOTICE", "-p", "-o")
	require.NoError(t, err)
	require.NotNil(t, opts.Syslog)

	assert.Equal(t, "nightly", opts.Syslog.Tag)
	assert.Equal(t, LogNotice, opts.Syslog.Priority)
	assert.Equal(t, FlagConsole|FlagNoWait|FlagPID, opts.Syslog.Flags)
	assert.Equal(t, []Target{{Kind: KindStdout}}, opts.Targets)
}

func TestParseOptions_InvalidPriority(t *testing.T) {
	_, err := parse(t, privileged, "-P", "LOUD")

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "priority", cfgErr.Option)
	assert.Equal(t, "invalid priority: LOUD", err.Error())
}

func TestParseOptions_InvalidFacility(t *testing.T) {
	_, err := parse(t, privileged, "-F", "9")

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "facility", cfgErr.Option)
}

func TestParseOptions_PrivilegedPriority(t *testing.T) {
	for _, value := range []string{"0", "ALERT", "LOG_CRIT"} {
		_, err := parse(t, unprivileged, "-P", value)
		var authErr *AuthorizationError
		require.ErrorAs(t, err, &authErr, value)

		opts, err := parse(t, privileged, "-P", value)
		require.NoError(t, err, value)
		assert.Less(t, opts.Syslog.Priority, LogErr)
	}
}

func TestParseOptions_ErrorPriorityNeedsNoPrivilege(t *testing.T) {
	opts, err := parse(t, unprivileged, "-P", "ERROR")
	require.NoError(t, err)
	assert.Equal(t, LogErr, opts.Syslog.Priority)
}

func TestParseOptions_PrivilegedFacility(t *testing.T) {
	_, err := parse(t, unprivileged, "-F", "LOCAL0")
	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "must be root to use facility code LOCAL0", err.Error())

	opts, err := parse(t, privileged, "-F", "LOCAL0")
	require.NoError(t, err)
	assert.Equal(t, LogLocal0, opts.Syslog.Facility)
}

func TestParseOptions_PrivilegeCheckedLazily(t *testing.T) {
	calls := 0
	priv := func() bool { calls++; return false }

	_, err := parse(t, priv, "-o", "-P", "INFO", "-F", "8")
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestParseOptions_FirstBadOptionWins(t *testing.T) {
	_, err := parse(t, unprivileged, "-P", "ALERT", "-F", "bogus")
	var authErr *AuthorizationError
	assert.ErrorAs(t, err, &authErr)

	_, err = parse(t, unprivileged, "-F", "bogus", "-P", "ALERT")
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestParseOptions_Help(t *testing.T) {
	opts, err := parse(t, unprivileged, "-o", "-h", "-P", "bogus", "stray")
	require.NoError(t, err)
	assert.True(t, opts.Help)
}

func TestParseOptions_BadOptionBeforeHelp(t *testing.T) {
	_, err := parse(t, unprivileged, "-P", "bogus", "-h")
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestParseOptions_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown short option", []string{"-x"}},
		{"unknown long option", []string{"--verbose"}},
		{"stray argument", []string{"-o", "extra"}},
		{"missing value", []string{"-f"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, unprivileged, tt.args...)
			var usageErr *UsageError
			assert.ErrorAs(t, err, &usageErr)
		})
	}
}

func TestWriteHelp(t *testing.T) {
	var buf bytes.Buffer
	WriteHelp(&buf, "ir", newFlagSet())
	out := buf.String()

	assert.Contains(t, out, "usage: ir")
	assert.Contains(t, out, "--priority")
	assert.Contains(t, out, "LOG_EMERG")
	assert.Contains(t, out, "LOG_LOCAL7")
}
