// internal/router/tables.go
package router

import "strconv"

// Entry maps a syslog code to its two accepted keywords.
type Entry struct {
	Code  int
	Short string
	Long  string
}

// Syslog severities.
const (
	LogEmerg = iota
	LogAlert
	LogCrit
	LogErr
	LogWarning
	LogNotice
	LogInfo
	LogDebug
)

// Syslog facilities, already shifted into the priority's upper bits.
const (
	LogKern   = 0 << 3
	LogUser   = 1 << 3
	LogMail   = 2 << 3
	LogDaemon = 3 << 3
	LogAuth   = 4 << 3
	LogLPR    = 6 << 3
	LogNews   = 7 << 3
	LogUUCP   = 8 << 3
	LogLocal0 = 16 << 3
	LogLocal1 = 17 << 3
	LogLocal2 = 18 << 3
	LogLocal3 = 19 << 3
	LogLocal4 = 20 << 3
	LogLocal5 = 21 << 3
	LogLocal6 = 22 << 3
	LogLocal7 = 23 << 3
)

// Priorities lists accepted -P values, most severe first.
var Priorities = []Entry{
	{LogEmerg, "EMERGENCY", "LOG_EMERG"},
	{LogAlert, "ALERT", "LOG_ALERT"},
	{LogCrit, "CRITICAL", "LOG_CRIT"},
	{LogErr, "ERROR", "LOG_ERR"},
	{LogWarning, "WARNING", "LOG_WARNING"},
	{LogNotice, "NOTICE", "LOG_NOTICE"},
	{LogInfo, "INFO", "LOG_INFO"},
	{LogDebug, "DEBUG", "LOG_DEBUG"},
}

// Facilities lists accepted -F values.
var Facilities = []Entry{
	{LogKern, "KERNEL", "LOG_KERN"},
	{LogUser, "USER", "LOG_USER"},
	{LogMail, "MAIL", "LOG_MAIL"},
	{LogDaemon, "DAEMON", "LOG_DAEMON"},
	{LogAuth, "AUTH", "LOG_AUTH"},
	{LogLPR, "LPR", "LOG_LPR"},
	{LogNews, "NEWS", "LOG_NEWS"},
	{LogUUCP, "UUCP", "LOG_UUCP"},
	{LogLocal0, "LOCAL0", "LOG_LOCAL0"},
	{LogLocal1, "LOCAL1", "LOG_LOCAL1"},
	{LogLocal2, "LOCAL2", "LOG_LOCAL2"},
	{LogLocal3, "LOCAL3", "LOG_LOCAL3"},
	{LogLocal4, "LOCAL4", "LOG_LOCAL4"},
	{LogLocal5, "LOCAL5", "LOG_LOCAL5"},
	{LogLocal6, "LOCAL6", "LOG_LOCAL6"},
	{LogLocal7, "LOCAL7", "LOG_LOCAL7"},
}

// Lookup resolves value against table in order. For each entry a numeric
// match is tried first, then the short keyword, then the long one.
// Keywords are case-sensitive.
func Lookup(table []Entry, value string) (int, bool) {
	num, err := strconv.Atoi(value)
	numeric := err == nil && value != "" && value[0] >= '0' && value[0] <= '9'

	for _, e := range table {
		if numeric && num == e.Code {
			return e.Code, true
		}
		if value == e.Short || value == e.Long {
			return e.Code, true
		}
	}
	return 0, false
}
