// internal/router/help.go
package router

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// WriteHelp prints usage, the option list and both keyword tables.
func WriteHelp(w io.Writer, program string, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "usage: %s [options] < input\n\n", program)
	fmt.Fprintln(w, "Copies each line of standard input to every destination given, in order.")
	fmt.Fprintln(w, "A destination that fails a write is dropped; the others keep receiving input.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	writeTable(w, "Priorities", Priorities)
	fmt.Fprintln(w)
	writeTable(w, "Facilities", Facilities)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Priorities above LOG_ERR and facilities other than LOG_USER require root.")
}

func writeTable(w io.Writer, title string, table []Entry) {
	fmt.Fprintf(w, "%s (number, keyword or LOG_ name):\n", title)
	for _, e := range table {
		fmt.Fprintf(w, "  %4d  %-10s %s\n", e.Code, e.Short, e.Long)
	}
}
