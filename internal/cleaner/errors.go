// internal/cleaner/errors.go
package cleaner

import (
	"errors"
	"fmt"
)

// Per-file result codes. The process exits with the highest code seen.
const (
	CodeOK    = 0
	CodeOpen  = 3 // input, temporary output, or final replace failed
	CodeAlloc = 4 // line buffer could not be allocated
	CodeRead  = 5 // read failed mid-file; also used for write failures
)

// FileError reports why a file was left unmodified.
type FileError struct {
	Path string
	Op   string
	Code int
	Err  error
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ExitCode maps an error from CleanFile or Sanitize to a result code.
func ExitCode(err error) int {
	if err == nil {
		return CodeOK
	}
	var fe *FileError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return CodeRead
}
