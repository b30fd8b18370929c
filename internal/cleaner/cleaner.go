// internal/cleaner/cleaner.go
package cleaner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/colebrumley/scripttools/internal/lineio"
	"github.com/colebrumley/scripttools/internal/metrics"
)

const (
	// InitialBufferSize is the capacity a file's line buffer starts at.
	InitialBufferSize = 512
	// BufferIncrement is how much the buffer grows when a line doesn't fit.
	BufferIncrement = 512
	// HeaderWidth is the column at which an over-long first record is split.
	HeaderWidth = 42
	// DefaultMaxLine is the default maximum line length.
	DefaultMaxLine = 4096

	// maxBufferSize bounds growth so a bogus limit can't ask for an
	// unbounded allocation.
	maxBufferSize = 1 << 30
)

// Options configures a single sanitizing run. It is read-only once built.
type Options struct {
	MaxLine int
	Name    string // program name used in the diagnostic text
	Logger  *slog.Logger
}

// Stats summarizes what happened to one file.
type Stats struct {
	Records  int   // records written, diagnostics excluded
	TooLong  int   // records replaced by the diagnostic
	Regrows  int   // buffer growths followed by a reread
	Split    bool  // first record was split at HeaderWidth
	BytesIn  int64 // bytes consumed from the input
	BytesOut int64 // bytes written to the output
}

type fileState struct {
	first    bool
	skipping bool
}

// Diagnostic returns the line written in place of a record that is too long.
func Diagnostic(name string) string {
	return fmt.Sprintf("<<%s: line too long>>\n", name)
}

// Sanitize copies in to out one record at a time, editing each record and
// replacing records longer than opts.MaxLine with a diagnostic.
func Sanitize(in io.ReadSeeker, out io.Writer, opts Options) (Stats, error) {
	var stats Stats
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	diag := []byte(Diagnostic(opts.Name))

	r := lineio.NewReader(in)
	cw := &countingWriter{w: out}
	w := bufio.NewWriter(cw)

	size := InitialBufferSize
	buf := make([]byte, size)
	st := fileState{first: true}

	for {
		pos := r.Offset()
		n, terminated, err := r.Read(buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, &FileError{Op: "read", Code: CodeRead, Err: err}
		}

		if st.skipping {
			if terminated {
				st.skipping = false
			}
			continue
		}

		if !terminated && n == len(buf) && size < opts.MaxLine {
			size += BufferIncrement
			if size > maxBufferSize {
				return stats, &FileError{Op: "allocate", Code: CodeAlloc,
					Err: fmt.Errorf("buffer of %d bytes exceeds limit", size)}
			}
			buf = make([]byte, size)
			stats.Regrows++
			metrics.IncRegrow()
			logger.Debug("line exceeds buffer, rereading", "offset", pos, "buffer", size)
			if err := r.Seek(pos); err != nil {
				return stats, &FileError{Op: "read", Code: CodeRead, Err: err}
			}
			continue
		}

		if !terminated {
			// Buffer is at the ceiling, or input ended inside the record.
			w.Write(diag)
			stats.TooLong++
			metrics.IncTooLong()
			st.first = false
			st.skipping = true
			continue
		}

		line := buf[:n]
		if st.first {
			st.first = false
			if n-1 > HeaderWidth {
				w.Write(line[:HeaderWidth])
				w.WriteByte(terminator)
				line = line[HeaderWidth:]
				stats.Split = true
			}
		}

		line = EditLine(line)
		if len(line) > opts.MaxLine {
			w.Write(diag)
			stats.TooLong++
			metrics.IncTooLong()
			continue
		}
		w.Write(line)
		stats.Records++
	}

	stats.BytesIn = r.Offset()
	if err := w.Flush(); err != nil {
		return stats, &FileError{Op: "write", Code: CodeRead, Err: err}
	}
	stats.BytesOut = cw.n
	metrics.AddRecords(stats.Records)
	return stats, nil
}

// CleanFile sanitizes path in place. The result is written to path+".tmp"
// and renamed over the original only after the whole file succeeded; on
// failure the temporary file is removed and the original is left alone.
func CleanFile(path string, opts Options) (Stats, error) {
	in, err := os.Open(path)
	if err != nil {
		return Stats{}, &FileError{Path: path, Op: "open", Code: CodeOpen, Err: err}
	}
	defer in.Close()

	tmpPath := path + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return Stats{}, &FileError{Path: path, Op: "create", Code: CodeOpen, Err: err}
	}

	stats, err := Sanitize(in, out, opts)
	if err != nil {
		out.Close()
		os.Remove(tmpPath)
		var fe *FileError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return stats, err
	}

	if info, err := in.Stat(); err == nil {
		preserveMode(out, info.Mode().Perm(), opts.Logger)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return stats, &FileError{Path: path, Op: "write", Code: CodeRead, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return stats, &FileError{Path: path, Op: "replace", Code: CodeOpen, Err: err}
	}
	return stats, nil
}

type chmodder interface {
	Chmod(mode os.FileMode) error
}

// preserveMode gives the replacement file the original's permissions. A
// failure leaves the default mode in place and is only logged.
func preserveMode(f chmodder, mode os.FileMode, logger *slog.Logger) {
	if err := f.Chmod(mode); err != nil && logger != nil {
		logger.Debug("cannot preserve file mode", "mode", mode, "error", err)
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
