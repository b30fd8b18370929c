// internal/cleaner/edit.go
package cleaner

const (
	backspace      = '\b'
	carriageReturn = '\r'
	terminator     = '\n'
)

// EditLine removes erase sequences and a trailing carriage return from a
// single record, compacting it in place. The returned slice aliases line.
//
// A backspace deletes itself and the byte before it; at the start of the
// record there is nothing before it, so only the backspace goes. A carriage
// return is deleted only when the terminator follows it directly.
func EditLine(line []byte) []byte {
	end := len(line)
	terminated := end > 0 && line[end-1] == terminator
	if terminated {
		end--
	}

	w := 0
	for r := 0; r < end; r++ {
		c := line[r]
		switch {
		case c == backspace:
			if w > 0 {
				w--
			}
		case c == carriageReturn && terminated && r+1 == end:
			// dropped
		default:
			line[w] = c
			w++
		}
	}

	if terminated {
		line[w] = terminator
		w++
	}
	return line[:w]
}
