// Package report implements the serial line protocol used to publish the
// current temperature.
//
// Every value change produces one ASCII line:
//
//	TEMP:<integer>\n
//
// The integer is decimal with an optional leading '-'. Other lines may share
// the link (human-readable diagnostics); consumers recognise values by the
// TEMP: prefix and ignore everything else.
package report

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prefix starts every value line.
const Prefix = "TEMP:"

// ErrNoPrefix is returned by Parse for lines that do not carry a value.
var ErrNoPrefix = errors.New("report: line has no " + Prefix + " prefix")

// AppendLine appends the protocol line for v to buf.
func AppendLine(buf []byte, v int) []byte {
	buf = append(buf, Prefix...)
	buf = strconv.AppendInt(buf, int64(v), 10)
	return append(buf, '\n')
}

// Format returns the protocol line for v, including the trailing newline.
func Format(v int) string {
	return string(AppendLine(nil, v))
}

// Parse extracts the value from a protocol line. Surrounding whitespace,
// including a trailing "\r\n", is ignored.
func Parse(line string) (int, error) {
	line = strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(line, Prefix)
	if !ok {
		return 0, ErrNoPrefix
	}
	v, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, fmt.Errorf("report: invalid value %q: %w", rest, err)
	}
	return v, nil
}

// Writer sends protocol lines to an underlying writer, typically a serial
// port. It reuses one buffer so steady-state sends do not allocate.
type Writer struct {
	w   io.Writer
	buf []byte
}

// NewWriter returns a Writer sending to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, buf: make([]byte, 0, len(Prefix)+21)}
}

// Send writes the line for v in a single Write call.
func (w *Writer) Send(v int) error {
	w.buf = AppendLine(w.buf[:0], v)
	if _, err := w.w.Write(w.buf); err != nil {
		return fmt.Errorf("report: failed to send %d: %w", v, err)
	}
	return nil
}

// Listen reads lines from r and calls fn with every value it finds. Lines
// without the prefix are skipped; lines with the prefix and an invalid value
// are passed to bad, when it is not nil. Listen returns when r is exhausted,
// on a read error, or when ctx is done between lines.
func Listen(ctx context.Context, r io.Reader, fn func(int), bad func(line string, err error)) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := Parse(sc.Text())
		switch {
		case errors.Is(err, ErrNoPrefix):
			continue
		case err != nil:
			if bad != nil {
				bad(sc.Text(), err)
			}
			continue
		}
		fn(v)
	}
	return sc.Err()
}
