package rowjson

import (
	"bufio"
	"io"
	"os"

	"github.com/fwojciec/webrows"
)

// Ensure SpoolWriter implements webrows.RowWriter at compile time.
var _ webrows.RowWriter = (*SpoolWriter)(nil)

// SpoolWriter stages rows as newline-delimited JSON in a temporary file and
// emits the final JSON array to out on Close. It decouples row production
// from emission the way the CSV handler's temporary-file staging does:
// at no point is more than one row held in memory.
//
// The temporary file is removed on Close regardless of outcome.
type SpoolWriter struct {
	out    io.Writer
	file   *os.File
	opened bool
	closed bool
}

// NewSpoolWriter creates a SpoolWriter that emits the final array to out.
func NewSpoolWriter(out io.Writer) *SpoolWriter {
	return &SpoolWriter{out: out}
}

// Open creates the staging file.
func (w *SpoolWriter) Open() error {
	if w.opened {
		return webrows.Errorf(webrows.EINTERNAL, "spool writer already open")
	}

	file, err := os.CreateTemp("", "webrows-*.ndjson")
	if err != nil {
		return err
	}

	w.file = file
	w.opened = true
	return nil
}

// WriteRow appends one encoded row as a single NDJSON line.
func (w *SpoolWriter) WriteRow(row []any) error {
	if !w.opened || w.closed {
		return webrows.Errorf(webrows.EINTERNAL, "spool writer not open")
	}

	encoded, err := EncodeRow(row)
	if err != nil {
		return err
	}

	if _, err := w.file.Write(encoded); err != nil {
		return err
	}
	_, err = w.file.Write([]byte{'\n'})
	return err
}

// Discard closes and removes the staging file without emitting anything.
// It is the abandon path for a run that aborts between Open and Close;
// after Close or a prior Discard it is a no-op.
func (w *SpoolWriter) Discard() {
	if !w.opened || w.closed {
		return
	}
	w.closed = true

	name := w.file.Name()
	_ = w.file.Close()
	_ = os.Remove(name)
}

// Close rewinds the staging file, streams its lines out as a JSON array,
// and removes the file.
func (w *SpoolWriter) Close() error {
	if !w.opened || w.closed {
		return webrows.Errorf(webrows.EINTERNAL, "spool writer not open")
	}
	w.closed = true

	defer func() {
		name := w.file.Name()
		_ = w.file.Close()
		_ = os.Remove(name)
	}()

	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	if _, err := io.WriteString(w.out, "["); err != nil {
		return err
	}

	reader := bufio.NewReader(w.file)
	first := true
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 1 {
			if !first {
				if _, werr := io.WriteString(w.out, ","); werr != nil {
					return werr
				}
			}
			first = false
			// Strip the trailing newline; the line is already valid JSON.
			if _, werr := w.out.Write(line[:len(line)-1]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	_, err := io.WriteString(w.out, "]")
	return err
}
