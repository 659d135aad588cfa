// Package rowjson implements webrows.RowWriter by writing rows incrementally
// as a single JSON array of arrays. Memory use is bounded by one row: each
// row is encoded and flushed as it arrives, never buffered as a whole set.
package rowjson

import (
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/fwojciec/webrows"
)

// Ensure Writer implements webrows.RowWriter at compile time.
var _ webrows.RowWriter = (*Writer)(nil)

// Writer writes rows as a JSON array: "[" on Open, comma-separated encoded
// rows as they arrive, "]" on Close. Zero rows produce "[]".
type Writer struct {
	w      io.Writer
	opened bool
	wrote  bool
	closed bool
}

// NewWriter creates a Writer that emits to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Open emits the opening bracket. It must be called exactly once before the
// first WriteRow.
func (w *Writer) Open() error {
	if w.opened {
		return webrows.Errorf(webrows.EINTERNAL, "row writer already open")
	}
	w.opened = true
	_, err := io.WriteString(w.w, "[")
	return err
}

// WriteRow encodes and emits one row.
func (w *Writer) WriteRow(row []any) error {
	if !w.opened || w.closed {
		return webrows.Errorf(webrows.EINTERNAL, "row writer not open")
	}

	encoded, err := EncodeRow(row)
	if err != nil {
		return err
	}

	if w.wrote {
		if _, err := io.WriteString(w.w, ","); err != nil {
			return err
		}
	}
	w.wrote = true

	_, err = w.w.Write(encoded)
	return err
}

// Close emits the closing bracket. The output is a syntactically valid JSON
// array afterwards.
func (w *Writer) Close() error {
	if !w.opened || w.closed {
		return webrows.Errorf(webrows.EINTERNAL, "row writer not open")
	}
	w.closed = true
	_, err := io.WriteString(w.w, "]")
	return err
}

// EncodeRow encodes one row as a JSON array. Encoding is total: it never
// fails for the value kinds records produce.
func EncodeRow(row []any) ([]byte, error) {
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = coerceValue(v)
	}
	return json.Marshal(out)
}

// coerceValue applies the output encoding rules: timestamps become ISO-8601
// strings, numerics become decimal strings, absent values become the empty
// string, everything else keeps its native JSON representation.
func coerceValue(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(time.RFC3339)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return v
	}
}
