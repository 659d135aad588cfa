package mock

import "github.com/fwojciec/webrows"

var _ webrows.RowWriter = (*RowWriter)(nil)

// RowWriter is a mock implementation of webrows.RowWriter.
// The zero value records written rows in Rows.
type RowWriter struct {
	OpenFn     func() error
	WriteRowFn func(row []any) error
	CloseFn    func() error

	Opened bool
	Closed bool
	Rows   [][]any
}

func (w *RowWriter) Open() error {
	w.Opened = true
	if w.OpenFn == nil {
		return nil
	}
	return w.OpenFn()
}

func (w *RowWriter) WriteRow(row []any) error {
	w.Rows = append(w.Rows, row)
	if w.WriteRowFn == nil {
		return nil
	}
	return w.WriteRowFn(row)
}

func (w *RowWriter) Close() error {
	w.Closed = true
	if w.CloseFn == nil {
		return nil
	}
	return w.CloseFn()
}
