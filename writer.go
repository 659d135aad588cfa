package webrows

// RowWriter receives projected rows in final output order.
// Open is called before the first row (it may emit framing, e.g. the opening
// bracket of a JSON array), WriteRow once per row, and Close exactly once
// after the last row. On an aborting failure the writer is not closed and
// the caller discards whatever was written.
type RowWriter interface {
	Open() error
	WriteRow(row []any) error
	Close() error
}
