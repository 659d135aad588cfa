// Package fs provides file-based output for command results.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Output stages writes in a temporary file next to the destination and
// renames it into place on Commit. A run that ends with Discard leaves no
// file behind, so readers of the destination path never observe partial
// output.
type Output struct {
	path string
	file *os.File
	done bool
}

// CreateOutput creates the staging file for the given destination path.
func CreateOutput(path string) (*Output, error) {
	dir := filepath.Dir(path)
	file, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return &Output{path: path, file: file}, nil
}

// Write appends to the staging file.
func (o *Output) Write(p []byte) (int, error) {
	return o.file.Write(p)
}

// Commit closes the staging file and renames it to the destination path.
func (o *Output) Commit() error {
	if o.done {
		return nil
	}
	o.done = true

	if err := o.file.Close(); err != nil {
		_ = os.Remove(o.file.Name())
		return err
	}
	return os.Rename(o.file.Name(), o.path)
}

// Discard closes and removes the staging file without touching the
// destination path.
func (o *Output) Discard() error {
	if o.done {
		return nil
	}
	o.done = true

	_ = o.file.Close()
	return os.Remove(o.file.Name())
}
