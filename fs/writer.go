// Package fs publishes feeds to the file system.
package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/mensafeed"
)

// Ensure FileWriter implements mensafeed.FeedWriter at compile time.
var _ mensafeed.FeedWriter = (*FileWriter)(nil)

// FileWriter writes a feed to a fixed path.
// Readers of the path never observe a partially written feed.
type FileWriter struct {
	path string
}

// NewFileWriter creates a new FileWriter that writes to path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// Path returns the destination path.
func (w *FileWriter) Path() string {
	return w.path
}

// WriteFeed writes feed to a temporary file next to the destination and
// renames it into place, creating parent directories as needed.
func (w *FileWriter) WriteFeed(ctx context.Context, feed string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.path == "" {
		return mensafeed.Errorf(mensafeed.EINVALID, "output path required")
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.WriteString(feed); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), w.path)
}

// Ensure StreamWriter implements mensafeed.FeedWriter at compile time.
var _ mensafeed.FeedWriter = (*StreamWriter)(nil)

// StreamWriter writes a feed to an io.Writer, e.g. standard output.
type StreamWriter struct {
	w io.Writer
}

// NewStreamWriter creates a new StreamWriter.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// WriteFeed writes feed followed by a newline if it lacks one.
func (w *StreamWriter) WriteFeed(ctx context.Context, feed string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := io.WriteString(w.w, feed); err != nil {
		return err
	}
	if len(feed) > 0 && feed[len(feed)-1] != '\n' {
		_, err := io.WriteString(w.w, "\n")
		return err
	}
	return nil
}
