package catalogue

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Writer persists the rendered catalogue. A lock file next to the output
// keeps concurrent runs from interleaving writes to the same document.
type Writer struct {
	path string
	lock *flock.Flock
}

// NewWriter constructs a writer for the output path.
func NewWriter(path string) *Writer {
	return &Writer{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the output document location.
func (w *Writer) Path() string {
	return w.path
}

// Write renders nothing itself; it takes the finished document and writes
// it under the lock.
func (w *Writer) Write(content string) error {
	// The lock file lives next to the output, so the directory has to
	// exist before the lock can be opened.
	if dir := filepath.Dir(w.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %q: %w", dir, err)
		}
	}

	ok, err := w.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire catalogue lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("catalogue lock %s is held by another run", w.lock.Path())
	}
	defer func() {
		_ = w.lock.Unlock()
	}()

	if err := os.WriteFile(w.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write catalogue %s: %w", w.path, err)
	}
	return nil
}
