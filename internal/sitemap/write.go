package sitemap

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteError reports that the sitemap could not be stored at Path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write replaces the file at path with document. The content goes to a
// temporary file in the same directory which is renamed into place, so a
// failed write leaves any previous sitemap untouched.
func Write(document []byte, path string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(document); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("failed to write temp file: %w", err)}
	}
	if err = tmp.Sync(); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("failed to sync temp file: %w", err)}
	}
	if err = tmp.Close(); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("failed to close temp file: %w", err)}
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("failed to set permissions: %w", err)}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
