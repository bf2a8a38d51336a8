package formatter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/desertthunder/m3uify/internal/shared"
)

// WriteFile writes data to path without ever exposing a partially written file.
//
// Data lands in a temporary sibling first and is renamed over path once complete. The temporary file is removed
// on every error path.
func WriteFile(path string, data []byte) (err error) {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+shared.GenerateID()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrWriteFailed, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrWriteFailed, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrWriteFailed, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrWriteFailed, err)
	}

	return nil
}
