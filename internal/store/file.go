package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/util"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// writeFile replaces path with data, creating missing parent directories.
func writeFile(fs Filesystem, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("%w: mkdir %q: %w", ErrWritingFile, dir, err)
		}
	}
	if err := util.WriteFile(fs, path, data, os.FileMode(filePerm)); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrWritingFile, path, err)
	}
	return nil
}
