package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/go-git/go-billy/v5/util"
)

// FileTokenStore keeps the sync token as a plain-text file.
type FileTokenStore struct {
	fs     Filesystem
	logger *logger.Logger
}

// NewFileTokenStore returns a [TokenStore] writing to fs.
func NewFileTokenStore(fs Filesystem, logger *logger.Logger) *FileTokenStore {
	return &FileTokenStore{fs: fs, logger: logger}
}

// Save implements [TokenStore]. The file content is the token verbatim, with
// no trailing newline.
func (s *FileTokenStore) Save(ctx context.Context, path, token string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeFile(s.fs, path, []byte(token)); err != nil {
		return err
	}

	s.logger.Debug().Str("path", path).Msg("sync token saved")
	return nil
}

// Load implements [TokenStore]. Surrounding whitespace is trimmed so hand
// edited files keep working.
func (s *FileTokenStore) Load(ctx context.Context, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := util.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug().Str("path", path).Msg("no sync token yet, initial sync")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrReadingFile, path, err)
	}

	return strings.TrimSpace(string(data)), nil
}
