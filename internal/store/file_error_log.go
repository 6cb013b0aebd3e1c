package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/MKhiriev/go-space-sync/models"
)

// errorLogDocument is the on-disk shape of the error log.
type errorLogDocument struct {
	Errors []models.ErrorRecord `json:"errors"`
}

// FileErrorLog dumps error records as an indented JSON document.
type FileErrorLog struct {
	fs     Filesystem
	logger *logger.Logger
}

// NewFileErrorLog returns an [ErrorLog] writing to fs.
func NewFileErrorLog(fs Filesystem, logger *logger.Logger) *FileErrorLog {
	return &FileErrorLog{fs: fs, logger: logger}
}

// Dump implements [ErrorLog]. An existing file is replaced; nothing is
// written, and an existing file is left alone, when records is empty.
func (l *FileErrorLog) Dump(ctx context.Context, path string, records []models.ErrorRecord) error {
	if len(records) == 0 {
		return nil
	}
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(errorLogDocument{Errors: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingErrorLog, err)
	}

	if err = writeFile(l.fs, path, data); err != nil {
		return err
	}

	l.logger.Warn().Str("path", path).Int("count", len(records)).Msg("error log written")
	return nil
}
