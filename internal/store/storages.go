package store

import (
	"github.com/MKhiriev/go-space-sync/internal/logger"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Filesystem is the part of a billy filesystem the file stores need.
type Filesystem interface {
	billy.Basic
	billy.Dir
}

// Storages groups the persistence the sync runner needs.
type Storages struct {
	TokenStore TokenStore
	ErrorLog   ErrorLog
}

// NewStorages wires both file stores to fs.
func NewStorages(fs Filesystem, logger *logger.Logger) *Storages {
	logger.Info().Msg("creating new storages...")

	return &Storages{
		TokenStore: NewFileTokenStore(fs, logger),
		ErrorLog:   NewFileErrorLog(fs, logger),
	}
}

// NewOSFilesystem returns a filesystem that behaves like the native one:
// relative paths resolve against the working directory.
func NewOSFilesystem() Filesystem {
	return &osfs.ChrootOS{}
}
