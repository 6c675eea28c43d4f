// Package storage provides the local-disk implementation of the profile
// picture storage collaborator.
package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	"fisiohub/config"
	"fisiohub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultUploadDir = "./uploads"
	defaultBaseURL   = "/uploads"
)

// localStorage writes uploaded files under a configured directory and
// returns URL-style references built from the configured base URL.
type localStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage is the constructor for localStorage.
func NewLocalStorage(cfg *config.Config) service.FileStorage {
	dir := defaultUploadDir
	baseURL := defaultBaseURL
	if cfg != nil && cfg.Upload != nil {
		if cfg.Upload.Dir != "" {
			dir = cfg.Upload.Dir
		}
		if cfg.Upload.BaseURL != "" {
			baseURL = cfg.Upload.BaseURL
		}
	}

	return &localStorage{dir: dir, baseURL: baseURL}
}

// Save stores the content under a random name, keeping the original
// extension, and returns the reference to persist on the profile.
func (s *localStorage) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "upload canceled")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create upload directory")
	}

	name := uuid.New().String() + filepath.Ext(filename)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errors.Wrap(err, "failed to create upload file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", errors.Wrap(err, "failed to write upload file")
	}

	return path.Join(s.baseURL, name), nil
}
