package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalPhotoStore writes uploads to a directory on local disk and hands
// back URIs under a public prefix. Filenames are random so an uploaded
// name can never collide with or overwrite another user's photo.
type LocalPhotoStore struct {
	dir       string
	urlPrefix string
}

// NewLocalPhotoStore creates the backing directory if needed.
func NewLocalPhotoStore(dir, urlPrefix string) (*LocalPhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create photo dir: %w", err)
	}
	return &LocalPhotoStore{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

// Dir returns the backing directory, used to mount a static file route.
func (s *LocalPhotoStore) Dir() string { return s.dir }

func (s *LocalPhotoStore) Save(ctx context.Context, r io.Reader, originalName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		ext = ".jpg"
	}
	name := uuid.NewString() + ext

	f, err := os.CreateTemp(s.dir, "upload-*")
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	tmp := f.Name()

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("write photo: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("close photo: %w", err)
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("finalize photo: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}
