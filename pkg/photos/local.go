package photos

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore writes photos under a directory served at /uploads/.
type LocalStore struct {
	Dir string
	Now func() time.Time
}

// NewLocalStore creates the uploads directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalStore{Dir: dir, Now: time.Now}, nil
}

var _ Store = (*LocalStore)(nil)

// Save writes the photo and returns its /uploads/ URL path.
func (s *LocalStore) Save(ctx context.Context, fullname string, data []byte) (string, error) {
	key := objectKey(fullname, s.Now())
	target := filepath.Join(s.Dir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create photo directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	return "/uploads/" + key, nil
}

// Delete removes a photo previously returned by Save.
func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	key, ok := strings.CutPrefix(ref, "/uploads/")
	if !ok {
		return nil
	}
	key = path.Clean("/" + key)[1:]
	if key == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.Dir, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove photo: %w", err)
	}
	return nil
}
