package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/teamboard/teamboard/backend/internal/service"
)

const documentExt = ".json"

// Storage keeps every document as a file under rootPath.
type Storage struct {
	rootPath string
}

// Ensure Storage struct implements the interfaces at compile time.
var _ service.DocumentStorage = (*Storage)(nil)
var _ service.ExportStorage = (*Storage)(nil)

func New(rootPath string) (*Storage, error) {
	p := filepath.Clean(rootPath)

	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, fmt.Errorf("failed to create root storage directory %s: %w", p, err)
	}

	return &Storage{rootPath: p}, nil
}

// documentPath maps a collection name to its file. Only the base name is used
// so a collection can't escape rootPath.
func (s *Storage) documentPath(collection string) string {
	return filepath.Join(s.rootPath, filepath.Base(collection)+documentExt)
}

func (s *Storage) ReadDocument(_ context.Context, collection string) ([]byte, error) {
	data, err := os.ReadFile(s.documentPath(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

func (s *Storage) WriteDocument(_ context.Context, collection string, data []byte) error {
	return s.writeAtomic(s.documentPath(collection), data)
}

// SaveFile writes an arbitrary file (board exports) next to the documents.
func (s *Storage) SaveFile(_ context.Context, name string, content []byte) (string, error) {
	name = filepath.Base(filepath.Clean(name))
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	if err := s.writeAtomic(filepath.Join(s.rootPath, name), content); err != nil {
		return "", err
	}
	return name, nil
}

func (s *Storage) Ping(_ context.Context) error {
	info, err := os.Stat(s.rootPath)
	if err != nil {
		return fmt.Errorf("storage root unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage root %s is not a directory", s.rootPath)
	}
	return nil
}

// writeAtomic writes into a temp file in the same directory and renames it over
// the target, so readers see either the old or the new content.
func (s *Storage) writeAtomic(fullPath string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(fullPath), "."+filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath) // Best effort, ignore error here.
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(fullPath), err)
	}
	return nil
}
