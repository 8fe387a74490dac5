package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ============================================================
// Output Storage
// ============================================================

// Storage lays out generated artifacts on disk, one flat directory
// keyed by generation id: <root>/<id>.dxf|.svg|.stl.
type Storage struct {
	root string
}

func New(root string) *Storage {
	return &Storage{root: root}
}

func (s *Storage) Root() string {
	return s.root
}

func (s *Storage) DXFPath(id string) string {
	return filepath.Join(s.root, id+".dxf")
}

func (s *Storage) SVGPath(id string) string {
	return filepath.Join(s.root, id+".svg")
}

func (s *Storage) STLPath(id string) string {
	return filepath.Join(s.root, id+".stl")
}

// ResolveDownload maps a bare artifact filename to its on-disk path.
// Names carrying path separators or traversal are rejected.
func (s *Storage) ResolveDownload(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	path := filepath.Join(s.root, filename)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Storage) EnsureRoot() error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("mkdir output dir: %w", err)
	}
	return nil
}

// Save writes an artifact, creating the root directory when missing.
func (s *Storage) Save(path string, data []byte) error {
	if err := s.EnsureRoot(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
