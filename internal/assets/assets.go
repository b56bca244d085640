// Package assets loads terrain maps from directories, zip archives or the
// procedural generator.
package assets

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrMissingAsset is returned when no source holds a requested file.
var ErrMissingAsset = errors.New("asset not found")

// source is one searchable file tree.
type source struct {
	name   string
	fsys   fs.FS
	closer io.Closer
}

// Manager reads files from a list of sources.
// Sources are searched in reverse order (last added = highest priority).
type Manager struct {
	sources []source
	mu      sync.RWMutex
}

// NewManager creates a manager with no sources.
func NewManager() *Manager {
	return &Manager{}
}

// AddSource adds a directory, or a .zip archive if path ends in .zip.
func (m *Manager) AddSource(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return m.AddArchive(path)
	}
	return m.AddDir(path)
}

// AddDir adds a directory tree.
func (m *Manager) AddDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("opening directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("opening directory %s: not a directory", path)
	}
	m.add(source{name: path, fsys: os.DirFS(path)})
	return nil
}

// AddArchive adds a zip archive. It stays open until Close.
func (m *Manager) AddArchive(path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("opening archive %s: %w", path, err)
	}
	m.add(source{name: path, fsys: r, closer: r})
	return nil
}

// AddFS adds an arbitrary file system under a display name.
func (m *Manager) AddFS(name string, fsys fs.FS) {
	m.add(source{name: name, fsys: fsys})
}

func (m *Manager) add(s source) {
	m.mu.Lock()
	m.sources = append(m.sources, s)
	m.mu.Unlock()
}

// Len returns the number of sources.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sources)
}

// Open returns the file at name from the highest priority source holding it.
// Names use forward slashes, as in io/fs.
func (m *Manager) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		f, err := m.sources[i].fsys.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s in %s: %w", name, m.sources[i].name, err)
		}
	}
	return nil, fmt.Errorf("%s: %w", name, ErrMissingAsset)
}

// Load reads the whole file at name.
func (m *Manager) Load(name string) ([]byte, error) {
	f, err := m.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Close closes all archives and forgets every source.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, s := range m.sources {
		if s.closer != nil {
			if err := s.closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("closing %s: %w", s.name, err))
			}
		}
	}
	m.sources = nil
	return errors.Join(errs...)
}
