package resource

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Memory is an in-memory Layer backed by a flat path-to-bytes map, guarded
// by a RWMutex the way runtime/decorators/registry.go guards its decorator
// maps. Directories are implicit: a path is a directory if some stored file
// path has it as a strict prefix component.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemory returns an empty Memory layer.
func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

// Set stores contents at path, overwriting any existing entry.
func (m *Memory) Set(path string, contents []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = contents
}

// Remove deletes path from the layer, if present.
func (m *Memory) Remove(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
}

func (m *Memory) Exists(path string) (bool, error) {
	isFile, _ := m.IsFile(path)
	if isFile {
		return true, nil
	}
	isDir, _ := m.IsDirectory(path)
	return isDir, nil
}

func (m *Memory) IsFile(path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[path]
	return ok, nil
}

func (m *Memory) IsDirectory(path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	prefix := strings.TrimSuffix(path, "/") + "/"
	if path == "" || path == "." {
		return len(m.files) > 0, nil
	}
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) Get(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	contents, ok := m.files[path]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "memory resource %q", path)
	}
	return contents, nil
}

// Paths returns every stored file path in lexical order, for tests that
// want to assert on the full contents of a layer.
func (m *Memory) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
