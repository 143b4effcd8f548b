// Package resolve normalizes a require path string to a cleaned file path
// (absolute only when the requiring file or source root is absolute; a
// relative one is not joined to the working directory), the way core/decorator/local_session.go normalizes a decorator's
// relative path argument against its session's working directory — here
// generalized into the six-step source-name/extension/module-folder
// resolution order a require call needs.
package resolve

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/seaofvoices/darklua-go/resource"
)

// ErrUnknownSource is returned when a require path's leading component
// names a source that was never configured.
var ErrUnknownSource = errors.New("resolve: unknown source name")

// ErrInvalidPath is returned when a require path is structurally malformed
// (e.g. empty).
var ErrInvalidPath = errors.New("resolve: invalid resource path")

// ErrNotFound is returned when every candidate extension/module-folder
// probe misses. The error's message lists each path that was tried.
var ErrNotFound = errors.New("resolve: resource not found")

// Config configures a Resolver: the named source roots a require path may
// reference, the directory-probe folder name, and the extensions tried
// when a path has none.
type Config struct {
	// Sources maps a source name (the require path's first component,
	// when it isn't relative or absolute) to its root directory.
	Sources map[string]string

	// ModuleFolderName is probed when a resolved path names a directory.
	// Defaults to "init" when empty.
	ModuleFolderName string

	// Extensions are tried in order when a resolved path has none.
	// Defaults to []string{".lua", ".luau"} when empty.
	Extensions []string
}

func (c Config) moduleFolderName() string {
	if c.ModuleFolderName == "" {
		return "init"
	}
	return c.ModuleFolderName
}

func (c Config) extensions() []string {
	if len(c.Extensions) == 0 {
		return []string{".lua", ".luau"}
	}
	return c.Extensions
}

// Resolver resolves require path strings against a resource.Layer.
type Resolver struct {
	config Config
	layer  resource.Layer
}

// New returns a Resolver backed by layer, configured by config.
func New(config Config, layer resource.Layer) *Resolver {
	return &Resolver{config: config, layer: layer}
}

// Resolve normalizes requirePath — found in the require call inside
// fromFile — to an existing file path, following the six-step order:
// relative resolution, absolute passthrough, source-name lookup,
// module-folder fallback, extension probing, final normalization. The
// normalization is filepath.Clean only: a relative fromFile or source root
// yields a relative result, not one made absolute against the working
// directory.
func (r *Resolver) Resolve(requirePath string, fromFile string) (string, error) {
	if requirePath == "" {
		return "", errors.Wrap(ErrInvalidPath, "empty require path")
	}

	var base string
	switch {
	case strings.HasPrefix(requirePath, "./") || strings.HasPrefix(requirePath, "../"):
		base = filepath.Join(filepath.Dir(fromFile), requirePath)
	case filepath.IsAbs(requirePath):
		base = requirePath
	default:
		resolved, err := r.resolveSourceQualified(requirePath)
		if err != nil {
			return "", err
		}
		base = resolved
	}

	return r.probe(base)
}

func (r *Resolver) resolveSourceQualified(requirePath string) (string, error) {
	parts := strings.SplitN(requirePath, "/", 2)
	name := parts[0]
	root, ok := r.config.Sources[name]
	if !ok {
		return "", errors.Wrapf(ErrUnknownSource, "%q", name)
	}
	if len(parts) == 1 {
		return root, nil
	}
	return filepath.Join(root, parts[1]), nil
}

// probe applies steps 4-6: directory-to-module-folder fallback (step 4),
// extension probing (step 5), and final path normalization (step 6) —
// returning ErrNotFound listing every path tried if none names an existing
// file.
func (r *Resolver) probe(base string) (string, error) {
	base = filepath.Clean(base)

	isDir, err := r.layer.IsDirectory(base)
	if err != nil {
		return "", errors.Wrapf(err, "probing %q", base)
	}
	if isDir {
		base = filepath.Join(base, r.config.moduleFolderName())
	}

	candidates := []string{base}
	if filepath.Ext(base) == "" {
		candidates = candidates[:0]
		for _, ext := range r.config.extensions() {
			candidates = append(candidates, base+ext)
		}
	}

	for _, candidate := range candidates {
		isFile, err := r.layer.IsFile(candidate)
		if err != nil {
			return "", errors.Wrapf(err, "probing %q", candidate)
		}
		if isFile {
			return filepath.Clean(candidate), nil
		}
	}

	return "", errors.Wrapf(ErrNotFound, "tried %s", strings.Join(candidates, ", "))
}
