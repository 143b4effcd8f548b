package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaofvoices/darklua-go/resolve"
	"github.com/seaofvoices/darklua-go/resource"
)

func layerWith(files ...string) *resource.Memory {
	m := resource.NewMemory()
	for _, f := range files {
		m.Set(f, []byte("return 1"))
	}
	return m
}

func TestResolveRelativePath(t *testing.T) {
	layer := layerWith("src/a/b.lua")
	r := resolve.New(resolve.Config{}, layer)

	path, err := r.Resolve("./b", "src/a/entry.lua")
	require.NoError(t, err)
	assert.Equal(t, "src/a/b.lua", path)
}

func TestResolveParentRelativePath(t *testing.T) {
	layer := layerWith("src/b.lua")
	r := resolve.New(resolve.Config{}, layer)

	path, err := r.Resolve("../b", "src/a/entry.lua")
	require.NoError(t, err)
	assert.Equal(t, "src/b.lua", path)
}

func TestResolveSourceQualifiedPath(t *testing.T) {
	layer := layerWith("vendor/lib/util.lua")
	r := resolve.New(resolve.Config{Sources: map[string]string{"lib": "vendor/lib"}}, layer)

	path, err := r.Resolve("lib/util", "src/entry.lua")
	require.NoError(t, err)
	assert.Equal(t, "vendor/lib/util.lua", path)
}

func TestResolveUnknownSourceFails(t *testing.T) {
	layer := layerWith()
	r := resolve.New(resolve.Config{}, layer)

	_, err := r.Resolve("lib/util", "src/entry.lua")
	require.Error(t, err)
	assert.ErrorIs(t, err, resolve.ErrUnknownSource)
}

func TestResolveDirectoryFallsBackToModuleFolder(t *testing.T) {
	layer := layerWith("src/a/init.lua")
	r := resolve.New(resolve.Config{}, layer)

	path, err := r.Resolve("./a", "src/entry.lua")
	require.NoError(t, err)
	assert.Equal(t, "src/a/init.lua", path)
}

func TestResolveCustomModuleFolderName(t *testing.T) {
	layer := layerWith("src/a/main.luau")
	r := resolve.New(resolve.Config{ModuleFolderName: "main"}, layer)

	path, err := r.Resolve("./a", "src/entry.lua")
	require.NoError(t, err)
	assert.Equal(t, "src/a/main.luau", path)
}

func TestResolveProbesExtensionsInOrder(t *testing.T) {
	layer := layerWith("src/a/b.luau")
	r := resolve.New(resolve.Config{}, layer)

	path, err := r.Resolve("./b", "src/a/entry.lua")
	require.NoError(t, err)
	assert.Equal(t, "src/a/b.luau", path)
}

func TestResolveNotFoundListsProbedPaths(t *testing.T) {
	layer := layerWith()
	r := resolve.New(resolve.Config{}, layer)

	_, err := r.Resolve("./missing", "src/entry.lua")
	require.Error(t, err)
	assert.ErrorIs(t, err, resolve.ErrNotFound)
	assert.Contains(t, err.Error(), "src/missing.lua")
	assert.Contains(t, err.Error(), "src/missing.luau")
}

func TestResolveEmptyPathIsInvalid(t *testing.T) {
	layer := layerWith()
	r := resolve.New(resolve.Config{}, layer)

	_, err := r.Resolve("", "src/entry.lua")
	require.Error(t, err)
	assert.ErrorIs(t, err, resolve.ErrInvalidPath)
}
