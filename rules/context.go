package rules

import (
	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/resource"
)

// ParseFunc parses source text from path into a Block. It is the same shape
// bundle.ParseFunc uses, so one parser implementation serves both the
// assembler and any rule that needs to re-parse (bundle_require reuses the
// assembler, which takes one of these directly).
type ParseFunc func(source []byte, path string) (*ast.Block, error)

// Context is the state threaded through one Pipeline.Apply call and shared,
// read-write, by every rule in turn — spec §4.8/§5: "a context carries the
// current file path, the resource layer, the original source text, a parser
// handle, and feature flags shared between rules" and "a rule may ask the
// context to reserve a shared helper identifier that a later rule will
// materialize."
type Context struct {
	FilePath string
	Layer    resource.Layer
	Source   []byte
	Parse    ParseFunc

	features map[string]string
}

// NewContext builds a Context for processing the file at filePath.
func NewContext(filePath string, layer resource.Layer, source []byte, parse ParseFunc) *Context {
	return &Context{
		FilePath: filePath,
		Layer:    layer,
		Source:   source,
		Parse:    parse,
		features: make(map[string]string),
	}
}

// ReserveName records that key now maps to name, for a later rule in the
// same pipeline run to discover via ReservedName.
func (c *Context) ReserveName(key, name string) {
	c.features[key] = name
}

// ReservedName returns the name a prior rule reserved under key, if any.
func (c *Context) ReservedName(key string) (string, bool) {
	name, ok := c.features[key]
	return name, ok
}
