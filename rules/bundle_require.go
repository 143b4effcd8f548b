package rules

import (
	"github.com/seaofvoices/darklua-go/ast"
	"github.com/seaofvoices/darklua-go/bundle"
	"github.com/seaofvoices/darklua-go/resolve"
)

// BundleRequireRule inlines every reachable `require` call into the file
// being processed, per spec §4.6, wrapping bundle.Assembler as a pipeline
// stage.
type BundleRequireRule struct {
	moduleFolderName string
	sources          map[string]string
	excludes         []string
}

func NewBundleRequireRule() *BundleRequireRule {
	return &BundleRequireRule{}
}

func (r *BundleRequireRule) Name() string { return "bundle_require" }

func (r *BundleRequireRule) ConfigKeys() []string {
	return []string{"module_folder_name", "sources", "excludes"}
}

func (r *BundleRequireRule) RequiredConfigKeys() []string { return nil }

func (r *BundleRequireRule) Configure(config map[string]any) error {
	if v, ok := config["module_folder_name"]; ok {
		name, ok := v.(string)
		if !ok {
			return errInvalidType("module_folder_name", "a string", v)
		}
		r.moduleFolderName = name
	}
	if v, ok := config["sources"]; ok {
		raw, ok := v.(map[string]any)
		if !ok {
			return errInvalidType("sources", "an object", v)
		}
		r.sources = make(map[string]string, len(raw))
		for k, val := range raw {
			path, ok := val.(string)
			if !ok {
				return errInvalidType("sources."+k, "a string", val)
			}
			r.sources[k] = path
		}
	}
	if v, ok := config["excludes"]; ok {
		items, ok := v.([]any)
		if !ok {
			return errInvalidType("excludes", "an array", v)
		}
		r.excludes = make([]string, len(items))
		for i, item := range items {
			pattern, ok := item.(string)
			if !ok {
				return errInvalidType("excludes[]", "a string", item)
			}
			r.excludes[i] = pattern
		}
	}
	return nil
}

func (r *BundleRequireRule) Process(block *ast.Block, ctx *Context) ([]Diagnostic, error) {
	resolver := resolve.New(resolve.Config{
		Sources:          r.sources,
		ModuleFolderName: r.moduleFolderName,
	}, ctx.Layer)

	assembler := &bundle.Assembler{
		Resolver: resolver,
		Layer:    ctx.Layer,
		Parse:    bundle.ParseFunc(ctx.Parse),
		Exclude:  r.excludes,
	}

	result, err := assembler.Assemble(block, ctx.FilePath)
	if err != nil {
		return FromError(KindRuleApplication, ctx.FilePath, r.Name(), err), nil
	}
	*block = *result
	return nil, nil
}

func (r *BundleRequireRule) Serialize() map[string]any {
	out := map[string]any{"rule": r.Name()}
	if r.moduleFolderName != "" {
		out["module_folder_name"] = r.moduleFolderName
	}
	if len(r.sources) > 0 {
		sources := make(map[string]any, len(r.sources))
		for k, v := range r.sources {
			sources[k] = v
		}
		out["sources"] = sources
	}
	if len(r.excludes) > 0 {
		excludes := make([]any, len(r.excludes))
		for i, v := range r.excludes {
			excludes[i] = v
		}
		out["excludes"] = excludes
	}
	return out
}

// RequiresTokenRepair is true: bundling moves subtrees between source
// files, the exact case spec §4.10 names as requiring repair.
func (r *BundleRequireRule) RequiresTokenRepair() bool { return true }
