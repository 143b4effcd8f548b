package bundle

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/seaofvoices/darklua-go/ast"
)

// dataFileExtensions maps a file extension to the decoder that reads it
// into a generic Go value tree, for transcoding into a literal expression
// per spec §4.6 ("if the required resource is data ... it is transcoded to
// a literal expression").
var dataFileExtensions = map[string]func([]byte) (any, error){
	".json": decodeJSON,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".toml": decodeTOML,
}

// isDataFile reports whether path names a recognized data file, the way
// the original source's transcoding rule dispatches on extension rather
// than sniffing content.
func isDataFile(path string) bool {
	_, ok := dataFileExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func decodeJSON(contents []byte) (any, error) {
	var v any
	if err := json.Unmarshal(contents, &v); err != nil {
		return nil, errors.Wrap(err, "decode json")
	}
	return v, nil
}

func decodeYAML(contents []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(contents, &v); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	return normalizeYAML(v), nil
}

// normalizeYAML rewrites yaml.v3's map[string]interface{} keys (already
// strings for plain maps) and map[interface{}]interface{} results from
// merge keys/non-string keys into map[string]interface{}, so the table
// builder below has one map shape to handle.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, vv := range val {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, vv := range val {
			out[fmt.Sprint(k)] = normalizeYAML(vv)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, vv := range val {
			out[i] = normalizeYAML(vv)
		}
		return out
	default:
		return v
	}
}

func decodeTOML(contents []byte) (any, error) {
	var v map[string]any
	if err := toml.Unmarshal(contents, &v); err != nil {
		return nil, errors.Wrap(err, "decode toml")
	}
	return v, nil
}

// dataToExpression builds the AST literal a decoded data-file value
// transcodes to: a TableConstructorExpression for maps and slices, the
// matching literal node for every scalar JSON/YAML/TOML type, and Nil for
// an explicit null.
func dataToExpression(v any) (ast.Expression, error) {
	switch val := v.(type) {
	case nil:
		return &ast.NilExpression{}, nil
	case bool:
		if val {
			return &ast.TrueExpression{}, nil
		}
		return &ast.FalseExpression{}, nil
	case string:
		return &ast.StringExpression{Value: []byte(val), Raw: fmt.Sprintf("%q", val)}, nil
	case float64:
		return &ast.NumberExpression{Value: val, Raw: fmt.Sprint(val)}, nil
	case int:
		return &ast.NumberExpression{Value: float64(val), Raw: fmt.Sprint(val)}, nil
	case int64:
		return &ast.NumberExpression{Value: float64(val), Raw: fmt.Sprint(val)}, nil
	case []any:
		entries := make([]ast.TableEntry, len(val))
		for i, item := range val {
			expr, err := dataToExpression(item)
			if err != nil {
				return nil, err
			}
			entries[i] = ast.TableEntry{Kind: ast.EntryArray, Value: expr}
		}
		return &ast.TableConstructorExpression{Entries: entries}, nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]ast.TableEntry, len(keys))
		for i, k := range keys {
			expr, err := dataToExpression(val[k])
			if err != nil {
				return nil, err
			}
			entries[i] = ast.TableEntry{Kind: ast.EntryNamed, Name: k, Value: expr}
		}
		return &ast.TableConstructorExpression{Entries: entries}, nil
	default:
		return nil, errors.Errorf("bundle: unsupported data value of type %T", v)
	}
}
