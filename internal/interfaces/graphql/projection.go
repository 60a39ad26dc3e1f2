package graphql

import (
	"bytes"
	"encoding/json"

	"github.com/vektah/gqlparser/v2/ast"
)

// object is a JSON object that keeps insertion order, so responses follow the selection order
type object struct {
	keys   []string
	values map[string]any
}

func newObject() *object {
	return &object{values: make(map[string]any)}
}

func (o *object) set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key
func (o *object) Get(key string) any {
	if o == nil {
		return nil
	}
	return o.values[key]
}

func (o *object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type collectedField struct {
	key        string
	field      *ast.Field
	selections ast.SelectionSet
}

// collectFields flattens fragments and applies @skip and @include. Fields
// sharing a response key are merged.
func collectFields(set ast.SelectionSet, vars map[string]any) []collectedField {
	var out []collectedField
	index := make(map[string]int)

	var walk func(ast.SelectionSet)
	walk = func(set ast.SelectionSet) {
		for _, sel := range set {
			switch s := sel.(type) {
			case *ast.Field:
				if !included(s.Directives, vars) {
					continue
				}
				key := s.Alias
				if key == "" {
					key = s.Name
				}
				if i, ok := index[key]; ok {
					out[i].selections = append(out[i].selections, s.SelectionSet...)
					continue
				}
				index[key] = len(out)
				out = append(out, collectedField{key: key, field: s, selections: append(ast.SelectionSet(nil), s.SelectionSet...)})
			case *ast.InlineFragment:
				if included(s.Directives, vars) && typeMatches(s.TypeCondition, s.ObjectDefinition) {
					walk(s.SelectionSet)
				}
			case *ast.FragmentSpread:
				if s.Definition != nil && included(s.Directives, vars) && typeMatches(s.Definition.TypeCondition, s.ObjectDefinition) {
					walk(s.Definition.SelectionSet)
				}
			}
		}
	}
	walk(set)
	return out
}

func included(directives ast.DirectiveList, vars map[string]any) bool {
	if d := directives.ForName("skip"); d != nil {
		if skip, _ := d.ArgumentMap(vars)["if"].(bool); skip {
			return false
		}
	}
	if d := directives.ForName("include"); d != nil {
		if include, _ := d.ArgumentMap(vars)["if"].(bool); !include {
			return false
		}
	}
	return true
}

func typeMatches(condition string, parent *ast.Definition) bool {
	return condition == "" || parent == nil || parent.Name == condition
}

// sourceKey maps a schema field to the JSON key of the resolved value
func sourceKey(name string) string {
	if name == "_id" {
		return "id"
	}
	return name
}

// project keeps only the selected fields of a JSON-shaped value
func project(value any, set ast.SelectionSet, vars map[string]any) any {
	if len(set) == 0 || value == nil {
		return value
	}

	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = project(v[i], set, vars)
		}
		return out
	case map[string]any:
		out := newObject()
		for _, cf := range collectFields(set, vars) {
			if cf.field.Name == "__typename" {
				if def := cf.field.ObjectDefinition; def != nil {
					out.set(cf.key, def.Name)
				}
				continue
			}
			out.set(cf.key, project(v[sourceKey(cf.field.Name)], cf.selections, vars))
		}
		return out
	default:
		return value
	}
}
