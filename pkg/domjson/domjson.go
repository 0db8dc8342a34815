package domjson

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	verrors "github.com/vtree-dev/vtree/internal/errors"
	"github.com/vtree-dev/vtree/pkg/vdom"
)

// Structural fields recognized on an element map. Every other field is
// classified by its value type.
const (
	fieldTag      = "tagName"
	fieldChildren = "children"
	fieldAttrs    = "attributes"
	fieldStyle    = "style"
	fieldKey      = "key"
	fieldWidget   = "widgetId"
	hookMarker    = "__hook"
)

// Decode parses a JSON document describing a foreign tree and converts it
// into a Node.
func Decode(data []byte) (*vdom.Node, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, verrors.Newf(verrors.CategoryAdapter, "invalid JSON document").Wrap(err)
	}
	return FromValue(v)
}

// FromValue converts a generic foreign-tree value into a Node. Strings
// become text nodes; maps with a tagName become elements whose remaining
// fields are classified by value type (string → string property, bool →
// bool property, function → handler, map carrying a hook marker → hook);
// maps with a widgetId become widgets. Anything else is an adapter
// failure.
func FromValue(v any) (*vdom.Node, error) {
	switch value := v.(type) {
	case string:
		return vdom.Text(value), nil
	case map[string]any:
		return fromMap(value)
	default:
		return nil, verrors.Newf(verrors.CategoryAdapter, "unrecognized node value of type %T", v)
	}
}

func fromMap(m map[string]any) (*vdom.Node, error) {
	if id, ok := m[fieldWidget]; ok {
		return fromWidget(id, m)
	}
	tag, ok := m[fieldTag].(string)
	if !ok {
		return nil, verrors.Newf(verrors.CategoryAdapter, "node map has no tagName")
	}

	mods, err := classifyFields(m)
	if err != nil {
		return nil, err
	}

	var children []*vdom.Node
	if raw, ok := m[fieldChildren]; ok {
		list, ok := raw.([]any)
		if !ok {
			return nil, verrors.Newf(verrors.CategoryAdapter, "children of <%s> is %T, not a list", tag, raw)
		}
		for _, item := range list {
			child, err := FromValue(item)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
	}

	return vdom.El(tag, mods, children), nil
}

func fromWidget(id any, m map[string]any) (*vdom.Node, error) {
	ids, ok := id.(string)
	if !ok {
		return nil, verrors.Newf(verrors.CategoryAdapter, "widgetId is %T, not a string", id)
	}
	var info func() string
	if desc, ok := m["info"].(string); ok {
		info = func() string { return desc }
	}
	return vdom.Widget(ids, info), nil
}

// classifyFields turns the non-structural fields of an element map into
// contributions. Fields are visited in sorted order so conversion is
// deterministic.
func classifyFields(m map[string]any) ([]vdom.Mod, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var mods []vdom.Mod
	for _, k := range keys {
		v := m[k]
		switch k {
		case fieldTag, fieldChildren:
			continue
		case fieldKey:
			s, ok := v.(string)
			if !ok {
				return nil, verrors.Newf(verrors.CategoryAdapter, "key is %T, not a string", v)
			}
			mods = append(mods, vdom.Key(s))
		case fieldAttrs:
			pairs, err := stringPairs(k, v)
			if err != nil {
				return nil, err
			}
			for _, p := range pairs {
				mods = append(mods, vdom.Attr(p[0], p[1]))
			}
		case fieldStyle:
			pairs, err := stringPairs(k, v)
			if err != nil {
				return nil, err
			}
			for _, p := range pairs {
				mods = append(mods, vdom.Style(p[0], p[1]))
			}
		default:
			mod, err := classifyValue(k, v)
			if err != nil {
				return nil, err
			}
			mods = append(mods, mod)
		}
	}
	return mods, nil
}

func classifyValue(name string, v any) (vdom.Mod, error) {
	switch value := v.(type) {
	case string:
		return vdom.StringProp(name, value), nil
	case bool:
		return vdom.BoolProp(name, value), nil
	case float64:
		// JSON numbers surface as float64; keep them as string properties.
		return vdom.StringProp(name, fmt.Sprintf("%v", value)), nil
	case int:
		return vdom.StringProp(name, fmt.Sprintf("%d", value)), nil
	case map[string]any:
		if payload, ok := value[hookMarker]; ok {
			return vdom.Hook(name, payload), nil
		}
		return nil, verrors.Newf(verrors.CategoryAdapter, "map field carries no hook marker").WithName(name)
	default:
		if reflect.ValueOf(v).Kind() == reflect.Func {
			return vdom.On(name, v), nil
		}
		return nil, verrors.Newf(verrors.CategoryAdapter, "unrecognized field value of type %T", v).WithName(name)
	}
}

func stringPairs(field string, v any) ([][2]string, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, verrors.Newf(verrors.CategoryAdapter, "%s is %T, not a map", field, v)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([][2]string, 0, len(keys))
	for _, k := range keys {
		s, ok := m[k].(string)
		if !ok {
			return nil, verrors.Newf(verrors.CategoryAdapter, "%s value is %T, not a string", field, m[k]).WithName(k)
		}
		pairs = append(pairs, [2]string{k, s})
	}
	return pairs, nil
}
