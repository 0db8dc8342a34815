package vdom

import (
	verrors "github.com/vtree-dev/vtree/internal/errors"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindText    Kind = iota // Plain text node
	KindElement             // <div>, <button>, etc.
	KindWidget              // Externally managed opaque leaf
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindElement:
		return "Element"
	case KindWidget:
		return "Widget"
	default:
		return "Unknown"
	}
}

// Node is a virtual tree node. Nodes are built bottom-up and must be
// treated as immutable once constructed; trees are rebuilt, not edited.
type Node struct {
	Kind     Kind
	Tag      string       // Element tag name (e.g., "div")
	Attrs    AttributeSet // Canonical merged attributes (elements only)
	Children []*Node      // Child nodes, order is rendering order
	Text     string       // For KindText

	WidgetID   string        // For KindWidget
	WidgetInfo func() string // Lazily-computed diagnostic, may be nil
}

// Pair is a named string value with a stable position in its bucket.
type Pair struct {
	Name  string
	Value string
}

// BoolPair is a named boolean property.
type BoolPair struct {
	Name  string
	Value bool
}

// HandlerEntry is a named opaque callback. Handlers are identified by
// name and presence only, never compared by value.
type HandlerEntry struct {
	Name string
	Fn   any
}

// HookEntry is a named opaque payload attached to an element's lifecycle.
// The payload's dynamic type acts as its retrieval token; see HookValue.
type HookEntry struct {
	Name    string
	Payload any
}

// AttributeSet is the canonical attribute state of an element after the
// merge engine has run. Every bucket preserves insertion order and holds
// unique names.
type AttributeSet struct {
	Attributes  []Pair
	StringProps []Pair
	BoolProps   []BoolPair
	Styles      []Pair
	Handlers    []HandlerEntry
	Hooks       []HookEntry
	Key         string
}

// Attr looks up an attribute by name.
func (a *AttributeSet) Attr(name string) (string, bool) {
	return lookupPair(a.Attributes, name)
}

// StringProp looks up a string property by name.
func (a *AttributeSet) StringProp(name string) (string, bool) {
	return lookupPair(a.StringProps, name)
}

// BoolProp looks up a boolean property by name.
func (a *AttributeSet) BoolProp(name string) (bool, bool) {
	for _, p := range a.BoolProps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return false, false
}

// Style looks up a style declaration by name.
func (a *AttributeSet) Style(name string) (string, bool) {
	return lookupPair(a.Styles, name)
}

// Handler looks up a handler by name.
func (a *AttributeSet) Handler(name string) (any, bool) {
	for _, h := range a.Handlers {
		if h.Name == name {
			return h.Fn, true
		}
	}
	return nil, false
}

// Hook looks up a hook payload by name. For typed retrieval use HookValue.
func (a *AttributeSet) Hook(name string) (any, bool) {
	for _, h := range a.Hooks {
		if h.Name == name {
			return h.Payload, true
		}
	}
	return nil, false
}

func lookupPair(pairs []Pair, name string) (string, bool) {
	for _, p := range pairs {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Mods converts a canonical AttributeSet back into a flat contribution
// list. Re-merging the result yields an equal set and no warnings.
func (a *AttributeSet) Mods() []Mod {
	var mods []Mod
	for _, p := range a.Attributes {
		mods = append(mods, Attr(p.Name, p.Value))
	}
	for _, p := range a.StringProps {
		mods = append(mods, StringProp(p.Name, p.Value))
	}
	for _, p := range a.BoolProps {
		mods = append(mods, BoolProp(p.Name, p.Value))
	}
	for _, p := range a.Styles {
		mods = append(mods, Style(p.Name, p.Value))
	}
	for _, h := range a.Handlers {
		mods = append(mods, On(h.Name, h.Fn))
	}
	for _, h := range a.Hooks {
		mods = append(mods, Hook(h.Name, h.Payload))
	}
	if a.Key != "" {
		mods = append(mods, Key(a.Key))
	}
	return mods
}

// Text creates a text node.
func Text(content string) *Node {
	return &Node{
		Kind: KindText,
		Text: content,
	}
}

// Widget creates an opaque widget node. The info function, if non-nil,
// is evaluated only when a diagnostic description is needed.
func Widget(id string, info func() string) *Node {
	return &Node{
		Kind:       KindWidget,
		WidgetID:   id,
		WidgetInfo: info,
	}
}

// Handlers returns the element's handler entries. Requesting handlers
// on a non-element node is a type error.
func (n *Node) Handlers() ([]HandlerEntry, error) {
	if n == nil {
		return nil, verrors.Newf(verrors.CategoryType, "handlers requested on nil node")
	}
	if n.Kind != KindElement {
		return nil, verrors.Newf(verrors.CategoryType, "handlers requested on non-element node").WithName(n.Kind.String())
	}
	return n.Attrs.Handlers, nil
}
