package vquery

import (
	"strings"

	verrors "github.com/vtree-dev/vtree/internal/errors"
	"github.com/vtree-dev/vtree/pkg/vdom"
)

// Element is the generic document shape selectors run against. Each
// element carries a breadcrumb id mapping it back to its source Node.
type Element struct {
	Crumb    int
	Tag      string
	Attrs    map[string]string
	Children []*Element
}

// Document is a compiled, queryable view of a Node tree.
type Document struct {
	roots  []*Element
	source map[int]*vdom.Node
}

// Compile walks a Node tree and builds its queryable document. Text and
// widget nodes have no selectable surface and are skipped.
func Compile(root *vdom.Node) *Document {
	d := &Document{source: make(map[int]*vdom.Node)}
	next := 0
	if el := d.compile(root, &next); el != nil {
		d.roots = []*Element{el}
	}
	return d
}

func (d *Document) compile(n *vdom.Node, next *int) *Element {
	if n == nil || n.Kind != vdom.KindElement {
		return nil
	}
	*next++
	el := &Element{
		Crumb: *next,
		Tag:   n.Tag,
		Attrs: make(map[string]string, len(n.Attrs.Attributes)),
	}
	for _, a := range n.Attrs.Attributes {
		el.Attrs[a.Name] = a.Value
	}
	d.source[el.Crumb] = n
	for _, child := range n.Children {
		if c := d.compile(child, next); c != nil {
			el.Children = append(el.Children, c)
		}
	}
	return el
}

// Node maps a matched generic element back to its originating Node.
func (d *Document) Node(crumb int) (*vdom.Node, bool) {
	n, ok := d.source[crumb]
	return n, ok
}

// Find returns the first element matching the selector, or a lookup error
// when nothing matches.
func (d *Document) Find(selector string) (*vdom.Node, error) {
	nodes, err := d.FindAll(selector)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, verrors.Newf(verrors.CategoryLookup, "no element matches selector").WithName(selector)
	}
	return nodes[0], nil
}

// FindAll returns every element matching the selector, in document order.
// Selectors are space-separated descendant chains of simple selectors of
// the form tag#id.class[name=value], each piece optional.
func (d *Document) FindAll(selector string) ([]*vdom.Node, error) {
	chain, err := parseSelector(selector)
	if err != nil {
		return nil, err
	}
	var matched []*Element
	seen := make(map[int]bool)
	collect(d.roots, chain, seen, &matched)

	nodes := make([]*vdom.Node, 0, len(matched))
	for _, el := range matched {
		if n, ok := d.Node(el.Crumb); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

func collect(els []*Element, chain []simpleSelector, seen map[int]bool, out *[]*Element) {
	for _, el := range els {
		if matches(el, &chain[0]) {
			if len(chain) == 1 {
				if !seen[el.Crumb] {
					seen[el.Crumb] = true
					*out = append(*out, el)
				}
			} else {
				collect(el.Children, chain[1:], seen, out)
			}
		}
		collect(el.Children, chain, seen, out)
	}
}

func matches(el *Element, sel *simpleSelector) bool {
	if sel.tag != "" && sel.tag != el.Tag {
		return false
	}
	if sel.id != "" && el.Attrs["id"] != sel.id {
		return false
	}
	if len(sel.classes) > 0 {
		have := strings.Fields(el.Attrs["class"])
		for _, want := range sel.classes {
			found := false
			for _, c := range have {
				if c == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	if sel.attrName != "" && el.Attrs[sel.attrName] != sel.attrValue {
		return false
	}
	return true
}

type simpleSelector struct {
	tag       string
	id        string
	classes   []string
	attrName  string
	attrValue string
}

func parseSelector(selector string) ([]simpleSelector, error) {
	fields := strings.Fields(selector)
	if len(fields) == 0 {
		return nil, verrors.Newf(verrors.CategoryLookup, "empty selector")
	}
	chain := make([]simpleSelector, 0, len(fields))
	for _, field := range fields {
		sel, err := parseSimple(field)
		if err != nil {
			return nil, err
		}
		chain = append(chain, sel)
	}
	return chain, nil
}

func parseSimple(s string) (simpleSelector, error) {
	var sel simpleSelector

	// Trailing [name=value] piece.
	if i := strings.IndexByte(s, '['); i >= 0 {
		rest := s[i:]
		s = s[:i]
		if !strings.HasSuffix(rest, "]") {
			return sel, verrors.Newf(verrors.CategoryLookup, "malformed attribute selector").WithName(rest)
		}
		name, value, ok := strings.Cut(rest[1:len(rest)-1], "=")
		if !ok || name == "" {
			return sel, verrors.Newf(verrors.CategoryLookup, "malformed attribute selector").WithName(rest)
		}
		sel.attrName = name
		sel.attrValue = strings.Trim(value, `"`)
	}

	// tag, then #id and .class pieces in any order.
	for s != "" {
		switch s[0] {
		case '#':
			rest := s[1:]
			end := strings.IndexAny(rest, "#.")
			if end < 0 {
				end = len(rest)
			}
			sel.id = rest[:end]
			s = rest[end:]
		case '.':
			rest := s[1:]
			end := strings.IndexAny(rest, "#.")
			if end < 0 {
				end = len(rest)
			}
			sel.classes = append(sel.classes, rest[:end])
			s = rest[end:]
		default:
			end := strings.IndexAny(s, "#.")
			if end < 0 {
				end = len(s)
			}
			sel.tag = s[:end]
			s = s[end:]
		}
	}
	return sel, nil
}
