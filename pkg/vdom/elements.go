package vdom

// NewElement builds an element from an ordered contribution list and
// already-built children, returning the merge warnings alongside. This is
// the pure construction entry point; nothing is printed.
func NewElement(tag string, mods []Mod, children []*Node) (*Node, []Warning) {
	attrs, warnings := Merge(mods)
	kept := make([]*Node, 0, len(children))
	for _, child := range children {
		if child != nil {
			kept = append(kept, child)
		}
	}
	return &Node{
		Kind:     KindElement,
		Tag:      tag,
		Attrs:    attrs,
		Children: kept,
	}, warnings
}

// El creates an element from variadic arguments.
// Arguments can be: nil, Mod, []Mod, *Node, []*Node, string.
// Merge warnings are written to the warning output.
func El(tag string, args ...any) *Node {
	var mods []Mod
	var children []*Node

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue
		case Mod:
			mods = append(mods, v)
		case []Mod:
			mods = append(mods, v...)
		case *Node:
			if v != nil {
				children = append(children, v)
			}
		case []*Node:
			for _, child := range v {
				if child != nil {
					children = append(children, child)
				}
			}
		case string:
			// Shorthand for text node
			children = append(children, Text(v))
		}
	}

	node, warnings := NewElement(tag, mods, children)
	emitWarnings(warnings)
	return node
}

// Document structure

// Div creates a <div> element.
func Div(args ...any) *Node { return El("div", args...) }

// Span creates a <span> element.
func Span(args ...any) *Node { return El("span", args...) }

// P creates a <p> element.
func P(args ...any) *Node { return El("p", args...) }

// Main creates a <main> element.
func Main(args ...any) *Node { return El("main", args...) }

// Section creates a <section> element.
func Section(args ...any) *Node { return El("section", args...) }

// Article creates an <article> element.
func Article(args ...any) *Node { return El("article", args...) }

// Header creates a <header> element.
func Header(args ...any) *Node { return El("header", args...) }

// Footer creates a <footer> element.
func Footer(args ...any) *Node { return El("footer", args...) }

// Nav creates a <nav> element.
func Nav(args ...any) *Node { return El("nav", args...) }

// Headings

// H1 creates an <h1> element.
func H1(args ...any) *Node { return El("h1", args...) }

// H2 creates an <h2> element.
func H2(args ...any) *Node { return El("h2", args...) }

// H3 creates an <h3> element.
func H3(args ...any) *Node { return El("h3", args...) }

// Lists

// Ul creates a <ul> element.
func Ul(args ...any) *Node { return El("ul", args...) }

// Ol creates an <ol> element.
func Ol(args ...any) *Node { return El("ol", args...) }

// Li creates an <li> element.
func Li(args ...any) *Node { return El("li", args...) }

// Inline and interactive

// A creates an <a> element.
func A(args ...any) *Node { return El("a", args...) }

// Button creates a <button> element.
func Button(args ...any) *Node { return El("button", args...) }

// Input creates an <input> element.
func Input(args ...any) *Node { return El("input", args...) }

// Textarea creates a <textarea> element.
func Textarea(args ...any) *Node { return El("textarea", args...) }

// Select creates a <select> element.
func Select(args ...any) *Node { return El("select", args...) }

// Option creates an <option> element.
func Option(args ...any) *Node { return El("option", args...) }

// Label creates a <label> element.
func Label(args ...any) *Node { return El("label", args...) }

// Form creates a <form> element.
func Form(args ...any) *Node { return El("form", args...) }

// Img creates an <img> element.
func Img(args ...any) *Node { return El("img", args...) }

// Strong creates a <strong> element.
func Strong(args ...any) *Node { return El("strong", args...) }

// Em creates an <em> element.
func Em(args ...any) *Node { return El("em", args...) }

// Pre creates a <pre> element.
func Pre(args ...any) *Node { return El("pre", args...) }

// Code creates a <code> element.
func Code(args ...any) *Node { return El("code", args...) }

// Tables

// Table creates a <table> element.
func Table(args ...any) *Node { return El("table", args...) }

// Tr creates a <tr> element.
func Tr(args ...any) *Node { return El("tr", args...) }

// Td creates a <td> element.
func Td(args ...any) *Node { return El("td", args...) }

// Th creates a <th> element.
func Th(args ...any) *Node { return El("th", args...) }
