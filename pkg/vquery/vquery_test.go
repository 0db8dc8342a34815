package vquery

import (
	"testing"

	verrors "github.com/vtree-dev/vtree/internal/errors"
	"github.com/vtree-dev/vtree/pkg/vdom"
)

func fixture() *vdom.Node {
	return vdom.Div(vdom.ID("root"), vdom.Class("page"),
		vdom.Ul(vdom.Class("list"),
			vdom.Li(vdom.Class("item first"), "one"),
			vdom.Li(vdom.Class("item"), "two"),
			vdom.Li(vdom.Class("item"), vdom.Attr("data-state", "done"), "three"),
		),
		vdom.Div(vdom.ID("sidebar"),
			vdom.Button(vdom.Class("item"), "click me"),
		),
	)
}

func TestFindByTag(t *testing.T) {
	doc := Compile(fixture())

	node, err := doc.Find("ul")
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if node.Tag != "ul" {
		t.Errorf("tag = %q, want ul", node.Tag)
	}
}

func TestFindById(t *testing.T) {
	doc := Compile(fixture())

	node, err := doc.Find("#sidebar")
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if got, _ := node.Attrs.Attr("id"); got != "sidebar" {
		t.Errorf("id = %q, want sidebar", got)
	}
}

func TestFindAllByClass(t *testing.T) {
	doc := Compile(fixture())

	nodes, err := doc.FindAll(".item")
	if err != nil {
		t.Fatalf("FindAll error: %v", err)
	}
	if len(nodes) != 4 {
		t.Errorf("got %d matches, want 4", len(nodes))
	}
}

func TestDescendantChainScopesMatch(t *testing.T) {
	doc := Compile(fixture())

	nodes, err := doc.FindAll("ul .item")
	if err != nil {
		t.Fatalf("FindAll error: %v", err)
	}
	if len(nodes) != 3 {
		t.Errorf("got %d matches, want 3 (button is outside the ul)", len(nodes))
	}
}

func TestCompoundSelector(t *testing.T) {
	doc := Compile(fixture())

	node, err := doc.Find("li.item.first")
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if got, _ := node.Attrs.Attr("class"); got != "item first" {
		t.Errorf("class = %q, want %q", got, "item first")
	}
}

func TestAttributeSelector(t *testing.T) {
	doc := Compile(fixture())

	node, err := doc.Find(`li[data-state=done]`)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if got, _ := node.Attrs.Attr("data-state"); got != "done" {
		t.Errorf("data-state = %q, want done", got)
	}
}

func TestFindNoMatchFailsLoudly(t *testing.T) {
	doc := Compile(fixture())

	_, err := doc.Find("#missing")
	if !verrors.IsCategory(err, verrors.CategoryLookup) {
		t.Errorf("err = %v, want lookup category", err)
	}
}

func TestMalformedSelector(t *testing.T) {
	doc := Compile(fixture())

	if _, err := doc.FindAll("li[broken"); !verrors.IsCategory(err, verrors.CategoryLookup) {
		t.Errorf("err = %v, want lookup category", err)
	}
	if _, err := doc.FindAll("   "); !verrors.IsCategory(err, verrors.CategoryLookup) {
		t.Errorf("err = %v, want lookup category", err)
	}
}

func TestBreadcrumbReverseLookup(t *testing.T) {
	root := fixture()
	doc := Compile(root)

	// The root element is crumb 1 in walk order.
	node, ok := doc.Node(1)
	if !ok {
		t.Fatal("crumb 1 not found")
	}
	if node != root {
		t.Error("crumb 1 does not map back to the root node")
	}

	if _, ok := doc.Node(999); ok {
		t.Error("unexpected node for unknown crumb")
	}
}

func TestMatchedNodeIsSourceNode(t *testing.T) {
	root := fixture()
	doc := Compile(root)

	node, err := doc.Find("#root")
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if node != root {
		t.Error("matched node is not the original source node")
	}
}

func TestCompileNonElementRoot(t *testing.T) {
	doc := Compile(vdom.Text("just text"))

	if _, err := doc.Find("div"); !verrors.IsCategory(err, verrors.CategoryLookup) {
		t.Errorf("err = %v, want lookup category", err)
	}
}
