package vtest

import (
	"strings"
	"testing"

	verrors "github.com/vtree-dev/vtree/internal/errors"
	"github.com/vtree-dev/vtree/pkg/snapshot"
	"github.com/vtree-dev/vtree/pkg/vdom"
)

// Fire looks up a handler on the element by exact name, trying the given
// names in order, and invokes the first match with the payload fields.
// It fails with a type error when the node is not an element and a lookup
// error when none of the names has a registered handler.
func Fire(n *vdom.Node, data map[string]any, names ...string) error {
	if n == nil {
		return verrors.Newf(verrors.CategoryType, "fire target is nil")
	}
	if n.Kind != vdom.KindElement {
		return verrors.Newf(verrors.CategoryType, "fire target is a %s node, not an element", n.Kind)
	}
	for _, name := range names {
		handler, ok := n.Attrs.Handler(name)
		if !ok {
			continue
		}
		switch fn := handler.(type) {
		case func():
			fn()
			return nil
		case func(vdom.Event):
			fn(vdom.Event{Name: name, Data: data})
			return nil
		case func(vdom.Event) error:
			return fn(vdom.Event{Name: name, Data: data})
		default:
			return verrors.Newf(verrors.CategoryType, "handler is not invokable (%T)", handler).WithName(name)
		}
	}
	return verrors.Newf(verrors.CategoryLookup, "no handler registered for any event").WithName(strings.Join(names, ", "))
}

// Click fires the element's "click" handler.
func Click(n *vdom.Node) error {
	return Fire(n, nil, "click")
}

// ExpectSnapshot asserts that the tree serializes to exactly the expected
// text.
//
// Example:
//
//	vtest.ExpectSnapshot(t, vdom.Div(), "<div> </div>\n")
func ExpectSnapshot(t *testing.T, n *vdom.Node, want string) {
	t.Helper()
	got := snapshot.String(n)
	if got != want {
		t.Errorf("snapshot mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// ExpectContains asserts that the serialized tree contains the substring.
func ExpectContains(t *testing.T, n *vdom.Node, expected string) {
	t.Helper()
	got := snapshot.String(n)
	if !strings.Contains(got, expected) {
		t.Errorf("expected snapshot to contain %q, got:\n%s", expected, got)
	}
}

// ExpectWarnings asserts on the exact ordered warning sequence of a merge.
func ExpectWarnings(t *testing.T, got []vdom.Warning, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d warnings, want %d: %v", len(got), len(want), got)
	}
	for i, w := range got {
		if w.String() != want[i] {
			t.Errorf("warning %d = %q, want %q", i, w.String(), want[i])
		}
	}
}
