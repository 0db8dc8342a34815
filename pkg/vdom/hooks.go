package vdom

import (
	verrors "github.com/vtree-dev/vtree/internal/errors"
)

// HookValue retrieves a hook payload by name, checked against the type
// the caller expects. The payload's dynamic type is the token: a mismatch
// fails loudly instead of returning a zero value silently.
func HookValue[T any](n *Node, name string) (T, error) {
	var zero T
	if n == nil {
		return zero, verrors.Newf(verrors.CategoryType, "hook requested on nil node").WithName(name)
	}
	if n.Kind != KindElement {
		return zero, verrors.Newf(verrors.CategoryType, "hook requested on %s node", n.Kind).WithName(name)
	}
	payload, ok := n.Attrs.Hook(name)
	if !ok {
		return zero, verrors.Newf(verrors.CategoryLookup, "no hook registered").WithName(name)
	}
	value, ok := payload.(T)
	if !ok {
		return zero, verrors.Newf(verrors.CategoryType, "hook payload is %T, not %T", payload, zero).WithName(name)
	}
	return value, nil
}
