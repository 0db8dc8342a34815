// Package vdom provides the immutable virtual node model and the
// attribute-merge engine.
//
// # Core Types
//
// Node is the fundamental building block representing text, elements, and
// opaque widgets. AttributeSet is the canonical, merge-resolved attribute
// state stored on an element. Mod is a single attribute contribution;
// Many groups contributions into a composable bundle.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(ID("main"), Class("card"),
//	    H1("Title"),
//	    P("Content"),
//	    OnClick(handler),
//	)
//
// # Merging
//
// Merge reduces an ordered, arbitrarily nested contribution list into a
// canonical AttributeSet. Same-name contributions resolve last-writer-wins;
// conflicts outside a shared Many emit advisory warnings. Class and style
// contributions gathered under a shared Many combine instead of override,
// so silent stacking is opt-in rather than the default.
package vdom
