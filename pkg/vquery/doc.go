// Package vquery converts a virtual node tree into a generic document
// structure supporting selector-based lookup.
//
// Compile tags each emitted element with a breadcrumb id so that a matched
// generic element can be mapped back to its originating Node. Selectors
// are space-separated descendant chains of tag#id.class[name=value]
// pieces; Find fails loudly when an exact result is required and nothing
// matches.
package vquery
