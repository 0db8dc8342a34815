package vdom

import "strings"

// Mod is a single attribute contribution to an element: an attribute,
// property, style declaration, handler, hook, key, class, or a Many
// grouping of further contributions. The set of implementations is
// closed; the merge engine matches exhaustively.
type Mod interface {
	isMod()
}

type attrMod struct {
	name  string
	value string
}

type stringPropMod struct {
	name  string
	value string
}

type boolPropMod struct {
	name  string
	value bool
}

type styleMod struct {
	name  string
	value string
}

type handlerMod struct {
	name string
	fn   any
}

type hookMod struct {
	name    string
	payload any
}

type keyMod struct {
	value string
}

type classMod struct {
	value string
}

type manyMod struct {
	mods []Mod
}

func (attrMod) isMod()       {}
func (stringPropMod) isMod() {}
func (boolPropMod) isMod()   {}
func (styleMod) isMod()      {}
func (handlerMod) isMod()    {}
func (hookMod) isMod()       {}
func (keyMod) isMod()        {}
func (classMod) isMod()      {}
func (manyMod) isMod()       {}

// Attr contributes a plain attribute. Attr("class", ...) is routed to the
// class bucket and participates in class combination.
func Attr(name, value string) Mod { return attrMod{name: name, value: value} }

// StringProp contributes a string property. Properties live in a separate
// namespace from attributes.
func StringProp(name, value string) Mod { return stringPropMod{name: name, value: value} }

// BoolProp contributes a boolean property.
func BoolProp(name string, value bool) Mod { return boolPropMod{name: name, value: value} }

// Style contributes a single style declaration. Declaration order is
// preserved in output.
func Style(name, value string) Mod { return styleMod{name: name, value: value} }

// On contributes an event handler under the given event name. The handler
// is stored opaquely and identified by name only.
func On(event string, handler any) Mod { return handlerMod{name: event, fn: handler} }

// Hook contributes a named behavior payload. The payload's dynamic type is
// its retrieval token; see HookValue.
func Hook(name string, payload any) Mod { return hookMod{name: name, payload: payload} }

// Key contributes a stable identity hint for reordering. At most one
// survives per element; the last value wins.
func Key(value string) Mod { return keyMod{value: value} }

// Class contributes class names, joined with spaces. Class contributions
// that share an enclosing Many combine; ungrouped ones override.
func Class(classes ...string) Mod { return classMod{value: strings.Join(classes, " ")} }

// Many groups contributions into a composable bundle. Grouping is the
// opt-in that lets class and style fragments combine instead of override;
// it may nest to arbitrary depth and flattens before merge.
func Many(mods ...Mod) Mod { return manyMod{mods: mods} }
