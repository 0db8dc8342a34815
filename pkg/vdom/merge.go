package vdom

import (
	"fmt"
	"io"
	"os"
)

// Warning is a non-fatal merge conflict: a same-name override outside a
// Many grouping, or a class conflict between un-co-grouped contributions.
// Conflicts always resolve last-writer-wins; warnings only advise.
type Warning struct {
	Bucket string // "attributes", "string properties", "bool properties", "handlers", "hooks", "classes"
	Name   string // conflicting name (empty for class conflicts)
	First  string // earlier class value (class conflicts only)
	Second string // later class value (class conflicts only)
}

// String renders the warning in its stable diagnostic form.
func (w Warning) String() string {
	if w.Bucket == "classes" {
		return fmt.Sprintf("WARNING: not combining classes (%q) (%q)", w.First, w.Second)
	}
	return fmt.Sprintf("WARNING: not combining %s (%s)", w.Bucket, w.Name)
}

// warningOutput receives warnings emitted by the element constructors.
// Merge itself stays pure and returns its warning log.
var warningOutput io.Writer = os.Stderr

// SetWarningOutput redirects constructor-emitted warnings. Passing nil
// restores the default (os.Stderr).
func SetWarningOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	warningOutput = w
}

func emitWarnings(warnings []Warning) {
	for _, w := range warnings {
		fmt.Fprintln(warningOutput, w)
	}
}

// flatMod is a flattened contribution tagged with the id of its outermost
// enclosing Many (0 = ungrouped). Two contributions share an enclosing
// group exactly when these ids are equal and nonzero, since groups nest
// as a tree.
type flatMod struct {
	mod   Mod
	group int
}

func flatten(mods []Mod, out []flatMod, outer int, nextGroup *int) []flatMod {
	for _, m := range mods {
		if m == nil {
			continue
		}
		if g, ok := m.(manyMod); ok {
			id := outer
			if id == 0 {
				*nextGroup++
				id = *nextGroup
			}
			out = flatten(g.mods, out, id, nextGroup)
			continue
		}
		out = append(out, flatMod{mod: m, group: outer})
	}
	return out
}

func coGrouped(a, b int) bool {
	return a != 0 && a == b
}

// merger accumulates the canonical AttributeSet during the single
// left-to-right pass. lastGroup remembers, per bucket/name, which group
// the current value came from so conflicts are O(1) checks.
type merger struct {
	set       AttributeSet
	warnings  []Warning
	lastGroup map[string]int

	classSeen  bool
	classIdx   int
	class      string
	classGroup int
}

// Merge reduces an ordered, arbitrarily nested contribution list into a
// canonical AttributeSet plus an ordered log of conflict warnings.
// Warnings are advisory; every conflict resolves last-writer-wins.
func Merge(mods []Mod) (AttributeSet, []Warning) {
	var nextGroup int
	flat := flatten(mods, nil, 0, &nextGroup)

	m := merger{lastGroup: make(map[string]int)}
	for _, f := range flat {
		switch v := f.mod.(type) {
		case attrMod:
			if v.name == "class" {
				m.mergeClass(v.value, f.group)
				break
			}
			m.set.Attributes = m.mergePair("attributes", m.set.Attributes, v.name, v.value, f.group)
		case classMod:
			m.mergeClass(v.value, f.group)
		case stringPropMod:
			m.set.StringProps = m.mergePair("string properties", m.set.StringProps, v.name, v.value, f.group)
		case boolPropMod:
			m.mergeBoolProp(v.name, v.value, f.group)
		case styleMod:
			m.mergeStyle(v.name, v.value)
		case handlerMod:
			m.mergeHandler(v.name, v.fn, f.group)
		case hookMod:
			m.mergeHook(v.name, v.payload, f.group)
		case keyMod:
			m.set.Key = v.value
		}
	}
	if m.classSeen {
		m.set.Attributes[m.classIdx].Value = m.class
	}
	return m.set, m.warnings
}

// conflict records the standard override warning unless both writers sit
// under a shared Many.
func (m *merger) conflict(bucket, name string, group int) {
	key := bucket + "/" + name
	if !coGrouped(m.lastGroup[key], group) {
		m.warnings = append(m.warnings, Warning{Bucket: bucket, Name: name})
	}
	m.lastGroup[key] = group
}

func (m *merger) mergePair(bucket string, pairs []Pair, name, value string, group int) []Pair {
	for i := range pairs {
		if pairs[i].Name == name {
			m.conflict(bucket, name, group)
			pairs[i].Value = value
			return pairs
		}
	}
	m.lastGroup[bucket+"/"+name] = group
	return append(pairs, Pair{Name: name, Value: value})
}

func (m *merger) mergeBoolProp(name string, value bool, group int) {
	for i := range m.set.BoolProps {
		if m.set.BoolProps[i].Name == name {
			m.conflict("bool properties", name, group)
			m.set.BoolProps[i].Value = value
			return
		}
	}
	m.lastGroup["bool properties/"+name] = group
	m.set.BoolProps = append(m.set.BoolProps, BoolPair{Name: name, Value: value})
}

// mergeStyle keeps all distinct declarations in order; a colliding name
// silently overwrites in place. Style collision is not diagnosed.
func (m *merger) mergeStyle(name, value string) {
	for i := range m.set.Styles {
		if m.set.Styles[i].Name == name {
			m.set.Styles[i].Value = value
			return
		}
	}
	m.set.Styles = append(m.set.Styles, Pair{Name: name, Value: value})
}

func (m *merger) mergeHandler(name string, fn any, group int) {
	for i := range m.set.Handlers {
		if m.set.Handlers[i].Name == name {
			m.conflict("handlers", name, group)
			m.set.Handlers[i].Fn = fn
			return
		}
	}
	m.lastGroup["handlers/"+name] = group
	m.set.Handlers = append(m.set.Handlers, HandlerEntry{Name: name, Fn: fn})
}

func (m *merger) mergeHook(name string, payload any, group int) {
	for i := range m.set.Hooks {
		if m.set.Hooks[i].Name == name {
			m.conflict("hooks", name, group)
			m.set.Hooks[i].Payload = payload
			return
		}
	}
	m.lastGroup["hooks/"+name] = group
	m.set.Hooks = append(m.set.Hooks, HookEntry{Name: name, Payload: payload})
}

// mergeClass accumulates the class attribute. Co-grouped contributions
// combine space-joined in contribution order; un-co-grouped ones warn and
// override. The final value lands in attributes["class"] at the position
// of the first class contribution.
func (m *merger) mergeClass(value string, group int) {
	if !m.classSeen {
		m.classSeen = true
		m.set.Attributes = append(m.set.Attributes, Pair{Name: "class"})
		m.classIdx = len(m.set.Attributes) - 1
		m.class = value
		m.classGroup = group
		return
	}
	if coGrouped(m.classGroup, group) {
		switch {
		case m.class == "":
			m.class = value
		case value != "":
			m.class += " " + value
		}
		return
	}
	m.warnings = append(m.warnings, Warning{Bucket: "classes", First: m.class, Second: value})
	m.class = value
	m.classGroup = group
}
