package vdom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// handlersByName compares handler entries by name and presence only, the
// way the model defines handler identity.
var handlersByName = cmp.Comparer(func(a, b HandlerEntry) bool {
	return a.Name == b.Name
})

func warningStrings(warnings []Warning) []string {
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.String())
	}
	return out
}

func TestMergeLastWriterWinsUngrouped(t *testing.T) {
	set, warnings := Merge([]Mod{Attr("id", "a"), Attr("id", "b")})

	if got, _ := set.Attr("id"); got != "b" {
		t.Errorf("attributes[id] = %q, want %q", got, "b")
	}
	if len(set.Attributes) != 1 {
		t.Errorf("got %d attribute entries, want 1", len(set.Attributes))
	}
	want := []string{"WARNING: not combining attributes (id)"}
	if diff := cmp.Diff(want, warningStrings(warnings)); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeSameNameInsideGroupNoWarning(t *testing.T) {
	set, warnings := Merge([]Mod{Many(Attr("id", "a"), Attr("id", "b"))})

	if got, _ := set.Attr("id"); got != "b" {
		t.Errorf("attributes[id] = %q, want %q", got, "b")
	}
	if len(warnings) != 0 {
		t.Errorf("got warnings %v, want none", warnings)
	}
}

func TestMergeBucketWarnings(t *testing.T) {
	tests := []struct {
		name string
		mods []Mod
		want string
	}{
		{
			name: "string properties",
			mods: []Mod{StringProp("value", "a"), StringProp("value", "b")},
			want: "WARNING: not combining string properties (value)",
		},
		{
			name: "bool properties",
			mods: []Mod{BoolProp("checked", true), BoolProp("checked", false)},
			want: "WARNING: not combining bool properties (checked)",
		},
		{
			name: "handlers",
			mods: []Mod{On("click", func() {}), On("click", func() {})},
			want: "WARNING: not combining handlers (click)",
		},
		{
			name: "hooks",
			mods: []Mod{Hook("tooltip", 1), Hook("tooltip", 2)},
			want: "WARNING: not combining hooks (tooltip)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, warnings := Merge(tt.mods)
			if len(warnings) != 1 || warnings[0].String() != tt.want {
				t.Errorf("warnings = %v, want [%s]", warnings, tt.want)
			}
		})
	}
}

func TestMergeClassCombinesInsideGroup(t *testing.T) {
	set, warnings := Merge([]Mod{Many(Class("a"), Class("b"))})

	if got, _ := set.Attr("class"); got != "a b" {
		t.Errorf("attributes[class] = %q, want %q", got, "a b")
	}
	if len(warnings) != 0 {
		t.Errorf("got warnings %v, want none", warnings)
	}
}

func TestMergeClassOverridesAcrossGroupBoundary(t *testing.T) {
	set, warnings := Merge([]Mod{Many(Class("a"), Class("b")), Class("c")})

	if got, _ := set.Attr("class"); got != "c" {
		t.Errorf("attributes[class] = %q, want %q", got, "c")
	}
	want := []string{`WARNING: not combining classes ("a b") ("c")`}
	if diff := cmp.Diff(want, warningStrings(warnings)); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeClassUngroupedWarnsPerConflict(t *testing.T) {
	_, warnings := Merge([]Mod{Class("a"), Class("b"), Class("c")})

	want := []string{
		`WARNING: not combining classes ("a") ("b")`,
		`WARNING: not combining classes ("b") ("c")`,
	}
	if diff := cmp.Diff(want, warningStrings(warnings)); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeNestedGroupsShareOuterGroup(t *testing.T) {
	set, warnings := Merge([]Mod{Many(Many(Class("a")), Many(Class("b")))})

	if got, _ := set.Attr("class"); got != "a b" {
		t.Errorf("attributes[class] = %q, want %q", got, "a b")
	}
	if len(warnings) != 0 {
		t.Errorf("got warnings %v, want none", warnings)
	}
}

func TestMergeSeparateTopLevelGroupsDoNotCombine(t *testing.T) {
	set, warnings := Merge([]Mod{Many(Class("a")), Many(Class("b"))})

	if got, _ := set.Attr("class"); got != "b" {
		t.Errorf("attributes[class] = %q, want %q", got, "b")
	}
	want := []string{`WARNING: not combining classes ("a") ("b")`}
	if diff := cmp.Diff(want, warningStrings(warnings)); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeClassAttrRoutesToClassBucket(t *testing.T) {
	set, warnings := Merge([]Mod{Attr("class", "x"), Class("y")})

	if got, _ := set.Attr("class"); got != "y" {
		t.Errorf("attributes[class] = %q, want %q", got, "y")
	}
	if len(set.Attributes) != 1 {
		t.Errorf("got %d attribute entries, want 1", len(set.Attributes))
	}
	want := []string{`WARNING: not combining classes ("x") ("y")`}
	if diff := cmp.Diff(want, warningStrings(warnings)); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeClassKeepsFirstPosition(t *testing.T) {
	set, _ := Merge([]Mod{Attr("id", "i"), Class("c"), Attr("href", "h")})

	want := []Pair{{"id", "i"}, {"class", "c"}, {"href", "h"}}
	if diff := cmp.Diff(want, set.Attributes); diff != "" {
		t.Errorf("attribute order mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeStylesKeepOrderAndOverwriteSilently(t *testing.T) {
	set, warnings := Merge([]Mod{
		Style("color", "red"),
		Style("width", "10px"),
		Style("color", "blue"),
	})

	want := []Pair{{"color", "blue"}, {"width", "10px"}}
	if diff := cmp.Diff(want, set.Styles); diff != "" {
		t.Errorf("styles mismatch (-want +got):\n%s", diff)
	}
	if len(warnings) != 0 {
		t.Errorf("got warnings %v, want none", warnings)
	}
}

func TestMergeKeyLastWinsSilently(t *testing.T) {
	set, warnings := Merge([]Mod{Key("first"), Key("second")})

	if set.Key != "second" {
		t.Errorf("key = %q, want %q", set.Key, "second")
	}
	if len(warnings) != 0 {
		t.Errorf("got warnings %v, want none", warnings)
	}
}

func TestMergeOverrideKeepsOriginalPosition(t *testing.T) {
	set, _ := Merge([]Mod{
		Attr("id", "a"),
		Attr("href", "h"),
		Attr("id", "b"),
	})

	want := []Pair{{"id", "b"}, {"href", "h"}}
	if diff := cmp.Diff(want, set.Attributes); diff != "" {
		t.Errorf("attribute order mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeGroupDoesNotLeakAcrossUnrelatedEntries(t *testing.T) {
	// Two contributions in different top-level groups conflict like
	// ungrouped ones do.
	_, warnings := Merge([]Mod{
		Many(Attr("id", "a")),
		Many(Attr("id", "b")),
	})

	want := []string{"WARNING: not combining attributes (id)"}
	if diff := cmp.Diff(want, warningStrings(warnings)); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeIdempotentOnCanonicalSet(t *testing.T) {
	onClick := func() {}
	set, _ := Merge([]Mod{
		Key("row-1"),
		Attr("id", "main"),
		Class("card"),
		StringProp("value", "hello"),
		BoolProp("checked", true),
		Style("color", "red"),
		Style("width", "10px"),
		On("click", onClick),
		Hook("tooltip", "above"),
	})

	again, warnings := Merge(set.Mods())
	if len(warnings) != 0 {
		t.Fatalf("re-merge emitted warnings: %v", warnings)
	}
	if diff := cmp.Diff(set, again, handlersByName); diff != "" {
		t.Errorf("re-merge changed the set (-first +second):\n%s", diff)
	}
}

func TestMergeNilModsIgnored(t *testing.T) {
	set, warnings := Merge([]Mod{nil, Attr("id", "a"), nil})

	if got, _ := set.Attr("id"); got != "a" {
		t.Errorf("attributes[id] = %q, want %q", got, "a")
	}
	if len(warnings) != 0 {
		t.Errorf("got warnings %v, want none", warnings)
	}
}

func TestWarningString(t *testing.T) {
	tests := []struct {
		name    string
		warning Warning
		want    string
	}{
		{
			name:    "attribute conflict",
			warning: Warning{Bucket: "attributes", Name: "id"},
			want:    "WARNING: not combining attributes (id)",
		},
		{
			name:    "class conflict",
			warning: Warning{Bucket: "classes", First: "a b", Second: "c"},
			want:    `WARNING: not combining classes ("a b") ("c")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.warning.String(); got != tt.want {
				t.Errorf("Warning.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
