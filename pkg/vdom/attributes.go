package vdom

// Identity attributes

// ID sets the id attribute.
func ID(id string) Mod { return Attr("id", id) }

// TitleAttr sets the title attribute (named to avoid conflict with a
// Title element factory).
func TitleAttr(title string) Mod { return Attr("title", title) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Mod { return Attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Mod { return Attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Mod { return Attr("aria-label", label) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Mod { return Attr("href", url) }

// Target sets the target attribute.
func Target(target string) Mod { return Attr("target", target) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Mod { return Attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Mod { return Attr("alt", text) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Mod { return Attr("name", name) }

// Type sets the type attribute.
func Type(t string) Mod { return Attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Mod { return Attr("placeholder", text) }

// For sets the for attribute (for labels).
func For(id string) Mod { return Attr("for", id) }

// String properties

// Value sets the value string property.
func Value(value string) Mod { return StringProp("value", value) }

// Boolean properties

// Disabled sets the disabled boolean property.
func Disabled() Mod { return BoolProp("disabled", true) }

// Checked sets the checked boolean property.
func Checked() Mod { return BoolProp("checked", true) }

// Required sets the required boolean property.
func Required() Mod { return BoolProp("required", true) }

// Hidden sets the hidden boolean property.
func Hidden() Mod { return BoolProp("hidden", true) }

// Conditional contributions

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Mod {
	if condition {
		return Class(class)
	}
	return Many()
}

// If returns the contribution if condition is true, an empty grouping
// otherwise.
func If(condition bool, m Mod) Mod {
	if condition {
		return m
	}
	return Many()
}
