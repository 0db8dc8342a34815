package vdom

import (
	"fmt"
	"strconv"
)

// Event carries the name and payload fields a simulated or real event
// dispatch passes to a handler.
type Event struct {
	Name string
	Data map[string]any
}

// String returns the payload field formatted as a string.
func (e Event) String(key string) string {
	if v, ok := e.Data[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Int returns the payload field coerced to an int.
func (e Event) Int(key string) int {
	if v, ok := e.Data[key]; ok {
		switch val := v.(type) {
		case int:
			return val
		case float64:
			return int(val)
		case string:
			i, _ := strconv.Atoi(val)
			return i
		}
	}
	return 0
}

// Float returns the payload field coerced to a float64.
func (e Event) Float(key string) float64 {
	if v, ok := e.Data[key]; ok {
		switch val := v.(type) {
		case float64:
			return val
		case int:
			return float64(val)
		case string:
			f, _ := strconv.ParseFloat(val, 64)
			return f
		}
	}
	return 0.0
}

// Bool returns the payload field coerced to a bool.
func (e Event) Bool(key string) bool {
	if v, ok := e.Data[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
		b, _ := strconv.ParseBool(fmt.Sprintf("%v", v))
		return b
	}
	return false
}

// Raw returns the payload field without conversion.
func (e Event) Raw(key string) any {
	return e.Data[key]
}

// Mouse events

// OnClick handles click events.
func OnClick(handler any) Mod { return On("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) Mod { return On("dblclick", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) Mod { return On("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) Mod { return On("mouseleave", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) Mod { return On("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) Mod { return On("keyup", handler) }

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(handler any) Mod { return On("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) Mod { return On("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) Mod { return On("submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) Mod { return On("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) Mod { return On("blur", handler) }
