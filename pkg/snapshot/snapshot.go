package snapshot

import (
	"fmt"
	"io"
	"strings"

	"github.com/vtree-dev/vtree/pkg/vdom"
)

const (
	// lineWidth is the budget for a single-line opening tag; an opening
	// tag of this length or more at the current indentation re-renders
	// with one attribute per line.
	lineWidth = 100

	// textWidth is the budget for collapsing text-only children onto the
	// opening-tag line.
	textWidth = 80
)

// Config configures the snapshot printer.
type Config struct {
	// ElideStyles abbreviates style blocks as style={...} instead of
	// enumerating declarations. Display-only; layout is otherwise
	// unaffected.
	ElideStyles bool
}

// Printer renders Node trees into their canonical textual form. Output is
// deterministic: the same tree always produces byte-identical text.
type Printer struct {
	config Config
}

// New creates a Printer with the given configuration.
func New(config Config) *Printer {
	return &Printer{config: config}
}

// String renders a tree with the default configuration.
func String(n *vdom.Node) string {
	return New(Config{}).String(n)
}

// String renders the tree to its canonical text.
func (p *Printer) String(n *vdom.Node) string {
	var lines []string
	p.writeNode(&lines, n, 0)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// WriteTo streams the canonical text to the given writer.
func (p *Printer) WriteTo(w io.Writer, n *vdom.Node) error {
	_, err := io.WriteString(w, p.String(n))
	return err
}

func (p *Printer) writeNode(lines *[]string, n *vdom.Node, indent int) {
	if n == nil {
		return
	}
	pad := strings.Repeat(" ", indent)
	switch n.Kind {
	case vdom.KindText:
		*lines = append(*lines, pad+n.Text)
	case vdom.KindWidget:
		info := n.WidgetID
		if n.WidgetInfo != nil {
			info = n.WidgetInfo()
		}
		*lines = append(*lines, pad+"<widget "+info+" />")
	case vdom.KindElement:
		p.writeElement(lines, n, indent)
	}
}

func (p *Printer) writeElement(lines *[]string, n *vdom.Node, indent int) {
	pad := strings.Repeat(" ", indent)
	parts := p.openParts(&n.Attrs)
	single := openSingle(n.Tag, parts)

	var open []string
	if len(single) < lineWidth-indent {
		open = []string{pad + single}
	} else {
		open = p.openMulti(n.Tag, &n.Attrs, indent, parts)
	}

	if texts, ok := collapsible(n, indent); ok {
		last := open[len(open)-1]
		if len(texts) == 0 {
			last += " </" + n.Tag + ">"
		} else {
			last += " " + strings.Join(texts, " ") + " </" + n.Tag + ">"
		}
		open[len(open)-1] = last
		*lines = append(*lines, open...)
		return
	}

	*lines = append(*lines, open...)
	for _, child := range n.Children {
		p.writeNode(lines, child, indent+2)
	}
	*lines = append(*lines, pad+"</"+n.Tag+">")
}

// openParts builds the opening-tag fragments in fixed order: key,
// attributes, string properties, bool properties, hooks, handlers, style.
// The style fragment is in its single-line form.
func (p *Printer) openParts(attrs *vdom.AttributeSet) []string {
	var parts []string
	if attrs.Key != "" {
		parts = append(parts, "@key="+attrs.Key)
	}
	for _, a := range attrs.Attributes {
		parts = append(parts, fmt.Sprintf("%s=%q", a.Name, a.Value))
	}
	for _, sp := range attrs.StringProps {
		parts = append(parts, fmt.Sprintf("#%s=%q", sp.Name, sp.Value))
	}
	for _, bp := range attrs.BoolProps {
		parts = append(parts, fmt.Sprintf("#%s=%t", bp.Name, bp.Value))
	}
	for _, h := range attrs.Hooks {
		parts = append(parts, fmt.Sprintf("%s=%v", h.Name, h.Payload))
	}
	for _, h := range attrs.Handlers {
		parts = append(parts, h.Name+"={handler}")
	}
	if len(attrs.Styles) > 0 {
		parts = append(parts, p.styleSingle(attrs.Styles))
	}
	return parts
}

func (p *Printer) styleSingle(styles []vdom.Pair) string {
	if p.config.ElideStyles {
		return "style={...}"
	}
	var b strings.Builder
	b.WriteString("style={")
	for _, s := range styles {
		b.WriteString(" " + s.Name + ": " + s.Value + ";")
	}
	b.WriteString(" }")
	return b.String()
}

func openSingle(tag string, parts []string) string {
	if len(parts) == 0 {
		return "<" + tag + ">"
	}
	return "<" + tag + " " + strings.Join(parts, " ") + ">"
}

// openMulti renders the opening tag with one fragment per line, aligned
// under the first attribute column. Style declarations expand to one line
// each inside the style block.
func (p *Printer) openMulti(tag string, attrs *vdom.AttributeSet, indent int, parts []string) []string {
	pad := strings.Repeat(" ", indent)
	if len(parts) == 0 {
		return []string{pad + "<" + tag + ">"}
	}
	cpad := strings.Repeat(" ", indent+len(tag)+2)

	hasStyleBlock := len(attrs.Styles) > 0 && !p.config.ElideStyles
	plain := parts
	if hasStyleBlock {
		plain = parts[:len(parts)-1]
	}

	var out []string
	emit := func(s string) {
		if len(out) == 0 {
			out = append(out, pad+"<"+tag+" "+s)
		} else {
			out = append(out, cpad+s)
		}
	}
	for _, part := range plain {
		emit(part)
	}
	if hasStyleBlock {
		emit("style={")
		for _, s := range attrs.Styles {
			out = append(out, cpad+"  "+s.Name+": "+s.Value+";")
		}
		out = append(out, cpad+"}")
	}
	out[len(out)-1] += ">"
	return out
}

// collapsible reports whether every child is a text node whose combined
// content fits the text budget at this indentation. An element with no
// children collapses trivially.
func collapsible(n *vdom.Node, indent int) ([]string, bool) {
	total := 0
	texts := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		if child.Kind != vdom.KindText {
			return nil, false
		}
		texts = append(texts, child.Text)
		total += len(child.Text)
	}
	if total < textWidth-indent {
		return texts, true
	}
	return nil, false
}
