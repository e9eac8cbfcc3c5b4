package imwidgets

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// childrenFunc returns the current children of a text or div element, if any
// callback has set them.
type childrenFunc func(ID) (string, bool)

func noChildren(ID) (string, bool) { return "", false }

func (s Style) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s: %s;", k, s[k])
	}
	return sb.String()
}

func newNode(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func (e *Element) commonAttrs(class string) []html.Attribute {
	var attrs []html.Attribute
	if e.ID != "" {
		attrs = append(attrs, attr("id", string(e.ID)))
	}
	if e.ClassName != "" {
		class = strings.TrimSpace(class + " " + e.ClassName)
	}
	if class != "" {
		attrs = append(attrs, attr("class", class))
	}
	if len(e.Style) > 0 {
		attrs = append(attrs, attr("style", e.Style.String()))
	}
	if e.Clickable() {
		attrs = append(attrs, attr("data-imweb-click", ""))
	}
	return attrs
}

func (e *Element) node(children childrenFunc) *html.Node {
	switch e.Kind {
	case KindBr:
		return newNode(atom.Br)
	case KindButton:
		n := newNode(atom.Button, append(e.commonAttrs("imweb-btn"), attr("type", "button"))...)
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.Label})
		return n
	case KindText:
		n := newNode(atom.Span, e.commonAttrs("imweb-text")...)
		text := e.Children
		if c, ok := children(e.ID); ok {
			text = c
		}
		if text != "" {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		}
		return n
	case KindIcon:
		n := newNode(atom.Span, append(e.commonAttrs("imweb-icon"), attr("role", "img"), attr("aria-label", e.Icon))...)
		svg := newNode(atom.Svg,
			attr("viewBox", "64 64 896 896"),
			attr("width", "1em"),
			attr("height", "1em"),
			attr("fill", "currentColor"),
		)
		svg.Namespace = "svg"
		for _, d := range Icons[e.Icon] {
			svg.AppendChild(&html.Node{
				Type:      html.ElementNode,
				Data:      "path",
				Namespace: "svg",
				Attr:      []html.Attribute{attr("d", d)},
			})
		}
		n.AppendChild(svg)
		return n
	default:
		n := newNode(atom.Div, e.commonAttrs("")...)
		if c, ok := children(e.ID); ok {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: c})
			return n
		}
		for _, child := range e.Elements {
			n.AppendChild(child.node(children))
		}
		return n
	}
}

func (e *Element) render(children childrenFunc) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node(children)); err != nil {
		return "", fmt.Errorf("render %s %q: %w", e.Kind, e.ID, err)
	}
	return buf.String(), nil
}

// HTML renders the element with its initial content.
func (e *Element) HTML() (string, error) {
	return e.render(noChildren)
}
