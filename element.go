package imwidgets

import (
	"time"
)

type ID string

type Kind string

const (
	KindDiv    Kind = "div"
	KindButton Kind = "button"
	KindText   Kind = "text"
	KindIcon   Kind = "icon"
	KindBr     Kind = "br"
)

// Style maps CSS property names to values, e.g. {"width": "200px"}.
type Style map[string]string

// Element is a node of the static page layout. Layouts are built once and
// must not be mutated after the app starts serving.
type Element struct {
	Kind      Kind
	ID        ID
	Style     Style
	ClassName string
	// Label is the button caption.
	Label string
	// Icon is the icon name, see Icons.
	Icon string
	// DebounceWait is the quiet period after the last click before the click
	// is counted. Zero counts every click.
	DebounceWait time.Duration
	// Children is the initial text content of text elements.
	Children string
	Elements []*Element
}

type Option func(*Element)

func WithID(id ID) Option {
	return func(e *Element) { e.ID = id }
}

func WithStyle(style Style) Option {
	return func(e *Element) { e.Style = style }
}

func WithClassName(className string) Option {
	return func(e *Element) { e.ClassName = className }
}

func WithDebounceWait(wait time.Duration) Option {
	return func(e *Element) { e.DebounceWait = wait }
}

// WithChildren sets the initial text of a text element.
func WithChildren(children string) Option {
	return func(e *Element) { e.Children = children }
}

func newElement(kind Kind, opts []Option) *Element {
	e := &Element{Kind: kind}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func Div(elements []*Element, opts ...Option) *Element {
	e := newElement(KindDiv, opts)
	e.Elements = elements
	return e
}

func Button(label string, opts ...Option) *Element {
	e := newElement(KindButton, opts)
	e.Label = label
	return e
}

func Text(opts ...Option) *Element {
	return newElement(KindText, opts)
}

func Icon(name string, opts ...Option) *Element {
	e := newElement(KindIcon, opts)
	e.Icon = name
	return e
}

func Br() *Element {
	return &Element{Kind: KindBr}
}

// Clickable reports whether the element emits nClicks.
func (e *Element) Clickable() bool {
	return e.Kind == KindButton || e.Kind == KindIcon
}

// Walk visits e and its descendants depth first. Returning false from fn
// skips the element's subtree.
func (e *Element) Walk(fn func(*Element) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, child := range e.Elements {
		child.Walk(fn)
	}
}

func (e *Element) Find(id ID) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if found != nil {
			return false
		}
		if el.ID == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// IDs returns every non-empty id in document order, duplicates included.
func (e *Element) IDs() []ID {
	var ids []ID
	e.Walk(func(el *Element) bool {
		if el.ID != "" {
			ids = append(ids, el.ID)
		}
		return true
	})
	return ids
}
