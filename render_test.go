package imwidgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func attrOf(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func TestStyle_String(t *testing.T) {
	t.Parallel()

	s := Style{"padding": "5px", "border": "1px solid grey", "cursor": "pointer"}
	require.Equal(t, "border: 1px solid grey; cursor: pointer; padding: 5px;", s.String())
	require.Equal(t, "", Style{}.String())
}

func TestElement_HTMLButton(t *testing.T) {
	t.Parallel()

	got, err := Button("测试测试", WithID("b"), WithStyle(Style{"width": "200px"})).HTML()
	require.NoError(t, err)
	require.Equal(t,
		`<button id="b" class="imweb-btn" style="width: 200px;" data-imweb-click="" type="button">测试测试</button>`,
		got)
}

func TestElement_HTMLTree(t *testing.T) {
	t.Parallel()

	out, err := testLayout().HTML()
	require.NoError(t, err)

	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)

	for _, id := range []string{"root", "b", "b-out", "inner", "i", "i-out"} {
		require.NotNil(t, findByID(doc, id), "element %q not rendered", id)
	}

	icon := findByID(doc, "i")
	require.Equal(t, "span", icon.Data)
	_, clickable := attrOf(icon, "data-imweb-click")
	require.True(t, clickable)
	require.NotNil(t, icon.FirstChild)
	require.Equal(t, "svg", icon.FirstChild.Data)

	text := findByID(doc, "i-out")
	_, clickable = attrOf(text, "data-imweb-click")
	require.False(t, clickable)
	require.Equal(t, "none", text.FirstChild.Data)
}

func TestElement_RenderUsesChildren(t *testing.T) {
	t.Parallel()

	children := func(id ID) (string, bool) {
		if id == "out" {
			return "<b>7</b>", true
		}
		return "", false
	}

	got, err := Text(WithID("out"), WithChildren("initial")).render(children)
	require.NoError(t, err)
	require.Equal(t, `<span id="out" class="imweb-text">&lt;b&gt;7&lt;/b&gt;</span>`, got)

	got, err = Text(WithID("other"), WithChildren("initial")).render(children)
	require.NoError(t, err)
	require.Equal(t, `<span id="other" class="imweb-text">initial</span>`, got)
}

func TestElement_ClassName(t *testing.T) {
	t.Parallel()

	got, err := Text(WithID("t"), WithClassName("big")).HTML()
	require.NoError(t, err)
	require.Equal(t, `<span id="t" class="imweb-text big"></span>`, got)

	got, err = Br().HTML()
	require.NoError(t, err)
	require.Equal(t, `<br/>`, got)
}
