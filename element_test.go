package imwidgets

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testLayout() *Element {
	return Div([]*Element{
		Button("click", WithID("b"), WithDebounceWait(time.Second)),
		Text(WithID("b-out")),
		Br(),
		Div([]*Element{
			Icon("antd-question", WithID("i")),
			Text(WithID("i-out"), WithChildren("none")),
		}, WithID("inner")),
	}, WithID("root"))
}

func TestElement_IDs(t *testing.T) {
	t.Parallel()

	got := testLayout().IDs()
	want := []ID{"root", "b", "b-out", "inner", "i", "i-out"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("IDs() mismatch (-want +got):\n%s", diff)
	}
}

func TestElement_Find(t *testing.T) {
	t.Parallel()

	root := testLayout()

	b := root.Find("b")
	require.NotNil(t, b)
	require.Equal(t, KindButton, b.Kind)
	require.Equal(t, time.Second, b.DebounceWait)
	require.True(t, b.Clickable())

	i := root.Find("i")
	require.NotNil(t, i)
	require.Equal(t, "antd-question", i.Icon)
	require.True(t, i.Clickable())

	require.False(t, root.Find("i-out").Clickable())
	require.Nil(t, root.Find("missing"))
}

func TestElement_WalkSkipsSubtree(t *testing.T) {
	t.Parallel()

	var visited []ID
	testLayout().Walk(func(e *Element) bool {
		visited = append(visited, e.ID)
		return e.ID != "inner"
	})
	require.Equal(t, []ID{"root", "b", "b-out", "", "inner"}, visited)
}
