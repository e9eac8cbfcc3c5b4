package debouncetest

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rprtr258/imwidgets"
)

func TestHandlers_EchoClickCount(t *testing.T) {
	t.Parallel()

	handlers := map[string]imwidgets.Handler{
		"button": ButtonDebounceTest,
		"icon":   IconDebounceTest,
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for n := 0; n <= 1000; n++ {
				require.Equal(t, n, h(imwidgets.ValueOf(n)))
			}
		})
	}
}

func TestHandlers_AbsentIsZero(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, ButtonDebounceTest(imwidgets.Value{}))
	require.Equal(t, 0, IconDebounceTest(imwidgets.Value{}))
}

func TestLayout_ReferencedIDsOnce(t *testing.T) {
	t.Parallel()

	counts := map[imwidgets.ID]int{}
	for _, id := range Layout().IDs() {
		counts[id]++
	}
	for _, id := range []imwidgets.ID{ButtonID, ButtonOutputID, IconID, IconOutputID} {
		require.Equal(t, 1, counts[id], "id %q", id)
	}
}

func TestLayout_Widgets(t *testing.T) {
	t.Parallel()

	root := Layout()
	require.Equal(t, imwidgets.Style{"width": "800px", "margin": "0 auto"}, root.Style)

	button := root.Find(ButtonID)
	require.Equal(t, imwidgets.KindButton, button.Kind)
	require.Equal(t, "测试测试", button.Label)
	require.Equal(t, DebounceWait, button.DebounceWait)
	require.Equal(t, "200px", button.Style["width"])

	icon := root.Find(IconID)
	require.Equal(t, imwidgets.KindIcon, icon.Kind)
	require.Equal(t, "antd-question", icon.Icon)
	require.Equal(t, DebounceWait, icon.DebounceWait)
	require.Equal(t, "pointer", icon.Style["cursor"])

	require.Equal(t, imwidgets.KindText, root.Find(ButtonOutputID).Kind)
	require.Equal(t, imwidgets.KindText, root.Find(IconOutputID).Kind)
}

func TestNewApp_Validates(t *testing.T) {
	t.Parallel()

	app := NewApp(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Equal(t, "DebounceTest", app.Name())
	require.NoError(t, app.Validate())

	_, err := app.Handler(imwidgets.DefaultConfig())
	require.NoError(t, err)
}
