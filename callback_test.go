package imwidgets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func echo(v Value) any { return v.IntOr(0) }

func TestValue(t *testing.T) {
	t.Parallel()

	var absent Value
	require.False(t, absent.IsSet())
	_, ok := absent.Int()
	require.False(t, ok)
	require.Equal(t, 0, absent.IntOr(0))
	require.Equal(t, -1, absent.IntOr(-1))

	v := ValueOf(3)
	require.True(t, v.IsSet())
	require.Equal(t, 3, v.IntOr(0))

	// zero clicks is still a value
	require.Equal(t, 0, ValueOf(0).IntOr(5))

	require.Equal(t, 5, ValueOf("3").IntOr(5))
	require.Equal(t, "3", ValueOf("3").Any())
}

func TestCallback_Call(t *testing.T) {
	t.Parallel()

	cb := &callback{in: Input{"b", PropNClicks}, out: Output{"o", PropChildren}, fn: echo}
	got, err := cb.call(ValueOf(4))
	require.NoError(t, err)
	require.Equal(t, "4", got)

	cb.fn = func(Value) any { return nil }
	got, err = cb.call(Value{})
	require.NoError(t, err)
	require.Equal(t, "", got)

	cb.fn = func(Value) any { panic("boom") }
	_, err = cb.call(Value{})
	require.ErrorContains(t, err, "boom")
	require.ErrorContains(t, err, "b.nClicks -> o.children")
}

func TestApp_Validate(t *testing.T) {
	t.Parallel()

	in := Input{ID: "b", Property: PropNClicks}
	out := Output{ID: "b-out", Property: PropChildren}

	tests := []struct {
		name    string
		opts    []AppOption
		layout  *Element
		setup   func(*App)
		wantErr error
	}{
		{
			name:   "valid",
			layout: testLayout(),
			setup:  func(a *App) { a.Callback(out, in, echo) },
		},
		{
			name:    "no layout",
			setup:   func(a *App) {},
			wantErr: ErrNoLayout,
		},
		{
			name: "duplicate id",
			layout: Div([]*Element{
				Text(WithID("x")),
				Text(WithID("x")),
			}),
			setup:   func(a *App) {},
			wantErr: ErrDuplicateID,
		},
		{
			name:    "unknown input id",
			layout:  testLayout(),
			setup:   func(a *App) { a.Callback(out, Input{ID: "ghost", Property: PropNClicks}, echo) },
			wantErr: ErrUnknownID,
		},
		{
			name:    "unknown output id",
			layout:  testLayout(),
			setup:   func(a *App) { a.Callback(Output{ID: "ghost", Property: PropChildren}, in, echo) },
			wantErr: ErrUnknownID,
		},
		{
			name:   "unknown id suppressed",
			opts:   []AppOption{SuppressCallbackExceptions()},
			layout: testLayout(),
			setup:  func(a *App) { a.Callback(Output{ID: "ghost", Property: PropChildren}, in, echo) },
		},
		{
			name:    "nClicks on text",
			layout:  testLayout(),
			setup:   func(a *App) { a.Callback(out, Input{ID: "i-out", Property: PropNClicks}, echo) },
			wantErr: ErrUnsupportedProperty,
		},
		{
			name:    "unsupported output property",
			layout:  testLayout(),
			setup:   func(a *App) { a.Callback(Output{ID: "b-out", Property: "style"}, in, echo) },
			wantErr: ErrUnsupportedProperty,
		},
		{
			name:    "children on button",
			layout:  testLayout(),
			setup:   func(a *App) { a.Callback(Output{ID: "b", Property: PropChildren}, in, echo) },
			wantErr: ErrUnsupportedProperty,
		},
		{
			name:   "duplicate output",
			layout: testLayout(),
			setup: func(a *App) {
				a.Callback(out, in, echo)
				a.Callback(out, Input{ID: "i", Property: PropNClicks}, echo)
			},
			wantErr: ErrDuplicateOutput,
		},
		{
			name:    "unknown icon",
			layout:  Div([]*Element{Icon("antd-nope", WithID("i"))}),
			setup:   func(a *App) {},
			wantErr: ErrUnknownIcon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New("test", tt.opts...)
			if tt.layout != nil {
				a.SetLayout(tt.layout)
			}
			tt.setup(a)

			err := a.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_ValidateDisablesSuppressedCallbacks(t *testing.T) {
	t.Parallel()

	a := New("test", SuppressCallbackExceptions())
	a.SetLayout(testLayout())
	a.Callback(Output{ID: "ghost", Property: PropChildren}, Input{ID: "b", Property: PropNClicks}, echo)
	a.Callback(Output{ID: "b-out", Property: PropChildren}, Input{ID: "b", Property: PropNClicks}, echo)

	require.NoError(t, a.Validate())
	require.True(t, a.callbacks[0].disabled)
	require.False(t, a.callbacks[1].disabled)
}
