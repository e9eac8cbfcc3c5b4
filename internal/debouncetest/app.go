// Package debouncetest is a page with a debounced button and icon whose click
// counts are echoed into text elements.
package debouncetest

import (
	"log/slog"
	"time"

	"github.com/rprtr258/imwidgets"
)

const (
	ButtonID       imwidgets.ID = "button-debounce-test"
	ButtonOutputID imwidgets.ID = "button-debounce-test-output"
	IconID         imwidgets.ID = "icon-debounce-test"
	IconOutputID   imwidgets.ID = "icon-debounce-test-output"

	DebounceWait = 500 * time.Millisecond
)

func Layout() *imwidgets.Element {
	return imwidgets.Div(
		[]*imwidgets.Element{
			imwidgets.Button(
				"测试测试",
				imwidgets.WithID(ButtonID),
				imwidgets.WithDebounceWait(DebounceWait),
				imwidgets.WithStyle(imwidgets.Style{
					"width": "200px",
				}),
			),
			imwidgets.Text(imwidgets.WithID(ButtonOutputID)),

			imwidgets.Br(),

			imwidgets.Icon(
				"antd-question",
				imwidgets.WithID(IconID),
				imwidgets.WithDebounceWait(DebounceWait),
				imwidgets.WithStyle(imwidgets.Style{
					"padding": "5px",
					"border":  "1px solid grey",
					"cursor":  "pointer",
				}),
			),
			imwidgets.Text(imwidgets.WithID(IconOutputID)),
		},
		imwidgets.WithStyle(imwidgets.Style{
			"width":  "800px",
			"margin": "0 auto",
		}),
	)
}

func ButtonDebounceTest(nClicks imwidgets.Value) any {
	return nClicks.IntOr(0)
}

func IconDebounceTest(nClicks imwidgets.Value) any {
	return nClicks.IntOr(0)
}

func NewApp(logger *slog.Logger) *imwidgets.App {
	app := imwidgets.New(
		"DebounceTest",
		imwidgets.WithLogger(logger),
		imwidgets.SuppressCallbackExceptions(),
	)
	app.SetLayout(Layout())

	app.Callback(
		imwidgets.Output{ID: ButtonOutputID, Property: imwidgets.PropChildren},
		imwidgets.Input{ID: ButtonID, Property: imwidgets.PropNClicks},
		ButtonDebounceTest,
	)
	app.Callback(
		imwidgets.Output{ID: IconOutputID, Property: imwidgets.PropChildren},
		imwidgets.Input{ID: IconID, Property: imwidgets.PropNClicks},
		IconDebounceTest,
	)
	return app
}
