// Package imwidgets serves a static widget layout over a websocket and keeps
// it in sync with server-side callbacks.
//
// The page is rendered on the server and pushed to the browser as HTML
// commands. Clicks travel back as events, pass through the widget's debounce
// window, bump its nClicks counter and fire the callbacks bound to it.
package imwidgets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/net/websocket"
)

type App struct {
	name                       string
	logger                     *slog.Logger
	suppressCallbackExceptions bool

	layout    *Element
	callbacks []*callback

	// set by validate
	index  map[ID]*Element
	bootID string
}

type AppOption func(*App)

func WithLogger(logger *slog.Logger) AppOption {
	return func(a *App) { a.logger = logger }
}

// SuppressCallbackExceptions allows callbacks on ids missing from the layout.
// Such callbacks never fire.
func SuppressCallbackExceptions() AppOption {
	return func(a *App) { a.suppressCallbackExceptions = true }
}

func New(name string, opts ...AppOption) *App {
	a := &App{
		name:   name,
		logger: slog.Default(),
		bootID: strconv.FormatInt(time.Now().UnixNano(), 36),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Name() string { return a.name }

func (a *App) SetLayout(root *Element) {
	a.layout = root
}

func (a *App) Layout() *Element {
	return a.layout
}

// Callback binds fn so that out is recomputed whenever in changes.
func (a *App) Callback(out Output, in Input, fn Handler, opts ...CallbackOption) {
	cb := &callback{out: out, in: in, fn: fn}
	for _, opt := range opts {
		opt(cb)
	}
	a.callbacks = append(a.callbacks, cb)
}

// Validate checks the layout and callback bindings.
func (a *App) Validate() error {
	return a.validate()
}

// Handler validates the app and returns the page and websocket handler.
func (a *App) Handler(cfg Config) (http.Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("app %s: %w", a.name, err)
	}

	page, err := renderPage(a.name, cfg.Debug)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(page); err != nil {
			a.logger.Debug("write page", "error", err)
		}
	})
	mux.Handle("/ws", websocket.Handler(func(c *websocket.Conn) {
		a.serveWS(c, cfg)
	}))
	return mux, nil
}

func (a *App) serveWS(c *websocket.Conn, cfg Config) {
	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	logger := a.logger.With("remote_addr", c.Request().RemoteAddr)
	logger.Debug("conn opened")
	defer logger.Debug("conn closed")

	s := newSession(a, cfg.Debug, logger)
	defer s.close()

	cmds, err := s.start()
	if err != nil {
		logger.Error("start session", "error", err)
		return
	}
	if !send(c, logger, cmds) {
		return
	}

	// read events
	go func() {
		defer cancel()
		for {
			var m event
			if err := websocket.JSON.Receive(c, &m); err != nil {
				if !errors.Is(err, io.EOF) {
					logger.Debug("read event", "error", err)
				}
				return
			}
			logger.Debug("received event", "id", m.ID, "event", m.Event)
			if !s.receive(m) {
				return
			}
		}
	}()

	// send updates
	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if !send(c, logger, s.frame()) {
			return
		}
	}
}

func send(c *websocket.Conn, logger *slog.Logger, cmds []command) bool {
	for _, cmd := range cmds {
		if err := websocket.JSON.Send(c, cmd); err != nil {
			logger.Debug("write", "error", err)
			return false
		}
	}
	return true
}

// Run serves the app on cfg.Addr until ctx is cancelled.
func (a *App) Run(ctx context.Context, cfg Config) error {
	handler, err := a.Handler(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("shutdown", "error", err)
		}
	}()

	a.logger.Info("running", "app", a.name, "addr", cfg.Addr, "debug", cfg.Debug)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", cfg.Addr, err)
	}
	return nil
}
