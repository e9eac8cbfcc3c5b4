package imwidgets

import (
	"log/slog"
	"sync"
)

// incoming event, e.g. button click
type event struct {
	ID    ID     `json:"id"`
	Event string `json:"event"`
}

const (
	eventClicked = "clicked"
	// eventDebounced is emitted by the debouncer, never accepted from clients.
	eventDebounced = "debounced"
)

type command struct {
	ID   ID     `json:"id"`
	Data string `json:"data"`
	Kind string `json:"kind"`
}

const (
	kindAdd     = "ADD"
	kindReplace = "REPLACE"
	kindBoot    = "BOOT"
	kindError   = "ERROR"
)

type elemState struct {
	NClicks     int
	Children    string
	hasChildren bool
}

// session is the state of one page connection. start and frame must be called
// from a single goroutine, receive may be called from any.
type session struct {
	app    *App
	debug  bool
	logger *slog.Logger

	elems    syncMap[ID, elemState]
	queue    chan event
	pending  []event
	debounce *debouncer

	done      chan struct{}
	closeOnce sync.Once
}

func newSession(app *App, debug bool, logger *slog.Logger) *session {
	s := &session{
		app:    app,
		debug:  debug,
		logger: logger,
		queue:  make(chan event, 100),
		done:   make(chan struct{}),
	}
	s.debounce = newDebouncer(func(id ID) {
		s.push(event{ID: id, Event: eventDebounced})
	})
	return s
}

func (s *session) children(id ID) (string, bool) {
	st, ok := s.elems.Get(id)
	return st.Children, ok && st.hasChildren
}

func (s *session) value(in Input) Value {
	st, ok := s.elems.Get(in.ID)
	if !ok || st.NClicks == 0 {
		return Value{}
	}
	return ValueOf(st.NClicks)
}

// start runs initial callbacks and returns the commands building the page.
func (s *session) start() ([]command, error) {
	var cmds []command
	if s.debug {
		cmds = append(cmds, command{Kind: kindBoot, Data: s.app.bootID})
	}

	for _, cb := range s.app.callbacks {
		if cb.disabled || cb.preventInitialCall {
			continue
		}
		// the layout render below carries successful outputs
		if cmd, ok := s.call(cb, s.value(cb.in)); !ok && s.debug {
			cmds = append(cmds, cmd)
		}
	}

	html, err := s.app.layout.render(s.children)
	if err != nil {
		return nil, err
	}
	return append(cmds, command{ID: s.app.layout.ID, Data: html, Kind: kindAdd}), nil
}

// receive queues a client event. It reports false once the session is closed.
func (s *session) receive(e event) bool {
	if e.Event != eventClicked {
		s.logger.Debug("unknown event dropped", "id", e.ID, "event", e.Event)
		return true
	}
	return s.push(e)
}

func (s *session) push(e event) bool {
	select {
	case s.queue <- e:
		return true
	case <-s.done:
		return false
	}
}

// frame processes queued events. An event on an element already updated in
// this frame is processed on the next frame.
func (s *session) frame() []command {
	var cmds []command
	updatedIDs := map[ID]struct{}{}
	notProcessedEvents := s.pending
	s.pending = nil

	process := func(e event) {
		if _, ok := updatedIDs[e.ID]; ok {
			s.pending = append(s.pending, e)
			return
		}
		updatedIDs[e.ID] = struct{}{}
		cmds = append(cmds, s.handle(e)...)
	}

	for _, e := range notProcessedEvents {
		process(e)
	}
EVENTS_LOOP:
	for {
		select {
		case e := <-s.queue:
			process(e)
		default:
			break EVENTS_LOOP
		}
	}
	return cmds
}

func (s *session) handle(e event) []command {
	el, ok := s.app.index[e.ID]
	if !ok || !el.Clickable() {
		s.logger.Debug("event on unknown or non-clickable element", "id", e.ID, "event", e.Event)
		return nil
	}

	switch e.Event {
	case eventClicked:
		if el.DebounceWait <= 0 {
			return s.click(e.ID)
		}
		s.debounce.Trigger(e.ID, el.DebounceWait)
		return nil
	case eventDebounced:
		return s.click(e.ID)
	}
	return nil
}

func (s *session) click(id ID) []command {
	st := s.elems.Update(id, func(st elemState) elemState {
		st.NClicks++
		return st
	})
	s.logger.Debug("click", "id", id, "n_clicks", st.NClicks)

	in := Input{ID: id, Property: PropNClicks}
	var cmds []command
	for _, cb := range s.app.callbacks {
		if cb.disabled || cb.in != in {
			continue
		}
		cmd, ok := s.call(cb, ValueOf(st.NClicks))
		if !ok && !s.debug {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// call runs cb and stores its output. On success it returns the REPLACE
// command for the output element, otherwise an ERROR command.
func (s *session) call(cb *callback, in Value) (command, bool) {
	children, err := cb.call(in)
	if err != nil {
		s.logger.Error("callback failed", "input", cb.in.String(), "output", cb.out.String(), "error", err)
		return command{ID: cb.out.ID, Data: err.Error(), Kind: kindError}, false
	}

	s.elems.Update(cb.out.ID, func(st elemState) elemState {
		st.Children = children
		st.hasChildren = true
		return st
	})

	html, err := s.app.index[cb.out.ID].render(s.children)
	if err != nil {
		s.logger.Error("render output", "output", cb.out.String(), "error", err)
		return command{ID: cb.out.ID, Data: err.Error(), Kind: kindError}, false
	}
	return command{ID: cb.out.ID, Data: html, Kind: kindReplace}, true
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		s.debounce.Stop()
		close(s.done)
	})
}
