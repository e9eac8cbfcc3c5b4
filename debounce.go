package imwidgets

import (
	"sync"
	"time"
)

// debouncer delays fire(id) until wait has passed without another Trigger for
// the same id (trailing edge). Each id has its own timer.
type debouncer struct {
	fire func(ID)

	mu      sync.Mutex
	timers  map[ID]*time.Timer
	stopped bool
}

func newDebouncer(fire func(ID)) *debouncer {
	return &debouncer{
		fire:   fire,
		timers: map[ID]*time.Timer{},
	}
}

// Trigger registers a click on id. Non-positive waits fire immediately.
func (d *debouncer) Trigger(id ID, wait time.Duration) {
	if wait <= 0 {
		d.fire(id)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if t, ok := d.timers[id]; ok {
		t.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(wait, func() {
		d.mu.Lock()
		current := d.timers[id] == t
		if current {
			delete(d.timers, id)
		}
		stopped := d.stopped
		d.mu.Unlock()

		if current && !stopped {
			d.fire(id)
		}
	})
	d.timers[id] = t
}

// Pending reports how many ids have a click waiting.
func (d *debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

// Stop drops pending clicks. Trigger is a no-op afterwards.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for id, t := range d.timers {
		t.Stop()
		delete(d.timers, id)
	}
}
