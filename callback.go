package imwidgets

import (
	"errors"
	"fmt"
)

const (
	PropNClicks  = "nClicks"
	PropChildren = "children"
)

var (
	ErrNoLayout            = errors.New("layout is not set")
	ErrDuplicateID         = errors.New("duplicate element id")
	ErrUnknownID           = errors.New("unknown element id")
	ErrUnknownIcon         = errors.New("unknown icon")
	ErrUnsupportedProperty = errors.New("unsupported property")
	ErrDuplicateOutput     = errors.New("output already bound")
)

type Input struct {
	ID       ID
	Property string
}

type Output struct {
	ID       ID
	Property string
}

func (i Input) String() string  { return string(i.ID) + "." + i.Property }
func (o Output) String() string { return string(o.ID) + "." + o.Property }

// Value is a callback input. The zero Value is absent: the property has not
// been set yet, e.g. nClicks before the first click.
type Value struct {
	raw any
	set bool
}

func ValueOf(v any) Value {
	return Value{raw: v, set: true}
}

func (v Value) IsSet() bool { return v.set }

func (v Value) Any() any { return v.raw }

func (v Value) Int() (int, bool) {
	n, ok := v.raw.(int)
	return n, ok && v.set
}

// IntOr returns the int value, or def when absent or not an int.
func (v Value) IntOr(def int) int {
	if n, ok := v.Int(); ok {
		return n
	}
	return def
}

// Handler computes an output property from an input property. The result is
// formatted with fmt.Sprint, nil renders as nothing.
type Handler func(Value) any

type callback struct {
	out                Output
	in                 Input
	fn                 Handler
	preventInitialCall bool
	// disabled callbacks reference ids missing from the layout and never fire.
	disabled bool
}

type CallbackOption func(*callback)

// PreventInitialCall skips the call with absent inputs on page load.
func PreventInitialCall() CallbackOption {
	return func(cb *callback) { cb.preventInitialCall = true }
}

// call runs the handler, turning a panic into an error.
func (cb *callback) call(in Value) (children string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("callback %s -> %s panicked: %v", cb.in, cb.out, r)
		}
	}()

	res := cb.fn(in)
	if res == nil {
		return "", nil
	}
	return fmt.Sprint(res), nil
}

func (a *App) validate() error {
	if a.layout == nil {
		return ErrNoLayout
	}

	index := map[ID]*Element{}
	var errs []error
	a.layout.Walk(func(e *Element) bool {
		if e.Kind == KindIcon {
			if _, ok := Icons[e.Icon]; !ok {
				errs = append(errs, fmt.Errorf("%w: %q on %q", ErrUnknownIcon, e.Icon, e.ID))
			}
		}
		if e.ID == "" {
			return true
		}
		if _, ok := index[e.ID]; ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateID, e.ID))
			return true
		}
		index[e.ID] = e
		return true
	})

	outputs := map[Output]struct{}{}
	for _, cb := range a.callbacks {
		cb.disabled = false

		if _, ok := outputs[cb.out]; ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateOutput, cb.out))
		}
		outputs[cb.out] = struct{}{}

		inEl, inOK := index[cb.in.ID]
		outEl, outOK := index[cb.out.ID]
		if !inOK || !outOK {
			missing := cb.in.ID
			if inOK {
				missing = cb.out.ID
			}
			if a.suppressCallbackExceptions {
				a.logger.Debug("callback references missing element, disabled", "id", missing)
				cb.disabled = true
				continue
			}
			errs = append(errs, fmt.Errorf("%w: %q in callback %s -> %s", ErrUnknownID, missing, cb.in, cb.out))
			continue
		}

		if cb.in.Property != PropNClicks || !inEl.Clickable() {
			errs = append(errs, fmt.Errorf("%w: input %s on %s", ErrUnsupportedProperty, cb.in, inEl.Kind))
		}
		if cb.out.Property != PropChildren || (outEl.Kind != KindText && outEl.Kind != KindDiv) {
			errs = append(errs, fmt.Errorf("%w: output %s on %s", ErrUnsupportedProperty, cb.out, outEl.Kind))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	a.index = index
	return nil
}
