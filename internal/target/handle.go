package target

import "errors"

// ErrShapeMismatch is returned by a target that rejects the shape of its
// input (argument kind, not content). The runner treats it as a signal to
// retry once with an alternate shape, never as a genuine failure.
var ErrShapeMismatch = errors.New("input shape mismatch")

// HandleKind distinguishes the two invocation contracts a collaborator can
// register, decided once at registration time.
type HandleKind uint8

const (
	// KindFunc is a direct callable taking one input.
	KindFunc HandleKind = iota + 1
	// KindClass is a zero-argument constructor followed by a one-input call
	// on the designated method.
	KindClass
)

// Func is a directly callable target.
type Func func(Input) error

// Invocable is a constructed target instance awaiting a method call.
type Invocable interface {
	// Invoke calls the named method with one input.
	Invoke(method string, in Input) error
}

// Constructor builds a fresh target instance with no arguments.
type Constructor func() Invocable

// Handle is what a collaborator registers for one attribute: either a plain
// function or a constructor plus its designated method name.
type Handle struct {
	Kind   HandleKind
	Func   Func        // set when Kind == KindFunc
	New    Constructor // set when Kind == KindClass
	Method string      // designated method, set when Kind == KindClass
}

// FuncHandle wraps a plain function target.
func FuncHandle(fn Func) Handle {
	return Handle{Kind: KindFunc, Func: fn}
}

// ClassHandle wraps a construct-then-invoke target.
func ClassHandle(ctor Constructor, method string) Handle {
	return Handle{Kind: KindClass, New: ctor, Method: method}
}

// Valid reports whether the handle carries a usable callable.
func (h Handle) Valid() bool {
	switch h.Kind {
	case KindFunc:
		return h.Func != nil
	case KindClass:
		return h.New != nil && h.Method != ""
	default:
		return false
	}
}
