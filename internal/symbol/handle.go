package symbol

import (
	"fmt"
	"reflect"
)

// Handle is an opaque reference to a located callable. It is immutable once
// produced; callers invoke the underlying function themselves after the
// handle has been verified.
type Handle struct {
	owner  string
	method string
	fn     reflect.Value
	params []reflect.Type
}

func newHandle(owner, method string, fn reflect.Value, params []reflect.Type) *Handle {
	return &Handle{owner: owner, method: method, fn: fn, params: params}
}

// Owner returns the owning type's name, for diagnostics.
func (h *Handle) Owner() string {
	return h.owner
}

// Method returns the method name, for diagnostics.
func (h *Handle) Method() string {
	return h.method
}

// Func returns the callable as a reflect.Value. Calling convention and
// argument marshaling are the caller's responsibility.
func (h *Handle) Func() reflect.Value {
	return h.fn
}

// Params returns the declared parameter types in order, excluding the
// receiver and with any pointer wrapper intact.
func (h *Handle) Params() []reflect.Type {
	out := make([]reflect.Type, len(h.params))
	copy(out, h.params)
	return out
}

// NormalizedParams returns the parameter types with each by-reference
// (pointer) declaration unwrapped to its underlying element type.
func (h *Handle) NormalizedParams() []reflect.Type {
	out := make([]reflect.Type, len(h.params))
	for i, p := range h.params {
		out[i] = Underlying(p)
	}
	return out
}

// String renders the handle as an "Owner:Method" token.
func (h *Handle) String() string {
	return fmt.Sprintf("%s:%s", h.owner, h.method)
}
