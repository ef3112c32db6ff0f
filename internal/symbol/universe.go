package symbol

import (
	"reflect"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Universe is the catalog of types available for runtime lookup. It is safe
// for concurrent registration and lookup; registrations typically happen in
// package init paths while lookups happen on request paths.
type Universe struct {
	// types maps an owner name to every type registered under it, in
	// registration order.
	types cmap.ConcurrentMap[string, []reflect.Type]
	// index maps a type identifier to its canonical type, used to resolve
	// textual identifiers from configuration. First registration wins.
	index cmap.ConcurrentMap[string, reflect.Type]
}

// NewUniverse creates an empty universe with the Go builtin types pre-seeded
// into the identifier index.
func NewUniverse() *Universe {
	u := &Universe{
		types: cmap.New[[]reflect.Type](),
		index: cmap.New[reflect.Type](),
	}
	for name, t := range builtinTypes() {
		u.index.Set(name, t)
	}
	return u
}

// RegisterType makes t resolvable under the given owner name. Registering
// several types under one name is allowed; lookups see them in registration
// order.
func (u *Universe) RegisterType(name string, t reflect.Type) {
	if name == "" || t == nil {
		return
	}
	u.types.Upsert(name, nil, func(exist bool, inMap, _ []reflect.Type) []reflect.Type {
		return append(inMap, t)
	})
	u.index.SetIfAbsent(name, t)
}

// Register makes t resolvable under its own reflect name (e.g.
// "export.Service"). Unnamed types are ignored.
func (u *Universe) Register(t reflect.Type) {
	if t == nil || t.Name() == "" {
		return
	}
	u.RegisterType(t.String(), t)
}

// LookupType returns every type registered under the given owner name, in
// registration order, or nil if the name is unknown.
func (u *Universe) LookupType(name string) []reflect.Type {
	entries, ok := u.types.Get(name)
	if !ok {
		return nil
	}
	out := make([]reflect.Type, len(entries))
	copy(out, entries)
	return out
}

// TypeByName resolves a textual type identifier to a type. Identifiers are
// either builtin type names ("string", "int"), registered owner names, or
// either of those behind "*" and "[]" prefixes.
func (u *Universe) TypeByName(identifier string) (reflect.Type, bool) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, false
	}
	if rest, ok := strings.CutPrefix(identifier, "*"); ok {
		elem, found := u.TypeByName(rest)
		if !found {
			return nil, false
		}
		return reflect.PointerTo(elem), true
	}
	if rest, ok := strings.CutPrefix(identifier, "[]"); ok {
		elem, found := u.TypeByName(rest)
		if !found {
			return nil, false
		}
		return reflect.SliceOf(elem), true
	}
	t, ok := u.index.Get(identifier)
	return t, ok
}

// Underlying normalizes a parameter declaration to its underlying value
// type: a pointer (by-reference) parameter of *T yields T, anything else is
// returned unchanged.
func Underlying(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

func builtinTypes() map[string]reflect.Type {
	return map[string]reflect.Type{
		"bool":       reflect.TypeOf(false),
		"string":     reflect.TypeOf(""),
		"int":        reflect.TypeOf(int(0)),
		"int8":       reflect.TypeOf(int8(0)),
		"int16":      reflect.TypeOf(int16(0)),
		"int32":      reflect.TypeOf(int32(0)),
		"int64":      reflect.TypeOf(int64(0)),
		"uint":       reflect.TypeOf(uint(0)),
		"uint8":      reflect.TypeOf(uint8(0)),
		"uint16":     reflect.TypeOf(uint16(0)),
		"uint32":     reflect.TypeOf(uint32(0)),
		"uint64":     reflect.TypeOf(uint64(0)),
		"uintptr":    reflect.TypeOf(uintptr(0)),
		"float32":    reflect.TypeOf(float32(0)),
		"float64":    reflect.TypeOf(float64(0)),
		"complex64":  reflect.TypeOf(complex64(0)),
		"complex128": reflect.TypeOf(complex128(0)),
		"byte":       reflect.TypeOf(byte(0)),
		"rune":       reflect.TypeOf(rune(0)),
		"error":      reflect.TypeOf((*error)(nil)).Elem(),
		"any":        reflect.TypeOf((*any)(nil)).Elem(),
	}
}
