package symbol

import (
	"reflect"
	"strings"
)

// Ref names a callable to resolve: an owner type, a method, and optional
// filters used to disambiguate when several candidate shapes are registered
// under the owner name. Refs are built transiently per resolution attempt.
type Ref struct {
	Owner  string
	Method string
	// ParamFilter, when non-nil, requires an exact positional match against
	// the method's declared parameter types.
	ParamFilter []reflect.Type
	// TypeArgFilter, when non-nil, requires the owner type to be a generic
	// instantiation with exactly these type arguments.
	TypeArgFilter []reflect.Type
}

// ParseRef splits a combined "Owner:Method" token into a Ref. It returns
// false when the token does not contain exactly one separator with non-empty
// halves.
func ParseRef(token string) (Ref, bool) {
	owner, method, ok := strings.Cut(token, ":")
	if !ok || owner == "" || method == "" || strings.Contains(method, ":") {
		return Ref{}, false
	}
	return Ref{Owner: owner, Method: method}, true
}

// Resolver locates callables in a universe. Resolution is a single
// best-effort attempt per call; there is no caching and no retry.
type Resolver struct {
	universe *Universe
}

// NewResolver creates a resolver over the given universe.
func NewResolver(universe *Universe) *Resolver {
	return &Resolver{universe: universe}
}

// Resolve attempts to locate a method matching the ref. It returns nil when
// the owner type is unknown, the method does not exist, or no candidate
// passes the filters. Without filters the first method matching by name
// wins; callers that need determinism across ambiguous candidates must
// supply filters.
func (r *Resolver) Resolve(ref Ref) *Handle {
	if ref.Owner == "" || ref.Method == "" {
		return nil
	}
	for _, t := range r.universe.LookupType(ref.Owner) {
		if ref.TypeArgFilter != nil && !matchTypeArgs(t, ref.TypeArgFilter) {
			continue
		}
		if h := r.resolveOn(t, ref); h != nil {
			return h
		}
	}
	return nil
}

// ResolveToken is Resolve for a combined "Owner:Method" token.
func (r *Resolver) ResolveToken(token string, paramFilter, typeArgFilter []reflect.Type) *Handle {
	ref, ok := ParseRef(token)
	if !ok {
		return nil
	}
	ref.ParamFilter = paramFilter
	ref.TypeArgFilter = typeArgFilter
	return r.Resolve(ref)
}

// resolveOn scans a single candidate type's method set. Interface types
// are skipped entirely: reflect reports their methods without an invocable
// func value, and a handle that cannot be called must never resolve. The
// value method set is scanned before the pointer method set so
// value-receiver methods resolve with their declared receiver.
func (r *Resolver) resolveOn(t reflect.Type, ref Ref) *Handle {
	if t.Kind() == reflect.Interface {
		return nil
	}
	scan := []reflect.Type{t}
	if t.Kind() != reflect.Pointer {
		scan = append(scan, reflect.PointerTo(t))
	}
	for _, mt := range scan {
		for i := 0; i < mt.NumMethod(); i++ {
			m := mt.Method(i)
			if m.Name != ref.Method {
				continue
			}
			params := methodParams(m)
			if ref.ParamFilter != nil && !sameTypes(params, ref.ParamFilter) {
				continue
			}
			return newHandle(ref.Owner, m.Name, m.Func, params)
		}
	}
	return nil
}

// methodParams returns the declared parameter types of a concrete type's
// method, dropping the receiver.
func methodParams(m reflect.Method) []reflect.Type {
	params := make([]reflect.Type, 0, m.Type.NumIn()-1)
	for i := 1; i < m.Type.NumIn(); i++ {
		params = append(params, m.Type.In(i))
	}
	return params
}

func sameTypes(actual, want []reflect.Type) bool {
	if len(actual) != len(want) {
		return false
	}
	for i := range actual {
		if actual[i] != want[i] {
			return false
		}
	}
	return true
}

// matchTypeArgs compares a generic instantiation's type arguments, as
// reflect reports them in the type's name (e.g. "pkg.Box[int]"), against
// the filter entries.
func matchTypeArgs(t reflect.Type, filter []reflect.Type) bool {
	args := typeArgsOf(t)
	if len(args) != len(filter) {
		return false
	}
	for i := range args {
		if args[i] != filter[i].String() {
			return false
		}
	}
	return true
}

// typeArgsOf extracts the bracketed type-argument list from an instantiated
// generic type's name, splitting on top-level commas only.
func typeArgsOf(t reflect.Type) []string {
	name := t.String()
	open := strings.IndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return nil
	}
	inner := name[open+1 : len(name)-1]
	var args []string
	depth := 0
	last := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[last:i]))
				last = i + 1
			}
		}
	}
	args = append(args, strings.TrimSpace(inner[last:]))
	return args
}
