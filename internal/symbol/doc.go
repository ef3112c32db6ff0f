// Package symbol locates callable methods by name at runtime.
//
// Go offers no process-wide enumeration of loaded types, so the package
// keeps an explicit universe: a catalog of reflect.Type values that hosts
// and extensions register under fully-qualified names during their own
// initialization. The resolver then answers "does type X still have a
// method Y with this shape" questions against that catalog without the
// caller ever importing the owning package.
//
// Several types may be registered under one owner name. That models the
// situation the package exists for: an extension whose internals drift
// across versions, where more than one candidate shape may be present and
// the caller disambiguates with parameter or type-argument filters.
package symbol
