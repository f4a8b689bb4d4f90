/*
Package option implements optional values.

Properties of a style declaration may be left unset, which is different from
being set to a zero value. option.T[V] wraps a value of any comparable type
together with a flag telling whether the value has been set. Values of T[V]
are comparable themselves and may be copied freely.

	c := option.Some(42)
	n := option.None[int]()
	x := option.Match(c, func() string { return "none" }, strconv.Itoa)
*/
package option

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer traces to the core tracer.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}
