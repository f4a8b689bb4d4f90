package option

import (
	"errors"
	"fmt"
)

// ErrCannotMatchUnsetValue is returned by Unwrap for unset values.
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")

// T is a type for optional values.
// The zero value of T is unset.
type T[V comparable] struct {
	value V
	set   bool
}

// Some creates an optional value with an initial value of x.
func Some[V comparable](x V) T[V] {
	return T[V]{value: x, set: true}
}

// None creates an optional value without a value.
func None[V comparable]() T[V] {
	return T[V]{}
}

// IsNone returns true if o is unset.
func (o T[V]) IsNone() bool {
	return !o.set
}

// IsSome returns true if o carries a value.
func (o T[V]) IsSome() bool {
	return o.set
}

// Get returns the value of o and a flag telling if it is set.
func (o T[V]) Get() (V, bool) {
	return o.value, o.set
}

// Unwrap returns the value of o. If o is unset, the zero value of V
// is returned together with ErrCannotMatchUnsetValue.
func (o T[V]) Unwrap() (V, error) {
	if !o.set {
		return o.value, ErrCannotMatchUnsetValue
	}
	return o.value, nil
}

// UnwrapOr returns the value of o, or dflt if o is unset.
func (o T[V]) UnwrapOr(dflt V) V {
	if !o.set {
		return dflt
	}
	return o.value
}

// Equals is true if o is set and carries a value equal to x.
func (o T[V]) Equals(x V) bool {
	return o.set && o.value == x
}

func (o T[V]) String() string {
	if !o.set {
		return "None"
	}
	return fmt.Sprintf("%v", o.value)
}

// Match calls none if o is unset, otherwise some with the value of o.
//
//	s := option.Match(o,
//	     func() string { return "unset" },
//	     func(x int) string { return strconv.Itoa(x) },
//	)
func Match[V comparable, R any](o T[V], none func() R, some func(V) R) R {
	if !o.set {
		Tracer().Debugf("option matched None")
		return none()
	}
	Tracer().Debugf("option matched Some(%v)", o.value)
	return some(o.value)
}

// Map applies f to the value of o, if set.
func Map[V, W comparable](o T[V], f func(V) W) T[W] {
	if !o.set {
		return T[W]{}
	}
	return Some(f(o.value))
}
