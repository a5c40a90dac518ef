// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package box

import "fmt"

// Maybe represents an optional value that is either Just (present) or
// Nothing (absent). The zero value is Nothing.
type Maybe[A any] struct {
	present bool
	value   A
}

// Just creates a present Maybe holding a.
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{present: true, value: a}
}

// Nothing creates an absent Maybe.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// FromPtr lifts a nullable pointer into a Maybe: nil becomes Nothing, and a
// non-nil pointer becomes Just of the pointed-to value.
func FromPtr[A any](p *A) Maybe[A] {
	if p == nil {
		return Nothing[A]()
	}
	return Just(*p)
}

// IsJust returns true if this is a present value.
func (m Maybe[A]) IsJust() bool {
	return m.present
}

// IsNothing returns true if this is an absent value.
func (m Maybe[A]) IsNothing() bool {
	return !m.present
}

// Get returns the held value and true, or zero and false.
func (m Maybe[A]) Get() (A, bool) {
	if m.present {
		return m.value, true
	}
	var zero A
	return zero, false
}

// OrElse returns the held value, or def when absent.
func (m Maybe[A]) OrElse(def A) A {
	if m.present {
		return m.value
	}
	return def
}

// String implements fmt.Stringer.
func (m Maybe[A]) String() string {
	if !m.present {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// MatchMaybe pattern matches on the Maybe, calling onNothing or onJust.
func MatchMaybe[A, T any](m Maybe[A], onNothing func() T, onJust func(A) T) T {
	if m.present {
		return onJust(m.value)
	}
	return onNothing()
}

// MapMaybe applies a function to the held value. Absence passes through
// unchanged and f is not invoked.
func MapMaybe[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if !m.present {
		return Nothing[B]()
	}
	return Just(f(m.value))
}

// FlatMapMaybe sequences two optional computations.
func FlatMapMaybe[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if !m.present {
		return Nothing[B]()
	}
	return f(m.value)
}

// ApMaybe applies an optional function to an optional value. Absence on
// either side yields Nothing and the function is not invoked.
func ApMaybe[A, B any](mf Maybe[func(A) B], ma Maybe[A]) Maybe[B] {
	if !mf.present || !ma.present {
		return Nothing[B]()
	}
	return Just(mf.value(ma.value))
}

// Map2Maybe combines two independent optional values with f — equivalent to
// ApMaybe(MapMaybe(ma, Curry(f)), mb) without the intermediate closure.
func Map2Maybe[A, B, C any](ma Maybe[A], mb Maybe[B], f func(A, B) C) Maybe[C] {
	if !ma.present || !mb.present {
		return Nothing[C]()
	}
	return Just(f(ma.value, mb.value))
}

// EqualMaybe reports structural equality: both absent, or both present with
// equal held values.
func EqualMaybe[A comparable](x, y Maybe[A]) bool {
	if x.present != y.present {
		return false
	}
	return !x.present || x.value == y.value
}

// EqualMaybeBy reports structural equality, comparing held values with eq.
func EqualMaybeBy[A any](x, y Maybe[A], eq func(A, A) bool) bool {
	if x.present != y.present {
		return false
	}
	return !x.present || eq(x.value, y.value)
}
