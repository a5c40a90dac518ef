// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package box

import "fmt"

// Outcome represents the settled result of a two-branch computation:
// either Rejected (failure) or Resolved (success).
type Outcome[E, A any] struct {
	resolved bool
	err      E
	value    A
}

// Rejected creates a Rejected (failure) outcome.
func Rejected[E, A any](e E) Outcome[E, A] {
	return Outcome[E, A]{resolved: false, err: e}
}

// Resolved creates a Resolved (success) outcome.
func Resolved[E, A any](a A) Outcome[E, A] {
	return Outcome[E, A]{resolved: true, value: a}
}

// IsRejected returns true if this is a failure outcome.
func (o Outcome[E, A]) IsRejected() bool {
	return !o.resolved
}

// IsResolved returns true if this is a success outcome.
func (o Outcome[E, A]) IsResolved() bool {
	return o.resolved
}

// GetRejected returns the failure value and true, or zero and false.
func (o Outcome[E, A]) GetRejected() (E, bool) {
	if !o.resolved {
		return o.err, true
	}
	var zero E
	return zero, false
}

// GetResolved returns the success value and true, or zero and false.
func (o Outcome[E, A]) GetResolved() (A, bool) {
	if o.resolved {
		return o.value, true
	}
	var zero A
	return zero, false
}

// String implements fmt.Stringer.
func (o Outcome[E, A]) String() string {
	if o.resolved {
		return fmt.Sprintf("Resolved(%v)", o.value)
	}
	return fmt.Sprintf("Rejected(%v)", o.err)
}

// MatchOutcome pattern matches on the Outcome, calling onRejected or
// onResolved.
func MatchOutcome[E, A, T any](o Outcome[E, A], onRejected func(E) T, onResolved func(A) T) T {
	if o.resolved {
		return onResolved(o.value)
	}
	return onRejected(o.err)
}

// MapOutcome applies a function to the success value. Rejection passes
// through unchanged and f is not invoked.
func MapOutcome[E, A, B any](o Outcome[E, A], f func(A) B) Outcome[E, B] {
	if o.resolved {
		return Resolved[E](f(o.value))
	}
	return Rejected[E, B](o.err)
}

// FlatMapOutcome sequences two settled computations.
func FlatMapOutcome[E, A, B any](o Outcome[E, A], f func(A) Outcome[E, B]) Outcome[E, B] {
	if o.resolved {
		return f(o.value)
	}
	return Rejected[E, B](o.err)
}

// MapRejectedOutcome applies a function to the failure value. Success
// passes through unchanged.
func MapRejectedOutcome[E, F, A any](o Outcome[E, A], f func(E) F) Outcome[F, A] {
	if o.resolved {
		return Resolved[F](o.value)
	}
	return Rejected[F, A](f(o.err))
}

// EqualOutcome reports structural equality: same branch with equal held
// values.
func EqualOutcome[E, A comparable](x, y Outcome[E, A]) bool {
	if x.resolved != y.resolved {
		return false
	}
	if x.resolved {
		return x.value == y.value
	}
	return x.err == y.err
}
