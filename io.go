// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package box

// IO represents a deferred, possibly side-effecting computation producing a
// value of type A. Constructing or composing an IO performs no effect; the
// wrapped thunk executes on each [IO.Run] call.
type IO[A any] func() A

// PureIO lifts a value into an effect-free IO.
func PureIO[A any](a A) IO[A] {
	return func() A {
		return a
	}
}

// Run executes the wrapped thunk, performing its side effects, and returns
// the result. Every call re-executes the thunk. A panic raised by the
// thunk propagates to the caller unrecovered.
func (m IO[A]) Run() A {
	return m()
}

// MapIO applies a function to the eventual result. No effect occurs until
// Run.
func MapIO[A, B any](m IO[A], f func(A) B) IO[B] {
	return func() B {
		return f(m())
	}
}

// FlatMapIO sequences two deferred computations: running the result runs m,
// feeds its value to f, and runs the produced IO.
func FlatMapIO[A, B any](m IO[A], f func(A) IO[B]) IO[B] {
	return func() B {
		return f(m())()
	}
}

// ThenIO sequences two deferred computations, discarding the first result.
// Both effects still run, in order — equivalent to
// FlatMapIO(m, func(A) IO { return n }) without the transformation closure.
func ThenIO[A, B any](m IO[A], n IO[B]) IO[B] {
	return func() B {
		m()
		return n()
	}
}

// ApIO applies a deferred function to a deferred value. When run, mf runs
// before ma.
func ApIO[A, B any](mf IO[func(A) B], ma IO[A]) IO[B] {
	return func() B {
		f := mf()
		return f(ma())
	}
}

// Map2IO combines two independent deferred computations with f. When run,
// ma runs before mb.
func Map2IO[A, B, C any](ma IO[A], mb IO[B], f func(A, B) C) IO[C] {
	return func() C {
		a := ma()
		b := mb()
		return f(a, b)
	}
}

// TapIO runs f on the computed value for side observation and passes the
// value through unchanged.
func TapIO[A any](m IO[A], f func(A)) IO[A] {
	return func() A {
		a := m()
		f(a)
		return a
	}
}
