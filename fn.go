// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package box

// Unit is a type alias for the empty struct, the informationless type.
type Unit = struct{}

// Iden returns its argument unchanged. It is the left and right identity
// of [Comp].
func Iden[A any](a A) A {
	return a
}

// Comp is left-to-right function composition: Comp(f, g)(x) == g(f(x)).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const returns a function that ignores its argument and always returns a.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Curry converts a two-argument function into its curried form.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Uncurry converts a curried function back into two-argument form.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}
