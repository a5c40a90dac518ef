// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package exercises contains worked compositions of the box containers:
// applicative sums over optional integers, fixed-order page assembly from
// deferred fragment fetches, and deferred match-title formatting.
package exercises

import (
	"code.hybscloud.com/box"
)

func add(a, b int) int { return a + b }

// SumNullable adds two optional integers supplied as nullable pointers.
// Either side nil yields Nothing; both present yields Just of the sum.
func SumNullable(x, y *int) box.Maybe[int] {
	return box.Map2Maybe(box.FromPtr(x), box.FromPtr(y), add)
}

// SumMaybe adds two already-wrapped optional integers under the same
// short-circuit law as [SumNullable], via curried map and apply.
func SumMaybe(x, y box.Maybe[int]) box.Maybe[int] {
	return box.ApMaybe(box.MapMaybe(x, box.Curry(add)), y)
}

// RenderPage stitches a page header and two comment fragments into one HTML
// string in fixed order. The first rejected fragment rejects the page, and
// fragments after it never start.
func RenderPage(header, first, second box.Task[error, string]) box.Task[error, string] {
	return box.Map3Task(header, first, second, func(h, a, b string) string {
		return h + a + b
	})
}

// Roster holds the two sides of an upcoming match. It is the explicit
// source read by the deferred lookups below: callers pass it in, so reads
// stay late-bound without hidden process-wide state.
type Roster struct {
	left  string
	right string
}

// SetLeft assigns the left player name.
func (r *Roster) SetLeft(name string) { r.left = name }

// SetRight assigns the right player name.
func (r *Roster) SetRight(name string) { r.right = name }

// Left returns the current left player name.
func (r *Roster) Left() string { return r.left }

// Right returns the current right player name.
func (r *Roster) Right() string { return r.right }

// ReadLeft creates an IO that reads the left player name when run.
func ReadLeft(r *Roster) box.IO[string] {
	return func() string { return r.left }
}

// ReadRight creates an IO that reads the right player name when run.
func ReadRight(r *Roster) box.IO[string] {
	return func() string { return r.right }
}

func versus(left, right string) string { return left + " vs " + right }

// Matchup combines the two deferred name reads applicatively into one IO
// that, when run, yields "<left> vs <right>". Neither name is read until
// the returned IO runs.
func Matchup(r *Roster) box.IO[string] {
	return box.ApIO(box.MapIO(ReadLeft(r), box.Curry(versus)), ReadRight(r))
}
