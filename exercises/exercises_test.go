// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package exercises_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/box"
	"code.hybscloud.com/box/exercises"
)

func TestSumNullableBothPresent(t *testing.T) {
	x, y := 2, 3
	got := exercises.SumNullable(&x, &y)
	if !box.EqualMaybe(got, box.Just(5)) {
		t.Fatalf("got %v, want Just(5)", got)
	}
}

func TestSumNullableAbsent(t *testing.T) {
	y := 3
	if got := exercises.SumNullable(nil, &y); !got.IsNothing() {
		t.Fatalf("got %v, want Nothing", got)
	}

	x := 2
	if got := exercises.SumNullable(&x, nil); !got.IsNothing() {
		t.Fatalf("got %v, want Nothing", got)
	}

	if got := exercises.SumNullable(nil, nil); !got.IsNothing() {
		t.Fatalf("got %v, want Nothing", got)
	}
}

func TestSumMaybeBothPresent(t *testing.T) {
	got := exercises.SumMaybe(box.Just(2), box.Just(3))
	if !box.EqualMaybe(got, box.Just(5)) {
		t.Fatalf("got %v, want Just(5)", got)
	}
}

func TestSumMaybeAbsent(t *testing.T) {
	if got := exercises.SumMaybe(box.Nothing[int](), box.Just(3)); !got.IsNothing() {
		t.Fatalf("got %v, want Nothing", got)
	}
	if got := exercises.SumMaybe(box.Just(2), box.Nothing[int]()); !got.IsNothing() {
		t.Fatalf("got %v, want Nothing", got)
	}
}

const wantPage = "<div>Love them tasks</div>" +
	"<li>This book should be illegal</li>" +
	"<li>Monads are like space burritos</li>"

func TestRenderPage(t *testing.T) {
	page := exercises.RenderPage(
		box.ResolvedTask[error]("<div>Love them tasks</div>"),
		box.ResolvedTask[error]("<li>This book should be illegal</li>"),
		box.ResolvedTask[error]("<li>Monads are like space burritos</li>"),
	)

	resolved := 0
	page.Fork(
		func(err error) { t.Fatalf("unexpected rejection: %v", err) },
		func(html string) {
			resolved++
			if html != wantPage {
				t.Fatalf("got %q, want %q", html, wantPage)
			}
		},
	)

	if resolved != 1 {
		t.Fatalf("resolution callback fired %d times, want 1", resolved)
	}
}

func TestRenderPageQueued(t *testing.T) {
	// Fragments arrive via a cooperative queue; nothing settles until drained
	var q box.Queue
	fragment := func(html string) box.Task[error, string] {
		return box.EnqueueTask(&q, func() box.Outcome[error, string] {
			return box.Resolved[error, string](html)
		})
	}

	page := exercises.RenderPage(
		fragment("<div>Love them tasks</div>"),
		fragment("<li>This book should be illegal</li>"),
		fragment("<li>Monads are like space burritos</li>"),
	)

	var got string
	settled := false
	page.Fork(
		func(err error) { t.Fatalf("unexpected rejection: %v", err) },
		func(html string) { settled = true; got = html },
	)

	if settled {
		t.Fatal("page should not settle before the queue drains")
	}

	q.Drain()

	if !settled {
		t.Fatal("page should settle once the queue drains")
	}
	if got != wantPage {
		t.Fatalf("got %q, want %q", got, wantPage)
	}
}

func TestRenderPageRejection(t *testing.T) {
	errComments := errors.New("comments unavailable")

	secondStarted := false
	second := box.TaskFunc(func() box.Outcome[error, string] {
		secondStarted = true
		return box.Resolved[error, string]("<li>Monads are like space burritos</li>")
	})

	page := exercises.RenderPage(
		box.ResolvedTask[error]("<div>Love them tasks</div>"),
		box.RejectedTask[error, string](errComments),
		second,
	)

	rejected, resolved := 0, 0
	var got error
	page.Fork(
		func(err error) { rejected++; got = err },
		func(string) { resolved++ },
	)

	if rejected != 1 || resolved != 0 {
		t.Fatalf("callbacks fired (rejected=%d, resolved=%d), want (1, 0)", rejected, resolved)
	}
	if got != errComments {
		t.Fatalf("got error %v, want %v", got, errComments)
	}
	if secondStarted {
		t.Fatal("fragments after the rejection should not start")
	}
}

func TestMatchup(t *testing.T) {
	var r exercises.Roster
	r.SetLeft("toby")
	r.SetRight("sally")

	got := exercises.Matchup(&r).Run()
	if got != "toby vs sally" {
		t.Fatalf("got %q, want %q", got, "toby vs sally")
	}
}

func TestMatchupReadsAreDeferred(t *testing.T) {
	var r exercises.Roster
	r.SetLeft("toby")
	r.SetRight("sally")

	m := exercises.Matchup(&r)

	// The roster changes after composition but before Run; the late name wins
	r.SetLeft("gary")

	if got := m.Run(); got != "gary vs sally" {
		t.Fatalf("got %q, want %q", got, "gary vs sally")
	}

	// Each Run re-reads the source
	r.SetRight("alice")
	if got := m.Run(); got != "gary vs alice" {
		t.Fatalf("got %q, want %q", got, "gary vs alice")
	}
}

func TestRosterAccessors(t *testing.T) {
	var r exercises.Roster
	r.SetLeft("toby")
	r.SetRight("sally")

	if got := r.Left(); got != "toby" {
		t.Fatalf("got %q, want %q", got, "toby")
	}
	if got := r.Right(); got != "sally" {
		t.Fatalf("got %q, want %q", got, "sally")
	}
}

func TestReadLeftReadRight(t *testing.T) {
	var r exercises.Roster
	r.SetLeft("toby")

	left := exercises.ReadLeft(&r)
	r.SetLeft("gary") // mutate between composition and run

	if got := left.Run(); got != "gary" {
		t.Fatalf("got %q, want %q", got, "gary")
	}

	right := exercises.ReadRight(&r)
	if got := right.Run(); got != "" {
		t.Fatalf("got %q, want empty string for unset name", got)
	}
}
