// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package box

import (
	"sync/atomic"
	"time"
)

// Settle is the one-shot completion handle for a single Task execution.
// The execution can be settled at most once; subsequent attempts to settle
// will panic (Settle, Resolve, Reject) or return false (TrySettle).
//
// Every execution path delivers through a Settle, so the at-most-once,
// mutually-exclusive callback invariant is enforced at one point.
type Settle[E, A any] struct {
	used    atomic.Uintptr
	deliver func(Outcome[E, A])
}

// NewSettle creates a completion handle that forwards the winning outcome
// to deliver. The returned Settle can be settled at most once.
func NewSettle[E, A any](deliver func(Outcome[E, A])) *Settle[E, A] {
	return &Settle[E, A]{deliver: deliver}
}

// Settle delivers the outcome.
// Panics if the execution has already been settled.
func (s *Settle[E, A]) Settle(o Outcome[E, A]) {
	if s.used.Add(1) != 1 {
		panic("box: task settled twice")
	}
	s.deliver(o)
}

// Resolve settles the execution with a success value.
// Panics if the execution has already been settled.
func (s *Settle[E, A]) Resolve(a A) {
	s.Settle(Resolved[E, A](a))
}

// Reject settles the execution with a failure value.
// Panics if the execution has already been settled.
func (s *Settle[E, A]) Reject(e E) {
	s.Settle(Rejected[E, A](e))
}

// TrySettle attempts to deliver the outcome.
// Returns true on success, or false if already settled.
func (s *Settle[E, A]) TrySettle(o Outcome[E, A]) bool {
	if s.used.Add(1) != 1 {
		return false
	}
	s.deliver(o)
	return true
}

// Task represents a computation that completes later, succeeding or failing
// at most once per execution. Constructing or composing a Task performs no
// work; each [Task.Fork] starts an independent execution.
type Task[E, A any] struct {
	start func(*Settle[E, A])
}

// NewTask creates a Task from a computation description. start receives the
// one-shot completion handle for that execution.
func NewTask[E, A any](start func(s *Settle[E, A])) Task[E, A] {
	return Task[E, A]{start: start}
}

// ResolvedTask creates a Task that settles immediately with a success value.
func ResolvedTask[E, A any](a A) Task[E, A] {
	return Task[E, A]{start: func(s *Settle[E, A]) {
		s.Resolve(a)
	}}
}

// RejectedTask creates a Task that settles immediately with a failure value.
func RejectedTask[E, A any](e E) Task[E, A] {
	return Task[E, A]{start: func(s *Settle[E, A]) {
		s.Reject(e)
	}}
}

// TaskFunc creates a Task that computes its outcome synchronously on the
// forking goroutine.
func TaskFunc[E, A any](f func() Outcome[E, A]) Task[E, A] {
	return Task[E, A]{start: func(s *Settle[E, A]) {
		s.Settle(f())
	}}
}

// SpawnTask creates a Task that computes its outcome on a new goroutine
// per execution.
func SpawnTask[E, A any](f func() Outcome[E, A]) Task[E, A] {
	return Task[E, A]{start: func(s *Settle[E, A]) {
		go func() {
			s.Settle(f())
		}()
	}}
}

// AfterTask creates a Task that resolves with a after d has elapsed.
func AfterTask[E, A any](d time.Duration, a A) Task[E, A] {
	return Task[E, A]{start: func(s *Settle[E, A]) {
		time.AfterFunc(d, func() {
			s.Resolve(a)
		})
	}}
}

// Fork starts one execution, supplying the two completion callbacks.
// Exactly one of onRejected or onResolved is invoked, at most once.
func (t Task[E, A]) Fork(onRejected func(E), onResolved func(A)) {
	t.start(NewSettle(func(o Outcome[E, A]) {
		if o.resolved {
			onResolved(o.value)
		} else {
			onRejected(o.err)
		}
	}))
}

// RunTask forks t and blocks until the execution settles.
func RunTask[E, A any](t Task[E, A]) Outcome[E, A] {
	ch := make(chan Outcome[E, A], 1)
	t.start(NewSettle(func(o Outcome[E, A]) {
		ch <- o
	}))
	return <-ch
}

// MapTask applies a function to the eventual success value. Rejection
// passes through unchanged and f is not invoked.
func MapTask[E, A, B any](t Task[E, A], f func(A) B) Task[E, B] {
	return Task[E, B]{start: func(s *Settle[E, B]) {
		t.start(NewSettle(func(o Outcome[E, A]) {
			s.Settle(MapOutcome(o, f))
		}))
	}}
}

// FlatMapTask chains one Task after another: when t resolves, f builds the
// next Task from the success value and that Task settles the chain.
// Rejection short-circuits and f is not invoked.
func FlatMapTask[E, A, B any](t Task[E, A], f func(A) Task[E, B]) Task[E, B] {
	return Task[E, B]{start: func(s *Settle[E, B]) {
		t.start(NewSettle(func(o Outcome[E, A]) {
			if !o.resolved {
				s.Reject(o.err)
				return
			}
			f(o.value).start(s)
		}))
	}}
}

// ThenTask chains two Tasks, discarding the first success value — equivalent
// to FlatMapTask(t, func(A) Task { return n }) without the transformation
// closure.
func ThenTask[E, A, B any](t Task[E, A], n Task[E, B]) Task[E, B] {
	return Task[E, B]{start: func(s *Settle[E, B]) {
		t.start(NewSettle(func(o Outcome[E, A]) {
			if !o.resolved {
				s.Reject(o.err)
				return
			}
			n.start(s)
		}))
	}}
}

// MapRejectedTask applies a function to the eventual failure value. Success
// passes through unchanged.
func MapRejectedTask[E, F, A any](t Task[E, A], f func(E) F) Task[F, A] {
	return Task[F, A]{start: func(s *Settle[F, A]) {
		t.start(NewSettle(func(o Outcome[E, A]) {
			s.Settle(MapRejectedOutcome(o, f))
		}))
	}}
}

// CatchTask recovers from rejection: when t rejects, f builds a fallback
// Task from the failure value. Success passes through and f is not invoked.
func CatchTask[E, A any](t Task[E, A], f func(E) Task[E, A]) Task[E, A] {
	return Task[E, A]{start: func(s *Settle[E, A]) {
		t.start(NewSettle(func(o Outcome[E, A]) {
			if o.resolved {
				s.Resolve(o.value)
				return
			}
			f(o.err).start(s)
		}))
	}}
}

// ApTask applies the eventual function to the eventual value. tf forks
// first; ta forks only after tf resolves. The first rejection settles the
// result and later constituents never fork.
func ApTask[E, A, B any](tf Task[E, func(A) B], ta Task[E, A]) Task[E, B] {
	return FlatMapTask(tf, func(f func(A) B) Task[E, B] {
		return MapTask(ta, f)
	})
}

// Map2Task combines two independent Tasks with f, forking them in fixed
// left-to-right order. The first rejection settles the result and later
// constituents never fork.
func Map2Task[E, A, B, C any](ta Task[E, A], tb Task[E, B], f func(A, B) C) Task[E, C] {
	return FlatMapTask(ta, func(a A) Task[E, C] {
		return MapTask(tb, func(b B) C {
			return f(a, b)
		})
	})
}

// Map3Task combines three independent Tasks with f, forking them in fixed
// left-to-right order. The first rejection settles the result and later
// constituents never fork.
func Map3Task[E, A, B, C, D any](ta Task[E, A], tb Task[E, B], tc Task[E, C], f func(A, B, C) D) Task[E, D] {
	return FlatMapTask(ta, func(a A) Task[E, D] {
		return FlatMapTask(tb, func(b B) Task[E, D] {
			return MapTask(tc, func(c C) D {
				return f(a, b, c)
			})
		})
	})
}

// AllTasks gathers the success values of ts in order, forking each
// constituent after the previous one resolves. The first rejection settles
// the result and later constituents never fork.
func AllTasks[E, A any](ts []Task[E, A]) Task[E, []A] {
	return Task[E, []A]{start: func(s *Settle[E, []A]) {
		out := make([]A, 0, len(ts))
		var step func(int)
		step = func(i int) {
			if i == len(ts) {
				s.Resolve(out)
				return
			}
			ts[i].start(NewSettle(func(o Outcome[E, A]) {
				if !o.resolved {
					s.Reject(o.err)
					return
				}
				out = append(out, o.value)
				step(i + 1)
			}))
		}
		step(0)
	}}
}
