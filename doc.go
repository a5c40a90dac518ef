// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package box provides algebraic value containers in Go.
//
// Three container families cover the three ways a value can be not-here-yet:
// [Maybe] for values that may be absent, [IO] for values behind a deferred
// side effect, and [Task] for values that arrive asynchronously and settle
// at most once. [Outcome] is the settled result of a Task execution.
//
// Containers are immutable values. Composition never unwraps by hand:
// functor maps transform held values, applicative operations combine
// independent containers, and monadic flat-maps sequence dependent ones.
//
// # Design Philosophy
//
// box provides:
//   - Tagged-variant sum types with exhaustive pattern matching instead of
//     sentinel values and duck typing
//   - A single settle point per asynchronous execution, making the
//     at-most-once completion invariant checkable at runtime
//   - Deferral as data: IO and Task describe work; nothing runs before
//     Run or Fork
//
// # Maybe
//
// [Maybe] is the optional-value variant: Just (present) or Nothing
// (absent). Absence is a valid state, not an error; it propagates through
// every combinator without invoking transformation functions.
//
//   - [Just], [Nothing], [FromPtr]: Constructors — FromPtr lifts a nullable
//     pointer (nil becomes Nothing)
//   - [Maybe.IsJust], [Maybe.IsNothing]: Predicates
//   - [Maybe.Get], [Maybe.OrElse]: Accessors
//   - [MatchMaybe]: Pattern matching
//   - [MapMaybe]: Functor map over the held value
//   - [FlatMapMaybe]: Monadic bind
//   - [ApMaybe], [Map2Maybe]: Applicative combination — absence on either
//     side short-circuits to Nothing
//   - [EqualMaybe], [EqualMaybeBy]: Structural equality
//
// # Outcome
//
// [Outcome] represents a settled two-branch result: Rejected (failure) or
// Resolved (success). It is what a [Task] execution delivers, and is useful
// standalone wherever a computation has already settled.
//
//   - [Rejected], [Resolved]: Constructors
//   - [Outcome.IsRejected], [Outcome.IsResolved]: Predicates
//   - [Outcome.GetRejected], [Outcome.GetResolved]: Accessors
//   - [MatchOutcome]: Pattern matching
//   - [MapOutcome]: Functor map over the success value
//   - [FlatMapOutcome]: Monadic bind
//   - [MapRejectedOutcome]: Transform the failure value
//   - [EqualOutcome]: Structural equality
//
// # Task
//
// [Task] describes a computation that completes later, succeeding or
// failing at most once per execution. Construction and composition perform
// no work; [Task.Fork] starts one independent execution and supplies the
// two completion callbacks, of which exactly one is invoked, at most once.
//
// Every execution delivers through a [Settle] handle, the single settle
// point. Settling twice is a programming error and panics; [Settle.TrySettle]
// exists for execution sources that legitimately race.
//
//   - [NewTask]: General constructor from a start function
//   - [ResolvedTask], [RejectedTask]: Immediately-settling constructors
//   - [TaskFunc]: Synchronous computation per fork
//   - [SpawnTask]: Goroutine-backed computation per fork
//   - [AfterTask]: Timer-backed resolution
//   - [EnqueueTask]: Queue-backed computation (see Run Queue)
//   - [Task.Fork]: Start one execution with two completion callbacks
//   - [RunTask]: Fork and block until settled, returning the [Outcome]
//   - [MapTask]: Transform the eventual success value
//   - [FlatMapTask]: Chain one Task after another
//   - [ThenTask]: Chain, discarding the first success value
//   - [MapRejectedTask]: Transform the eventual failure value
//   - [CatchTask]: Recover from rejection with a fallback Task
//   - [ApTask], [Map2Task], [Map3Task], [AllTasks]: Fixed-order applicative
//     combination — constituents fork strictly left to right, and the first
//     rejection settles the result without forking the rest
//   - [NewSettle], [Settle.Settle], [Settle.Resolve], [Settle.Reject],
//     [Settle.TrySettle]: One-shot completion handle
//
// # Run Queue
//
// [Queue] is a single-threaded cooperative scheduler: a FIFO of jobs run by
// an explicit [Queue.Drain]. [EnqueueTask] bridges it to Task, so forked
// work can be deferred and driven to completion iteratively.
//
//   - [Queue.Push]: Append a job
//   - [Queue.Len]: Pending job count
//   - [Queue.Drain]: Run jobs in FIFO order until empty (iterative loop)
//
// # IO
//
// [IO] wraps a zero-argument thunk. Constructing or composing an IO
// performs no side effect; [IO.Run] executes the thunk and may be called
// any number of times, re-executing it each call. A panic raised by the
// thunk propagates to the Run caller — the container neither recovers nor
// wraps it.
//
//   - [PureIO]: Effect-free lift
//   - [IO.Run]: Execute the thunk
//   - [MapIO]: Transform the eventual result
//   - [FlatMapIO]: Sequence dependent computations
//   - [ThenIO]: Sequence, discarding the first result
//   - [ApIO], [Map2IO]: Applicative combination with a fixed effect order
//   - [TapIO]: Observe the value, passing it through
//
// # Function Helpers
//
//   - [Iden]: Identity
//   - [Comp]: Left-to-right composition — Comp(f, g)(x) == g(f(x))
//   - [Const]: Constant function
//   - [Curry], [Uncurry]: Two-argument and curried forms
//   - [Unit]: The informationless type
//
// # Error Model
//
// Absence ([Nothing]) is the soft channel, modeled in the type. Task
// rejection is an explicit failure value delivered to the rejection
// callback, never raised as a panic. IO thunk panics propagate to the Run
// caller. Panics raised by the package itself are reserved for contract
// violations and carry a "box: " prefix.
//
// # Example
//
//	x, y := 2, 3
//	sum := box.Map2Maybe(box.FromPtr(&x), box.FromPtr(&y), func(a, b int) int {
//		return a + b
//	})
//	// sum == box.Just(5)
//
//	page := box.Map3Task(header, first, second, func(h, a, b string) string {
//		return h + a + b
//	})
//	page.Fork(logError, render)
package box
