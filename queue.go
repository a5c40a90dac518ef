// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package box

// Queue is a single-threaded cooperative run queue: jobs pushed onto it run
// in FIFO order when [Queue.Drain] is called, and jobs may push further
// jobs into the same drain. Not safe for concurrent use; pair one Queue
// with one goroutine.
type Queue struct {
	jobs []func()
}

// Push appends a job to the queue without running it.
func (q *Queue) Push(job func()) {
	q.jobs = append(q.jobs, job)
}

// Len returns the number of pending jobs.
func (q *Queue) Len() int {
	return len(q.jobs)
}

// Drain runs pending jobs in FIFO order until the queue is empty, including
// jobs pushed while draining. The loop is iterative, so arbitrarily deep
// job chains do not grow the stack.
func (q *Queue) Drain() {
	for len(q.jobs) > 0 {
		job := q.jobs[0]
		q.jobs[0] = nil // release the slot so the backing array does not pin the job
		q.jobs = q.jobs[1:]
		job()
	}
	q.jobs = nil
}

// EnqueueTask creates a Task whose outcome is computed by f as a queued
// job: forking enqueues the job, and the Task settles when q drains it.
func EnqueueTask[E, A any](q *Queue, f func() Outcome[E, A]) Task[E, A] {
	return Task[E, A]{start: func(s *Settle[E, A]) {
		q.Push(func() {
			s.Settle(f())
		})
	}}
}
