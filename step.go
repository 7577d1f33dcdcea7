// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package treewalk

import "sync/atomic"

// Stepping boundary for external runtimes.
// Step provides one-pending-leaf-at-a-time unfolding, unlike [Unfold] which
// drives the whole traversal to completion with a synchronous step function.
// Callers that obtain expansions asynchronously (an event loop, a remote
// source) resolve each pending value themselves and hand the expansion back
// through the suspension.

// Suspension represents an unfolding paused on a pending (Left) leaf.
// It holds the pending value and a one-shot resumption handle.
//
// Suspension enforces affine semantics: Resume may be called at most once.
// Calling Resume twice panics. Use Discard to explicitly abandon a
// suspension.
type Suspension[A, B any] struct {
	used    atomic.Uintptr
	pending A
	m       *machine[A, B]
}

// Pending returns the value awaiting expansion.
func (s *Suspension[A, B]) Pending() A { return s.pending }

// Resume replaces the pending leaf with its expansion and advances the
// traversal to the next suspension or to completion.
// Panics if the suspension has already been resumed or discarded.
//
// The returned suspension reuses the receiver's memory when possible,
// avoiding one allocation per step.
func (s *Suspension[A, B]) Resume(sub Tree[Either[A, B]]) (Tree[B], *Suspension[A, B]) {
	if s.used.Add(1) != 1 {
		panic("treewalk: suspension resumed twice")
	}
	s.m.resume(sub)
	return advance(s.m, s)
}

// TryResume attempts to advance the traversal.
// Returns (tree, suspension, true) on success, or (nil, nil, false) if the
// suspension has already been used.
func (s *Suspension[A, B]) TryResume(sub Tree[Either[A, B]]) (Tree[B], *Suspension[A, B], bool) {
	if s.used.Add(1) != 1 {
		return nil, nil, false
	}
	s.m.resume(sub)
	result, next := advance(s.m, s)
	return result, next, true
}

// Discard marks the suspension as consumed without resuming.
// The partially resolved traversal state is dropped.
func (s *Suspension[A, B]) Discard() {
	s.used.Store(1)
	s.m = nil
}

// Step drives the unfolding of root until it either completes or pauses on
// a pending leaf.
// Returns (tree, nil) if every leaf was already Right, or (nil, suspension)
// holding the first pending value otherwise.
//
// Example:
//
//	result, susp := Step(root)
//	for susp != nil {
//	    sub := expand(susp.Pending())
//	    result, susp = susp.Resume(sub)
//	}
func Step[A, B any](root Tree[Either[A, B]]) (Tree[B], *Suspension[A, B]) {
	return advance(newMachine(root), nil)
}

// advance runs the machine and packages the outcome, reusing a consumed
// suspension when one is available.
func advance[A, B any](m *machine[A, B], reuse *Suspension[A, B]) (Tree[B], *Suspension[A, B]) {
	result, pending, suspended := m.run()
	if !suspended {
		return result, nil
	}
	s := reuse
	if s == nil {
		s = &Suspension[A, B]{}
	} else {
		s.used.Store(0)
	}
	s.pending = pending
	s.m = m
	return nil, s
}
