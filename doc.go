// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package treewalk provides stack-safe traversal and unfolding of binary
// trees in Go.
//
// The core type [Tree] is a finite binary tree with [Leaf] and [Branch]
// variants. Recursive operations over such trees — folding, mapping,
// unfolding — normally grow the call stack with tree depth and overflow on
// deep inputs. Every operation in this package instead runs an iterative
// work-list loop: an explicit todo stack of nodes awaiting processing, an
// identity set of branches already split into children, and a done stack of
// resolved results. Memory is bounded by tree size; goroutine stack usage is
// constant in tree depth.
//
// # Design Philosophy
//
// treewalk provides:
//   - Immutable, pointer-backed tree values; operations allocate new trees
//     and never mutate inputs
//   - One shared evaluation loop ([Fold], and the unfolding machine behind
//     [Unfold] and [Step]) simulating recursive descent as data
//   - Branch-identity bookkeeping, so structurally equal but distinct
//     branch nodes are never conflated during a walk
//
// # Data Types
//
//   - [Tree]: sealed binary tree interface
//   - [Leaf], [Branch]: constructors for the two variants
//   - [MatchTree]: exhaustive pattern matching over the variants
//   - [Either]: two-case sum type with [Left] and [Right] constructors;
//     in unfolding, Left(a) means "pending, expand again from a" and
//     Right(b) means "done with b"
//   - [MatchEither], [MapEither], [FlatMapEither], [MapLeftEither]:
//     Either combinators
//
// # Folding and Transformation
//
// Post-order reduction and the operations derived from it, all iterative:
//
//   - [Fold]: bottom-up reduction with a leaf function and a branch combiner
//   - [Map]: transform every leaf payload, preserving branch structure
//   - [FlatMap]: replace every leaf with a subtree (monadic bind)
//   - [Size], [Depth]: node count and height
//   - [Equal]: structural equality
//
// # Unfolding
//
// [Unfold] is the tree-shaped tail recursion operator:
//
//	Unfold(seed, step) // step: func(A) Tree[Either[A, B]] → Tree[B]
//
// step maps a pending value to a subtree whose leaves either request
// further expansion (Left) or terminate with a final value (Right). Unfold
// re-expands Left leaves until every leaf is Right. A step that always
// returns Left at some position does not terminate; no expansion bound is
// enforced, and panics from step propagate unmodified.
//
// # Stepping Boundary
//
// [Step] provides one-pending-leaf-at-a-time unfolding for callers that
// resolve expansions externally (e.g. an event loop) instead of supplying a
// synchronous step function:
//
//   - [Step]: drive an unfolding until it completes or pauses on a pending leaf
//   - [Suspension]: paused traversal with a one-shot resumption handle
//   - [Suspension.Pending]: the value awaiting expansion
//   - [Suspension.Resume]: hand back the expansion, advance to the next
//     suspension or completion (panics on reuse)
//   - [Suspension.TryResume]: non-panicking variant of Resume
//   - [Suspension.Discard]: drop without resuming
//
// Affine semantics: each [Suspension] may be resumed at most once.
//
// # Iteration
//
//   - [Leaves]: left-to-right leaf payload sequence as an iter.Seq
//   - [AppendLeaves]: collect leaf payloads into a slice
//
// # Concurrency
//
// All traversal state is local to one call. Trees are immutable, so
// distinct goroutines may traverse the same tree concurrently without
// synchronization; a [Suspension] is a single-owner handle and must not be
// shared.
//
// # Example
//
//	step := func(v int) treewalk.Tree[treewalk.Either[int, int]] {
//		if v > 0 {
//			return treewalk.Branch(
//				treewalk.Leaf(treewalk.Left[int, int](v-1)),
//				treewalk.Leaf(treewalk.Right[int](v)),
//			)
//		}
//		return treewalk.Leaf(treewalk.Right[int](0))
//	}
//
//	result := treewalk.Unfold(2, step)
//	// result == Branch(Branch(Leaf(0), Leaf(1)), Leaf(2))
package treewalk
