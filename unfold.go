// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package treewalk

// Stack-safe tree unfolding.
//
// Unfold is the tree-shaped tail recursion operator: starting from a seed,
// a step function proposes a subtree of Either values per pending value,
// and the machine keeps expanding Left leaves until every leaf is Right.
// Naive recursive unfolding grows the call stack with tree depth; the
// machine below trades call-stack depth for heap-resident work lists,
// bounded by tree size rather than tree depth.

// machine is the traversal state for one unfolding run.
//
// todo is an explicit stack of nodes awaiting processing; expanded records,
// by node identity, which branches have been split into their children
// (distinguishing the descend visit from the combine visit); done is the
// accumulator stack of fully resolved subtrees. All three are local to one
// run and never shared between callers.
type machine[A, B any] struct {
	todo     []Tree[Either[A, B]]
	expanded map[*branch[Either[A, B]]]struct{}
	done     []Tree[B]
}

func newMachine[A, B any](root Tree[Either[A, B]]) *machine[A, B] {
	return &machine[A, B]{
		todo:     []Tree[Either[A, B]]{root},
		expanded: make(map[*branch[Either[A, B]]]struct{}),
	}
}

// run processes the work list until the whole tree is resolved or the top
// of todo is a pending (Left) leaf. It returns (result, zero, false) on
// completion, or (nil, pending value, true) when suspended on a Left leaf;
// the leaf stays on top of todo until resume replaces it.
func (m *machine[A, B]) run() (Tree[B], A, bool) {
	for len(m.todo) > 0 {
		switch n := m.todo[len(m.todo)-1].(type) {
		case *leaf[Either[A, B]]:
			if a, ok := n.value.GetLeft(); ok {
				return nil, a, true
			}
			b, _ := n.value.GetRight()
			m.todo = m.todo[:len(m.todo)-1]
			m.done = append(m.done, Leaf(b))
		case *branch[Either[A, B]]:
			if _, seen := m.expanded[n]; !seen {
				// First visit: split. Right goes under left so the left
				// child is processed first; the branch itself stays on
				// todo beneath both, awaiting the combine visit.
				m.expanded[n] = struct{}{}
				m.todo = append(m.todo, n.right, n.left)
				continue
			}
			// Second visit: both children are resolved and sit on top of
			// done, right above left. Removing the expanded entry here
			// lets a physically shared branch node resolve again at its
			// next occurrence.
			delete(m.expanded, n)
			m.todo = m.todo[:len(m.todo)-1]
			right := m.done[len(m.done)-1]
			left := m.done[len(m.done)-2]
			m.done = m.done[:len(m.done)-2]
			m.done = append(m.done, Branch(left, right))
		default:
			panic("treewalk: unknown tree variant")
		}
	}
	// Invariant: an empty todo stack leaves exactly one entry on done.
	var zero A
	return m.done[0], zero, false
}

// resume replaces the pending leaf on top of todo with its expansion.
// Only valid after run reported a suspension.
func (m *machine[A, B]) resume(sub Tree[Either[A, B]]) {
	m.todo[len(m.todo)-1] = sub
}

// Unfold builds a fully resolved tree from a seed value.
//
// step maps a pending value to a subtree of Either values: Left(a) requests
// further expansion from a, Right(b) terminates that position with b. Unfold
// applies step to the seed, then keeps re-expanding every Left leaf until
// all leaves are Right, and returns the tree of Right values with the
// accumulated branch structure.
//
// The traversal is iterative and safe for arbitrarily deep and large finite
// trees. It is a pure function of its inputs: the trees step returns are
// never mutated. A step that always returns Left at some position does not
// terminate; no expansion bound is enforced. Panics raised by step propagate
// to the caller unmodified.
func Unfold[A, B any](seed A, step func(A) Tree[Either[A, B]]) Tree[B] {
	m := newMachine(step(seed))
	for {
		result, pending, suspended := m.run()
		if !suspended {
			return result
		}
		m.resume(step(pending))
	}
}
