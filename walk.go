// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package treewalk

// Iterative post-order evaluation over trees.
//
// Fold is the single evaluation loop; Map, FlatMap, Size and Depth are
// derived operations kept as thin wrappers. The loop simulates recursive
// descent with three explicit structures: a todo stack of nodes awaiting
// processing, an identity set of branches already split into their children,
// and a done stack of intermediate results. Stack usage is constant in tree
// depth; memory is bounded by tree size.

// Fold reduces a tree bottom-up: onLeaf maps each payload to a result and
// onBranch combines the results of the two subtrees, in post-order
// (left subtree, right subtree, then the branch itself).
//
// The walk is iterative and safe for arbitrarily deep finite trees.
// A branch node is visited twice: the first visit records it in the expanded
// set and pushes its children (right below left, so the left child is
// processed first); the second visit pops the two child results off done and
// combines them. The expanded entry is removed on combination, so a branch
// node physically shared between several tree positions is re-expanded at
// each occurrence.
func Fold[A, B any](t Tree[A], onLeaf func(A) B, onBranch func(left, right B) B) B {
	todo := []Tree[A]{t}
	expanded := make(map[*branch[A]]struct{})
	var done []B
	for len(todo) > 0 {
		switch n := todo[len(todo)-1].(type) {
		case *leaf[A]:
			todo = todo[:len(todo)-1]
			done = append(done, onLeaf(n.value))
		case *branch[A]:
			if _, seen := expanded[n]; !seen {
				expanded[n] = struct{}{}
				todo = append(todo, n.right, n.left)
				continue
			}
			delete(expanded, n)
			todo = todo[:len(todo)-1]
			right := done[len(done)-1]
			left := done[len(done)-2]
			done = done[:len(done)-2]
			done = append(done, onBranch(left, right))
		default:
			panic("treewalk: unknown tree variant")
		}
	}
	// Invariant: an empty todo stack leaves exactly one entry on done.
	return done[0]
}

// Map applies a pure function to every leaf payload, preserving the branch
// structure (functor map).
func Map[A, B any](t Tree[A], f func(A) B) Tree[B] {
	return Fold(t, func(a A) Tree[B] { return Leaf(f(a)) }, Branch[B])
}

// FlatMap replaces every leaf with the subtree f returns for its payload,
// grafting the results into the original branch structure (monadic bind).
func FlatMap[A, B any](t Tree[A], f func(A) Tree[B]) Tree[B] {
	return Fold(t, f, Branch[B])
}

// Size returns the total number of nodes (leaves and branches).
func Size[A any](t Tree[A]) int {
	return Fold(t, func(A) int { return 1 }, func(left, right int) int { return left + right + 1 })
}

// Depth returns the height of the tree. A single leaf has depth 1.
func Depth[A any](t Tree[A]) int {
	return Fold(t, func(A) int { return 1 }, func(left, right int) int { return 1 + max(left, right) })
}

// Equal reports whether two trees have identical shape and leaf payloads.
// The comparison is iterative and safe for arbitrarily deep trees.
func Equal[A comparable](x, y Tree[A]) bool {
	type pair struct{ x, y Tree[A] }
	todo := []pair{{x, y}}
	for len(todo) > 0 {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		switch xn := p.x.(type) {
		case *leaf[A]:
			yn, ok := p.y.(*leaf[A])
			if !ok || xn.value != yn.value {
				return false
			}
		case *branch[A]:
			yn, ok := p.y.(*branch[A])
			if !ok {
				return false
			}
			todo = append(todo, pair{xn.right, yn.right}, pair{xn.left, yn.left})
		default:
			panic("treewalk: unknown tree variant")
		}
	}
	return true
}
