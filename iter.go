// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package treewalk

import "iter"

// Leaves returns a left-to-right sequence of the tree's leaf payloads,
// usable with range. The iteration uses an explicit stack and is safe for
// arbitrarily deep trees.
func Leaves[A any](t Tree[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		todo := []Tree[A]{t}
		for len(todo) > 0 {
			switch n := todo[len(todo)-1].(type) {
			case *leaf[A]:
				todo = todo[:len(todo)-1]
				if !yield(n.value) {
					return
				}
			case *branch[A]:
				todo = todo[:len(todo)-1]
				todo = append(todo, n.right, n.left)
			default:
				panic("treewalk: unknown tree variant")
			}
		}
	}
}

// AppendLeaves appends the tree's leaf payloads to dst in left-to-right
// order and returns the extended slice.
func AppendLeaves[A any](dst []A, t Tree[A]) []A {
	for a := range Leaves(t) {
		dst = append(dst, a)
	}
	return dst
}
