// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package treewalk

import "fmt"

// Tree is a finite binary tree with two variants: a leaf holding a single
// payload value, or a branch holding two child trees.
//
// Trees are immutable values: no operation in this package mutates an input
// tree, and every transforming operation allocates a new result tree.
// Both variants are pointer-backed, so node identity is pointer identity;
// the traversal machinery relies on this to tell structurally equal but
// distinct branch nodes apart.
//
// The interface is sealed: Leaf and Branch are the only constructors.
type Tree[A any] interface {
	// tree is the unexported marker method sealing the variant set.
	// The phantom parameter binds A so that Tree[int] and Tree[string]
	// are distinct interface types.
	tree(A)
}

// leaf is the Tree variant holding one payload value.
type leaf[A any] struct {
	value A
}

func (*leaf[A]) tree(A) {}

// branch is the Tree variant holding two child trees.
type branch[A any] struct {
	left  Tree[A]
	right Tree[A]
}

func (*branch[A]) tree(A) {}

// Leaf creates a tree consisting of a single leaf holding a.
func Leaf[A any](a A) Tree[A] {
	return &leaf[A]{value: a}
}

// Branch creates a tree node with the given left and right subtrees.
func Branch[A any](left, right Tree[A]) Tree[A] {
	return &branch[A]{left: left, right: right}
}

func (n *leaf[A]) String() string {
	return fmt.Sprintf("Leaf(%v)", n.value)
}

// String renders the subtree. Iterative, so deep trees print without
// stack growth.
func (n *branch[A]) String() string {
	return Fold[A, string](n,
		func(a A) string { return fmt.Sprintf("Leaf(%v)", a) },
		func(left, right string) string { return "Branch(" + left + ", " + right + ")" },
	)
}

// MatchTree pattern matches on the tree variant, calling onLeaf with the
// payload or onBranch with the two children.
func MatchTree[A, T any](t Tree[A], onLeaf func(A) T, onBranch func(left, right Tree[A]) T) T {
	switch n := t.(type) {
	case *leaf[A]:
		return onLeaf(n.value)
	case *branch[A]:
		return onBranch(n.left, n.right)
	default:
		panic("treewalk: unknown tree variant")
	}
}
