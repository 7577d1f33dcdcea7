// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package treewalk

// Either represents a value of one of two cases: Left or Right.
//
// In the unfolding traversal ([Unfold], [Step]) the convention is the usual
// tail-recursion one: Left(a) means "pending, expand again from a", and
// Right(b) means "done, the final value is b".
type Either[A, B any] struct {
	isRight bool
	left    A
	right   B
}

// Left creates a Left value.
func Left[A, B any](a A) Either[A, B] {
	return Either[A, B]{isRight: false, left: a}
}

// Right creates a Right value.
func Right[A, B any](b B) Either[A, B] {
	return Either[A, B]{isRight: true, right: b}
}

// IsLeft returns true if this is a Left value.
func (e Either[A, B]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if this is a Right value.
func (e Either[A, B]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[A, B]) GetLeft() (A, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero A
	return zero, false
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[A, B]) GetRight() (B, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero B
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[A, B, T any](e Either[A, B], onLeft func(A) T, onRight func(B) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[A, B, C any](e Either[A, B], f func(B) C) Either[A, C] {
	if e.isRight {
		return Right[A](f(e.right))
	}
	return Left[A, C](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[A, B, C any](e Either[A, B], f func(B) Either[A, C]) Either[A, C] {
	if e.isRight {
		return f(e.right)
	}
	return Left[A, C](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[A, B, C any](e Either[A, B], f func(A) C) Either[C, B] {
	if e.isRight {
		return Right[C](e.right)
	}
	return Left[C, B](f(e.left))
}
