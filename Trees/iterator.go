package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-bst/internal/invariants"
)

// Iterator is a read-only forward cursor over the in-order sequence of a BST.
// It holds no state besides the node it is at: stepping forward follows
// parent references, so no stack is kept.
// An Iterator doesn't own anything and mustn't be used once its tree has been
// cleared, assigned to, or added to. The zero value equals End().
type Iterator[T any] struct {
	n *node[T]
}

// Begin returns an Iterator at the smallest value. On an empty tree it is
// End().
// Time: O(D); Space: O(1)
func (u *BST[T, C, E]) Begin() Iterator[T] {
	if u.root == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{leftmost(u.root)}
}

// End returns the position past the largest value.
func (u *BST[T, C, E]) End() Iterator[T] {
	return Iterator[T]{}
}

// Value at the Iterator's position. Calling Value on End() is a programming
// error.
func (it Iterator[T]) Value() T {
	invariants.Assert(it.n != nil, "Trees: Value called on an end iterator")
	return it.n.v
}

// Next moves it to the next value in order, or to End() if it was at the
// largest. Calling Next on End() is a programming error.
// Time: amortized O(1); Space: O(1)
func (it *Iterator[T]) Next() {
	invariants.Assert(it.n != nil, "Trees: Next called on an end iterator")
	it.n = next(it.n)
}

// PostNext is Next, but returns the position it had before moving.
func (it *Iterator[T]) PostNext() Iterator[T] {
	old := *it
	it.Next()
	return old
}

// Equal reports whether it and o are at the same node. Values aren't
// compared.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.n == o.n
}

// All [Tree.All]
// Time: O(n) for the whole sequence; Space: O(1)
func (u *BST[T, C, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := u.Begin(), u.End(); !it.Equal(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
