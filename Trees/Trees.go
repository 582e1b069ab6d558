// Package Trees implements BST, an unbalanced binary search tree over an
// arbitrary element type. Ordering and de-duplication are defined by two
// strategy types fixed when the tree type is instantiated.
package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Comparer orders values of type T. Less must be a strict weak order:
// irreflexive, asymmetric and transitive, with !Less(a,b) && !Less(b,a)
// meaning a and b are equivalent.
// Implementations are used through their zero value, so any state they carry
// is ignored.
type Comparer[T any] interface {
	Less(a, b T) bool
}

// Equaler decides whether two values of type T are the same element. It is
// expected to agree with the Comparer used next to it, that is
// Equal(a,b) == (!Less(a,b) && !Less(b,a)). This is not verified.
type Equaler[T any] interface {
	Equal(a, b T) bool
}

// Tree is the read and insert surface of a set container, so code filling or
// querying one needn't name its strategy types. Methods returning (T, bool)
// leave T undefined when the bool is false.
type Tree[T any] interface {
	//Add v to the Tree. Adding a value equal to an existing one is a no-op.
	//A non-nil error means nothing was changed.
	Add(v T) error
	//Find reports whether a value equal to v is in the Tree.
	Find(v T) bool
	//Size of the tree.
	Size() uint
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//All yields the elements in ascending order. The tree must not be
	//modified while the sequence is being consumed.
	All() iter.Seq[T]
	//Corrupt reports whether a structural check of the tree fails.
	Corrupt() bool
}

// NaturalLess orders any constraints.Ordered type with the < operator.
type NaturalLess[T constraints.Ordered] struct{}

func (NaturalLess[T]) Less(a, b T) bool {
	return a < b
}

// NaturalEqual compares with the == operator.
type NaturalEqual[T comparable] struct{}

func (NaturalEqual[T]) Equal(a, b T) bool {
	return a == b
}

// Reverse inverts the order given by C, so a tree using it keeps its elements
// in descending order of C.
type Reverse[T any, C Comparer[T]] struct{}

func (Reverse[T, C]) Less(a, b T) bool {
	var c C
	return c.Less(b, a)
}
