package Trees

// A node in the BST.
// l and r own their subtrees; p is only a back-reference to the node whose
// l or r points here, and is nil for the root.
type node[T any] struct {
	v       T
	l, r, p *node[T]
}

// leftmost node of the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func leftmost[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node of the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func rightmost[T any](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// next returns the in-order successor of n, or nil if n is the last node.
// If n has a right child, that subtree's leftmost node follows it. Otherwise
// climb while n is a right child; the parent reached by the last step up
// is the successor.
// Time: amortized O(1); Space: O(1)
func next[T any](n *node[T]) *node[T] {
	if n.r != nil {
		return leftmost(n.r)
	}
	for n.p != nil && n.p.r == n {
		n = n.p
	}
	return n.p
}

// preNext returns the pre-order successor of n within the subtree rooting at
// top, or nil once that subtree is exhausted. Visiting with preNext yields a
// node before both its subtrees and its left subtree before its right one.
// Time: amortized O(1); Space: O(1)
func preNext[T any](n, top *node[T]) *node[T] {
	if n.l != nil {
		return n.l
	}
	if n.r != nil {
		return n.r
	}
	for n != top {
		p := n.p
		if p.l == n && p.r != nil {
			return p.r
		}
		n = p
	}
	return nil
}

// postFirst returns the first node of the post-order sequence of the subtree
// rooting at n: descend preferring left, falling back to right, until a leaf.
func postFirst[T any](n *node[T]) *node[T] {
	for {
		if n.l != nil {
			n = n.l
		} else if n.r != nil {
			n = n.r
		} else {
			return n
		}
	}
}
