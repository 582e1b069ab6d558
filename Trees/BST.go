package Trees

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/go-bst/internal/invariants"
	"golang.org/x/exp/constraints"
)

// BST is a binary search tree with no repeated values. It doesn't balance
// itself: its shape is decided entirely by the order values were added in,
// so its height D is between log2(n) and n.
// T is the type of values it will hold; C orders them and E decides when two
// of them are the same value. Both are used through their zero values, so
// they're fixed for every tree of one instantiation.
// Every node keeps a reference to its parent. This is what lets the
// iterator, Clear, Clone and Subtree walk the tree without recursion or an
// explicit stack, so none of them is bounded by the call stack even on
// degenerate trees.
// The zero value is an empty tree with default options. A BST isn't safe for
// concurrent use.
type BST[T any, C Comparer[T], E Equaler[T]] struct {
	root *node[T]
	sz   uint
	opts options
}

var _ Tree[int] = (*BST[int, NaturalLess[int], NaturalEqual[int]])(nil)

// New returns an empty BST.
func New[T any, C Comparer[T], E Equaler[T]](opts ...Option) *BST[T, C, E] {
	return &BST[T, C, E]{opts: makeOptions(opts)}
}

// NewOrdered returns an empty BST ordered by < and de-duplicated by ==.
func NewOrdered[T constraints.Ordered](opts ...Option) *BST[T, NaturalLess[T], NaturalEqual[T]] {
	return New[T, NaturalLess[T], NaturalEqual[T]](opts...)
}

// FromValue returns a BST holding only v.
func FromValue[T any, C Comparer[T], E Equaler[T]](v T, opts ...Option) (*BST[T, C, E], error) {
	u := New[T, C, E](opts...)
	if err := u.Add(v); err != nil {
		return nil, err
	}
	return u, nil
}

// FromSeq builds a BST by adding the values of seq in order. Later values
// equal to earlier ones are dropped. If an Add fails, the partial tree is
// released and the error returned.
// Time: O(n*D)
func FromSeq[T any, C Comparer[T], E Equaler[T]](seq iter.Seq[T], opts ...Option) (*BST[T, C, E], error) {
	u := New[T, C, E](opts...)
	for v := range seq {
		if err := u.Add(v); err != nil {
			u.Clear()
			return nil, errors.Wrap(err, "building tree")
		}
	}
	return u, nil
}

// FromSlice is FromSeq over the elements of vs.
func FromSlice[T any, C Comparer[T], E Equaler[T]](vs []T, opts ...Option) (*BST[T, C, E], error) {
	return FromSeq[T, C, E](slices.Values(vs), opts...)
}

func (u *BST[T, C, E]) less(a, b T) bool {
	var c C
	return c.Less(a, b)
}

func (u *BST[T, C, E]) equal(a, b T) bool {
	var e E
	return e.Equal(a, b)
}

// search walks from the root towards v. It returns the node equal to v if
// there is one; otherwise hit is nil and parent is the node v would be
// attached under (nil for an empty tree).
// Time: O(D); Space: O(1)
func (u *BST[T, C, E]) search(v T) (hit, parent *node[T]) {
	for cur := u.root; cur != nil; {
		if u.equal(v, cur.v) {
			return cur, parent
		}
		parent = cur
		if u.less(v, cur.v) {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return nil, parent
}

// Add [Tree.Add]. If a value equal to v is already present it is kept and v is
// discarded. Otherwise v is attached as a leaf. If the allocator refuses the
// new node the tree is left untouched and the error is returned.
// Time: O(D); Space: O(1)
func (u *BST[T, C, E]) Add(v T) error {
	hit, p := u.search(v)
	if hit != nil {
		u.opts.infof("bst: add %v: equal value present, discarded", v)
		return nil
	}
	if err := u.opts.allocate(); err != nil {
		return errors.Wrapf(err, "adding %v", v)
	}
	n := &node[T]{v: v, p: p}
	if p == nil {
		u.root = n
		u.opts.infof("bst: add %v: root", v)
	} else if u.less(v, p.v) {
		p.l = n
		u.opts.infof("bst: add %v: left leaf of %v", v, p.v)
	} else {
		p.r = n
		u.opts.infof("bst: add %v: right leaf of %v", v, p.v)
	}
	u.sz++
	return nil
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BST[T, C, E]) Find(v T) bool {
	hit, _ := u.search(v)
	return hit != nil
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BST[T, C, E]) Size() uint {
	return u.sz
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T, C, E]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T, C, E]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// fill adds the values of the subtree rooting at top to u in pre-order: a node,
// then its left subtree, then its right subtree. A parent is always added
// before its children, so u ends up with the shape of that subtree. On
// failure u is cleared.
// Time: O(n*D); Space: O(1)
func (u *BST[T, C, E]) fill(top *node[T]) error {
	for n := top; n != nil; n = preNext(n, top) {
		if err := u.Add(n.v); err != nil {
			u.Clear()
			return err
		}
	}
	if invariants.Enabled {
		if err := u.CheckInvariants(); err != nil {
			panic(err)
		}
	}
	return nil
}

// derive returns an empty tree for Clone and Subtree. It logs like u but
// allocates only through what opts give it, so building it never draws on
// u's allocator.
func (u *BST[T, C, E]) derive(opts []Option) *BST[T, C, E] {
	o := options{logger: u.opts.logger}
	for _, opt := range opts {
		opt(&o)
	}
	return &BST[T, C, E]{opts: o}
}

// Clone returns a deep copy of u sharing no nodes with it. opts configure the
// copy; only u's logger is carried over. On failure u is unchanged and no copy
// is returned.
// Time: O(n*D); Space: O(1) besides the copy.
func (u *BST[T, C, E]) Clone(opts ...Option) (*BST[T, C, E], error) {
	c := u.derive(opts)
	if err := c.fill(u.root); err != nil {
		return nil, errors.Wrap(err, "cloning tree")
	}
	return c, nil
}

// Subtree returns a new, independent tree holding the node equal to v and
// all of its descendants, with the same shape they have in u. If v isn't in
// u, the result is an empty tree and not an error. opts configure the result
// as they do for Clone.
// Time: O(D + m*d) where m and d are the size and height of the subtree.
func (u *BST[T, C, E]) Subtree(v T, opts ...Option) (*BST[T, C, E], error) {
	c := u.derive(opts)
	hit, _ := u.search(v)
	if hit == nil {
		u.opts.infof("bst: subtree %v: not found", v)
		return c, nil
	}
	u.opts.infof("bst: subtree %v: found", v)
	if err := c.fill(hit); err != nil {
		return nil, errors.Wrapf(err, "extracting subtree at %v", v)
	}
	return c, nil
}

// Swap exchanges the contents of u and o. Options stay with their tree.
// Time: O(1); Space: O(1)
func (u *BST[T, C, E]) Swap(o *BST[T, C, E]) {
	u.root, o.root = o.root, u.root
	u.sz, o.sz = o.sz, u.sz
}

// Assign replaces the contents of u with a deep copy of src. The copy is built
// aside using u's allocator and swapped in only once complete, so on failure
// u keeps exactly what it had. Iterators into u are invalidated by a
// successful Assign.
// Time: O(n*D)
func (u *BST[T, C, E]) Assign(src *BST[T, C, E]) error {
	if u == src {
		return nil
	}
	tmp := &BST[T, C, E]{opts: u.opts}
	if err := tmp.fill(src.root); err != nil {
		return errors.Wrap(err, "assigning tree")
	}
	u.Swap(tmp)
	tmp.Clear()
	u.opts.infof("bst: assign: %d values", u.sz)
	return nil
}

// Clear releases every node, children before their parent, and leaves u
// empty. Iterators into u are invalidated.
// Time: O(n); Space: O(1)
func (u *BST[T, C, E]) Clear() {
	for n := u.root; n != nil; {
		n = postFirst(n)
		p := n.p
		if p != nil {
			if p.l == n {
				p.l = nil
			} else {
				p.r = nil
			}
		}
		n.p = nil
		n = p
	}
	u.root, u.sz = nil, 0
	u.opts.infof("bst: clear")
}

// preorder calls f on every node in pre-order together with its depth, the
// root being at depth 1.
// Time: O(n); Space: O(1)
func (u *BST[T, C, E]) preorder(f func(n *node[T], d uint)) {
	d := uint(1)
	for n := u.root; n != nil; {
		f(n, d)
		if n.l != nil {
			n, d = n.l, d+1
			continue
		}
		if n.r != nil {
			n, d = n.r, d+1
			continue
		}
		for {
			p := n.p
			if p == nil {
				return
			}
			if p.l == n && p.r != nil {
				n = p.r
				break
			}
			n, d = p, d-1
		}
	}
}

// Height is the number of nodes on the longest path from the root to a leaf.
// It is 0 for an empty tree.
// Time: O(n); Space: O(1)
func (u *BST[T, C, E]) Height() (h uint) {
	u.preorder(func(_ *node[T], d uint) {
		h = max(h, d)
	})
	return
}
