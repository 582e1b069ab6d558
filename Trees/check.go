package Trees

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// CheckInvariants verifies the structure of u and returns an assertion
// failure describing the first violation found:
//   - in-order values are strictly increasing under C and pairwise different
//     under E;
//   - every child's parent reference points back at the node owning it, and
//     the root has none;
//   - Size matches the number of reachable nodes.
//
// It doesn't use parent references to move around, so it terminates on trees
// whose references are broken.
// Time: O(n); Space: O(D)
func (u *BST[T, C, E]) CheckInvariants() error {
	if u.root != nil && u.root.p != nil {
		return errors.AssertionFailedf("Trees: root %v has a parent", u.root.v)
	}
	var (
		count uint
		prev  *node[T]
		st    []*node[T]
	)
	for cur := u.root; cur != nil || len(st) > 0; {
		for ; cur != nil; cur = cur.l {
			if cur.l != nil && cur.l.p != cur {
				return errors.AssertionFailedf("Trees: left child %v of %v doesn't refer back to it", cur.l.v, cur.v)
			}
			if cur.r != nil && cur.r.p != cur {
				return errors.AssertionFailedf("Trees: right child %v of %v doesn't refer back to it", cur.r.v, cur.v)
			}
			if st = append(st, cur); uint(len(st))+count > u.sz {
				return errors.AssertionFailedf("Trees: more than %d reachable nodes", redact.Safe(u.sz))
			}
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		count++
		if prev != nil {
			if u.equal(prev.v, cur.v) {
				return errors.AssertionFailedf("Trees: %v is stored twice", cur.v)
			}
			if !u.less(prev.v, cur.v) {
				return errors.AssertionFailedf("Trees: %v is ordered before %v", prev.v, cur.v)
			}
		}
		prev = cur
		cur = cur.r
	}
	if count != u.sz {
		return errors.AssertionFailedf("Trees: size is %d but %d nodes are reachable", redact.Safe(u.sz), redact.Safe(count))
	}
	return nil
}

// Corrupt [Tree.Corrupt]
func (u *BST[T, C, E]) Corrupt() bool {
	return u.CheckInvariants() != nil
}
