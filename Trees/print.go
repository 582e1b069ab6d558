package Trees

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/redact"
)

// WriteTo writes the values of u in ascending order, each followed by one
// space, formatted with %v. An empty tree writes nothing.
// Time: O(n); Space: O(1)
func (u *BST[T, C, E]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for it, end := u.Begin(), u.End(); !it.Equal(end); it.Next() {
		n, err := fmt.Fprintf(w, "%v ", it.Value())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders u as WriteTo does, e.g. "5 8 9 ".
func (u *BST[T, C, E]) String() string {
	var sb strings.Builder
	_, _ = u.WriteTo(&sb)
	return sb.String()
}

// SafeFormat implements redact.SafeFormatter. Values are treated as unsafe.
func (u *BST[T, C, E]) SafeFormat(w redact.SafePrinter, _ rune) {
	for it, end := u.Begin(), u.End(); !it.Equal(end); it.Next() {
		w.Print(it.Value())
		w.SafeString(" ")
	}
}

// Shape lists the nodes of u in pre-order, one "node <value> depth <depth>"
// line each, the root being at depth 1. Two trees holding equal values have
// the same Shape exactly when they are built alike.
// Time: O(n); Space: O(1) besides the result.
func (u *BST[T, C, E]) Shape() string {
	var sb strings.Builder
	u.preorder(func(n *node[T], d uint) {
		fmt.Fprintf(&sb, "node %v depth %d\n", n.v, d)
	})
	return sb.String()
}

// FprintIF writes to w the values of u for which pred holds, one per line, in
// ascending order. u isn't modified.
// Time: O(n) plus n calls to pred.
func FprintIF[T any, C Comparer[T], E Equaler[T]](w io.Writer, u *BST[T, C, E], pred func(T) bool) error {
	for it, end := u.Begin(), u.End(); !it.Equal(end); it.Next() {
		if v := it.Value(); pred(v) {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// PrintIF is FprintIF to standard output. Write errors are discarded; use
// FprintIF to see them.
func PrintIF[T any, C Comparer[T], E Equaler[T]](u *BST[T, C, E], pred func(T) bool) {
	_ = FprintIF(os.Stdout, u, pred)
}
