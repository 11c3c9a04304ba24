package record

import (
	"io"

	"listkit/adlist"
)

// ListCallbacks wires Free and Dup into a list so that teardown and
// structural copies go through the Record operations. Returns the list
// for chaining.
func ListCallbacks(l *adlist.List) *adlist.List {
	if l == nil {
		return nil
	}
	l.SetFreeMethod(func(v interface{}) {
		r, _ := v.(*Record)
		_ = Free(r)
	})
	l.SetDupMethod(func(v interface{}) interface{} {
		r, ok := v.(*Record)
		if !ok {
			return nil
		}
		if cp := Dup(r); cp != nil {
			return cp
		}
		return nil
	})
	return l
}

// PrintList prints every element of the list in order.
func PrintList(w io.Writer, l *adlist.List) error {
	if l == nil {
		return ErrNilList
	}
	iter := l.Rewind()
	for node := iter.Next(); node != nil; node = iter.Next() {
		r, _ := node.NodeValue().(*Record)
		if err := Fprint(w, r); err != nil {
			return err
		}
	}
	return nil
}

// DestroyList frees every Record in the list and leaves the list empty.
// The list itself stays usable, only the payloads die with it.
func DestroyList(l *adlist.List) error {
	if l == nil {
		return ErrNilList
	}
	for node := l.First(); node != nil; {
		next := node.Next()
		r, _ := node.NodeValue().(*Record)
		if err := Free(r); err != nil {
			return err
		}
		l.DelNode(node)
		node = next
	}
	return nil
}

// CopyList deep-copies a list of Records, preserving order and leaving
// the source untouched. Nil in, nil out.
func CopyList(l *adlist.List) *adlist.List {
	if l == nil {
		return nil
	}
	cp := ListCallbacks(adlist.Create())
	for node := l.First(); node != nil; node = node.Next() {
		r, _ := node.NodeValue().(*Record)
		dup := Dup(r)
		if dup == nil {
			_ = DestroyList(cp)
			return nil
		}
		cp.AddNodeTail(dup)
	}
	return cp
}

// FindInList scans from the head and returns the first node whose
// Record compares Equal to value under key. Equality is the only thing
// that satisfies a find, Less and Greater never do. Nil when the list
// is empty or exhausted without a match.
func FindInList(l *adlist.List, value interface{}, key Key) *adlist.ListNode {
	if l == nil {
		return nil
	}
	iter := l.Rewind()
	for node := iter.Next(); node != nil; node = iter.Next() {
		r, _ := node.NodeValue().(*Record)
		if CompareWithKey(r, value, key) == Equal {
			return node
		}
	}
	return nil
}
