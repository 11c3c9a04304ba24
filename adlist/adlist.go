package adlist

import "sort"

// List is a doubly linked list of untyped values. The dup, free and
// match methods, when set, tell the list how to copy, release and match
// the values it holds without knowing their shape.
type List struct {
	head, tail *ListNode
	dup        func(interface{}) interface{}
	free       func(interface{})
	match      func(value interface{}, key interface{}) int
	len        int
}

func Create() *List {
	return new(List)
}

func (l *List) SetFreeMethod(fn func(interface{})) {
	l.free = fn
}

func (l *List) SetMatchMethod(fn func(interface{}, interface{}) int) {
	l.match = fn
}

func (l *List) SetDupMethod(fn func(interface{}) interface{}) {
	l.dup = fn
}

func (l *List) Len() int {
	return l.len
}

func (l *List) AddNodeHead(value interface{}) *List {
	node := &ListNode{
		prev:  nil,
		next:  nil,
		value: value,
	}
	if l.len == 0 {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}

	l.len++
	return l
}

func (l *List) AddNodeTail(value interface{}) *List {
	node := &ListNode{
		prev:  nil,
		next:  nil,
		value: value,
	}
	if l.len == 0 {
		l.head = node
		l.tail = node
	} else {
		node.prev = l.tail
		l.tail.next = node
		l.tail = node
	}

	l.len++
	return l
}

// InsertBefore links a new node holding value ahead of node. Inserting
// before a nil node leaves the list unchanged.
func (l *List) InsertBefore(node *ListNode, value interface{}) *List {
	if node == nil {
		return l
	}
	n := &ListNode{
		prev:  node.prev,
		next:  node,
		value: value,
	}
	if node.prev == nil {
		l.head = n
	} else {
		node.prev.next = n
	}
	node.prev = n

	l.len++
	return l
}

// DelNode unlinks node from the list. The value is not freed, the
// caller keeps ownership of it.
func (l *List) DelNode(node *ListNode) {
	if node == nil || l.len == 0 {
		return
	}
	if node.prev == nil {
		l.head = node.next
	} else {
		node.prev.next = node.next
	}
	if node.next == nil {
		l.tail = node.prev
	} else {
		node.next.prev = node.prev
	}
	node.prev = nil
	node.next = nil
	l.len--
}

// SearchKey returns the first node whose value matches key according to
// the match method, nil when no match method is set or nothing matches.
func (l *List) SearchKey(key interface{}) *ListNode {
	if l.match == nil {
		return nil
	}
	iter := l.Rewind()
	for node := iter.Next(); node != nil; node = iter.Next() {
		if l.match(node.value, key) != 0 {
			return node
		}
	}
	return nil
}

// Dup copies the whole list, callbacks included. Values go through the
// dup method when one is set, otherwise the copy shares them. A nil
// result from the dup method aborts the copy and releases the part
// already built.
func (l *List) Dup() *List {
	cp := Create()
	cp.dup, cp.free, cp.match = l.dup, l.free, l.match

	iter := l.Rewind()
	for node := iter.Next(); node != nil; node = iter.Next() {
		value := node.value
		if cp.dup != nil {
			if value = cp.dup(node.value); value == nil {
				cp.Empty()
				return nil
			}
		}
		cp.AddNodeTail(value)
	}
	return cp
}

// Empty releases every value through the free method and resets the
// list. The callbacks stay, the list can be refilled.
func (l *List) Empty() {
	node := l.head
	for node != nil {
		next := node.next
		if l.free != nil {
			l.free(node.value)
		}
		node.value = nil
		node.prev = nil
		node.next = nil
		node = next
	}
	l.head = nil
	l.tail = nil
	l.len = 0
}

// Sort reorders the values with cmp, which must return a negative,
// zero or positive number. The sort is stable: values that compare
// equal keep their relative order. Nodes stay in place, only the
// values move between them.
func (l *List) Sort(cmp func(a, b interface{}) int) {
	if l.len < 2 {
		return
	}
	values := make([]interface{}, 0, l.len)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.value)
	}
	sort.SliceStable(values, func(i, j int) bool {
		return cmp(values[i], values[j]) < 0
	})
	node := l.head
	for _, value := range values {
		node.value = value
		node = node.next
	}
}

func (l *List) First() *ListNode {
	return l.head
}

func (l *List) Last() *ListNode {
	return l.tail
}
