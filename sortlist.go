package sortlist

// node of the chain. value is fixed at insert time, only the links
// of its neighbors change afterwards.
type node struct {
	value int64
	next  *node
}

// List is a singly-linked list of integers kept in non-decreasing order.
// The zero value is not usable, call New.
type List struct {
	head *node
	size int
}

// New
func New() *List {
	return &List{}
}

// Insert splice v into the chain, immediately before the first value
// strictly greater than v. Equal values keep their insertion order.
func (l *List) Insert(v int64) {
	n := &node{value: v}

	if l.head == nil || v < l.head.value {
		n.next = l.head
		l.head = n
		l.size++
		return
	}

	prev := l.head
	for prev.next != nil && prev.next.value <= v {
		prev = prev.next
	}
	n.next = prev.next
	prev.next = n
	l.size++
}

// CountPositive walk the chain once and count values strictly greater
// than zero. Does not mutate the list.
func (l *List) CountPositive() int {
	count := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value > 0 {
			count++
		}
	}
	return count
}

// Len
func (l *List) Len() int {
	return l.size
}

// Min return the smallest value, false on an empty list.
func (l *List) Min() (int64, bool) {
	if l.head == nil {
		return 0, false
	}
	return l.head.value, true
}

// Max return the largest value, false on an empty list.
func (l *List) Max() (int64, bool) {
	if l.head == nil {
		return 0, false
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	return cur.value, true
}

// Iter
func (l *List) Iter(f func(v int64)) {
	for cur := l.head; cur != nil; cur = cur.next {
		f(cur.value)
	}
}

// Values snapshot the list front to back.
func (l *List) Values() []int64 {
	values := make([]int64, 0, l.size)
	l.Iter(func(v int64) {
		values = append(values, v)
	})
	return values
}
