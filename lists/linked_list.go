package lists

import "iter"

type node[T any] struct {
	next *node[T]
	val  T
}

// Pos is a position within a LinkedList. Positions compare with == and the
// zero Pos is the end position, so a LinkedList satisfies the positional
// sequence protocol expected by rangers.From.
type Pos[T any] struct {
	n *node[T]
}

// IsEnd reports whether the position is one past the last element.
func (p Pos[T]) IsEnd() bool { return p.n == nil }

// LinkedList is a singly linked forward list with O(1) append. It exists to
// be traversed positionally; it is not safe for concurrent mutation.
type LinkedList[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewLinkedList creates a list holding the given values, in order.
func NewLinkedList[T any](values ...T) *LinkedList[T] {
	ll := &LinkedList[T]{}
	ll.Add(values...)
	return ll
}

// Add appends one or more elements to the end of the list.
func (ll *LinkedList[T]) Add(values ...T) {
	for _, v := range values {
		n := &node[T]{val: v}
		if ll.tail == nil {
			ll.head = n
		} else {
			ll.tail.next = n
		}
		ll.tail = n
		ll.size++
	}
}

// Size returns the current number of elements in the list.
func (ll *LinkedList[T]) Size() int { return ll.size }

// IsEmpty checks if the list is empty.
func (ll *LinkedList[T]) IsEmpty() bool { return ll.size == 0 }

// Clear removes all elements from the list.
func (ll *LinkedList[T]) Clear() {
	ll.head = nil
	ll.tail = nil
	ll.size = 0
}

// Begin returns the position of the first element. For an empty list it
// equals End.
func (ll *LinkedList[T]) Begin() Pos[T] { return Pos[T]{ll.head} }

// End returns the one-past-the-end position.
func (ll *LinkedList[T]) End() Pos[T] { return Pos[T]{} }

// Next returns the position following p. Advancing the end position panics.
func (ll *LinkedList[T]) Next(p Pos[T]) Pos[T] {
	if p.n == nil {
		panic("lists: Next on end position")
	}
	return Pos[T]{p.n.next}
}

// At returns the element at p. Dereferencing the end position panics.
func (ll *LinkedList[T]) At(p Pos[T]) T {
	if p.n == nil {
		panic("lists: At on end position")
	}
	return p.n.val
}

// Seq returns a sequence over the list's elements, front to back. The list
// must not be mutated during iteration.
func (ll *LinkedList[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := ll.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}
