package queues

import "math/bits"

// ArrayQueue is a generic FIFO queue backed by a circular array (ring
// buffer) with amortized O(1) enqueue and dequeue.
//
// The queue also exposes a positional view of its current contents: logical
// positions run from Begin()==0 to End()==Size(), and At maps a logical
// position to the wrapping physical index. Positions are invalidated by any
// mutation of the queue.
type ArrayQueue[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // physical index of the first element
	size int // number of elements in the queue
	mask int // capacity - 1, used for fast modulo: idx & mask
}

// NewArrayQueue creates an ArrayQueue with at least the given capacity,
// rounded up to a power of two.
func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := 1
	if initialCapacity > 1 {
		capacity = 1 << uint(bits.Len(uint(initialCapacity-1)))
	}
	return &ArrayQueue[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// grow doubles the buffer until it fits size+extra elements, unwrapping the
// contents so head restarts at 0.
func (aq *ArrayQueue[T]) grow(extra int) {
	newCapacity := 1 << uint(bits.Len(uint(aq.size+extra-1)))
	newBuf := make([]T, newCapacity)

	if aq.head+aq.size <= len(aq.buf) {
		copy(newBuf, aq.buf[aq.head:aq.head+aq.size])
	} else {
		// wrapped around: head..end, then start..tail
		n := copy(newBuf, aq.buf[aq.head:])
		tail := (aq.head + aq.size) & aq.mask
		copy(newBuf[n:], aq.buf[:tail])
	}

	aq.buf = newBuf
	aq.head = 0
	aq.mask = newCapacity - 1
}

// Enqueue puts an element at the end of the queue.
func (aq *ArrayQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.grow(1)
	}
	aq.buf[(aq.head+aq.size)&aq.mask] = value
	aq.size++
}

// EnqueueAll puts multiple elements at the end of the queue.
func (aq *ArrayQueue[T]) EnqueueAll(values ...T) {
	n := len(values)
	if aq.size+n > len(aq.buf) {
		aq.grow(n)
	}
	tail := (aq.head + aq.size) & aq.mask
	if tail+n <= len(aq.buf) {
		copy(aq.buf[tail:], values)
	} else {
		part1 := len(aq.buf) - tail
		copy(aq.buf[tail:], values[:part1])
		copy(aq.buf, values[part1:])
	}
	aq.size += n
}

// Dequeue removes and returns the element at the front of the queue.
func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	var zero T
	aq.buf[aq.head] = zero // clear reference
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

// Peek returns the element at the front of the queue without removing it.
func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

// Size returns the number of elements in the queue.
func (aq *ArrayQueue[T]) Size() int { return aq.size }

// IsEmpty returns true if the queue is empty.
func (aq *ArrayQueue[T]) IsEmpty() bool { return aq.size == 0 }

// Clear removes all elements from the queue.
func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}

// Begin returns the logical position of the front element.
func (aq *ArrayQueue[T]) Begin() int { return 0 }

// End returns the one-past-the-back logical position.
func (aq *ArrayQueue[T]) End() int { return aq.size }

// Next returns the logical position following p.
func (aq *ArrayQueue[T]) Next(p int) int {
	if p < 0 || p >= aq.size {
		panic("queues: Next on position out of range")
	}
	return p + 1
}

// At returns the element at logical position p, front to back.
func (aq *ArrayQueue[T]) At(p int) T {
	if p < 0 || p >= aq.size {
		panic("queues: At on position out of range")
	}
	return aq.buf[(aq.head+p)&aq.mask]
}
