package rangers

import "slices"

// SliceCursor is the cursor type of slice-backed rangers: the slice plus an
// index into it.
type SliceCursor[E any] struct {
	s []E
	i int
}

// Value returns the element under the cursor.
func (c SliceCursor[E]) Value() E { return c.s[c.i] }

// Index returns the cursor's index within the source slice.
func (c SliceCursor[E]) Index() int { return c.i }

// All adapts a slice into a ranger over its elements, in order. The ranger
// borrows xs: the caller keeps ownership and must not grow or shrink it
// while traversals are in flight. The advance is committed before each sink
// call, so an early stop resumes right after the delivered element.
func All[E any](xs []E) Ranger[SliceCursor[E], E] {
	i := 0
	return func(dst func(SliceCursor[E]) bool) bool {
		for i < len(xs) {
			c := SliceCursor[E]{xs, i}
			i++
			if !dst(c) {
				return false
			}
		}
		return true
	}
}

// AllCopy is All over an exclusive copy of xs. Use it when xs is a temporary
// the caller will mutate or reuse: the ranger owns the copy for its whole
// lifetime, so cursors never observe later changes to xs.
func AllCopy[E any](xs []E) Ranger[SliceCursor[E], E] {
	return All(slices.Clone(xs))
}
