package rangers

import "golang.org/x/exp/constraints"

// ValueCursor is the cursor type of generated rangers: it carries the
// element itself rather than a position into a container.
type ValueCursor[E any] struct {
	v E
}

// Value returns the carried element.
func (c ValueCursor[E]) Value() E { return c.v }

// Range produces the integers from start towards end in increments of step,
// excluding end. A zero step is the empty ranger. The current value persists
// across calls, so an early stop resumes where it left off.
func Range[T constraints.Integer](start, end, step T) Ranger[ValueCursor[T], T] {
	cur := start
	return func(dst func(ValueCursor[T]) bool) bool {
		if step == 0 {
			return true
		}
		for step > 0 && cur < end || step < 0 && cur > end {
			c := ValueCursor[T]{cur}
			cur += step
			if !dst(c) {
				return false
			}
		}
		return true
	}
}

// Repeat produces count copies of value. The remaining count persists across
// calls.
func Repeat[E any](value E, count int) Ranger[ValueCursor[E], E] {
	return func(dst func(ValueCursor[E]) bool) bool {
		for count > 0 {
			count--
			if !dst(ValueCursor[E]{value}) {
				return false
			}
		}
		return true
	}
}
