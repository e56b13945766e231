package rangers

// MapCursor pairs an inner cursor with the mapping function. The function is
// applied at Value time, not at traversal time, so cursors can be buffered,
// compared or dropped downstream without ever forcing the computation.
type MapCursor[C Cursor[E], E, R any] struct {
	f func(E) R
	c C
}

// Value dereferences the inner cursor and applies the mapping function.
// The function must be pure for repeated dereferences to agree; nothing
// enforces this, it is a caller obligation.
func (mc MapCursor[C, E, R]) Value() R { return mc.f(mc.c.Value()) }

// Inner returns the wrapped cursor.
func (mc MapCursor[C, E, R]) Inner() C { return mc.c }

// Map yields a cursor computing f over each element of r. Evaluation is
// deferred until the produced cursor is dereferenced. Map carries no state
// besides f, so stop/resume behavior is inherited from r.
func Map[C Cursor[E], E, R any](r Ranger[C, E], f func(E) R) Ranger[MapCursor[C, E, R], R] {
	return func(dst func(MapCursor[C, E, R]) bool) bool {
		return r(func(c C) bool {
			return dst(MapCursor[C, E, R]{f, c})
		})
	}
}

// Concat exhausts each sub-ranger completely before moving to the next, in
// argument order. Concat() is the empty ranger: it always reports
// exhaustion. An early stop inside a sub-ranger leaves the index on that
// sub-ranger, so the next call resumes within it; a sub-ranger is advanced
// past exactly once, when it reports exhaustion.
func Concat[C Cursor[E], E any](rs ...Ranger[C, E]) Ranger[C, E] {
	i := 0
	return func(dst func(C) bool) bool {
		for i < len(rs) {
			if !rs[i](dst) {
				return false
			}
			i++
		}
		return true
	}
}
