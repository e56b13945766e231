package rangers

import "iter"

// FromSeq adapts a Go iterator into a resumable ranger. The pull iterator is
// created lazily on the first drive and stopped once the sequence is
// exhausted. Elements delivered before an early stop are consumed from the
// iterator for good, which is exactly what resumption needs.
func FromSeq[E any](seq iter.Seq[E]) Ranger[ValueCursor[E], E] {
	var next func() (E, bool)
	var stop func()
	return func(dst func(ValueCursor[E]) bool) bool {
		if next == nil {
			next, stop = iter.Pull(seq)
		}
		for {
			v, ok := next()
			if !ok {
				stop()
				return true
			}
			if !dst(ValueCursor[E]{v}) {
				return false
			}
		}
	}
}

// Values drives r as an iter.Seq for consumption with a for range loop.
// Breaking out of the loop stops the ranger early; because the ranger value
// is stateful, ranging over Values(r) again continues the same traversal.
func Values[C Cursor[E], E any](r Ranger[C, E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		r(func(c C) bool {
			return yield(c.Value())
		})
	}
}
