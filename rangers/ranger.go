package rangers

// Cursor is an opaque position inside a sequence, dereferenced with Value.
// Cursors are cheap to copy and own none of the data they point into; a
// cursor is only valid while the source it was produced from is alive.
type Cursor[E any] interface {
	Value() E
}

// Ranger performs one traversal step run: it feeds dst zero or more cursors
// in source order, stopping as soon as dst returns false.
//
// The returned bool is the heart of the protocol. True means the sequence is
// exhausted: nothing will ever be produced again. False means dst requested
// a stop; resumable rangers commit their internal position before returning,
// so a later call continues immediately after the last delivered element,
// invoking whatever sink that later call supplies.
//
// A ranger instance must not be invoked concurrently, and driving it again
// after it has returned true is unspecified.
type Ranger[C Cursor[E], E any] func(dst func(C) bool) bool

// Sequence is the positional protocol a container must expose to be adapted
// by From: a half-open position range [Begin, End) with forward advance and
// dereference. Positions compare with ==.
type Sequence[P comparable, E any] interface {
	// Begin returns the position of the first element.
	Begin() P
	// End returns the one-past-the-end position.
	End() P
	// Next returns the position following p. Next(End()) is a contract
	// violation.
	Next(p P) P
	// At returns the element at p. At(End()) is a contract violation.
	At(p P) E
}

// PosCursor is the cursor type produced by From: a source plus a position.
type PosCursor[P comparable, E any] struct {
	src Sequence[P, E]
	pos P
}

// Value returns the element at the cursor's position.
func (c PosCursor[P, E]) Value() E { return c.src.At(c.pos) }

// Pos returns the underlying position.
func (c PosCursor[P, E]) Pos() P { return c.pos }

// From adapts a positional Sequence into a ranger. The ranger stores only
// the current and end positions; the source must outlive it and must not be
// mutated while traversals are in flight.
//
// Type parameters are not inferable from the interface value, so callers
// name them explicitly: rangers.From[lists.Pos[int], int](l).
func From[P comparable, E any](src Sequence[P, E]) Ranger[PosCursor[P, E], E] {
	cur, end := src.Begin(), src.End()
	return func(dst func(PosCursor[P, E]) bool) bool {
		for cur != end {
			c := PosCursor[P, E]{src, cur}
			cur = src.Next(cur)
			if !dst(c) {
				return false
			}
		}
		return true
	}
}
