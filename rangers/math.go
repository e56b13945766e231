package rangers

import "golang.org/x/exp/constraints"

// Number constrains the element types Sum accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum drives r to exhaustion and returns the total of its elements.
func Sum[C Cursor[E], E Number](r Ranger[C, E]) E {
	var total E
	r(func(c C) bool {
		total += c.Value()
		return true
	})
	return total
}

// Min drives r to exhaustion and returns its smallest element.
// The second result is false if r produced nothing.
func Min[C Cursor[E], E constraints.Ordered](r Ranger[C, E]) (E, bool) {
	var min E
	first := true
	r(func(c C) bool {
		if v := c.Value(); first || v < min {
			min = v
			first = false
		}
		return true
	})
	if first {
		var zero E
		return zero, false
	}
	return min, true
}

// Max drives r to exhaustion and returns its largest element.
// The second result is false if r produced nothing.
func Max[C Cursor[E], E constraints.Ordered](r Ranger[C, E]) (E, bool) {
	var max E
	first := true
	r(func(c C) bool {
		if v := c.Value(); first || v > max {
			max = v
			first = false
		}
		return true
	})
	if first {
		var zero E
		return zero, false
	}
	return max, true
}
