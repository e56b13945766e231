/*
Package rangers provides push-based, resumable sequence combinators that fuse
a whole transformation chain into a single traversal over the source.

It is built on two abstractions:

  - **Cursor**: an opaque, cheaply copyable position, dereferenced with
    [Cursor.Value]. A cursor owns none of the data it points into.
  - **Ranger**: a stateful callable, `ranger(sink) -> bool`. It feeds the
    sink zero or more cursors in source order. It returns true iff the
    sequence is exhausted; it returns false iff the sink asked it to stop,
    in which case a later call continues right after the last delivered
    element, with whatever sink that later call supplies.

Combinators ([Filter], [Map], [Take], [Concat], [Compact], [Join]) wrap a
ranger and return a new ranger; nothing is materialized in between, and a
sink returning false propagates synchronously down the whole chain.

# Sources

[All] adapts a slice (borrowing it), [AllCopy] adapts a temporary slice by
taking an exclusive copy, and [From] adapts anything exposing the positional
[Sequence] protocol, such as lists.LinkedList or queues.ArrayQueue.
[Range], [Repeat] and [FromSeq] produce rangers without a backing container.

# Consumption

A driver calls the top-level ranger with a sink until it returns true.
[Collect], [Each], [Count], [First], [Reduce], [Sum] and friends do this for
the common cases, and [Values] bridges back to a `for range` loop:

	r := rangers.Map(rangers.Filter(rangers.All(xs), isEven), square)
	for v := range rangers.Values(r) {
		fmt.Println(v)
	}

# Contract

All control flow is the boolean continue/stop protocol; there are no error
values inside a traversal. The following are contract violations with
unspecified behavior: invoking one ranger instance from multiple goroutines,
retaining a cursor past the lifetime of its source, and driving a ranger
again after it has returned true.
*/
package rangers
