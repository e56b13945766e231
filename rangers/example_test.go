package rangers_test

import (
	"fmt"

	"github.com/sdarwin/transrangers/rangers"
)

func ExampleMap() {
	isEven := func(x int) bool { return x%2 == 0 }
	square := func(x int) int { return x * x }

	// The whole chain runs as one fused traversal over the slice.
	r := rangers.Map(rangers.Filter(rangers.All([]int{1, 2, 3, 4}), isEven), square)

	for v := range rangers.Values(r) {
		fmt.Println(v)
	}

	// Output:
	// 4
	// 16
}

func ExampleCompact() {
	r := rangers.Compact(rangers.All([]int{1, 1, 2, 2, 2, 3, 1}))
	fmt.Println(rangers.Collect(r))

	// Output:
	// [1 2 3 1]
}

func ExampleFlatten() {
	r := rangers.Flatten(rangers.All([][]string{{"a", "b"}, {}, {"c"}}))
	fmt.Println(rangers.Collect(r))

	// Output:
	// [a b c]
}

func ExampleTake() {
	// A ranger is resumable: each drive continues where the last stopped.
	r := rangers.All([]int{1, 2, 3, 4, 5})

	fmt.Println(rangers.Collect(rangers.Take(r, 2)))
	fmt.Println(rangers.Collect(r))

	// Output:
	// [1 2]
	// [3 4 5]
}
