package rangers_test

import (
	"slices"
	"testing"

	"github.com/sdarwin/transrangers/rangers"
)

func TestTake(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		got, ok := driveAll(rangers.Take(rangers.All([]int{1, 2, 3}), 0))
		if !ok {
			t.Error("Take(0) should report exhaustion on the first call")
		}
		if len(got) != 0 {
			t.Errorf("Take(0) delivered %v", got)
		}
	})

	t.Run("Boundary", func(t *testing.T) {
		// Reaching the cap forces the source to stop early, but the capped
		// ranger reports exhaustion, not an early stop.
		got, ok := driveAll(rangers.Take(rangers.All([]int{1, 2, 3}), 2))
		if !ok {
			t.Error("reaching the cap should count as exhaustion")
		}
		if !slices.Equal(got, []int{1, 2}) {
			t.Errorf("got %v, want [1 2]", got)
		}
	})

	t.Run("BeyondSource", func(t *testing.T) {
		got, ok := driveAll(rangers.Take(rangers.All([]int{1, 2}), 5))
		if !ok || !slices.Equal(got, []int{1, 2}) {
			t.Errorf("got %v (exhausted=%v), want [1 2] true", got, ok)
		}
	})

	t.Run("DownstreamStopResume", func(t *testing.T) {
		// The remaining count persists across resumed calls.
		r := rangers.Take(rangers.All([]int{1, 2, 3, 4, 5}), 4)

		got, ok := drivePartial(r, 2)
		if ok {
			t.Error("downstream stop should propagate as false")
		}
		if !slices.Equal(got, []int{1, 2}) {
			t.Fatalf("first drive got %v", got)
		}

		rest, ok := driveAll(r)
		if !ok {
			t.Error("second drive should exhaust the cap")
		}
		if !slices.Equal(rest, []int{3, 4}) {
			t.Errorf("second drive got %v, want [3 4]", rest)
		}
	})

	t.Run("Negative", func(t *testing.T) {
		if got, ok := driveAll(rangers.Take(rangers.All([]int{1}), -1)); !ok || len(got) != 0 {
			t.Errorf("negative cap: got %v (exhausted=%v)", got, ok)
		}
	})
}

func TestSkip(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		got, ok := driveAll(rangers.Skip(rangers.All([]int{1, 2, 3, 4, 5}), 2))
		if !ok || !slices.Equal(got, []int{3, 4, 5}) {
			t.Errorf("got %v (exhausted=%v)", got, ok)
		}
	})

	t.Run("BeyondSource", func(t *testing.T) {
		if got, ok := driveAll(rangers.Skip(rangers.All([]int{1, 2}), 5)); !ok || len(got) != 0 {
			t.Errorf("got %v (exhausted=%v)", got, ok)
		}
	})

	t.Run("Resume", func(t *testing.T) {
		r := rangers.Skip(rangers.All([]int{1, 2, 3, 4}), 1)
		drivePartial(r, 1) // delivers 2
		if got, _ := driveAll(r); !slices.Equal(got, []int{3, 4}) {
			t.Errorf("resume got %v, want [3 4]", got)
		}
	})
}

func TestTakeWhile(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		r := rangers.TakeWhile(rangers.All([]int{1, 2, 3, 1}), func(x int) bool { return x < 3 })
		got, ok := driveAll(r)
		if !ok {
			t.Error("tripping the predicate ends the sequence: expected true")
		}
		if !slices.Equal(got, []int{1, 2}) {
			t.Errorf("got %v, want [1 2]", got)
		}

		// Once tripped, the ranger stays exhausted.
		if got, ok := driveAll(r); !ok || len(got) != 0 {
			t.Errorf("tripped ranger produced %v (exhausted=%v)", got, ok)
		}
	})

	t.Run("FirstFails", func(t *testing.T) {
		r := rangers.TakeWhile(rangers.All([]int{9, 1}), func(x int) bool { return x < 3 })
		if got, ok := driveAll(r); !ok || len(got) != 0 {
			t.Errorf("got %v (exhausted=%v)", got, ok)
		}
	})

	t.Run("DownstreamStopResume", func(t *testing.T) {
		r := rangers.TakeWhile(rangers.All([]int{1, 2, 9}), func(x int) bool { return x < 3 })
		got, ok := drivePartial(r, 1)
		if ok || !slices.Equal(got, []int{1}) {
			t.Fatalf("first drive got %v (exhausted=%v)", got, ok)
		}
		if got, ok := driveAll(r); !ok || !slices.Equal(got, []int{2}) {
			t.Errorf("resume got %v (exhausted=%v), want [2] true", got, ok)
		}
	})
}

func TestDropWhile(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		r := rangers.DropWhile(rangers.All([]int{1, 1, 2, 1}), func(x int) bool { return x == 1 })
		got, ok := driveAll(r)
		if !ok || !slices.Equal(got, []int{2, 1}) {
			t.Errorf("got %v (exhausted=%v), want [2 1] true", got, ok)
		}
	})

	t.Run("Resume", func(t *testing.T) {
		r := rangers.DropWhile(rangers.All([]int{1, 2, 3}), func(x int) bool { return x == 1 })
		drivePartial(r, 1) // delivers 2, dropping already off
		if got, _ := driveAll(r); !slices.Equal(got, []int{3}) {
			t.Errorf("resume got %v, want [3]", got)
		}
	})
}
