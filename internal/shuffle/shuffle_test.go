package shuffle

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestShuffleIsPermutation(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}

	out := Shuffle(rnd, in)
	if len(out) != len(in) {
		t.Fatalf("expected %d elements, got %d", len(in), len(out))
	}

	counts := make(map[int]int)
	for _, v := range out {
		counts[v]++
	}
	for _, v := range in {
		if counts[v] != 1 {
			t.Fatalf("expected element %d exactly once, got %d", v, counts[v])
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	in := []string{"a", "b", "c", "d"}

	for i := 0; i < 50; i++ {
		_ = Shuffle(rnd, in)
	}
	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if in[i] != want[i] {
			t.Fatalf("input mutated at %d: %v", i, in)
		}
	}
}

func TestShuffleIsRoughlyUniform(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	in := []int{0, 1, 2}

	const trials = 6000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		counts[fmt.Sprint(Shuffle(rnd, in))]++
	}

	if len(counts) != 6 {
		t.Fatalf("expected all 6 orderings to appear, got %d", len(counts))
	}
	// Each ordering should land near trials/6; a wide tolerance keeps the
	// test stable while still catching a biased swap.
	expected := trials / 6
	for perm, n := range counts {
		if n < expected-250 || n > expected+250 {
			t.Fatalf("ordering %s occurred %d times, expected about %d", perm, n, expected)
		}
	}
}

func TestShuffleEmptyAndSingle(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))

	if out := Shuffle(rnd, []int{}); len(out) != 0 {
		t.Fatalf("expected empty output, got %v", out)
	}
	if out := Shuffle(rnd, []int{42}); len(out) != 1 || out[0] != 42 {
		t.Fatalf("expected [42], got %v", out)
	}
}
