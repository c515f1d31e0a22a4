package cameto

import "testing"

// followLinks replays the chain by hand: the reference Walk is checked
// against.
func followLinks(c *Chain, n int) int {
	pos := c.slots[c.entry]
	for i := 0; i < n; i++ {
		pos = c.slots[pos]
	}
	return pos
}

func TestWalkLanding(t *testing.T) {
	c := NewChain(16, 1)
	if got := c.Walk(0); got != c.slots[c.entry] {
		t.Errorf("Walk(0) = %d, want first link target %d", got, c.slots[c.entry])
	}
	for _, n := range []int{1, 5, 15, 16, 100} {
		if got, want := c.Walk(n), followLinks(c, n); got != want {
			t.Errorf("Walk(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestWalkFullCycleReturnsToEntry(t *testing.T) {
	const size = 128
	c := NewChain(size, 1)
	// One full cycle is size link follows; Walk performs n+1 of them.
	if got := c.Walk(size - 1); got != c.entry {
		t.Errorf("full cycle landed on %d, want entry %d", got, c.entry)
	}
}

func TestWalkTimedMatchesWalk(t *testing.T) {
	c := NewChain(256, 2)
	for _, n := range []int{1, 10, 128} {
		times, landing := c.WalkTimed(n)
		if len(times) != n {
			t.Errorf("WalkTimed(%d) recorded %d hops", n, len(times))
		}
		if want := c.Walk(n); landing != want {
			t.Errorf("WalkTimed(%d) landed on %d, Walk on %d", n, landing, want)
		}
		for i, d := range times {
			if d < 0 {
				t.Errorf("hop %d: negative duration %v", i, d)
			}
		}
	}
}

func BenchmarkWalk(b *testing.B) {
	c := NewChain((32<<10)/wordSize, 1)
	b.ResetTimer()
	walkSink += c.Walk(b.N)
}

func BenchmarkWalkTimed(b *testing.B) {
	c := NewChain((32<<10)/wordSize, 1)
	b.ResetTimer()
	_, landing := c.WalkTimed(b.N)
	walkSink += landing
}
