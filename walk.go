package cameto

import "time"

// walkSink accumulates landing indices so the traversal loops and their
// results cannot be optimized away.
var walkSink int

// Walk follows the chain for n hops starting from the entry slot and
// returns the final landing index. Walk records nothing itself; the caller
// brackets the call with its own clock reads to time the whole pass.
func (c *Chain) Walk(n int) int {
	pos := c.slots[c.entry]
	for i := 0; i < n; i++ {
		pos = c.slots[pos]
	}
	return pos
}

// WalkTimed follows the chain for n hops like Walk but records each hop's
// elapsed time, returning the per-hop series along with the final landing
// index. The two clock reads bracketing every hop make it far more
// expensive than Walk, so it is reserved for line-size probing where
// per-hop resolution is required.
func (c *Chain) WalkTimed(n int) ([]time.Duration, int) {
	pos := c.slots[c.entry]
	times := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		start := time.Now()
		pos = c.slots[pos]
		times = append(times, time.Since(start))
	}
	return times, pos
}
