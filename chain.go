package cameto

import "unsafe"

// wordSize is the size of one chain slot in bytes. Slots are machine words,
// the granularity of a single pointer load.
const wordSize = int(unsafe.Sizeof(int(0)))

// Chain is a permutation-linked arena of machine-word slots. Each slot holds
// the index of the next slot to visit, so a traversal is a strict chain of
// dependent loads: the address of hop i+1 is unknown until hop i completes.
// That defeats prefetch-ahead and forces every hop to pay true access
// latency.
type Chain struct {
	slots []int
	entry int
}

// NewChain builds a chain of size slots whose traversal order advances by
// step slots per hop, wrapping back through the entry slot, instead of
// walking the arena in physical order. Starting from the entry (the last
// slot) the links form one closed cycle over every step-th slot, of length
// (size-1)/step + 1.
//
// size and step must be positive and step must not exceed size. Violations
// panic: they are harness bugs, not runtime conditions.
func NewChain(size, step int) *Chain {
	return newChain(makeArena(size), size, step)
}

// NewChainAligned is NewChain with the arena start aligned to align bytes,
// which must be a power of two. Page alignment keeps every probed buffer at
// the same page offset so successive rounds contend for the same cache sets.
func NewChainAligned(size, step, align int) *Chain {
	return newChain(alignedArena(size, align), size, step)
}

func newChain(slots []int, size, step int) *Chain {
	assertPositive("NewChain", "size", size)
	assertPositive("NewChain", "step", step)
	if step > size {
		panicf("NewChain: step %d exceeds size %d", step, size)
	}
	last := size - 1
	for i, j := last, last-step; j >= 0; i, j = j, j-step {
		slots[i] = j
		slots[j] = last
	}
	return &Chain{slots: slots, entry: last}
}

// Size returns the number of slots in the arena.
func (c *Chain) Size() int { return len(c.slots) }

// SizeBytes returns the arena footprint in bytes.
func (c *Chain) SizeBytes() int { return len(c.slots) * wordSize }

func makeArena(size int) []int {
	assertPositive("NewChain", "size", size)
	return make([]int, size)
}

// alignedArena carves a size-slot arena starting on an align-byte boundary
// out of an over-allocated block.
func alignedArena(size, align int) []int {
	assertPositive("NewChainAligned", "size", size)
	if align <= 0 || align&(align-1) != 0 {
		panicf("NewChainAligned: align %d is not a power of two", align)
	}
	pad := align / wordSize
	if pad == 0 {
		pad = 1
	}
	raw := make([]int, size+pad)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	off := 0
	if rem := addr % uintptr(align); rem != 0 {
		// Go aligns []int backing arrays to at least wordSize, so the
		// remainder is always a whole number of slots.
		off = int(uintptr(align)-rem) / wordSize
	}
	return raw[off : off+size]
}
