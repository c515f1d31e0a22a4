package cameto

import (
	"fmt"
	"io"
	"time"
)

// Defaults for the probing heuristics. They mirror the calibration the
// inference thresholds were tuned with; override through Options rather
// than editing them.
const (
	// DefaultTouchCount caps the hops per probing round so a round's cost
	// stays flat across buffer sizes.
	DefaultTouchCount = 1000000
	// DefaultWindowSize is the sliding-window width used when smoothing the
	// differenced level series.
	DefaultWindowSize = 3
	// DefaultDropRatio is the factor by which the per-hop jump signal must
	// collapse between strides for line-size inference to stop.
	DefaultDropRatio = 10
	// DefaultAlignment is the arena alignment of probed buffers.
	DefaultAlignment = 4096

	// tailTrim is the number of trailing differenced points discarded
	// before the windowed argmax; the last points are edge artifacts of
	// the windowing.
	tailTrim = 2
)

// RawLevelInfo pairs one probed buffer size with the elapsed time of one
// full timed traversal over it.
type RawLevelInfo struct {
	SizeBytes int           `json:"size_bytes"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Prober runs the measurement rounds and the two inference passes. Each
// round allocates and discards its own chain; a Prober holds configuration
// only and is not safe for concurrent use solely because concurrent rounds
// would contend for the caches under measurement.
type Prober struct {
	touches   int
	window    int
	dropRatio int64
	align     int
	progress  io.Writer

	// sampleStride produces the per-hop series for one stride during
	// line-size inference; tests substitute a synthetic source.
	sampleStride func(size, step int) []time.Duration
}

// Option configures a Prober.
type Option func(*Prober)

// WithTouchCount caps the number of hops per probing round. Larger values
// smooth the coarse timing at the cost of longer runs.
func WithTouchCount(n int) Option {
	return func(p *Prober) {
		assertPositive("WithTouchCount", "n", n)
		p.touches = n
	}
}

// WithWindowSize sets the smoothing window over the differenced level
// series. The window must be at least 2.
func WithWindowSize(n int) Option {
	return func(p *Prober) {
		if n < 2 {
			panicf("WithWindowSize: window %d, need at least 2", n)
		}
		p.window = n
	}
}

// WithDropRatio sets the collapse factor for line-size inference.
func WithDropRatio(n int) Option {
	return func(p *Prober) {
		assertPositive("WithDropRatio", "n", n)
		p.dropRatio = int64(n)
	}
}

// WithAlignment sets the arena alignment of probed buffers in bytes;
// 0 leaves placement to the allocator.
func WithAlignment(n int) Option {
	return func(p *Prober) {
		if n < 0 {
			panicf("WithAlignment: negative alignment %d", n)
		}
		p.align = n
	}
}

// WithProgress directs per-round progress lines to w. Progress is written
// between rounds, never inside a timed section.
func WithProgress(w io.Writer) Option {
	return func(p *Prober) {
		p.progress = w
	}
}

// NewProber returns a Prober with the default heuristics.
func NewProber(opts ...Option) *Prober {
	p := &Prober{
		touches:   DefaultTouchCount,
		window:    DefaultWindowSize,
		dropRatio: DefaultDropRatio,
		align:     DefaultAlignment,
		progress:  io.Discard,
	}
	p.sampleStride = p.measureStride
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Prober) newChain(size, step int) *Chain {
	if p.align > 0 {
		return NewChainAligned(size, step, p.align)
	}
	return NewChain(size, step)
}

// probeStep picks the stride for a probing round: wide enough that touches
// hops span the whole chain cycle, never below one slot.
func probeStep(size, touches int) int {
	step := size / touches
	if step < 1 {
		step = 1
	}
	return step
}

// LevelSizes sweeps buffer sizes from minBytes to maxBytes in minBytes
// increments and returns one RawLevelInfo per probed size. Each round
// builds a fresh chain, runs one warm-up traversal to settle cache and
// branch state, then times a second traversal of the same hop count.
func (p *Prober) LevelSizes(minBytes, maxBytes int) []RawLevelInfo {
	assertPositive("LevelSizes", "minBytes", minBytes)
	if maxBytes < minBytes {
		panicf("LevelSizes: maxBytes %d below minBytes %d", maxBytes, minBytes)
	}
	minSlots := minBytes / wordSize
	assertPositive("LevelSizes", "minBytes in slots", minSlots)
	maxSlots := maxBytes / wordSize

	infos := make([]RawLevelInfo, 0, maxSlots/minSlots)
	for size := minSlots; size <= maxSlots; size += minSlots {
		step := probeStep(size, p.touches)
		fmt.Fprintf(p.progress, "probing size=%s step=%d\n",
			FormatBytes(int64(size*wordSize)), step)

		chain := p.newChain(size, step)
		walkSink += chain.Walk(p.touches) // warm up data and instruction caches

		start := time.Now()
		sink := chain.Walk(p.touches)
		elapsed := time.Since(start)
		walkSink += sink

		infos = append(infos, RawLevelInfo{
			SizeBytes: size * wordSize,
			Elapsed:   elapsed,
		})
	}
	return infos
}

// measureStride is the sampler behind LineSize: one chain of size slots at
// the given stride, walked once around its cycle with per-hop timing.
func (p *Prober) measureStride(size, step int) []time.Duration {
	chain := p.newChain(size, step)
	times, sink := chain.WalkTimed(size / step)
	walkSink += sink
	return times
}
