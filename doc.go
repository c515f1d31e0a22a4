// Package cameto empirically measures the geometry of a CPU's first-level
// data cache, its capacity and its line size, without consulting the OS or
// any hardware description API.
//
// The measurement is a pointer-chasing microbenchmark. A probing round
// builds an arena of machine-word slots linked into a single randomized
// cycle, so every hop is a dependent load whose target address is unknown
// until the previous load retires. Sweeping the arena size and timing full
// traversals exposes the capacity boundary as a jump in per-access latency;
// sweeping the link stride inside a fixed arena exposes the line size as
// the point where the per-hop jump signal collapses.
//
// Typical use:
//
//	p := cameto.NewProber()
//	levels := p.LevelSizes(8<<10, 256<<10)
//	size, err := p.SelectCacheSize(levels)
//	if err != nil {
//		// probing range too narrow for the smoothing window
//	}
//	line := p.LineSize(size)
//
// Timing noise from scheduling and interrupts is expected and is absorbed
// by windowed smoothing rather than rejected; run on an otherwise idle core
// for best results.
package cameto
