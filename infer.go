package cameto

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// SelectCacheSize locates the capacity boundary in a probed level series:
// the buffer size whose neighborhood shows the sharpest sustained latency
// growth.
//
// The series is first differenced, isolating the rate of change of latency
// with size (absolute latency is dominated by the fixed hop count), then
// smoothed with a sliding-window sum of the configured width, dropping the
// trailing two points as windowing edge artifacts. The size at the windowed
// maximum is the estimate.
//
// An insufficient-data error is returned when the series is too short for
// the window: the windowed series is non-empty only with at least
// window+3 raw points.
func (p *Prober) SelectCacheSize(infos []RawLevelInfo) (int, error) {
	return selectCacheSize(infos, p.window)
}

func selectCacheSize(infos []RawLevelInfo, window int) (int, error) {
	if window < 2 {
		panicf("SelectCacheSize: window %d, need at least 2", window)
	}

	diffs := make([]RawLevelInfo, 0, len(infos))
	for i := 1; i < len(infos); i++ {
		diffs = append(diffs, RawLevelInfo{
			SizeBytes: infos[i].SizeBytes,
			Elapsed:   infos[i].Elapsed - infos[i-1].Elapsed,
		})
	}

	end := len(diffs) - tailTrim
	if end < window {
		return 0, NewInsufficientDataError("SelectCacheSize", fmt.Sprintf(
			"%d raw points leave no windowed samples for window %d",
			len(infos), window))
	}

	sizes := make([]int, 0, end-window+1)
	sums := make([]float64, 0, end-window+1)
	for i := window - 1; i < end; i++ {
		var sum time.Duration
		for j := i + 1 - window; j <= i; j++ {
			sum += diffs[j].Elapsed
		}
		sizes = append(sizes, diffs[i].SizeBytes)
		sums = append(sums, float64(sum))
	}
	return sizes[floats.MaxIdx(sums)], nil
}

// LineSize estimates the cache line size by probing a fixed-size buffer,
// typically the detected cache size, at doubling strides. While the stride
// is below the true line size every hop lands on a fresh line, so the worst
// per-hop jump stays large across strides; once the stride spans a full
// line, further doubling induces no extra line crossings and the jump
// signal collapses. The first stride whose maximum per-hop jump falls below
// 1/dropRatio of the previous stride's maximum is returned, in bytes. If
// the signal never collapses the final stride tried is returned.
//
// The drop ratio is an empirical noise-rejection threshold, not a
// guarantee; a loaded machine can blur the collapse.
func (p *Prober) LineSize(cacheSizeBytes int) int {
	assertPositive("LineSize", "cacheSizeBytes", cacheSizeBytes)
	size := cacheSizeBytes / wordSize
	assertPositive("LineSize", "cacheSizeBytes in slots", size)
	return selectLineSize(size, p.sampleStride, p.dropRatio)
}

func selectLineSize(size int, sample func(size, step int) []time.Duration, dropRatio int64) int {
	lastMaxJump := int64(math.MaxInt64)
	step := 1
	for ; step < size; step *= 2 {
		times := sample(size, step)
		if len(times) < 2 {
			// Cycle too short to difference; only reachable when size is
			// not a power of two.
			break
		}
		jumps := make([]float64, 0, len(times)-1)
		for i := 1; i < len(times); i++ {
			jumps = append(jumps, float64(times[i]-times[i-1]))
		}
		maxJump := int64(floats.Max(jumps))
		if lastMaxJump != math.MaxInt64 && maxJump < lastMaxJump/dropRatio {
			return step * wordSize
		}
		lastMaxJump = maxJump
	}
	return step * wordSize
}
