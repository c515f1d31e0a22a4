package cameto

import (
	"fmt"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// HardwareInfo is what the CPU itself reports about its cache geometry.
// It exists to sanity-check the empirical estimates, never to replace them;
// virtualized and big.LITTLE machines are exactly where the two disagree.
// Sizes are -1 when the CPU does not report them.
type HardwareInfo struct {
	Vendor   string   `json:"vendor"`
	Brand    string   `json:"brand"`
	LineSize int      `json:"line_size"`
	L1D      int      `json:"l1d"`
	L1I      int      `json:"l1i"`
	L2       int      `json:"l2"`
	L3       int      `json:"l3"`
	Features []string `json:"features,omitempty"`
}

// DetectHardware reads the CPUID-reported cache geometry and the SIMD
// feature set. The feature list gives prefetch-relevant context when
// interpreting latency curves across machines.
func DetectHardware() HardwareInfo {
	c := cpuid.CPU
	return HardwareInfo{
		Vendor:   c.VendorString,
		Brand:    c.BrandName,
		LineSize: c.CacheLine,
		L1D:      c.Cache.L1D,
		L1I:      c.Cache.L1I,
		L2:       c.Cache.L2,
		L3:       c.Cache.L3,
		Features: simdFeatures(),
	}
}

func simdFeatures() []string {
	var features []string
	if cpu.X86.HasSSE41 || cpu.X86.HasSSE42 {
		features = append(features, "SSE4")
	}
	if cpu.X86.HasAVX {
		features = append(features, "AVX")
	}
	if cpu.X86.HasAVX2 {
		features = append(features, "AVX2")
	}
	if cpu.X86.HasFMA {
		features = append(features, "FMA")
	}
	if cpu.X86.HasAVX512F {
		features = append(features, "AVX512F")
	}
	if cpu.ARM64.HasASIMD {
		features = append(features, "ASIMD")
	}
	return features
}

// String renders the reported geometry in lscpu-like lines.
func (h HardwareInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CPU: %s (%s)\n", h.Brand, h.Vendor)
	fmt.Fprintf(&b, "reported cache line: %d bytes\n", h.LineSize)
	fmt.Fprintf(&b, "reported L1D: %s, L1I: %s, L2: %s, L3: %s\n",
		reportedBytes(h.L1D), reportedBytes(h.L1I),
		reportedBytes(h.L2), reportedBytes(h.L3))
	if len(h.Features) > 0 {
		fmt.Fprintf(&b, "features: %s\n", strings.Join(h.Features, ", "))
	}
	return b.String()
}

func reportedBytes(v int) string {
	if v <= 0 {
		return "unknown"
	}
	return FormatBytes(int64(v))
}
