// Command cameto probes the L1 data cache geometry of the host CPU by
// timing pointer-chasing traversals over randomized buffers, then prints
// the raw latency series and the inferred cache size and line size.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/winter-yuki/cameto"
)

func main() {
	var (
		minSize = flag.Int("min", 8*1024, "smallest probed buffer size in bytes, also the sweep increment")
		maxSize = flag.Int("max", 256*1024, "largest probed buffer size in bytes")
		window  = flag.Int("window", cameto.DefaultWindowSize, "smoothing window over the differenced series (>= 2)")
		touches = flag.Int("touches", cameto.DefaultTouchCount, "hop cap per probing round")
		plotOut = flag.String("plot", "", "write the latency curve as an image to this path")
		jsonOut = flag.String("json", "", "write the probe report as JSON to this path")
		cold    = flag.Bool("cold", false, "evict caches before probing")
		verbose = flag.Bool("v", false, "print progress and CPUID-reported geometry to stderr")
	)
	flag.Parse()

	opts := []cameto.Option{
		cameto.WithWindowSize(*window),
		cameto.WithTouchCount(*touches),
	}
	if *verbose {
		opts = append(opts, cameto.WithProgress(os.Stderr))
		fmt.Fprint(os.Stderr, cameto.DetectHardware())
	}
	if *cold {
		cameto.EvictCaches()
	}

	p := cameto.NewProber(opts...)
	levels := p.LevelSizes(*minSize, *maxSize)
	for _, info := range levels {
		fmt.Printf("%g\t%d\n", float64(info.SizeBytes)/1024, info.Elapsed.Nanoseconds())
	}

	cacheSize, err := p.SelectCacheSize(levels)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("L1 cache size -- %d\n", cacheSize)

	lineSize := p.LineSize(cacheSize)
	fmt.Printf("L1 cache line size -- %d\n", lineSize)

	if *plotOut != "" {
		if err := cameto.PlotLevels(levels, *plotOut); err != nil {
			log.Fatal(err)
		}
	}
	if *jsonOut != "" {
		if err := cameto.NewReport(levels, cacheSize, lineSize).Save(*jsonOut); err != nil {
			log.Fatal(err)
		}
	}
}
