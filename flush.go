package cameto

import "runtime"

// evictBufBytes is sized past any realistic private cache hierarchy; two
// strided passes over it displace whatever the caches held.
const evictBufBytes = 64 << 20

// EvictCaches leaves the data caches cold by streaming a buffer much larger
// than any L1/L2/L3 through them, one touch per line, then collecting
// garbage so probing starts from a quiet heap. Useful before a session on a
// machine that was just doing other work.
func EvictCaches() {
	data := make([]byte, evictBufBytes)
	for i := 0; i < len(data); i += 64 {
		data[i] = byte(i)
	}
	// Second pass with a different pattern to force replacement.
	for i := 0; i < len(data); i += 64 {
		data[i] = byte(i * 7)
	}
	walkSink += int(data[len(data)-1])
	runtime.GC()
}
