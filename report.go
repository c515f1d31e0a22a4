package cameto

import (
	"os"
	"runtime"
	"time"

	"github.com/sugawarayuuta/sonnet"
)

// Report captures one probing session: machine context, the raw level
// series, and both estimates. Saved as JSON so sessions from different
// machines can be compared offline.
type Report struct {
	Timestamp time.Time `json:"timestamp"`
	GoVersion string    `json:"go_version"`
	GOOS      string    `json:"goos"`
	GOARCH    string    `json:"goarch"`

	Hardware HardwareInfo   `json:"hardware"`
	Levels   []RawLevelInfo `json:"levels"`

	CacheSizeBytes int `json:"cache_size_bytes"`
	LineSizeBytes  int `json:"line_size_bytes"`
}

// NewReport fills in the machine context around a finished probing session.
func NewReport(levels []RawLevelInfo, cacheSizeBytes, lineSizeBytes int) *Report {
	return &Report{
		Timestamp:      time.Now(),
		GoVersion:      runtime.Version(),
		GOOS:           runtime.GOOS,
		GOARCH:         runtime.GOARCH,
		Hardware:       DetectHardware(),
		Levels:         levels,
		CacheSizeBytes: cacheSizeBytes,
		LineSizeBytes:  lineSizeBytes,
	}
}

// Save writes the report as JSON to path.
func (r *Report) Save(path string) error {
	data, err := sonnet.Marshal(r)
	if err != nil {
		return NewIOError("Report.Save", "marshal report", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewIOError("Report.Save", "write "+path, err)
	}
	return nil
}

// LoadReport reads back a report written by Save.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewIOError("LoadReport", "read "+path, err)
	}
	var r Report
	if err := sonnet.Unmarshal(data, &r); err != nil {
		return nil, NewIOError("LoadReport", "unmarshal "+path, err)
	}
	return &r, nil
}
