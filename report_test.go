package cameto

import (
	"path/filepath"
	"testing"
	"time"
)

func TestReportRoundTrip(t *testing.T) {
	levels := []RawLevelInfo{
		{SizeBytes: 8192, Elapsed: 1500 * time.Microsecond},
		{SizeBytes: 16384, Elapsed: 1600 * time.Microsecond},
		{SizeBytes: 24576, Elapsed: 2400 * time.Microsecond},
	}
	report := NewReport(levels, 32768, 64)

	path := filepath.Join(t.TempDir(), "report.json")
	if err := report.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadReport(path)
	if err != nil {
		t.Fatalf("LoadReport: %v", err)
	}
	if loaded.CacheSizeBytes != 32768 {
		t.Errorf("CacheSizeBytes = %d, want 32768", loaded.CacheSizeBytes)
	}
	if loaded.LineSizeBytes != 64 {
		t.Errorf("LineSizeBytes = %d, want 64", loaded.LineSizeBytes)
	}
	if len(loaded.Levels) != len(levels) {
		t.Fatalf("got %d levels, want %d", len(loaded.Levels), len(levels))
	}
	for i, info := range loaded.Levels {
		if info != levels[i] {
			t.Errorf("level %d = %+v, want %+v", i, info, levels[i])
		}
	}
	if loaded.GoVersion != report.GoVersion || loaded.GOARCH != report.GOARCH {
		t.Error("machine context lost in round trip")
	}
}

func TestReportSaveBadPath(t *testing.T) {
	report := NewReport(nil, 0, 0)
	err := report.Save(filepath.Join(t.TempDir(), "missing", "report.json"))
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
	if !IsIOError(err) {
		t.Errorf("expected IO error, got %v", err)
	}
}

func TestLoadReportMissingFile(t *testing.T) {
	_, err := LoadReport(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !IsIOError(err) {
		t.Errorf("expected IO error, got %v", err)
	}
}
