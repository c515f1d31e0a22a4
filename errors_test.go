package cameto

import (
	"errors"
	"io/fs"
	"testing"
)

func TestStructuredErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
		wantOp   string
		checkFn  func(error) bool
	}{
		{
			name:     "Invalid Arg Error",
			err:      NewInvalidArgError("LevelSizes", "range too narrow"),
			wantType: ErrTypeInvalidArg,
			wantOp:   "LevelSizes",
			checkFn:  IsInvalidArgError,
		},
		{
			name:     "Insufficient Data Error",
			err:      NewInsufficientDataError("SelectCacheSize", "no windowed samples"),
			wantType: ErrTypeInsufficientData,
			wantOp:   "SelectCacheSize",
			checkFn:  IsInsufficientDataError,
		},
		{
			name:     "IO Error",
			err:      NewIOError("Report.Save", "write report.json", fs.ErrPermission),
			wantType: ErrTypeIO,
			wantOp:   "Report.Save",
			checkFn:  IsIOError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probeErr, ok := tt.err.(*ProbeError)
			if !ok {
				t.Fatalf("expected ProbeError, got %T", tt.err)
			}
			if probeErr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", probeErr.Type, tt.wantType)
			}
			if probeErr.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", probeErr.Op, tt.wantOp)
			}
			if !tt.checkFn(tt.err) {
				t.Error("type predicate rejected its own error")
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := NewIOError("PlotLevels", "save levels.png", fs.ErrNotExist)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("wrapped cause not reachable through errors.Is")
	}
}

func TestPredicatesRejectOtherErrors(t *testing.T) {
	plain := errors.New("plain")
	if IsInvalidArgError(plain) || IsInsufficientDataError(plain) || IsIOError(plain) {
		t.Error("predicates must reject non-ProbeError values")
	}
	insufficient := NewInsufficientDataError("SelectCacheSize", "short series")
	if IsInvalidArgError(insufficient) || IsIOError(insufficient) {
		t.Error("predicates must discriminate between types")
	}
}

func TestAssertPositive(t *testing.T) {
	assertPositive("op", "n", 1) // no panic
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-positive value")
		}
	}()
	assertPositive("op", "n", 0)
}
