package snapshot

import (
	"math"
	"testing"
)

// A subtraction-based sign comparison overflows near the int64 extremes
// and inverts its answer; these cases pin the magnitude-comparison
// behavior.
func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int
	}{
		{"equal", 3, 3, 0},
		{"less", 3, 7, -1},
		{"greater", 7, 3, 1},
		{"no-snapshot below zero", NoSnapshotID, 0, -1},
		{"current state above any real id", CurrentStateID, CurrentStateID - 1, 1},
		{"min below max", math.MinInt64, math.MaxInt64, -1},
		{"subtraction overflow, positive left", math.MaxInt64 - 1, -2, 1},
		{"subtraction overflow, negative left", math.MinInt64 + 1, 2, -1},
		{"min below zero", math.MinInt64, 0, -1},
		{"max above zero", math.MaxInt64, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(%d, %d) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestIDOf(t *testing.T) {
	if got := IDOf(nil); got != CurrentStateID {
		t.Errorf("IDOf(nil) = %d, want CurrentStateID", got)
	}
	s := &Snapshot{id: 42}
	if got := IDOf(s); got != 42 {
		t.Errorf("IDOf(s) = %d, want 42", got)
	}
	// The live state orders after every id real creation can assign.
	for _, id := range []int64{0, 1, CurrentStateID - 1} {
		if Compare(IDOf(nil), id) <= 0 {
			t.Errorf("IDOf(nil) does not order above real id %d", id)
		}
	}
}
