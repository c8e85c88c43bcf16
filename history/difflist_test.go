package history

import (
	"testing"

	"github.com/tedgoud/fffs/snapshot"
)

func list(t *testing.T, ids ...int64) *DiffList {
	t.Helper()
	l := &DiffList{}
	for _, id := range ids {
		if err := l.AddDiff(id); err != nil {
			t.Fatal(err)
		}
	}
	return l
}

func TestAddDiff(t *testing.T) {
	l := list(t, 3, 9)
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if err := l.AddDiff(9); err == nil {
		t.Error("AddDiff(9) after 9 did not fail")
	}
	if err := l.AddDiff(2); err == nil {
		t.Error("AddDiff(2) after 9 did not fail")
	}
	if err := l.AddDiff(-1); err == nil {
		t.Error("AddDiff(-1) did not fail")
	}
	if err := l.AddDiff(snapshot.CurrentStateID); err == nil {
		t.Error("AddDiff(CurrentStateID) did not fail")
	}
}

func TestPrior(t *testing.T) {
	l := list(t, 5, 10)
	empty := &DiffList{}
	tests := []struct {
		name   string
		l      *DiffList
		anchor int64
		want   int64
	}{
		{"between", l, 8, 5},
		{"exact", l, 10, 10},
		{"before all", l, 4, snapshot.NoSnapshotID},
		{"after all", l, 11, 10},
		{"live anchor", l, snapshot.CurrentStateID, 10},
		{"empty", empty, 8, snapshot.NoSnapshotID},
		{"empty live anchor", empty, snapshot.CurrentStateID, snapshot.NoSnapshotID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.Prior(tt.anchor); got != tt.want {
				t.Errorf("Prior(%d) = %d, want %d", tt.anchor, got, tt.want)
			}
		})
	}
}

func TestUpdatePrior(t *testing.T) {
	l := list(t, 5, 10)
	tests := []struct {
		name          string
		anchor, prior int64
		want          int64
	}{
		{"improves on none", 8, snapshot.NoSnapshotID, 5},
		{"keeps better prior", 8, 7, 7},
		{"beats worse prior", 11, 7, 10},
		{"nothing qualifies", 4, 3, 3},
		{"live anchor", snapshot.CurrentStateID, 7, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.UpdatePrior(tt.anchor, tt.prior)
			if got != tt.want {
				t.Errorf("UpdatePrior(%d, %d) = %d, want %d", tt.anchor, tt.prior, got, tt.want)
			}
			if tt.anchor != snapshot.CurrentStateID && got > tt.anchor {
				t.Errorf("UpdatePrior returned %d above anchor %d", got, tt.anchor)
			}
		})
	}
}
