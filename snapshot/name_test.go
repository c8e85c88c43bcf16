package snapshot

import (
	"regexp"
	"testing"
	"time"
)

var defaultNamePattern = regexp.MustCompile(`^s\d{8}-\d{6}\.\d{3}$`)

func TestDefaultName(t *testing.T) {
	ref := time.Date(2013, 4, 12, 15, 10, 29, 33*int(time.Millisecond), time.UTC)
	if got := DefaultNameAt(ref); got != "s20130412-151029.033" {
		t.Errorf("DefaultNameAt = %q, want s20130412-151029.033", got)
	}
	if got := GenerateDefaultName(); !defaultNamePattern.MatchString(got) {
		t.Errorf("GenerateDefaultName() = %q does not match the fixed pattern", got)
	}
	// Names sort in creation order under an advancing clock.
	prev := DefaultNameAt(ref)
	for _, step := range []time.Duration{0, time.Millisecond, time.Second, time.Hour, 24 * 400 * time.Hour} {
		ref = ref.Add(step)
		cur := DefaultNameAt(ref)
		if cur < prev {
			t.Errorf("name %q sorts before earlier name %q", cur, prev)
		}
		prev = cur
	}
}

func TestPathJoin(t *testing.T) {
	tests := []struct {
		name     string
		dir, rel string
		want     string
	}{
		{"plain", "/a/b", "s1", "/a/b/.snapshot/s1"},
		{"trailing separator", "/a/b/", "s1", "/a/b/.snapshot/s1"},
		{"root", "/", "s1", "/.snapshot/s1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PathJoin(tt.dir, tt.rel); got != tt.want {
				t.Errorf("PathJoin(%q, %q) = %q, want %q", tt.dir, tt.rel, got, tt.want)
			}
		})
	}
}

func TestNameOf(t *testing.T) {
	if got := NameOf(nil); got != "" {
		t.Errorf("NameOf(nil) = %q, want empty", got)
	}
}
