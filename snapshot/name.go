package snapshot

import (
	"strings"
	"time"

	"github.com/tedgoud/fffs/inode"
)

// DotSnapshotDir is the reserved path segment under which snapshot roots
// appear.
const DotSnapshotDir = ".snapshot"

// GenerateDefaultName produces a snapshot name from the current wall-clock
// time, e.g. "s20130412-151029.033". Successive calls under an advancing
// clock sort in creation order.
func GenerateDefaultName() string {
	return DefaultNameAt(time.Now())
}

// DefaultNameAt renders the default snapshot name for an explicit time.
func DefaultNameAt(t time.Time) string {
	return "s" + t.Format("20060102-150405.000")
}

// PathJoin joins a snapshottable directory path with a snapshot-relative
// name, splicing in the reserved segment and avoiding a doubled separator.
func PathJoin(dirPath, rel string) string {
	var b strings.Builder
	b.WriteString(dirPath)
	if !strings.HasSuffix(dirPath, inode.Separator) {
		b.WriteString(inode.Separator)
	}
	b.WriteString(DotSnapshotDir)
	b.WriteString(inode.Separator)
	b.WriteString(rel)
	return b.String()
}

// NameOf returns the overlay root's local name, or the empty string when s
// is nil.
func NameOf(s *Snapshot) string {
	if s == nil {
		return ""
	}
	return s.root.LocalName()
}
