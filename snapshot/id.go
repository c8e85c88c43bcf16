// Package snapshot models immutable point-in-time snapshots of subtrees in
// an inode namespace: a total order over snapshot ids where the live state
// compares greatest, the snapshot entity with its read-only overlay root,
// and the latest-covering-snapshot query over ancestor chains.
package snapshot

import (
	"cmp"
	"math"
)

const (
	// CurrentStateID denotes the live, unsnapshotted state. It orders
	// after every id real snapshot creation can assign.
	CurrentStateID int64 = math.MaxInt64 - 1

	// NoSnapshotID reports that no applicable snapshot was found.
	NoSnapshotID int64 = -1
)

// Compare orders two snapshot ids, returning the sign of a-b as computed
// over the mathematical integers. Ids span the full int64 range, so the
// subtraction itself can overflow and invert the sign; the magnitudes are
// compared directly instead.
func Compare(a, b int64) int {
	return cmp.Compare(a, b)
}

// IDOf returns the ordering key of s, where nil denotes the live state.
// It is the bridge between nullable snapshot references and the id order.
func IDOf(s *Snapshot) int64 {
	if s == nil {
		return CurrentStateID
	}
	return s.id
}
