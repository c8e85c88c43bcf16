// Package history is the per-directory change log the snapshot layer
// queries for "latest recorded prior state at or before an anchor". It
// records only the ordering anchors of historical edits; historical child
// lists live elsewhere.
package history

import (
	"fmt"
	"sort"

	"github.com/tedgoud/fffs/snapshot"
)

// DiffList records the snapshot ids at which a directory's state was
// frozen, in ascending order.
type DiffList struct {
	ids []int64
}

// AddDiff appends a recorded id. Ids arrive in snapshot-creation order, so
// each must exceed the last and stay below the live-state sentinel.
func (l *DiffList) AddDiff(id int64) error {
	if id < 0 || id >= snapshot.CurrentStateID {
		return fmt.Errorf("diff id %d out of range", id)
	}
	if n := len(l.ids); n > 0 && id <= l.ids[n-1] {
		return fmt.Errorf("diff id %d not above last id %d", id, l.ids[n-1])
	}
	l.ids = append(l.ids, id)
	return nil
}

// Len returns the number of recorded ids.
func (l *DiffList) Len() int { return len(l.ids) }

// IDs returns the recorded ids in ascending order. The slice is shared,
// not copied.
func (l *DiffList) IDs() []int64 { return l.ids }

// Prior returns the latest recorded id at or before anchor, or
// snapshot.NoSnapshotID when there is none. An anchor of
// snapshot.CurrentStateID selects the latest recorded id.
func (l *DiffList) Prior(anchor int64) int64 {
	if len(l.ids) == 0 {
		return snapshot.NoSnapshotID
	}
	if anchor == snapshot.CurrentStateID {
		return l.ids[len(l.ids)-1]
	}
	i := sort.Search(len(l.ids), func(i int) bool { return l.ids[i] > anchor })
	if i == 0 {
		return snapshot.NoSnapshotID
	}
	return l.ids[i-1]
}

// UpdatePrior folds this directory's best candidate into a running result:
// it returns the more recent of prior and the latest recorded id at or
// before anchor. It never returns an id above anchor.
func (l *DiffList) UpdatePrior(anchor, prior int64) int64 {
	if p := l.Prior(anchor); snapshot.Compare(p, prior) > 0 {
		return p
	}
	return prior
}
