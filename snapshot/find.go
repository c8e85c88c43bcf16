package snapshot

import "github.com/tedgoud/fffs/inode"

// FindLatest returns the id of the most recent snapshot that covers n,
// meaning it was taken on n or on an ancestor of n, and is ordered at or
// before anchor. An anchor of CurrentStateID accepts the most recent
// snapshot outright. It returns NoSnapshotID when no tracking ancestor has
// a qualifying snapshot.
//
// Snapshots are taken per directory but cover every descendant, and a
// directory may record any number of them, so the query walks the whole
// parent chain and folds the best candidate at each tracking directory.
// The fold keeps the larger id, which the change log never reports above
// the anchor.
func FindLatest(n inode.Node, anchor int64) int64 {
	latest := NoSnapshotID
	for ; n != nil; n = n.Parent() {
		if !n.IsDirectory() {
			continue
		}
		dir := n.AsDirectory()
		if dir.IsSnapshotTracking() {
			latest = dir.DiffHistory().UpdatePrior(anchor, latest)
		}
	}
	return latest
}
