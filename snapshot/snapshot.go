package snapshot

import (
	"bytes"
	"fmt"

	"github.com/tedgoud/fffs/inode"
)

// Snapshot is an immutable point-in-time view of a directory subtree. It
// pairs a real snapshot id (never a sentinel) with the overlay root frozen
// when the snapshot was taken. Two Snapshots with the same id are
// interchangeable.
type Snapshot struct {
	id   int64
	root *Root
}

// New takes a snapshot named name of dir. The overlay root freezes dir's
// attributes under id and is parented at dir itself, so its path renders
// under dir's reserved snapshot segment.
func New(id int64, name string, dir inode.Directory) *Snapshot {
	s := NewAt(id, dir, dir)
	s.root.frozen.SetLocalName([]byte(name))
	return s
}

// NewAt takes a snapshot of dir with the overlay root parented at parent,
// which may be nil for a detached snapshot, as when reloading one from its
// persisted form. The root keeps dir's own name.
func NewAt(id int64, dir, parent inode.Directory) *Snapshot {
	return &Snapshot{
		id: id,
		root: &Root{
			frozen: inode.NewDirFrom(dir),
			live:   dir,
			parent: parent,
			sid:    id,
		},
	}
}

// ID returns the snapshot's id.
func (s *Snapshot) ID() int64 { return s.id }

// Root returns the snapshot's overlay root.
func (s *Snapshot) Root() *Root { return s.root }

// CompareName lexicographically compares the overlay root's raw name
// against name, so snapshots can live in name-sorted collections.
func (s *Snapshot) CompareName(name []byte) int {
	return bytes.Compare(s.root.LocalNameBytes(), name)
}

// Equal reports whether s and o denote the same snapshot. Identity is the
// id alone, however the two values were constructed.
func (s *Snapshot) Equal(o *Snapshot) bool {
	return o != nil && s.id == o.id
}

// String returns a diagnostic form; it takes no part in equality or
// persistence.
func (s *Snapshot) String() string {
	return fmt.Sprintf("Snapshot.%s(id=%d)", s.root.LocalName(), s.id)
}

// Root is the directory overlay at the top of a snapshot. Its attributes
// are frozen at creation; listing and lookup deliberately ignore the
// requested view id and follow the live children of the directory the
// snapshot was taken on. Per-child history resolution belongs to the
// per-directory change log, not to the overlay.
type Root struct {
	frozen *inode.Dir
	live   inode.Directory
	parent inode.Directory
	sid    int64
}

var _ inode.Directory = (*Root)(nil)

func (r *Root) LocalName() string      { return r.frozen.LocalName() }
func (r *Root) LocalNameBytes() []byte { return r.frozen.LocalNameBytes() }
func (r *Root) Parent() inode.Directory { return r.parent }
func (r *Root) Attrs() inode.Attrs     { return r.frozen.Attrs() }
func (r *Root) IsDirectory() bool      { return true }

func (r *Root) AsDirectory() inode.Directory { return r }

// FullPathName splices the reserved snapshot segment and the snapshot name
// under the parent's path. With no parent it falls back to the generic
// node rule.
func (r *Root) FullPathName() string {
	if r.parent == nil {
		return inode.FullPath(r)
	}
	return PathJoin(r.parent.FullPathName(), r.LocalName())
}

func (r *Root) ChildrenList(sid int64) []inode.Node {
	return r.live.CurrentChildrenList()
}

func (r *Root) Child(name []byte, sid int64) inode.Node {
	return inode.LookupChild(r.live.CurrentChildrenList(), name)
}

func (r *Root) CurrentChildrenList() []inode.Node {
	return r.live.CurrentChildrenList()
}

func (r *Root) IsSnapshotTracking() bool { return false }

func (r *Root) DiffHistory() inode.History { return nil }
