// Package inode models a filesystem-like namespace tree: named nodes with
// parent links, directories with name-sorted children, and the capabilities
// the snapshot layer consumes from them.
package inode

import (
	"bytes"
	"sort"
	"strings"
)

// Separator separates path components.
const Separator = "/"

// Node is a single entry in the namespace tree.
type Node interface {
	// LocalName returns the node's name within its parent.
	LocalName() string
	// LocalNameBytes returns the raw stored form of the local name.
	LocalNameBytes() []byte
	// Parent returns the enclosing directory, or nil at (or above) the root.
	Parent() Directory
	// FullPathName returns the slash-joined path from the root, computed
	// on demand so it stays correct across renames and reparenting.
	FullPathName() string
	// Attrs returns the node's attributes.
	Attrs() Attrs

	IsDirectory() bool
	// AsDirectory returns the node as a Directory. It panics if the node
	// is not a directory; callers check IsDirectory first.
	AsDirectory() Directory
}

// History answers, for one directory, "what is the latest recorded prior
// state at or before an anchor ordering point". It is implemented by the
// per-directory change log, not by this package.
type History interface {
	// UpdatePrior returns the more recent of prior and the latest recorded
	// id at or before anchor. It never returns an id greater than anchor.
	UpdatePrior(anchor, prior int64) int64
}

// Directory is a node holding a name-sorted list of children.
type Directory interface {
	Node

	// ChildrenList returns the children visible under the given view id,
	// sorted by name.
	ChildrenList(sid int64) []Node
	// Child looks up a child by raw name under the given view id, or nil.
	Child(name []byte, sid int64) Node
	// CurrentChildrenList returns the live children, sorted by name.
	CurrentChildrenList() []Node

	// IsSnapshotTracking reports whether the directory currently records
	// snapshot history.
	IsSnapshotTracking() bool
	// DiffHistory returns the directory's change log, or nil when the
	// directory is not snapshot-tracking.
	DiffHistory() History
}

// FullPath computes the generic slash-joined path of n by consulting its
// parent chain. A node with no parent renders as its own name, or as the
// bare separator when the name is empty (the filesystem root).
func FullPath(n Node) string {
	p := n.Parent()
	if p == nil {
		if name := n.LocalName(); name != "" {
			return name
		}
		return Separator
	}
	pp := p.FullPathName()
	if strings.HasSuffix(pp, Separator) {
		return pp + n.LocalName()
	}
	return pp + Separator + n.LocalName()
}

// LookupChild binary-searches a name-sorted child list for a raw name.
// It returns nil when the name is absent.
func LookupChild(children []Node, name []byte) Node {
	i := sort.Search(len(children), func(i int) bool {
		return bytes.Compare(children[i].LocalNameBytes(), name) >= 0
	})
	if i < len(children) && bytes.Equal(children[i].LocalNameBytes(), name) {
		return children[i]
	}
	return nil
}
