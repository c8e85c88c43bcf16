package inode

import (
	"bytes"
	"fmt"
	"sort"
)

// Dir is the concrete in-memory directory node. Children are kept sorted
// by raw name; lookups binary-search that order.
type Dir struct {
	name     []byte
	parent   Directory
	attrs    Attrs
	children []Node
	history  History
}

var _ Directory = (*Dir)(nil)

// NewDir creates an empty directory with the given name and attributes.
func NewDir(name string, attrs Attrs) *Dir {
	return &Dir{name: []byte(name), attrs: attrs}
}

// NewDirFrom copies the name and attributes of other into a fresh,
// childless, parentless directory. The ACL is always preserved.
func NewDirFrom(other Directory) *Dir {
	return &Dir{
		name:  bytes.Clone(other.LocalNameBytes()),
		attrs: other.Attrs().Clone(),
	}
}

func (d *Dir) LocalName() string      { return string(d.name) }
func (d *Dir) LocalNameBytes() []byte { return d.name }
func (d *Dir) Parent() Directory      { return d.parent }
func (d *Dir) FullPathName() string   { return FullPath(d) }
func (d *Dir) Attrs() Attrs           { return d.attrs }
func (d *Dir) IsDirectory() bool      { return true }
func (d *Dir) AsDirectory() Directory { return d }

// SetLocalName renames the node in place. The caller is responsible for
// keeping any enclosing child list sorted.
func (d *Dir) SetLocalName(name []byte) { d.name = name }

// SetParent reparents the node without touching either child list.
func (d *Dir) SetParent(parent Directory) { d.parent = parent }

// SetAttrs replaces the node's attributes.
func (d *Dir) SetAttrs(attrs Attrs) { d.attrs = attrs }

// CurrentChildrenList returns the live children, sorted by name. The
// returned slice is shared, not copied.
func (d *Dir) CurrentChildrenList() []Node { return d.children }

func (d *Dir) ChildrenList(sid int64) []Node { return d.children }

func (d *Dir) Child(name []byte, sid int64) Node {
	return LookupChild(d.children, name)
}

// AddChild inserts n into the sorted child list and points its parent link
// at d. It fails on duplicate names.
func (d *Dir) AddChild(n Node) error {
	name := n.LocalNameBytes()
	i := sort.Search(len(d.children), func(i int) bool {
		return bytes.Compare(d.children[i].LocalNameBytes(), name) >= 0
	})
	if i < len(d.children) && bytes.Equal(d.children[i].LocalNameBytes(), name) {
		return fmt.Errorf("child %q already exists in %q", n.LocalName(), d.FullPathName())
	}
	d.children = append(d.children, nil)
	copy(d.children[i+1:], d.children[i:])
	d.children[i] = n
	switch c := n.(type) {
	case *Dir:
		c.parent = d
	case *File:
		c.parent = d
	}
	return nil
}

// RemoveChild removes the child with the given raw name, reporting whether
// it was present.
func (d *Dir) RemoveChild(name []byte) bool {
	i := sort.Search(len(d.children), func(i int) bool {
		return bytes.Compare(d.children[i].LocalNameBytes(), name) >= 0
	})
	if i >= len(d.children) || !bytes.Equal(d.children[i].LocalNameBytes(), name) {
		return false
	}
	d.children = append(d.children[:i], d.children[i+1:]...)
	return true
}

func (d *Dir) IsSnapshotTracking() bool { return d.history != nil }

func (d *Dir) DiffHistory() History { return d.history }

// TrackSnapshots attaches a change log to the directory, making it
// snapshot-tracking. A nil history detaches it.
func (d *Dir) TrackSnapshots(h History) { d.history = h }
