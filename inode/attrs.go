package inode

import "slices"

// Attrs holds the attributes frozen into a snapshot root when a snapshot
// is taken: ownership, permission bits, ACL entries, and modification time.
type Attrs struct {
	Perm    uint32
	Owner   string
	Group   string
	ACL     []string // opaque entries, e.g. "user:alice:rwx"
	ModTime int64    // unix milliseconds
}

// Clone returns a copy of a with its own ACL slice.
func (a Attrs) Clone() Attrs {
	a.ACL = slices.Clone(a.ACL)
	return a
}
