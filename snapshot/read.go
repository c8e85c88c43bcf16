package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/tedgoud/fffs/inode"
)

// ErrMalformedRecord reports an unreadable persisted snapshot record.
var ErrMalformedRecord = errors.New("malformed snapshot record")

// Loader reconstructs a namespace node, with its local name, from its
// persisted form.
type Loader interface {
	LoadNode(r io.Reader) (inode.Node, error)
}

// Read reconstructs a detached snapshot from its persisted form: the id
// followed by the root directory node, decoded through loader.
func Read(r io.Reader, loader Loader) (*Snapshot, error) {
	var id int64
	if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
		return nil, fmt.Errorf("%w: reading id: %w", ErrMalformedRecord, err)
	}
	n, err := loader.LoadNode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if !n.IsDirectory() {
		return nil, fmt.Errorf("%w: root %q is not a directory", ErrMalformedRecord, n.LocalName())
	}
	return NewAt(id, n.AsDirectory(), nil), nil
}
