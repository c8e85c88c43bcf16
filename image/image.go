package image

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tedgoud/fffs/inode"
	"github.com/tedgoud/fffs/snapshot"
)

// magic opens every image stream, followed by the format version.
var magic = []byte("fsim")

const version uint8 = 1

// Image pairs a namespace tree with the snapshot table taken over it.
type Image struct {
	Root      inode.Node
	Snapshots []*snapshot.Snapshot
}

// Loader adapts node decoding to the capability snapshot.Read consumes.
type Loader struct{}

func (Loader) LoadNode(r io.Reader) (inode.Node, error) {
	return ReadNode(r)
}

// Write persists the tree and its snapshot table. Snapshots are stored as
// id, name and the path of the directory they were taken on; the tree
// carries the per-directory change-log anchors itself.
func Write(w io.Writer, img *Image) error {
	hdr := &payloadWriter{}
	hdr.b = append(hdr.b, magic...)
	hdr.u8(version)
	if err := writeRecord(w, hdr.b); err != nil {
		return err
	}
	if err := WriteNode(w, img.Root); err != nil {
		return err
	}
	tbl := &payloadWriter{}
	tbl.u32(uint32(len(img.Snapshots)))
	for _, s := range img.Snapshots {
		parent := s.Root().Parent()
		if parent == nil {
			return fmt.Errorf("cannot place detached snapshot %v in an image", s)
		}
		tbl.i64(s.ID())
		tbl.str(s.Root().LocalName())
		tbl.str(parent.FullPathName())
	}
	return writeRecord(w, tbl.b)
}

// Load reads an image written by Write, reattaching each snapshot to the
// directory it was taken on.
func Load(r io.Reader) (*Image, error) {
	hdr, err := readRecord(r)
	if err != nil {
		return nil, err
	}
	p := &payloadReader{b: hdr}
	m, err := p.take(len(magic))
	if err != nil {
		return nil, err
	}
	if string(m) != string(magic) {
		return nil, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	v, err := p.u8()
	if err != nil {
		return nil, err
	}
	if v != version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, v)
	}
	if err := p.done(); err != nil {
		return nil, err
	}
	root, err := ReadNode(r)
	if err != nil {
		return nil, err
	}
	tbl, err := readRecord(r)
	if err != nil {
		return nil, err
	}
	p = &payloadReader{b: tbl}
	count, err := p.u32()
	if err != nil {
		return nil, err
	}
	img := &Image{Root: root}
	for range count {
		id, err := p.i64()
		if err != nil {
			return nil, err
		}
		name, err := p.str()
		if err != nil {
			return nil, err
		}
		dirPath, err := p.str()
		if err != nil {
			return nil, err
		}
		n := inode.Lookup(root, dirPath, snapshot.CurrentStateID)
		if n == nil || !n.IsDirectory() {
			return nil, fmt.Errorf("%w: snapshot %d refers to missing directory %q", ErrCorrupt, id, dirPath)
		}
		img.Snapshots = append(img.Snapshots, snapshot.New(id, name, n.AsDirectory()))
	}
	if err := p.done(); err != nil {
		return nil, err
	}
	return img, nil
}

// WriteSnapshot persists one snapshot in the form snapshot.Read consumes:
// the raw id followed by the overlay root rendered as a plain directory
// with the children visible at this moment.
func WriteSnapshot(w io.Writer, s *snapshot.Snapshot) error {
	if err := binary.Write(w, binary.LittleEndian, s.ID()); err != nil {
		return err
	}
	return WriteNode(w, s.Root())
}
