package image

import (
	"fmt"
	"io"

	"github.com/tedgoud/fffs/history"
	"github.com/tedgoud/fffs/inode"
)

const (
	kindDir  uint8 = 1
	kindFile uint8 = 2
)

// WriteNode persists n and its subtree, one record per node, preorder.
func WriteNode(w io.Writer, n inode.Node) error {
	p := &payloadWriter{}
	if n.IsDirectory() {
		dir := n.AsDirectory()
		children := dir.CurrentChildrenList()
		p.u8(kindDir)
		p.str(n.LocalName())
		writeAttrs(p, n.Attrs())
		writeDiffs(p, dir)
		p.u32(uint32(len(children)))
		if err := writeRecord(w, p.b); err != nil {
			return err
		}
		for _, c := range children {
			if err := WriteNode(w, c); err != nil {
				return err
			}
		}
		return nil
	}
	f, ok := n.(*inode.File)
	if !ok {
		return fmt.Errorf("cannot persist node %q of type %T", n.LocalName(), n)
	}
	p.u8(kindFile)
	p.str(n.LocalName())
	writeAttrs(p, n.Attrs())
	p.i64(f.Length())
	return writeRecord(w, p.b)
}

// ReadNode reads one node and its subtree written by WriteNode.
func ReadNode(r io.Reader) (inode.Node, error) {
	b, err := readRecord(r)
	if err != nil {
		return nil, err
	}
	p := &payloadReader{b: b}
	kind, err := p.u8()
	if err != nil {
		return nil, err
	}
	name, err := p.str()
	if err != nil {
		return nil, err
	}
	attrs, err := readAttrs(p)
	if err != nil {
		return nil, err
	}
	switch kind {
	case kindFile:
		length, err := p.i64()
		if err != nil {
			return nil, err
		}
		if err := p.done(); err != nil {
			return nil, err
		}
		return inode.NewFile(name, attrs, length), nil
	case kindDir:
		dir := inode.NewDir(name, attrs)
		if err := readDiffs(p, dir); err != nil {
			return nil, err
		}
		childCount, err := p.u32()
		if err != nil {
			return nil, err
		}
		if err := p.done(); err != nil {
			return nil, err
		}
		for range childCount {
			c, err := ReadNode(r)
			if err != nil {
				return nil, err
			}
			if err := dir.AddChild(c); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
			}
		}
		return dir, nil
	default:
		return nil, fmt.Errorf("%w: unknown node kind %d", ErrCorrupt, kind)
	}
}

func writeAttrs(p *payloadWriter, a inode.Attrs) {
	p.u32(a.Perm)
	p.i64(a.ModTime)
	p.str(a.Owner)
	p.str(a.Group)
	p.u16(uint16(len(a.ACL)))
	for _, e := range a.ACL {
		p.str(e)
	}
}

func readAttrs(p *payloadReader) (inode.Attrs, error) {
	var a inode.Attrs
	var err error
	if a.Perm, err = p.u32(); err != nil {
		return a, err
	}
	if a.ModTime, err = p.i64(); err != nil {
		return a, err
	}
	if a.Owner, err = p.str(); err != nil {
		return a, err
	}
	if a.Group, err = p.str(); err != nil {
		return a, err
	}
	n, err := p.u16()
	if err != nil {
		return a, err
	}
	for range n {
		e, err := p.str()
		if err != nil {
			return a, err
		}
		a.ACL = append(a.ACL, e)
	}
	return a, nil
}

// writeDiffs records the directory's change-log anchors when it tracks
// snapshots. Only the concrete DiffList is persistable.
func writeDiffs(p *payloadWriter, dir inode.Directory) {
	dl, ok := dir.DiffHistory().(*history.DiffList)
	if !ok || dl == nil {
		p.u8(0)
		return
	}
	p.u8(1)
	ids := dl.IDs()
	p.u32(uint32(len(ids)))
	for _, id := range ids {
		p.i64(id)
	}
}

func readDiffs(p *payloadReader, dir *inode.Dir) error {
	tracking, err := p.u8()
	if err != nil {
		return err
	}
	if tracking == 0 {
		return nil
	}
	n, err := p.u32()
	if err != nil {
		return err
	}
	dl := &history.DiffList{}
	for range n {
		id, err := p.i64()
		if err != nil {
			return err
		}
		if err := dl.AddDiff(id); err != nil {
			return fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
	}
	dir.TrackSnapshots(dl)
	return nil
}
