package image_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tedgoud/fffs/history"
	"github.com/tedgoud/fffs/image"
	"github.com/tedgoud/fffs/inode"
	"github.com/tedgoud/fffs/snapshot"
)

// entry is the observable projection of one node, used to compare trees
// across a codec round trip.
type entry struct {
	Path   string
	Dir    bool
	Perm   uint32
	Owner  string
	Group  string
	ACL    []string
	Diffs  []int64
	Length int64
}

func flatten(n inode.Node, dst []entry) []entry {
	e := entry{
		Path:  n.FullPathName(),
		Dir:   n.IsDirectory(),
		Perm:  n.Attrs().Perm,
		Owner: n.Attrs().Owner,
		Group: n.Attrs().Group,
		ACL:   n.Attrs().ACL,
	}
	if !n.IsDirectory() {
		e.Length = n.(*inode.File).Length()
		return append(dst, e)
	}
	dir := n.AsDirectory()
	if dl, ok := dir.DiffHistory().(*history.DiffList); ok {
		e.Diffs = dl.IDs()
	}
	dst = append(dst, e)
	for _, c := range dir.CurrentChildrenList() {
		dst = flatten(c, dst)
	}
	return dst
}

func testImage(t *testing.T) *image.Image {
	t.Helper()
	root := inode.NewDir("", inode.Attrs{Perm: 0755, Owner: "root", Group: "wheel"})
	d1 := inode.NewDir("d1", inode.Attrs{
		Perm:  0750,
		Owner: "alice",
		Group: "staff",
		ACL:   []string{"user:bob:r-x", "group:ops:rwx"},
	})
	if err := root.AddChild(d1); err != nil {
		t.Fatal(err)
	}
	if err := d1.AddChild(inode.NewFile("f1", inode.Attrs{Perm: 0644}, 1234)); err != nil {
		t.Fatal(err)
	}
	d2 := inode.NewDir("d2", inode.Attrs{Perm: 0700})
	if err := d1.AddChild(d2); err != nil {
		t.Fatal(err)
	}
	dl := &history.DiffList{}
	for _, id := range []int64{5, 10} {
		if err := dl.AddDiff(id); err != nil {
			t.Fatal(err)
		}
	}
	d1.TrackSnapshots(dl)
	return &image.Image{
		Root: root,
		Snapshots: []*snapshot.Snapshot{
			snapshot.New(5, "s5", d1),
			snapshot.New(10, "s10", d1),
		},
	}
}

func TestImageRoundTrip(t *testing.T) {
	img := testImage(t)
	var buf bytes.Buffer
	if err := image.Write(&buf, img); err != nil {
		t.Fatal(err)
	}
	got, err := image.Load(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(flatten(img.Root, nil), flatten(got.Root, nil)); d != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", d)
	}
	if len(got.Snapshots) != 2 {
		t.Fatalf("%d snapshots, want 2", len(got.Snapshots))
	}
	for i, s := range got.Snapshots {
		want := img.Snapshots[i]
		if s.ID() != want.ID() || snapshot.NameOf(s) != snapshot.NameOf(want) {
			t.Errorf("snapshot %d = %v, want %v", i, s, want)
		}
		if gotPath, wantPath := s.Root().FullPathName(), want.Root().FullPathName(); gotPath != wantPath {
			t.Errorf("snapshot %d path = %q, want %q", i, gotPath, wantPath)
		}
	}
	// The reloaded tree answers the covering query like the original.
	n := inode.Lookup(got.Root, "/d1/d2", snapshot.CurrentStateID)
	if n == nil {
		t.Fatal("no /d1/d2 in reloaded tree")
	}
	if id := snapshot.FindLatest(n, 8); id != 5 {
		t.Errorf("FindLatest = %d, want 5", id)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	img := testImage(t)
	s := img.Snapshots[1]
	var buf bytes.Buffer
	if err := image.WriteSnapshot(&buf, s); err != nil {
		t.Fatal(err)
	}
	got, err := snapshot.Read(&buf, image.Loader{})
	if err != nil {
		t.Fatal(err)
	}
	if got.ID() != s.ID() {
		t.Errorf("ID = %d, want %d", got.ID(), s.ID())
	}
	if snapshot.NameOf(got) != "s10" {
		t.Errorf("name = %q, want s10", snapshot.NameOf(got))
	}
	wantChildren := s.Root().ChildrenList(snapshot.CurrentStateID)
	gotChildren := got.Root().ChildrenList(snapshot.CurrentStateID)
	if len(gotChildren) != len(wantChildren) {
		t.Fatalf("%d children, want %d", len(gotChildren), len(wantChildren))
	}
	for i := range wantChildren {
		if gotChildren[i].LocalName() != wantChildren[i].LocalName() {
			t.Errorf("child %d = %q, want %q", i, gotChildren[i].LocalName(), wantChildren[i].LocalName())
		}
	}
	// ACL survives the trip.
	if d := cmp.Diff(s.Root().Attrs().ACL, got.Root().Attrs().ACL); d != "" {
		t.Errorf("ACL mismatch (-want +got):\n%s", d)
	}
}

func TestLoadCorrupt(t *testing.T) {
	img := testImage(t)
	var buf bytes.Buffer
	if err := image.Write(&buf, img); err != nil {
		t.Fatal(err)
	}
	raw := buf.Bytes()

	t.Run("bit flip", func(t *testing.T) {
		flipped := bytes.Clone(raw)
		flipped[len(flipped)/2] ^= 0x40
		if _, err := image.Load(bytes.NewReader(flipped)); !errors.Is(err, image.ErrCorrupt) {
			t.Errorf("err = %v, want ErrCorrupt", err)
		}
	})
	t.Run("truncated", func(t *testing.T) {
		if _, err := image.Load(bytes.NewReader(raw[:len(raw)-3])); !errors.Is(err, image.ErrCorrupt) {
			t.Errorf("err = %v, want ErrCorrupt", err)
		}
	})
	t.Run("empty", func(t *testing.T) {
		if _, err := image.Load(bytes.NewReader(nil)); !errors.Is(err, image.ErrCorrupt) {
			t.Errorf("err = %v, want ErrCorrupt", err)
		}
	})
}

func TestReadMalformedSnapshotRecord(t *testing.T) {
	if _, err := snapshot.Read(bytes.NewReader([]byte("short")), image.Loader{}); !errors.Is(err, snapshot.ErrMalformedRecord) {
		t.Errorf("err = %v, want ErrMalformedRecord", err)
	}

	// A well-framed id followed by garbage still surfaces as malformed.
	var buf bytes.Buffer
	buf.Write(make([]byte, 8))
	buf.WriteString("garbage that is not a node record")
	if _, err := snapshot.Read(&buf, image.Loader{}); !errors.Is(err, snapshot.ErrMalformedRecord) {
		t.Errorf("err = %v, want ErrMalformedRecord", err)
	}
}
