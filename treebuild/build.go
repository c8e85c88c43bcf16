// Package treebuild interprets a YAML tree document into an inode
// namespace with recorded snapshots, for tests and the fsnap tool.
package treebuild

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/tedgoud/fffs/history"
	"github.com/tedgoud/fffs/image"
	"github.com/tedgoud/fffs/inode"
	"github.com/tedgoud/fffs/snapshot"
)

// DirSpec describes one directory in the document. Snapshots listed on a
// directory make it snapshot-tracking and are taken on it in id order.
type DirSpec struct {
	Name      string      `yaml:"name"`
	Perm      uint32      `yaml:"perm,omitempty"`
	Owner     string      `yaml:"owner,omitempty"`
	Group     string      `yaml:"group,omitempty"`
	ACL       []string    `yaml:"acl,omitempty"`
	ModTime   int64       `yaml:"mtime,omitempty"`
	Snapshots []SnapSpec  `yaml:"snapshots,omitempty"`
	Dirs      []*DirSpec  `yaml:"dirs,omitempty"`
	Files     []*FileSpec `yaml:"files,omitempty"`
}

// FileSpec describes one file leaf.
type FileSpec struct {
	Name   string `yaml:"name"`
	Perm   uint32 `yaml:"perm,omitempty"`
	Length int64  `yaml:"length,omitempty"`
}

// SnapSpec names one snapshot taken on the enclosing directory. An empty
// name defaults to "s<id>".
type SnapSpec struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name,omitempty"`
}

// Build parses a YAML tree document and constructs the namespace it
// describes. The document root is a DirSpec; its name is usually empty,
// making it the filesystem root.
func Build(data []byte) (*image.Image, error) {
	spec := &DirSpec{}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("could not decode tree document: %w", err)
	}
	img := &image.Image{}
	root, err := buildDir(spec, img)
	if err != nil {
		return nil, err
	}
	img.Root = root
	return img, nil
}

func buildDir(spec *DirSpec, img *image.Image) (*inode.Dir, error) {
	dir := inode.NewDir(spec.Name, inode.Attrs{
		Perm:    spec.Perm,
		Owner:   spec.Owner,
		Group:   spec.Group,
		ACL:     spec.ACL,
		ModTime: spec.ModTime,
	})
	for _, fs := range spec.Files {
		f := inode.NewFile(fs.Name, inode.Attrs{Perm: fs.Perm}, fs.Length)
		if err := dir.AddChild(f); err != nil {
			return nil, err
		}
	}
	for _, ds := range spec.Dirs {
		c, err := buildDir(ds, img)
		if err != nil {
			return nil, err
		}
		if err := dir.AddChild(c); err != nil {
			return nil, err
		}
	}
	if len(spec.Snapshots) > 0 {
		dl := &history.DiffList{}
		for _, ss := range spec.Snapshots {
			if err := dl.AddDiff(ss.ID); err != nil {
				return nil, fmt.Errorf("directory %q: %w", spec.Name, err)
			}
			name := ss.Name
			if name == "" {
				name = fmt.Sprintf("s%d", ss.ID)
			}
			img.Snapshots = append(img.Snapshots, snapshot.New(ss.ID, name, dir))
		}
		dir.TrackSnapshots(dl)
	}
	return dir, nil
}
