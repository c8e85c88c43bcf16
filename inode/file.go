package inode

// File is a leaf node. The snapshot layer never descends into files; the
// type exists so trees have realistic leaves.
type File struct {
	name   []byte
	parent Directory
	attrs  Attrs
	length int64
}

var _ Node = (*File)(nil)

// NewFile creates a file node with the given name, attributes and length.
func NewFile(name string, attrs Attrs, length int64) *File {
	return &File{name: []byte(name), attrs: attrs, length: length}
}

func (f *File) LocalName() string      { return string(f.name) }
func (f *File) LocalNameBytes() []byte { return f.name }
func (f *File) Parent() Directory      { return f.parent }
func (f *File) FullPathName() string   { return FullPath(f) }
func (f *File) Attrs() Attrs           { return f.attrs }
func (f *File) IsDirectory() bool      { return false }

func (f *File) AsDirectory() Directory { panic("not a directory") }

// Length returns the file length in bytes.
func (f *File) Length() int64 { return f.length }
