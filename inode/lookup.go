package inode

import "strings"

// Lookup resolves a slash-separated absolute path against root, reading
// child lists under the given view id. It returns nil when any component
// is absent or crosses a non-directory.
func Lookup(root Node, path string, sid int64) Node {
	n := root
	for _, seg := range strings.Split(path, Separator) {
		if seg == "" {
			continue
		}
		if !n.IsDirectory() {
			return nil
		}
		c := n.AsDirectory().Child([]byte(seg), sid)
		if c == nil {
			return nil
		}
		n = c
	}
	return n
}
