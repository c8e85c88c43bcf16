// Package snapdiff reports which names appear and disappear between two
// name-sorted directory listings, such as the same directory rendered from
// two images.
package snapdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Report lists the names created and deleted between two listings, each in
// the order they occur.
type Report struct {
	Created []string
	Deleted []string
}

// Empty reports whether the two listings were identical.
func (r *Report) Empty() bool {
	return len(r.Created) == 0 && len(r.Deleted) == 0
}

// Compute diffs two listings line-wise. Listings are joined to one line
// per name, so a name is either wholly created, wholly deleted, or kept.
func Compute(from, to []string) *Report {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(joinLines(from), joinLines(to))
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)

	res := &Report{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			res.Created = append(res.Created, splitLines(diff.Text)...)
		case diffpatch.DiffDelete:
			res.Deleted = append(res.Deleted, splitLines(diff.Text)...)
		}
	}
	return res
}

func joinLines(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return strings.Join(names, "\n") + "\n"
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
