// internal/annot/labels.go
package annot

import "sort"

// WithValue returns a copy of labels with ": value" appended to all
// but the last keep entries. The trailing entries stay bare so narrow
// displays always get a candidate.
func WithValue(labels []string, keep int, value string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	if keep < 0 {
		keep = 0
	}
	for i := 0; i < len(out)-keep; i++ {
		out[i] += ": " + value
	}
	return out
}

// LongestFirst returns labels stable-sorted by descending length.
// The sink contract requires candidates longest first; composed lists
// (base + alternates) are not guaranteed ordered until this runs.
func LongestFirst(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}
