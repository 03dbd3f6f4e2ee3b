// File: pkg/bundle/order.go
package bundle

import (
	"path/filepath"
	"sort"
)

// OrderFiles produces the deterministic write order for the collected list.
// With byName set, files sort ascending by base filename; otherwise they
// sort ascending by extension, with collector encounter order preserved
// among files sharing an extension. The input slice is not modified.
func OrderFiles(files []string, byName bool) []string {
	ordered := make([]string, len(files))
	copy(ordered, files)

	if byName {
		sort.SliceStable(ordered, func(i, j int) bool {
			return filepath.Base(ordered[i]) < filepath.Base(ordered[j])
		})
		return ordered
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return filepath.Ext(ordered[i]) < filepath.Ext(ordered[j])
	})
	return ordered
}
