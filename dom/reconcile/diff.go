package reconcile

import (
	"github.com/npillmayer/restyle/dom/style"
)

// Patch merges the current style on top of a deletion seed. Properties of
// both keep their current value, properties only in the seed remain as
// reset instructions. The result is a new map; it is exactly what a Sink
// has to apply, not the current style alone.
//
// For a first mount the seed is empty and the patch equals the current style.
func Patch(seed, current style.Map) style.Map {
	return style.Merge(seed, current)
}

// resets counts the properties of a patch which are reset instructions,
// i.e. present in the seed but not in the current style.
func resets(seed, current style.Map) int {
	n := 0
	for k := range seed {
		if _, ok := current[k]; !ok {
			n++
		}
	}
	return n
}

// staleBase returns reset instructions for properties of an outdated base
// style which the new base style does not define any more.
func staleBase(oldBase, newBase style.Map) style.Map {
	stale := style.Map{}
	for k := range oldBase {
		if _, ok := newBase[k]; !ok {
			stale[k] = style.Clear
		}
	}
	return stale
}
