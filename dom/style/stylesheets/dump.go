package stylesheets

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the set as a tree, for debugging: one branch per origin,
// carrying the origin's dirty flag and validity, with the sheets as leafs.
// Sheets flushed at least once are marked with a '✓'.
func (set *DocumentSet[S]) Dump() string {
	printer := tp.NewWithRoot(set.name)
	for origin, c := range set.collections.All() {
		meta := fmt.Sprintf("dirty=%v %s", c.dirty, c.validity)
		branch := printer.AddMetaBranch(meta, origin.String())
		dumpEntries(branch, c)
	}
	return printer.String()
}

// Dump renders the set as a tree, for debugging.
func (set *AuthorSet[S]) Dump() string {
	meta := fmt.Sprintf("dirty=%v %s", set.collection.dirty, set.collection.validity)
	printer := tp.New()
	dumpEntries(printer.AddMetaBranch(meta, set.name), &set.collection)
	return printer.String()
}

func dumpEntries[S Sheet[S]](branch tp.Tree, c *SheetCollection[S]) {
	for _, e := range c.entries {
		if e.committed {
			branch.AddMetaNode("✓", e.sheet)
		} else {
			branch.AddNode(e.sheet)
		}
	}
}
