/*
Package stylesheets keeps track of the stylesheets of a document and of
the work a change to them requires.

Overview

Stylesheets may be added to a document, removed from it, or re-ordered,
at any time. Every such change may invalidate the data the styling engine
derived from the sheets (the cascade data, ordering rules by origin and
position, and the invalidation data, which is order-independent). Rebuilding
this data is expensive, and most changes only require a fraction of it to be
re-done: the typical case, a page appending a stylesheet, leaves everything
derived from the existing sheets intact.

For every cascade origin a SheetCollection records the sheets in document
order, together with a validity level for the derived data (type
DataValidity) and a dirty flag. Every sheet remembers if it has ever been
handed out for a rebuild ("committed"). Removing a sheet which never got
committed is free, which is important for sites that rapidly add and remove
stylesheets.

Clients mutate a DocumentSet (or an AuthorSet for a shadow tree) and, once
per restyle, call Flush. The returned Flusher hands out, per dirty origin,
exactly the sheets that need work and the kind of rebuild each one needs:

    flusher := set.Flush(root, snapshots)
    for origin := range cssom.AllOrigins().All() {
        if !flusher.OriginDirty(origin) {
            continue
        }
        for sheet, kind := range flusher.OriginSheets(origin).All() {
            … // rebuild data for sheet
        }
    }
    flusher.Finish()

Concurrency

Sets are not safe for concurrent use. Clients have to serialize access,
as the styling pipeline of a document does anyway. While a Flusher is alive
(i.e., until Finish is called), the set it came from must not be mutated;
doing so anyway will panic.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stylesheets

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.style.sheets'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.style.sheets")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("stylesheets: "+msg, msgargs...)
		panic(msg)
	}
}
