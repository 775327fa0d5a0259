/*
Package invalidation collects DOM invalidations caused by adding or
removing stylesheets.

Overview

Whenever a stylesheet enters or leaves a document, every element matched
by one of its rules may change its computed style. Re-styling the whole
document for every sheet change is expensive, so we try to narrow down the
set of elements in question. For every selector of a sheet we look at its
rightmost compound selector (the part which has to match the element
itself) and remember an ID, a class name or an element name from it.
Later, when the document is flushed, only elements carrying one of these
names are marked for restyling.

Selectors giving us no such hint (think of "*" or "[lang]") force us to
invalidate the whole document. Some at-rules, like @font-face or
@keyframes, have effects we cannot narrow down either.

Elements may have changed their ID or classes since the last restyle.
Clients therefore may pass snapshots of the previous state of elements,
which are matched against the hints as well.

Selectors are validated with package cascadia; rules with selectors
cascadia rejects are dropped, as a browser would drop them. Hints are then
read from the token stream of the gorilla/css scanner, with CSS escapes
resolved: selector .md\:flex matches class "md:flex".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package invalidation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.style.invalidation'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.style.invalidation")
}
