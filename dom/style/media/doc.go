/*
Package media evaluates CSS media query lists against an output device.

Status

Only the parts of Media Queries Level 4 relevant for typesetting are
supported: media types "all", "screen" and "print", the prefixes "not"
and "only", and the range features min-width and max-width with absolute
lengths (px and pt). Features we do not know about evaluate to false, as
required by the standard for unknown features.
Query lists are tokenized with the gorilla/css scanner; malformed queries
do not match.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package media

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.style.media'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.style.media")
}
