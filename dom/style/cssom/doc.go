/*
Package cssom provides the object model for CSS stylesheets as far as
the styling engine needs to know about them.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Stylesheets are grouped into three cascade origins: user-agent sheets
(the defaults of the engine), user sheets and author sheets (the ones
coming with a document). Origins are independent of each other when it
comes to keeping track of changes, which is why most of the bookkeeping
in package stylesheets is done per origin, using type PerOrigin.

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet, StyleSheetInDocument and Rule. Concrete implementations may
be found in sub-packages (see package douceuradapter).

Contents of a stylesheet are protected by a shared lock (package
sharedlock). Clients will have to present a read guard to get at the
contents of a sheet, including its origin.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.frame.tree'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.frame.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("cssom: "+msg, msgargs...)
		panic(msg)
	}
}
