/*
Package dom walks parsed HTML markup and produces a render tree, driving
the style engine along the way.

Status

Early draft—API may change frequently. Please stay patient.

Overview

The walk maintains one style builder per element (package style). Entering
an element enqueues the styling the element contributes: user agent
defaults for the tag, rules from embedded stylesheets, presentational
attributes and finally the style attribute, in that order, so that later
sources win. Block-level elements emit render nodes; inline elements only
contribute styling, their textual content surfaces as text runs under the
nearest enclosing block.

The walk is iterative with an explicit stack. Styling is resolved strictly
top-down, which keeps the builders' single-slot caches warm and makes
resolution cost linear in the number of contributing elements.

Selector matching is out of scope: rules from embedded stylesheets apply by
plain element name only. Anything fancier is skipped with a trace.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'weft.dom'.
func tracer() tracing.Trace {
	return tracing.Select("weft.dom")
}
