/*
Package css provides value types and parsers for the CSS properties this
engine understands.

CSS properties are plentyful and some of them are complicated. This package
tries to shield clients from the cumbersome handling of CSS properties,
resulting from (1) the textual nature of CSS properties and (2) the
complicated semantics of computing style attributes for a given node.

The package deliberately stays below the cascade: it knows values
(dimensions, colors, display modes, box sides) and declaration syntax, but
nothing about inheritance or selector matching. Resolving values against an
element tree is the business of packages style and dom.

Declaration and stylesheet syntax is handled by the douceur parser; its
types are converted at the package boundary and never leak to clients.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'weft.css'.
func tracer() tracing.Trace {
	return tracing.Select("weft.css")
}
