/*
Package render defines the renderable primitives weft produces: a tree of
nodes for blocks, list items, table parts, text runs, breaks, dividers and
images, each carrying its resolved style snapshot.

Inline markup does not survive into the render tree. Elements like <b> or
<a> only contribute styling; their textual content ends up as text run
nodes under the nearest enclosing block, with the resolved styling (and,
for anchors, the link target) attached to the run. Renderers therefore
never have to resolve styling themselves: they walk blocks, lay out the
text runs and draw.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'weft.render'.
func tracer() tracing.Trace {
	return tracing.Select("weft.render")
}
