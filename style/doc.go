/*
Package style implements the style resolution engine of weft: an
inheritance chain of immutable style snapshots, fed by builders which
collect deferred styling contributions while the markup is walked.

Status

Early draft—API may change frequently. Please stay patient.

Overview

Styling a document tree involves resolving, for every element, the set of
style attributes that apply to it, most of which are inherited from
ancestor elements. The engine deals with three concepts for this.

ValueSet is an unordered bag of typed style values with at most one live
entry per kind. Sets are purely functional: With returns a copy and never
touches the receiver.

Snapshot is the immutable resolved styling state at one position of the
element tree. Snapshots link to their parent snapshot and carry a ValueSet
plus a derived concrete text style record.

Builder is a mutable-until-built accumulator of contributions, one per
element. Builders form a chain mirroring the element tree and resolve
lazily: Build first resolves the parent chain, then applies the queued
contributions in order. A builder without contributions is a pass-through
and hands out its parent's snapshot unchanged, which makes uncontributing
chains free and keeps snapshot identity comparable by pointer.

Clients will not usually interact with builders directly. The dom package
drives them during the markup walk and attaches the resulting snapshots to
renderable nodes.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'weft.style'.
func tracer() tracing.Trace {
	return tracing.Select("weft.style")
}
