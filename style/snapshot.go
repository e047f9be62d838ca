package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/weft/css"
)

// Snapshot is the immutable resolved styling state at one position of the
// element tree. A snapshot links to the snapshot of its parent element; the
// parent is nil only at the absolute root of a chain.
//
// Snapshots are never mutated after construction. All modifying operations
// return copies, which lets clients compare styling states by pointer
// identity, and lets builders share unchanged snapshots between elements.
type Snapshot struct {
	parent *Snapshot
	values ValueSet
	text   TextStyle
}

// Root creates the snapshot at the root of an inheritance chain, merging an
// override onto the base text style found in values (kind KindText).
//
// This is the single place where a ScaleFactor value is applied: if values
// carries a scale ≠ 1.0 and the merged text style has an absolute font
// size, the size is multiplied by the factor once. A scale of exactly 1.0
// leaves the size untouched.
func Root(values ValueSet, override TextStyle) *Snapshot {
	base, _ := Get[TextStyle](values)
	text := base.Merge(override)
	if scale, ok := Get[ScaleFactor](values); ok && scale != 1.0 {
		if text.Size.IsAbsolute() {
			text.Size = text.Size.Scale(float64(scale))
		}
	}
	return &Snapshot{values: values, text: text}
}

// Parent returns the snapshot of the parent element, nil at the root.
func (s *Snapshot) Parent() *Snapshot {
	if s == nil {
		return nil
	}
	return s.parent
}

// Extend returns a copy of s with s itself as the parent. This is the seed
// snapshot builders apply contributions to: styling starts out as "exactly
// like the parent" and is then modified.
func (s *Snapshot) Extend() *Snapshot {
	child := *s
	child.parent = s
	return &child
}

// WithParent returns a copy of s with a rewired parent link.
func (s *Snapshot) WithParent(p *Snapshot) *Snapshot {
	copied := *s
	copied.parent = p
	return &copied
}

// WithValue returns a copy of s where v replaces the value of v's kind in
// the snapshot's value set.
func (s *Snapshot) WithValue(v Value) *Snapshot {
	copied := *s
	copied.values = s.values.With(v)
	return &copied
}

// MergeText returns a copy of s with over merged onto the derived text
// style record. Set fields of over win, unset fields inherit.
func (s *Snapshot) MergeText(over TextStyle) *Snapshot {
	copied := *s
	copied.text = s.text.Merge(over)
	return &copied
}

// ValueFrom retrieves the typed value of V's kind from a snapshot's value
// set. Absence is a normal outcome.
func ValueFrom[V Value](s *Snapshot) (V, bool) {
	if s == nil {
		var zero V
		return zero, false
	}
	return Get[V](s.values)
}

// --- Derived accessors -------------------------------------------------

// TextStyle returns the derived text style record. A Leading value present
// in the snapshot's value set is overlaid onto the record at this point;
// it is never baked into the stored record.
func (s *Snapshot) TextStyle() TextStyle {
	if s == nil {
		return TextStyle{}
	}
	text := s.text
	if leading, ok := Get[Leading](s.values); ok {
		text.Leading = float64(leading)
	}
	return text
}

// FontSize returns the resolved font size. May be unset.
func (s *Snapshot) FontSize() css.DimenT {
	if s == nil {
		return css.DimenT{}
	}
	return s.text.Size
}

// Color returns the resolved text color, nil if no ancestor set one (the
// renderer's default ink then applies).
func (s *Snapshot) Color() color.Color {
	if s == nil {
		return nil
	}
	return s.text.Color
}

// Decoration returns the resolved text decoration lines.
func (s *Snapshot) Decoration() Decoration {
	if s == nil {
		return 0
	}
	return s.text.Decoration
}

// Direction returns the text direction, defaulting to left-to-right.
func (s *Snapshot) Direction() Direction {
	if d, ok := ValueFrom[Direction](s); ok {
		return d
	}
	return LTR
}

// ScaleFactor returns the scale factor carried by the snapshot, default 1.
// Scaling has already been applied by Root; the value is retained for
// clients sizing their own material (e.g. images).
func (s *Snapshot) ScaleFactor() float64 {
	if f, ok := ValueFrom[ScaleFactor](s); ok {
		return float64(f)
	}
	return 1
}

// WhiteSpace returns the whitespace policy, defaulting to collapsing.
func (s *Snapshot) WhiteSpace() WhiteSpace {
	if ws, ok := ValueFrom[WhiteSpace](s); ok {
		return ws
	}
	return WhiteSpaceNormal
}

// Align returns the text alignment, defaulting to left.
func (s *Snapshot) Align() TextAlign {
	if a, ok := ValueFrom[TextAlign](s); ok {
		return a
	}
	return AlignLeft
}

func (s *Snapshot) String() string {
	if s == nil {
		return "Snapshot(nil)"
	}
	return fmt.Sprintf("Snapshot%s", s.TextStyle())
}
