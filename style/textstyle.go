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
	"strings"

	"github.com/npillmayer/weft/css"
)

// FontWeight is the numeric CSS font weight, 100…900. The zero value means
// unset; it falls through in merging.
type FontWeight uint16

const (
	WeightNormal FontWeight = 400
	WeightBold   FontWeight = 700
)

func (w FontWeight) String() string {
	switch w {
	case 0:
		return "-"
	case WeightNormal:
		return "normal"
	case WeightBold:
		return "bold"
	}
	return fmt.Sprintf("w%d", uint16(w))
}

// FontSlant is the posture of a font face. The zero value means unset;
// SlantNormal is the explicit upright posture.
type FontSlant uint8

const (
	SlantUnset FontSlant = iota
	SlantNormal
	SlantItalic
	SlantOblique
)

var slantNames = [...]string{"-", "normal", "italic", "oblique"}

func (sl FontSlant) String() string {
	if int(sl) >= len(slantNames) {
		return "-"
	}
	return slantNames[sl]
}

// Decoration is a bitmask of text decoration lines. The zero value means
// unset. DecorationNone is an explicit "no lines" and overrides inherited
// decorations when merged.
type Decoration uint8

const (
	DecorationNone Decoration = 1 << iota
	Underline
	Overline
	LineThrough
)

// Has checks whether decoration line d is set.
func (deco Decoration) Has(d Decoration) bool {
	return deco&d > 0
}

func (deco Decoration) String() string {
	if deco == 0 {
		return "-"
	}
	if deco.Has(DecorationNone) {
		return "none"
	}
	var lines []string
	if deco.Has(Underline) {
		lines = append(lines, "underline")
	}
	if deco.Has(Overline) {
		lines = append(lines, "overline")
	}
	if deco.Has(LineThrough) {
		lines = append(lines, "line-through")
	}
	return strings.Join(lines, " ")
}

// DecorationStyle is the stroke style for decoration lines. The zero value
// means unset.
type DecorationStyle uint8

const (
	DecoStyleUnset DecorationStyle = iota
	DecoSolid
	DecoDouble
	DecoDotted
	DecoDashed
	DecoWavy
)

var decoStyleNames = [...]string{"-", "solid", "double", "dotted", "dashed", "wavy"}

func (ds DecorationStyle) String() string {
	if int(ds) >= len(decoStyleNames) {
		return "-"
	}
	return decoStyleNames[ds]
}

// TextStyle is the concrete record of resolved text styling. Fields have
// CSS-ish unset semantics: a nil color, nil Families, zero-value Size,
// weight 0, slant/decoration/decoration-style zero and leading 0 all mean
// "not set here" and fall through when merging.
//
// Leading is a multiplier of the font size. It is populated on snapshots'
// derived records at read time only (Snapshot.TextStyle).
type TextStyle struct {
	Color      color.Color
	Background color.Color
	Families   []string
	Size       css.DimenT
	Weight     FontWeight
	Slant      FontSlant
	Decoration Decoration
	DecoStyle  DecorationStyle
	Leading    float64
}

// StyleKind returns KindText.
func (TextStyle) StyleKind() Kind { return KindText }

// Merge overlays another text style onto this one: set fields of over win,
// unset fields of over keep the receiver's value. Neither operand is
// mutated.
func (ts TextStyle) Merge(over TextStyle) TextStyle {
	if over.Color != nil {
		ts.Color = over.Color
	}
	if over.Background != nil {
		ts.Background = over.Background
	}
	if over.Families != nil {
		ts.Families = over.Families
	}
	if !over.Size.Unset() {
		ts.Size = over.Size
	}
	if over.Weight != 0 {
		ts.Weight = over.Weight
	}
	if over.Slant != SlantUnset {
		ts.Slant = over.Slant
	}
	if over.Decoration != 0 {
		ts.Decoration = over.Decoration
	}
	if over.DecoStyle != DecoStyleUnset {
		ts.DecoStyle = over.DecoStyle
	}
	if over.Leading != 0 {
		ts.Leading = over.Leading
	}
	return ts
}

func (ts TextStyle) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(ts.Size.String())
	fmt.Fprintf(&b, " %s %s %s", ts.Weight, ts.Slant, ts.Decoration)
	fmt.Fprintf(&b, " %s", ColorString(ts.Color))
	if ts.Background != nil {
		fmt.Fprintf(&b, " bg=%s", ColorString(ts.Background))
	}
	if ts.Families != nil {
		fmt.Fprintf(&b, " %q", strings.Join(ts.Families, ","))
	}
	if ts.Leading != 0 {
		fmt.Fprintf(&b, " lh=%g", ts.Leading)
	}
	b.WriteString("]")
	return b.String()
}

// ColorString formats a color as a CSS hex literal, "-" for nil.
func ColorString(c color.Color) string {
	if c == nil {
		return "-"
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "transparent"
	}
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
