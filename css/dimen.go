package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	. "github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent Percent
	factor  float64 // scale factor for relative dimensions, 1.0 ≙ 100%
	flags   uint32
}

/*
type DimenT
	= Unset
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
	| FontRel factor
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value,
// given in percent points (80 ≙ "80%").
func Percentage(pcnt float64) DimenT {
	return DimenT{
		percent: FromInt(int(math.Round(pcnt))),
		factor:  pcnt / 100,
		flags:   dimenPercent,
	}
}

// Em creates a font-relative CSS dimension ("1.2em").
func Em(factor float64) DimenT {
	return DimenT{factor: factor, flags: dimenEM}
}

// Unset is true for a dimension that carries no value at all (the zero
// DimenT). An unset dimension falls through in style merging.
func (d DimenT) Unset() bool {
	return d.flags == dimenNone
}

// IsAbsolute is true for dimensions with a fixed device-unit value.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsRelative is true for font-relative and %-relative dimensions.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask > 0
}

// IsPercent is true for %-relative dimensions.
func (d DimenT) IsPercent() bool {
	return d.flags&relativeMask == dimenPercent
}

// DU returns the fixed value of an absolute dimension, 0 otherwise.
func (d DimenT) DU() dimen.DU {
	if d.IsAbsolute() {
		return d.d
	}
	return 0
}

// Percent returns the value of a %-relative dimension in percent points,
// 0% otherwise.
func (d DimenT) Percent() Percent {
	if d.IsPercent() {
		return d.percent
	}
	return FromInt(0)
}

// RelativeFactor returns the scale factor of a relative dimension
// (1.0 ≙ 100% ≙ 1em), 0 otherwise.
func (d DimenT) RelativeFactor() float64 {
	if d.IsRelative() {
		return d.factor
	}
	return 0
}

// Scale multiplies an absolute dimension by factor f, rounding to device
// units. Non-absolute dimensions are returned unchanged.
func (d DimenT) Scale(f float64) DimenT {
	if !d.IsAbsolute() {
		return d
	}
	return JustDimen(dimen.DU(math.Round(float64(d.d) * f)))
}

func (d DimenT) String() string {
	switch {
	case d.flags == dimenNone:
		return "unset"
	case d.flags&kindMask == dimenAuto:
		return "auto"
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	case d.flags&relativeMask == dimenEM:
		return fmt.Sprintf("%gem", d.factor)
	case d.flags&relativeMask == dimenPercent:
		return fmt.Sprintf("%s", d.percent)
	}
	return fmt.Sprintf("%s", d.d)
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	if (m.dimen.flags&kindMask) == (d.flags&kindMask) &&
		(m.dimen.flags&relativeMask) == (d.flags&relativeMask) {
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *Percent) *Matcher {
	if m.dimen.IsPercent() {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

func (m *Matcher) Relative(f *float64) *Matcher {
	if m.dimen.IsRelative() {
		if f != nil {
			*f = m.dimen.factor
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto     T
	Inherit  T
	Initial  T
	Just     T
	Relative T
	Default  T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags&kindMask == dimenAuto:
		return patterns.Auto
	case m.dimen.flags&kindMask == dimenAbsolute:
		return patterns.Just
	case m.dimen.flags&kindMask == dimenInitial:
		return patterns.Initial
	case m.dimen.flags&kindMask == dimenInherit:
		return patterns.Inherit
	case m.dimen.flags&relativeMask > 0:
		return patterns.Relative
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}

// --- Parsing ---------------------------------------------------------------

// cssUnits maps unit suffixes onto conversion functions. Longer suffixes
// come first so that "rem" is not mistaken for "em".
var cssUnits = []struct {
	suffix string
	conv   func(f float64) DimenT
}{
	{"%", func(f float64) DimenT { return Percentage(f) }},
	{"rem", Em}, // resolved against the inherited size, like em
	{"em", Em},
	{"pt", func(f float64) DimenT { return JustDimen(points(f)) }},
	{"px", func(f float64) DimenT { return JustDimen(points(f * 0.75)) }},
	{"pc", func(f float64) DimenT { return JustDimen(points(f * 12)) }},
	{"in", func(f float64) DimenT { return JustDimen(points(f * 72)) }},
	{"mm", func(f float64) DimenT { return JustDimen(points(f * 72.0 / 25.4)) }},
	{"cm", func(f float64) DimenT { return JustDimen(points(f * 72.0 / 2.54)) }},
}

// points converts a length in (fractional) points into device units.
func points(pts float64) dimen.DU {
	return dimen.DU(math.Round(pts * float64(dimen.PT)))
}

// ParseDimen parses a CSS dimension literal: the keywords auto, inherit and
// initial, or a number followed by one of the units %, em, rem, pt, px, pc,
// in, mm, cm. A unit-less 0 is accepted, any other bare number is an error.
func ParseDimen(s string) (DimenT, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return DimenT{}, fmt.Errorf("empty dimension")
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	}
	for _, unit := range cssUnits {
		if !strings.HasSuffix(s, unit.suffix) {
			continue
		}
		num := strings.TrimSpace(strings.TrimSuffix(s, unit.suffix))
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return DimenT{}, fmt.Errorf("cannot parse dimension %q: %v", s, err)
		}
		return unit.conv(f), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == 0 {
		return JustDimen(0), nil
	}
	return DimenT{}, fmt.Errorf("dimension %q lacks a unit", s)
}
