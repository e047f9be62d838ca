package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Side is either Top, Right, Bottom or Left.
type Side uint8

const (
	Top Side = iota
	Right
	Bottom
	Left
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

func (s Side) String() string {
	if s > Left {
		return "?"
	}
	return sideNames[s]
}

// BoxSides carries one dimension per side of a box, ordered by Side.
// It is used for box properties which are not inherited, like margins
// and padding.
type BoxSides struct {
	sides [4]DimenT
}

// Side returns the dimension for one side of the box.
func (b BoxSides) Side(s Side) DimenT {
	if s > Left {
		return DimenT{}
	}
	return b.sides[s]
}

// SetSide sets the dimension for one side of the box. Invalid sides are
// silently dropped.
func (b *BoxSides) SetSide(s Side, d DimenT) {
	if s <= Left {
		b.sides[s] = d
	}
}

// Unset is true if no side of the box carries a value.
func (b BoxSides) Unset() bool {
	for _, d := range b.sides {
		if !d.Unset() {
			return false
		}
	}
	return true
}

func (b BoxSides) String() string {
	if b.Unset() {
		return "[unset]"
	}
	return fmt.Sprintf("[%s %s %s %s]", b.sides[Top], b.sides[Right],
		b.sides[Bottom], b.sides[Left])
}

// ExpandShorthand expands the 1- to 4-value CSS shorthand notation for box
// properties into all four sides:
//
//	1 value:  all four sides
//	2 values: top/bottom, right/left
//	3 values: top, right/left, bottom
//	4 values: top, right, bottom, left
//
// Surplus values are dropped, an empty slice yields an unset box.
func ExpandShorthand(values []DimenT) BoxSides {
	var b BoxSides
	switch len(values) {
	case 0:
	case 1:
		b.sides = [4]DimenT{values[0], values[0], values[0], values[0]}
	case 2:
		b.sides = [4]DimenT{values[0], values[1], values[0], values[1]}
	case 3:
		b.sides = [4]DimenT{values[0], values[1], values[2], values[1]}
	default:
		b.sides = [4]DimenT{values[0], values[1], values[2], values[3]}
	}
	return b
}

// ParseShorthand parses a whitespace-separated box shorthand value
// ("10pt", "0 auto", "1em 2em 3em 4em") into a BoxSides.
func ParseShorthand(value string) (BoxSides, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return BoxSides{}, fmt.Errorf("empty box value")
	}
	dimens := make([]DimenT, 0, len(fields))
	for _, f := range fields {
		d, err := ParseDimen(f)
		if err != nil {
			return BoxSides{}, err
		}
		dimens = append(dimens, d)
	}
	return ExpandShorthand(dimens), nil
}
