package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Kind enumerates the style concerns a ValueSet can hold. Every Value
// answers to exactly one kind, and a set keeps at most one live value per
// kind.
type Kind uint16

const (
	KindNone       Kind = iota
	KindText            // base text style record
	KindScale           // global scale factor for absolute font sizes
	KindDirection       // text direction
	KindWhiteSpace      // whitespace collapsing policy
	KindLeading         // line height as a multiplier of font size
	KindAlign           // text alignment

	// KindUser is the first kind free for client extensions. Clients
	// allocate their kinds as KindUser, KindUser+1, … and carry them in a
	// ValueSet through Convert without the engine interpreting them.
	KindUser Kind = 100
)

var kindNames = map[Kind]string{
	KindNone:       "none",
	KindText:       "text",
	KindScale:      "scale",
	KindDirection:  "direction",
	KindWhiteSpace: "white-space",
	KindLeading:    "leading",
	KindAlign:      "align",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k >= KindUser {
		return fmt.Sprintf("user(%d)", uint16(k-KindUser))
	}
	return fmt.Sprintf("kind(%d)", uint16(k))
}

// Value is a typed style value, discriminated by its kind. Implementations
// must answer StyleKind on their zero value, as lookup instantiates one to
// learn the kind to search for.
type Value interface {
	StyleKind() Kind
}

// ValueSet is an unordered bag of typed style values, holding at most one
// live value per kind. The zero ValueSet is empty and ready to use. Sets
// are functional data structures: mutating operations return copies.
type ValueSet struct {
	values []Value
}

// NewValueSet collects values into a set. A later argument replaces an
// earlier one of the same kind.
func NewValueSet(vs ...Value) ValueSet {
	var set ValueSet
	for _, v := range vs {
		set = set.With(v)
	}
	return set
}

// With returns a copy of the set where v replaces any previous value of
// v's kind. The receiver is left untouched. With(nil) is a no-op.
func (set ValueSet) With(v Value) ValueSet {
	if v == nil {
		return set
	}
	values := make([]Value, 0, len(set.values)+1)
	for _, w := range set.values {
		if w.StyleKind() != v.StyleKind() {
			values = append(values, w)
		}
	}
	return ValueSet{values: append(values, v)}
}

// Len returns the number of values in the set.
func (set ValueSet) Len() int {
	return len(set.values)
}

// Values returns the set's entries as a fresh slice.
func (set ValueSet) Values() []Value {
	if len(set.values) == 0 {
		return nil
	}
	values := make([]Value, len(set.values))
	copy(values, set.values)
	return values
}

func (set ValueSet) String() string {
	return fmt.Sprintf("ValueSet%v", set.values)
}

// Get retrieves the value of V's kind from a set. The first value of
// matching kind wins. Absence is a normal outcome, reported by ok=false
// together with V's zero value.
func Get[V Value](set ValueSet) (V, bool) {
	var zero V
	kind := zero.StyleKind()
	for _, v := range set.values {
		if v.StyleKind() == kind {
			if value, ok := v.(V); ok {
				return value, true
			}
			tracer().Errorf("style value of kind %s is a %T, not a %T", kind, v, zero)
			return zero, false
		}
	}
	return zero, false
}

// --- Typed values ----------------------------------------------------------

// ScaleFactor scales absolute font sizes, applied once when a root snapshot
// is created. 1.0 is neutral.
type ScaleFactor float64

// StyleKind returns KindScale.
func (ScaleFactor) StyleKind() Kind { return KindScale }

// Direction is the inline progression direction of text.
type Direction uint8

const (
	LTR Direction = iota // left to right
	RTL                  // right to left
)

// StyleKind returns KindDirection.
func (Direction) StyleKind() Kind { return KindDirection }

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// WhiteSpace is the whitespace collapsing policy for text runs.
type WhiteSpace uint8

const (
	WhiteSpaceNormal WhiteSpace = iota // collapse runs of whitespace
	WhiteSpacePre                      // preserve whitespace and newlines
)

// StyleKind returns KindWhiteSpace.
func (WhiteSpace) StyleKind() Kind { return KindWhiteSpace }

func (ws WhiteSpace) String() string {
	if ws == WhiteSpacePre {
		return "pre"
	}
	return "normal"
}

// Leading is the line height, expressed as a multiplier of the font size.
// It is overlaid onto the text style record at read time (see
// Snapshot.TextStyle), never baked in eagerly.
type Leading float64

// StyleKind returns KindLeading.
func (Leading) StyleKind() Kind { return KindLeading }

// TextAlign is the horizontal alignment of text within its block.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignRight
	AlignCenter
	AlignJustify
)

// StyleKind returns KindAlign.
func (TextAlign) StyleKind() Kind { return KindAlign }

var alignNames = [...]string{"left", "right", "center", "justify"}

func (a TextAlign) String() string {
	if int(a) >= len(alignNames) {
		return "left"
	}
	return alignNames[a]
}
