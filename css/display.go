package css

import (
	"fmt"
	"strings"
)

// DisplayMode is a type for the CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = 0      // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	ListItemMode    DisplayMode = 0x0008 // CSS list-item display
	TableMode       DisplayMode = 0x0010 // CSS table display
	TableRowMode    DisplayMode = 0x0020 // CSS table-row display
	TableCellMode   DisplayMode = 0x0040 // CSS table-cell display
	outerMask       DisplayMode = 0x00ff
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
	innerMask       DisplayMode = 0xff00
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ListItemMode, TableMode, TableRowMode,
	TableCellMode, InnerBlockMode, InnerInlineMode,
}

var displayModeNames = map[DisplayMode]string{
	NoMode:          "none-mode",
	DisplayNone:     "none",
	BlockMode:       "block",
	InlineMode:      "inline",
	ListItemMode:    "list-item",
	TableMode:       "table",
	TableRowMode:    "table-row",
	TableCellMode:   "table-cell",
	InnerBlockMode:  "inner-block",
	InnerInlineMode: "inner-inline",
}

// Outer returns the outer display mode.
func (disp DisplayMode) Outer() DisplayMode {
	return disp & outerMask
}

// Inner returns the inner display mode.
func (disp DisplayMode) Inner() DisplayMode {
	return disp & innerMask
}

// IsBlockLevel returns true for elements formatted visually as blocks:
// display values block, list-item and table.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp.Contains(BlockMode) || disp.Contains(ListItemMode) ||
		disp.Contains(TableMode)
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

func (disp DisplayMode) String() string {
	if name, ok := displayModeNames[disp]; ok {
		return name
	}
	var b strings.Builder
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(displayModeNames[m])
		}
	}
	return b.String()
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	switch {
	case disp.Contains(BlockMode) || disp.Contains(InnerBlockMode):
		return "▩"
	case disp.Contains(InlineMode) || disp.Contains(InnerInlineMode):
		return "►"
	case disp.Contains(ListItemMode):
		return "▣"
	case disp.Contains(TableMode) || disp.Contains(TableRowMode) || disp.Contains(TableCellMode):
		return "▥"
	case disp == NoMode:
		return "–"
	}
	return "?"
}

// ParseDisplay returns mode flags from a display property string
// (outer and inner).
func ParseDisplay(display string) (DisplayMode, error) {
	if display == "" {
		return NoMode, nil
	}
	switch strings.ToLower(strings.TrimSpace(display)) {
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode | InnerBlockMode, nil
	case "inline":
		return InlineMode | InnerInlineMode, nil
	case "list-item":
		return ListItemMode | BlockMode, nil
	case "inline-block":
		return InlineMode | InnerBlockMode, nil
	case "table":
		return BlockMode | TableMode, nil
	case "table-row":
		return BlockMode | TableRowMode, nil
	case "table-cell":
		return BlockMode | TableCellMode, nil
	}
	return BlockMode, fmt.Errorf("unknown display mode: %s", display)
}
