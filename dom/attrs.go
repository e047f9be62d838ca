package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"

	"github.com/npillmayer/weft/css"
	"github.com/npillmayer/weft/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// declarationContribution maps a CSS declaration onto a style contribution.
// ok is false for declarations which do not translate into one: display and
// the box properties are handled by the tree walk itself, unsupported or
// malformed declarations are traced and skipped.
func declarationContribution(d css.Declaration) (style.Contribution, bool) {
	value := d.Value
	switch d.Property {
	case "color":
		c, err := css.ParseColor(value)
		if err != nil {
			tracer().Errorf("declaration color: %v", err)
			return style.Contribution{}, false
		}
		return mergeText(style.TextStyle{Color: c}), true
	case "background-color", "background":
		c, err := css.ParseColor(value)
		if err != nil {
			// the background shorthand may carry non-color parts
			tracer().Debugf("cannot read %q as a background color", value)
			return style.Contribution{}, false
		}
		return mergeText(style.TextStyle{Background: c}), true
	case "font-size":
		return fontSizeContribution(value)
	case "font-family":
		if families := parseFamilies(value); len(families) > 0 {
			return mergeText(style.TextStyle{Families: families}), true
		}
		return style.Contribution{}, false
	case "font-weight":
		return fontWeightContribution(value)
	case "font-style":
		switch strings.ToLower(value) {
		case "normal":
			return mergeText(style.TextStyle{Slant: style.SlantNormal}), true
		case "italic":
			return mergeText(style.TextStyle{Slant: style.SlantItalic}), true
		case "oblique":
			return mergeText(style.TextStyle{Slant: style.SlantOblique}), true
		}
		tracer().Errorf("unknown font-style: %q", value)
		return style.Contribution{}, false
	case "text-decoration", "text-decoration-line":
		return decorationContribution(value)
	case "text-decoration-style":
		return decorationStyleContribution(value)
	case "line-height":
		return lineHeightContribution(value)
	case "white-space":
		switch strings.ToLower(value) {
		case "normal", "nowrap":
			return setValue(style.WhiteSpaceNormal), true
		case "pre", "pre-wrap", "pre-line":
			return setValue(style.WhiteSpacePre), true
		}
		tracer().Errorf("unknown white-space: %q", value)
		return style.Contribution{}, false
	case "direction":
		switch strings.ToLower(value) {
		case "ltr":
			return setValue(style.LTR), true
		case "rtl":
			return setValue(style.RTL), true
		}
		tracer().Errorf("unknown direction: %q", value)
		return style.Contribution{}, false
	case "text-align":
		return alignContribution(strings.ToLower(value))
	}
	tracer().Debugf("declaration %q not supported", d.Property)
	return style.Contribution{}, false
}

// fontSizeKeywords are the CSS absolute size keywords with their factors
// relative to the document base size (medium).
var fontSizeKeywords = map[string]float64{
	"xx-small": 3.0 / 5,
	"x-small":  3.0 / 4,
	"small":    8.0 / 9,
	"medium":   1,
	"large":    6.0 / 5,
	"x-large":  3.0 / 2,
	"xx-large": 2,
}

func fontSizeContribution(value string) (style.Contribution, bool) {
	keyword := strings.ToLower(value)
	if factor, ok := fontSizeKeywords[keyword]; ok {
		return style.Contribute(func(snap *style.Snapshot, f float64) *style.Snapshot {
			return snap.MergeText(style.TextStyle{Size: keywordSize(snap, f)})
		}, factor), true
	}
	switch keyword {
	case "larger":
		return scaleFont(1.2), true
	case "smaller":
		return scaleFont(1 / 1.2), true
	}
	d, err := css.ParseDimen(value)
	if err != nil {
		tracer().Errorf("declaration font-size: %v", err)
		return style.Contribution{}, false
	}
	return style.Contribute(func(snap *style.Snapshot, dim css.DimenT) *style.Snapshot {
		return snap.MergeText(style.TextStyle{Size: applySize(snap, dim)})
	}, d), true
}

// applySize resolves relative font size dimensions (em, %) against the size
// inherited at snap. Sizes staying unresolvable are kept font-relative for
// the layout stage.
func applySize(snap *style.Snapshot, d css.DimenT) css.DimenT {
	if !d.IsRelative() {
		return d
	}
	inherited := snap.FontSize()
	if inherited.IsAbsolute() {
		return inherited.Scale(d.RelativeFactor())
	}
	return css.Em(d.RelativeFactor())
}

// keywordSize resolves an absolute size keyword against the document base
// size, i.e. the topmost font size of the snapshot chain.
func keywordSize(snap *style.Snapshot, factor float64) css.DimenT {
	base := rootSize(snap)
	if base.IsAbsolute() {
		return base.Scale(factor)
	}
	return css.Em(factor)
}

// rootSize returns the topmost set font size of a snapshot chain, unset if
// no snapshot carries one.
func rootSize(snap *style.Snapshot) css.DimenT {
	var size css.DimenT
	for s := snap; s != nil; s = s.Parent() {
		if sz := s.FontSize(); !sz.Unset() {
			size = sz
		}
	}
	return size
}

func fontWeightContribution(value string) (style.Contribution, bool) {
	switch strings.ToLower(value) {
	case "normal":
		return mergeText(style.TextStyle{Weight: style.WeightNormal}), true
	case "bold":
		return mergeText(style.TextStyle{Weight: style.WeightBold}), true
	case "bolder":
		return relativeWeight(300), true
	case "lighter":
		return relativeWeight(-300), true
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= 1000 {
		return mergeText(style.TextStyle{Weight: style.FontWeight(n)}), true
	}
	tracer().Errorf("unknown font-weight: %q", value)
	return style.Contribution{}, false
}

// relativeWeight shifts the inherited font weight by delta, clamped to the
// usual 100…900 range.
func relativeWeight(delta int) style.Contribution {
	return style.Contribute(func(snap *style.Snapshot, d int) *style.Snapshot {
		current := snap.TextStyle().Weight
		if current == 0 {
			current = style.WeightNormal
		}
		w := int(current) + d
		if w < 100 {
			w = 100
		}
		if w > 900 {
			w = 900
		}
		return snap.MergeText(style.TextStyle{Weight: style.FontWeight(w)})
	}, delta)
}

func decorationContribution(value string) (style.Contribution, bool) {
	var over style.TextStyle
	for _, word := range strings.Fields(strings.ToLower(value)) {
		switch word {
		case "none":
			over.Decoration = style.DecorationNone
		case "underline":
			over.Decoration |= style.Underline
		case "overline":
			over.Decoration |= style.Overline
		case "line-through":
			over.Decoration |= style.LineThrough
		case "solid":
			over.DecoStyle = style.DecoSolid
		case "double":
			over.DecoStyle = style.DecoDouble
		case "dotted":
			over.DecoStyle = style.DecoDotted
		case "dashed":
			over.DecoStyle = style.DecoDashed
		case "wavy":
			over.DecoStyle = style.DecoWavy
		default:
			tracer().Debugf("ignoring text-decoration part %q", word)
		}
	}
	if over.Decoration == 0 && over.DecoStyle == style.DecoStyleUnset {
		return style.Contribution{}, false
	}
	return mergeText(over), true
}

func decorationStyleContribution(value string) (style.Contribution, bool) {
	switch strings.ToLower(value) {
	case "solid":
		return mergeText(style.TextStyle{DecoStyle: style.DecoSolid}), true
	case "double":
		return mergeText(style.TextStyle{DecoStyle: style.DecoDouble}), true
	case "dotted":
		return mergeText(style.TextStyle{DecoStyle: style.DecoDotted}), true
	case "dashed":
		return mergeText(style.TextStyle{DecoStyle: style.DecoDashed}), true
	case "wavy":
		return mergeText(style.TextStyle{DecoStyle: style.DecoWavy}), true
	}
	tracer().Errorf("unknown text-decoration-style: %q", value)
	return style.Contribution{}, false
}

func lineHeightContribution(value string) (style.Contribution, bool) {
	if strings.EqualFold(value, "normal") {
		// normal is the absence of a leading value; inherited leadings stay
		tracer().Debugf("line-height: normal is not contributed")
		return style.Contribution{}, false
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
		return setValue(style.Leading(f)), true
	}
	d, err := css.ParseDimen(value)
	if err != nil {
		tracer().Errorf("declaration line-height: %v", err)
		return style.Contribution{}, false
	}
	if d.IsRelative() { // 120% and 1.2em both mean 1.2 × font size
		return setValue(style.Leading(d.RelativeFactor())), true
	}
	if d.IsAbsolute() {
		return style.Contribute(func(snap *style.Snapshot, dim css.DimenT) *style.Snapshot {
			size := snap.FontSize()
			if !size.IsAbsolute() || size.DU() == 0 {
				return snap
			}
			return snap.WithValue(style.Leading(float64(dim.DU()) / float64(size.DU())))
		}, d), true
	}
	return style.Contribution{}, false
}

func alignContribution(value string) (style.Contribution, bool) {
	switch value {
	case "left", "start":
		return setValue(style.AlignLeft), true
	case "right", "end":
		return setValue(style.AlignRight), true
	case "center", "middle":
		return setValue(style.AlignCenter), true
	case "justify":
		return setValue(style.AlignJustify), true
	}
	tracer().Debugf("unknown alignment %q", value)
	return style.Contribution{}, false
}

// parseFamilies splits a font-family list into names, stripping quotes.
// Family names keep their case.
func parseFamilies(value string) []string {
	var families []string
	for _, f := range strings.Split(value, ",") {
		f = strings.TrimSpace(f)
		f = strings.Trim(f, `"'`)
		if f = strings.TrimSpace(f); f != "" {
			families = append(families, f)
		}
	}
	return families
}

// --- Presentational attributes ----------------------------------------

// fontTagSizes maps the size attribute values 1…7 of the font tag onto
// factors of the document base size.
var fontTagSizes = [...]float64{0.625, 0.8125, 1, 1.125, 1.5, 2, 3}

func fontTagSizeContribution(value string) (style.Contribution, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return style.Contribution{}, false
	}
	n, err := strconv.Atoi(value) // Atoi accepts a leading sign
	if err != nil {
		tracer().Debugf("font size attribute %q ignored", value)
		return style.Contribution{}, false
	}
	if value[0] == '+' || value[0] == '-' {
		n += 3 // relative to the default size number 3
	}
	if n < 1 {
		n = 1
	}
	if n > 7 {
		n = 7
	}
	factor := fontTagSizes[n-1]
	return style.Contribute(func(snap *style.Snapshot, f float64) *style.Snapshot {
		return snap.MergeText(style.TextStyle{Size: keywordSize(snap, f)})
	}, factor), true
}

// presentationalContributions collects styling carried by HTML attributes:
// dir and align on any element, plus the color, face and size attributes of
// the font tag.
func presentationalContributions(n *html.Node) []style.Contribution {
	var contribs []style.Contribution
	for _, a := range n.Attr {
		switch strings.ToLower(a.Key) {
		case "dir":
			switch strings.ToLower(strings.TrimSpace(a.Val)) {
			case "ltr":
				contribs = append(contribs, setValue(style.LTR))
			case "rtl":
				contribs = append(contribs, setValue(style.RTL))
			}
		case "align":
			if c, ok := alignContribution(strings.ToLower(strings.TrimSpace(a.Val))); ok {
				contribs = append(contribs, c)
			}
		case "color":
			if n.DataAtom != atom.Font {
				continue
			}
			col, err := css.ParseColor(a.Val)
			if err != nil {
				tracer().Debugf("font color attribute: %v", err)
				continue
			}
			contribs = append(contribs, mergeText(style.TextStyle{Color: col}))
		case "face":
			if n.DataAtom != atom.Font {
				continue
			}
			if families := parseFamilies(a.Val); len(families) > 0 {
				contribs = append(contribs, mergeText(style.TextStyle{Families: families}))
			}
		case "size":
			if n.DataAtom != atom.Font {
				continue
			}
			if c, ok := fontTagSizeContribution(a.Val); ok {
				contribs = append(contribs, c)
			}
		}
	}
	return contribs
}

// attrValue returns the value of an attribute of an element, "" if absent.
func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}
