package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/weft/css"
	"github.com/npillmayer/weft/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tagDisplayModes carries the user agent default display mode per tag.
// Tags not listed are treated as blocks.
var tagDisplayModes = map[atom.Atom]css.DisplayMode{
	atom.Head:     css.DisplayNone,
	atom.Script:   css.DisplayNone,
	atom.Style:    css.DisplayNone,
	atom.Title:    css.DisplayNone,
	atom.Meta:     css.DisplayNone,
	atom.Link:     css.DisplayNone,
	atom.Base:     css.DisplayNone,
	atom.Noscript: css.DisplayNone,
	atom.Template: css.DisplayNone,
	atom.Iframe:   css.DisplayNone,

	atom.Html:       css.BlockMode | css.InnerBlockMode,
	atom.Body:       css.BlockMode | css.InnerBlockMode,
	atom.Div:        css.BlockMode | css.InnerBlockMode,
	atom.Article:    css.BlockMode | css.InnerBlockMode,
	atom.Section:    css.BlockMode | css.InnerBlockMode,
	atom.Aside:      css.BlockMode | css.InnerBlockMode,
	atom.Nav:        css.BlockMode | css.InnerBlockMode,
	atom.Header:     css.BlockMode | css.InnerBlockMode,
	atom.Footer:     css.BlockMode | css.InnerBlockMode,
	atom.Main:       css.BlockMode | css.InnerBlockMode,
	atom.Figure:     css.BlockMode | css.InnerBlockMode,
	atom.Ul:         css.BlockMode | css.InnerBlockMode,
	atom.Ol:         css.BlockMode | css.InnerBlockMode,
	atom.Dl:         css.BlockMode | css.InnerBlockMode,
	atom.Form:       css.BlockMode | css.InnerBlockMode,
	atom.Fieldset:   css.BlockMode | css.InnerBlockMode,
	atom.Blockquote: css.BlockMode | css.InnerBlockMode,

	// paragraph-like blocks holding inline content
	atom.P:          css.BlockMode | css.InnerInlineMode,
	atom.H1:         css.BlockMode | css.InnerInlineMode,
	atom.H2:         css.BlockMode | css.InnerInlineMode,
	atom.H3:         css.BlockMode | css.InnerInlineMode,
	atom.H4:         css.BlockMode | css.InnerInlineMode,
	atom.H5:         css.BlockMode | css.InnerInlineMode,
	atom.H6:         css.BlockMode | css.InnerInlineMode,
	atom.Pre:        css.BlockMode | css.InnerInlineMode,
	atom.Address:    css.BlockMode | css.InnerInlineMode,
	atom.Figcaption: css.BlockMode | css.InnerInlineMode,
	atom.Center:     css.BlockMode | css.InnerInlineMode,
	atom.Dt:         css.BlockMode | css.InnerInlineMode,
	atom.Dd:         css.BlockMode | css.InnerInlineMode,
	atom.Hr:         css.BlockMode | css.InnerInlineMode,

	atom.Li: css.ListItemMode | css.BlockMode,

	atom.Table: css.BlockMode | css.TableMode,
	atom.Thead: css.BlockMode | css.InnerBlockMode,
	atom.Tbody: css.BlockMode | css.InnerBlockMode,
	atom.Tfoot: css.BlockMode | css.InnerBlockMode,
	atom.Tr:    css.BlockMode | css.TableRowMode,
	atom.Td:    css.BlockMode | css.TableCellMode,
	atom.Th:    css.BlockMode | css.TableCellMode,

	atom.Span:   css.InlineMode,
	atom.A:      css.InlineMode,
	atom.B:      css.InlineMode,
	atom.Strong: css.InlineMode,
	atom.I:      css.InlineMode,
	atom.Em:     css.InlineMode,
	atom.U:      css.InlineMode,
	atom.Ins:    css.InlineMode,
	atom.S:      css.InlineMode,
	atom.Strike: css.InlineMode,
	atom.Del:    css.InlineMode,
	atom.Small:  css.InlineMode,
	atom.Big:    css.InlineMode,
	atom.Sub:    css.InlineMode,
	atom.Sup:    css.InlineMode,
	atom.Code:   css.InlineMode,
	atom.Kbd:    css.InlineMode,
	atom.Samp:   css.InlineMode,
	atom.Tt:     css.InlineMode,
	atom.Var:    css.InlineMode,
	atom.Cite:   css.InlineMode,
	atom.Dfn:    css.InlineMode,
	atom.Abbr:   css.InlineMode,
	atom.Q:      css.InlineMode,
	atom.Mark:   css.InlineMode,
	atom.Font:   css.InlineMode,
	atom.Label:  css.InlineMode,
	atom.Br:     css.InlineMode,
	atom.Img:    css.InlineMode,
}

// displayModeForNode returns the user agent default display mode for an
// HTML node.
func displayModeForNode(n *html.Node) css.DisplayMode {
	if n == nil {
		return css.DisplayNone
	}
	if n.Type == html.DocumentNode {
		return css.BlockMode | css.InnerBlockMode
	}
	if n.Type != html.ElementNode {
		return css.DisplayNone
	}
	if mode, ok := tagDisplayModes[n.DataAtom]; ok {
		return mode
	}
	tracer().Infof("unknown HTML element %s will be set to display: block", n.Data)
	return css.BlockMode | css.InnerBlockMode
}

// --- User agent tag styling ------------------------------------------------

// mergeText wraps a fixed text style overlay into a contribution.
func mergeText(over style.TextStyle) style.Contribution {
	return style.Contribute(func(snap *style.Snapshot, ts style.TextStyle) *style.Snapshot {
		return snap.MergeText(ts)
	}, over)
}

// setValue wraps a typed style value into a contribution.
func setValue(v style.Value) style.Contribution {
	return style.Contribute(func(snap *style.Snapshot, val style.Value) *style.Snapshot {
		return snap.WithValue(val)
	}, v)
}

// relativeSize resolves a font size factor against the size inherited at
// snap. An absolute inherited size is scaled; an unresolvable one keeps the
// factor as an em dimension for the layout stage.
func relativeSize(snap *style.Snapshot, factor float64) css.DimenT {
	size := snap.FontSize()
	if size.IsAbsolute() {
		return size.Scale(factor)
	}
	return css.Em(factor)
}

// scaleFont contributes a font size relative to the inherited size.
func scaleFont(factor float64) style.Contribution {
	return style.Contribute(func(snap *style.Snapshot, f float64) *style.Snapshot {
		return snap.MergeText(style.TextStyle{Size: relativeSize(snap, f)})
	}, factor)
}

// heading contributes the classic user agent heading style: bold at a
// tag-specific size factor.
func heading(factor float64) style.Contribution {
	return style.Contribute(func(snap *style.Snapshot, f float64) *style.Snapshot {
		return snap.MergeText(style.TextStyle{
			Size:   relativeSize(snap, f),
			Weight: style.WeightBold,
		})
	}, factor)
}

// anchorStyle styles anchors from the ambient theme at build time.
func anchorStyle(snap *style.Snapshot, ctx style.Context) *style.Snapshot {
	return snap.MergeText(style.TextStyle{
		Color:      ctx.Styling().LinkColor,
		Decoration: style.Underline,
	})
}

// monoStyle switches to the theme's monospace font families.
func monoStyle(snap *style.Snapshot, ctx style.Context) *style.Snapshot {
	return snap.MergeText(style.TextStyle{Families: ctx.Styling().MonoFamilies})
}

// markStyle tints the background of marked text from the theme.
func markStyle(snap *style.Snapshot, ctx style.Context) *style.Snapshot {
	return snap.MergeText(style.TextStyle{Background: ctx.Styling().MarkColor})
}

// tagStyles carries the user agent styling contributions per tag. All
// contributions are stateless and shared between elements.
var tagStyles = map[atom.Atom][]style.Contribution{
	atom.H1: {heading(2)},
	atom.H2: {heading(1.5)},
	atom.H3: {heading(1.17)},
	atom.H4: {heading(1)},
	atom.H5: {heading(0.83)},
	atom.H6: {heading(0.67)},

	atom.B:      {mergeText(style.TextStyle{Weight: style.WeightBold})},
	atom.Strong: {mergeText(style.TextStyle{Weight: style.WeightBold})},
	atom.I:      {mergeText(style.TextStyle{Slant: style.SlantItalic})},
	atom.Em:     {mergeText(style.TextStyle{Slant: style.SlantItalic})},
	atom.Var:    {mergeText(style.TextStyle{Slant: style.SlantItalic})},
	atom.Cite:   {mergeText(style.TextStyle{Slant: style.SlantItalic})},
	atom.Dfn:    {mergeText(style.TextStyle{Slant: style.SlantItalic})},
	atom.U:      {mergeText(style.TextStyle{Decoration: style.Underline})},
	atom.Ins:    {mergeText(style.TextStyle{Decoration: style.Underline})},
	atom.S:      {mergeText(style.TextStyle{Decoration: style.LineThrough})},
	atom.Strike: {mergeText(style.TextStyle{Decoration: style.LineThrough})},
	atom.Del:    {mergeText(style.TextStyle{Decoration: style.LineThrough})},

	atom.Small: {scaleFont(0.83)},
	atom.Big:   {scaleFont(1.2)},
	atom.Sub:   {scaleFont(0.83)},
	atom.Sup:   {scaleFont(0.83)},

	atom.A:    {style.ContributeWithContext(anchorStyle)},
	atom.Code: {style.ContributeWithContext(monoStyle)},
	atom.Kbd:  {style.ContributeWithContext(monoStyle)},
	atom.Samp: {style.ContributeWithContext(monoStyle)},
	atom.Tt:   {style.ContributeWithContext(monoStyle)},
	atom.Mark: {style.ContributeWithContext(markStyle)},

	atom.Pre: {
		style.ContributeWithContext(monoStyle),
		setValue(style.WhiteSpacePre),
	},

	atom.Center: {setValue(style.AlignCenter)},
	atom.Th: {
		mergeText(style.TextStyle{Weight: style.WeightBold}),
		setValue(style.AlignCenter),
	},
}

// --- User agent spacing ------------------------------------------------

func box(values ...css.DimenT) css.BoxSides {
	return css.ExpandShorthand(values)
}

func pt(n int) css.DimenT {
	return css.JustDimen(dimen.DU(n) * dimen.PT)
}

// tagMargins carries the user agent default margins per tag. Em values are
// resolved against the element's own font size during the walk; margins do
// not inherit.
var tagMargins = map[atom.Atom]css.BoxSides{
	atom.P:          box(css.Em(1), pt(0)),
	atom.Blockquote: box(css.Em(1), pt(30)),
	atom.Figure:     box(css.Em(1), pt(30)),
	atom.Pre:        box(css.Em(1), pt(0)),
	atom.Hr:         box(css.Em(0.5), pt(0)),
	atom.Ul:         box(css.Em(1), pt(0)),
	atom.Ol:         box(css.Em(1), pt(0)),
	atom.Dd:         box(pt(0), pt(0), pt(0), pt(30)),
	atom.H1:         box(css.Em(0.67), pt(0)),
	atom.H2:         box(css.Em(0.83), pt(0)),
	atom.H3:         box(css.Em(1), pt(0)),
	atom.H4:         box(css.Em(1.33), pt(0)),
	atom.H5:         box(css.Em(1.67), pt(0)),
	atom.H6:         box(css.Em(2.33), pt(0)),
}

// tagPadding carries the user agent default padding per tag (list indent).
var tagPadding = map[atom.Atom]css.BoxSides{
	atom.Ul: box(pt(0), pt(0), pt(0), pt(30)),
	atom.Ol: box(pt(0), pt(0), pt(0), pt(30)),
}
