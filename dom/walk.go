package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/weft/css"
	"github.com/npillmayer/weft/render"
	"github.com/npillmayer/weft/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// walkState is the context inherited by the children of an element.
type walkState struct {
	builder   *style.Builder // style builder of the enclosing element
	container *render.Node   // render node receiving emitted content
	link      string         // href of the nearest enclosing anchor
	list      *listContext   // innermost list, nil outside lists
}

// listContext is shared by all items of one list element, so that ordered
// lists can count across siblings.
type listContext struct {
	ordered bool
	depth   int // nesting depth, 1 for an outermost list
	counter int // running item number for ordered lists
}

type walkItem struct {
	node  *html.Node
	state walkState
}

// BuildRenderTree walks HTML markup, starting at a body or fragment root
// element, and produces a render tree. anchor is the builder holding the
// document's root styles; its snapshot also styles the resulting document
// node, extended by contributions of the root element itself.
//
// Each element gets a sub-builder fed from the user agent defaults for its
// tag, matching tag rules, presentational attributes and the element's
// style attribute, in that order. Block-level elements emit render nodes,
// inline elements contribute styling only. Subtrees under display:none are
// pruned.
func BuildRenderTree(root *html.Node, anchor *style.Builder, ctx style.Context, rules TagRules) *render.Node {
	if anchor == nil {
		tracer().Errorf("render tree build without a style anchor")
		anchor = style.NewBuilder(nil)
	}
	doc := render.NewNode(render.DocumentNode)
	if root == nil {
		tracer().Errorf("no element to render")
		doc.SetSnapshot(anchor.Build(ctx))
		return doc
	}
	styleDecls := styleAttrDeclarations(root)
	eb := anchor.Sub()
	enqueueAll(eb, elementContributions(root, rules, styleDecls))
	snap := eb.Build(ctx)
	if root.Type == html.ElementNode {
		doc.SetTag(root.DataAtom)
	}
	doc.SetSnapshot(snap)
	margins, padding := collectBoxes(root, rules, styleDecls, snap)
	doc.SetMargins(margins)
	doc.SetPadding(padding)

	stack := make([]walkItem, 0, 64)
	state := walkState{builder: eb, container: doc}
	for ch := root.LastChild; ch != nil; ch = ch.PrevSibling {
		stack = append(stack, walkItem{node: ch, state: state})
	}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, state := item.node, item.state
		switch n.Type {
		case html.TextNode:
			emitText(n, state, ctx)
		case html.ElementNode:
			childState, descend := walkElement(n, state, ctx, rules)
			if !descend {
				continue
			}
			for ch := n.LastChild; ch != nil; ch = ch.PrevSibling {
				stack = append(stack, walkItem{node: ch, state: childState})
			}
		}
	}
	return doc
}

// walkElement processes one element: styling, display handling and render
// node emission. It returns the walk state for the element's children and
// whether to descend into them at all.
func walkElement(n *html.Node, state walkState, ctx style.Context, rules TagRules) (walkState, bool) {
	styleDecls := styleAttrDeclarations(n)
	mode := displayFor(n, rules, styleDecls)
	if mode.Contains(css.DisplayNone) {
		return state, false
	}
	eb := state.builder.Sub()
	enqueueAll(eb, elementContributions(n, rules, styleDecls))
	childState := state
	childState.builder = eb

	switch n.DataAtom {
	case atom.Br:
		br := render.NewNode(render.BreakNode)
		br.SetTag(atom.Br)
		br.SetSnapshot(eb.Build(ctx))
		state.container.AppendChild(br)
		return state, false
	case atom.Img:
		state.container.AppendChild(imageNode(n, eb.Build(ctx), state.link))
		return state, false
	}

	if !mode.IsBlockLevel() {
		// inline elements contribute styling only
		if n.DataAtom == atom.A {
			if href := attrValue(n, "href"); href != "" {
				childState.link = href
			}
		}
		return childState, true
	}

	snap := eb.Build(ctx)
	block := render.NewNode(blockKind(n, mode))
	block.SetTag(n.DataAtom)
	block.SetSnapshot(snap)
	margins, padding := collectBoxes(n, rules, styleDecls, snap)
	block.SetMargins(margins)
	block.SetPadding(padding)
	if mode.Contains(css.ListItemMode) {
		block.SetMarker(listMarker(state.list))
	}
	state.container.AppendChild(block)
	childState.container = block
	if n.DataAtom == atom.Ul || n.DataAtom == atom.Ol {
		depth := 0
		if state.list != nil {
			depth = state.list.depth
		}
		childState.list = &listContext{
			ordered: n.DataAtom == atom.Ol,
			depth:   depth + 1,
		}
	}
	return childState, true
}

// blockKind maps a block-level element onto its render node kind.
func blockKind(n *html.Node, mode css.DisplayMode) render.NodeKind {
	switch {
	case mode.Contains(css.ListItemMode):
		return render.ListItemNode
	case mode.Contains(css.TableMode):
		return render.TableNode
	case mode.Contains(css.TableRowMode):
		return render.TableRowNode
	case mode.Contains(css.TableCellMode):
		return render.TableCellNode
	case n.DataAtom == atom.Hr:
		return render.DividerNode
	}
	return render.BlockNode
}

var bulletMarkers = [...]string{"• ", "◦ ", "▪ "}

// listMarker produces the textual marker for a list item. Ordered lists
// carry a running counter, unordered lists cycle through bullet glyphs by
// nesting depth. A stray list item outside any list gets the default
// bullet.
func listMarker(list *listContext) string {
	if list == nil {
		return bulletMarkers[0]
	}
	if list.ordered {
		list.counter++
		return fmt.Sprintf("%d. ", list.counter)
	}
	return bulletMarkers[(list.depth-1)%len(bulletMarkers)]
}

// --- Styling assembly -------------------------------------------------

func enqueueAll(b *style.Builder, contribs []style.Contribution) {
	for _, c := range contribs {
		b.Enqueue(c)
	}
}

// elementContributions assembles the styling queue for an element, ordered
// so that later sources win: user agent tag styling, tag rules from
// stylesheets, presentational attributes, then the style attribute.
// Declarations marked !important go last. Display and the box properties
// never make it into the queue, the walk handles those itself.
func elementContributions(n *html.Node, rules TagRules, styleDecls []css.Declaration) []style.Contribution {
	var contribs []style.Contribution
	contribs = append(contribs, tagStyles[n.DataAtom]...)
	var important []css.Declaration
	collect := func(decls []css.Declaration) {
		for _, d := range decls {
			if skipInQueue(d.Property) {
				continue
			}
			if d.Important {
				important = append(important, d)
				continue
			}
			if c, ok := declarationContribution(d); ok {
				contribs = append(contribs, c)
			}
		}
	}
	collect(rules[n.DataAtom])
	contribs = append(contribs, presentationalContributions(n)...)
	collect(styleDecls)
	for _, d := range important {
		if c, ok := declarationContribution(d); ok {
			contribs = append(contribs, c)
		}
	}
	return contribs
}

// skipInQueue is true for properties the walk consumes directly instead of
// routing them through the style builder.
func skipInQueue(property string) bool {
	return property == "display" || isBoxProperty(property)
}

func isBoxProperty(property string) bool {
	return property == "margin" || property == "padding" ||
		strings.HasPrefix(property, "margin-") ||
		strings.HasPrefix(property, "padding-")
}

// styleAttrDeclarations parses an element's style attribute. A parse error
// is traced, the element then styles as if the attribute were absent.
func styleAttrDeclarations(n *html.Node) []css.Declaration {
	attr := attrValue(n, "style")
	if attr == "" {
		return nil
	}
	decls, err := css.ParseDeclarations(attr)
	if err != nil {
		tracer().Errorf("style attribute of %s: %v", n.Data, err)
		return nil
	}
	return decls
}

// displayFor determines the effective display mode of an element: the user
// agent default, possibly overridden by display declarations from matching
// tag rules or the style attribute. The last parsable override wins.
func displayFor(n *html.Node, rules TagRules, styleDecls []css.Declaration) css.DisplayMode {
	mode := displayModeForNode(n)
	scan := func(decls []css.Declaration) {
		for _, d := range decls {
			if d.Property != "display" {
				continue
			}
			m, err := css.ParseDisplay(d.Value)
			if err != nil {
				tracer().Errorf("element %s: %v", n.Data, err)
				continue
			}
			if m != css.NoMode {
				mode = m
			}
		}
	}
	scan(rules[n.DataAtom])
	scan(styleDecls)
	return mode
}

// --- Box properties -----------------------------------------------------

// collectBoxes determines margins and padding for a block element: the user
// agent defaults for the tag, overridden by margin/padding declarations from
// matching tag rules and the style attribute. Font-relative dimensions are
// resolved against the element's own font size; percentages and auto stay
// opaque for the layout stage. Margins are element-local, they never
// inherit.
func collectBoxes(n *html.Node, rules TagRules, styleDecls []css.Declaration, snap *style.Snapshot) (margins, padding css.BoxSides) {
	margins = tagMargins[n.DataAtom]
	padding = tagPadding[n.DataAtom]
	for _, d := range rules[n.DataAtom] {
		applyBoxDecl(&margins, &padding, d)
	}
	for _, d := range styleDecls {
		applyBoxDecl(&margins, &padding, d)
	}
	resolveBox(&margins, snap)
	resolveBox(&padding, snap)
	return margins, padding
}

func applyBoxDecl(margins, padding *css.BoxSides, d css.Declaration) {
	box := margins
	property := d.Property
	if strings.HasPrefix(property, "padding") {
		box = padding
		property = strings.TrimPrefix(property, "padding")
	} else if strings.HasPrefix(property, "margin") {
		property = strings.TrimPrefix(property, "margin")
	} else {
		return
	}
	if property == "" { // the shorthand replaces all four sides
		b, err := css.ParseShorthand(d.Value)
		if err != nil {
			tracer().Errorf("declaration %s: %v", d.Property, err)
			return
		}
		*box = b
		return
	}
	var side css.Side
	switch property {
	case "-top":
		side = css.Top
	case "-right":
		side = css.Right
	case "-bottom":
		side = css.Bottom
	case "-left":
		side = css.Left
	default:
		tracer().Debugf("declaration %q not supported", d.Property)
		return
	}
	dim, err := css.ParseDimen(d.Value)
	if err != nil {
		tracer().Errorf("declaration %s: %v", d.Property, err)
		return
	}
	box.SetSide(side, dim)
}

// resolveBox resolves font-relative box dimensions against the element's
// font size.
func resolveBox(b *css.BoxSides, snap *style.Snapshot) {
	size := snap.FontSize()
	if !size.IsAbsolute() {
		return
	}
	for _, s := range []css.Side{css.Top, css.Right, css.Bottom, css.Left} {
		d := b.Side(s)
		if d.IsRelative() && !d.IsPercent() {
			b.SetSide(s, size.Scale(d.RelativeFactor()))
		}
	}
}

// --- Text and leaf emission ----------------------------------------------

// emitText turns an HTML text node into render tree content. Under normal
// white-space policy runs of whitespace collapse to single spaces and
// whitespace-only nodes survive, as a single space, only between inline
// siblings. Under pre the text is kept verbatim, with break nodes at
// newlines.
func emitText(n *html.Node, state walkState, ctx style.Context) {
	snap := state.builder.Build(ctx)
	if snap.WhiteSpace() == style.WhiteSpacePre {
		emitPreText(n.Data, snap, state)
		return
	}
	text, ok := collapseWhiteSpace(n.Data)
	if !ok {
		if !separatesInlineContent(n) {
			return
		}
		text = " "
	}
	node := render.NewNode(render.TextNode)
	node.SetSnapshot(snap)
	node.SetText(text)
	if state.link != "" {
		node.SetLink(state.link)
	}
	state.container.AppendChild(node)
}

func emitPreText(text string, snap *style.Snapshot, state walkState) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			br := render.NewNode(render.BreakNode)
			br.SetSnapshot(snap)
			state.container.AppendChild(br)
		}
		if line == "" {
			continue
		}
		node := render.NewNode(render.TextNode)
		node.SetSnapshot(snap)
		node.SetText(line)
		if state.link != "" {
			node.SetLink(state.link)
		}
		state.container.AppendChild(node)
	}
}

// collapseWhiteSpace folds runs of whitespace into single spaces. A leading
// or trailing run is kept as one space, it separates the text from sibling
// content. ok is false for all-whitespace input.
func collapseWhiteSpace(s string) (string, bool) {
	var b strings.Builder
	pending := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSpaceByte(c) {
			pending = true
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteByte(c)
	}
	if pending && b.Len() > 0 {
		b.WriteByte(' ')
	}
	return b.String(), b.Len() > 0
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// separatesInlineContent is true for a whitespace-only text node sitting
// between two inline siblings, where it acts as a word separator.
func separatesInlineContent(n *html.Node) bool {
	return inlinish(n.PrevSibling) && inlinish(n.NextSibling)
}

func inlinish(n *html.Node) bool {
	if n == nil {
		return false
	}
	if n.Type == html.TextNode {
		return true
	}
	if n.Type != html.ElementNode {
		return false
	}
	return displayModeForNode(n).Contains(css.InlineMode)
}

// imageNode produces a render leaf for an img element.
func imageNode(n *html.Node, snap *style.Snapshot, link string) *render.Node {
	node := render.NewNode(render.ImageNode)
	node.SetTag(atom.Img)
	node.SetSnapshot(snap)
	node.SetImage(render.Image{
		Src:    attrValue(n, "src"),
		Alt:    attrValue(n, "alt"),
		Width:  imageDimen(attrValue(n, "width")),
		Height: imageDimen(attrValue(n, "height")),
	})
	if link != "" {
		node.SetLink(link)
	}
	return node
}

// imageDimen reads an image dimension attribute. HTML allows bare pixel
// numbers there; CSS dimension literals are accepted too.
func imageDimen(value string) css.DimenT {
	value = strings.TrimSpace(value)
	if value == "" {
		return css.DimenT{}
	}
	if d, err := css.ParseDimen(value); err == nil {
		return d
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		if d, err := css.ParseDimen(value + "px"); err == nil {
			return d
		}
	}
	tracer().Debugf("image dimension %q ignored", value)
	return css.DimenT{}
}
