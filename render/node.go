package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/weft/css"
	"github.com/npillmayer/weft/style"
	"github.com/npillmayer/weft/tree"
	"golang.org/x/net/html/atom"
)

// NodeKind discriminates the primitives a render tree is made of.
type NodeKind uint8

const (
	DocumentNode NodeKind = iota
	BlockNode
	ListItemNode
	TableNode
	TableRowNode
	TableCellNode
	TextNode
	BreakNode
	DividerNode
	ImageNode
)

var kindNames = [...]string{"document", "block", "list-item", "table",
	"table-row", "table-cell", "text", "break", "divider", "image"}

func (k NodeKind) String() string {
	if int(k) >= len(kindNames) {
		return "?"
	}
	return kindNames[k]
}

// Image describes an image primitive. Width and height are unset when the
// markup gives none; relative dimensions are kept for the layout stage.
type Image struct {
	Src    string
	Alt    string
	Width  css.DimenT
	Height css.DimenT
}

// Node is a renderable primitive, the building block of the render tree.
type Node struct {
	tree.Node[*Node] // we build on top of a general purpose tree
	kind             NodeKind
	tag              atom.Atom
	snapshot         *style.Snapshot
	text             string
	link             string
	marker           string
	image            Image
	margins          css.BoxSides
	padding          css.BoxSides
}

// NewNode creates a render node of a given kind.
func NewNode(kind NodeKind) *Node {
	n := &Node{kind: kind}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// NodeOf gets the render node from a generic tree node.
func NodeOf(tn *tree.Node[*Node]) *Node {
	if tn == nil {
		return nil
	}
	return tn.Payload
}

// TreeNode returns the generic tree node for n, e.g. for tree.TopDown.
func (n *Node) TreeNode() *tree.Node[*Node] {
	return &n.Node
}

// AppendChild adds a child node and returns n for chaining.
func (n *Node) AppendChild(ch *Node) *Node {
	if ch != nil {
		n.Node.AddChild(&ch.Node)
	}
	return n
}

// Parent returns the parent render node, nil at the tree root.
func (n *Node) Parent() *Node {
	return NodeOf(n.Node.Parent())
}

// Child returns child number i, nil if out of range.
func (n *Node) Child(i int) *Node {
	ch, ok := n.Node.Child(i)
	if !ok {
		return nil
	}
	return NodeOf(ch)
}

// Children returns the child render nodes as a fresh slice.
func (n *Node) Children() []*Node {
	count := n.ChildCount()
	if count == 0 {
		return nil
	}
	children := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, n.Child(i))
	}
	return children
}

// Kind returns the node's primitive kind.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// Tag returns the markup tag the node originates from, zero for text runs.
func (n *Node) Tag() atom.Atom {
	return n.tag
}

// SetTag records the originating markup tag.
func (n *Node) SetTag(tag atom.Atom) {
	n.tag = tag
}

// Snapshot returns the node's resolved style snapshot. May be nil for
// nodes created outside a styling walk.
func (n *Node) Snapshot() *style.Snapshot {
	return n.snapshot
}

// SetSnapshot attaches a resolved style snapshot.
func (n *Node) SetSnapshot(snap *style.Snapshot) {
	n.snapshot = snap
}

// Text returns the text run of a text node, "" otherwise.
func (n *Node) Text() string {
	return n.text
}

// SetText sets the text run.
func (n *Node) SetText(text string) {
	n.text = text
}

// Link returns the link target in whose scope the node lives, "" outside
// of anchors.
func (n *Node) Link() string {
	return n.link
}

// SetLink records a link target.
func (n *Node) SetLink(href string) {
	n.link = href
}

// Marker returns the list item marker ("• ", "3. "), "" for other kinds.
func (n *Node) Marker() string {
	return n.marker
}

// SetMarker sets the list item marker.
func (n *Node) SetMarker(marker string) {
	n.marker = marker
}

// Image returns the image info of an image node.
func (n *Node) Image() Image {
	return n.image
}

// SetImage sets the image info.
func (n *Node) SetImage(img Image) {
	n.image = img
}

// Margins returns the node's margins. Margins are element-local: they do
// not inherit through the snapshot chain.
func (n *Node) Margins() css.BoxSides {
	return n.margins
}

// SetMargins sets the node's margins.
func (n *Node) SetMargins(margins css.BoxSides) {
	n.margins = margins
}

// Padding returns the node's padding, element-local like margins.
func (n *Node) Padding() css.BoxSides {
	return n.padding
}

// SetPadding sets the node's padding.
func (n *Node) SetPadding(padding css.BoxSides) {
	n.padding = padding
}

// --- Styling delegates -------------------------------------------------

// TextStyle returns the resolved text styling for this node.
func (n *Node) TextStyle() style.TextStyle {
	return n.snapshot.TextStyle()
}

// Align returns the resolved text alignment.
func (n *Node) Align() style.TextAlign {
	return n.snapshot.Align()
}

// Direction returns the resolved text direction.
func (n *Node) Direction() style.Direction {
	return n.snapshot.Direction()
}

// WhiteSpace returns the resolved whitespace policy.
func (n *Node) WhiteSpace() style.WhiteSpace {
	return n.snapshot.WhiteSpace()
}

func (n *Node) String() string {
	switch n.kind {
	case TextNode:
		return fmt.Sprintf("(text %q)", shorten(n.text, 20))
	case ImageNode:
		return fmt.Sprintf("(image %q)", n.image.Src)
	}
	if n.tag != 0 {
		return fmt.Sprintf("(%s <%s> #ch=%d)", n.kind, n.tag, n.ChildCount())
	}
	return fmt.Sprintf("(%s #ch=%d)", n.kind, n.ChildCount())
}

func shorten(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
