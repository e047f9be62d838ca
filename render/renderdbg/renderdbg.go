/*
Package renderdbg implements helpers to debug a render tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package renderdbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/weft/render"
	"github.com/npillmayer/weft/tree"
	tp "github.com/xlab/treeprint"
)

var kindSymbols = map[render.NodeKind]string{
	render.DocumentNode:  "⊛",
	render.BlockNode:     "▩",
	render.ListItemNode:  "▣",
	render.TableNode:     "▥",
	render.TableRowNode:  "▤",
	render.TableCellNode: "▢",
	render.TextNode:      "►",
	render.BreakNode:     "↵",
	render.DividerNode:   "—",
	render.ImageNode:     "▧",
}

// Dump formats a render tree as an indented text diagram, one line per
// node, with a compact styling summary.
func Dump(root *render.Node) string {
	if root == nil {
		return "<nil>"
	}
	printer := tp.New()
	printer.SetValue(label(root))
	branches := map[*render.Node]tp.Tree{root: printer}
	err := tree.TopDown(root.TreeNode(), func(tn *tree.Node[*render.Node], depth int) error {
		n := render.NodeOf(tn)
		if n == root {
			return nil
		}
		parent, ok := branches[n.Parent()]
		if !ok {
			return fmt.Errorf("render node %s detached from dumped tree", n)
		}
		if n.ChildCount() == 0 {
			parent.AddNode(label(n))
		} else {
			branches[n] = parent.AddBranch(label(n))
		}
		return nil
	})
	if err != nil {
		return fmt.Sprintf("<error dumping render tree: %s>", err.Error())
	}
	return printer.String()
}

// Print writes the Dump of a render tree to w.
func Print(w io.Writer, root *render.Node) {
	fmt.Fprintln(w, Dump(root))
}

// label produces the single-line description of one node.
func label(n *render.Node) string {
	var b strings.Builder
	b.WriteString(kindSymbols[n.Kind()])
	if n.Tag() != 0 {
		fmt.Fprintf(&b, " <%s>", n.Tag())
	}
	switch n.Kind() {
	case render.TextNode:
		fmt.Fprintf(&b, " %q", n.Text())
		if n.Link() != "" {
			fmt.Fprintf(&b, " → %s", n.Link())
		}
	case render.ListItemNode:
		if n.Marker() != "" {
			fmt.Fprintf(&b, " %q", n.Marker())
		}
	case render.ImageNode:
		img := n.Image()
		fmt.Fprintf(&b, " src=%q", img.Src)
		if img.Alt != "" {
			fmt.Fprintf(&b, " alt=%q", img.Alt)
		}
		if !img.Width.Unset() || !img.Height.Unset() {
			fmt.Fprintf(&b, " %s×%s", img.Width, img.Height)
		}
	}
	if snap := n.Snapshot(); snap != nil {
		fmt.Fprintf(&b, " %s", snap.TextStyle())
		if n.Align() != 0 {
			fmt.Fprintf(&b, " align=%s", n.Align())
		}
	}
	if !n.Margins().Unset() {
		fmt.Fprintf(&b, " margins=%s", n.Margins())
	}
	return b.String()
}
