package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// SkipChildren may be returned by a visit function to prune the subtree
// below the visited node without aborting the walk.
var SkipChildren = errors.New("skip children of node")

// TopDown walks the tree rooted at node in pre-order: parents before children,
// children in document order. It calls visit for every node; depth is the
// distance from the walk root. If visit returns SkipChildren, the node's
// subtree is pruned. Any other non-nil error aborts the walk and is returned
// to the caller.
//
// The walk keeps an explicit stack and therefore cannot exhaust the call
// stack on pathologically deep trees.
func TopDown[T comparable](node *Node[T], visit func(n *Node[T], depth int) error) error {
	if node == nil || visit == nil {
		return nil
	}
	type frame struct {
		node  *Node[T]
		depth int
	}
	stack := make([]frame, 0, 32)
	stack = append(stack, frame{node, 0})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		err := visit(f.node, f.depth)
		if err == SkipChildren {
			continue
		} else if err != nil {
			return err
		}
		for i := len(f.node.children) - 1; i >= 0; i-- { // leftmost child on top
			stack = append(stack, frame{f.node.children[i], f.depth + 1})
		}
	}
	return nil
}
