package tree_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/weft/tree"
)

func buildTestTree() (*tree.Node[string], map[string]*tree.Node[string]) {
	nodes := make(map[string]*tree.Node[string])
	for _, name := range []string{"root", "a", "b", "c", "b1", "b2"} {
		nodes[name] = tree.NewNode(name)
	}
	nodes["root"].AddChild(nodes["a"]).AddChild(nodes["b"]).AddChild(nodes["c"])
	nodes["b"].AddChild(nodes["b1"]).AddChild(nodes["b2"])
	return nodes["root"], nodes
}

func TestNodeChildren(t *testing.T) {
	root, nodes := buildTestTree()
	if root.ChildCount() != 3 {
		t.Errorf("expected root to have 3 children, has %d", root.ChildCount())
	}
	ch, ok := root.Child(1)
	if !ok || ch.Payload != "b" {
		t.Errorf("expected child #1 of root to be b, is %v", ch)
	}
	if nodes["b1"].Parent() != nodes["b"] {
		t.Errorf("expected parent of b1 to be b, is %v", nodes["b1"].Parent())
	}
	if root.IndexOfChild(nodes["c"]) != 2 {
		t.Errorf("expected index of c to be 2, is %d", root.IndexOfChild(nodes["c"]))
	}
	if root.IndexOfChild(nodes["b2"]) != -1 {
		t.Errorf("expected b2 not to be a child of root, is at %d", root.IndexOfChild(nodes["b2"]))
	}
}

func TestNodeIsolate(t *testing.T) {
	root, nodes := buildTestTree()
	isolated := nodes["b"].Isolate()
	if isolated != nodes["b"] {
		t.Error("expected Isolate to return the isolated node, doesn't")
	}
	if isolated.Parent() != nil {
		t.Errorf("expected isolated node to have no parent, has %v", isolated.Parent())
	}
	if root.ChildCount() != 2 {
		t.Errorf("expected root to have 2 children after isolation, has %d", root.ChildCount())
	}
	if root.IndexOfChild(nodes["c"]) != 1 {
		t.Errorf("expected c to move up to index 1, is at %d", root.IndexOfChild(nodes["c"]))
	}
}

func TestTopDownOrder(t *testing.T) {
	root, _ := buildTestTree()
	var visited []string
	err := tree.TopDown(root, func(n *tree.Node[string], depth int) error {
		visited = append(visited, n.Payload)
		return nil
	})
	if err != nil {
		t.Fatalf("expected walk not to fail, did: %v", err)
	}
	order := strings.Join(visited, " ")
	if order != "root a b b1 b2 c" {
		t.Errorf("expected pre-order walk, got %q", order)
	}
}

func TestTopDownDepth(t *testing.T) {
	root, _ := buildTestTree()
	depths := make(map[string]int)
	_ = tree.TopDown(root, func(n *tree.Node[string], depth int) error {
		depths[n.Payload] = depth
		return nil
	})
	if depths["root"] != 0 || depths["c"] != 1 || depths["b2"] != 2 {
		t.Errorf("expected depths 0/1/2 for root/c/b2, got %v", depths)
	}
}

func TestTopDownSkipChildren(t *testing.T) {
	root, _ := buildTestTree()
	var visited []string
	err := tree.TopDown(root, func(n *tree.Node[string], depth int) error {
		visited = append(visited, n.Payload)
		if n.Payload == "b" {
			return tree.SkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected walk not to fail, did: %v", err)
	}
	order := strings.Join(visited, " ")
	if order != "root a b c" {
		t.Errorf("expected subtree of b to be pruned, got %q", order)
	}
}

func TestTopDownAbort(t *testing.T) {
	root, _ := buildTestTree()
	boom := errors.New("boom")
	var visited []string
	err := tree.TopDown(root, func(n *tree.Node[string], depth int) error {
		visited = append(visited, n.Payload)
		if n.Payload == "b1" {
			return boom
		}
		return nil
	})
	if err != boom {
		t.Errorf("expected walk to return the abort error, returned %v", err)
	}
	order := strings.Join(visited, " ")
	if order != "root a b b1" {
		t.Errorf("expected walk to stop at b1, visited %q", order)
	}
}
