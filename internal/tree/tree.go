package tree

import (
	"fmt"

	"bmmerge/internal/bookmark"
)

// Node is one element plus its ordered children. Only folder nodes carry
// children.
type Node struct {
	Element  *bookmark.Element
	Children []*Node
}

// Tree is an in-memory bookmark hierarchy hung off a synthetic root folder.
type Tree struct {
	Root *Node
}

// New returns a tree containing only the given root element.
func New(root *bookmark.Element) *Tree {
	return &Tree{Root: &Node{Element: root}}
}

// Insert places an element under the folder named by components, descending
// from the root. Every ancestor folder must already exist; insertion order
// within a folder is arrival order.
func (t *Tree) Insert(e *bookmark.Element, components []string) error {
	cur := t.Root
	for _, name := range components {
		next := cur.childFolder(name)
		if next == nil {
			return fmt.Errorf("missing ancestor folder %q inserting %s", name, e)
		}
		cur = next
	}
	cur.Children = append(cur.Children, &Node{Element: e})
	return nil
}

func (n *Node) childFolder(name string) *Node {
	for _, c := range n.Children {
		if c.Element.IsFolder() && c.Element.Name == name {
			return c
		}
	}
	return nil
}

// Walk visits every node below the root depth-first in child order. enter
// runs before a folder's children, leave after; for anchors only enter runs.
// Sibling depths are checked against each other, a mismatch means the tree
// was assembled from a corrupt stream.
func (t *Tree) Walk(enter, leave func(*Node) error) error {
	return walk(t.Root, enter, leave)
}

func walk(n *Node, enter, leave func(*Node) error) error {
	depth := -2
	for _, c := range n.Children {
		if depth == -2 {
			depth = c.Element.NestingDepth
		} else if c.Element.NestingDepth != depth {
			return fmt.Errorf("sibling depth mismatch under %q: %d vs %d",
				n.Element.Name, depth, c.Element.NestingDepth)
		}
		if enter != nil {
			if err := enter(c); err != nil {
				return err
			}
		}
		if c.Element.IsFolder() {
			if err := walk(c, enter, leave); err != nil {
				return err
			}
			if leave != nil {
				if err := leave(c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
