package layout

import (
	"errors"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/ivy/engine/dom/style/css"
)

// NodeID identifies a node within a tree.
type NodeID int

// NoNode is the ID of a non-existent node, e.g. the parent of the root.
const NoNode NodeID = -1

// ErrStopWalk may be returned by a walker function to end a walk early.
var ErrStopWalk = errors.New("stop walk")

type entry struct {
	node     Node
	parent   NodeID
	children []NodeID
}

// Tree is a layout tree. Nodes are stored in a table and reference each other
// by NodeID. A tree has exactly one root, which is never removed.
type Tree struct {
	entries []entry
	// DefaultStyle holds the rules of the built-in stylesheet.
	DefaultStyle css.GlobalStyle
	// AuthorStyles holds the rules of the document's stylesheets.
	// They are kept for reference and are not applied to nodes.
	AuthorStyles []css.GlobalStyle
}

// NewTree creates a tree consisting of a root node only.
func NewTree() *Tree {
	return &Tree{
		entries: []entry{{node: RootNode(), parent: NoNode}},
	}
}

// Root returns the ID of the root node.
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes in t.
func (t *Tree) Len() int {
	return len(t.entries)
}

// Node returns the node for id, or nil if id is not part of t.
// The node may be modified in place.
func (t *Tree) Node(id NodeID) *Node {
	if !t.valid(id) {
		return nil
	}
	return &t.entries[id].node
}

// Parent returns the parent of node id, or NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.valid(id) {
		return NoNode
	}
	return t.entries[id].parent
}

// Children returns the children of node id, in document order.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.valid(id) {
		return nil
	}
	ch := make([]NodeID, len(t.entries[id].children))
	copy(ch, t.entries[id].children)
	return ch
}

// AppendChild adds node n as the last child of parent and returns its ID.
func (t *Tree) AppendChild(parent NodeID, n Node) NodeID {
	if !t.valid(parent) {
		tracer().Errorf("cannot append child to non-existent node %d", parent)
		return NoNode
	}
	id := NodeID(len(t.entries))
	t.entries = append(t.entries, entry{node: n, parent: parent})
	t.entries[parent].children = append(t.entries[parent].children, id)
	return id
}

// Depth returns the number of ancestors of node id.
func (t *Tree) Depth(id NodeID) int {
	d := 0
	for p := t.Parent(id); p != NoNode; p = t.Parent(p) {
		d++
	}
	return d
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.entries)
}

type visit struct {
	id    NodeID
	depth int
}

// Walk visits all nodes in document order (pre-order), calling f with the ID
// and depth of each node. If f returns an error, the walk stops; ErrStopWalk
// ends the walk without reporting an error.
func (t *Tree) Walk(f func(id NodeID, depth int) error) error {
	stack := arraystack.New()
	stack.Push(visit{t.Root(), 0})
	for !stack.Empty() {
		top, _ := stack.Pop()
		v := top.(visit)
		if err := f(v.id, v.depth); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return nil
			}
			return err
		}
		children := t.entries[v.id].children
		for i := len(children) - 1; i >= 0; i-- {
			stack.Push(visit{children[i], v.depth + 1})
		}
	}
	return nil
}

// FindByTag returns the IDs of all element nodes with a given tag name,
// in document order.
func (t *Tree) FindByTag(tag string) []NodeID {
	var ids []NodeID
	t.Walk(func(id NodeID, _ int) error {
		if n := t.Node(id); !n.IsText() && n.TagName == tag {
			ids = append(ids, id)
		}
		return nil
	})
	return ids
}
