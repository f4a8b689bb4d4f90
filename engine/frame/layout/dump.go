package layout

import (
	"fmt"
	"io"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Dump writes a line for every node of t to w, in document order. Lines are
// indented by two spaces per level of depth.
func (t *Tree) Dump(w io.Writer) error {
	return t.Walk(func(id NodeID, depth int) error {
		_, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), t.Node(id))
		return err
	})
}

// DumpString returns the output of Dump as a string.
func (t *Tree) DumpString() string {
	var b strings.Builder
	t.Dump(&b)
	return b.String()
}

// String renders t with box-drawing characters.
func (t *Tree) String() string {
	p := tp.New()
	t.addBranches(p.AddBranch(t.Node(t.Root()).String()), t.Root())
	return p.String()
}

func (t *Tree) addBranches(p tp.Tree, id NodeID) {
	for _, ch := range t.entries[id].children {
		if len(t.entries[ch].children) == 0 {
			p.AddNode(t.Node(ch).String())
			continue
		}
		t.addBranches(p.AddBranch(t.Node(ch).String()), ch)
	}
}
