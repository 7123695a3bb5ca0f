package minimax

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/awalterschulze/gographviz"
	"github.com/reversai/iago/game"
)

// node is one visited position in a recorded search tree.
type node struct {
	id         int
	move       game.PlayerMove // the move that led here; meaningless at the root
	hasMove    bool
	maximizing bool
	depth      Depth
	value      float32
	leaf       bool // statically evaluated
	cached     bool // answered from the cache
	cut        bool // the loop below it stopped early
	board      string
	kids       []*node
}

func (s *Search) record(parent *node, pos game.Position, move game.PlayerMove, hasMove, maximizing bool, depth Depth) *node {
	if !s.RecordTree {
		return nil
	}
	n := &node{
		id:         s.nextID,
		move:       move,
		hasMove:    hasMove,
		maximizing: maximizing,
		depth:      depth,
		board:      fmt.Sprintf("%s", pos),
	}
	s.nextID++
	if parent == nil {
		s.root = n
	} else {
		parent.kids = append(parent.kids, n)
	}
	return n
}

func (n *node) answer(value float32, leaf, cached bool) {
	if n == nil {
		return
	}
	n.value = value
	n.leaf = leaf
	n.cached = cached
}

func (n *node) cutoff() {
	if n == nil {
		return
	}
	n.cut = true
}

// dotNode is what tmpl renders a node through.
type dotNode struct {
	*node
}

func (d dotNode) ID() int { return d.id }

func (d dotNode) Move() string {
	if !d.hasMove {
		return "root"
	}
	return fmt.Sprintf("%v", d.move)
}

func (d dotNode) Role() string {
	if d.maximizing {
		return "max"
	}
	return "min"
}

func (d dotNode) Depth() string { return d.node.depth.String() }

func (d dotNode) Utility() string {
	switch {
	case d.cached:
		return fmt.Sprintf("%v (cache)", d.value)
	case d.leaf:
		return fmt.Sprintf("%v (leaf)", d.value)
	case d.cut:
		return fmt.Sprintf("%v (cutoff)", d.value)
	}
	return fmt.Sprintf("%v", d.value)
}

func (d dotNode) State() string {
	return strings.Replace(strings.TrimRight(d.board, "\n"), "\n", "<BR />", -1)
}

// ToDot dumps the most recent recorded search as a GraphViz document, one
// table-shaped node per visited position. It returns an empty string unless
// the Search was configured with RecordTree.
func (s *Search) ToDot() string {
	if s.root == nil {
		return ""
	}
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	g.SetDir(true)

	var buf bytes.Buffer
	var walk func(n *node)
	walk = func(n *node) {
		tmpl.Execute(&buf, dotNode{n})
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "none",
			"label":    buf.String(),
		}
		g.AddNode("G", fmt.Sprintf("%v", n.id), attrs)
		buf.Reset()

		for _, kid := range n.kids {
			walk(kid)
			g.AddEdge(fmt.Sprintf("%v", n.id), fmt.Sprintf("%v", kid.id), true, nil)
		}
	}
	walk(s.root)
	return g.String()
}

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Node ID</TD><TD>{{.ID}}</TD></TR>
<TR><TD>Move</TD><TD>{{.Move}}</TD></TR>
<TR><TD>Role</TD><TD>{{.Role}}</TD></TR>
<TR><TD>Depth</TD><TD>{{.Depth}}</TD></TR>
<TR><TD>Utility</TD><TD>{{.Utility}}</TD></TR>
<TR><TD>State</TD><TD>{{.State}}</TD></TR>
</TABLE>
>
`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("dot").Parse(tmplRaw))
}
