package layout

import (
	"math"

	"github.com/npillmayer/ordtree/bst"
	"github.com/npillmayer/tyse/core/dimen"
)

var (
	defaultRadius dimen.DU = 24 * dimen.PT
	minRadius     dimen.DU = 12 * dimen.PT
	maxRadius     dimen.DU = 28 * dimen.PT
	emptyRadius   dimen.DU = 20 * dimen.PT
)

const (
	maxScale   = 1.2
	hGapFactor = 3.2 // horizontal gap relative to radius
	vGapFactor = 4.0 // vertical gap relative to radius
)

// Placement positions a single node.
type Placement struct {
	Node   *bst.Node
	Column int      // index of Node in the in-order sequence
	Row    int      // level of Node, 0 for the root
	X, Y   dimen.DU // center of the node
}

// Edge connects the placement of a parent node to one of its children.
type Edge struct {
	From, To Placement
}

// Layout is the result of Compute. Placements are ordered by column.
type Layout struct {
	Placements []Placement
	Radius     dimen.DU // node radius
	Width      dimen.DU // extent of the drawing, from left edge of first to right edge of last node
	Height     dimen.DU // extent of the drawing, from top of root to bottom of deepest node
	rows       int
	index      map[*bst.Node]int
}

// At returns the placement of node n, if n is part of the layout.
func (l *Layout) At(n *bst.Node) (Placement, bool) {
	if i, ok := l.index[n]; ok {
		return l.Placements[i], true
	}
	return Placement{}, false
}

// Rows returns the number of rows of the layout, which equals the depth of the tree.
func (l *Layout) Rows() int {
	return l.rows
}

// Edges returns one edge per parent-child link, ordered by the column of the child.
func (l *Layout) Edges() []Edge {
	var edges []Edge
	for _, p := range l.Placements {
		if parent, ok := l.At(p.Node.Parent()); ok {
			edges = append(edges, Edge{From: parent, To: p})
		}
	}
	return edges
}

// --- Options ---------------------------------------------------------------

type settings struct {
	radius        dimen.DU
	hGap, vGap    dimen.DU // zero: derive from radius
	fit           bool
	width, height dimen.DU
}

func (s settings) gaps() (float64, float64) {
	h, v := float64(s.hGap), float64(s.vGap)
	if s.hGap <= 0 {
		h = hGapFactor * float64(s.radius)
	}
	if s.vGap <= 0 {
		v = vGapFactor * float64(s.radius)
	}
	return h, v
}

// Option is a type to help configuring a layout computation.
type Option func(settings) settings

// Radius sets the radius of nodes. Unless set explicitly, gaps between nodes
// are derived from it. Non-positive values are ignored.
func Radius(r dimen.DU) Option {
	return func(s settings) settings {
		if r > 0 {
			s.radius = r
		}
		return s
	}
}

// Gaps sets the distance between the centers of neighbouring columns (h) and
// rows (v). Non-positive values select the default, which depends on the radius.
func Gaps(h, v dimen.DU) Option {
	return func(s settings) settings {
		s.hGap, s.vGap = h, v
		return s
	}
}

// FitInto scales and centers the drawing into an area of w × h. The scale factor is
// capped at 1.2 and the node radius is kept within 12pt…28pt. The option is
// ignored unless both w and h are positive.
func FitInto(w, h dimen.DU) Option {
	return func(s settings) settings {
		if w > 0 && h > 0 {
			s.fit, s.width, s.height = true, w, h
		}
		return s
	}
}

// --- Computation -----------------------------------------------------------

// Compute places the nodes of tree t. Without FitInto the drawing starts at the
// origin, i.e. the leftmost node and the root touch the left and top border.
func Compute(t *bst.Tree, opts ...Option) *Layout {
	s := settings{radius: defaultRadius}
	for _, option := range opts {
		s = option(s)
	}
	l := &Layout{index: make(map[*bst.Node]int)}
	if t == nil || t.IsEmpty() {
		l.Radius = emptyRadius
		return l
	}
	maxRow := 0
	t.Walk(func(n *bst.Node, level int) bool {
		l.index[n] = len(l.Placements)
		l.Placements = append(l.Placements, Placement{
			Node:   n,
			Column: len(l.Placements),
			Row:    level,
		})
		if level > maxRow {
			maxRow = level
		}
		return true
	})
	l.rows = maxRow + 1
	cols := len(l.Placements)
	r := float64(s.radius)
	hGap, vGap := s.gaps()
	offX, offY := r, r
	if s.fit {
		wu := float64(max(1, cols-1))*hGap + 2*r
		hu := float64(max(1, maxRow))*vGap + 2*r
		scale := math.Min(math.Min(float64(s.width)/wu, float64(s.height)/hu), maxScale)
		tracer().Debugf("fit %d columns × %d rows into %s × %s: scale = %.3f",
			cols, l.rows, s.width, s.height, scale)
		hGap, vGap = hGap*scale, vGap*scale
		r = math.Max(float64(minRadius), math.Min(float64(maxRadius), r*scale))
		offX = (float64(s.width)-extent(cols-1, hGap, r))/2 + r
		offY = (float64(s.height)-extent(maxRow, vGap, r))/2 + r
	}
	for i := range l.Placements {
		p := &l.Placements[i]
		p.X = du(offX + float64(p.Column)*hGap)
		p.Y = du(offY + float64(p.Row)*vGap)
	}
	l.Radius = du(r)
	l.Width = du(extent(cols-1, hGap, r))
	l.Height = du(extent(maxRow, vGap, r))
	return l
}

// extent is the length covered by n gaps plus a node's diameter.
func extent(n int, gap, r float64) float64 {
	return float64(n)*gap + 2*r
}

func du(x float64) dimen.DU {
	return dimen.DU(math.Round(x))
}
