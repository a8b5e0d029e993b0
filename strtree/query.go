package strtree

import "github.com/spatialidx/strtree/geom"

// search is the shared stack-based depth-first traversal behind Range,
// CircleRange, and CircleRangeConj. descend decides whether to push a given
// box's subtree onto the stack (or, for the root, whether to visit it at
// all); include decides whether a leaf child belongs in the result.
//
// An explicit stack is used instead of recursion so traversal depth isn't
// bounded by goroutine stack growth on deep or unbalanced trees.
func (t *Tree) search(descend func(geom.MBR) bool, include func(*child) bool) []Result {
	var out []Result
	if t.root == nil || len(t.root.children) == 0 {
		return out
	}
	if !descend(t.root.mbr) {
		return out
	}

	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.isLeaf {
			for i := range n.children {
				c := &n.children[i]
				if include(c) {
					out = append(out, resultFromChild(c))
				}
			}
			continue
		}
		for i := range n.children {
			c := &n.children[i]
			if descend(c.mbr) {
				stack = append(stack, c.subtree)
			}
		}
	}
	return out
}

// Range returns every leaf whose geometry intersects q: point leaves via
// q.Contains, MBR leaves via q.IsIntersect.
func (t *Tree) Range(q geom.MBR) []Result {
	descend := func(mbr geom.MBR) bool { return mbr.IsIntersect(q) }
	include := func(c *child) bool {
		if c.kind == pointLeafChild {
			return q.Contains(c.point)
		}
		return q.IsIntersect(c.mbr)
	}
	return t.search(descend, include)
}

// CircleRange returns every leaf within distance r of origin. origin may be
// any Shape (Point, MBR, or a caller-supplied shape implementing
// geom.Bounder).
func (t *Tree) CircleRange(origin geom.Shape, r float64) []Result {
	within := func(s geom.Shape) bool { return s.MinDist(origin) <= r }
	descend := func(mbr geom.MBR) bool { return within(mbr) }
	include := func(c *child) bool { return within(c.box()) }
	return t.search(descend, include)
}

// Circle is one (center, radius) constraint for CircleRangeConj.
type Circle struct {
	Center geom.Point
	R      float64
}

// CircleRangeConj returns every leaf simultaneously within all of the given
// circles, short-circuiting on the first failing center.
func (t *Tree) CircleRangeConj(circles []Circle) []Result {
	satisfiesAll := func(s geom.Shape) bool {
		for _, c := range circles {
			if s.MinDist(c.Center) > c.R {
				return false
			}
		}
		return true
	}
	descend := func(mbr geom.MBR) bool { return satisfiesAll(mbr) }
	include := func(c *child) bool { return satisfiesAll(c.box()) }
	return t.search(descend, include)
}
