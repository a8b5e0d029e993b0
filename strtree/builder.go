package strtree

import "github.com/spatialidx/strtree/geom"

// BuildPoints bulk loads a tree whose leaves carry point entries, using the
// Sort-Tile-Recursive algorithm. Entries must be non-empty and share a
// common dimension; m is the per-node fanout and must be at least 2.
func BuildPoints(entries []PointEntry, m int) (*Tree, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyEntries
	}
	if m < 2 {
		return nil, ErrInvalidFanout
	}
	dim := entries[0].Point.Dim()
	for _, e := range entries {
		if e.Point.Dim() != dim {
			return nil, ErrDimensionMismatch
		}
	}

	items := make([]strItem, len(entries))
	for i, e := range entries {
		items[i] = pointItem{entry: e}
	}
	s := slabCounts(len(items), m, dim)
	groups := strPartition(items, s, 0)

	leaves := make([]*node, len(groups))
	for i, g := range groups {
		leaves[i] = makeLeafFromPoints(g)
	}

	root := buildUpperLevels(leaves, m, dim)
	return &Tree{root: root, dim: dim}, nil
}

// BuildMBRs bulk loads a tree whose leaves carry MBR entries (each with an
// id and an optional size), using the same STR algorithm as BuildPoints but
// sorting by box center instead of point coordinate.
func BuildMBRs(entries []MBREntry, m int) (*Tree, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyEntries
	}
	if m < 2 {
		return nil, ErrInvalidFanout
	}
	dim := entries[0].MBR.Dim()
	for _, e := range entries {
		if e.MBR.Dim() != dim {
			return nil, ErrDimensionMismatch
		}
	}

	items := make([]strItem, len(entries))
	for i, e := range entries {
		items[i] = mbrItem{entry: e}
	}
	s := slabCounts(len(items), m, dim)
	groups := strPartition(items, s, 0)

	leaves := make([]*node, len(groups))
	for i, g := range groups {
		leaves[i] = makeLeafFromMBRs(g)
	}

	root := buildUpperLevels(leaves, m, dim)
	return &Tree{root: root, dim: dim}, nil
}

func makeLeafFromPoints(group []strItem) *node {
	children := make([]child, len(group))
	mbr := group[0].(pointItem).entry.Point.Bounds()
	for i, it := range group {
		e := it.(pointItem).entry
		children[i] = child{kind: pointLeafChild, point: e.Point, id: e.ID}
		if i > 0 {
			mbr = geom.Combine(mbr, e.Point.Bounds())
		}
	}
	return &node{mbr: mbr, isLeaf: true, children: children}
}

func makeLeafFromMBRs(group []strItem) *node {
	children := make([]child, len(group))
	mbr := group[0].(mbrItem).entry.MBR
	for i, it := range group {
		e := it.(mbrItem).entry
		children[i] = child{kind: mbrLeafChild, mbr: e.MBR, id: e.ID, size: e.Size}
		if i > 0 {
			mbr = geom.Combine(mbr, e.MBR)
		}
	}
	return &node{mbr: mbr, isLeaf: true, children: children}
}

// buildUpperLevels repeats the grouping procedure on (MBR, *node) pairs
// until the current level's slab counts are all 1, then wraps whatever
// remains directly as the root. The slab counts are all 1 only once the
// level holds at most m nodes, so the root stays within the fanout as well;
// the final wrap applies no separate ceiling check.
func buildUpperLevels(nodes []*node, m, dim int) *node {
	for {
		n := len(nodes)
		s := slabCounts(n, m, dim)
		if allOnes(s) {
			break
		}
		items := make([]strItem, n)
		for i, nd := range nodes {
			items[i] = nodeItem{n: nd}
		}
		groups := strPartition(items, s, 0)
		next := make([]*node, len(groups))
		for i, g := range groups {
			next[i] = makeInternalNode(g)
		}
		nodes = next
	}
	return wrapRoot(nodes)
}

func makeInternalNode(group []strItem) *node {
	children := make([]child, len(group))
	first := group[0].(nodeItem).n
	mbr := first.mbr
	for i, it := range group {
		nd := it.(nodeItem).n
		children[i] = child{kind: internalChild, mbr: nd.mbr, subtree: nd}
		if i > 0 {
			mbr = geom.Combine(mbr, nd.mbr)
		}
	}
	return &node{mbr: mbr, isLeaf: false, children: children}
}

// wrapRoot folds the final level of nodes into a single root. When exactly
// one node remains, it becomes the root directly rather than being wrapped
// in a redundant single-child parent.
func wrapRoot(nodes []*node) *node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return makeInternalNode(itemsFromNodes(nodes))
}

func itemsFromNodes(nodes []*node) []strItem {
	items := make([]strItem, len(nodes))
	for i, nd := range nodes {
		items[i] = nodeItem{n: nd}
	}
	return items
}
