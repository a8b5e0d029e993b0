package strtree

import (
	"container/heap"

	"github.com/spatialidx/strtree/geom"
)

// pqEntry is either a subtree waiting to be expanded or a leaf entry
// waiting to be reported, keyed by a distance common to both. Modeled as a
// single struct with an isNode tag rather than an interface with runtime
// casts, so the heap never needs a type switch to tell the two apart.
type pqEntry struct {
	dist    float64
	isNode  bool
	nodePtr *node
	leaf    *child
}

// pq is a min-heap of pqEntry ordered by dist, the priority queue driving
// the best-first kNN search. Grounded on the same heap.Interface shape used
// by missinglink-simplefeatures' entriesQueue and viant-sqlite-vec's
// nodeQueue/Neighbors.
type pq []pqEntry

func (q pq) Len() int            { return len(q) }
func (q pq) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q pq) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pq) Push(x interface{}) { *q = append(*q, x.(pqEntry)) }
func (q *pq) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// knnCore runs the shared best-first search behind KNN, KNNByPointFunc, and
// KNNByMBRFunc: seed the queue with the root at key 0, repeatedly dequeue
// the smallest key, stop once k results have been reported and (keepSame is
// off, or the new key strictly exceeds the last reported distance),
// otherwise expand a dequeued node (enqueuing subtrees for internal
// children, leaf entries themselves for leaf children) or report a dequeued
// leaf.
func (t *Tree) knnCore(k int, keepSame bool, nodeDist func(geom.MBR) float64, leafDist func(*child) float64, increment func(*child) int) []*child {
	if k < 0 {
		panic("strtree: k must be >= 0")
	}
	if t.root == nil {
		return nil
	}

	var q pq
	heap.Init(&q)
	heap.Push(&q, pqEntry{dist: 0, isNode: true, nodePtr: t.root})

	var results []*child
	count := 0
	lastDist := 0.0

	for q.Len() > 0 {
		top := heap.Pop(&q).(pqEntry)
		d := top.dist
		if count >= k && (!keepSame || d > lastDist) {
			break
		}

		if top.isNode {
			n := top.nodePtr
			for i := range n.children {
				c := &n.children[i]
				if n.isLeaf {
					heap.Push(&q, pqEntry{dist: leafDist(c), isNode: false, leaf: c})
				} else {
					heap.Push(&q, pqEntry{dist: nodeDist(c.mbr), isNode: true, nodePtr: c.subtree})
				}
			}
			continue
		}

		results = append(results, top.leaf)
		count += increment(top.leaf)
		lastDist = d
	}
	return results
}

// KNN returns the k entries nearest to q by Euclidean (geom.Shape) distance.
// Leaves may be points or MBRs; each report counts as 1 regardless of kind.
// With keepSame, every entry tied at the k-th smallest distance is also
// included.
func (t *Tree) KNN(q geom.Point, k int, keepSame bool) []Result {
	nodeDist := func(mbr geom.MBR) float64 { return mbr.MinDist(q) }
	leafDist := func(c *child) float64 { return c.box().MinDist(q) }
	increment := func(*child) int { return 1 }

	leaves := t.knnCore(k, keepSame, nodeDist, leafDist, increment)
	out := make([]Result, len(leaves))
	for i, c := range leaves {
		out[i] = resultFromChild(c)
	}
	return out
}

// KNNByPointFunc returns the k nearest MBR-leaf entries to q under a
// caller-supplied Point-to-MBR distance function. Each report's count
// increments by the leaf's size.
func (t *Tree) KNNByPointFunc(q geom.Point, distFunc func(geom.Point, geom.MBR) float64, k int, keepSame bool) []MBRResult {
	nodeDist := func(mbr geom.MBR) float64 { return distFunc(q, mbr) }
	leafDist := func(c *child) float64 { return distFunc(q, c.mbr) }
	increment := func(c *child) int { return c.size }

	leaves := t.knnCore(k, keepSame, nodeDist, leafDist, increment)
	out := make([]MBRResult, len(leaves))
	for i, c := range leaves {
		out[i] = MBRResult{MBR: c.mbr, ID: c.id}
	}
	return out
}

// KNNByMBRFunc returns the k nearest MBR-leaf entries to q under a
// caller-supplied MBR-to-MBR distance function. Each report's count
// increments by the leaf's size.
func (t *Tree) KNNByMBRFunc(q geom.MBR, distFunc func(geom.MBR, geom.MBR) float64, k int, keepSame bool) []MBRResult {
	nodeDist := func(mbr geom.MBR) float64 { return distFunc(q, mbr) }
	leafDist := func(c *child) float64 { return distFunc(q, c.mbr) }
	increment := func(c *child) int { return c.size }

	leaves := t.knnCore(k, keepSame, nodeDist, leafDist, increment)
	out := make([]MBRResult, len(leaves))
	for i, c := range leaves {
		out[i] = MBRResult{MBR: c.mbr, ID: c.id}
	}
	return out
}
