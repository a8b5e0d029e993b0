// Package strtree implements a static, bulk-loaded, multi-dimensional
// R-tree: Sort-Tile-Recursive (STR) construction from a fixed set of points
// or bounding boxes, plus range, circular, and k-nearest-neighbor queries
// over the resulting tree. Trees are immutable once built; there is no
// insert, delete, or rebalancing path.
package strtree
