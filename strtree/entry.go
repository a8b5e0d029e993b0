package strtree

import "github.com/spatialidx/strtree/geom"

// PointEntry is a bulk-load input item for a point-leaf tree.
type PointEntry struct {
	Point geom.Point
	ID    int
}

// MBREntry is a bulk-load input item for an MBR-leaf tree. Size is an
// optional secondary count (e.g. an aggregated cluster size); it defaults
// to 0 for callers that don't need it and is only consulted by the
// size-accounting kNN overloads.
type MBREntry struct {
	MBR  geom.MBR
	ID   int
	Size int
}
