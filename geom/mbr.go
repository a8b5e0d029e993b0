package geom

import "math"

// MBR is an axis-aligned minimum bounding rectangle: Low[i] <= High[i] for
// every dimension i.
type MBR struct {
	Low, High Point
}

// NewMBR builds an MBR from two corner points. Dimensions must match.
func NewMBR(low, high Point) MBR {
	if low.Dim() != high.Dim() {
		panic(ErrDimensionMismatch)
	}
	return MBR{Low: low, High: high}
}

// Dim returns the MBR's dimensionality.
func (b MBR) Dim() int { return b.Low.Dim() }

// Bounds returns b itself, satisfying Bounder.
func (b MBR) Bounds() MBR { return b }

// Center returns the STR sort key for dimension d: low[d]+high[d], a
// monotone proxy for (low+high)/2 that avoids a division per comparison.
func (b MBR) Center(d int) float64 {
	return b.Low.Coord(d) + b.High.Coord(d)
}

// Contains reports whether p lies within b on every dimension, inclusive of
// the boundary.
func (b MBR) Contains(p Point) bool {
	for i := 0; i < b.Dim(); i++ {
		c := p.Coord(i)
		if c < b.Low.Coord(i) || c > b.High.Coord(i) {
			return false
		}
	}
	return true
}

func (b MBR) overlaps(o MBR) bool {
	for i := 0; i < b.Dim(); i++ {
		if b.Low.Coord(i) > o.High.Coord(i) || b.High.Coord(i) < o.Low.Coord(i) {
			return false
		}
	}
	return true
}

func (b MBR) minDistToPoint(p Point) float64 {
	var sum float64
	for i := 0; i < b.Dim(); i++ {
		c := p.Coord(i)
		lo, hi := b.Low.Coord(i), b.High.Coord(i)
		var gap float64
		switch {
		case c < lo:
			gap = lo - c
		case c > hi:
			gap = c - hi
		}
		sum += gap * gap
	}
	return math.Sqrt(sum)
}

func (b MBR) minDistToMBR(o MBR) float64 {
	var sum float64
	for i := 0; i < b.Dim(); i++ {
		aLo, aHi := b.Low.Coord(i), b.High.Coord(i)
		bLo, bHi := o.Low.Coord(i), o.High.Coord(i)
		var gap float64
		switch {
		case bLo > aHi:
			gap = bLo - aHi
		case aLo > bHi:
			gap = aLo - bHi
		}
		sum += gap * gap
	}
	return math.Sqrt(sum)
}

// MinDist returns the minimum distance from b to other.
func (b MBR) MinDist(other Shape) float64 {
	switch o := other.(type) {
	case Point:
		return b.minDistToPoint(o)
	case MBR:
		return b.minDistToMBR(o)
	default:
		return b.MinDist(boundsOf(other))
	}
}

// IsIntersect reports whether b overlaps other (an MBR) or contains it (a
// Point).
func (b MBR) IsIntersect(other Shape) bool {
	switch o := other.(type) {
	case Point:
		return b.Contains(o)
	case MBR:
		return b.overlaps(o)
	default:
		return b.IsIntersect(boundsOf(other))
	}
}

// Combine returns the tightest MBR enclosing both a and b.
func Combine(a, b MBR) MBR {
	if a.Dim() != b.Dim() {
		panic(ErrDimensionMismatch)
	}
	low := make([]float64, a.Dim())
	high := make([]float64, a.Dim())
	for i := range low {
		low[i] = math.Min(a.Low.Coord(i), b.Low.Coord(i))
		high[i] = math.Max(a.High.Coord(i), b.High.Coord(i))
	}
	return MBR{Low: Point{Coords: low}, High: Point{Coords: high}}
}
