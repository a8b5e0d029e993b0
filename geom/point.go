package geom

import "math"

// Point is a coordinate vector in D-dimensional space. D is determined by
// len(Coords) and is fixed for the lifetime of the value.
type Point struct {
	Coords []float64
}

// NewPoint builds a Point from the given coordinates. The slice is used
// directly, not copied; callers should not mutate it afterwards.
func NewPoint(coords ...float64) Point {
	return Point{Coords: coords}
}

// Dim returns the point's dimensionality.
func (p Point) Dim() int { return len(p.Coords) }

// Coord returns the coordinate along dimension d.
func (p Point) Coord(d int) float64 { return p.Coords[d] }

// Equals reports whether p and q have identical coordinates.
func (p Point) Equals(q Point) bool {
	if p.Dim() != q.Dim() {
		return false
	}
	for i, c := range p.Coords {
		if c != q.Coords[i] {
			return false
		}
	}
	return true
}

func (p Point) euclideanTo(q Point) float64 {
	var sum float64
	for i, c := range p.Coords {
		d := c - q.Coords[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Bounds returns the degenerate MBR that covers only p itself, satisfying
// Bounder so Point can participate in the generic box-distance fallback.
func (p Point) Bounds() MBR {
	return MBR{Low: p, High: p}
}

// MinDist returns the minimum distance from p to other. Point-Point uses
// Euclidean distance directly; Point-MBR delegates to the box's own
// point-distance formula; any other Shape is handled via its Bounds().
func (p Point) MinDist(other Shape) float64 {
	switch o := other.(type) {
	case Point:
		return p.euclideanTo(o)
	case MBR:
		return o.minDistToPoint(p)
	default:
		return p.MinDist(boundsOf(other))
	}
}

// IsIntersect reports whether p coincides with other (a Point) or lies
// inside other (an MBR).
func (p Point) IsIntersect(other Shape) bool {
	switch o := other.(type) {
	case Point:
		return p.Equals(o)
	case MBR:
		return o.Contains(p)
	default:
		return p.IsIntersect(boundsOf(other))
	}
}
