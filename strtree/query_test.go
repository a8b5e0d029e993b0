package strtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/spatialidx/strtree/geom"
	"github.com/stretchr/testify/require"
)

func s1Entries() []PointEntry {
	return []PointEntry{
		{Point: geom.NewPoint(0, 0), ID: 1},
		{Point: geom.NewPoint(1, 1), ID: 2},
		{Point: geom.NewPoint(2, 2), ID: 3},
		{Point: geom.NewPoint(3, 3), ID: 4},
	}
}

func TestRange_ReturnsPointsInsideQuery(t *testing.T) {
	tree, err := BuildPoints(s1Entries(), 2)
	require.NoError(t, err)

	q := geom.NewMBR(geom.NewPoint(0.5, 0.5), geom.NewPoint(2.5, 2.5))
	got := resultIDs(tree.Range(q))
	require.ElementsMatch(t, []int{2, 3}, got)
}

func TestCircleRange_ReturnsPointsWithinRadius(t *testing.T) {
	tree, err := BuildPoints(s1Entries(), 2)
	require.NoError(t, err)

	got := resultIDs(tree.CircleRange(geom.NewPoint(0, 0), 1.5))
	require.ElementsMatch(t, []int{1, 2}, got)
}

func TestRangeCompletenessAgainstLinearScan(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	entries := randomPointEntries(rnd, 300)
	tree, err := BuildPoints(entries, 6)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		q := randomQueryBox(rnd)
		got := resultIDs(tree.Range(q))

		var want []int
		for _, e := range entries {
			if q.Contains(e.Point) {
				want = append(want, e.ID)
			}
		}
		require.ElementsMatch(t, want, got)
	}
}

func TestCircleCompletenessAgainstLinearScan(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	entries := randomPointEntries(rnd, 300)
	tree, err := BuildPoints(entries, 6)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		origin := geom.NewPoint(rnd.Float64()*100, rnd.Float64()*100)
		r := rnd.Float64() * 30

		got := resultIDs(tree.CircleRange(origin, r))

		var want []int
		for _, e := range entries {
			if e.Point.MinDist(origin) <= r {
				want = append(want, e.ID)
			}
		}
		require.ElementsMatch(t, want, got)
	}
}

func TestConjunctiveEquivalence(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	entries := randomPointEntries(rnd, 300)
	tree, err := BuildPoints(entries, 6)
	require.NoError(t, err)

	circles := []Circle{
		{Center: geom.NewPoint(40, 40), R: 35},
		{Center: geom.NewPoint(60, 55), R: 40},
		{Center: geom.NewPoint(50, 50), R: 20},
	}

	got := resultIDs(tree.CircleRangeConj(circles))

	want := resultIDs(tree.CircleRange(circles[0].Center, circles[0].R))
	for _, c := range circles[1:] {
		want = intersectSorted(want, resultIDs(tree.CircleRange(c.Center, c.R)))
	}

	require.ElementsMatch(t, want, got)
}

func resultIDs(results []Result) []int {
	ids := make([]int, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}

func intersectSorted(a, b []int) []int {
	sort.Ints(a)
	sort.Ints(b)
	set := make(map[int]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	var out []int
	for _, v := range a {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}

func randomQueryBox(rnd *rand.Rand) geom.MBR {
	x0, y0 := rnd.Float64()*100, rnd.Float64()*100
	x1, y1 := x0+rnd.Float64()*30, y0+rnd.Float64()*30
	return geom.NewMBR(geom.NewPoint(x0, y0), geom.NewPoint(x1, y1))
}
