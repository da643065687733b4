/*
Copyright © 2026 the geomedit authors.
This file is part of geomedit.

geomedit is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

geomedit is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with geomedit.  If not, see <http://www.gnu.org/licenses/>.
*/

package geomop

import (
	"math"

	"github.com/ctessum/geom/op"

	"github.com/vovoma/geomedit"
)

// Area returns the planar area of polygonal geometries and 0 for
// points and lines.
func (e *Engine) Area(g geomedit.Geometry) float64 {
	if dimension(g) != 2 {
		return 0
	}
	gg := e.toGeom(g)
	if gg == nil {
		return 0
	}
	return math.Abs(op.Area(gg))
}

// Length returns the total length of line geometries and the ring
// perimeter of polygonal geometries; 0 for points.
func (e *Engine) Length(g geomedit.Geometry) float64 {
	switch dimension(g) {
	case 1:
		gg := e.toGeom(g)
		if gg == nil {
			return 0
		}
		return op.Length(gg)
	case 2:
		total := 0.0
		for _, s := range e.boundarySegments(g) {
			total += math.Hypot(s[1].X-s[0].X, s[1].Y-s[0].Y)
		}
		return total
	}
	return 0
}

// Distance returns the minimum planar distance between a and b, 0 when
// they intersect and -1 when either is empty.
func (e *Engine) Distance(a, b geomedit.Geometry) float64 {
	if a.IsEmpty() || b.IsEmpty() {
		return -1
	}
	if e.Intersects(a, b) {
		return 0
	}
	_, _, d := e.closestPair(a, b)
	return d
}

// NearestPoint returns the point on g closest to other.
func (e *Engine) NearestPoint(g, other geomedit.Geometry) geomedit.Geometry {
	if g.IsEmpty() || other.IsEmpty() {
		return geomedit.Geometry{}
	}
	pa, _, _ := e.closestPair(g, other)
	return geomedit.NewPoint(pa)
}

// ShortestLine returns the minimum-distance connector from a to b. For
// intersecting geometries the connector degenerates to a zero-length
// line at a shared point.
func (e *Engine) ShortestLine(a, b geomedit.Geometry) geomedit.Geometry {
	if a.IsEmpty() || b.IsEmpty() {
		return geomedit.Geometry{}
	}
	if e.Intersects(a, b) {
		if w, ok := e.intersectionWitness(a, b); ok {
			return geomedit.NewLineString([]geomedit.Coord{w, w})
		}
	}
	pa, pb, _ := e.closestPair(a, b)
	return geomedit.NewLineString([]geomedit.Coord{pa, pb})
}

// element is a segment primitive; a degenerate element with a == b
// represents a point.
type element struct {
	a, b geomedit.Coord
}

// elements flattens g into its segment primitives. Isolated points
// appear as degenerate segments.
func (e *Engine) elements(g geomedit.Geometry) []element {
	var out []element
	for _, part := range singleParts(g) {
		if dimension(part) == 0 {
			c := firstCoord(part)
			out = append(out, element{c, c})
			continue
		}
		for _, s := range e.boundarySegments(part) {
			out = append(out, element{s[0], s[1]})
		}
	}
	return out
}

// closestPair searches all element pairs for the closest approach,
// returning the closest point on a, the closest point on b, and their
// distance.
func (e *Engine) closestPair(a, b geomedit.Geometry) (geomedit.Coord, geomedit.Coord, float64) {
	ea, eb := e.elements(a), e.elements(b)
	best := math.Inf(1)
	var bestA, bestB geomedit.Coord
	for _, s1 := range ea {
		for _, s2 := range eb {
			pa, pb, d := segmentClosestPoints(s1, s2)
			if d < best {
				best, bestA, bestB = d, pa, pb
			}
		}
	}
	return bestA, bestB, best
}

// segmentClosestPoints computes the closest approach of two segments.
// Crossing segments report their intersection point at distance 0.
func segmentClosestPoints(s1, s2 element) (geomedit.Coord, geomedit.Coord, float64) {
	if pt, ok := segmentIntersectionPoint(s1.a, s1.b, s2.a, s2.b); ok {
		return pt, pt, 0
	}
	best := math.Inf(1)
	var bestA, bestB geomedit.Coord
	check := func(p geomedit.Coord, seg element, pOnFirst bool) {
		d, c := distToSegment(p, seg.a, seg.b)
		if d < best {
			best = d
			if pOnFirst {
				bestA, bestB = p, c
			} else {
				bestA, bestB = c, p
			}
		}
	}
	check(s1.a, s2, true)
	check(s1.b, s2, true)
	check(s2.a, s1, false)
	check(s2.b, s1, false)
	return bestA, bestB, best
}

// intersectionWitness finds one concrete shared point of two
// intersecting geometries.
func (e *Engine) intersectionWitness(a, b geomedit.Geometry) (geomedit.Coord, bool) {
	// Point members contained in the other geometry.
	for _, p := range singleParts(a) {
		if dimension(p) == 0 {
			c := firstCoord(p)
			for _, pb := range singleParts(b) {
				if e.pointWithinPart(c, pb) {
					return c, true
				}
			}
		}
	}
	for _, p := range singleParts(b) {
		if dimension(p) == 0 {
			c := firstCoord(p)
			for _, pa := range singleParts(a) {
				if e.pointWithinPart(c, pa) {
					return c, true
				}
			}
		}
	}
	// Boundary crossings.
	for _, s1 := range e.boundarySegments(a) {
		for _, s2 := range e.boundarySegments(b) {
			if pt, ok := segmentIntersectionPoint(s1[0], s1[1], s2[0], s2[1]); ok {
				return pt, true
			}
		}
	}
	// One geometry fully inside the other.
	for _, p := range singleParts(a) {
		c := firstCoord(p)
		for _, pb := range singleParts(b) {
			if e.pointWithinPart(c, pb) {
				return c, true
			}
		}
	}
	return geomedit.Coord{}, false
}
