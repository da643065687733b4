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

	"github.com/vovoma/geomedit"
)

// Split divides g along the cut line. Polygonal geometries are parted
// into the regions left and right of the cut; line geometries are
// severed at each crossing. The returned test points are the places
// where the cut meets g's boundary; topological-editing callers
// re-check those against adjacent features. ok is false when the cut
// misses or fails to divide g. g itself is never modified.
func (e *Engine) Split(g geomedit.Geometry, cut geomedit.Geometry) ([]geomedit.Geometry, []geomedit.Coord, bool) {
	if g.IsEmpty() || cut.IsEmpty() || dimension(cut) != 1 {
		return nil, nil, false
	}
	testPoints := e.cutCrossings(g, cut)
	if len(testPoints) == 0 {
		return nil, nil, false
	}
	switch dimension(g) {
	case 2:
		parts, ok := e.splitPolygon(g, cut)
		if !ok {
			return nil, nil, false
		}
		return parts, testPoints, true
	case 1:
		parts, ok := e.splitLine(g, testPoints)
		if !ok {
			return nil, nil, false
		}
		return parts, testPoints, true
	}
	return nil, nil, false
}

// cutCrossings collects the distinct points where the cut line meets
// g's boundary segments.
func (e *Engine) cutCrossings(g, cut geomedit.Geometry) []geomedit.Coord {
	var pts []geomedit.Coord
	for _, s1 := range e.boundarySegments(cut) {
		for _, s2 := range e.boundarySegments(g) {
			pt, ok := segmentIntersectionPoint(s1[0], s1[1], s2[0], s2[1])
			if !ok {
				continue
			}
			dup := false
			for _, p := range pts {
				if math.Hypot(p.X-pt.X, p.Y-pt.Y) <= e.Tolerance {
					dup = true
					break
				}
			}
			if !dup {
				pts = append(pts, pt)
			}
		}
	}
	return pts
}

// splitPolygon parts a polygonal geometry into the regions on either
// side of the cut. The cut polyline is extended well past the geometry
// at both ends, closed into a region covering everything left of it,
// and the two sides fall out of an intersection and a difference.
func (e *Engine) splitPolygon(g, cut geomedit.Geometry) ([]geomedit.Geometry, bool) {
	cutSeq := dedupe(e.lineCoords(singleParts(cut)[0]))
	if len(cutSeq) < 2 {
		return nil, false
	}
	region := leftRegion(cutSeq, g.BoundingBox())
	if region.IsEmpty() {
		return nil, false
	}
	left := e.Intersection(g, region)
	right := e.Difference(g, region)
	if left.IsEmpty() || right.IsEmpty() {
		return nil, false
	}
	var parts []geomedit.Geometry
	for _, p := range singleParts(left) {
		parts = append(parts, p)
	}
	for _, p := range singleParts(right) {
		parts = append(parts, p)
	}
	if len(parts) < 2 {
		return nil, false
	}
	return parts, true
}

// leftRegion builds a polygon covering the area to the left of the cut
// polyline. The polyline is extended beyond the geometry extent at both
// ends and closed by corner points far off to the left.
func leftRegion(cutSeq []geomedit.Coord, bounds geomedit.Rect) geomedit.Geometry {
	diag := math.Hypot(bounds.XMax-bounds.XMin, bounds.YMax-bounds.YMin)
	cutLen := 0.0
	for i := 0; i+1 < len(cutSeq); i++ {
		cutLen += math.Hypot(cutSeq[i+1].X-cutSeq[i].X, cutSeq[i+1].Y-cutSeq[i].Y)
	}
	ext := 2*diag + cutLen + 1
	far := 10 * ext

	first, second := cutSeq[0], cutSeq[1]
	n := len(cutSeq)
	penult, last := cutSeq[n-2], cutSeq[n-1]

	ux, uy := unit(first.X-second.X, first.Y-second.Y)
	start := geomedit.Coord{X: first.X + ux*ext, Y: first.Y + uy*ext}
	ux, uy = unit(last.X-penult.X, last.Y-penult.Y)
	end := geomedit.Coord{X: last.X + ux*ext, Y: last.Y + uy*ext}

	// Left normals of the extended end segments give the closure
	// direction.
	n1x, n1y := leftNormal(start, second)
	n2x, n2y := leftNormal(penult, end)

	ring := make([]geomedit.Coord, 0, len(cutSeq)+4)
	ring = append(ring, start)
	ring = append(ring, cutSeq[1:n-1]...)
	ring = append(ring, end)
	ring = append(ring, geomedit.Coord{X: end.X + n2x*far, Y: end.Y + n2y*far})
	ring = append(ring, geomedit.Coord{X: start.X + n1x*far, Y: start.Y + n1y*far})
	return geomedit.NewPolygon([][]geomedit.Coord{ring})
}

// splitLine severs a line geometry at the given crossing points.
func (e *Engine) splitLine(g geomedit.Geometry, crossings []geomedit.Coord) ([]geomedit.Geometry, bool) {
	var parts []geomedit.Geometry
	for _, part := range singleParts(g) {
		seq := e.lineCoords(part)
		var current []geomedit.Coord
		flush := func() {
			if len(current) >= 2 {
				parts = append(parts, geomedit.NewLineString(current))
			}
			current = nil
		}
		for i := 0; i+1 < len(seq); i++ {
			a, b := seq[i], seq[i+1]
			if len(current) == 0 {
				current = append(current, a)
			}
			for _, sub := range splitSegmentAtPoints(a, b, crossings, e.Tolerance) {
				current = append(current, sub)
				flush()
				current = []geomedit.Coord{sub}
			}
			current = append(current, b)
			// Crossings that land exactly on an interior vertex sever
			// the line there too.
			if i+1 < len(seq)-1 {
				for _, p := range crossings {
					if math.Hypot(p.X-b.X, p.Y-b.Y) <= e.Tolerance {
						flush()
						current = []geomedit.Coord{b}
						break
					}
				}
			}
		}
		flush()
	}
	if len(parts) < 2 {
		return nil, false
	}
	return parts, true
}

// splitSegmentAtPoints returns the crossing points lying strictly
// inside segment ab, ordered along the segment.
func splitSegmentAtPoints(a, b geomedit.Coord, pts []geomedit.Coord, tol float64) []geomedit.Coord {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return nil
	}
	type hit struct {
		t  float64
		pt geomedit.Coord
	}
	var hits []hit
	for _, p := range pts {
		d, _ := distToSegment(p, a, b)
		if d > tol {
			continue
		}
		t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
		if t > 1e-9 && t < 1-1e-9 {
			hits = append(hits, hit{t, p})
		}
	}
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].t < hits[j-1].t; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	out := make([]geomedit.Coord, len(hits))
	for i, h := range hits {
		out[i] = h.pt
	}
	return out
}
