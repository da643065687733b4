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

	"github.com/ctessum/geom"

	"github.com/vovoma/geomedit"
)

// Equals reports coordinate equality within the engine tolerance,
// ignoring vertex order differences the library considers equivalent.
func (e *Engine) Equals(a, b geomedit.Geometry) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	ga, gb := e.toGeom(a), e.toGeom(b)
	if ga == nil || gb == nil {
		return false
	}
	return ga.Similar(gb, e.Tolerance)
}

// Disjoint is the negation of Intersects.
func (e *Engine) Disjoint(a, b geomedit.Geometry) bool {
	return !e.Intersects(a, b)
}

// Intersects reports whether a and b share at least one point.
// Collections and multi parts intersect when any pair of their single
// parts does.
func (e *Engine) Intersects(a, b geomedit.Geometry) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	if !a.BoundingBox().Intersects(b.BoundingBox()) {
		return false
	}
	for _, pa := range singleParts(a) {
		for _, pb := range singleParts(b) {
			if e.partsIntersect(pa, pb) {
				return true
			}
		}
	}
	return false
}

// IntersectsRect reports whether g reaches into the rectangle r.
func (e *Engine) IntersectsRect(g geomedit.Geometry, r geomedit.Rect) bool {
	if r.IsEmpty() {
		return false
	}
	return e.Intersects(g, geomedit.NewRect(r))
}

// Within reports whether every point of a lies in b. Boundary contact
// counts as within.
func (e *Engine) Within(a, b geomedit.Geometry) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	for _, pa := range singleParts(a) {
		if !e.partWithin(pa, b) {
			return false
		}
	}
	return true
}

// Contains is Within with the arguments swapped.
func (e *Engine) Contains(a, b geomedit.Geometry) bool {
	return e.Within(b, a)
}

// Touches reports whether a and b intersect only on their boundaries,
// with no shared interior points.
func (e *Engine) Touches(a, b geomedit.Geometry) bool {
	if !e.Intersects(a, b) {
		return false
	}
	da, db := dimension(a), dimension(b)
	switch {
	case da == 2 && db == 2:
		return e.overlayArea(a, b) <= e.Tolerance
	case da == 0:
		return e.pointTouches(firstCoord(a), b)
	case db == 0:
		return e.pointTouches(firstCoord(b), a)
	case da == 1 && db == 1:
		return e.linesTouch(a, b)
	default: // line against polygon, either order
		line, poly := a, b
		if da == 2 {
			line, poly = b, a
		}
		return !e.lineEntersInterior(line, poly)
	}
}

// Overlaps reports whether a and b have the same dimension, share
// interior points, and each has interior points the other lacks.
func (e *Engine) Overlaps(a, b geomedit.Geometry) bool {
	da, db := dimension(a), dimension(b)
	if da != db || da < 0 {
		return false
	}
	if !e.Intersects(a, b) {
		return false
	}
	switch da {
	case 2:
		return e.overlayArea(a, b) > e.Tolerance && !e.Within(a, b) && !e.Within(b, a)
	case 1:
		return e.sharedLineLength(a, b) > e.Tolerance && !e.Within(a, b) && !e.Within(b, a)
	default:
		return !e.Within(a, b) && !e.Within(b, a)
	}
}

// Crosses reports whether a and b intersect in a geometry of lower
// dimension than both, with each extending beyond the other.
func (e *Engine) Crosses(a, b geomedit.Geometry) bool {
	da, db := dimension(a), dimension(b)
	if da < 0 || db < 0 {
		return false
	}
	if !e.Intersects(a, b) {
		return false
	}
	switch {
	case da == 1 && db == 1:
		return e.properCrossingExists(a, b)
	case da == 1 && db == 2:
		return e.lineEntersInterior(a, b) && !e.Within(a, b)
	case da == 2 && db == 1:
		return e.lineEntersInterior(b, a) && !e.Within(b, a)
	case da == 0 && db >= 1:
		return e.someInSomeOut(a, b)
	case db == 0 && da >= 1:
		return e.someInSomeOut(b, a)
	}
	return false
}

// singleParts decomposes g into single-part geometries, recursing
// through collections.
func singleParts(g geomedit.Geometry) []geomedit.Geometry {
	if g.IsEmpty() {
		return nil
	}
	if !g.IsMultipart() && g.WKBType() != geomedit.KindGeometryCollection {
		return []geomedit.Geometry{g}
	}
	var out []geomedit.Geometry
	for _, part := range g.Parts() {
		out = append(out, singleParts(part)...)
	}
	return out
}

func firstCoord(g geomedit.Geometry) geomedit.Coord {
	return g.VertexAt(0)
}

// lineCoords returns the coordinate sequence of a single line part,
// linearizing curved inputs.
func (e *Engine) lineCoords(g geomedit.Geometry) []geomedit.Coord {
	if g.WKBType() == geomedit.KindCircularString {
		g = g.Linearize(e.ArcSegments)
	}
	coords := g.Coordinates()
	if coords == nil {
		return nil
	}
	return coords[0][0]
}

// cross2 returns the z component of (a->b) x (a->p).
func cross2(a, b, p geomedit.Coord) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// distToSegment returns the distance from p to segment ab and the
// closest point on the segment.
func distToSegment(p, a, b geomedit.Coord) (float64, geomedit.Coord) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y), a
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	c := geomedit.Coord{X: a.X + t*dx, Y: a.Y + t*dy}
	return math.Hypot(p.X-c.X, p.Y-c.Y), c
}

// segmentsIntersect reports whether segments pq and rs share a point,
// including endpoint contact and collinear overlap.
func segmentsIntersect(p, q, r, s geomedit.Coord) bool {
	d1 := cross2(r, s, p)
	d2 := cross2(r, s, q)
	d3 := cross2(p, q, r)
	d4 := cross2(p, q, s)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(r, s, p) {
		return true
	}
	if d2 == 0 && onSegment(r, s, q) {
		return true
	}
	if d3 == 0 && onSegment(p, q, r) {
		return true
	}
	if d4 == 0 && onSegment(p, q, s) {
		return true
	}
	return false
}

// onSegment reports whether collinear point p lies within the bounding
// box of segment ab.
func onSegment(a, b, p geomedit.Coord) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// properIntersection returns the crossing point of segments pq and rs
// when their interiors cross transversally.
func properIntersection(p, q, r, s geomedit.Coord) (geomedit.Coord, bool) {
	d1 := cross2(r, s, p)
	d2 := cross2(r, s, q)
	d3 := cross2(p, q, r)
	d4 := cross2(p, q, s)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		t := d1 / (d1 - d2)
		return geomedit.Coord{X: p.X + t*(q.X-p.X), Y: p.Y + t*(q.Y-p.Y)}, true
	}
	return geomedit.Coord{}, false
}

// segmentIntersectionPoint returns a witness point where segments pq
// and rs meet, covering endpoint contact and collinear overlap as well
// as proper crossings.
func segmentIntersectionPoint(p, q, r, s geomedit.Coord) (geomedit.Coord, bool) {
	if pt, ok := properIntersection(p, q, r, s); ok {
		return pt, true
	}
	for _, c := range []struct {
		pt   geomedit.Coord
		a, b geomedit.Coord
	}{{p, r, s}, {q, r, s}, {r, p, q}, {s, p, q}} {
		if cross2(c.a, c.b, c.pt) == 0 && onSegment(c.a, c.b, c.pt) {
			return c.pt, true
		}
	}
	return geomedit.Coord{}, false
}

// pointWithinPart reports whether pt lies on or in the single part g.
func (e *Engine) pointWithinPart(pt geomedit.Coord, g geomedit.Geometry) bool {
	switch dimension(g) {
	case 0:
		o := firstCoord(g)
		return math.Hypot(pt.X-o.X, pt.Y-o.Y) <= e.Tolerance
	case 1:
		return e.pointOnLine(pt, g)
	case 2:
		poly, ok := e.toGeom(g).(geom.Polygonal)
		if !ok {
			return false
		}
		return toGeomPoint(pt).Within(poly) != geom.Outside
	}
	return false
}

func (e *Engine) pointOnLine(pt geomedit.Coord, line geomedit.Geometry) bool {
	seq := e.lineCoords(line)
	for i := 0; i+1 < len(seq); i++ {
		if d, _ := distToSegment(pt, seq[i], seq[i+1]); d <= e.Tolerance {
			return true
		}
	}
	return false
}

// partWithin reports whether the single part pa lies entirely in b.
func (e *Engine) partWithin(pa, b geomedit.Geometry) bool {
	switch dimension(pa) {
	case 0:
		pt := firstCoord(pa)
		for _, pb := range singleParts(b) {
			if e.pointWithinPart(pt, pb) {
				return true
			}
		}
		return false
	case 1:
		return e.lineWithin(pa, b)
	case 2:
		if dimension(b) != 2 {
			return false
		}
		// Containment holds when clipping a by b removes nothing.
		return e.overlayAreaOp(pa, b, opDifference) <= e.Tolerance && !pa.IsEmpty()
	}
	return false
}

// lineWithin checks vertex containment plus segment midpoints, which
// catches segments that leave and re-enter a concave container.
func (e *Engine) lineWithin(line, b geomedit.Geometry) bool {
	seq := e.lineCoords(line)
	if len(seq) == 0 {
		return false
	}
	inContainer := func(pt geomedit.Coord) bool {
		for _, pb := range singleParts(b) {
			if e.pointWithinPart(pt, pb) {
				return true
			}
		}
		return false
	}
	for i, c := range seq {
		if !inContainer(c) {
			return false
		}
		if i+1 < len(seq) {
			mid := geomedit.Coord{X: (c.X + seq[i+1].X) / 2, Y: (c.Y + seq[i+1].Y) / 2}
			if !inContainer(mid) {
				return false
			}
		}
	}
	return true
}

// partsIntersect decides intersection for two single-part geometries.
func (e *Engine) partsIntersect(a, b geomedit.Geometry) bool {
	da, db := dimension(a), dimension(b)
	if da > db {
		a, b = b, a
		da, db = db, da
	}
	switch {
	case da == 0:
		return e.pointWithinPart(firstCoord(a), b)
	case da == 1 && db == 1:
		sa, sb := e.lineCoords(a), e.lineCoords(b)
		for i := 0; i+1 < len(sa); i++ {
			for j := 0; j+1 < len(sb); j++ {
				if segmentsIntersect(sa[i], sa[i+1], sb[j], sb[j+1]) {
					return true
				}
			}
		}
		return false
	case da == 1 && db == 2:
		if e.pointWithinPart(e.lineCoords(a)[0], b) {
			return true
		}
		return e.boundariesIntersect(a, b)
	default: // polygon against polygon
		if e.pointWithinPart(firstCoord(a), b) || e.pointWithinPart(firstCoord(b), a) {
			return true
		}
		if e.overlayArea(a, b) > 0 {
			return true
		}
		return e.boundariesIntersect(a, b)
	}
}

// boundarySegments yields the ring and line segments of g.
func (e *Engine) boundarySegments(g geomedit.Geometry) [][2]geomedit.Coord {
	if g.WKBType() == geomedit.KindCircularString || g.WKBType() == geomedit.KindMultiCurve {
		g = g.Linearize(e.ArcSegments)
	}
	var segs [][2]geomedit.Coord
	coords := g.Coordinates()
	for _, part := range coords {
		for _, ring := range part {
			for i := 0; i+1 < len(ring); i++ {
				segs = append(segs, [2]geomedit.Coord{ring[i], ring[i+1]})
			}
		}
	}
	return segs
}

func (e *Engine) boundariesIntersect(a, b geomedit.Geometry) bool {
	sa, sb := e.boundarySegments(a), e.boundarySegments(b)
	for _, s1 := range sa {
		for _, s2 := range sb {
			if segmentsIntersect(s1[0], s1[1], s2[0], s2[1]) {
				return true
			}
		}
	}
	return false
}

// pointTouches reports whether pt meets g only on g's boundary.
func (e *Engine) pointTouches(pt geomedit.Coord, g geomedit.Geometry) bool {
	for _, pg := range singleParts(g) {
		switch dimension(pg) {
		case 2:
			poly, ok := e.toGeom(pg).(geom.Polygonal)
			if !ok {
				continue
			}
			switch toGeomPoint(pt).Within(poly) {
			case geom.Inside:
				return false
			case geom.OnEdge:
				return true
			}
		case 1:
			seq := e.lineCoords(pg)
			if len(seq) < 2 || !e.pointOnLine(pt, pg) {
				continue
			}
			first, last := seq[0], seq[len(seq)-1]
			atEnd := math.Hypot(pt.X-first.X, pt.Y-first.Y) <= e.Tolerance ||
				math.Hypot(pt.X-last.X, pt.Y-last.Y) <= e.Tolerance
			if !atEnd {
				return false
			}
			return true
		}
	}
	return false
}

// linesTouch reports boundary-only contact between two line geometries:
// every meeting is at an endpoint and no interiors overlap collinearly.
func (e *Engine) linesTouch(a, b geomedit.Geometry) bool {
	if e.sharedLineLength(a, b) > e.Tolerance {
		return false
	}
	sa, sb := e.boundarySegments(a), e.boundarySegments(b)
	ends := lineEndpoints(e, a)
	ends = append(ends, lineEndpoints(e, b)...)
	found := false
	for _, s1 := range sa {
		for _, s2 := range sb {
			pt, ok := segmentIntersectionPoint(s1[0], s1[1], s2[0], s2[1])
			if !ok {
				continue
			}
			atEnd := false
			for _, end := range ends {
				if math.Hypot(pt.X-end.X, pt.Y-end.Y) <= e.Tolerance {
					atEnd = true
					break
				}
			}
			if !atEnd {
				return false
			}
			found = true
		}
	}
	return found
}

func lineEndpoints(e *Engine, g geomedit.Geometry) []geomedit.Coord {
	var out []geomedit.Coord
	for _, part := range singleParts(g) {
		seq := e.lineCoords(part)
		if len(seq) >= 2 {
			out = append(out, seq[0], seq[len(seq)-1])
		}
	}
	return out
}

// lineEntersInterior reports whether any point of line lies strictly
// inside the polygonal geometry poly.
func (e *Engine) lineEntersInterior(line, poly geomedit.Geometry) bool {
	strictlyInside := func(pt geomedit.Coord) bool {
		for _, pp := range singleParts(poly) {
			pg, ok := e.toGeom(pp).(geom.Polygonal)
			if !ok {
				continue
			}
			if toGeomPoint(pt).Within(pg) == geom.Inside {
				return true
			}
		}
		return false
	}
	for _, part := range singleParts(line) {
		seq := e.lineCoords(part)
		for i, c := range seq {
			if strictlyInside(c) {
				return true
			}
			if i+1 < len(seq) {
				mid := geomedit.Coord{X: (c.X + seq[i+1].X) / 2, Y: (c.Y + seq[i+1].Y) / 2}
				if strictlyInside(mid) {
					return true
				}
			}
		}
	}
	return false
}

// properCrossingExists reports a transversal interior crossing between
// two line geometries.
func (e *Engine) properCrossingExists(a, b geomedit.Geometry) bool {
	sa, sb := e.boundarySegments(a), e.boundarySegments(b)
	for _, s1 := range sa {
		for _, s2 := range sb {
			if _, ok := properIntersection(s1[0], s1[1], s2[0], s2[1]); ok {
				return true
			}
		}
	}
	return false
}

// someInSomeOut reports whether the point geometry pts has at least one
// member inside g and one outside, the multipoint crossing rule.
func (e *Engine) someInSomeOut(pts, g geomedit.Geometry) bool {
	in, out := false, false
	for _, p := range singleParts(pts) {
		c := firstCoord(p)
		hit := false
		for _, pg := range singleParts(g) {
			if e.pointWithinPart(c, pg) {
				hit = true
				break
			}
		}
		if hit {
			in = true
		} else {
			out = true
		}
	}
	return in && out
}

// sharedLineLength approximates the length of collinear overlap between
// two line geometries by walking segment pairs.
func (e *Engine) sharedLineLength(a, b geomedit.Geometry) float64 {
	total := 0.0
	sa, sb := e.boundarySegments(a), e.boundarySegments(b)
	for _, s1 := range sa {
		for _, s2 := range sb {
			total += collinearOverlap(s1[0], s1[1], s2[0], s2[1])
		}
	}
	return total
}

// collinearOverlap returns the overlap length of two collinear
// segments, 0 when they are not collinear.
func collinearOverlap(p, q, r, s geomedit.Coord) float64 {
	if cross2(p, q, r) != 0 || cross2(p, q, s) != 0 {
		return 0
	}
	dx, dy := q.X-p.X, q.Y-p.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0
	}
	ux, uy := dx/l, dy/l
	proj := func(c geomedit.Coord) float64 {
		return (c.X-p.X)*ux + (c.Y-p.Y)*uy
	}
	t0, t1 := proj(r), proj(s)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	lo := math.Max(0, t0)
	hi := math.Min(l, t1)
	if hi <= lo {
		return 0
	}
	return hi - lo
}
