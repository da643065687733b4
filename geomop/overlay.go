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
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/op"

	"github.com/vovoma/geomedit"
)

type overlayOp int

const (
	opIntersection overlayOp = iota
	opUnion
	opDifference
	opSymDifference
)

func (o overlayOp) libOp() op.Op {
	switch o {
	case opIntersection:
		return op.INTERSECTION
	case opUnion:
		return op.UNION
	case opDifference:
		return op.DIFFERENCE
	default:
		return op.XOR
	}
}

// overlayPolygons runs the Boolean clipper on two polygonal geometries
// and returns the raw contour set.
func (e *Engine) overlayPolygons(a, b geomedit.Geometry, o overlayOp) (geom.Polygon, bool) {
	ga, gb := e.toGeom(a), e.toGeom(b)
	if ga == nil || gb == nil {
		return nil, false
	}
	if _, ok := ga.(geom.Polygonal); !ok {
		return nil, false
	}
	if _, ok := gb.(geom.Polygonal); !ok {
		return nil, false
	}
	res, err := op.Construct(ga, gb, o.libOp())
	if err != nil {
		return nil, false
	}
	switch res := res.(type) {
	case geom.Polygon:
		return res, true
	case geom.MultiPolygon:
		var contours geom.Polygon
		for _, p := range res {
			contours = append(contours, p...)
		}
		return contours, true
	case nil:
		return nil, true
	}
	return nil, false
}

// overlayAreaOp returns the area of the overlay of a and b under o,
// 0 when the overlay is empty or fails.
func (e *Engine) overlayAreaOp(a, b geomedit.Geometry, o overlayOp) float64 {
	contours, ok := e.overlayPolygons(a, b, o)
	if !ok || len(contours) == 0 {
		return 0
	}
	return math.Abs(contours.Area())
}

// overlayArea is the shared interior area of two polygonal geometries.
func (e *Engine) overlayArea(a, b geomedit.Geometry) float64 {
	return e.overlayAreaOp(a, b, opIntersection)
}

// Intersection returns the shared portion of a and b. Polygonal pairs
// go through the Boolean clipper; line-against-polygon pairs are
// clipped segment-wise; lower-dimensional pairs reduce to their common
// points.
func (e *Engine) Intersection(a, b geomedit.Geometry) geomedit.Geometry {
	da, db := dimension(a), dimension(b)
	if da < 0 || db < 0 {
		return geomedit.Geometry{}
	}
	if da > db {
		a, b = b, a
		da, db = db, da
	}
	switch {
	case da == 2: // polygon and polygon
		contours, ok := e.overlayPolygons(a, b, opIntersection)
		if !ok {
			return geomedit.Geometry{}
		}
		return wrapContours(contours)
	case da == 1 && db == 2:
		return e.clipLine(a, b, true)
	case da == 1 && db == 1:
		return e.lineLineIntersection(a, b)
	case da == 0:
		var hits []geomedit.Geometry
		for _, p := range singleParts(a) {
			c := firstCoord(p)
			for _, pb := range singleParts(b) {
				if e.pointWithinPart(c, pb) {
					hits = append(hits, geomedit.NewPoint(c))
					break
				}
			}
		}
		return geomedit.Collect(hits)
	}
	return geomedit.Geometry{}
}

// Union returns the merged extent of a and b. Non-polygonal mixes
// collect into a multi geometry or collection.
func (e *Engine) Union(a, b geomedit.Geometry) geomedit.Geometry {
	if a.IsEmpty() {
		return b.Copy()
	}
	if b.IsEmpty() {
		return a.Copy()
	}
	if dimension(a) == 2 && dimension(b) == 2 {
		contours, ok := e.overlayPolygons(a, b, opUnion)
		if !ok {
			return geomedit.Geometry{}
		}
		return wrapContours(contours)
	}
	return geomedit.Collect([]geomedit.Geometry{a.Copy(), b.Copy()})
}

// Difference returns the portion of a not covered by b.
func (e *Engine) Difference(a, b geomedit.Geometry) geomedit.Geometry {
	if a.IsEmpty() {
		return geomedit.Geometry{}
	}
	if b.IsEmpty() || !e.Intersects(a, b) {
		return a.Copy()
	}
	da, db := dimension(a), dimension(b)
	switch {
	case da == 2 && db == 2:
		contours, ok := e.overlayPolygons(a, b, opDifference)
		if !ok {
			return geomedit.Geometry{}
		}
		return wrapContours(contours)
	case da == 1 && db == 2:
		return e.clipLine(a, b, false)
	case da == 0:
		var keep []geomedit.Geometry
		for _, p := range singleParts(a) {
			c := firstCoord(p)
			inside := false
			for _, pb := range singleParts(b) {
				if e.pointWithinPart(c, pb) {
					inside = true
					break
				}
			}
			if !inside {
				keep = append(keep, geomedit.NewPoint(c))
			}
		}
		return geomedit.Collect(keep)
	}
	if e.Within(a, b) {
		return geomedit.Geometry{}
	}
	return a.Copy()
}

// SymDifference returns the portions of a and b not shared by both.
func (e *Engine) SymDifference(a, b geomedit.Geometry) geomedit.Geometry {
	if dimension(a) == 2 && dimension(b) == 2 {
		contours, ok := e.overlayPolygons(a, b, opSymDifference)
		if !ok {
			return geomedit.Geometry{}
		}
		return wrapContours(contours)
	}
	left := e.Difference(a, b)
	right := e.Difference(b, a)
	switch {
	case left.IsEmpty():
		return right
	case right.IsEmpty():
		return left
	}
	return geomedit.Collect([]geomedit.Geometry{left, right})
}

// CombineGeometries unions a whole set. Polygonal inputs are folded
// through the clipper; uniform lower-dimensional sets become multi
// geometries; anything else becomes a collection.
func (e *Engine) CombineGeometries(gs []geomedit.Geometry) geomedit.Geometry {
	var nonEmpty []geomedit.Geometry
	allPoly := true
	for _, g := range gs {
		if g.IsEmpty() {
			continue
		}
		nonEmpty = append(nonEmpty, g)
		if dimension(g) != 2 {
			allPoly = false
		}
	}
	switch len(nonEmpty) {
	case 0:
		return geomedit.Geometry{}
	case 1:
		return nonEmpty[0].Copy()
	}
	if !allPoly {
		return geomedit.Collect(copyAll(nonEmpty))
	}
	acc := nonEmpty[0]
	for _, g := range nonEmpty[1:] {
		acc = e.Union(acc, g)
		if acc.IsEmpty() {
			return geomedit.Geometry{}
		}
	}
	return acc
}

func copyAll(gs []geomedit.Geometry) []geomedit.Geometry {
	out := make([]geomedit.Geometry, len(gs))
	for i, g := range gs {
		out[i] = g.Copy()
	}
	return out
}

// clipLine keeps the portions of line inside (or outside) the polygonal
// geometry poly, splitting segments at boundary crossings.
func (e *Engine) clipLine(line, poly geomedit.Geometry, keepInside bool) geomedit.Geometry {
	var pieces [][]geomedit.Coord
	boundary := e.boundarySegments(poly)
	inside := func(pt geomedit.Coord) bool {
		for _, pp := range singleParts(poly) {
			if e.pointWithinPart(pt, pp) {
				return true
			}
		}
		return false
	}
	for _, part := range singleParts(line) {
		seq := e.lineCoords(part)
		var current []geomedit.Coord
		flush := func() {
			if len(current) >= 2 {
				pieces = append(pieces, current)
			}
			current = nil
		}
		for i := 0; i+1 < len(seq); i++ {
			a, b := seq[i], seq[i+1]
			for _, sub := range splitSegmentAt(a, b, boundary) {
				mid := geomedit.Coord{X: (sub[0].X + sub[1].X) / 2, Y: (sub[0].Y + sub[1].Y) / 2}
				if inside(mid) == keepInside {
					if len(current) == 0 {
						current = append(current, sub[0])
					}
					current = append(current, sub[1])
				} else {
					flush()
				}
			}
		}
		flush()
	}
	switch len(pieces) {
	case 0:
		return geomedit.Geometry{}
	case 1:
		return geomedit.NewLineString(pieces[0])
	}
	return geomedit.NewMultiLineString(pieces)
}

// splitSegmentAt subdivides segment ab at every crossing with the given
// boundary segments, returning the ordered subsegments.
func splitSegmentAt(a, b geomedit.Coord, boundary [][2]geomedit.Coord) [][2]geomedit.Coord {
	ts := []float64{0, 1}
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return [][2]geomedit.Coord{{a, b}}
	}
	for _, seg := range boundary {
		pt, ok := segmentIntersectionPoint(a, b, seg[0], seg[1])
		if !ok {
			continue
		}
		t := ((pt.X-a.X)*dx + (pt.Y-a.Y)*dy) / l2
		if t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	sort.Float64s(ts)
	var out [][2]geomedit.Coord
	for i := 0; i+1 < len(ts); i++ {
		if ts[i+1]-ts[i] < 1e-12 {
			continue
		}
		p0 := geomedit.Coord{X: a.X + ts[i]*dx, Y: a.Y + ts[i]*dy}
		p1 := geomedit.Coord{X: a.X + ts[i+1]*dx, Y: a.Y + ts[i+1]*dy}
		out = append(out, [2]geomedit.Coord{p0, p1})
	}
	return out
}

// lineLineIntersection collects the crossing points of two line
// geometries as a point or multi-point.
func (e *Engine) lineLineIntersection(a, b geomedit.Geometry) geomedit.Geometry {
	sa, sb := e.boundarySegments(a), e.boundarySegments(b)
	var pts []geomedit.Coord
	for _, s1 := range sa {
		for _, s2 := range sb {
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
	switch len(pts) {
	case 0:
		return geomedit.Geometry{}
	case 1:
		return geomedit.NewPoint(pts[0])
	}
	return geomedit.NewMultiPoint(pts)
}

// Simplify runs Douglas-Peucker style simplification through the
// algorithm library. Geometries the library cannot simplify come back
// unchanged.
func (e *Engine) Simplify(g geomedit.Geometry, tolerance float64) geomedit.Geometry {
	gg := e.toGeom(g)
	if gg == nil {
		return geomedit.Geometry{}
	}
	res, err := op.Simplify(gg, tolerance)
	if err != nil {
		return g.Copy()
	}
	out := fromGeom(res)
	if out.IsEmpty() {
		return g.Copy()
	}
	return out
}

// Centroid returns the center of mass. Polygonal centroids come from
// the library; lines use the length-weighted mean of their segments and
// point sets the vertex mean.
func (e *Engine) Centroid(g geomedit.Geometry) geomedit.Geometry {
	if g.IsEmpty() {
		return geomedit.Geometry{}
	}
	switch dimension(g) {
	case 2:
		gg := e.toGeom(g)
		c, err := op.Centroid(gg)
		if err != nil {
			return geomedit.Geometry{}
		}
		return geomedit.NewPoint(geomedit.Coord{X: c.X, Y: c.Y})
	case 1:
		return e.lineCentroid(g)
	default:
		var sx, sy float64
		n := 0
		g.EachCoordinate(func(_ geomedit.VertexID, c geomedit.Coord) {
			sx += c.X
			sy += c.Y
			n++
		})
		if n == 0 {
			return geomedit.Geometry{}
		}
		return geomedit.NewPoint(geomedit.Coord{X: sx / float64(n), Y: sy / float64(n)})
	}
}

// lineCentroid is the mass centroid of a line geometry: each segment
// midpoint weighted by the segment length.
func (e *Engine) lineCentroid(g geomedit.Geometry) geomedit.Geometry {
	segs := e.boundarySegments(g)
	var sx, sy, total float64
	for _, s := range segs {
		l := math.Hypot(s[1].X-s[0].X, s[1].Y-s[0].Y)
		sx += (s[0].X + s[1].X) / 2 * l
		sy += (s[0].Y + s[1].Y) / 2 * l
		total += l
	}
	if total == 0 {
		return geomedit.NewPoint(firstCoord(g))
	}
	return geomedit.NewPoint(geomedit.Coord{X: sx / total, Y: sy / total})
}

// lineMidpoint walks half the total length along the line geometry; the
// result always lies on the line itself.
func (e *Engine) lineMidpoint(g geomedit.Geometry) geomedit.Geometry {
	segs := e.boundarySegments(g)
	total := 0.0
	for _, s := range segs {
		total += math.Hypot(s[1].X-s[0].X, s[1].Y-s[0].Y)
	}
	if total == 0 {
		return geomedit.NewPoint(firstCoord(g))
	}
	half := total / 2
	for _, s := range segs {
		l := math.Hypot(s[1].X-s[0].X, s[1].Y-s[0].Y)
		if half <= l {
			t := half / l
			return geomedit.NewPoint(geomedit.Coord{
				X: s[0].X + t*(s[1].X-s[0].X),
				Y: s[0].Y + t*(s[1].Y-s[0].Y),
			})
		}
		half -= l
	}
	last := segs[len(segs)-1]
	return geomedit.NewPoint(last[1])
}

// PointOnSurface returns a point guaranteed to lie on g.
func (e *Engine) PointOnSurface(g geomedit.Geometry) geomedit.Geometry {
	if g.IsEmpty() {
		return geomedit.Geometry{}
	}
	switch dimension(g) {
	case 2:
		gg := e.toGeom(g)
		c, err := op.PointOnSurface(gg)
		if err == nil {
			return geomedit.NewPoint(geomedit.Coord{X: c.X, Y: c.Y})
		}
	case 1:
		return e.lineMidpoint(g)
	}
	cen := e.Centroid(g)
	if !cen.IsEmpty() && e.Intersects(cen, g) {
		return cen
	}
	return geomedit.NewPoint(firstCoord(g))
}

// ConvexHull computes the convex hull of all vertices with the
// monotone-chain construction. Degenerate inputs collapse to a point
// or line.
func (e *Engine) ConvexHull(g geomedit.Geometry) geomedit.Geometry {
	if g.WKBType() == geomedit.KindCircularString || g.WKBType() == geomedit.KindMultiCurve {
		g = g.Linearize(e.ArcSegments)
	}
	var pts []geomedit.Coord
	g.EachCoordinate(func(_ geomedit.VertexID, c geomedit.Coord) {
		pts = append(pts, geomedit.Coord{X: c.X, Y: c.Y})
	})
	if len(pts) == 0 {
		return geomedit.Geometry{}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	uniq := pts[:1]
	for _, p := range pts[1:] {
		last := uniq[len(uniq)-1]
		if p.X != last.X || p.Y != last.Y {
			uniq = append(uniq, p)
		}
	}
	pts = uniq
	if len(pts) == 1 {
		return geomedit.NewPoint(pts[0])
	}
	if len(pts) == 2 {
		return geomedit.NewLineString(pts)
	}
	hull := monotoneChain(pts)
	if len(hull) < 3 {
		return geomedit.NewLineString([]geomedit.Coord{pts[0], pts[len(pts)-1]})
	}
	return geomedit.NewPolygon([][]geomedit.Coord{hull})
}

// monotoneChain is Andrew's monotone-chain hull over points sorted by
// (x, y). The returned ring is open, counterclockwise.
func monotoneChain(pts []geomedit.Coord) []geomedit.Coord {
	build := func(in []geomedit.Coord) []geomedit.Coord {
		var out []geomedit.Coord
		for _, p := range in {
			for len(out) >= 2 && cross2(out[len(out)-2], out[len(out)-1], p) <= 0 {
				out = out[:len(out)-1]
			}
			out = append(out, p)
		}
		return out
	}
	lower := build(pts)
	rev := make([]geomedit.Coord, len(pts))
	for i, p := range pts {
		rev[len(pts)-1-i] = p
	}
	upper := build(rev)
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}
