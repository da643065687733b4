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

// Package geomop implements the geomedit.Engine interface on top of the
// ctessum/geom geometry-algorithms library and its polyclip-go Boolean
// clipper. The adapter marshals container geometries into the library's
// representation, runs the numerics there, and wraps results back into
// containers; engine failures surface as empty-result sentinels, never
// as panics.
package geomop

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/vovoma/geomedit"
)

// Engine is the shipped geometry engine. It satisfies geomedit.Engine.
// An Engine may be reused across many containers, but it is not safe
// for unsynchronized use from multiple goroutines.
type Engine struct {
	// Tolerance is the coordinate tolerance used by the equality
	// predicate and by on-boundary decisions.
	Tolerance float64

	// ArcSegments is the number of straight segments per quarter
	// circle used when linearizing curved inputs and when building
	// round buffer caps and joins without an explicit segment count.
	ArcSegments int
}

// New returns an Engine with conventional defaults.
func New() *Engine {
	return &Engine{Tolerance: 1e-9, ArcSegments: 8}
}

var _ geomedit.Engine = (*Engine)(nil)

// ToLibrary marshals a container into the algorithm library's
// representation, linearizing curved kinds. It returns nil for empty or
// unrepresentable input.
func (e *Engine) ToLibrary(g geomedit.Geometry) geom.Geom {
	return e.toGeom(g)
}

// FromLibrary wraps an algorithm-library geometry into a container.
func FromLibrary(g geom.Geom) geomedit.Geometry {
	return fromGeom(g)
}

// toGeom marshals a container into the algorithm library's
// representation. Curved kinds are linearized first. Returns nil for
// empty or unrepresentable input.
func (e *Engine) toGeom(g geomedit.Geometry) geom.Geom {
	if g.IsEmpty() {
		return nil
	}
	if g.WKBType() == geomedit.KindCircularString || g.WKBType() == geomedit.KindMultiCurve {
		g = g.Linearize(e.ArcSegments)
	}
	if g.WKBType() == geomedit.KindGeometryCollection {
		var gc geom.GeometryCollection
		for _, part := range g.Parts() {
			child := e.toGeom(part)
			if child == nil {
				return nil
			}
			gc = append(gc, child)
		}
		return gc
	}
	coords := g.Coordinates()
	switch g.WKBType() {
	case geomedit.KindPoint:
		return toGeomPoint(coords[0][0][0])
	case geomedit.KindLineString:
		return geom.LineString(toGeomPoints(coords[0][0]))
	case geomedit.KindPolygon:
		return toGeomPolygon(coords[0])
	case geomedit.KindMultiPoint:
		mp := make(geom.MultiPoint, len(coords))
		for i, part := range coords {
			mp[i] = toGeomPoint(part[0][0])
		}
		return mp
	case geomedit.KindMultiLineString:
		ml := make(geom.MultiLineString, len(coords))
		for i, part := range coords {
			ml[i] = geom.LineString(toGeomPoints(part[0]))
		}
		return ml
	case geomedit.KindMultiPolygon:
		mp := make(geom.MultiPolygon, len(coords))
		for i, part := range coords {
			mp[i] = toGeomPolygon(part)
		}
		return mp
	default:
		return nil
	}
}

func toGeomPoint(c geomedit.Coord) geom.Point {
	return geom.Point{X: c.X, Y: c.Y}
}

func toGeomPoints(seq []geomedit.Coord) []geom.Point {
	out := make([]geom.Point, len(seq))
	for i, c := range seq {
		out[i] = toGeomPoint(c)
	}
	return out
}

// toGeomPolygon marshals polygon rings, normalizing winding so the
// boundary ring runs counterclockwise and holes run clockwise. Signed
// area sums in the library then subtract holes regardless of how the
// container's rings happen to be wound.
func toGeomPolygon(rings [][]geomedit.Coord) geom.Polygon {
	p := make(geom.Polygon, len(rings))
	for i, ring := range rings {
		p[i] = orientRing(toGeomPoints(ring), i == 0)
	}
	return p
}

// orientRing returns pts wound counterclockwise when ccw is true and
// clockwise otherwise, reversing in place when needed.
func orientRing(pts []geom.Point, ccw bool) []geom.Point {
	area := 0.0
	for i := 0; i+1 < len(pts); i++ {
		area += pts[i].X*pts[i+1].Y - pts[i+1].X*pts[i].Y
	}
	if area == 0 || (area > 0) == ccw {
		return pts
	}
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
	return pts
}

func fromGeomPoints(pts []geom.Point) []geomedit.Coord {
	out := make([]geomedit.Coord, len(pts))
	for i, p := range pts {
		out[i] = geomedit.Coord{X: p.X, Y: p.Y}
	}
	return out
}

// fromGeom wraps an algorithm-library result back into a container.
// Polygon results with multiple contours are regrouped into outer
// rings and holes, since the clipper reports all contours flat.
func fromGeom(g geom.Geom) geomedit.Geometry {
	switch g := g.(type) {
	case nil:
		return geomedit.Geometry{}
	case geom.Point:
		return geomedit.NewPoint(geomedit.Coord{X: g.X, Y: g.Y})
	case geom.LineString:
		return geomedit.NewLineString(fromGeomPoints(g))
	case geom.MultiPoint:
		return geomedit.NewMultiPoint(fromGeomPoints(g))
	case geom.MultiLineString:
		lines := make([][]geomedit.Coord, len(g))
		for i, l := range g {
			lines[i] = fromGeomPoints(l)
		}
		return geomedit.NewMultiLineString(lines)
	case geom.Polygon:
		return wrapContours(g)
	case geom.MultiPolygon:
		var contours geom.Polygon
		for _, p := range g {
			contours = append(contours, p...)
		}
		return wrapContours(contours)
	case geom.GeometryCollection:
		parts := make([]geomedit.Geometry, 0, len(g))
		for _, child := range g {
			parts = append(parts, fromGeom(child))
		}
		return geomedit.Collect(parts)
	default:
		return geomedit.Geometry{}
	}
}

// wrapContours sorts a flat contour list into polygons with holes. A
// contour contained in an odd number of other contours is a hole of its
// innermost container; anything else starts a new polygon part.
func wrapContours(contours geom.Polygon) geomedit.Geometry {
	type ringInfo struct {
		ring  []geomedit.Coord
		depth int
		owner int // index into outers, holes only
	}
	var rings []ringInfo
	for _, c := range contours {
		ring := closeContour(fromGeomPoints(c))
		if len(ring) < 4 {
			continue
		}
		rings = append(rings, ringInfo{ring: ring, owner: -1})
	}
	if len(rings) == 0 {
		return geomedit.Geometry{}
	}
	// Containment depth by ray casting a representative interior-ish
	// vertex against every other contour.
	for i := range rings {
		for j := range rings {
			if i == j {
				continue
			}
			if pointInRing(rings[i].ring[0], rings[j].ring) {
				rings[i].depth++
			}
		}
	}
	var outers [][][]geomedit.Coord
	outerIdx := make([]int, 0)
	for i := range rings {
		if rings[i].depth%2 == 0 {
			outers = append(outers, [][]geomedit.Coord{rings[i].ring})
			outerIdx = append(outerIdx, i)
		}
	}
	for i := range rings {
		if rings[i].depth%2 == 0 {
			continue
		}
		// Assign the hole to the deepest containing outer ring.
		best, bestDepth := -1, -1
		for oi, ri := range outerIdx {
			if pointInRing(rings[i].ring[0], rings[ri].ring) && rings[ri].depth > bestDepth {
				best, bestDepth = oi, rings[ri].depth
			}
		}
		if best >= 0 {
			outers[best] = append(outers[best], rings[i].ring)
		}
	}
	if len(outers) == 1 {
		return geomedit.NewPolygon(outers[0])
	}
	return geomedit.NewMultiPolygon(outers)
}

func closeContour(ring []geomedit.Coord) []geomedit.Coord {
	if len(ring) == 0 {
		return ring
	}
	if ring[0].X != ring[len(ring)-1].X || ring[0].Y != ring[len(ring)-1].Y {
		ring = append(ring, ring[0])
	}
	return ring
}

// pointInRing is a ray-casting point-in-ring test. Points on the edge
// are reported as outside; callers needing on-edge detection use the
// predicate helpers instead.
func pointInRing(pt geomedit.Coord, ring []geomedit.Coord) bool {
	in := false
	n := len(ring)
	for i := 0; i+1 < n; i++ {
		a, b := ring[i], ring[i+1]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < x {
				in = !in
			}
		}
	}
	return in
}

// dimension is 0 for points, 1 for lines, 2 for polygons, and the
// maximum over parts for collections; -1 for empty geometries.
func dimension(g geomedit.Geometry) int {
	switch g.Type() {
	case geomedit.PointGeometry:
		return 0
	case geomedit.LineGeometry:
		return 1
	case geomedit.PolygonGeometry:
		return 2
	}
	if g.WKBType() == geomedit.KindGeometryCollection {
		d := -1
		for _, part := range g.Parts() {
			if pd := dimension(part); pd > d {
				d = pd
			}
		}
		return d
	}
	return -1
}

func unit(dx, dy float64) (float64, float64) {
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}
	return dx / l, dy / l
}
