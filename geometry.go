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

// Package geomedit holds a cheap-to-copy vector geometry container with
// fine-grained vertex, ring, and part editing. Numerical algorithms
// (predicates, overlays, buffering) are delegated to an Engine; the
// geomop package provides the engine shipped with this module.
package geomedit

import "math"

// Version gives this library's version number.
const Version = "0.9.0"

// Kind identifies the concrete variant held by a Geometry. The values
// follow the OGC WKB geometry type codes.
type Kind int

const (
	KindUnknown            Kind = 0
	KindPoint              Kind = 1
	KindLineString         Kind = 2
	KindPolygon            Kind = 3
	KindMultiPoint         Kind = 4
	KindMultiLineString    Kind = 5
	KindMultiPolygon       Kind = 6
	KindGeometryCollection Kind = 7
	KindCircularString     Kind = 8
	KindMultiCurve         Kind = 11
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPoint:
		return "MultiPoint"
	case KindMultiLineString:
		return "MultiLineString"
	case KindMultiPolygon:
		return "MultiPolygon"
	case KindGeometryCollection:
		return "GeometryCollection"
	case KindCircularString:
		return "CircularString"
	case KindMultiCurve:
		return "MultiCurve"
	default:
		return "Unknown"
	}
}

// GeometryType is the broad geometric category of a Kind.
type GeometryType int

const (
	UnknownGeometry GeometryType = iota
	PointGeometry
	LineGeometry
	PolygonGeometry
	NullGeometry
)

func (t GeometryType) String() string {
	switch t {
	case PointGeometry:
		return "Point"
	case LineGeometry:
		return "Line"
	case PolygonGeometry:
		return "Polygon"
	case NullGeometry:
		return "Null"
	default:
		return "Unknown"
	}
}

// geometryType returns the category for a kind.
func (k Kind) geometryType() GeometryType {
	switch k {
	case KindPoint, KindMultiPoint:
		return PointGeometry
	case KindLineString, KindMultiLineString, KindCircularString, KindMultiCurve:
		return LineGeometry
	case KindPolygon, KindMultiPolygon:
		return PolygonGeometry
	case KindGeometryCollection:
		return UnknownGeometry
	default:
		return UnknownGeometry
	}
}

// isMulti reports whether k addresses more than one part.
func (k Kind) isMulti() bool {
	switch k {
	case KindMultiPoint, KindMultiLineString, KindMultiPolygon,
		KindGeometryCollection, KindMultiCurve:
		return true
	}
	return false
}

// isCurved reports whether k stores arc control points rather than
// straight segments.
func (k Kind) isCurved() bool {
	return k == KindCircularString || k == KindMultiCurve
}

// singleKind returns the single-part counterpart of k.
func (k Kind) singleKind() Kind {
	switch k {
	case KindMultiPoint:
		return KindPoint
	case KindMultiLineString:
		return KindLineString
	case KindMultiPolygon:
		return KindPolygon
	case KindMultiCurve:
		return KindCircularString
	default:
		return k
	}
}

// multiKind returns the multi-part counterpart of k.
func (k Kind) multiKind() Kind {
	switch k {
	case KindPoint:
		return KindMultiPoint
	case KindLineString:
		return KindMultiLineString
	case KindPolygon:
		return KindMultiPolygon
	case KindCircularString:
		return KindMultiCurve
	default:
		return k
	}
}

// Coord is a single coordinate with optional Z and M values. Whether Z
// and M carry meaning is determined by the owning Geometry.
type Coord struct {
	X, Y, Z, M float64
}

// XY returns a 2D coordinate.
func XY(x, y float64) Coord { return Coord{X: x, Y: y} }

func (c Coord) equal2D(o Coord) bool {
	return c.X == o.X && c.Y == o.Y
}

func (c Coord) similar(o Coord, epsilon float64) bool {
	return math.Abs(c.X-o.X) <= epsilon && math.Abs(c.Y-o.Y) <= epsilon
}

// sqrDist returns the squared 2D distance to o.
func (c Coord) sqrDist(o Coord) float64 {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return dx*dx + dy*dy
}

func (c Coord) dist(o Coord) float64 {
	return math.Hypot(c.X-o.X, c.Y-o.Y)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// IsEmpty reports whether r covers no area.
func (r Rect) IsEmpty() bool {
	return r.XMax < r.XMin || r.YMax < r.YMin
}

// Contains reports whether the coordinate lies inside or on the edge
// of r.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.XMin && c.X <= r.XMax && c.Y >= r.YMin && c.Y <= r.YMax
}

// Intersects reports whether r and o share any point.
func (r Rect) Intersects(o Rect) bool {
	return r.XMin <= o.XMax && r.XMax >= o.XMin &&
		r.YMin <= o.YMax && r.YMax >= o.YMin
}

// shape is the abstract geometry representation: a tagged variant over a
// uniform parts → rings → coordinates storage.
//
//	Point:            coords[0][0][0]
//	LineString:       coords[0][0]
//	Polygon:          coords[0], ring 0 is the boundary ring
//	MultiPoint:       coords[p][0][0]
//	MultiLineString:  coords[p][0]
//	MultiPolygon:     coords[p][r]
//
// GeometryCollection stores its children in parts instead, and coords
// is unused.
type shape struct {
	kind       Kind
	hasZ, hasM bool
	coords     [][][]Coord
	parts      []*shape
}

// clone returns a deep copy of s.
func (s *shape) clone() *shape {
	if s == nil {
		return nil
	}
	o := &shape{kind: s.kind, hasZ: s.hasZ, hasM: s.hasM}
	if s.coords != nil {
		o.coords = make([][][]Coord, len(s.coords))
		for p, part := range s.coords {
			o.coords[p] = make([][]Coord, len(part))
			for r, ring := range part {
				o.coords[p][r] = append([]Coord(nil), ring...)
			}
		}
	}
	if s.parts != nil {
		o.parts = make([]*shape, len(s.parts))
		for i, c := range s.parts {
			o.parts[i] = c.clone()
		}
	}
	return o
}

// ringRef addresses one coordinate sequence inside a shape. seq points
// into the shape's storage so edits through it are visible in place.
type ringRef struct {
	part, ring int
	seq        *[]Coord
	closed     bool // polygon ring: first and last coordinate coincide
}

// rings enumerates the coordinate sequences of s in canonical traversal
// order: parts in storage order, rings within a part in storage order.
// Collection children are flattened onto consecutive part indices, so a
// multi-part child occupies one index per inner part and every ring
// keeps a distinct (part, ring) address.
func (s *shape) rings() []ringRef {
	if s == nil {
		return nil
	}
	if s.kind == KindGeometryCollection {
		var out []ringRef
		base := 0
		for _, child := range s.parts {
			next := base
			for _, rr := range child.rings() {
				rr.part += base
				if rr.part >= next {
					next = rr.part + 1
				}
				out = append(out, rr)
			}
			if next == base {
				next++ // childless child still takes a slot
			}
			base = next
		}
		return out
	}
	closed := s.kind == KindPolygon || s.kind == KindMultiPolygon
	var out []ringRef
	for p := range s.coords {
		for r := range s.coords[p] {
			out = append(out, ringRef{part: p, ring: r, seq: &s.coords[p][r], closed: closed})
		}
	}
	return out
}

// vertexCount is the total number of stored coordinates, including
// duplicated ring-closing vertices.
func (s *shape) vertexCount() int {
	n := 0
	for _, rr := range s.rings() {
		n += len(*rr.seq)
	}
	return n
}

func (s *shape) partCount() int {
	if s == nil {
		return 0
	}
	if s.kind == KindGeometryCollection {
		return len(s.parts)
	}
	return len(s.coords)
}

// bounds computes the 2D extent of s.
func (s *shape) bounds() Rect {
	r := Rect{XMin: math.Inf(1), YMin: math.Inf(1), XMax: math.Inf(-1), YMax: math.Inf(-1)}
	for _, rr := range s.rings() {
		for _, c := range *rr.seq {
			r.XMin = math.Min(r.XMin, c.X)
			r.YMin = math.Min(r.YMin, c.Y)
			r.XMax = math.Max(r.XMax, c.X)
			r.YMax = math.Max(r.YMax, c.Y)
		}
	}
	return r
}

// ringClosed reports whether the sequence starts and ends on the same
// 2D coordinate.
func ringClosed(ring []Coord) bool {
	return len(ring) >= 2 && ring[0].equal2D(ring[len(ring)-1])
}

// closeRing appends the opening coordinate when the ring is not already
// closed.
func closeRing(ring []Coord) []Coord {
	if len(ring) == 0 || ringClosed(ring) {
		return ring
	}
	return append(append([]Coord(nil), ring...), ring[0])
}

// minVertices is the structural minimum coordinate count for a sequence
// within a geometry of the given kind: 2 for a line, 4 for a closed
// polygon ring (3 distinct plus the closing duplicate).
func minVertices(closed bool) int {
	if closed {
		return 4
	}
	return 2
}
