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

package geomedit

// Geometry is the public container type. It holds zero or one abstract
// geometry, shared between copies made with Copy until the first
// mutation (copy-on-write). The zero value is an empty geometry.
//
// Copies made with plain assignment alias the same storage without
// adjusting the share count; use Copy wherever value semantics across
// mutation are needed.
type Geometry struct {
	s    *shape
	refs *int
}

func newGeometry(s *shape) Geometry {
	if s == nil {
		return Geometry{}
	}
	refs := 1
	return Geometry{s: s, refs: &refs}
}

// IsEmpty reports whether g holds no abstract geometry.
func (g Geometry) IsEmpty() bool {
	return g.s == nil
}

// Copy returns a new container sharing g's abstract geometry. The
// shared storage is detached on the first mutation of either copy.
func (g Geometry) Copy() Geometry {
	if g.s == nil {
		return Geometry{}
	}
	*g.refs++
	return Geometry{s: g.s, refs: g.refs}
}

// detach gives g private storage before a mutation when the abstract
// geometry is shared.
func (g *Geometry) detach() {
	if g.s == nil || *g.refs == 1 {
		return
	}
	*g.refs--
	g.s = g.s.clone()
	refs := 1
	g.refs = &refs
}

// clear drops the held geometry.
func (g *Geometry) clear() {
	if g.s != nil {
		*g.refs--
	}
	g.s = nil
	g.refs = nil
}

// Type returns the broad geometric category of g.
func (g Geometry) Type() GeometryType {
	if g.s == nil {
		return NullGeometry
	}
	return g.s.kind.geometryType()
}

// WKBType returns the variant kind of g, KindUnknown when empty.
func (g Geometry) WKBType() Kind {
	if g.s == nil {
		return KindUnknown
	}
	return g.s.kind
}

// WKBCode returns the numeric OGC WKB type code, including the Z/M
// dimensionality offsets.
func (g Geometry) WKBCode() uint32 {
	if g.s == nil {
		return 0
	}
	code := uint32(g.s.kind)
	if g.s.hasZ {
		code += 1000
	}
	if g.s.hasM {
		code += 2000
	}
	return code
}

// IsMultipart reports whether g addresses multiple parts.
func (g Geometry) IsMultipart() bool {
	return g.s != nil && g.s.kind.isMulti()
}

// Is3D reports whether coordinates carry a Z value.
func (g Geometry) Is3D() bool { return g.s != nil && g.s.hasZ }

// IsMeasured reports whether coordinates carry an M value.
func (g Geometry) IsMeasured() bool { return g.s != nil && g.s.hasM }

// VertexCount returns the number of stored coordinates, counting the
// duplicated closing vertex of each polygon ring.
func (g Geometry) VertexCount() int {
	if g.s == nil {
		return 0
	}
	return g.s.vertexCount()
}

// PartCount returns the number of parts; 1 for single-part geometries.
func (g Geometry) PartCount() int {
	if g.s == nil {
		return 0
	}
	return g.s.partCount()
}

// RingCount returns the number of rings in the given part, or 0 when
// the part does not exist or the geometry is not polygonal.
func (g Geometry) RingCount(part int) int {
	if g.s == nil || g.s.kind.geometryType() != PolygonGeometry {
		return 0
	}
	if part < 0 || part >= len(g.s.coords) {
		return 0
	}
	return len(g.s.coords[part])
}

// BoundingBox returns the 2D extent of g. The result is empty for an
// empty geometry.
func (g Geometry) BoundingBox() Rect {
	if g.s == nil {
		return Rect{XMin: 1, XMax: -1} // empty
	}
	return g.s.bounds()
}

// Equals compares two geometries coordinate-by-coordinate with the
// given tolerance. Kind, part structure, and vertex order must match.
// Engine implementations provide geometric equality that is insensitive
// to vertex order.
func (g Geometry) Equals(o Geometry, epsilon float64) bool {
	if g.s == nil || o.s == nil {
		return g.s == nil && o.s == nil
	}
	if g.s.kind != o.s.kind {
		return false
	}
	ra, rb := g.s.rings(), o.s.rings()
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		a, b := *ra[i].seq, *rb[i].seq
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if !a[j].similar(b[j], epsilon) {
				return false
			}
		}
	}
	return true
}

// Coordinates returns a deep copy of the parts → rings → coordinates
// storage. It returns nil for empty geometries and collections; use
// Parts to decompose a collection.
func (g Geometry) Coordinates() [][][]Coord {
	if g.s == nil || g.s.kind == KindGeometryCollection {
		return nil
	}
	return g.s.clone().coords
}

// Parts decomposes g into independent single-part geometries. A
// single-part geometry yields itself.
func (g Geometry) Parts() []Geometry {
	if g.s == nil {
		return nil
	}
	if g.s.kind == KindGeometryCollection {
		out := make([]Geometry, len(g.s.parts))
		for i, c := range g.s.parts {
			out[i] = newGeometry(c.clone())
		}
		return out
	}
	if !g.s.kind.isMulti() {
		return []Geometry{g.Copy()}
	}
	single := g.s.kind.singleKind()
	out := make([]Geometry, len(g.s.coords))
	for i, part := range g.s.coords {
		s := &shape{kind: single, hasZ: g.s.hasZ, hasM: g.s.hasM}
		s.coords = [][][]Coord{make([][]Coord, len(part))}
		for r, ring := range part {
			s.coords[0][r] = append([]Coord(nil), ring...)
		}
		out[i] = newGeometry(s)
	}
	return out
}

// EachCoordinate visits every stored coordinate in canonical traversal
// order. It is the hook used by draw and map-to-pixel collaborators,
// which consume the coordinate stream without the core rendering
// anything itself.
func (g Geometry) EachCoordinate(f func(id VertexID, c Coord)) {
	if g.s == nil {
		return
	}
	for _, rr := range g.s.rings() {
		for i, c := range *rr.seq {
			f(VertexID{Part: rr.part, Ring: rr.ring, Vertex: i}, c)
		}
	}
}

// NewPoint returns a point geometry.
func NewPoint(c Coord) Geometry {
	return newGeometry(&shape{
		kind:   KindPoint,
		coords: [][][]Coord{{{c}}},
	})
}

// NewPointZ returns a point geometry carrying a Z value.
func NewPointZ(c Coord) Geometry {
	g := NewPoint(c)
	g.s.hasZ = true
	return g
}

// NewLineString returns a line geometry, or an empty geometry when
// fewer than two vertices are supplied.
func NewLineString(pts []Coord) Geometry {
	if len(pts) < 2 {
		return Geometry{}
	}
	return newGeometry(&shape{
		kind:   KindLineString,
		coords: [][][]Coord{{append([]Coord(nil), pts...)}},
	})
}

// NewPolygon returns a polygon geometry. Ring 0 is the boundary ring;
// subsequent rings are holes. Unclosed rings are closed by duplicating
// the first coordinate. Returns an empty geometry when any ring has
// fewer than three distinct vertices or no ring is supplied.
func NewPolygon(rings [][]Coord) Geometry {
	if len(rings) == 0 {
		return Geometry{}
	}
	part := make([][]Coord, len(rings))
	for i, ring := range rings {
		ring = closeRing(append([]Coord(nil), ring...))
		if len(ring) < 4 {
			return Geometry{}
		}
		part[i] = ring
	}
	return newGeometry(&shape{kind: KindPolygon, coords: [][][]Coord{part}})
}

// NewMultiPoint returns a multi-point geometry, empty when no points
// are supplied.
func NewMultiPoint(pts []Coord) Geometry {
	if len(pts) == 0 {
		return Geometry{}
	}
	coords := make([][][]Coord, len(pts))
	for i, p := range pts {
		coords[i] = [][]Coord{{p}}
	}
	return newGeometry(&shape{kind: KindMultiPoint, coords: coords})
}

// NewMultiLineString returns a multi-line geometry, empty when any part
// has fewer than two vertices.
func NewMultiLineString(lines [][]Coord) Geometry {
	if len(lines) == 0 {
		return Geometry{}
	}
	coords := make([][][]Coord, len(lines))
	for i, l := range lines {
		if len(l) < 2 {
			return Geometry{}
		}
		coords[i] = [][]Coord{append([]Coord(nil), l...)}
	}
	return newGeometry(&shape{kind: KindMultiLineString, coords: coords})
}

// NewMultiPolygon returns a multi-polygon geometry, empty on malformed
// input. Rings are closed as in NewPolygon.
func NewMultiPolygon(polys [][][]Coord) Geometry {
	if len(polys) == 0 {
		return Geometry{}
	}
	coords := make([][][]Coord, len(polys))
	for p, rings := range polys {
		if len(rings) == 0 {
			return Geometry{}
		}
		coords[p] = make([][]Coord, len(rings))
		for r, ring := range rings {
			ring = closeRing(append([]Coord(nil), ring...))
			if len(ring) < 4 {
				return Geometry{}
			}
			coords[p][r] = ring
		}
	}
	return newGeometry(&shape{kind: KindMultiPolygon, coords: coords})
}

// NewCircularString returns a curved line defined by successive
// three-point arcs: vertices 0,1,2 define the first arc, 2,3,4 the
// second, and so on. The vertex count must therefore be odd and at
// least 3; otherwise an empty geometry is returned.
func NewCircularString(pts []Coord) Geometry {
	if len(pts) < 3 || len(pts)%2 == 0 {
		return Geometry{}
	}
	return newGeometry(&shape{
		kind:   KindCircularString,
		coords: [][][]Coord{{append([]Coord(nil), pts...)}},
	})
}

// NewRect returns a closed four-corner polygon covering r, or an empty
// geometry when r is empty.
func NewRect(r Rect) Geometry {
	if r.IsEmpty() {
		return Geometry{}
	}
	return NewPolygon([][]Coord{{
		{X: r.XMin, Y: r.YMin},
		{X: r.XMax, Y: r.YMin},
		{X: r.XMax, Y: r.YMax},
		{X: r.XMin, Y: r.YMax},
	}})
}

// NewFromCoordinates builds a geometry directly from parts → rings →
// coordinates storage. It is primarily for engine implementations
// wrapping computed results; malformed input yields an empty geometry.
func NewFromCoordinates(kind Kind, coords [][][]Coord) Geometry {
	switch kind {
	case KindPoint:
		if len(coords) == 1 && len(coords[0]) == 1 && len(coords[0][0]) == 1 {
			return NewPoint(coords[0][0][0])
		}
	case KindLineString:
		if len(coords) == 1 && len(coords[0]) == 1 {
			return NewLineString(coords[0][0])
		}
	case KindCircularString:
		if len(coords) == 1 && len(coords[0]) == 1 {
			return NewCircularString(coords[0][0])
		}
	case KindPolygon:
		if len(coords) == 1 {
			return NewPolygon(coords[0])
		}
	case KindMultiPoint:
		var pts []Coord
		for _, part := range coords {
			if len(part) != 1 || len(part[0]) != 1 {
				return Geometry{}
			}
			pts = append(pts, part[0][0])
		}
		return NewMultiPoint(pts)
	case KindMultiLineString, KindMultiCurve:
		lines := make([][]Coord, 0, len(coords))
		for _, part := range coords {
			if len(part) != 1 {
				return Geometry{}
			}
			lines = append(lines, part[0])
		}
		g := NewMultiLineString(lines)
		if kind == KindMultiCurve && g.s != nil {
			g.s.kind = KindMultiCurve
		}
		return g
	case KindMultiPolygon:
		return NewMultiPolygon(coords)
	}
	return Geometry{}
}

// Collect wraps a set of geometries as one container: a multi-part
// geometry when all inputs share a single-part kind, otherwise a
// geometry collection. Empty inputs are skipped; collecting nothing
// yields an empty geometry.
func Collect(gs []Geometry) Geometry {
	var kept []Geometry
	for _, g := range gs {
		if !g.IsEmpty() {
			kept = append(kept, g)
		}
	}
	if len(kept) == 0 {
		return Geometry{}
	}
	if len(kept) == 1 {
		return newGeometry(kept[0].s.clone())
	}
	uniform := true
	base := kept[0].s.kind.singleKind()
	for _, g := range kept {
		if g.s.kind.isMulti() || g.s.kind.singleKind() != base {
			uniform = false
			break
		}
	}
	if uniform && base.multiKind() != base {
		s := &shape{kind: base.multiKind(), hasZ: kept[0].s.hasZ, hasM: kept[0].s.hasM}
		for _, g := range kept {
			s.coords = append(s.coords, g.s.clone().coords...)
		}
		return newGeometry(s)
	}
	s := &shape{kind: KindGeometryCollection}
	for _, g := range kept {
		s.parts = append(s.parts, g.s.clone())
	}
	return newGeometry(s)
}

// PointXY returns the coordinate of a point geometry. ok is false when
// g is not a single point.
func (g Geometry) PointXY() (c Coord, ok bool) {
	if g.s == nil || g.s.kind != KindPoint {
		return Coord{}, false
	}
	return g.s.coords[0][0][0], true
}

// NewFromCoordList builds a geometry from a plain ordered list of 2D
// points, the exchange format used by rendering and UI collaborators: a
// single point for one coordinate, a polygon when the list is closed,
// and a line otherwise.
func NewFromCoordList(pts []Coord) Geometry {
	switch {
	case len(pts) == 0:
		return Geometry{}
	case len(pts) == 1:
		return NewPoint(pts[0])
	case ringClosed(pts) && len(pts) >= 4:
		return NewPolygon([][]Coord{pts})
	default:
		return NewLineString(pts)
	}
}

// CoordList flattens g back into the plain point-list exchange format:
// the first ring of the first part. Polygons report their boundary ring
// including the closing duplicate, so a closed list round-trips to a
// polygon and an open list to a line.
func (g Geometry) CoordList() []Coord {
	if g.s == nil {
		return nil
	}
	rings := g.s.rings()
	if len(rings) == 0 {
		return nil
	}
	return append([]Coord(nil), *rings[0].seq...)
}
