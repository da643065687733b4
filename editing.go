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

// AddRingResult reports the outcome of AddRing. Anything other than
// AddRingSuccess leaves the container unchanged.
type AddRingResult int

const (
	AddRingSuccess AddRingResult = iota
	AddRingWrongGeometryType
	AddRingNotClosed
	AddRingNotValid
	AddRingNotDisjoint
	AddRingNoContainingPolygon
)

func (r AddRingResult) String() string {
	switch r {
	case AddRingSuccess:
		return "success"
	case AddRingWrongGeometryType:
		return "wrong geometry type"
	case AddRingNotClosed:
		return "ring not closed"
	case AddRingNotValid:
		return "ring not valid"
	case AddRingNotDisjoint:
		return "ring not disjoint"
	case AddRingNoContainingPolygon:
		return "no containing polygon found"
	default:
		return "unknown"
	}
}

// AddPartResult reports the outcome of AddPart. Anything other than
// AddPartSuccess leaves the container unchanged.
type AddPartResult int

const (
	AddPartSuccess AddPartResult = iota
	AddPartNotMultipart
	AddPartNotValid
	AddPartNotDisjoint
)

func (r AddPartResult) String() string {
	switch r {
	case AddPartSuccess:
		return "success"
	case AddPartNotMultipart:
		return "not multipart"
	case AddPartNotValid:
		return "part not valid"
	case AddPartNotDisjoint:
		return "part not disjoint"
	default:
		return "unknown"
	}
}

// InsertVertex inserts a new coordinate before the flat vertex index
// before. An index equal to the total vertex count appends to the last
// ring or part. It returns false, without mutating, when the container
// is a bare point or the index is outside the addressable range.
func (g *Geometry) InsertVertex(x, y float64, before int) bool {
	if g.s == nil || g.s.kind == KindPoint || before < 0 {
		return false
	}
	total := g.s.vertexCount()
	if before > total {
		return false
	}
	if g.s.kind == KindMultiPoint {
		g.detach()
		part := [][]Coord{{{X: x, Y: y}}}
		if before >= len(g.s.coords) {
			g.s.coords = append(g.s.coords, part)
			return true
		}
		g.s.coords = append(g.s.coords[:before],
			append([][][]Coord{part}, g.s.coords[before:]...)...)
		return true
	}
	g.detach()
	rings := g.s.rings()
	if len(rings) == 0 {
		return false
	}
	rr := rings[len(rings)-1]
	pos := len(*rr.seq)
	if before < total {
		n := before
		for _, cand := range rings {
			if n < len(*cand.seq) {
				rr, pos = cand, n
				break
			}
			n -= len(*cand.seq)
		}
	}
	seq := *rr.seq
	c := Coord{X: x, Y: y}
	if rr.closed && ringClosed(seq) {
		last := len(seq) - 1
		switch {
		case pos == 0:
			// New first vertex; keep the ring closed by moving the
			// duplicated closing vertex with it.
			seq = append([]Coord{c}, seq...)
			seq[len(seq)-1] = c
		case pos >= last:
			// Append: insert before the closing duplicate.
			seq = append(seq[:last], append([]Coord{c}, seq[last:]...)...)
		default:
			seq = append(seq[:pos], append([]Coord{c}, seq[pos:]...)...)
		}
	} else {
		seq = append(seq[:pos], append([]Coord{c}, seq[pos:]...)...)
	}
	*rr.seq = seq
	return true
}

// MoveVertex replaces the coordinate at the given flat index. Moving
// the shared start/end vertex of a closed ring moves both copies.
func (g *Geometry) MoveVertex(c Coord, at int) bool {
	if _, _, ok := g.vertexRing(at); !ok {
		return false
	}
	g.detach()
	rr, pos, _ := g.vertexRing(at)
	seq := *rr.seq
	seq[pos] = c
	if rr.closed && (pos == 0 || pos == len(seq)-1) {
		seq[0] = c
		seq[len(seq)-1] = c
	}
	return true
}

// DeleteVertex removes the coordinate at the given flat index. It
// fails, without mutating, when the index is invalid, the container is
// a point, or removal would drop a line below 2 vertices or a polygon
// ring below 4 coordinates.
func (g *Geometry) DeleteVertex(at int) bool {
	if g.s == nil || g.s.kind == KindPoint {
		return false
	}
	if g.s.kind == KindMultiPoint {
		if at < 0 || at >= len(g.s.coords) || len(g.s.coords) == 1 {
			return false
		}
		g.detach()
		g.s.coords = append(g.s.coords[:at], g.s.coords[at+1:]...)
		return true
	}
	rr, pos, ok := g.vertexRing(at)
	if !ok {
		return false
	}
	if len(*rr.seq)-1 < minVertices(rr.closed) {
		return false
	}
	g.detach()
	rr, pos, _ = g.vertexRing(at)
	seq := *rr.seq
	if rr.closed && ringClosed(seq) && (pos == 0 || pos == len(seq)-1) {
		// Deleting the shared start/end vertex: drop the first
		// coordinate and re-close on the new first vertex.
		seq = seq[1:]
		seq[len(seq)-1] = seq[0]
	} else {
		seq = append(seq[:pos], seq[pos+1:]...)
	}
	*rr.seq = seq
	return true
}

// VertexAt returns the coordinate at the given flat index, or the
// origin sentinel (0, 0) when the index is invalid. Callers that need
// to distinguish a real point at the origin from an invalid index must
// validate the index separately.
func (g Geometry) VertexAt(at int) Coord {
	rr, pos, ok := g.vertexRing(at)
	if !ok {
		return Coord{}
	}
	return (*rr.seq)[pos]
}

// AdjacentVertices returns the flat indexes of the neighbors of the
// vertex at the given flat index. A missing neighbor at the open end of
// a line is -1. At the shared start/end vertex of a closed ring the
// duplicated closing vertex is skipped, so the reported neighbors are
// the ring's true adjacent distinct vertices.
func (g Geometry) AdjacentVertices(at int) (before, after int) {
	before, after = -1, -1
	if g.s == nil || at < 0 {
		return
	}
	base := 0
	for _, rr := range g.s.rings() {
		seq := *rr.seq
		if at >= base+len(seq) {
			base += len(seq)
			continue
		}
		pos := at - base
		last := len(seq) - 1
		if rr.closed && ringClosed(seq) && last >= 2 {
			if pos == 0 || pos == last {
				return base + last - 1, base + 1
			}
			before = base + pos - 1
			if pos == last-1 {
				after = base
			} else {
				after = base + pos + 1
			}
			return
		}
		if pos > 0 {
			before = base + pos - 1
		}
		if pos < last {
			after = base + pos + 1
		}
		return
	}
	return
}

// ClosestVertexWithContext finds the stored vertex nearest to pt. It
// returns the squared distance and the flat vertex index, or (-1, -1)
// for an empty geometry.
func (g Geometry) ClosestVertexWithContext(pt Coord) (sqrDist float64, atVertex int) {
	sqrDist, atVertex = -1, -1
	if g.s == nil {
		return
	}
	n := 0
	for _, rr := range g.s.rings() {
		for _, c := range *rr.seq {
			if d := pt.sqrDist(c); atVertex < 0 || d < sqrDist {
				sqrDist, atVertex = d, n
			}
			n++
		}
	}
	return
}

// ClosestVertex finds the stored vertex nearest to pt, additionally
// reporting its coordinate and neighbor indexes. sqrDist is -1 for an
// empty geometry.
func (g Geometry) ClosestVertex(pt Coord) (c Coord, atVertex, beforeVertex, afterVertex int, sqrDist float64) {
	sqrDist, atVertex = g.ClosestVertexWithContext(pt)
	if atVertex < 0 {
		return Coord{}, -1, -1, -1, -1
	}
	beforeVertex, afterVertex = g.AdjacentVertices(atVertex)
	return g.VertexAt(atVertex), atVertex, beforeVertex, afterVertex, sqrDist
}

// closestPointOnSegment projects pt onto the segment a→b.
func closestPointOnSegment(pt, a, b Coord) Coord {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return a
	}
	t := ((pt.X-a.X)*dx + (pt.Y-a.Y)*dy) / l2
	if t < 0 {
		return a
	} else if t > 1 {
		return b
	}
	return Coord{X: a.X + t*dx, Y: a.Y + t*dy}
}

// ClosestSegmentWithContext finds the segment nearest to pt over all
// parts and rings. It returns the squared distance (-1 for empty or
// point geometries), the interpolated nearest point on the segment, the
// flat index of the vertex after the segment, and the side of the
// segment pt lies on: negative for left of the segment direction,
// positive for right. A point exactly on the segment line reports side
// 0.
func (g Geometry) ClosestSegmentWithContext(pt Coord) (sqrDist float64, minDistPoint Coord, afterVertex int, leftOf int) {
	sqrDist, afterVertex = -1, -1
	if g.s == nil || g.s.kind.geometryType() == PointGeometry {
		return
	}
	base := 0
	for _, rr := range g.s.rings() {
		seq := *rr.seq
		for i := 0; i+1 < len(seq); i++ {
			cp := closestPointOnSegment(pt, seq[i], seq[i+1])
			d := pt.sqrDist(cp)
			if afterVertex < 0 || d < sqrDist {
				sqrDist = d
				minDistPoint = cp
				afterVertex = base + i + 1
				cross := (seq[i+1].X-seq[i].X)*(pt.Y-seq[i].Y) -
					(seq[i+1].Y-seq[i].Y)*(pt.X-seq[i].X)
				switch {
				case cross > 0:
					leftOf = -1
				case cross < 0:
					leftOf = 1
				default:
					leftOf = 0
				}
			}
		}
		base += len(seq)
	}
	return
}

// outerRingGeometry wraps the boundary ring of part p as a polygon.
func (g Geometry) outerRingGeometry(p int) Geometry {
	return NewPolygon([][]Coord{g.s.coords[p][0]})
}

// AddRing inserts a new interior ring into a polygon or multi-polygon.
// Validity and disjointness of the candidate ring are delegated to the
// engine; a nil engine skips those numeric checks and places the ring
// by bounding-box containment only. Any non-success result leaves the
// container unchanged.
func (g *Geometry) AddRing(e Engine, ring []Coord) AddRingResult {
	if g.s == nil || (g.s.kind != KindPolygon && g.s.kind != KindMultiPolygon) {
		return AddRingWrongGeometryType
	}
	if !ringClosed(ring) {
		return AddRingNotClosed
	}
	if len(ring) < 4 {
		return AddRingNotValid
	}
	candidate := NewPolygon([][]Coord{ring})
	if candidate.IsEmpty() {
		return AddRingNotValid
	}
	if e != nil && !e.IsValid(candidate) {
		return AddRingNotValid
	}
	target := -1
	for p := range g.s.coords {
		if e != nil {
			if !e.Contains(g.outerRingGeometry(p), candidate) {
				continue
			}
			for r := 1; r < len(g.s.coords[p]); r++ {
				hole := NewPolygon([][]Coord{g.s.coords[p][r]})
				if !e.Disjoint(hole, candidate) {
					return AddRingNotDisjoint
				}
			}
		} else {
			outer := g.outerRingGeometry(p)
			cb, ob := candidate.BoundingBox(), outer.BoundingBox()
			if cb.XMin < ob.XMin || cb.YMin < ob.YMin || cb.XMax > ob.XMax || cb.YMax > ob.YMax {
				continue
			}
		}
		target = p
		break
	}
	if target < 0 {
		return AddRingNoContainingPolygon
	}
	g.detach()
	g.s.coords[target] = append(g.s.coords[target], closeRing(append([]Coord(nil), ring...)))
	return AddRingSuccess
}

// newPartCoords builds the stored rings for one part of the given
// category from a plain point list, or nil when the points cannot form
// such a part.
func newPartCoords(t GeometryType, pts []Coord) [][]Coord {
	switch t {
	case LineGeometry:
		if len(pts) < 2 {
			return nil
		}
		return [][]Coord{append([]Coord(nil), pts...)}
	case PolygonGeometry:
		ring := closeRing(append([]Coord(nil), pts...))
		if len(ring) < 4 {
			return nil
		}
		return [][]Coord{ring}
	default:
		return nil
	}
}

// AddPart appends a new part built from the point list, promoting the
// container to its multi-part kind first when necessary. When the
// container starts empty, fallback decides the geometry category.
// Polygon parts are checked for disjointness from existing parts
// through the engine (skipped when e is nil).
func (g *Geometry) AddPart(e Engine, pts []Coord, fallback GeometryType) AddPartResult {
	if len(pts) == 0 {
		return AddPartNotValid
	}
	t := g.Type()
	if g.s == nil {
		t = fallback
	}
	switch t {
	case PointGeometry:
		g.detach()
		if g.s == nil {
			*g = NewMultiPoint(pts)
			return AddPartSuccess
		}
		if !g.ConvertToMultiType() {
			return AddPartNotMultipart
		}
		for _, p := range pts {
			g.s.coords = append(g.s.coords, [][]Coord{{p}})
		}
		return AddPartSuccess
	case LineGeometry, PolygonGeometry:
		part := newPartCoords(t, pts)
		if part == nil {
			return AddPartNotValid
		}
		if t == PolygonGeometry && e != nil && g.s != nil {
			cand := NewPolygon(part)
			for _, existing := range g.Parts() {
				if !e.Disjoint(existing, cand) {
					return AddPartNotDisjoint
				}
			}
		}
		g.detach()
		if g.s == nil {
			kind := KindMultiLineString
			if t == PolygonGeometry {
				kind = KindMultiPolygon
			}
			*g = newGeometry(&shape{kind: kind, coords: [][][]Coord{part}})
			return AddPartSuccess
		}
		if !g.ConvertToMultiType() {
			return AddPartNotMultipart
		}
		g.s.coords = append(g.s.coords, part)
		return AddPartSuccess
	default:
		return AddPartNotMultipart
	}
}

// AddPartGeometry appends an existing single-part geometry as a new
// part. The part must match the container's category; when the
// container starts empty, fallback is used only to interpret an
// empty part list, matching AddPart.
func (g *Geometry) AddPartGeometry(e Engine, part Geometry, fallback GeometryType) AddPartResult {
	if part.IsEmpty() {
		return AddPartNotValid
	}
	if part.IsMultipart() {
		return AddPartNotValid
	}
	if g.s != nil && g.s.kind == KindGeometryCollection {
		g.detach()
		g.s.parts = append(g.s.parts, part.s.clone())
		return AddPartSuccess
	}
	t := g.Type()
	if g.s == nil {
		t = fallback
		if part.Type() != t && t != UnknownGeometry {
			return AddPartNotMultipart
		}
		g.detach()
		*g = part.Copy()
		g.detach()
		g.ConvertToMultiType()
		return AddPartSuccess
	}
	if part.Type() != t {
		return AddPartNotMultipart
	}
	if t == PolygonGeometry && e != nil {
		for _, existing := range g.Parts() {
			if !e.Disjoint(existing, part) {
				return AddPartNotDisjoint
			}
		}
	}
	g.detach()
	if !g.ConvertToMultiType() {
		return AddPartNotMultipart
	}
	g.s.coords = append(g.s.coords, part.s.clone().coords...)
	return AddPartSuccess
}

// DeletePart removes part i from a multi-part geometry. It fails on
// single-part geometries, on invalid indexes, and when removal would
// leave the geometry with no parts.
func (g *Geometry) DeletePart(i int) bool {
	if g.s == nil || !g.s.kind.isMulti() {
		return false
	}
	if g.s.kind == KindGeometryCollection {
		if i < 0 || i >= len(g.s.parts) || len(g.s.parts) == 1 {
			return false
		}
		g.detach()
		g.s.parts = append(g.s.parts[:i], g.s.parts[i+1:]...)
		return true
	}
	if i < 0 || i >= len(g.s.coords) || len(g.s.coords) == 1 {
		return false
	}
	g.detach()
	g.s.coords = append(g.s.coords[:i], g.s.coords[i+1:]...)
	return true
}

// DeleteRing removes an interior ring from a polygon part. Ring 0, the
// boundary ring, can never be deleted.
func (g *Geometry) DeleteRing(ring, part int) bool {
	if g.s == nil || g.s.kind.geometryType() != PolygonGeometry {
		return false
	}
	if ring <= 0 || part < 0 || part >= len(g.s.coords) || ring >= len(g.s.coords[part]) {
		return false
	}
	g.detach()
	g.s.coords[part] = append(g.s.coords[part][:ring], g.s.coords[part][ring+1:]...)
	return true
}

// ConvertToMultiType promotes the container to the multi-part
// counterpart of its kind in place. Calling it on an already multi-part
// geometry is a no-op that reports success.
func (g *Geometry) ConvertToMultiType() bool {
	if g.s == nil {
		return false
	}
	if g.s.kind.isMulti() {
		return true
	}
	multi := g.s.kind.multiKind()
	if multi == g.s.kind {
		return false
	}
	g.detach()
	if g.s.kind == KindPoint {
		// A point part stores one single-coordinate ring, which is
		// already the multi-point part layout.
		g.s.kind = multi
		return true
	}
	g.s.kind = multi
	return true
}

// ConvertToSingleType collapses the container to the single-part
// counterpart of its kind, retaining only the first part. Calling it on
// an already single-part geometry is a no-op that reports success.
func (g *Geometry) ConvertToSingleType() bool {
	if g.s == nil {
		return false
	}
	if !g.s.kind.isMulti() {
		return true
	}
	if g.s.kind == KindGeometryCollection {
		if len(g.s.parts) == 0 || g.s.parts[0].kind.isMulti() {
			return false
		}
		first := g.s.parts[0].clone()
		g.clear()
		*g = newGeometry(first)
		return true
	}
	g.detach()
	g.s.kind = g.s.kind.singleKind()
	g.s.coords = g.s.coords[:1]
	return true
}

// distinctVertices lists all vertices, dropping each polygon ring's
// duplicated closing coordinate.
func (g Geometry) distinctVertices() []Coord {
	var out []Coord
	for _, rr := range g.s.rings() {
		seq := *rr.seq
		if rr.closed && ringClosed(seq) {
			seq = seq[:len(seq)-1]
		}
		out = append(out, seq...)
	}
	return out
}

// ConvertToType returns a new container of the requested category and
// part structure, or ok == false when the conversion is not
// well-defined. It never performs a silent lossy conversion: a
// multi-vertex line cannot become a single point, and a multi-part
// geometry cannot collapse to single-part unless it holds one part.
func (g Geometry) ConvertToType(target GeometryType, multipart bool) (Geometry, bool) {
	if g.s == nil {
		return Geometry{}, false
	}
	src := g
	if g.s.kind.isCurved() {
		src = g.Linearize(DefaultArcSegments)
	}
	switch target {
	case PointGeometry:
		vertices := src.distinctVertices()
		if multipart {
			return NewMultiPoint(vertices), true
		}
		if len(vertices) != 1 {
			return Geometry{}, false
		}
		return NewPoint(vertices[0]), true
	case LineGeometry:
		var lines [][]Coord
		switch src.Type() {
		case PointGeometry:
			pts := src.distinctVertices()
			if len(pts) < 2 {
				return Geometry{}, false
			}
			lines = [][]Coord{pts}
		case LineGeometry, PolygonGeometry:
			for _, rr := range src.s.rings() {
				if len(*rr.seq) < 2 {
					return Geometry{}, false
				}
				lines = append(lines, append([]Coord(nil), *rr.seq...))
			}
		default:
			return Geometry{}, false
		}
		if multipart {
			return NewMultiLineString(lines), true
		}
		if len(lines) != 1 {
			return Geometry{}, false
		}
		return NewLineString(lines[0]), true
	case PolygonGeometry:
		var polys [][][]Coord
		switch src.Type() {
		case LineGeometry:
			for _, rr := range src.s.rings() {
				seq := *rr.seq
				if !ringClosed(seq) || len(seq) < 4 {
					return Geometry{}, false
				}
				polys = append(polys, [][]Coord{append([]Coord(nil), seq...)})
			}
		case PolygonGeometry:
			for _, part := range src.s.coords {
				rings := make([][]Coord, len(part))
				for i, ring := range part {
					rings[i] = append([]Coord(nil), ring...)
				}
				polys = append(polys, rings)
			}
		default:
			return Geometry{}, false
		}
		if multipart {
			return NewMultiPolygon(polys), true
		}
		if len(polys) != 1 {
			return Geometry{}, false
		}
		return NewPolygon(polys[0]), true
	default:
		return Geometry{}, false
	}
}

// Split divides g along the cut line using the engine. On success g is
// replaced by the first resulting part and the remaining parts are
// returned together with the topology test points the caller must
// re-check against adjacent features. On failure g is unchanged and ok
// is false.
func (g *Geometry) Split(e Engine, cut Geometry) (newParts []Geometry, testPoints []Coord, ok bool) {
	if e == nil || g.s == nil {
		return nil, nil, false
	}
	parts, pts, ok := e.Split(*g, cut)
	if !ok || len(parts) == 0 {
		return nil, nil, false
	}
	g.clear()
	*g = parts[0]
	return parts[1:], pts, true
}
