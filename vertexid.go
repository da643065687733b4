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

import "math"

// VertexID addresses one coordinate as a (part, ring, vertex) triple.
// Ring is 0 for non-polygon geometries.
type VertexID struct {
	Part, Ring, Vertex int
}

// VertexIDFromVertexNumber maps a flat vertex index to its triple. The
// mapping follows canonical traversal order: parts in storage order,
// rings within a part in storage order (boundary ring first), vertices
// in storage order. It is recomputed from the current shape on every
// call, never cached.
func (g Geometry) VertexIDFromVertexNumber(n int) (VertexID, bool) {
	if g.s == nil || n < 0 {
		return VertexID{}, false
	}
	for _, rr := range g.s.rings() {
		if n < len(*rr.seq) {
			return VertexID{Part: rr.part, Ring: rr.ring, Vertex: n}, true
		}
		n -= len(*rr.seq)
	}
	return VertexID{}, false
}

// VertexNumberFromVertexID maps a triple back to its flat index, or -1
// when the triple does not address a stored coordinate.
func (g Geometry) VertexNumberFromVertexID(id VertexID) int {
	if g.s == nil {
		return -1
	}
	n := 0
	for _, rr := range g.s.rings() {
		if rr.part == id.Part && rr.ring == id.Ring {
			if id.Vertex < 0 || id.Vertex >= len(*rr.seq) {
				return -1
			}
			return n + id.Vertex
		}
		n += len(*rr.seq)
	}
	return -1
}

// vertexRing locates the ring holding flat index n and the position
// within it.
func (g Geometry) vertexRing(n int) (ringRef, int, bool) {
	if g.s == nil || n < 0 {
		return ringRef{}, 0, false
	}
	for _, rr := range g.s.rings() {
		if n < len(*rr.seq) {
			return rr, n, true
		}
		n -= len(*rr.seq)
	}
	return ringRef{}, 0, false
}

// azimuth returns the direction from a to b in radians clockwise from
// north, normalized to [0, 2π).
func azimuth(a, b Coord) float64 {
	az := math.Atan2(b.X-a.X, b.Y-a.Y)
	if az < 0 {
		az += 2 * math.Pi
	}
	return az
}

// averageAngle bisects two directions on the circle, radians clockwise
// from north.
func averageAngle(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	out := math.Mod(a+d/2, 2*math.Pi)
	if out < 0 {
		out += 2 * math.Pi
	}
	return out
}

// DistanceToVertex accumulates Euclidean length along the owning line
// or ring from its first vertex up to flat vertex n. It returns -1 for
// an invalid index or for point geometries.
func (g Geometry) DistanceToVertex(n int) float64 {
	if g.s == nil || g.s.kind.geometryType() == PointGeometry {
		return -1
	}
	rr, pos, ok := g.vertexRing(n)
	if !ok {
		return -1
	}
	seq := *rr.seq
	d := 0.0
	for i := 0; i < pos; i++ {
		d += seq[i].dist(seq[i+1])
	}
	return d
}

// AngleAtVertex returns the bisector direction between the incoming and
// outgoing segments at flat vertex n, in radians clockwise from north.
// At the open end of a line the single adjacent segment direction is
// returned; at the shared start/end vertex of a closed ring the two
// boundary segment directions are averaged. Returns 0 for invalid
// indexes and point geometries.
func (g Geometry) AngleAtVertex(n int) float64 {
	rr, pos, ok := g.vertexRing(n)
	if !ok {
		return 0
	}
	seq := *rr.seq
	if len(seq) < 2 {
		return 0
	}
	closed := rr.closed && ringClosed(seq)
	last := len(seq) - 1
	if closed && (pos == 0 || pos == last) {
		// Skip the duplicated closing vertex: incoming comes from the
		// last distinct vertex, outgoing goes to the second vertex.
		in := azimuth(seq[last-1], seq[0])
		out := azimuth(seq[0], seq[1])
		return averageAngle(in, out)
	}
	switch {
	case pos == 0:
		return azimuth(seq[0], seq[1])
	case pos == last:
		return azimuth(seq[last-1], seq[last])
	default:
		in := azimuth(seq[pos-1], seq[pos])
		out := azimuth(seq[pos], seq[pos+1])
		return averageAngle(in, out)
	}
}

// InterpolateAngle returns the tangential direction at the given
// distance along the geometry, following canonical traversal order
// across rings and parts. A distance landing exactly on an interior
// vertex averages the two adjacent segment directions. Distances past
// either end clamp to the first or last segment direction. Returns 0
// for point and empty geometries.
func (g Geometry) InterpolateAngle(distance float64) float64 {
	if g.s == nil || g.s.kind.geometryType() == PointGeometry {
		return 0
	}
	const eps = 1e-12
	prevAz := math.NaN()
	walked := 0.0
	for _, rr := range g.s.rings() {
		seq := *rr.seq
		for i := 0; i+1 < len(seq); i++ {
			segLen := seq[i].dist(seq[i+1])
			if segLen == 0 {
				continue
			}
			az := azimuth(seq[i], seq[i+1])
			if distance <= walked+eps {
				if distance >= walked-eps && !math.IsNaN(prevAz) {
					// Exactly on a node: average across it.
					return averageAngle(prevAz, az)
				}
				return az
			}
			if distance < walked+segLen {
				return az
			}
			walked += segLen
			prevAz = az
		}
	}
	if math.IsNaN(prevAz) {
		return 0
	}
	return prevAz // past the end
}
