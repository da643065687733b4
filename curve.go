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

// DefaultArcSegments is the default number of straight segments used
// per quarter circle when linearizing arcs.
const DefaultArcSegments = 8

// circumcenter returns the center of the circle through three points.
// ok is false when the points are collinear.
func circumcenter(a, b, c Coord) (Coord, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-12 {
		return Coord{}, false
	}
	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y
	return Coord{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}, true
}

// arcPoints interpolates the circular arc from p1 through p2 to p3 as
// straight segments, segmentsPerQuarter per quarter circle. The first
// point is included, the last is not.
func arcPoints(p1, p2, p3 Coord, segmentsPerQuarter int) []Coord {
	center, ok := circumcenter(p1, p2, p3)
	if !ok {
		// Degenerate arc: fall back to the chords.
		return []Coord{p1, p2}
	}
	r := math.Hypot(p1.X-center.X, p1.Y-center.Y)
	a1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	a3 := math.Atan2(p3.Y-center.Y, p3.X-center.X)
	cross := (p2.X-p1.X)*(p3.Y-p1.Y) - (p2.Y-p1.Y)*(p3.X-p1.X)
	var sweep float64
	if cross > 0 { // counter-clockwise
		sweep = math.Mod(a3-a1, 2*math.Pi)
		if sweep <= 0 {
			sweep += 2 * math.Pi
		}
	} else {
		sweep = math.Mod(a3-a1, 2*math.Pi)
		if sweep >= 0 {
			sweep -= 2 * math.Pi
		}
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2) * float64(segmentsPerQuarter)))
	if n < 2 {
		n = 2
	}
	out := make([]Coord, 0, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n)
		a := a1 + sweep*f
		out = append(out, Coord{
			X: center.X + r*math.Cos(a),
			Y: center.Y + r*math.Sin(a),
			Z: p1.Z + (p3.Z-p1.Z)*f,
			M: p1.M + (p3.M-p1.M)*f,
		})
	}
	return out
}

// linearizeSequence expands a circular-string control sequence
// (successive three-point arcs) into straight segments.
func linearizeSequence(seq []Coord, segmentsPerQuarter int) []Coord {
	if len(seq) < 3 {
		return append([]Coord(nil), seq...)
	}
	var out []Coord
	for i := 0; i+2 < len(seq); i += 2 {
		out = append(out, arcPoints(seq[i], seq[i+1], seq[i+2], segmentsPerQuarter)...)
	}
	out = append(out, seq[len(seq)-1])
	return out
}

// Linearize converts curved kinds to their straight-segment
// counterparts: CircularString to LineString and MultiCurve to
// MultiLineString. Non-curved geometries are returned as an independent
// copy. segmentsPerQuarter controls arc fidelity; values below 1 use
// DefaultArcSegments.
func (g Geometry) Linearize(segmentsPerQuarter int) Geometry {
	if g.s == nil {
		return Geometry{}
	}
	if segmentsPerQuarter < 1 {
		segmentsPerQuarter = DefaultArcSegments
	}
	if !g.s.kind.isCurved() {
		return newGeometry(g.s.clone())
	}
	out := &shape{hasZ: g.s.hasZ, hasM: g.s.hasM}
	switch g.s.kind {
	case KindCircularString:
		out.kind = KindLineString
	case KindMultiCurve:
		out.kind = KindMultiLineString
	}
	out.coords = make([][][]Coord, len(g.s.coords))
	for p, part := range g.s.coords {
		out.coords[p] = make([][]Coord, len(part))
		for r, ring := range part {
			out.coords[p][r] = linearizeSequence(ring, segmentsPerQuarter)
		}
	}
	return newGeometry(out)
}
