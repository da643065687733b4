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

// IsValid reports whether g is structurally and topologically sound:
// rings closed with enough vertices, lines with at least two, and no
// ring self-intersections.
func (e *Engine) IsValid(g geomedit.Geometry) bool {
	if g.IsEmpty() {
		return false
	}
	if g.WKBType() == geomedit.KindGeometryCollection {
		for _, part := range g.Parts() {
			if !e.IsValid(part) {
				return false
			}
		}
		return true
	}
	if g.WKBType() == geomedit.KindCircularString || g.WKBType() == geomedit.KindMultiCurve {
		g = g.Linearize(e.ArcSegments)
	}
	coords := g.Coordinates()
	switch g.Type() {
	case geomedit.PointGeometry:
		return true
	case geomedit.LineGeometry:
		for _, part := range coords {
			if len(part[0]) < 2 {
				return false
			}
		}
		return true
	case geomedit.PolygonGeometry:
		for _, part := range coords {
			for _, ring := range part {
				if len(ring) < 4 {
					return false
				}
				first, last := ring[0], ring[len(ring)-1]
				if first.X != last.X || first.Y != last.Y {
					return false
				}
			}
		}
		return len(e.SelfIntersections(g)) == 0
	}
	return false
}

// SelfIntersections returns the points where a ring or line crosses
// itself. Adjacent segments sharing a vertex do not count.
func (e *Engine) SelfIntersections(g geomedit.Geometry) []geomedit.Coord {
	if g.IsEmpty() {
		return nil
	}
	if g.WKBType() == geomedit.KindCircularString || g.WKBType() == geomedit.KindMultiCurve {
		g = g.Linearize(e.ArcSegments)
	}
	var out []geomedit.Coord
	add := func(pt geomedit.Coord) {
		for _, p := range out {
			if math.Hypot(p.X-pt.X, p.Y-pt.Y) <= e.Tolerance {
				return
			}
		}
		out = append(out, pt)
	}
	if g.WKBType() == geomedit.KindGeometryCollection {
		for _, part := range g.Parts() {
			for _, pt := range e.SelfIntersections(part) {
				add(pt)
			}
		}
		return out
	}
	for _, part := range g.Coordinates() {
		for _, ring := range part {
			selfIntersectSeq(ring, ringIsClosed(ring), add)
		}
	}
	return out
}

// selfIntersectSeq reports proper crossings between non-adjacent
// segments of one coordinate sequence.
func selfIntersectSeq(seq []geomedit.Coord, closed bool, add func(geomedit.Coord)) {
	n := len(seq) - 1 // segment count
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			// In a closed ring the last segment is adjacent to the
			// first.
			if closed && i == 0 && j == n-1 {
				continue
			}
			if pt, ok := properIntersection(seq[i], seq[i+1], seq[j], seq[j+1]); ok {
				add(pt)
			}
		}
	}
}

func ringIsClosed(seq []geomedit.Coord) bool {
	if len(seq) < 2 {
		return false
	}
	return seq[0].X == seq[len(seq)-1].X && seq[0].Y == seq[len(seq)-1].Y
}
