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

import "fmt"

// ValidationError is one diagnostic record from a validation pass,
// optionally pinned to an offending coordinate.
type ValidationError struct {
	Message     string
	Location    Coord
	HasLocation bool
}

func (e ValidationError) Error() string {
	if e.HasLocation {
		return fmt.Sprintf("%s at (%g, %g)", e.Message, e.Location.X, e.Location.Y)
	}
	return e.Message
}

func errAt(c Coord, format string, args ...interface{}) ValidationError {
	return ValidationError{Message: fmt.Sprintf(format, args...), Location: c, HasLocation: true}
}

// Validate runs an independent structural and topological check and
// returns the ordered list of problems found, nil when the geometry is
// clean. Numerical checks (ring self-intersection, improper nesting)
// are delegated to the engine and skipped when e is nil. The pass is
// diagnostic only: it neither blocks nor repairs anything, and editing
// operations never call it implicitly.
func (g Geometry) Validate(e Engine) []ValidationError {
	if g.s == nil {
		return nil
	}
	var errs []ValidationError
	for _, rr := range g.s.rings() {
		seq := *rr.seq
		if rr.closed {
			if !ringClosed(seq) {
				errs = append(errs, errAt(seq[0],
					"ring %d of part %d is not closed", rr.ring, rr.part))
				continue
			}
			if len(seq) < 4 {
				errs = append(errs, errAt(seq[0],
					"ring %d of part %d has fewer than 3 distinct vertices", rr.ring, rr.part))
			}
		} else if g.s.kind.geometryType() == LineGeometry && len(seq) < 2 {
			errs = append(errs, errAt(seq[0],
				"line part %d has fewer than 2 vertices", rr.part))
		}
		for i := 0; i+1 < len(seq); i++ {
			if seq[i].equal2D(seq[i+1]) {
				errs = append(errs, errAt(seq[i],
					"duplicate vertex %d in ring %d of part %d", i, rr.ring, rr.part))
			}
		}
	}
	if e == nil || g.s.kind.geometryType() != PolygonGeometry {
		return errs
	}
	for _, c := range e.SelfIntersections(g) {
		errs = append(errs, errAt(c, "ring self-intersection"))
	}
	// Holes must lie inside their boundary ring.
	for p, part := range g.s.coords {
		outer := g.outerRingGeometry(p)
		for r := 1; r < len(part); r++ {
			hole := NewPolygon([][]Coord{part[r]})
			if hole.IsEmpty() {
				continue
			}
			if !e.Contains(outer, hole) {
				errs = append(errs, errAt(part[r][0],
					"ring %d of part %d is not inside its boundary ring", r, p))
			}
		}
	}
	// Parts of a multi-polygon may not overlap each other.
	if g.s.kind == KindMultiPolygon {
		parts := g.Parts()
		for i := range parts {
			for j := i + 1; j < len(parts); j++ {
				if e.Overlaps(parts[i], parts[j]) {
					errs = append(errs, errAt(g.s.coords[j][0][0],
						"parts %d and %d overlap", i, j))
				}
			}
		}
	}
	return errs
}
