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

// EndCapStyle controls how buffers terminate line ends.
type EndCapStyle int

const (
	CapRound EndCapStyle = iota
	CapFlat
	CapSquare
)

// JoinStyle controls how buffers and offset curves turn corners.
type JoinStyle int

const (
	JoinRound JoinStyle = iota
	JoinMitre
	JoinBevel
)

// BufferSide selects the side of a single-sided buffer or offset curve
// relative to the digitizing direction of the line.
type BufferSide int

const (
	SideLeft BufferSide = iota
	SideRight
)

// BufferParams bundles the buffer construction options. MitreLimit is
// the maximum extension ratio at sharp corners under mitred joins.
type BufferParams struct {
	EndCapStyle EndCapStyle
	JoinStyle   JoinStyle
	MitreLimit  float64
}

// DefaultBufferParams matches the conventional round/round defaults.
func DefaultBufferParams() BufferParams {
	return BufferParams{EndCapStyle: CapRound, JoinStyle: JoinRound, MitreLimit: 2}
}

// Engine is the interface to the external geometry-algorithms library.
// The container marshals its abstract geometry into the engine's
// representation and wraps results back into containers; it never
// re-implements engine numerics. Every derived-geometry method returns
// an empty Geometry on malformed or degenerate input, and numeric
// methods return a negative sentinel, never an error state that crashes
// the caller.
//
// Engine implementations may hold mutable scratch state; sharing one
// instance across goroutines requires external locking.
type Engine interface {
	// Predicates.
	Equals(a, b Geometry) bool
	Disjoint(a, b Geometry) bool
	Touches(a, b Geometry) bool
	Overlaps(a, b Geometry) bool
	Within(a, b Geometry) bool
	Contains(a, b Geometry) bool
	Crosses(a, b Geometry) bool
	Intersects(a, b Geometry) bool
	IntersectsRect(g Geometry, r Rect) bool

	// Measurements. Area and Length return 0 for lower-dimensional
	// input; Distance returns -1 when either geometry is empty.
	Area(g Geometry) float64
	Length(g Geometry) float64
	Distance(a, b Geometry) float64
	NearestPoint(g, other Geometry) Geometry
	ShortestLine(a, b Geometry) Geometry

	// Derived geometry.
	Buffer(g Geometry, distance float64, segments int, p BufferParams) Geometry
	SingleSidedBuffer(g Geometry, distance float64, segments int, side BufferSide, p BufferParams) Geometry
	OffsetCurve(g Geometry, distance float64, segments int, p BufferParams) Geometry
	Simplify(g Geometry, tolerance float64) Geometry
	Centroid(g Geometry) Geometry
	PointOnSurface(g Geometry) Geometry
	ConvexHull(g Geometry) Geometry
	Intersection(a, b Geometry) Geometry
	Union(a, b Geometry) Geometry
	Difference(a, b Geometry) Geometry
	SymDifference(a, b Geometry) Geometry
	CombineGeometries(gs []Geometry) Geometry

	// Validity.
	IsValid(g Geometry) bool
	SelfIntersections(g Geometry) []Coord

	// Split divides g along the cut line, returning the resulting
	// parts and the topology test points a topological-editing caller
	// must re-check against adjacent features. ok is false when the cut
	// does not divide g; g is never modified.
	Split(g Geometry, cut Geometry) (parts []Geometry, testPoints []Coord, ok bool)
}
