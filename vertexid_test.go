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

import (
	"math"
	"testing"
)

func TestVertexNumbering(t *testing.T) {
	// A polygon with a hole: ring 0 holds 5 coordinates, ring 1 holds 5.
	g := NewPolygon([][]Coord{squareRing(0, 0, 10), squareRing(2, 2, 2)})

	id, ok := g.VertexIDFromVertexNumber(6)
	if !ok {
		t.Fatal("mapping flat index 6 failed")
	}
	want := VertexID{Part: 0, Ring: 1, Vertex: 1}
	if id != want {
		t.Errorf("vertex id=%+v (it should equal %+v)", id, want)
	}
	if n := g.VertexNumberFromVertexID(id); n != 6 {
		t.Errorf("flat index=%d (it should equal 6)", n)
	}

	// The mapping must be a bijection over the whole range.
	for n := 0; n < g.VertexCount(); n++ {
		id, ok := g.VertexIDFromVertexNumber(n)
		if !ok {
			t.Fatalf("mapping flat index %d failed", n)
		}
		if back := g.VertexNumberFromVertexID(id); back != n {
			t.Errorf("flat index %d maps to %+v and back to %d", n, id, back)
		}
	}

	if _, ok := g.VertexIDFromVertexNumber(g.VertexCount()); ok {
		t.Error("mapping an index past the end succeeded")
	}
	if _, ok := g.VertexIDFromVertexNumber(-1); ok {
		t.Error("mapping a negative index succeeded")
	}
	if n := g.VertexNumberFromVertexID(VertexID{Part: 3, Ring: 0, Vertex: 0}); n != -1 {
		t.Errorf("flat index of a missing triple=%d (it should equal -1)", n)
	}
}

func TestVertexNumberingMultipart(t *testing.T) {
	g := NewMultiLineString([][]Coord{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5}},
	})
	id, ok := g.VertexIDFromVertexNumber(3)
	if !ok {
		t.Fatal("mapping flat index 3 failed")
	}
	want := VertexID{Part: 1, Ring: 0, Vertex: 1}
	if id != want {
		t.Errorf("vertex id=%+v (it should equal %+v)", id, want)
	}
}

func TestVertexNumberingCollection(t *testing.T) {
	// A collection whose first child is itself multi-part: the child's
	// inner parts must land on distinct part indices so every flat index
	// round-trips through its triple.
	mp := NewMultiPolygon([][][]Coord{
		{squareRing(0, 0, 1)},
		{squareRing(5, 5, 1)},
	})
	g := Collect([]Geometry{mp, NewPoint(XY(20, 20))})

	for n := 0; n < g.VertexCount(); n++ {
		id, ok := g.VertexIDFromVertexNumber(n)
		if !ok {
			t.Fatalf("mapping flat index %d failed", n)
		}
		if back := g.VertexNumberFromVertexID(id); back != n {
			t.Errorf("flat index %d maps to %+v and back to %d", n, id, back)
		}
	}

	// The point child follows the two polygon parts.
	id, ok := g.VertexIDFromVertexNumber(10)
	if !ok {
		t.Fatal("mapping flat index 10 failed")
	}
	want := VertexID{Part: 2, Ring: 0, Vertex: 0}
	if id != want {
		t.Errorf("vertex id=%+v (it should equal %+v)", id, want)
	}
}

func TestDistanceToVertex(t *testing.T) {
	g := line(XY(0, 0), XY(3, 0), XY(3, 4))
	if d := g.DistanceToVertex(0); d != 0 {
		t.Errorf("distance to vertex 0=%g (it should equal 0)", d)
	}
	if d := g.DistanceToVertex(1); different(d, 3, testTolerance) {
		t.Errorf("distance to vertex 1=%g (it should equal 3)", d)
	}
	if d := g.DistanceToVertex(2); different(d, 7, testTolerance) {
		t.Errorf("distance to vertex 2=%g (it should equal 7)", d)
	}
	if d := g.DistanceToVertex(3); d != -1 {
		t.Errorf("distance to an invalid vertex=%g (it should equal -1)", d)
	}
	p := NewPoint(XY(1, 1))
	if d := p.DistanceToVertex(0); d != -1 {
		t.Errorf("distance within a point=%g (it should equal -1)", d)
	}
}

func TestAngleAtVertex(t *testing.T) {
	// Angles are radians clockwise from north, so due east is π/2.
	g := line(XY(0, 0), XY(10, 0))
	if a := g.AngleAtVertex(0); different(a, math.Pi/2, testTolerance) {
		t.Errorf("angle at the line start=%g (it should equal %g)", a, math.Pi/2)
	}
	if a := g.AngleAtVertex(1); different(a, math.Pi/2, testTolerance) {
		t.Errorf("angle at the line end=%g (it should equal %g)", a, math.Pi/2)
	}

	// A right-angle corner east-then-north bisects to northeast.
	corner := line(XY(0, 0), XY(10, 0), XY(10, 10))
	if a := corner.AngleAtVertex(1); different(a, math.Pi/4, testTolerance) {
		t.Errorf("corner angle=%g (it should equal %g)", a, math.Pi/4)
	}

	// At a closed ring's shared vertex, the two boundary segments are
	// averaged across the closing duplicate. For the square traversed
	// counterclockwise from the origin, incoming runs south and
	// outgoing runs east, bisecting to southeast.
	ring := NewPolygon([][]Coord{squareRing(0, 0, 10)})
	if a := ring.AngleAtVertex(0); different(a, 3*math.Pi/4, testTolerance) {
		t.Errorf("shared ring vertex angle=%g (it should equal %g)", a, 3*math.Pi/4)
	}
	if a, b := ring.AngleAtVertex(0), ring.AngleAtVertex(4); different(a, b, testTolerance) {
		t.Errorf("angles at the two shared vertex copies differ: %g and %g", a, b)
	}
}

func TestInterpolateAngle(t *testing.T) {
	g := line(XY(0, 0), XY(10, 0), XY(10, 10))

	// Mid-segment distances take the segment direction.
	if a := g.InterpolateAngle(5); different(a, math.Pi/2, testTolerance) {
		t.Errorf("angle at distance 5=%g (it should equal %g)", a, math.Pi/2)
	}
	if a := g.InterpolateAngle(15); a > testTolerance && different(a, 0, testTolerance) {
		t.Errorf("angle at distance 15=%g (it should equal 0)", a)
	}

	// Exactly on the interior vertex, the adjacent directions average.
	if a := g.InterpolateAngle(10); different(a, math.Pi/4, testTolerance) {
		t.Errorf("angle at the corner=%g (it should equal %g)", a, math.Pi/4)
	}

	// Past the end, the last segment direction holds.
	if a := g.InterpolateAngle(100); a > testTolerance && different(a, 0, testTolerance) {
		t.Errorf("angle past the end=%g (it should equal 0)", a)
	}

	p := NewPoint(XY(0, 0))
	if a := p.InterpolateAngle(1); a != 0 {
		t.Errorf("angle within a point=%g (it should equal 0)", a)
	}
}
