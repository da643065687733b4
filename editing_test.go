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

const testTolerance = 1.e-8

// different reports whether a and b are different beyond the given
// relative tolerance.
func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func line(pts ...Coord) Geometry { return NewLineString(pts) }

func squareRing(x0, y0, size float64) []Coord {
	return []Coord{
		{X: x0, Y: y0},
		{X: x0 + size, Y: y0},
		{X: x0 + size, Y: y0 + size},
		{X: x0, Y: y0 + size},
		{X: x0, Y: y0},
	}
}

func TestInsertVertex(t *testing.T) {
	g := line(XY(0, 0), XY(2, 0))
	if !g.InsertVertex(1, 1, 1) {
		t.Fatal("insertion into a line failed")
	}
	if g.VertexCount() != 3 {
		t.Errorf("vertex count=%d (it should equal 3)", g.VertexCount())
	}
	if c := g.VertexAt(1); c.X != 1 || c.Y != 1 {
		t.Errorf("inserted vertex=(%g, %g) (it should equal (1, 1))", c.X, c.Y)
	}

	// An index equal to the vertex count appends.
	if !g.InsertVertex(3, 0, 3) {
		t.Fatal("appending insertion failed")
	}
	if c := g.VertexAt(3); c.X != 3 || c.Y != 0 {
		t.Errorf("appended vertex=(%g, %g) (it should equal (3, 0))", c.X, c.Y)
	}
	if g.InsertVertex(9, 9, 9) {
		t.Error("insertion past the addressable range succeeded")
	}
	if g.InsertVertex(9, 9, -1) {
		t.Error("insertion at a negative index succeeded")
	}

	p := NewPoint(XY(1, 2))
	if p.InsertVertex(3, 4, 0) {
		t.Error("insertion into a bare point succeeded")
	}
}

func TestInsertVertexClosedRing(t *testing.T) {
	g := NewPolygon([][]Coord{squareRing(0, 0, 10)})

	// Inserting before position 0 must move the closing duplicate too.
	if !g.InsertVertex(-1, -1, 0) {
		t.Fatal("insertion at ring start failed")
	}
	first := g.VertexAt(0)
	last := g.VertexAt(g.VertexCount() - 1)
	if first != last {
		t.Errorf("ring endpoints=(%g, %g) and (%g, %g) (they should coincide)",
			first.X, first.Y, last.X, last.Y)
	}
	if first.X != -1 || first.Y != -1 {
		t.Errorf("new first vertex=(%g, %g) (it should equal (-1, -1))", first.X, first.Y)
	}

	// Appending lands before the closing duplicate.
	g = NewPolygon([][]Coord{squareRing(0, 0, 10)})
	if !g.InsertVertex(5, -1, g.VertexCount()) {
		t.Fatal("appending insertion failed")
	}
	if c := g.VertexAt(g.VertexCount() - 2); c.X != 5 || c.Y != -1 {
		t.Errorf("appended vertex=(%g, %g) (it should equal (5, -1))", c.X, c.Y)
	}
	if !ringClosed(g.s.coords[0][0]) {
		t.Error("ring is no longer closed after appending")
	}
}

func TestMoveVertex(t *testing.T) {
	g := line(XY(0, 0), XY(1, 0), XY(2, 0))
	if !g.MoveVertex(XY(1, 5), 1) {
		t.Fatal("moving a line vertex failed")
	}
	if c := g.VertexAt(1); c.Y != 5 {
		t.Errorf("moved vertex y=%g (it should equal 5)", c.Y)
	}
	if g.MoveVertex(XY(0, 0), 3) {
		t.Error("moving a vertex at an invalid index succeeded")
	}

	// Moving a shared ring endpoint moves both copies.
	p := NewPolygon([][]Coord{squareRing(0, 0, 10)})
	if !p.MoveVertex(XY(-2, -2), 0) {
		t.Fatal("moving the shared ring vertex failed")
	}
	if c := p.VertexAt(p.VertexCount() - 1); c.X != -2 || c.Y != -2 {
		t.Errorf("closing vertex=(%g, %g) (it should equal (-2, -2))", c.X, c.Y)
	}
}

func TestDeleteVertex(t *testing.T) {
	g := line(XY(0, 0), XY(1, 0), XY(1, 1))
	if !g.DeleteVertex(1) {
		t.Fatal("deleting a line vertex failed")
	}
	if g.VertexCount() != 2 {
		t.Errorf("vertex count=%d (it should equal 2)", g.VertexCount())
	}
	if c := g.VertexAt(1); c.X != 1 || c.Y != 1 {
		t.Errorf("remaining vertex=(%g, %g) (it should equal (1, 1))", c.X, c.Y)
	}

	// A line may not drop below 2 vertices.
	if g.DeleteVertex(0) {
		t.Error("deletion below the 2-vertex line minimum succeeded")
	}
	if g.VertexCount() != 2 {
		t.Errorf("failed deletion mutated the line: %d vertices", g.VertexCount())
	}
}

func TestDeleteVertexRingMinimum(t *testing.T) {
	// A triangle ring stores 4 coordinates; deleting any would leave 3,
	// which is below the closed-ring minimum.
	g := NewPolygon([][]Coord{{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 0, Y: 0}}})
	if g.DeleteVertex(1) {
		t.Error("deletion below the 4-coordinate ring minimum succeeded")
	}
	if g.VertexCount() != 4 {
		t.Errorf("failed deletion mutated the ring: %d vertices", g.VertexCount())
	}

	// With a spare vertex, deleting the shared start/end re-closes on
	// the new first vertex.
	p := NewPolygon([][]Coord{squareRing(0, 0, 10)})
	if !p.DeleteVertex(0) {
		t.Fatal("deleting the shared ring vertex failed")
	}
	if p.VertexCount() != 4 {
		t.Errorf("vertex count=%d (it should equal 4)", p.VertexCount())
	}
	first := p.VertexAt(0)
	last := p.VertexAt(3)
	if first != last {
		t.Errorf("ring endpoints=(%g, %g) and (%g, %g) (they should coincide)",
			first.X, first.Y, last.X, last.Y)
	}
	if first.X != 10 || first.Y != 0 {
		t.Errorf("new first vertex=(%g, %g) (it should equal (10, 0))", first.X, first.Y)
	}
}

func TestDeleteVertexMultiPoint(t *testing.T) {
	g := NewMultiPoint([]Coord{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if !g.DeleteVertex(0) {
		t.Fatal("deleting a multi-point member failed")
	}
	if g.VertexCount() != 1 {
		t.Errorf("vertex count=%d (it should equal 1)", g.VertexCount())
	}
	// The last member may not be removed.
	if g.DeleteVertex(0) {
		t.Error("deleting the last multi-point member succeeded")
	}
}

func TestAdjacentVertices(t *testing.T) {
	g := line(XY(0, 0), XY(1, 0), XY(2, 0))
	if b, a := g.AdjacentVertices(0); b != -1 || a != 1 {
		t.Errorf("neighbors of 0=(%d, %d) (they should equal (-1, 1))", b, a)
	}
	if b, a := g.AdjacentVertices(1); b != 0 || a != 2 {
		t.Errorf("neighbors of 1=(%d, %d) (they should equal (0, 2))", b, a)
	}
	if b, a := g.AdjacentVertices(2); b != 1 || a != -1 {
		t.Errorf("neighbors of 2=(%d, %d) (they should equal (1, -1))", b, a)
	}
}

func TestAdjacentVerticesClosedRing(t *testing.T) {
	// Square ring: 5 stored coordinates, indexes 0 and 4 coincide.
	g := NewPolygon([][]Coord{squareRing(0, 0, 10)})
	if b, a := g.AdjacentVertices(0); b != 3 || a != 1 {
		t.Errorf("neighbors of the shared vertex=(%d, %d) (they should equal (3, 1))", b, a)
	}
	if b, a := g.AdjacentVertices(4); b != 3 || a != 1 {
		t.Errorf("neighbors of the closing duplicate=(%d, %d) (they should equal (3, 1))", b, a)
	}
	// The vertex before the closing duplicate wraps forward to the
	// ring start.
	if b, a := g.AdjacentVertices(3); b != 2 || a != 0 {
		t.Errorf("neighbors of 3=(%d, %d) (they should equal (2, 0))", b, a)
	}
}

func TestClosestVertex(t *testing.T) {
	g := line(XY(0, 0), XY(10, 0), XY(10, 10))
	c, at, before, after, sqrDist := g.ClosestVertex(XY(9, 1))
	if at != 1 {
		t.Errorf("closest vertex index=%d (it should equal 1)", at)
	}
	if c.X != 10 || c.Y != 0 {
		t.Errorf("closest vertex=(%g, %g) (it should equal (10, 0))", c.X, c.Y)
	}
	if before != 0 || after != 2 {
		t.Errorf("neighbors=(%d, %d) (they should equal (0, 2))", before, after)
	}
	if different(sqrDist, 2, testTolerance) {
		t.Errorf("squared distance=%g (it should equal 2)", sqrDist)
	}

	var empty Geometry
	if _, at := empty.ClosestVertexWithContext(XY(0, 0)); at != -1 {
		t.Errorf("closest vertex of empty geometry=%d (it should equal -1)", at)
	}
}

func TestClosestSegment(t *testing.T) {
	g := line(XY(0, 0), XY(10, 0))

	// Above the segment is to its left.
	sqrDist, cp, after, leftOf := g.ClosestSegmentWithContext(XY(5, 2))
	if different(sqrDist, 4, testTolerance) {
		t.Errorf("squared distance=%g (it should equal 4)", sqrDist)
	}
	if cp.X != 5 || cp.Y != 0 {
		t.Errorf("nearest point=(%g, %g) (it should equal (5, 0))", cp.X, cp.Y)
	}
	if after != 1 {
		t.Errorf("after vertex=%d (it should equal 1)", after)
	}
	if leftOf >= 0 {
		t.Errorf("side=%d (it should be negative for the left side)", leftOf)
	}

	// Below the segment is to its right.
	if _, _, _, leftOf := g.ClosestSegmentWithContext(XY(5, -2)); leftOf <= 0 {
		t.Errorf("side=%d (it should be positive for the right side)", leftOf)
	}

	// Exactly on the segment line.
	if _, _, _, leftOf := g.ClosestSegmentWithContext(XY(5, 0)); leftOf != 0 {
		t.Errorf("side=%d (it should equal 0 on the segment)", leftOf)
	}

	p := NewPoint(XY(1, 1))
	if sqrDist, _, _, _ := p.ClosestSegmentWithContext(XY(0, 0)); sqrDist != -1 {
		t.Errorf("segment distance for a point=%g (it should equal -1)", sqrDist)
	}
}

func TestAddRing(t *testing.T) {
	g := NewPolygon([][]Coord{squareRing(0, 0, 10)})

	hole := squareRing(2, 2, 2)
	if r := g.AddRing(nil, hole); r != AddRingSuccess {
		t.Fatalf("adding a contained ring: %s", r)
	}
	if g.RingCount(0) != 2 {
		t.Errorf("ring count=%d (it should equal 2)", g.RingCount(0))
	}

	open := []Coord{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}}
	if r := g.AddRing(nil, open); r != AddRingNotClosed {
		t.Errorf("adding an open ring: %s (it should fail as not closed)", r)
	}

	outside := squareRing(20, 20, 2)
	if r := g.AddRing(nil, outside); r != AddRingNoContainingPolygon {
		t.Errorf("adding an outside ring: %s (it should fail with no containing polygon)", r)
	}

	l := line(XY(0, 0), XY(1, 0))
	if r := l.AddRing(nil, hole); r != AddRingWrongGeometryType {
		t.Errorf("adding a ring to a line: %s (it should fail on geometry type)", r)
	}
}

func TestAddPart(t *testing.T) {
	g := NewPolygon([][]Coord{squareRing(0, 0, 10)})
	if r := g.AddPart(nil, squareRing(20, 0, 5), UnknownGeometry); r != AddPartSuccess {
		t.Fatalf("adding a polygon part: %s", r)
	}
	if g.WKBType() != KindMultiPolygon {
		t.Errorf("kind=%s (it should equal MultiPolygon)", g.WKBType())
	}
	if g.PartCount() != 2 {
		t.Errorf("part count=%d (it should equal 2)", g.PartCount())
	}

	// An empty container takes its category from the fallback.
	var fresh Geometry
	if r := fresh.AddPart(nil, []Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}, LineGeometry); r != AddPartSuccess {
		t.Fatalf("adding a part to an empty container: %s", r)
	}
	if fresh.WKBType() != KindMultiLineString {
		t.Errorf("kind=%s (it should equal MultiLineString)", fresh.WKBType())
	}

	p := NewPoint(XY(0, 0))
	if r := p.AddPart(nil, []Coord{{X: 1, Y: 1}}, UnknownGeometry); r != AddPartSuccess {
		t.Fatalf("adding a point part: %s", r)
	}
	if p.WKBType() != KindMultiPoint || p.PartCount() != 2 {
		t.Errorf("kind=%s parts=%d (they should equal MultiPoint and 2)", p.WKBType(), p.PartCount())
	}
}

func TestAddPartGeometry(t *testing.T) {
	g := line(XY(0, 0), XY(1, 0))
	part := line(XY(5, 5), XY(6, 5))
	if r := g.AddPartGeometry(nil, part, UnknownGeometry); r != AddPartSuccess {
		t.Fatalf("adding a line part geometry: %s", r)
	}
	if g.WKBType() != KindMultiLineString || g.PartCount() != 2 {
		t.Errorf("kind=%s parts=%d (they should equal MultiLineString and 2)", g.WKBType(), g.PartCount())
	}

	// Category mismatch is rejected.
	if r := g.AddPartGeometry(nil, NewPoint(XY(0, 0)), UnknownGeometry); r != AddPartNotMultipart {
		t.Errorf("adding a point part to lines: %s (it should fail as not multipart)", r)
	}

	// A multi-part part is rejected.
	if r := g.AddPartGeometry(nil, g.Copy(), UnknownGeometry); r != AddPartNotValid {
		t.Errorf("adding a multi-part part: %s (it should fail as not valid)", r)
	}
}

func TestDeletePart(t *testing.T) {
	g := NewMultiLineString([][]Coord{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 5, Y: 5}, {X: 6, Y: 5}},
	})
	if !g.DeletePart(0) {
		t.Fatal("deleting a part failed")
	}
	if g.PartCount() != 1 {
		t.Errorf("part count=%d (it should equal 1)", g.PartCount())
	}
	if c := g.VertexAt(0); c.X != 5 || c.Y != 5 {
		t.Errorf("remaining part starts at (%g, %g) (it should equal (5, 5))", c.X, c.Y)
	}
	// The last part may not be removed.
	if g.DeletePart(0) {
		t.Error("deleting the last part succeeded")
	}

	single := line(XY(0, 0), XY(1, 0))
	if single.DeletePart(0) {
		t.Error("deleting a part of a single-part geometry succeeded")
	}
}

func TestDeleteRing(t *testing.T) {
	g := NewPolygon([][]Coord{squareRing(0, 0, 10), squareRing(2, 2, 2)})
	if !g.DeleteRing(1, 0) {
		t.Fatal("deleting an interior ring failed")
	}
	if g.RingCount(0) != 1 {
		t.Errorf("ring count=%d (it should equal 1)", g.RingCount(0))
	}
	// The boundary ring may not be removed.
	if g.DeleteRing(0, 0) {
		t.Error("deleting the boundary ring succeeded")
	}
}

func TestConvertToMultiAndSingle(t *testing.T) {
	g := line(XY(0, 0), XY(1, 0))
	if !g.ConvertToMultiType() {
		t.Fatal("converting a line to multi-part failed")
	}
	if g.WKBType() != KindMultiLineString {
		t.Errorf("kind=%s (it should equal MultiLineString)", g.WKBType())
	}
	if !g.ConvertToSingleType() {
		t.Fatal("converting back to single-part failed")
	}
	if g.WKBType() != KindLineString {
		t.Errorf("kind=%s (it should equal LineString)", g.WKBType())
	}

	// Collapsing a two-part geometry keeps only the first part.
	m := NewMultiPoint([]Coord{{X: 0, Y: 0}, {X: 9, Y: 9}})
	if !m.ConvertToSingleType() {
		t.Fatal("collapsing a multi-point failed")
	}
	if m.WKBType() != KindPoint {
		t.Errorf("kind=%s (it should equal Point)", m.WKBType())
	}
	if c := m.VertexAt(0); c.X != 0 || c.Y != 0 {
		t.Errorf("kept part=(%g, %g) (it should equal (0, 0))", c.X, c.Y)
	}
}

func TestConvertToType(t *testing.T) {
	// A single-vertex multi-point may become a point; a two-vertex one
	// may not.
	one := NewMultiPoint([]Coord{{X: 3, Y: 4}})
	if p, ok := one.ConvertToType(PointGeometry, false); !ok || p.WKBType() != KindPoint {
		t.Error("converting a one-member multi-point to a point failed")
	}
	two := NewMultiPoint([]Coord{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if _, ok := two.ConvertToType(PointGeometry, false); ok {
		t.Error("lossy conversion of a two-member multi-point succeeded")
	}

	// A closed line becomes a polygon; an open one does not.
	closed := line(squareRing(0, 0, 10)...)
	if p, ok := closed.ConvertToType(PolygonGeometry, false); !ok || p.WKBType() != KindPolygon {
		t.Error("converting a closed line to a polygon failed")
	}
	open := line(XY(0, 0), XY(1, 0), XY(1, 1))
	if _, ok := open.ConvertToType(PolygonGeometry, false); ok {
		t.Error("converting an open line to a polygon succeeded")
	}

	// A polygon's rings become lines, dropping nothing.
	poly := NewPolygon([][]Coord{squareRing(0, 0, 10)})
	l, ok := poly.ConvertToType(LineGeometry, false)
	if !ok || l.WKBType() != KindLineString {
		t.Fatal("converting a polygon to a line failed")
	}
	if l.VertexCount() != 5 {
		t.Errorf("line vertex count=%d (it should equal 5)", l.VertexCount())
	}

	// Any geometry's vertices become a multi-point.
	mp, ok := poly.ConvertToType(PointGeometry, true)
	if !ok || mp.WKBType() != KindMultiPoint {
		t.Fatal("converting a polygon to a multi-point failed")
	}
	if mp.VertexCount() != 4 {
		t.Errorf("multi-point vertex count=%d (it should equal 4, without the closing duplicate)", mp.VertexCount())
	}
}
