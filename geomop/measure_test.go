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
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/vovoma/geomedit"
)

func square(x0, y0, size float64) geomedit.Geometry {
	return geomedit.NewPolygon([][]geomedit.Coord{{
		{X: x0, Y: y0},
		{X: x0 + size, Y: y0},
		{X: x0 + size, Y: y0 + size},
		{X: x0, Y: y0 + size},
	}})
}

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestArea(t *testing.T) {
	const testTolerance = 1.e-8
	e := New()
	sq := square(0, 0, 10)
	if a := e.Area(sq); different(a, 100, testTolerance) {
		t.Errorf("square area=%g (it should equal 100)", a)
	}
	line := geomedit.NewLineString([]geomedit.Coord{{X: 0, Y: 0}, {X: 10, Y: 0}})
	if a := e.Area(line); a != 0 {
		t.Errorf("line area=%g (it should equal 0)", a)
	}
}

func TestAreaWithHole(t *testing.T) {
	const testTolerance = 1.e-8
	e := New()
	g := geomedit.NewPolygon([][]geomedit.Coord{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 4}},
	})
	if a := e.Area(g); different(a, 96, testTolerance) {
		t.Errorf("area=%g (it should equal 96)", a)
	}
}

func TestLength(t *testing.T) {
	const testTolerance = 1.e-8
	e := New()
	line := geomedit.NewLineString([]geomedit.Coord{
		{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4},
	})
	if l := e.Length(line); different(l, 7, testTolerance) {
		t.Errorf("line length=%g (it should equal 7)", l)
	}
	if l := e.Length(square(0, 0, 10)); different(l, 40, testTolerance) {
		t.Errorf("square perimeter=%g (it should equal 40)", l)
	}
	if l := e.Length(geomedit.NewPoint(geomedit.Coord{X: 1, Y: 1})); l != 0 {
		t.Errorf("point length=%g (it should equal 0)", l)
	}
}

func TestDistance(t *testing.T) {
	e := New()
	a := square(0, 0, 10)
	b := square(13, 0, 10)
	if d := e.Distance(a, b); !scalar.EqualWithinAbs(d, 3, 1.e-9) {
		t.Errorf("distance=%g (it should equal 3)", d)
	}
	if d := e.Distance(a, square(5, 5, 10)); d != 0 {
		t.Errorf("overlapping distance=%g (it should equal 0)", d)
	}
	if d := e.Distance(a, geomedit.Geometry{}); d != -1 {
		t.Errorf("empty distance=%g (it should equal -1)", d)
	}
	p := geomedit.NewPoint(geomedit.Coord{X: 15, Y: 14})
	if d := e.Distance(a, p); !scalar.EqualWithinAbs(d, math.Hypot(5, 4), 1.e-9) {
		t.Errorf("point distance=%g (it should equal %g)", d, math.Hypot(5, 4))
	}
}

func TestNearestPoint(t *testing.T) {
	e := New()
	sq := square(0, 0, 10)
	p := geomedit.NewPoint(geomedit.Coord{X: 15, Y: 5})
	n := e.NearestPoint(sq, p)
	c := n.VertexAt(0)
	if !scalar.EqualWithinAbs(c.X, 10, 1.e-9) || !scalar.EqualWithinAbs(c.Y, 5, 1.e-9) {
		t.Errorf("nearest point=(%g, %g) (it should equal (10, 5))", c.X, c.Y)
	}
}

func TestShortestLine(t *testing.T) {
	e := New()
	a := square(0, 0, 10)
	b := square(14, 0, 10)
	l := e.ShortestLine(a, b)
	if l.IsEmpty() {
		t.Fatal("shortest line is empty")
	}
	if d := e.Length(l); !scalar.EqualWithinAbs(d, 4, 1.e-9) {
		t.Errorf("shortest line length=%g (it should equal 4)", d)
	}
}
