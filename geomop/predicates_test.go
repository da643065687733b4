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
	"testing"

	"github.com/vovoma/geomedit"
)

func TestEquals(t *testing.T) {
	e := New()
	a := square(0, 0, 10)
	b := square(0, 0, 10)
	if !e.Equals(a, b) {
		t.Error("identical squares should be equal")
	}
	if e.Equals(a, square(0, 0, 5)) {
		t.Error("different squares should not be equal")
	}
	if !e.Equals(geomedit.Geometry{}, geomedit.Geometry{}) {
		t.Error("two empty geometries should be equal")
	}
	if e.Equals(a, geomedit.Geometry{}) {
		t.Error("square and empty geometry should not be equal")
	}
}

func TestIntersectsDisjoint(t *testing.T) {
	e := New()
	a := square(0, 0, 10)
	cases := []struct {
		name string
		g    geomedit.Geometry
		want bool
	}{
		{"overlapping square", square(5, 5, 10), true},
		{"touching square", square(10, 0, 10), true},
		{"distant square", square(20, 20, 5), false},
		{"inner point", geomedit.NewPoint(geomedit.Coord{X: 5, Y: 5}), true},
		{"edge point", geomedit.NewPoint(geomedit.Coord{X: 10, Y: 5}), true},
		{"outer point", geomedit.NewPoint(geomedit.Coord{X: 15, Y: 5}), false},
		{"crossing line", geomedit.NewLineString([]geomedit.Coord{{X: -5, Y: 5}, {X: 15, Y: 5}}), true},
		{"outside line", geomedit.NewLineString([]geomedit.Coord{{X: -5, Y: 15}, {X: 15, Y: 15}}), false},
	}
	for _, c := range cases {
		if got := e.Intersects(a, c.g); got != c.want {
			t.Errorf("%s: Intersects=%v (it should be %v)", c.name, got, c.want)
		}
		if got := e.Disjoint(a, c.g); got == c.want {
			t.Errorf("%s: Disjoint=%v (it should be %v)", c.name, got, !c.want)
		}
	}
}

func TestWithinContains(t *testing.T) {
	e := New()
	outer := square(0, 0, 10)
	inner := square(2, 2, 3)
	if !e.Within(inner, outer) {
		t.Error("inner square should be within outer")
	}
	if !e.Contains(outer, inner) {
		t.Error("outer square should contain inner")
	}
	if e.Within(outer, inner) {
		t.Error("outer square should not be within inner")
	}
	pt := geomedit.NewPoint(geomedit.Coord{X: 5, Y: 5})
	if !e.Within(pt, outer) {
		t.Error("interior point should be within the square")
	}
	line := geomedit.NewLineString([]geomedit.Coord{{X: 1, Y: 1}, {X: 9, Y: 9}})
	if !e.Within(line, outer) {
		t.Error("interior line should be within the square")
	}
	leaving := geomedit.NewLineString([]geomedit.Coord{{X: 1, Y: 1}, {X: 15, Y: 15}})
	if e.Within(leaving, outer) {
		t.Error("line leaving the square should not be within it")
	}
}

func TestTouches(t *testing.T) {
	e := New()
	a := square(0, 0, 10)
	if !e.Touches(a, square(10, 0, 10)) {
		t.Error("edge-adjacent squares should touch")
	}
	if e.Touches(a, square(5, 5, 10)) {
		t.Error("overlapping squares should not touch")
	}
	edgePt := geomedit.NewPoint(geomedit.Coord{X: 10, Y: 5})
	if !e.Touches(edgePt, a) {
		t.Error("boundary point should touch the square")
	}
	innerPt := geomedit.NewPoint(geomedit.Coord{X: 5, Y: 5})
	if e.Touches(innerPt, a) {
		t.Error("interior point should not touch the square")
	}
	l1 := geomedit.NewLineString([]geomedit.Coord{{X: 0, Y: 0}, {X: 5, Y: 0}})
	l2 := geomedit.NewLineString([]geomedit.Coord{{X: 5, Y: 0}, {X: 5, Y: 5}})
	if !e.Touches(l1, l2) {
		t.Error("lines meeting at endpoints should touch")
	}
	l3 := geomedit.NewLineString([]geomedit.Coord{{X: 2, Y: -2}, {X: 2, Y: 2}})
	if e.Touches(l1, l3) {
		t.Error("lines crossing in their interiors should not touch")
	}
}

func TestOverlaps(t *testing.T) {
	e := New()
	a := square(0, 0, 10)
	if !e.Overlaps(a, square(5, 5, 10)) {
		t.Error("partially overlapping squares should overlap")
	}
	if e.Overlaps(a, square(2, 2, 3)) {
		t.Error("contained square should not overlap")
	}
	if e.Overlaps(a, square(10, 0, 10)) {
		t.Error("touching squares should not overlap")
	}
	l1 := geomedit.NewLineString([]geomedit.Coord{{X: 0, Y: 0}, {X: 10, Y: 0}})
	l2 := geomedit.NewLineString([]geomedit.Coord{{X: 5, Y: 0}, {X: 15, Y: 0}})
	if !e.Overlaps(l1, l2) {
		t.Error("collinear partially shared lines should overlap")
	}
}

func TestCrosses(t *testing.T) {
	e := New()
	l1 := geomedit.NewLineString([]geomedit.Coord{{X: 0, Y: 0}, {X: 10, Y: 10}})
	l2 := geomedit.NewLineString([]geomedit.Coord{{X: 0, Y: 10}, {X: 10, Y: 0}})
	if !e.Crosses(l1, l2) {
		t.Error("transversal lines should cross")
	}
	sq := square(0, 0, 10)
	through := geomedit.NewLineString([]geomedit.Coord{{X: -5, Y: 5}, {X: 15, Y: 5}})
	if !e.Crosses(through, sq) {
		t.Error("line passing through the square should cross it")
	}
	inside := geomedit.NewLineString([]geomedit.Coord{{X: 1, Y: 1}, {X: 9, Y: 9}})
	if e.Crosses(inside, sq) {
		t.Error("line contained in the square should not cross it")
	}
}

func TestIntersectsRect(t *testing.T) {
	e := New()
	sq := square(0, 0, 10)
	if !e.IntersectsRect(sq, geomedit.Rect{XMin: 5, YMin: 5, XMax: 15, YMax: 15}) {
		t.Error("square should intersect an overlapping rectangle")
	}
	if e.IntersectsRect(sq, geomedit.Rect{XMin: 20, YMin: 20, XMax: 30, YMax: 30}) {
		t.Error("square should not intersect a distant rectangle")
	}
}
