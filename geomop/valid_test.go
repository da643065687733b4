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

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/vovoma/geomedit"
)

func TestIsValid(t *testing.T) {
	e := New()
	if !e.IsValid(square(0, 0, 10)) {
		t.Error("square should be valid")
	}
	if !e.IsValid(geomedit.NewPoint(geomedit.Coord{X: 1, Y: 2})) {
		t.Error("point should be valid")
	}
	if !e.IsValid(geomedit.NewLineString([]geomedit.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}})) {
		t.Error("line should be valid")
	}
	if e.IsValid(geomedit.Geometry{}) {
		t.Error("empty geometry should not be valid")
	}
}

func TestBowtieInvalid(t *testing.T) {
	e := New()
	bowtie := geomedit.NewPolygon([][]geomedit.Coord{{
		{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2},
	}})
	if e.IsValid(bowtie) {
		t.Error("self-intersecting polygon should not be valid")
	}
	pts := e.SelfIntersections(bowtie)
	if len(pts) != 1 {
		t.Fatalf("len(pts)=%d (it should equal 1)", len(pts))
	}
	if !scalar.EqualWithinAbs(pts[0].X, 1, 1.e-9) || !scalar.EqualWithinAbs(pts[0].Y, 1, 1.e-9) {
		t.Errorf("self-intersection=(%g, %g) (it should equal (1, 1))", pts[0].X, pts[0].Y)
	}
}

func TestSelfIntersectionsClean(t *testing.T) {
	e := New()
	if pts := e.SelfIntersections(square(0, 0, 10)); len(pts) != 0 {
		t.Errorf("len(pts)=%d for a clean square (it should equal 0)", len(pts))
	}
	zigzag := geomedit.NewLineString([]geomedit.Coord{
		{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 0}, {X: 6, Y: 2},
	})
	if pts := e.SelfIntersections(zigzag); len(pts) != 0 {
		t.Errorf("len(pts)=%d for a zigzag line (it should equal 0)", len(pts))
	}
	crossing := geomedit.NewLineString([]geomedit.Coord{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 2, Y: -2},
	})
	if pts := e.SelfIntersections(crossing); len(pts) != 1 {
		t.Errorf("len(pts)=%d for a self-crossing line (it should equal 1)", len(pts))
	}
}
