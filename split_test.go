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

package geomedit_test

import (
	"math"
	"testing"

	"github.com/vovoma/geomedit"
	"github.com/vovoma/geomedit/geomop"
)

func TestSplitReplacesGeometry(t *testing.T) {
	e := geomop.New()
	g := geomedit.NewPolygon([][]geomedit.Coord{ring(0, 0, 10)})
	cut := geomedit.NewLineString([]geomedit.Coord{{X: 5, Y: -1}, {X: 5, Y: 11}})

	rest, testPoints, ok := g.Split(e, cut)
	if !ok {
		t.Fatal("splitting the square failed")
	}
	if len(rest) != 1 {
		t.Fatalf("remaining part count=%d (it should equal 1)", len(rest))
	}
	total := e.Area(g) + e.Area(rest[0])
	if d := math.Abs(total - 100); d > 1.e-6 {
		t.Errorf("total area after the split=%g (it should equal 100)", total)
	}
	if len(testPoints) == 0 {
		t.Error("the split reported no topology test points")
	}
	for _, p := range testPoints {
		if math.Abs(p.X-5) > 1.e-6 {
			t.Errorf("test point (%g, %g) is off the cut line", p.X, p.Y)
		}
	}
}

func TestSplitFailureLeavesGeometry(t *testing.T) {
	e := geomop.New()
	g := geomedit.NewPolygon([][]geomedit.Coord{ring(0, 0, 10)})
	miss := geomedit.NewLineString([]geomedit.Coord{{X: 50, Y: 0}, {X: 50, Y: 10}})

	if _, _, ok := g.Split(e, miss); ok {
		t.Fatal("a cut that misses the geometry succeeded")
	}
	if a := e.Area(g); math.Abs(a-100) > 1.e-6 {
		t.Errorf("area after the failed split=%g (it should remain 100)", a)
	}

	if _, _, ok := g.Split(nil, miss); ok {
		t.Error("splitting without an engine succeeded")
	}
}

func TestAddRingWithEngine(t *testing.T) {
	e := geomop.New()
	g := geomedit.NewPolygon([][]geomedit.Coord{ring(0, 0, 10)})
	if r := g.AddRing(e, ring(2, 2, 2)); r != geomedit.AddRingSuccess {
		t.Fatalf("adding a contained ring: %s", r)
	}
	// A second hole overlapping the first is rejected.
	if r := g.AddRing(e, ring(3, 3, 2)); r != geomedit.AddRingNotDisjoint {
		t.Errorf("adding an overlapping ring: %s (it should fail as not disjoint)", r)
	}
	if r := g.AddRing(e, ring(20, 20, 2)); r != geomedit.AddRingNoContainingPolygon {
		t.Errorf("adding an outside ring: %s (it should fail with no containing polygon)", r)
	}
}

func TestAddPartWithEngine(t *testing.T) {
	e := geomop.New()
	g := geomedit.NewPolygon([][]geomedit.Coord{ring(0, 0, 10)})
	// An overlapping polygon part is rejected.
	if r := g.AddPart(e, ring(5, 5, 10), geomedit.UnknownGeometry); r != geomedit.AddPartNotDisjoint {
		t.Errorf("adding an overlapping part: %s (it should fail as not disjoint)", r)
	}
	if r := g.AddPart(e, ring(20, 0, 5), geomedit.UnknownGeometry); r != geomedit.AddPartSuccess {
		t.Errorf("adding a disjoint part: %s", r)
	}
}
