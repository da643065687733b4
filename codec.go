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
	gogeom "github.com/twpayne/go-geom"
)

// layout returns the go-geom coordinate layout for s.
func (s *shape) layout() gogeom.Layout {
	switch {
	case s.hasZ && s.hasM:
		return gogeom.XYZM
	case s.hasZ:
		return gogeom.XYZ
	case s.hasM:
		return gogeom.XYM
	default:
		return gogeom.XY
	}
}

// appendFlat appends c to flat in the given layout's stride order.
func appendFlat(flat []float64, c Coord, l gogeom.Layout) []float64 {
	flat = append(flat, c.X, c.Y)
	switch l {
	case gogeom.XYZ:
		flat = append(flat, c.Z)
	case gogeom.XYM:
		flat = append(flat, c.M)
	case gogeom.XYZM:
		flat = append(flat, c.Z, c.M)
	}
	return flat
}

func flatRing(ring []Coord, l gogeom.Layout) []float64 {
	flat := make([]float64, 0, len(ring)*l.Stride())
	for _, c := range ring {
		flat = appendFlat(flat, c, l)
	}
	return flat
}

// toGeomT marshals s into the go-geom representation used by the codec.
// Curved kinds are linearized first since the exchange library handles
// straight segments only. Returns nil when s cannot be represented.
func toGeomT(s *shape) gogeom.T {
	if s == nil {
		return nil
	}
	if s.kind.isCurved() {
		return toGeomT(newGeometry(s.clone()).Linearize(DefaultArcSegments).s)
	}
	l := s.layout()
	switch s.kind {
	case KindPoint:
		return gogeom.NewPointFlat(l, flatRing(s.coords[0][0], l))
	case KindLineString:
		return gogeom.NewLineStringFlat(l, flatRing(s.coords[0][0], l))
	case KindPolygon:
		var flat []float64
		var ends []int
		for _, ring := range s.coords[0] {
			flat = append(flat, flatRing(ring, l)...)
			ends = append(ends, len(flat))
		}
		return gogeom.NewPolygonFlat(l, flat, ends)
	case KindMultiPoint:
		var flat []float64
		for _, part := range s.coords {
			flat = appendFlat(flat, part[0][0], l)
		}
		return gogeom.NewMultiPointFlat(l, flat)
	case KindMultiLineString:
		var flat []float64
		var ends []int
		for _, part := range s.coords {
			flat = append(flat, flatRing(part[0], l)...)
			ends = append(ends, len(flat))
		}
		return gogeom.NewMultiLineStringFlat(l, flat, ends)
	case KindMultiPolygon:
		var flat []float64
		var endss [][]int
		for _, part := range s.coords {
			var ends []int
			for _, ring := range part {
				flat = append(flat, flatRing(ring, l)...)
				ends = append(ends, len(flat))
			}
			endss = append(endss, ends)
		}
		return gogeom.NewMultiPolygonFlat(l, flat, endss)
	case KindGeometryCollection:
		gc := gogeom.NewGeometryCollection()
		for _, child := range s.parts {
			t := toGeomT(child)
			if t == nil {
				return nil
			}
			if err := gc.Push(t); err != nil {
				return nil
			}
		}
		return gc
	default:
		return nil
	}
}

// coordsFromFlat slices one coordinate sequence out of flat storage.
func coordsFromFlat(flat []float64, start, end int, l gogeom.Layout) []Coord {
	stride := l.Stride()
	out := make([]Coord, 0, (end-start)/stride)
	for i := start; i < end; i += stride {
		c := Coord{X: flat[i], Y: flat[i+1]}
		switch l {
		case gogeom.XYZ:
			c.Z = flat[i+2]
		case gogeom.XYM:
			c.M = flat[i+2]
		case gogeom.XYZM:
			c.Z = flat[i+2]
			c.M = flat[i+3]
		}
		out = append(out, c)
	}
	return out
}

// fromGeomT unmarshals a go-geom value into the variant model. Returns
// nil for unsupported or degenerate input.
func fromGeomT(t gogeom.T) *shape {
	if t == nil {
		return nil
	}
	l := t.Layout()
	s := &shape{
		hasZ: l == gogeom.XYZ || l == gogeom.XYZM,
		hasM: l == gogeom.XYM || l == gogeom.XYZM,
	}
	switch t := t.(type) {
	case *gogeom.Point:
		flat := t.FlatCoords()
		if len(flat) < 2 {
			return nil
		}
		s.kind = KindPoint
		s.coords = [][][]Coord{{coordsFromFlat(flat, 0, len(flat), l)}}
	case *gogeom.LineString:
		seq := coordsFromFlat(t.FlatCoords(), 0, len(t.FlatCoords()), l)
		if len(seq) < 2 {
			return nil
		}
		s.kind = KindLineString
		s.coords = [][][]Coord{{seq}}
	case *gogeom.Polygon:
		flat := t.FlatCoords()
		var part [][]Coord
		start := 0
		for _, end := range t.Ends() {
			ring := coordsFromFlat(flat, start, end, l)
			if len(ring) < 4 {
				return nil
			}
			part = append(part, ring)
			start = end
		}
		if len(part) == 0 {
			return nil
		}
		s.kind = KindPolygon
		s.coords = [][][]Coord{part}
	case *gogeom.MultiPoint:
		pts := coordsFromFlat(t.FlatCoords(), 0, len(t.FlatCoords()), l)
		if len(pts) == 0 {
			return nil
		}
		s.kind = KindMultiPoint
		for _, p := range pts {
			s.coords = append(s.coords, [][]Coord{{p}})
		}
	case *gogeom.MultiLineString:
		flat := t.FlatCoords()
		start := 0
		for _, end := range t.Ends() {
			seq := coordsFromFlat(flat, start, end, l)
			if len(seq) < 2 {
				return nil
			}
			s.coords = append(s.coords, [][]Coord{seq})
			start = end
		}
		if len(s.coords) == 0 {
			return nil
		}
		s.kind = KindMultiLineString
	case *gogeom.MultiPolygon:
		flat := t.FlatCoords()
		start := 0
		for _, ends := range t.Endss() {
			var part [][]Coord
			for _, end := range ends {
				ring := coordsFromFlat(flat, start, end, l)
				if len(ring) < 4 {
					return nil
				}
				part = append(part, ring)
				start = end
			}
			if len(part) == 0 {
				return nil
			}
			s.coords = append(s.coords, part)
		}
		if len(s.coords) == 0 {
			return nil
		}
		s.kind = KindMultiPolygon
	case *gogeom.GeometryCollection:
		s.kind = KindGeometryCollection
		s.hasZ, s.hasM = false, false
		for _, child := range t.Geoms() {
			cs := fromGeomT(child)
			if cs == nil {
				return nil
			}
			s.parts = append(s.parts, cs)
		}
	default:
		return nil
	}
	return s
}
