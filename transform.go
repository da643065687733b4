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

import "github.com/ctessum/geom/proj"

// Transform applies a projection transform to every coordinate of
// every ring and part in place. The first failing coordinate aborts
// the whole operation and leaves the geometry unchanged.
func (g *Geometry) Transform(t proj.Transformer) error {
	if g.s == nil || t == nil {
		return nil
	}
	work := g.s.clone()
	if err := transformShape(work, t); err != nil {
		return err
	}
	g.clear()
	*g = newGeometry(work)
	return nil
}

func transformShape(s *shape, t proj.Transformer) error {
	for _, child := range s.parts {
		if err := transformShape(child, t); err != nil {
			return err
		}
	}
	for p := range s.coords {
		for r := range s.coords[p] {
			for i, c := range s.coords[p][r] {
				x, y, err := t(c.X, c.Y)
				if err != nil {
					return err
				}
				s.coords[p][r][i].X = x
				s.coords[p][r][i].Y = y
			}
		}
	}
	return nil
}

// AffineTransform applies the simplified affine map
//
//	x' = a*x + b*y + xOff
//	y' = d*x + e*y + yOff
//
// to every coordinate in place.
func (g *Geometry) AffineTransform(a, b, d, e, xOff, yOff float64) {
	if g.s == nil {
		return
	}
	g.detach()
	affineShape(g.s, a, b, d, e, xOff, yOff)
}

func affineShape(s *shape, a, b, d, e, xOff, yOff float64) {
	for _, child := range s.parts {
		affineShape(child, a, b, d, e, xOff, yOff)
	}
	for p := range s.coords {
		for r := range s.coords[p] {
			for i, c := range s.coords[p][r] {
				s.coords[p][r][i].X = a*c.X + b*c.Y + xOff
				s.coords[p][r][i].Y = d*c.X + e*c.Y + yOff
			}
		}
	}
}

// Translate shifts every coordinate by (dx, dy) in place.
func (g *Geometry) Translate(dx, dy float64) {
	g.AffineTransform(1, 0, 0, 1, dx, dy)
}
