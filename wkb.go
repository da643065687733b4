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
	"github.com/twpayne/go-geom/encoding/wkb"
)

// NewFromWKB decodes an OGC well-known-binary buffer. Malformed bytes
// decode to an empty geometry, never an error.
func NewFromWKB(b []byte) Geometry {
	if len(b) == 0 {
		return Geometry{}
	}
	t, err := wkb.Unmarshal(b)
	if err != nil {
		return Geometry{}
	}
	return newGeometry(fromGeomT(t))
}

// AsWKB encodes g as little-endian OGC well-known binary. Curved kinds
// are linearized before encoding. Returns nil for an empty geometry or
// when g cannot be represented.
func (g Geometry) AsWKB() []byte {
	if g.s == nil {
		return nil
	}
	t := toGeomT(g.s)
	if t == nil {
		return nil
	}
	b, err := wkb.Marshal(t, wkb.NDR)
	if err != nil {
		return nil
	}
	return b
}

// WKBSize returns the byte length of the well-known-binary encoding of
// g, 0 when g cannot be encoded.
func (g Geometry) WKBSize() int {
	return len(g.AsWKB())
}
