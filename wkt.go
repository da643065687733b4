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
	"strconv"
	"strings"

	"github.com/twpayne/go-geom/encoding/wkt"
)

// DefaultWKTPrecision is the decimal digit count used when callers do
// not request a specific precision.
const DefaultWKTPrecision = 17

// NewFromWKT decodes an OGC well-known-text representation. Malformed
// input decodes to an empty geometry, never an error.
func NewFromWKT(s string) Geometry {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)
	if strings.HasPrefix(upper, "CIRCULARSTRING") || strings.HasPrefix(upper, "MULTICURVE") {
		return curveFromWKT(trimmed)
	}
	t, err := wkt.Unmarshal(trimmed)
	if err != nil {
		return Geometry{}
	}
	return newGeometry(fromGeomT(t))
}

// AsWKT encodes g as OGC well-known text with at most the given number
// of decimal digits. A negative precision uses DefaultWKTPrecision.
// Empty geometries encode to the empty string.
func (g Geometry) AsWKT(precision int) string {
	if g.s == nil {
		return ""
	}
	if precision < 0 {
		precision = DefaultWKTPrecision
	}
	if g.s.kind.isCurved() {
		return curveToWKT(g.s, precision)
	}
	t := toGeomT(g.s)
	if t == nil {
		return ""
	}
	s, err := wkt.NewEncoder(wkt.EncodeOptionWithMaxDecimalDigits(precision)).Encode(t)
	if err != nil {
		return ""
	}
	return s
}

func formatCoordNum(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// curveToWKT renders the curved kinds the exchange library does not
// model: CIRCULARSTRING and MULTICURVE.
func curveToWKT(s *shape, precision int) string {
	var b strings.Builder
	dims := ""
	if s.hasZ && s.hasM {
		dims = "ZM "
	} else if s.hasZ {
		dims = "Z "
	} else if s.hasM {
		dims = "M "
	}
	writeSeq := func(seq []Coord) {
		b.WriteString("(")
		for i, c := range seq {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatCoordNum(c.X, precision))
			b.WriteString(" ")
			b.WriteString(formatCoordNum(c.Y, precision))
			if s.hasZ {
				b.WriteString(" ")
				b.WriteString(formatCoordNum(c.Z, precision))
			}
			if s.hasM {
				b.WriteString(" ")
				b.WriteString(formatCoordNum(c.M, precision))
			}
		}
		b.WriteString(")")
	}
	switch s.kind {
	case KindCircularString:
		b.WriteString("CIRCULARSTRING ")
		b.WriteString(dims)
		writeSeq(s.coords[0][0])
	case KindMultiCurve:
		b.WriteString("MULTICURVE ")
		b.WriteString(dims)
		b.WriteString("(")
		for i, part := range s.coords {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("CIRCULARSTRING ")
			writeSeq(part[0])
		}
		b.WriteString(")")
	}
	return b.String()
}

// parseCoordSeq parses "(x y [z [m]], ...)" starting at the first byte
// of s, returning the sequence and the remainder after the closing
// parenthesis.
func parseCoordSeq(s string, hasZ, hasM bool) ([]Coord, string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") {
		return nil, s, false
	}
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return nil, s, false
	}
	body, rest := s[1:end], s[end+1:]
	want := 2
	if hasZ {
		want++
	}
	if hasM {
		want++
	}
	var seq []Coord
	for _, item := range strings.Split(body, ",") {
		fields := strings.Fields(item)
		if len(fields) != want {
			return nil, rest, false
		}
		nums := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, rest, false
			}
			nums[i] = v
		}
		c := Coord{X: nums[0], Y: nums[1]}
		switch {
		case hasZ && hasM:
			c.Z, c.M = nums[2], nums[3]
		case hasZ:
			c.Z = nums[2]
		case hasM:
			c.M = nums[2]
		}
		seq = append(seq, c)
	}
	return seq, rest, true
}

// parseDims consumes an optional Z/M/ZM dimensionality token.
func parseDims(s string) (hasZ, hasM bool, rest string) {
	rest = strings.TrimSpace(s)
	upper := strings.ToUpper(rest)
	switch {
	case strings.HasPrefix(upper, "ZM"):
		return true, true, rest[2:]
	case strings.HasPrefix(upper, "Z"):
		return true, false, rest[1:]
	case strings.HasPrefix(upper, "M"):
		return false, true, rest[1:]
	}
	return false, false, rest
}

// curveFromWKT parses CIRCULARSTRING and MULTICURVE text. Only
// MULTICURVE bodies whose members are all CIRCULARSTRINGs are
// supported; anything else decodes to an empty geometry.
func curveFromWKT(s string) Geometry {
	upper := strings.ToUpper(s)
	if strings.HasPrefix(upper, "CIRCULARSTRING") {
		hasZ, hasM, rest := parseDims(s[len("CIRCULARSTRING"):])
		seq, rest, ok := parseCoordSeq(rest, hasZ, hasM)
		if !ok || strings.TrimSpace(rest) != "" {
			return Geometry{}
		}
		g := NewCircularString(seq)
		if g.s != nil {
			g.s.hasZ, g.s.hasM = hasZ, hasM
		}
		return g
	}
	hasZ, hasM, rest := parseDims(s[len("MULTICURVE"):])
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "(") {
		return Geometry{}
	}
	rest = rest[1:]
	var parts [][]Coord
	for {
		rest = strings.TrimSpace(rest)
		upper = strings.ToUpper(rest)
		if !strings.HasPrefix(upper, "CIRCULARSTRING") {
			return Geometry{}
		}
		rest = strings.TrimSpace(rest[len("CIRCULARSTRING"):])
		seq, r, ok := parseCoordSeq(rest, hasZ, hasM)
		if !ok {
			return Geometry{}
		}
		if len(seq) < 3 || len(seq)%2 == 0 {
			return Geometry{}
		}
		parts = append(parts, seq)
		rest = strings.TrimSpace(r)
		if strings.HasPrefix(rest, ",") {
			rest = rest[1:]
			continue
		}
		if strings.HasPrefix(rest, ")") {
			rest = rest[1:]
			break
		}
		return Geometry{}
	}
	if strings.TrimSpace(rest) != "" || len(parts) == 0 {
		return Geometry{}
	}
	coords := make([][][]Coord, len(parts))
	for i, p := range parts {
		coords[i] = [][]Coord{p}
	}
	return newGeometry(&shape{kind: KindMultiCurve, hasZ: hasZ, hasM: hasM, coords: coords})
}
