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

	"github.com/ctessum/geom"
	polyclip "github.com/ctessum/polyclip-go"

	"github.com/vovoma/geomedit"
)

// Buffer returns the region within distance of g. The buffer is built
// from per-segment quads, join wedges, and end caps, then merged with
// the Boolean clipper. segments is the straight-segment count per
// quarter circle for round pieces; values below 1 fall back to the
// engine default. A negative distance erodes polygonal input; for
// lines and points it yields an empty geometry.
func (e *Engine) Buffer(g geomedit.Geometry, distance float64, segments int, p geomedit.BufferParams) geomedit.Geometry {
	if g.IsEmpty() {
		return geomedit.Geometry{}
	}
	if segments < 1 {
		segments = e.ArcSegments
	}
	if p.MitreLimit <= 0 {
		p.MitreLimit = geomedit.DefaultBufferParams().MitreLimit
	}
	dim := dimension(g)
	if distance == 0 {
		if dim == 2 {
			return g.Copy()
		}
		return geomedit.Geometry{}
	}
	if distance < 0 {
		if dim != 2 {
			return geomedit.Geometry{}
		}
		return e.erodePolygon(g, -distance, segments, p)
	}
	var pieces polyclip.Polygon
	for _, part := range singleParts(g) {
		switch dimension(part) {
		case 0:
			c := firstCoord(part)
			pieces = append(pieces, circleContour(c, distance, segments))
		case 1:
			seq := dedupe(e.lineCoords(part))
			pieces = append(pieces, e.lineBufferPieces(seq, distance, segments, p)...)
		case 2:
			coords := part.Coordinates()
			for _, ring := range coords[0] {
				pieces = append(pieces, ringBufferPieces(ring, distance, segments, p)...)
			}
			pieces = append(pieces, toClipPolygon(coords[0])...)
		}
	}
	return wrapContours(unionContours(pieces))
}

// SingleSidedBuffer buffers a line geometry on one side only. The far
// edge follows the line offset by distance; ends are always flat.
func (e *Engine) SingleSidedBuffer(g geomedit.Geometry, distance float64, segments int, side geomedit.BufferSide, p geomedit.BufferParams) geomedit.Geometry {
	if g.IsEmpty() || dimension(g) != 1 || distance <= 0 {
		return geomedit.Geometry{}
	}
	if segments < 1 {
		segments = e.ArcSegments
	}
	if p.MitreLimit <= 0 {
		p.MitreLimit = geomedit.DefaultBufferParams().MitreLimit
	}
	var pieces polyclip.Polygon
	for _, part := range singleParts(g) {
		seq := dedupe(e.lineCoords(part))
		if len(seq) < 2 {
			continue
		}
		for i := 0; i+1 < len(seq); i++ {
			a, b := seq[i], seq[i+1]
			nx, ny := sideNormal(a, b, side)
			pieces = append(pieces, polyclip.Contour{
				clipPt(a), clipPt(b),
				{X: b.X + nx*distance, Y: b.Y + ny*distance},
				{X: a.X + nx*distance, Y: a.Y + ny*distance},
			})
		}
		for i := 1; i+1 < len(seq); i++ {
			n1x, n1y := sideNormal(seq[i-1], seq[i], side)
			n2x, n2y := sideNormal(seq[i], seq[i+1], side)
			c := joinContour(seq[i],
				geomedit.Coord{X: seq[i].X + n1x*distance, Y: seq[i].Y + n1y*distance},
				geomedit.Coord{X: seq[i].X + n2x*distance, Y: seq[i].Y + n2y*distance},
				distance, p.JoinStyle, p.MitreLimit, segments)
			if c != nil {
				pieces = append(pieces, c)
			}
		}
	}
	return wrapContours(unionContours(pieces))
}

// OffsetCurve returns the line parallel to g at the given distance.
// Positive distances offset to the left of the digitizing direction,
// negative to the right. Corners that open a gap are filled per the
// join style.
func (e *Engine) OffsetCurve(g geomedit.Geometry, distance float64, segments int, p geomedit.BufferParams) geomedit.Geometry {
	if g.IsEmpty() || dimension(g) != 1 || distance == 0 {
		return geomedit.Geometry{}
	}
	if segments < 1 {
		segments = e.ArcSegments
	}
	if p.MitreLimit <= 0 {
		p.MitreLimit = geomedit.DefaultBufferParams().MitreLimit
	}
	side := geomedit.SideLeft
	r := distance
	if r < 0 {
		side = geomedit.SideRight
		r = -r
	}
	var lines [][]geomedit.Coord
	for _, part := range singleParts(g) {
		seq := dedupe(e.lineCoords(part))
		if off := offsetPolyline(seq, r, side, segments, p); len(off) >= 2 {
			lines = append(lines, off)
		}
	}
	switch len(lines) {
	case 0:
		return geomedit.Geometry{}
	case 1:
		return geomedit.NewLineString(lines[0])
	}
	return geomedit.NewMultiLineString(lines)
}

// offsetPolyline shifts every segment sideways by r and reconnects the
// corners.
func offsetPolyline(seq []geomedit.Coord, r float64, side geomedit.BufferSide, segments int, p geomedit.BufferParams) []geomedit.Coord {
	if len(seq) < 2 {
		return nil
	}
	type offSeg struct{ a, b geomedit.Coord }
	segs := make([]offSeg, 0, len(seq)-1)
	for i := 0; i+1 < len(seq); i++ {
		nx, ny := sideNormal(seq[i], seq[i+1], side)
		segs = append(segs, offSeg{
			geomedit.Coord{X: seq[i].X + nx*r, Y: seq[i].Y + ny*r},
			geomedit.Coord{X: seq[i+1].X + nx*r, Y: seq[i+1].Y + ny*r},
		})
	}
	out := []geomedit.Coord{segs[0].a}
	for i := 0; i+1 < len(segs); i++ {
		cur, next := segs[i], segs[i+1]
		v := seq[i+1]
		if apex, ok := lineIntersection(cur.a, cur.b, next.a, next.b); ok &&
			math.Hypot(apex.X-v.X, apex.Y-v.Y) <= p.MitreLimit*r {
			switch p.JoinStyle {
			case geomedit.JoinMitre:
				out = append(out, apex)
				continue
			case geomedit.JoinRound:
				// Convex gaps get an arc; converging corners keep
				// the trimmed apex.
				if gapOpens(cur.b, next.a) {
					out = append(out, cur.b)
					out = append(out, arcBetween(v, cur.b, next.a, r, segments)...)
					out = append(out, next.a)
					continue
				}
				out = append(out, apex)
				continue
			default: // bevel
				if gapOpens(cur.b, next.a) {
					out = append(out, cur.b, next.a)
					continue
				}
				out = append(out, apex)
				continue
			}
		}
		out = append(out, cur.b, next.a)
	}
	out = append(out, segs[len(segs)-1].b)
	return dedupe(out)
}

// gapOpens reports whether the two offset segment ends leave a gap
// around their shared vertex instead of overlapping.
func gapOpens(end, start geomedit.Coord) bool {
	return math.Hypot(start.X-end.X, start.Y-end.Y) > 1e-12
}

// erodePolygon shrinks a polygonal geometry by subtracting a buffer of
// its boundary.
func (e *Engine) erodePolygon(g geomedit.Geometry, distance float64, segments int, p geomedit.BufferParams) geomedit.Geometry {
	var boundary polyclip.Polygon
	for _, part := range singleParts(g) {
		coords := part.Coordinates()
		for _, ring := range coords[0] {
			boundary = append(boundary, ringBufferPieces(ring, distance, segments, p)...)
		}
	}
	gg, ok := e.toGeom(g).(geom.Polygonal)
	if !ok {
		return geomedit.Geometry{}
	}
	var subject polyclip.Polygon
	for _, poly := range gg.Polygons() {
		subject = append(subject, toClipPolygon(polyCoords(poly))...)
	}
	eroded := subject.Construct(polyclip.DIFFERENCE, unionClip(boundary))
	return wrapContours(clipToGeomPolygon(eroded))
}

func polyCoords(p geom.Polygon) [][]geomedit.Coord {
	out := make([][]geomedit.Coord, len(p))
	for i, ring := range p {
		out[i] = fromGeomPoints(ring)
	}
	return out
}

// lineBufferPieces builds the quads, joins, and caps for a both-sided
// line buffer.
func (e *Engine) lineBufferPieces(seq []geomedit.Coord, r float64, segments int, p geomedit.BufferParams) polyclip.Polygon {
	if len(seq) == 0 {
		return nil
	}
	if len(seq) == 1 {
		return polyclip.Polygon{circleContour(seq[0], r, segments)}
	}
	work := seq
	if p.EndCapStyle == geomedit.CapSquare {
		work = append([]geomedit.Coord(nil), seq...)
		ux, uy := unit(work[1].X-work[0].X, work[1].Y-work[0].Y)
		work[0] = geomedit.Coord{X: work[0].X - ux*r, Y: work[0].Y - uy*r}
		n := len(work)
		ux, uy = unit(work[n-1].X-work[n-2].X, work[n-1].Y-work[n-2].Y)
		work[n-1] = geomedit.Coord{X: work[n-1].X + ux*r, Y: work[n-1].Y + uy*r}
	}
	var pieces polyclip.Polygon
	for i := 0; i+1 < len(work); i++ {
		pieces = append(pieces, segmentQuad(work[i], work[i+1], r))
	}
	for i := 1; i+1 < len(work); i++ {
		if c := outerJoin(work[i-1], work[i], work[i+1], r, p.JoinStyle, p.MitreLimit, segments); c != nil {
			pieces = append(pieces, c)
		}
	}
	if p.EndCapStyle == geomedit.CapRound {
		pieces = append(pieces, circleContour(seq[0], r, segments))
		pieces = append(pieces, circleContour(seq[len(seq)-1], r, segments))
	}
	return pieces
}

// ringBufferPieces buffers a closed ring outward on both sides, joins
// at every vertex including the closure.
func ringBufferPieces(ring []geomedit.Coord, r float64, segments int, p geomedit.BufferParams) polyclip.Polygon {
	seq := dedupe(ring)
	if len(seq) >= 2 && seq[0].X == seq[len(seq)-1].X && seq[0].Y == seq[len(seq)-1].Y {
		seq = seq[:len(seq)-1]
	}
	n := len(seq)
	if n < 3 {
		return nil
	}
	var pieces polyclip.Polygon
	for i := 0; i < n; i++ {
		pieces = append(pieces, segmentQuad(seq[i], seq[(i+1)%n], r))
	}
	for i := 0; i < n; i++ {
		prev := seq[(i+n-1)%n]
		next := seq[(i+1)%n]
		if c := outerJoin(prev, seq[i], next, r, p.JoinStyle, p.MitreLimit, segments); c != nil {
			pieces = append(pieces, c)
		}
	}
	return pieces
}

// outerJoin builds the wedge on the convex side of the corner at v.
func outerJoin(prev, v, next geomedit.Coord, r float64, style geomedit.JoinStyle, limit float64, segments int) polyclip.Contour {
	turn := cross2(prev, v, next)
	if turn == 0 {
		return nil
	}
	var n1x, n1y, n2x, n2y float64
	if turn > 0 { // left turn, wedge on the right side
		n1x, n1y = rightNormal(prev, v)
		n2x, n2y = rightNormal(v, next)
	} else {
		n1x, n1y = leftNormal(prev, v)
		n2x, n2y = leftNormal(v, next)
	}
	return joinContour(v,
		geomedit.Coord{X: v.X + n1x*r, Y: v.Y + n1y*r},
		geomedit.Coord{X: v.X + n2x*r, Y: v.Y + n2y*r},
		r, style, limit, segments)
}

// joinContour fills the wedge between corner points c1 and c2 around v
// at radius r.
func joinContour(v, c1, c2 geomedit.Coord, r float64, style geomedit.JoinStyle, limit float64, segments int) polyclip.Contour {
	if math.Hypot(c2.X-c1.X, c2.Y-c1.Y) < 1e-12 {
		return nil
	}
	switch style {
	case geomedit.JoinBevel:
		return polyclip.Contour{clipPt(v), clipPt(c1), clipPt(c2)}
	case geomedit.JoinMitre:
		bx, by := unit(c1.X+c2.X-2*v.X, c1.Y+c2.Y-2*v.Y)
		n1x, n1y := unit(c1.X-v.X, c1.Y-v.Y)
		cosHalf := bx*n1x + by*n1y
		if cosHalf > 1e-9 {
			apexLen := r / cosHalf
			if apexLen <= limit*r {
				apex := geomedit.Coord{X: v.X + bx*apexLen, Y: v.Y + by*apexLen}
				return polyclip.Contour{clipPt(v), clipPt(c1), clipPt(apex), clipPt(c2)}
			}
		}
		return polyclip.Contour{clipPt(v), clipPt(c1), clipPt(c2)}
	default: // round
		c := polyclip.Contour{clipPt(v), clipPt(c1)}
		for _, pt := range arcBetween(v, c1, c2, r, segments) {
			c = append(c, clipPt(pt))
		}
		return append(c, clipPt(c2))
	}
}

// arcBetween interpolates the shorter arc around center from c1 to c2
// at radius r, excluding both ends.
func arcBetween(center, c1, c2 geomedit.Coord, r float64, segments int) []geomedit.Coord {
	a0 := math.Atan2(c1.Y-center.Y, c1.X-center.X)
	a1 := math.Atan2(c2.Y-center.Y, c2.X-center.X)
	sweep := a1 - a0
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep < -math.Pi {
		sweep += 2 * math.Pi
	}
	steps := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2) * float64(segments)))
	var out []geomedit.Coord
	for i := 1; i < steps; i++ {
		a := a0 + sweep*float64(i)/float64(steps)
		out = append(out, geomedit.Coord{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)})
	}
	return out
}

func segmentQuad(a, b geomedit.Coord, r float64) polyclip.Contour {
	nx, ny := leftNormal(a, b)
	return polyclip.Contour{
		{X: a.X + nx*r, Y: a.Y + ny*r},
		{X: b.X + nx*r, Y: b.Y + ny*r},
		{X: b.X - nx*r, Y: b.Y - ny*r},
		{X: a.X - nx*r, Y: a.Y - ny*r},
	}
}

// circleContour approximates a circle with 4*segments vertices.
func circleContour(c geomedit.Coord, r float64, segments int) polyclip.Contour {
	n := 4 * segments
	out := make(polyclip.Contour, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = polyclip.Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return out
}

func leftNormal(a, b geomedit.Coord) (float64, float64) {
	ux, uy := unit(b.X-a.X, b.Y-a.Y)
	return -uy, ux
}

func rightNormal(a, b geomedit.Coord) (float64, float64) {
	ux, uy := unit(b.X-a.X, b.Y-a.Y)
	return uy, -ux
}

func sideNormal(a, b geomedit.Coord, side geomedit.BufferSide) (float64, float64) {
	if side == geomedit.SideLeft {
		return leftNormal(a, b)
	}
	return rightNormal(a, b)
}

func clipPt(c geomedit.Coord) polyclip.Point {
	return polyclip.Point{X: c.X, Y: c.Y}
}

// lineIntersection returns the intersection of the infinite lines
// through ab and cd.
func lineIntersection(a, b, c, d geomedit.Coord) (geomedit.Coord, bool) {
	d1x, d1y := b.X-a.X, b.Y-a.Y
	d2x, d2y := d.X-c.X, d.Y-c.Y
	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < 1e-12 {
		return geomedit.Coord{}, false
	}
	t := ((c.X-a.X)*d2y - (c.Y-a.Y)*d2x) / denom
	return geomedit.Coord{X: a.X + t*d1x, Y: a.Y + t*d1y}, true
}

func dedupe(seq []geomedit.Coord) []geomedit.Coord {
	if len(seq) == 0 {
		return seq
	}
	out := seq[:1:1]
	for _, c := range seq[1:] {
		last := out[len(out)-1]
		if c.X != last.X || c.Y != last.Y {
			out = append(out, c)
		}
	}
	return out
}

// toClipPolygon converts ring coordinates to clipper contours, dropping
// the closing vertex the clipper treats as implicit.
func toClipPolygon(rings [][]geomedit.Coord) polyclip.Polygon {
	var out polyclip.Polygon
	for _, ring := range rings {
		seq := dedupe(ring)
		if len(seq) >= 2 && seq[0].X == seq[len(seq)-1].X && seq[0].Y == seq[len(seq)-1].Y {
			seq = seq[:len(seq)-1]
		}
		if len(seq) < 3 {
			continue
		}
		c := make(polyclip.Contour, len(seq))
		for i, pt := range seq {
			c[i] = clipPt(pt)
		}
		out = append(out, c)
	}
	return out
}

// unionClip folds a contour soup into a single merged clipper region.
func unionClip(pieces polyclip.Polygon) polyclip.Polygon {
	if len(pieces) == 0 {
		return nil
	}
	acc := polyclip.Polygon{pieces[0]}
	for _, c := range pieces[1:] {
		acc = acc.Construct(polyclip.UNION, polyclip.Polygon{c})
	}
	return acc
}

// unionContours merges a contour soup and returns it as a library
// polygon with closed rings.
func unionContours(pieces polyclip.Polygon) geom.Polygon {
	merged := unionClip(pieces)
	if merged == nil {
		return nil
	}
	return clipToGeomPolygon(merged)
}

func clipToGeomPolygon(p polyclip.Polygon) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, c := range p {
		ring := make([]geom.Point, len(c)+1)
		for j, pt := range c {
			ring[j] = geom.Point(pt)
		}
		ring[len(c)] = ring[0]
		out[i] = ring
	}
	return out
}
