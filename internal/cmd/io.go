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

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	goshp "github.com/jonas-p/go-shp"

	"github.com/vovoma/geomedit"
	"github.com/vovoma/geomedit/geomop"
)

// readGeometry loads a geometry from the format implied by the file
// extension: .wkt, .wkb, or .shp.
func readGeometry(filename string) (geomedit.Geometry, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wkt":
		b, err := os.ReadFile(filename)
		if err != nil {
			return geomedit.Geometry{}, err
		}
		g := geomedit.NewFromWKT(string(b))
		if g.IsEmpty() {
			return geomedit.Geometry{}, fmt.Errorf("geomedit: %s does not contain valid well-known text", filename)
		}
		return g, nil
	case ".wkb":
		b, err := os.ReadFile(filename)
		if err != nil {
			return geomedit.Geometry{}, err
		}
		g := geomedit.NewFromWKB(b)
		if g.IsEmpty() {
			return geomedit.Geometry{}, fmt.Errorf("geomedit: %s does not contain valid well-known binary", filename)
		}
		return g, nil
	case ".shp":
		return readShapefile(filename)
	}
	return geomedit.Geometry{}, fmt.Errorf("geomedit: unsupported input format for %s", filename)
}

// readShapefile loads all features from a shapefile and collects them
// into a single geometry.
func readShapefile(filename string) (geomedit.Geometry, error) {
	d, err := shp.NewDecoder(filename)
	if err != nil {
		return geomedit.Geometry{}, err
	}
	defer d.Close()
	var rows []geomedit.Geometry
	for {
		var rec struct{ Geom geom.Geom }
		if !d.DecodeRow(&rec) {
			break
		}
		g := geomop.FromLibrary(rec.Geom)
		if !g.IsEmpty() {
			rows = append(rows, g)
		}
	}
	if err := d.Error(); err != nil {
		return geomedit.Geometry{}, err
	}
	if len(rows) == 0 {
		return geomedit.Geometry{}, fmt.Errorf("geomedit: %s contains no usable features", filename)
	}
	return geomedit.Collect(rows), nil
}

// writeGeometry stores a geometry in the format implied by the file
// extension. precision limits the decimal digits of text output; a
// negative value keeps full precision.
func writeGeometry(filename string, g geomedit.Geometry, precision int) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wkt":
		s := g.AsWKT(precision)
		if s == "" {
			return fmt.Errorf("geomedit: geometry cannot be written as well-known text")
		}
		return os.WriteFile(filename, []byte(s+"\n"), 0644)
	case ".wkb":
		b := g.AsWKB()
		if b == nil {
			return fmt.Errorf("geomedit: geometry cannot be written as well-known binary")
		}
		return os.WriteFile(filename, b, 0644)
	case ".shp":
		return writeShapefile(filename, g)
	}
	return fmt.Errorf("geomedit: unsupported output format for %s", filename)
}

// writeShapefile stores each part of the geometry as one feature with
// its area and length as attributes.
func writeShapefile(filename string, g geomedit.Geometry) error {
	var shpType goshp.ShapeType
	switch g.Type() {
	case geomedit.PointGeometry:
		shpType = goshp.POINT
		if g.IsMultipart() {
			shpType = goshp.MULTIPOINT
		}
	case geomedit.LineGeometry:
		shpType = goshp.POLYLINE
	case geomedit.PolygonGeometry:
		shpType = goshp.POLYGON
	default:
		return fmt.Errorf("geomedit: geometry kind %s cannot be written as a shapefile", g.WKBType())
	}
	fields := []goshp.Field{
		goshp.FloatField("area", 14, 8),
		goshp.FloatField("length", 14, 8),
	}
	enc, err := shp.NewEncoderFromFields(filename, shpType, fields...)
	if err != nil {
		return err
	}
	defer enc.Close()
	parts := []geomedit.Geometry{g}
	if g.WKBType() == geomedit.KindGeometryCollection {
		parts = g.Parts()
	}
	for _, part := range parts {
		lib := engine.ToLibrary(part)
		if lib == nil {
			return fmt.Errorf("geomedit: part cannot be written as a shapefile feature")
		}
		if err := enc.EncodeFields(lib, engine.Area(part), engine.Length(part)); err != nil {
			return err
		}
	}
	return nil
}
