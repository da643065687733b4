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

// Package cmd holds the geomedit command-line interface.
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovoma/geomedit"
	"github.com/vovoma/geomedit/geomop"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

// engine is the geometry engine shared by all commands.
var engine = geomop.New()

func init() {
	Cfg = viper.New()
	Cfg.SetEnvPrefix("GEOMEDIT")
	Cfg.AutomaticEnv()

	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:  true,
		DisableSorting: true,
	})

	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(infoCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(bufferCmd)
	Root.AddCommand(simplifyCmd)
	Root.AddCommand(validateCmd)

	Root.PersistentFlags().String("config", "", "configuration file location")
	Root.PersistentFlags().String("loglevel", "info", "logging level: debug, info, warning, or error")
	Cfg.BindPFlag("config", Root.PersistentFlags().Lookup("config"))
	Cfg.BindPFlag("loglevel", Root.PersistentFlags().Lookup("loglevel"))

	convertCmd.Flags().Int("precision", -1,
		"Number of decimal digits in text output. The default keeps full float64 precision.")
	Cfg.BindPFlag("precision", convertCmd.Flags().Lookup("precision"))

	bufferCmd.Flags().Float64("distance", 1, "Buffer distance.")
	bufferCmd.Flags().Int("segments", 8, "Straight segments per quarter circle in round pieces.")
	bufferCmd.Flags().String("endcap", "round", "End cap style: round, flat, or square.")
	bufferCmd.Flags().String("join", "round", "Join style: round, mitre, or bevel.")
	bufferCmd.Flags().Float64("mitrelimit", 2, "Corner extension limit for mitred joins.")
	bufferCmd.Flags().String("side", "", "Buffer one side only: left or right. Ends become flat.")
	for _, name := range []string{"distance", "segments", "endcap", "join", "mitrelimit", "side"} {
		Cfg.BindPFlag(name, bufferCmd.Flags().Lookup(name))
	}

	simplifyCmd.Flags().Float64("tolerance", 1, "Maximum allowed deviation from the original shape.")
	Cfg.BindPFlag("tolerance", simplifyCmd.Flags().Lookup("tolerance"))
}

// setConfig finds and reads in the configuration file, if there is one,
// and applies the configured log level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("geomedit: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("loglevel"))
	if err != nil {
		return fmt.Errorf("geomedit: %v", err)
	}
	logrus.SetLevel(level)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "geomedit",
	Short: "A vector geometry editing toolkit.",
	Long: `geomedit reads, edits, and writes vector geometries in well-known
text, well-known binary, and shapefile form. Use the subcommands
specified below to access the functionality.

Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the
format 'GEOMEDIT_var' where 'var' is the name of the variable to be
set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of geomedit.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("geomedit v%s\n", geomedit.Version)
	},
	DisableAutoGenTag: true,
}

var infoCmd = &cobra.Command{
	Use:   "info [input file]",
	Short: "Describe a geometry file",
	Long: `info reads a geometry and reports its type, size, extent, and
measurements.`,
	Args:              cobra.ExactArgs(1),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readGeometry(args[0])
		if err != nil {
			return err
		}
		bb := g.BoundingBox()
		logger.WithFields(logrus.Fields{
			"kind":     g.WKBType().String(),
			"parts":    g.PartCount(),
			"vertices": g.VertexCount(),
			"is3D":     g.Is3D(),
			"measured": g.IsMeasured(),
		}).Info("geometry")
		logger.WithFields(logrus.Fields{
			"xmin": bb.XMin, "ymin": bb.YMin, "xmax": bb.XMax, "ymax": bb.YMax,
		}).Info("extent")
		logger.WithFields(logrus.Fields{
			"area":   engine.Area(g),
			"length": engine.Length(g),
			"valid":  engine.IsValid(g),
		}).Info("measurements")
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input file]",
	Short: "Check a geometry for structural and topological problems",
	Long: `validate reads a geometry and reports every problem found: unclosed
or undersized rings, duplicate vertices, ring self-intersections,
misplaced holes, and overlapping parts. The command exits nonzero when
problems are present.`,
	Args:              cobra.ExactArgs(1),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readGeometry(args[0])
		if err != nil {
			return err
		}
		errs := g.Validate(engine)
		for _, e := range errs {
			if e.HasLocation {
				logger.WithFields(logrus.Fields{
					"x": e.Location.X, "y": e.Location.Y,
				}).Warn(e.Message)
			} else {
				logger.Warn(e.Message)
			}
		}
		if len(errs) > 0 {
			return fmt.Errorf("geomedit: %d validation problem(s) found", len(errs))
		}
		logger.Info("geometry is valid")
		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [input file] [output file]",
	Short: "Convert a geometry between storage formats",
	Long: `convert reads a geometry and writes it in the format implied by the
output file extension: .wkt for well-known text, .wkb for well-known
binary, and .shp for an ESRI shapefile.`,
	Args:              cobra.ExactArgs(2),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readGeometry(args[0])
		if err != nil {
			return err
		}
		return writeGeometry(args[1], g, cast.ToInt(Cfg.Get("precision")))
	},
}

var bufferCmd = &cobra.Command{
	Use:   "buffer [input file] [output file]",
	Short: "Buffer a geometry",
	Long: `buffer computes the region within the given distance of the input
geometry and writes it to the output file. A negative distance erodes
polygonal input. With --side, lines are buffered on one side only.`,
	Args:              cobra.ExactArgs(2),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readGeometry(args[0])
		if err != nil {
			return err
		}
		p, err := bufferParams()
		if err != nil {
			return err
		}
		distance := cast.ToFloat64(Cfg.Get("distance"))
		segments := cast.ToInt(Cfg.Get("segments"))
		var out geomedit.Geometry
		switch side := Cfg.GetString("side"); side {
		case "":
			out = engine.Buffer(g, distance, segments, p)
		case "left":
			out = engine.SingleSidedBuffer(g, distance, segments, geomedit.SideLeft, p)
		case "right":
			out = engine.SingleSidedBuffer(g, distance, segments, geomedit.SideRight, p)
		default:
			return fmt.Errorf("geomedit: invalid buffer side %q", side)
		}
		if out.IsEmpty() {
			return fmt.Errorf("geomedit: buffer result is empty")
		}
		logger.WithFields(logrus.Fields{"area": engine.Area(out)}).Info("buffered")
		return writeGeometry(args[1], out, -1)
	},
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify [input file] [output file]",
	Short: "Simplify a geometry",
	Long: `simplify removes vertices from the input geometry while keeping the
result within the given tolerance of the original shape.`,
	Args:              cobra.ExactArgs(2),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readGeometry(args[0])
		if err != nil {
			return err
		}
		out := engine.Simplify(g, cast.ToFloat64(Cfg.Get("tolerance")))
		if out.IsEmpty() {
			return fmt.Errorf("geomedit: simplification result is empty")
		}
		logger.WithFields(logrus.Fields{
			"before": g.VertexCount(),
			"after":  out.VertexCount(),
		}).Info("simplified")
		return writeGeometry(args[1], out, -1)
	},
}

// bufferParams assembles buffer construction options from the
// configuration.
func bufferParams() (geomedit.BufferParams, error) {
	p := geomedit.DefaultBufferParams()
	switch s := Cfg.GetString("endcap"); s {
	case "round":
		p.EndCapStyle = geomedit.CapRound
	case "flat":
		p.EndCapStyle = geomedit.CapFlat
	case "square":
		p.EndCapStyle = geomedit.CapSquare
	default:
		return p, fmt.Errorf("geomedit: invalid end cap style %q", s)
	}
	switch s := Cfg.GetString("join"); s {
	case "round":
		p.JoinStyle = geomedit.JoinRound
	case "mitre":
		p.JoinStyle = geomedit.JoinMitre
	case "bevel":
		p.JoinStyle = geomedit.JoinBevel
	default:
		return p, fmt.Errorf("geomedit: invalid join style %q", s)
	}
	p.MitreLimit = cast.ToFloat64(Cfg.Get("mitrelimit"))
	return p, nil
}
