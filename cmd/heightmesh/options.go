package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/heightmesh/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

// Options for one run of the command. They come from three layers: the
// defaults below, then an optional YAML file given with --config, then flags.
type Options struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	ZScale       float64 `yaml:"zscale"`
	Exaggeration float64 `yaml:"exaggeration"`

	// In height map units, where the full gray range is 1
	MaxError     float64 `yaml:"max_error"`
	MaxTriangles int     `yaml:"max_triangles"`
	MaxPoints    int     `yaml:"max_points"`

	Base         float64 `yaml:"base"`
	Level        bool    `yaml:"level"`
	Invert       bool    `yaml:"invert"`
	Blur         float64 `yaml:"blur"`
	Gamma        float64 `yaml:"gamma"`
	BorderSize   int     `yaml:"border_size"`
	BorderHeight float64 `yaml:"border_height"`

	NormalMap     string  `yaml:"normal_map"`
	Hillshade     string  `yaml:"hillshade"`
	ShadeAltitude float64 `yaml:"shade_altitude"`
	ShadeAzimuth  float64 `yaml:"shade_azimuth"`

	PNG    string `yaml:"png"`
	SVG    string `yaml:"svg"`
	Imgcat bool   `yaml:"imgcat"`

	Color   bool `yaml:"color"`
	Verbose bool `yaml:"verbose"`
}

func DefaultOptions() Options {
	return Options{
		Output:        "terrain.stl",
		ZScale:        30,
		Exaggeration:  1,
		MaxError:      0.001,
		Level:         true,
		BorderHeight:  1,
		ShadeAltitude: 45,
		Color:         true,
	}
}

func (o Options) Config() advanced.Config {
	return advanced.Config{
		MaxError:     o.MaxError,
		MaxTriangles: o.MaxTriangles,
		MaxPoints:    o.MaxPoints,
	}
}

// Merge a YAML file over o. Keys missing from the file keep their value.
func (o *Options) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}

// Parse the command line. Flags are declared with the config file's values as
// their defaults, so anything given explicitly wins over the file.
func ParseOptions(args []string) (Options, error) {
	opts := DefaultOptions()
	if path := configPath(args); path != "" {
		if err := opts.LoadFile(path); err != nil {
			return opts, err
		}
	}

	app := kingpin.New("heightmesh", "Triangulate a height map into an STL mesh.")
	app.HelpFlag.Short('h')

	var ignored string
	app.Flag("config", "YAML file with default options").StringVar(&ignored)

	app.Arg("input", "Height map image (png, jpeg, gif, bmp, tiff or webp)").
		Default(opts.Input).StringVar(&opts.Input)
	app.Flag("output", "STL file to write").Short('o').
		Default(opts.Output).StringVar(&opts.Output)

	app.Flag("zscale", "Z scale relative to x and y").Short('z').
		Default(formatFloat(opts.ZScale)).Float64Var(&opts.ZScale)
	app.Flag("exaggeration", "Extra z exaggeration").Short('x').
		Default(formatFloat(opts.Exaggeration)).Float64Var(&opts.Exaggeration)

	app.Flag("error", "Maximum triangulation error, as a fraction of the height range").Short('e').
		Default(formatFloat(opts.MaxError)).Float64Var(&opts.MaxError)
	app.Flag("triangles", "Maximum number of triangles (0 for no limit)").Short('t').
		Default(strconv.Itoa(opts.MaxTriangles)).IntVar(&opts.MaxTriangles)
	app.Flag("points", "Maximum number of vertices (0 for no limit)").Short('p').
		Default(strconv.Itoa(opts.MaxPoints)).IntVar(&opts.MaxPoints)

	app.Flag("base", "Solid base height, relative to the height range (0 for none)").Short('b').
		Default(formatFloat(opts.Base)).Float64Var(&opts.Base)
	app.Flag("level", "Stretch the input to the full height range").
		Default(strconv.FormatBool(opts.Level)).BoolVar(&opts.Level)
	app.Flag("invert", "Invert the height map").
		Default(strconv.FormatBool(opts.Invert)).BoolVar(&opts.Invert)
	app.Flag("blur", "Gaussian blur sigma in pixels (0 for none)").
		Default(formatFloat(opts.Blur)).Float64Var(&opts.Blur)
	app.Flag("gamma", "Gamma curve exponent (0 for none)").Short('g').
		Default(formatFloat(opts.Gamma)).Float64Var(&opts.Gamma)
	app.Flag("border-size", "Border size in pixels").
		Default(strconv.Itoa(opts.BorderSize)).IntVar(&opts.BorderSize)
	app.Flag("border-height", "Border height, relative to the height range").
		Default(formatFloat(opts.BorderHeight)).Float64Var(&opts.BorderHeight)

	app.Flag("normal-map", "Also write a normal map PNG to this path").
		Default(opts.NormalMap).StringVar(&opts.NormalMap)
	app.Flag("hillshade", "Also write a hillshade PNG to this path").
		Default(opts.Hillshade).StringVar(&opts.Hillshade)
	app.Flag("shade-alt", "Hillshade light altitude in degrees").
		Default(formatFloat(opts.ShadeAltitude)).Float64Var(&opts.ShadeAltitude)
	app.Flag("shade-az", "Hillshade light azimuth in degrees").
		Default(formatFloat(opts.ShadeAzimuth)).Float64Var(&opts.ShadeAzimuth)

	app.Flag("png", "Also draw the mesh to this PNG").
		Default(opts.PNG).StringVar(&opts.PNG)
	app.Flag("svg", "Also write the mesh outline to this SVG").
		Default(opts.SVG).StringVar(&opts.SVG)
	app.Flag("imgcat", "Print a drawing of the mesh to the terminal (iTerm only)").
		Default(strconv.FormatBool(opts.Imgcat)).BoolVar(&opts.Imgcat)

	app.Flag("color", "Color the output").
		Default(strconv.FormatBool(opts.Color)).BoolVar(&opts.Color)
	app.Flag("verbose", "Log every refinement step to stderr").Short('v').
		Default(strconv.FormatBool(opts.Verbose)).BoolVar(&opts.Verbose)

	if _, err := app.Parse(args); err != nil {
		return opts, errors.Wrap(err, "parsing arguments")
	}
	if opts.Input == "" {
		return opts, errors.New("no input height map given")
	}
	return opts, nil
}

// Find the value of --config before the real parse, which needs the file's
// contents for its defaults.
func configPath(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
