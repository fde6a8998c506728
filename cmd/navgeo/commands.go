package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tidwall/navgeo"
	"github.com/tidwall/navgeo/internal/config"
)

type command struct {
	name   string
	params []string
	flags  func(fs *pflag.FlagSet, e *env)
	run    func(e *env, v []float64) (any, error)
}

func (c command) usage() string {
	return strings.Join(c.params, " ")
}

// env is the state a command runs with.
type env struct {
	unit     navgeo.Length
	unitName string
	policy   string
}

func (e *env) length(v float64) navgeo.Length {
	return navgeo.Length(v) * e.unit
}

type point struct {
	Lat  float64 `yaml:"lat" json:"lat"`
	Long float64 `yaml:"long" json:"long"`
}

func toPoint(c navgeo.Coordinates) point {
	return point{Lat: c.Lat.Degrees(), Long: c.Long.Degrees()}
}

type bearingResult struct {
	Initial float64 `yaml:"initial_bearing" json:"initial_bearing"`
	Final   float64 `yaml:"final_bearing" json:"final_bearing"`
}

type distanceResult struct {
	Distance float64 `yaml:"distance" json:"distance"`
	Unit     string  `yaml:"unit" json:"unit"`
}

type projectResult struct {
	Lat          float64 `yaml:"lat" json:"lat"`
	Long         float64 `yaml:"long" json:"long"`
	FinalBearing float64 `yaml:"final_bearing" json:"final_bearing"`
}

type boundsResult struct {
	SouthWest point `yaml:"sw" json:"sw"`
	NorthEast point `yaml:"ne" json:"ne"`
	Wraps     bool  `yaml:"wraps" json:"wraps"`
}

type intersectResult struct {
	First  point `yaml:"first" json:"first"`
	Second point `yaml:"second" json:"second"`
}

type smallResult struct {
	Intersects bool    `yaml:"intersects" json:"intersects"`
	Points     []point `yaml:"points,omitempty" json:"points,omitempty"`
}

var commands = []command{
	{
		name:   "bearing",
		params: []string{"lat1", "lon1", "lat2", "lon2"},
		run: func(_ *env, v []float64) (any, error) {
			var r bearingResult
			navgeo.Inverse(v[0], v[1], v[2], v[3], nil, &r.Initial, &r.Final)
			return r, nil
		},
	},
	{
		name:   "distance",
		params: []string{"lat1", "lon1", "lat2", "lon2"},
		run: func(e *env, v []float64) (any, error) {
			var s12 float64
			navgeo.Inverse(v[0], v[1], v[2], v[3], &s12, nil, nil)
			return distanceResult{Distance: float64(navgeo.Length(s12) / e.unit), Unit: e.unitName}, nil
		},
	},
	{
		name:   "project",
		params: []string{"lat", "lon", "bearing", "distance"},
		run: func(e *env, v []float64) (any, error) {
			var r projectResult
			navgeo.Direct(v[0], v[1], v[2], e.length(v[3]).Meters(), &r.Lat, &r.Long, &r.FinalBearing)
			return r, nil
		},
	},
	{
		name:   "bounds",
		params: []string{"lat", "lon", "distance"},
		run: func(e *env, v []float64) (any, error) {
			var r boundsResult
			r.SouthWest.Lat, r.SouthWest.Long, r.NorthEast.Lat, r.NorthEast.Long =
				navgeo.Bounds(v[0], v[1], e.length(v[2]).Meters())
			r.Wraps = r.SouthWest.Long > r.NorthEast.Long
			return r, nil
		},
	},
	{
		name:   "intersect",
		params: []string{"lat1", "lon1", "bearing1", "lat2", "lon2", "bearing2"},
		run: func(_ *env, v []float64) (any, error) {
			first, second := navgeo.NewCoordinates(v[0], v[1]).PlaceBearingIntersection(
				navgeo.Degrees(v[2]), navgeo.NewCoordinates(v[3], v[4]), navgeo.Degrees(v[5]))
			return intersectResult{First: toPoint(first), Second: toPoint(second)}, nil
		},
	},
	{
		name:   "small",
		params: []string{"clat", "clon", "radius", "lat", "lon", "bearing"},
		flags: func(fs *pflag.FlagSet, e *env) {
			fs.StringVarP(&e.policy, "policy", "p", "both", "which intersection to report: both, first, closest")
		},
		run: func(e *env, v []float64) (any, error) {
			center := navgeo.NewCoordinates(v[0], v[1])
			radius := e.length(v[2])
			ref := navgeo.NewCoordinates(v[3], v[4])
			bearing := navgeo.Degrees(v[5])

			var r smallResult
			switch e.policy {
			case "both":
				a, b, ok := center.SmallCircleGreatCircleIntersection(radius, ref, bearing)
				if ok {
					r = smallResult{Intersects: true, Points: []point{toPoint(a), toPoint(b)}}
				}
			case "first":
				p, ok := center.FirstSmallCircleIntersection(radius, ref, bearing)
				if ok {
					r = smallResult{Intersects: true, Points: []point{toPoint(p)}}
				}
			case "closest":
				p, ok := center.ClosestSmallCircleIntersection(radius, ref, bearing)
				if ok {
					r = smallResult{Intersects: true, Points: []point{toPoint(p)}}
				}
			default:
				return nil, fmt.Errorf("unknown policy %q", e.policy)
			}
			return r, nil
		},
	},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

var units = map[string]navgeo.Length{
	"nm": navgeo.NauticalMile,
	"m":  navgeo.Meter,
	"km": navgeo.Kilometer,
}

// execute runs the command named by args[0] and writes its result to w.
func execute(cfg config.Config, args []string, w, stderr io.Writer, log *zap.Logger) error {
	c, ok := lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown command %q", args[0])
	}

	e := &env{unit: units[cfg.Output.Unit], unitName: cfg.Output.Unit}
	fs := pflag.NewFlagSet(c.name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	if c.flags != nil {
		c.flags(fs, e)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", c.name, err)
	}

	v, err := parseArgs(c, fs.Args())
	if err != nil {
		return err
	}

	log.Debug("running command",
		zap.String("command", c.name),
		zap.Float64s("args", v),
		zap.String("unit", e.unitName),
	)

	result, err := c.run(e, v)
	if err != nil {
		return fmt.Errorf("%s: %w", c.name, err)
	}
	if err := encode(w, cfg.Output.Format, result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func parseArgs(c command, args []string) ([]float64, error) {
	if len(args) != len(c.params) {
		return nil, fmt.Errorf("%s: expected %d arguments (%s), got %d",
			c.name, len(c.params), c.usage(), len(args))
	}
	v := make([]float64, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: parse %s: %w", c.name, c.params[i], err)
		}
		v[i] = f
	}
	return v, nil
}

func encode(w io.Writer, format string, v any) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
