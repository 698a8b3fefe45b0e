package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/collide"
	"github.com/osuushi/collide/internal"
	"github.com/osuushi/collide/internal/config"
	"github.com/osuushi/collide/internal/logger"
	"github.com/osuushi/collide/internal/scene"
)

// Demo of the collision checks. A scene file lists named rectangles and
// polygons (see internal/scene); pass "-" to read it from stdin.
//
//	collide check scene.yaml
//	collide clip scene.yaml crate shelf --render clip.png
//	collide dump scene.yaml
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "collide:", err)
		os.Exit(1)
	}
}

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	cfg    *config.Config
	log    logger.Logger
	color  bool
	au     aurora.Aurora
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app := kingpin.New("collide", "Overlap, containment and clipping checks for rectangles and polygons.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	configPath := app.Flag("config", "Config file (default: collide.yaml in . or ~/.config/collide).").String()
	logLevel := app.Flag("log-level", "debug, info, warn or error.").String()
	plain := app.Flag("plain", "Disable colored output.").Bool()

	check := app.Command("check", "Check every pair of shapes in a scene.")
	checkScene := check.Arg("scene", "Scene file.").Required().String()

	clip := app.Command("clip", "Clip one rectangle of a scene by another.")
	clipScene := clip.Arg("scene", "Scene file.").Required().String()
	clipTarget := clip.Arg("target", "Name of the rectangle to clip.").Required().String()
	clipClipper := clip.Arg("clipper", "Name of the rectangle to clip by.").Required().String()
	clipRender := clip.Flag("render", "Write a PNG of the clip to this path (default from config).").String()
	clipDoRender := clip.Flag("png", "Write a PNG of the clip.").Bool()
	clipScale := clip.Flag("scale", "Pixels per scene unit (default from config).").Float64()
	clipImgcat := clip.Flag("imgcat", "Show the PNG in the terminal (iTerm only).").Bool()

	dump := app.Command("dump", "Print the decoded scene.")
	dumpScene := dump.Arg("scene", "Scene file.").Required().String()

	command, err := app.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	level := *logLevel
	if level == "" {
		level = cfg.GetLogLevel()
	}
	color := cfg.GetColor() && !*plain
	c := &cli{
		stdin:  stdin,
		stdout: stdout,
		cfg:    cfg,
		log:    logger.New(stderr, level),
		color:  color,
		au:     aurora.NewAurora(color),
	}
	if file := cfg.GetConfigFile(); file != "" {
		c.log.Debug("loaded config", "path", file)
	}

	switch command {
	case check.FullCommand():
		return c.check(*checkScene)
	case clip.FullCommand():
		output := *clipRender
		if output == "" && (*clipDoRender || *clipImgcat) {
			output = cfg.GetRenderOutput()
		}
		scale := *clipScale
		if scale <= 0 {
			scale = cfg.GetRenderScale()
		}
		return c.clip(*clipScene, *clipTarget, *clipClipper, output, scale, *clipImgcat)
	case dump.FullCommand():
		return c.dump(*dumpScene)
	}
	return errors.Errorf("unknown command %q", command)
}

func (c *cli) loadScene(path string) (*scene.Scene, error) {
	var (
		s   *scene.Scene
		err error
	)
	if path == "-" {
		s, err = scene.Decode(c.stdin)
	} else {
		s, err = scene.Load(path)
	}
	if err != nil {
		return nil, err
	}
	c.log.Info("loaded scene", "path", path, "rectangles", len(s.Rectangles), "polygons", len(s.Polygons))
	return s, nil
}

func (c *cli) check(path string) error {
	s, err := c.loadScene(path)
	if err != nil {
		return err
	}

	for i, r0 := range s.Rectangles {
		for _, r1 := range s.Rectangles[i+1:] {
			overlapping, err := collide.RectanglesOverlap(r0.Rectangle, r1.Rectangle)
			if err != nil {
				return errors.Wrapf(err, "%s and %s", r0.Name, r1.Name)
			}
			c.log.Debug("rectangle pair", "a", r0.Name, "b", r1.Name, "overlapping", overlapping)
			verdict := c.au.Faint("apart")
			if overlapping {
				verdict = c.au.Red("overlap")
			}
			fmt.Fprintf(c.stdout, "%s × %s: %s\n", r0.Name, r1.Name, verdict)
		}
	}

	for _, r := range s.Rectangles {
		for _, p := range s.Polygons {
			within, err := collide.RectangleWithinPolygon(r.Rectangle, p.Polygon)
			if err != nil {
				return errors.Wrapf(err, "%s in %s", r.Name, p.Name)
			}
			intersects, err := collide.RectangleIntersectsPolygon(r.Rectangle, p.Polygon)
			if err != nil {
				return errors.Wrapf(err, "%s and %s", r.Name, p.Name)
			}
			c.log.Debug("rectangle in polygon", "rectangle", r.Name, "polygon", p.Name, "within", within, "intersects", intersects)
			var verdict aurora.Value
			switch {
			case within:
				verdict = c.au.Green("within")
			case intersects:
				verdict = c.au.Yellow("crossing")
			default:
				verdict = c.au.Faint("outside")
			}
			fmt.Fprintf(c.stdout, "%s in %s: %s\n", r.Name, p.Name, verdict)
		}
	}
	return nil
}

func (c *cli) clip(path, targetName, clipperName, output string, scale float64, show bool) error {
	s, err := c.loadScene(path)
	if err != nil {
		return err
	}
	target, ok := s.Rectangle(targetName)
	if !ok {
		return errors.Errorf("no rectangle named %q", targetName)
	}
	clipper, ok := s.Rectangle(clipperName)
	if !ok {
		return errors.Errorf("no rectangle named %q", clipperName)
	}

	clipped, err := collide.ClipRectangle(target, clipper)
	if err != nil {
		return errors.Wrap(err, "clip")
	}

	polygon := clipped.String()
	if c.color {
		polygon = clipped.DbgString()
	}
	fmt.Fprintf(c.stdout, "polygon:  %s\n", polygon)
	fmt.Fprintf(c.stdout, "area:     %g\n", collide.Area(clipped))
	if len(clipped.Points) >= 3 {
		centroid, err := collide.Centroid(clipped)
		if err != nil {
			return errors.Wrap(err, "centroid")
		}
		fmt.Fprintf(c.stdout, "centroid: %s\n", centroid)
	}

	if output == "" {
		return nil
	}
	err = internal.RenderToFile(output, scale,
		target.Quad().ToPolygon(),
		clipper.Quad().ToPolygon(),
		clipped,
	)
	if err != nil {
		return errors.Wrap(err, "render")
	}
	c.log.Info("rendered clip", "path", output, "scale", scale)
	if show {
		return imgcat.CatFile(output, c.stdout)
	}
	return nil
}

func (c *cli) dump(path string) error {
	s, err := c.loadScene(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.stdout, "%# v\n", pretty.Formatter(s))
	return err
}
