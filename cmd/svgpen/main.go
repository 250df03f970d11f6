package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/benoitkugler/svgpen/gcode"
	"github.com/benoitkugler/svgpen/preview"
	"github.com/benoitkugler/svgpen/svgpoly"
	"github.com/benoitkugler/svgpen/toolpath"
	"github.com/srwiley/oksvg"
	"github.com/tdewolff/argp"
)

type Draw struct {
	Output     string  `short:"o" desc:"Output G-code file"`
	Preview    string  `short:"p" desc:"Output PNG preview"`
	Width      float64 `default:"500" desc:"Width of the drawing surface"`
	Height     float64 `default:"1000" desc:"Height of the drawing surface"`
	Resolution float64 `default:"10" desc:"Size of the pen marks"`
	Approach   float64 `default:"100" desc:"Pen clearance between paths"`
	MinSpacing float64 `name:"min-spacing" default:"0" desc:"Minimum distance between points, in SVG units"`
	Density    float64 `default:"1" desc:"Preview pixels per unit"`
	PenDown    int     `name:"pen-down" default:"1000" desc:"Spindle value lowering the pen"`
	FeedRate   int     `name:"feed-rate" default:"1500" desc:"Drawing speed"`
	Strict     bool    `desc:"Fail on unsupported SVG elements"`
	Input      string  `index:"0" desc:"Input SVG file"`
}

func main() {
	root := argp.NewCmd(&Draw{}, "Draw SVG images with a pen mounted on a robot arm or a plotter")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Draw) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	f, err := os.Open(cmd.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	// nothing is written to disk unless the whole drawing succeeds
	var code, img bytes.Buffer
	var codeW, imgW io.Writer
	if cmd.Output != "" {
		codeW = &code
	}
	if cmd.Preview != "" {
		imgW = &img
	}
	if err := cmd.run(f, codeW, imgW, os.Stdout); err != nil {
		return err
	}

	if codeW != nil {
		if err := os.WriteFile(cmd.Output, code.Bytes(), 0o644); err != nil {
			return err
		}
		log.Printf("G-code written to %s", cmd.Output)
	}
	if imgW != nil {
		if err := os.WriteFile(cmd.Preview, img.Bytes(), 0o644); err != nil {
			return err
		}
		log.Printf("preview written to %s", cmd.Preview)
	}
	return nil
}

// run draws the SVG image read from `in`. The G-code and the PNG preview
// are written to `code` and `img`, each one being optional. When both
// are nil, the commands are printed to `stdout` instead.
// Outputs are only written once every command has been dispatched.
func (cmd *Draw) run(in io.Reader, code, img, stdout io.Writer) error {
	mode := oksvg.WarnErrorMode
	if cmd.Strict {
		mode = oksvg.StrictErrorMode
	}
	doc, err := svgpoly.Load(in, svgpoly.LoadOptions{ErrorMode: mode, MinSpacing: cmd.MinSpacing})
	if err != nil {
		return err
	}
	log.Printf("loaded %d paths (%d points), size %s", len(doc.Segments), doc.NumPoints(), doc.Size())

	cfg := toolpath.Config{
		TargetWidth:     cmd.Width,
		TargetHeight:    cmd.Height,
		PixelResolution: cmd.Resolution,
		Approach:        cmd.Approach,
	}
	home := toolpath.Translate(0, 0, -cmd.Approach)
	seq, scale, err := toolpath.Prepare(doc, cfg, toolpath.Identity(), home)
	if err != nil {
		return err
	}
	log.Printf("fitted to %s with scale %.4f", cfg.Target(), scale)

	var (
		sinks  toolpath.MultiSink
		buffer bytes.Buffer
		gw     *gcode.Writer
		board  *preview.Board
	)
	if code != nil {
		gcfg := gcode.DefaultConfig()
		gcfg.PenDown, gcfg.FeedRate = cmd.PenDown, cmd.FeedRate
		gw = gcode.NewWriter(&buffer, &gcfg)
		gw.Preamble()
		sinks = append(sinks, gw)
	}
	if img != nil {
		board, err = preview.NewBoard(cfg.Target(), cmd.Density, doc.Resolution())
		if err != nil {
			return err
		}
		sinks = append(sinks, board)
	}
	if len(sinks) == 0 {
		sinks = append(sinks, toolpath.SinkFunc(func(_ context.Context, c toolpath.Command) error {
			_, err := fmt.Fprintln(stdout, c)
			return err
		}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := toolpath.Dispatch(ctx, seq, sinks); err != nil {
		return err
	}
	log.Printf("%d commands dispatched", toolpath.Count(doc))

	if gw != nil {
		gw.Postamble()
		if err := gw.Flush(); err != nil {
			return err
		}
		if _, err := buffer.WriteTo(code); err != nil {
			return err
		}
	}
	if board != nil {
		log.Printf("%d marks on the preview", board.Marks())
		if err := board.WritePNG(img); err != nil {
			return err
		}
	}
	return nil
}
