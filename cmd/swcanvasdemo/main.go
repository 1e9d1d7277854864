// Command swcanvasdemo renders a handful of fixed scenarios through the
// canvas package and writes each as a PNG, exercising the library the
// way a real consumer would. PNG encoding/visual comparison tooling is
// the host's job, not the core's (spec §9 Non-goals); this binary is
// only a thin sample consumer.
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/davidedc/swcanvas/canvas"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	scenario string
	outPath  string
)

func main() {
	root := &cobra.Command{
		Use:   "swcanvasdemo",
		Short: "Render a fixed canvas scenario to a PNG file",
		RunE:  run,
	}
	root.Flags().StringVar(&scenario, "scenario", "rect", "scenario to render: rect, gradient, stroke, clip, pattern, shadow")
	root.Flags().StringVar(&outPath, "out", "out.png", "output PNG path")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()

	surf, err := canvas.NewSurface(200, 200)
	if err != nil {
		return err
	}
	ctx := canvas.NewContext(surf, canvas.WithLogger(log))

	switch scenario {
	case "rect":
		renderRectScenario(ctx)
	case "gradient":
		renderGradientScenario(ctx)
	case "stroke":
		renderStrokeScenario(ctx)
	case "clip":
		renderClipScenario(ctx)
	case "pattern":
		renderPatternScenario(ctx)
	case "shadow":
		renderShadowScenario(ctx)
	default:
		return fmt.Errorf("unknown scenario %q", scenario)
	}

	return writePNG(surf, outPath)
}

func renderRectScenario(ctx *canvas.Context) {
	_ = ctx.SetFillColor("cornflowerblue")
	ctx.FillRect(20, 20, 160, 160)
	_ = ctx.SetFillColor("rgba(255,0,0,0.5)")
	ctx.FillRect(60, 60, 100, 100)
}

func renderGradientScenario(ctx *canvas.Context) {
	grad := ctx.CreateLinearGradient(0, 0, 200, 200)
	grad.AddColorStop(0, canvas.RGBA{R: 255, A: 255})
	grad.AddColorStop(1, canvas.RGBA{B: 255, A: 255})
	ctx.SetFillPaint(grad)
	ctx.FillRect(0, 0, 200, 200)
}

func renderStrokeScenario(ctx *canvas.Context) {
	_ = ctx.SetStrokeColor("black")
	ctx.SetLineWidth(8)
	ctx.SetLineJoin(canvas.JoinRound)
	ctx.SetLineCap(canvas.CapRound)
	ctx.MoveTo(20, 100)
	ctx.LineTo(100, 20)
	ctx.LineTo(180, 100)
	ctx.LineTo(100, 180)
	ctx.ClosePath()
	ctx.Stroke()
}

func renderClipScenario(ctx *canvas.Context) {
	ctx.Arc(100, 100, 80, 0, 6.283185307179586, false)
	ctx.Clip(canvas.NonZero)
	_ = ctx.SetFillColor("darkorange")
	ctx.FillRect(0, 0, 200, 200)
}

func renderPatternScenario(ctx *canvas.Context) {
	tile := canvas.NewImageData(2, 2)
	set := func(i int, c canvas.RGBA) {
		tile.Data[i*4], tile.Data[i*4+1], tile.Data[i*4+2], tile.Data[i*4+3] = c.R, c.G, c.B, c.A
	}
	set(0, canvas.RGBA{R: 255, A: 255})
	set(1, canvas.RGBA{A: 255})
	set(2, canvas.RGBA{A: 255})
	set(3, canvas.RGBA{R: 255, A: 255})
	pat := ctx.CreatePattern(tile, canvas.RepeatBoth)
	ctx.SetFillPaint(pat)
	ctx.FillRect(0, 0, 200, 200)
}

func renderShadowScenario(ctx *canvas.Context) {
	_ = ctx.SetShadowColor("rgba(0,0,0,0.6)")
	ctx.SetShadowOffsetX(10)
	ctx.SetShadowOffsetY(10)
	ctx.SetShadowBlur(8)
	_ = ctx.SetFillColor("white")
	ctx.FillRect(40, 40, 100, 100)
}

func writePNG(surf *canvas.Surface, path string) error {
	data := surf.GetImageData(0, 0, surf.Width, surf.Height)
	img := image.NewNRGBA(image.Rect(0, 0, surf.Width, surf.Height))
	for y := 0; y < surf.Height; y++ {
		for x := 0; x < surf.Width; x++ {
			i := (y*surf.Width + x) * 4
			px := canvas.RGBA{R: data.Data[i], G: data.Data[i+1], B: data.Data[i+2], A: data.Data[i+3]}
			img.SetNRGBA(x, y, px.ToColorColor())
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
