// Command plotdemo exercises the plot rendering core: it builds a palette,
// smooths a series with a spline, arranges a label with a real font and
// records the result, printing every playback command.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/render"
	"github.com/gogpu/plot/text"
)

func main() {
	var (
		measurerName = flag.String("measurer", "shaping", "text measurer: "+strings.Join(text.Measurers(), ", "))
		label        = flag.String("text", "Temperature (°C)\nweekly average", "label text (\\n separates lines)")
		maxWidth     = flag.Float64("max-width", 120, "label width bound in pixels, 0 for none")
		rotation     = flag.Float64("rotation", 0, "label rotation in degrees")
		fontSize     = flag.Float64("font-size", 14, "label font size in pixels")
		family       = flag.String("family", text.FamilySans, "label font family")
		splineName   = flag.String("spline", "CatmullRomCentripetal", "spline algorithm")
		tolerance    = flag.Float64("tolerance", 2, "spline tolerance in pixels")
		paletteSize  = flag.Int("palette", 7, "palette size")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		plot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	measurer, err := text.NewMeasurer(*measurerName)
	if err != nil {
		log.Fatalf("Failed to create measurer: %v", err)
	}
	kind, err := plot.ParseSplineKind(*splineName)
	if err != nil {
		log.Fatalf("Invalid spline: %v", err)
	}

	cached := text.NewCachingMeasurer(measurer, 0)
	rec := render.NewRecorder(cached)

	area := plot.Rect{Left: 40, Top: 20, Width: 400, Height: 240}
	palette := plot.BlueWhiteRed(*paletteSize)
	pen := plot.SolidPen(plot.MustParseColor("#ff1f77b4"), 2)

	rec.DrawRectangle(area, plot.White, plot.SolidPen(plot.Gray, 1))
	render.WithClip(rec, plot.RectShape(area), func() {
		drawHeatStrip(rec, area, palette)
		if err := render.DrawSpline(rec, kind, series(area), false, *tolerance, pen); err != nil {
			log.Fatalf("Failed to draw spline: %v", err)
		}
	})

	font := text.NewFont(*family, *fontSize)
	rec.DrawText(plot.SP(area.Center().X, area.Bottom()+8), *label, plot.Black, text.ArrangeOptions{
		Font:                font,
		Rotation:            *rotation,
		HorizontalAlignment: text.AlignCenter,
		VerticalAlignment:   text.AlignTop,
		MaxWidth:            *maxWidth,
	})

	recording := rec.Finish()
	recording.Playback(&printer{measurer: cached})

	stats := cached.Stats()
	log.Printf("%d commands (%d culled), measurer %q, width cache hit rate %.0f%%",
		recording.Len(), recording.Culled(), *measurerName, stats.HitRate*100)
}

// drawHeatStrip fills a strip along the top of area with palette colors.
func drawHeatStrip(ctx render.Context, area plot.Rect, palette plot.Palette) {
	if palette.Len() == 0 {
		return
	}
	w := area.Width / float64(palette.Len())
	for i := 0; i < palette.Len(); i++ {
		cell := plot.Rect{Left: area.Left + float64(i)*w, Top: area.Top, Width: w, Height: 12}
		ctx.DrawRectangle(cell, palette.At(i), nil)
	}
}

// series returns a damped sine sampled across area.
func series(area plot.Rect) []plot.ScreenPoint {
	const n = 9
	pts := make([]plot.ScreenPoint, n)
	mid := area.Center().Y
	for i := range pts {
		t := float64(i) / (n - 1)
		y := math.Sin(t*3*math.Pi) * math.Exp(-t*1.5) * area.Height * 0.4
		pts[i] = plot.SP(area.Left+t*area.Width, mid-y)
	}
	return pts
}

// printer is a Context that prints each primitive.
type printer struct {
	measurer text.Measurer
	depth    int
}

func (p *printer) DrawLine(points []plot.ScreenPoint, pen *plot.Pen) {
	p.printf("line %d points from %v to %v, %s", len(points), points[0], points[len(points)-1], penString(pen))
}

func (p *printer) DrawPolygon(points []plot.ScreenPoint, fill plot.Color, stroke *plot.Pen) {
	p.printf("polygon %d points, fill %v, %s", len(points), fill, penString(stroke))
}

func (p *printer) DrawEllipse(rect plot.Rect, fill plot.Color, stroke *plot.Pen) {
	p.printf("ellipse %v, fill %v, %s", rect, fill, penString(stroke))
}

func (p *printer) DrawRectangle(rect plot.Rect, fill plot.Color, stroke *plot.Pen) {
	p.printf("rect %v, fill %v, %s", rect, fill, penString(stroke))
}

func (p *printer) DrawText(pos plot.ScreenPoint, s string, c plot.Color, o text.ArrangeOptions) {
	p.printf("text %q at %v (%v/%v, %g°), %v, %v", s, pos,
		o.HorizontalAlignment, o.VerticalAlignment, o.Rotation, o.Font, c)
}

func (p *printer) MeasureText(s string, f text.Font) plot.Size {
	return text.NewArranger(p.measurer).Measure(s, f, plot.Size{})
}

func (p *printer) PushClip(shape plot.Shape) {
	p.printf("push clip %v %v", shape.Kind(), shape.Bounds())
	p.depth++
}

func (p *printer) PopClip() bool {
	if p.depth == 0 {
		return false
	}
	p.depth--
	p.printf("pop clip")
	return true
}

func (p *printer) ClipDepth() int {
	return p.depth
}

func (p *printer) printf(format string, args ...any) {
	fmt.Printf("%s%s\n", strings.Repeat("  ", p.depth), fmt.Sprintf(format, args...))
}

func penString(pen *plot.Pen) string {
	if pen == nil {
		return "no stroke"
	}
	return fmt.Sprintf("stroke %v %gpx %v", pen.Color, pen.Thickness, pen.LineStyle)
}
