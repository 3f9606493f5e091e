package bench

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/errors"
	"github.com/jsgonsette/AdventOfCode2024-sub000/pkg/observability"
)

const barHighlightJS = `
    function highlight(rect) {
      rect.setAttribute("stroke", "white");
      rect.setAttribute("stroke-width", "2");
    }
    function unhighlight(rect) {
      rect.setAttribute("stroke", "none");
    }`

// decades labels the horizontal grid lines, one per power of ten above the
// 10µs baseline.
var decades = [...]string{"100 µs", "1 ms", "10 ms", "100 ms", "1s"}

var gradientStops = [...]struct{ offset, color string }{
	{"0%", "rgb(30,30,100)"},
	{"20%", "rgb(25,140,140)"},
	{"40%", "rgb(50,180,80)"},
	{"60%", "rgb(255,240,100)"},
	{"80%", "rgb(255,70,10)"},
	{"100%", "black"},
}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height int
	title         string
}

// WithSize overrides the default 1024x512 canvas.
func WithSize(width, height int) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

// WithTitle adds a <title> element, shown as a tooltip by most viewers.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// geometry holds the plot area derived from the canvas size.
type geometry struct {
	w, h              int
	left, top, bottom int
	plotW, plotH      int
	barW, space       float64
}

func newGeometry(w, h, slots int) geometry {
	g := geometry{w: w, h: h, left: w / 15, top: h / 10, bottom: h / 20}
	g.plotW = w - g.left - 4
	g.plotH = h - g.top - g.bottom
	if slots > 0 {
		// Bars start at plotW/n with a gap of half a bar, then both shrink so
		// that n bars and n gaps fill the plot exactly.
		barW := float64(g.plotW) / float64(slots)
		space := barW / 2
		scale := float64(g.plotW) / (float64(g.plotW) + space*float64(slots))
		g.barW, g.space = barW*scale, space*scale
	}
	return g
}

// barHeight maps a duration to pixels: one fifth of the plot per decade above 10µs.
func (g geometry) barHeight(d time.Duration) int {
	n := math.Max(0, math.Log10(float64(d.Microseconds())/10))
	return int(n * float64(g.plotH) / 5)
}

// barX returns the left edge of the bar in the given slot.
func (g geometry) barX(slot int) int {
	return g.left + int(g.space/2+float64(slot)*(g.space+g.barW))
}

// RenderSVG draws the per-day means of res as a bar chart on a logarithmic
// scale. Every day of res gets a slot, in order; days that failed leave their
// slot empty. The document embeds highlight/unhighlight handlers so bars are
// outlined on hover, and records the run id in its <desc>.
func RenderSVG(res *Result, opts ...SVGOption) []byte {
	r := svgRenderer{width: 1024, height: 512}
	for _, opt := range opts {
		opt(&r)
	}
	g := newGeometry(r.width, r.height, len(res.Days))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		g.w, g.h, g.w, g.h)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(r.title))
	}
	renderDesc(&buf, res)
	fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", barHighlightJS)

	buf.WriteString("  <g>\n")
	renderBackground(&buf, g)
	renderAxis(&buf, g)
	renderGradient(&buf, g)
	for slot, day := range res.Days {
		if !day.OK() {
			continue
		}
		renderBar(&buf, g, slot, day)
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDesc(buf *bytes.Buffer, res *Result) {
	desc := fmt.Sprintf("year %d, run %s, %d repetitions", res.Year, res.RunID, res.Repetitions)
	if res.Host != "" {
		desc += ", " + res.Host
	}
	fmt.Fprintf(buf, "  <desc>%s</desc>\n", html.EscapeString(desc))
}

func renderBackground(buf *bytes.Buffer, g geometry) {
	fmt.Fprintf(buf, `    <rect x="0" y="0" width="%d" height="%d" fill="rgba(255, 255, 255, 0.6)"/>`+"\n", g.w, g.h)
	fmt.Fprintf(buf, `    <rect x="%d" y="%d" width="%d" height="%d" fill="rgb(200, 200, 200)" stroke-width="2" stroke="black"/>`+"\n",
		g.left, g.top, g.plotW, g.plotH)
}

func renderAxis(buf *bytes.Buffer, g geometry) {
	fontSize := g.bottom * 6 / 10
	for i, label := range decades {
		y := g.h - g.bottom - (i+1)*g.plotH/5
		fmt.Fprintf(buf, `    <text x="%d" y="%d" text-anchor="end" dominant-baseline="middle" font-size="%d" font-weight="bold" fill="black">%s</text>`+"\n",
			g.left-4, y, fontSize, label)
		if i < len(decades)-1 {
			fmt.Fprintf(buf, `    <line x1="%d" y1="%d" x2="%d" y2="%d" stroke-width="1" stroke="rgb(150,150,150)"/>`+"\n",
				g.left, y, g.w-4, y)
		}
	}
}

func renderGradient(buf *bytes.Buffer, g geometry) {
	fmt.Fprintf(buf, `    <linearGradient id="gradient" gradientUnits="userSpaceOnUse" x1="0%%" y1="%d" x2="0%%" y2="%d">`+"\n",
		g.h-g.bottom, g.top)
	for _, s := range gradientStops {
		fmt.Fprintf(buf, `      <stop offset="%s" stop-color="%s"/>`+"\n", s.offset, s.color)
	}
	buf.WriteString("    </linearGradient>\n")
}

func renderBar(buf *bytes.Buffer, g geometry, slot int, day DayResult) {
	x := g.barX(slot)
	h := g.barHeight(day.Mean)
	y := g.top + g.plotH - h
	fmt.Fprintf(buf, `    <rect x="%d" y="%d" width="%s" height="%d" style="cursor: pointer;" onmouseover="highlight(this)" onmouseout="unhighlight(this)" fill="url(#gradient)"><title>day %d: %s</title></rect>`+"\n",
		x, y, fmtFloat(g.barW), h, day.Day, day.Mean)
	fmt.Fprintf(buf, `    <text x="%d" y="%d" text-anchor="middle" dominant-baseline="middle" font-size="%d" fill="black">%d</text>`+"\n",
		x+int(g.barW)/2, g.h-g.bottom/2, g.bottom*6/10, day.Day)
}

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }

// ReportName returns the file name of a year's report.
func ReportName(year uint32) string { return fmt.Sprintf("perfo-%d.svg", year) }

// WriteSVG stores data as <dir>/perfo-<year>.svg, creating dir if needed, and
// returns the path written. Failures are IO_ERROR errors.
func WriteSVG(ctx context.Context, dir string, year uint32, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "create report directory %s", dir)
	}
	path := filepath.Join(dir, ReportName(year))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "write report %s", path)
	}
	observability.Report().OnReportWritten(ctx, year, path, len(data))
	return path, nil
}
