package format

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/citynav/core"
)

// ErrNoPosition indicates a city that the layout cannot place.
var ErrNoPosition = errors.New("format: city has no position")

// Layout places cities on a plane. network.Layout implements it.
type Layout interface {
	Position(city string) (x, y float64, ok bool)
}

// Plotter draws a network map with an optional highlighted route.
//
// highlight is drawn along consecutive cities; when it has more than two
// cities and its last and first cities are joined by a road, the closing
// road is highlighted too, which is how tours are drawn.
type Plotter interface {
	Plot(w io.Writer, g *core.Graph, layout Layout, highlight core.Path, title string) error
}

// SVGPlotter renders maps as standalone SVG documents.
type SVGPlotter struct {
	Width  float64 // canvas width in px
	Height float64 // canvas height in px
	Margin float64 // padding around the outermost cities in px
}

// NewSVGPlotter returns a plotter with a 960×640 canvas.
func NewSVGPlotter() *SVGPlotter {
	return &SVGPlotter{Width: 960, Height: 640, Margin: 60}
}

var _ Plotter = (*SVGPlotter)(nil)

// Plot implements Plotter. Every city of g must have a position;
// otherwise ErrNoPosition is returned, wrapped with the city name, and
// nothing is written.
//
// Drawing order: roads with distance labels, highlighted route, city
// markers with names, title.
func (p *SVGPlotter) Plot(w io.Writer, g *core.Graph, layout Layout, highlight core.Path, title string) error {
	cities := g.Cities()
	pts := make(map[string][2]float64, len(cities))
	for _, c := range cities {
		x, y, ok := layout.Position(c)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNoPosition, c)
		}
		pts[c] = [2]float64{x, y}
	}
	for _, c := range highlight {
		if _, ok := pts[c]; !ok {
			return fmt.Errorf("%w: %q", ErrNoPosition, c)
		}
	}
	proj := p.projection(pts)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		p.Width, p.Height, p.Width, p.Height)
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="white"/>`+"\n")

	fmt.Fprintln(bw, `<g id="roads" stroke="gray" stroke-width="1.5" stroke-opacity="0.7">`)
	for _, e := range g.Edges() {
		x1, y1 := proj(pts[e.From])
		x2, y2 := proj(pts[e.To])
		fmt.Fprintf(bw, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x1, y1, x2, y2)
	}
	fmt.Fprintln(bw, `</g>`)

	fmt.Fprintln(bw, `<g id="labels" font-family="sans-serif" font-size="11" text-anchor="middle">`)
	for _, e := range g.Edges() {
		x1, y1 := proj(pts[e.From])
		x2, y2 := proj(pts[e.To])
		mx, my := (x1+x2)/2, (y1+y2)/2
		label := escape(humanize.Commaf(e.Weight))
		fmt.Fprintf(bw, `<rect x="%.1f" y="%.1f" width="%d" height="14" rx="3" fill="white" fill-opacity="0.8"/>`+"\n",
			mx-float64(len(label))*3.5-3, my-10, len(label)*7+6)
		fmt.Fprintf(bw, `<text x="%.1f" y="%.1f">%s</text>`+"\n", mx, my, label)
	}
	fmt.Fprintln(bw, `</g>`)

	if len(highlight) > 1 {
		fmt.Fprintln(bw, `<g id="route" stroke="red" stroke-width="3">`)
		for i := 1; i < len(highlight); i++ {
			writeLine(bw, proj, pts[highlight[i-1]], pts[highlight[i]])
		}
		last, first := highlight[len(highlight)-1], highlight[0]
		if len(highlight) > 2 && g.HasEdge(last, first) {
			writeLine(bw, proj, pts[last], pts[first])
		}
		fmt.Fprintln(bw, `</g>`)
	}

	fmt.Fprintln(bw, `<g id="cities" font-family="sans-serif" font-size="12" font-weight="bold" text-anchor="middle">`)
	for _, c := range cities {
		x, y := proj(pts[c])
		fmt.Fprintf(bw, `<circle cx="%.1f" cy="%.1f" r="22" fill="skyblue" stroke="black" stroke-width="2"/>`+"\n", x, y)
		fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" dominant-baseline="middle">%s</text>`+"\n", x, y, escape(c))
	}
	fmt.Fprintln(bw, `</g>`)

	if title != "" {
		fmt.Fprintf(bw, `<text x="%g" y="28" font-family="sans-serif" font-size="18" font-weight="bold" text-anchor="middle">%s</text>`+"\n",
			p.Width/2, escape(title))
	}
	fmt.Fprintln(bw, `</svg>`)

	return bw.Flush()
}

// projection maps layout coordinates into the canvas, preserving aspect
// ratio and flipping y so larger y is drawn higher.
func (p *SVGPlotter) projection(pts map[string][2]float64) func([2]float64) (float64, float64) {
	var minX, minY, maxX, maxY float64
	first := true
	for _, pt := range pts {
		if first {
			minX, maxX, minY, maxY = pt[0], pt[0], pt[1], pt[1]
			first = false
			continue
		}
		minX, maxX = min(minX, pt[0]), max(maxX, pt[0])
		minY, maxY = min(minY, pt[1]), max(maxY, pt[1])
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	scale := min((p.Width-2*p.Margin)/spanX, (p.Height-2*p.Margin)/spanY)
	offX := (p.Width - spanX*scale) / 2
	offY := (p.Height - spanY*scale) / 2

	return func(pt [2]float64) (float64, float64) {
		return offX + (pt[0]-minX)*scale, p.Height - (offY + (pt[1]-minY)*scale)
	}
}

func writeLine(w io.Writer, proj func([2]float64) (float64, float64), a, b [2]float64) {
	x1, y1 := proj(a)
	x2, y2 := proj(b)
	fmt.Fprintf(w, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x1, y1, x2, y2)
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))

	return b.String()
}
