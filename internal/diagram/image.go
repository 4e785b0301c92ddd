package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Series is one named rate-pressure trace.
type Series struct {
	Name      string
	Rates     []float64
	Pressures []float64
}

// Marker is an annotated point on the plot, used for the operating point.
type Marker struct {
	Label string
	Rate  float64
	Pwf   float64
}

var seriesColors = []color.RGBA{
	{R: 178, G: 34, B: 34, A: 255},  // inflow
	{R: 0, G: 0, B: 139, A: 255},    // outflow
	{R: 34, G: 139, B: 34, A: 255},  // extras
	{R: 255, G: 140, B: 0, A: 255},
}

// ExportCurvePlot writes rate-pressure traces to an image file. Format
// follows the extension (.png, .svg, .pdf); anything else falls back to
// PNG.
func ExportCurvePlot(title string, series []Series, marker *Marker, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Rate"
	p.Y.Label.Text = "Pressure (psia)"
	p.Legend.Top = true

	for i, s := range series {
		pts := make(plotter.XYs, len(s.Rates))
		for j := range s.Rates {
			pts[j] = plotter.XY{X: s.Rates[j], Y: s.Pressures[j]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = seriesColors[i%len(seriesColors)]
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	if marker != nil {
		scatter, err := plotter.NewScatter(plotter.XYs{{X: marker.Rate, Y: marker.Pwf}})
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 0, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)

		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: marker.Rate, Y: marker.Pwf}},
			Labels: []string{marker.Label},
		})
		if err != nil {
			return err
		}
		p.Add(labels)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
