package export

import (
	"fmt"
	"io"
	"math"
	"os"

	"dlagrow/internal/growth"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	errgo "gopkg.in/errgo.v1"
)

// ErrTooFewPoints is returned when the history cannot yet support a fit.
var ErrTooFewPoints = errgo.New("growth history too short to plot")

// WritePlot renders log N against log r with the least-squares line as a PNG.
func WritePlot(w io.Writer, stats *growth.Stats) error {
	fit := stats.Fit()
	if math.IsNaN(fit.Dimension) {
		return errgo.WithCausef(nil, ErrTooFewPoints, "%d points with distinct radii required", 2)
	}
	logR, logN := stats.LogPoints()
	lo, hi := logR[0], logR[len(logR)-1]

	graph := chart.Chart{
		Title:  fmt.Sprintf("D = %.3f  R² = %.3f  N = %d", fit.Dimension, fit.RSquared, stats.Count()),
		Width:  720,
		Height: 480,
		XAxis: chart.XAxis{
			Name:  "log r",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.2f", v.(float64))
			},
		},
		YAxis: chart.YAxis{
			Name:  "log N",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.2f", v.(float64))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "samples",
				XValues: logR,
				YValues: logN,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    2,
					DotColor:    chart.ColorBlue,
				},
			},
			chart.ContinuousSeries{
				Name:    "fit",
				XValues: []float64{lo, hi},
				YValues: []float64{fit.Intercept + fit.Dimension*lo, fit.Intercept + fit.Dimension*hi},
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 255, G: 165, B: 0, A: 255},
					StrokeWidth: 3.0,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return errgo.Notef(err, "cannot render growth plot")
	}
	return nil
}

// SavePlot writes the growth plot to path.
func SavePlot(path string, stats *growth.Stats) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errgo.Notef(err, "cannot create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errgo.Notef(cerr, "cannot close %s", path)
		}
	}()
	return errgo.Mask(WritePlot(f, stats), errgo.Is(ErrTooFewPoints))
}
