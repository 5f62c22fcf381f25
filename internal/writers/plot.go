// internal/writers/plot.go
package writers

import (
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Bin is one histogram bar over [Lo, Hi).
type Bin struct {
	Lo, Hi float64
	Count  int
}

const maxTimeBins = 30

// Histogram bins values. With integer set every integer gets its own bar
// centred on it (registry offsets). Otherwise values share at most 30
// equal-width bars over [min, max] (times).
func Histogram(values []float64, integer bool) []Bin {
	if len(values) == 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	var nb int
	var width float64
	if integer {
		lo, hi = math.Round(lo)-0.5, math.Round(hi)+0.5
		nb, width = int(hi-lo), 1
	} else {
		if hi == lo {
			hi = lo + math.Max(math.Abs(lo), 1)*1e-3
		}
		nb = int(math.Ceil(math.Sqrt(float64(len(values)))))
		nb = max(1, min(nb, maxTimeBins))
		width = (hi - lo) / float64(nb)
	}

	bins := make([]Bin, nb)
	for i := range bins {
		bins[i].Lo = lo + float64(i)*width
		bins[i].Hi = bins[i].Lo + width
	}
	for _, v := range values {
		i := int((v - lo) / width)
		i = max(0, min(i, nb-1))
		bins[i].Count++
	}
	return bins
}

// WriteHistogramPNG renders bins as a filled step outline.
func WriteHistogramPNG(w io.Writer, title, xLabel string, bins []Bin) error {
	if len(bins) == 0 {
		return fmt.Errorf("plot: no data")
	}
	xs := make([]float64, 0, 4*len(bins))
	ys := make([]float64, 0, 4*len(bins))
	peak := 0
	for _, b := range bins {
		xs = append(xs, b.Lo, b.Lo, b.Hi, b.Hi)
		ys = append(ys, 0, float64(b.Count), float64(b.Count), 0)
		peak = max(peak, b.Count)
	}

	graph := chart.Chart{
		Title:  title,
		Width:  800,
		Height: 480,
		XAxis: chart.XAxis{
			Name:  xLabel,
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: bins[0].Lo, Max: bins[len(bins)-1].Hi},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.3g", v.(float64))
			},
		},
		YAxis: chart.YAxis{
			Name:  "count",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: float64(peak) * 1.05},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    xLabel,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 1.5,
					FillColor:   drawing.Color{R: 0, G: 116, B: 217, A: 96},
				},
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
