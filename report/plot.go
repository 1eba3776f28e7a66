package report

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/dariuszzbyrad/jgenetics/genetic"
)

var (
	// ErrorEmptyPlot nothing was recorded yet
	ErrorEmptyPlot = errors.New("the plot has no iterations to draw")
)

// Plot keeps the fitness curve of a run in memory and draws it on Save
type Plot struct {
	Title string

	min plotter.XYs
	avg plotter.XYs
	max plotter.XYs
}

// NewPlot returns an empty fitness plot
func NewPlot(title string) *Plot {
	return &Plot{Title: title}
}

// Update records the iteration points
func (p *Plot) Update(iteration int, s genetic.Statistic) error {
	x := float64(iteration)
	p.min = append(p.min, plotter.XY{X: x, Y: s.Min})
	p.avg = append(p.avg, plotter.XY{X: x, Y: s.Avg})
	p.max = append(p.max, plotter.XY{X: x, Y: s.Max})

	return nil
}

// Len is the number of recorded iterations
func (p *Plot) Len() int {
	return len(p.avg)
}

// Save draws min, avg and max fitness over the iterations.
// The format follows the file extension (png, svg, pdf...).
func (p *Plot) Save(path string) error {
	if p.Len() == 0 {
		return ErrorEmptyPlot
	}
	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = "Iteration"
	pl.Y.Label.Text = "Fitness"

	lines := []struct {
		name string
		xys  plotter.XYs
	}{
		{"min", p.min},
		{"avg", p.avg},
		{"max", p.max},
	}
	for i, l := range lines {
		line, err := plotter.NewLine(l.xys)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		pl.Add(line)
		pl.Legend.Add(l.name, line)
	}
	pl.Legend.Top = true
	pl.Legend.Left = true

	return pl.Save(6*vg.Inch, 4*vg.Inch, path)
}
