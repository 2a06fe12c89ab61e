package main

import (
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/numerical/pkg/errors"
)

// savePlot draws the samples (second column of x against y) and the line
// theta[0] + theta[1]*v.
func savePlot(path string, x, y, theta *mat.Dense) error {
	n, _ := x.Dims()
	points := make(plotter.XYs, n)
	for i := range points {
		points[i].X = x.At(i, 1)
		points[i].Y = y.At(i, 0)
	}

	p := plot.New()
	p.Title.Text = "Linear regression"
	p.X.Label.Text = "area"
	p.Y.Label.Text = "price"

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return errors.Wrap(err, "failed to build scatter")
	}
	fit := plotter.NewFunction(func(v float64) float64 {
		return theta.At(0, 0) + theta.At(0, 1)*v
	})
	fit.Color = color.RGBA{R: 200, A: 255}

	p.Add(scatter, fit)
	p.Legend.Add("samples", scatter)
	p.Legend.Add("fit", fit)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to save plot to %s", path)
	}
	return nil
}
