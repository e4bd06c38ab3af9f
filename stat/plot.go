// Copyright 2026 go-dense Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stat

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Render draws the histogram as a bar chart, one bar per bucket in sorted
// order, with the bucket interval as the bar label.
func (h *Histogram) Render(title string) (*plot.Plot, error) {
	if len(h.buckets) == 0 {
		return nil, ErrEmptyHistogram
	}
	h.ensureSorted()

	values := make(plotter.Values, len(h.buckets))
	labels := make([]string, len(h.buckets))
	for i, b := range h.buckets {
		values[i] = b.count
		labels[i] = fmt.Sprintf("(%g, %g]", b.lower, b.upper)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("stat: bar chart: %w", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "count"
	p.Add(bars)
	p.NominalX(labels...)
	return p, nil
}

// SavePNG renders the histogram and writes it to path as a width x height PNG.
func (h *Histogram) SavePNG(title, path string, width, height vg.Length) error {
	p, err := h.Render(title)
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("stat: save %s: %w", path, err)
	}
	return nil
}
