package charts

import (
	"image"
	"image/color"
	"image/draw"

	"catalogeda/internal/dataprocessing"
)

const (
	heatmapCellW   = 64
	heatmapCellH   = 40
	heatmapPadding = 8
)

// RenderHeatmap draws the year-by-month addition counts as a colored grid,
// one row per year (most recent heatmapYears years), one column per month.
// Cell color scales linearly from pale yellow to deep red with the count;
// zero-count cells stay pale so gaps are visible rather than absent.
func (r *Renderer) RenderHeatmap(path string, heatmap []dataprocessing.HeatmapYear) error {
	if len(heatmap) > r.heatmapYears {
		heatmap = heatmap[len(heatmap)-r.heatmapYears:]
	}

	rows := len(heatmap)
	if rows == 0 {
		// nothing dated; emit an empty grid so the artifact set is complete
		rows = 1
		heatmap = []dataprocessing.HeatmapYear{{}}
	}

	maxCount := 0
	for _, year := range heatmap {
		for _, count := range year.Months {
			if count > maxCount {
				maxCount = count
			}
		}
	}

	width := 12*heatmapCellW + 2*heatmapPadding
	height := rows*heatmapCellH + 2*heatmapPadding
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	for row, year := range heatmap {
		for month, count := range year.Months {
			x0 := heatmapPadding + month*heatmapCellW
			y0 := heatmapPadding + row*heatmapCellH
			cell := image.Rect(x0+1, y0+1, x0+heatmapCellW-1, y0+heatmapCellH-1)
			draw.Draw(canvas, cell, image.NewUniform(heatColor(count, maxCount)), image.Point{}, draw.Src)
		}
	}

	return writePNG(path, canvas)
}

// heatColor maps a count to a yellow-to-red ramp.
func heatColor(count, maxCount int) color.RGBA {
	if maxCount == 0 {
		return color.RGBA{R: 255, G: 255, B: 204, A: 255}
	}

	t := float64(count) / float64(maxCount)
	// 255,255,204 (pale yellow) -> 189,0,38 (deep red)
	lerp := func(a, b float64) uint8 { return uint8(a + (b-a)*t) }
	return color.RGBA{
		R: lerp(255, 189),
		G: lerp(255, 0),
		B: lerp(204, 38),
		A: 255,
	}
}
