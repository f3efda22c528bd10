package render

import (
	"image"
	"runtime"
	"sync"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/cpueval"
)

// renderCPU rasterizes the view with the cpueval reference evaluator,
// splitting rows across workers. Pixel centers map to the plane exactly the
// way the vertex/fragment pair does: clip space scaled by aspect, then
// center + plane*scale.
func renderCPU(root fractal.Node, s fractal.Settings, view View, w, h int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	aspect := float64(w) / float64(h)

	// Fail fast on trees or settings the evaluator rejects rather than
	// inside the workers.
	if _, err := cpueval.Iterate(root, 0, s); err != nil {
		return nil, err
	}
	if _, err := cpueval.Shade(cpueval.Result{Count: float64(s.Iterations)}, s); err != nil {
		return nil, err
	}

	workers := runtime.NumCPU()
	if workers > h {
		workers = h
	}
	rows := make(chan int, h)
	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(img, root, s, view, y, w, h, aspect)
			}
		}()
	}
	wg.Wait()
	return img, nil
}

func renderRow(img *image.RGBA, root fractal.Node, s fractal.Settings, view View, y, w, h int, aspect float64) {
	// Row 0 is the top of the image, which is clip-space y = +1.
	ny := 1 - 2*(float64(y)+0.5)/float64(h)
	for x := 0; x < w; x++ {
		nx := 2*(float64(x)+0.5)/float64(w) - 1
		c := complex(
			view.CenterX+nx*aspect*view.Scale,
			view.CenterY+ny*view.Scale,
		)
		res, err := cpueval.Iterate(root, c, s)
		if err != nil {
			continue // already ruled out before the workers started
		}
		rgb, err := cpueval.Shade(res, s)
		if err != nil {
			continue
		}
		off := img.PixOffset(x, y)
		img.Pix[off+0] = toByte(rgb.R)
		img.Pix[off+1] = toByte(rgb.G)
		img.Pix[off+2] = toByte(rgb.B)
		img.Pix[off+3] = 0xff
	}
}

func toByte(v float64) uint8 {
	if v != v || v <= 0 { // NaN shades to black
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
