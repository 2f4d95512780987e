package term

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// raster is a pixel grid standing in for the show's logical canvas. Each
// terminal cell holds two vertically stacked pixels.
type raster struct {
	w, h   int
	sx, sy float64
	px     []colorful.Color
}

func newRaster(cols, rows, worldW, worldH int) *raster {
	w, h := max(cols, 1), max(rows*2, 1)
	return &raster{
		w:  w,
		h:  h,
		sx: float64(w) / float64(worldW),
		sy: float64(h) / float64(worldH),
		px: make([]colorful.Color, w*h),
	}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func (r *raster) Clear(c color.NRGBA) {
	bg := toColorful(c)
	for i := range r.px {
		r.px[i] = bg
	}
}

// FillCircle covers every pixel whose centre lies inside the scaled circle.
// Circles smaller than a pixel still light the pixel under their centre.
func (r *raster) FillCircle(x, y, radius float64, c color.NRGBA) {
	cx, cy := x*r.sx, y*r.sy
	rx, ry := radius*r.sx, radius*r.sy

	hit := false
	if rx > 0 && ry > 0 {
		for py := int(math.Floor(cy - ry)); py <= int(math.Ceil(cy+ry)); py++ {
			for px := int(math.Floor(cx - rx)); px <= int(math.Ceil(cx+rx)); px++ {
				dx := (float64(px) + 0.5 - cx) / rx
				dy := (float64(py) + 0.5 - cy) / ry
				if dx*dx+dy*dy <= 1 {
					r.blend(px, py, c)
					hit = true
				}
			}
		}
	}
	if !hit {
		r.blend(int(math.Floor(cx)), int(math.Floor(cy)), c)
	}
}

func (r *raster) blend(px, py int, c color.NRGBA) {
	if px < 0 || py < 0 || px >= r.w || py >= r.h {
		return
	}
	i := py*r.w + px
	r.px[i] = r.px[i].BlendRgb(toColorful(c), float64(c.A)/255)
}

func (r *raster) at(px, py int) colorful.Color {
	return r.px[py*r.w+px]
}
