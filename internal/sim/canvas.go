package sim

import "image/color"

// Canvas is the drawing surface a backend hands to the show once per frame.
// Presenting the frame and polling for quit belong to the backend.
type Canvas interface {
	Clear(c color.NRGBA)
	FillCircle(x, y, radius float64, c color.NRGBA)
}

// Cues receives the show's sound triggers. Implementations must not block.
type Cues interface {
	Liftoff()
	Explosion()
}

type nopCues struct{}

func (nopCues) Liftoff()   {}
func (nopCues) Explosion() {}
