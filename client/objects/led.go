package objects

import (
	"image/color"

	"github.com/cbodonnell/mazerun/pkg/device"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ColorSource is where the LED reads its colour.
type ColorSource interface {
	Color() color.RGBA
}

var (
	ledRim  = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
	ledDark = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// LEDObject draws the RGB LED with a soft glow while lit.
type LEDObject struct {
	*BaseObject

	source ColorSource
	cx, cy float32
	r      float32
}

func NewLEDObject(id string, source ColorSource, cx, cy, r float32, zIndex int) *LEDObject {
	return &LEDObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		source:     source,
		cx:         cx,
		cy:         cy,
		r:          r,
	}
}

func (o *LEDObject) Draw(screen *ebiten.Image) {
	c := o.source.Color()
	if c == device.Off {
		vector.DrawFilledCircle(screen, o.cx, o.cy, o.r, ledDark, true)
	} else {
		glow := c
		glow.A = 0x40
		vector.DrawFilledCircle(screen, o.cx, o.cy, o.r*1.8, glow, true)
		vector.DrawFilledCircle(screen, o.cx, o.cy, o.r, c, true)
	}
	vector.StrokeCircle(screen, o.cx, o.cy, o.r, 2, ledRim, true)
}
