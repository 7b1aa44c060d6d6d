package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RectObject is a filled rectangle, used for the device casing and bezels.
type RectObject struct {
	*BaseObject

	x, y float32
	w, h float32
	clr  color.Color
}

type NewRectObjectOptions struct {
	// X is the x-coordinate of the rectangle.
	X float32
	// Y is the y-coordinate of the rectangle.
	Y float32
	// W is the width of the rectangle.
	W float32
	// H is the height of the rectangle.
	H float32
	// Color is the fill color.
	Color color.Color
	// ZIndex is the z-index of the rectangle.
	ZIndex int
}

func NewRectObject(id string, opts NewRectObjectOptions) *RectObject {
	return &RectObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		x:   opts.X,
		y:   opts.Y,
		w:   opts.W,
		h:   opts.H,
		clr: opts.Color,
	}
}

func (o *RectObject) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, o.x, o.y, o.w, o.h, o.clr, false)
}
