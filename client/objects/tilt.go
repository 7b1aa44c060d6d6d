package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// AngleSource reports the current tilt in degrees.
type AngleSource interface {
	Angles() (angleX, angleY float64)
}

var (
	gaugeRing      = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	gaugeThreshold = color.RGBA{R: 0x80, G: 0x60, B: 0x00, A: 0xff}
	gaugeBubble    = color.RGBA{R: 0x40, G: 0xc0, B: 0xff, A: 0xff}
)

// TiltObject is a bubble level: the bubble sits where the device is tipped
// and the inner ring marks the gesture threshold.
type TiltObject struct {
	*BaseObject

	source    AngleSource
	cx, cy    float32
	r         float32
	maxAngle  float64
	threshold float64
}

type NewTiltObjectOptions struct {
	Source AngleSource
	// CX and CY are the gauge center.
	CX, CY float32
	// R is the gauge radius, reached at MaxAngle.
	R         float32
	MaxAngle  float64
	Threshold float64
	ZIndex    int
}

func NewTiltObject(id string, opts NewTiltObjectOptions) *TiltObject {
	return &TiltObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		source:     opts.Source,
		cx:         opts.CX,
		cy:         opts.CY,
		r:          opts.R,
		maxAngle:   opts.MaxAngle,
		threshold:  opts.Threshold,
	}
}

func (o *TiltObject) Draw(screen *ebiten.Image) {
	vector.StrokeCircle(screen, o.cx, o.cy, o.r, 2, gaugeRing, true)
	if o.maxAngle <= 0 {
		return
	}
	inner := o.r * float32(o.threshold/o.maxAngle)
	vector.StrokeRect(screen, o.cx-inner, o.cy-inner, 2*inner, 2*inner, 1, gaugeThreshold, false)

	angleX, angleY := o.source.Angles()
	// angleX grows when the top edge goes down, angleY when the left edge does
	bx := o.cx - o.r*float32(angleY/o.maxAngle)
	by := o.cy + o.r*float32(angleX/o.maxAngle)
	vector.DrawFilledCircle(screen, bx, by, o.r/5, gaugeBubble, true)
}
