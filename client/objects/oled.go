package objects

import (
	"image/color"

	"github.com/cbodonnell/mazerun/client/fonts"
	"github.com/cbodonnell/mazerun/pkg/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// SceneSource is where the OLED reads what to show.
type SceneSource interface {
	Scene() scene.Scene
}

// OLEDObject renders scenes at the panel's native 128x64 resolution and
// scales the result up without filtering.
type OLEDObject struct {
	*BaseObject

	source SceneSource
	x, y   float64
	scale  float64
	panel  *ebiten.Image
}

type NewOLEDObjectOptions struct {
	Source SceneSource
	// X and Y place the top-left corner of the panel.
	X, Y float64
	// Scale is the size of one OLED pixel in screen pixels.
	Scale  int
	ZIndex int
}

func NewOLEDObject(id string, opts NewOLEDObjectOptions) *OLEDObject {
	return &OLEDObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		source:     opts.Source,
		x:          opts.X,
		y:          opts.Y,
		scale:      float64(opts.Scale),
	}
}

func (o *OLEDObject) Init() error {
	o.panel = ebiten.NewImage(scene.ScreenWidth, scene.ScreenHeight)
	return nil
}

func (o *OLEDObject) Destroy() error {
	if o.panel != nil {
		o.panel.Deallocate()
		o.panel = nil
	}
	return nil
}

func (o *OLEDObject) Draw(screen *ebiten.Image) {
	o.panel.Fill(color.Black)
	for _, g := range o.source.Scene().Glyphs {
		text.Draw(o.panel, g.Text, fonts.OLEDFont, g.X, g.Y+fonts.OLEDBaseline, color.White)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(o.scale, o.scale)
	op.GeoM.Translate(o.x, o.y)
	screen.DrawImage(o.panel, op)
}
