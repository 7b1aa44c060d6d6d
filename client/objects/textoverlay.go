package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/mazerun/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var overlayShade = color.RGBA{A: 0xb0}

// TextOverlayObject dims the whole screen and centers a message on it. It
// draws nothing while its text is empty.
type TextOverlayObject struct {
	*BaseObject

	text string
}

func NewTextOverlayObject(id string, text string, zIndex int) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		text:       text,
	}
}

func (o *TextOverlayObject) SetText(text string) {
	o.text = text
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	if o.text == "" {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayShade, false)

	t := strings.ToUpper(o.text)
	f := fonts.MPlusNormalFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(w)/2-float64(bounds.Max.X>>6)/2, float64(h)/2-float64(bounds.Min.Y>>6)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)
}
