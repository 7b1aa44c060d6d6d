package scenes

import "github.com/cbodonnell/mazerun/pkg/scene"

const (
	Margin         = 24
	PanelWidth     = 260
	ControlsHeight = 130
	MinHeight      = 440
)

// Layout places the simulated device in the window. Scale is the size of
// one OLED pixel in window pixels.
type Layout struct {
	Scale int
}

func (l Layout) OLEDWidth() int {
	return scene.ScreenWidth * l.Scale
}

func (l Layout) OLEDHeight() int {
	return scene.ScreenHeight * l.Scale
}

// PanelLeft is where the side panel starts.
func (l Layout) PanelLeft() int {
	return 2*Margin + l.OLEDWidth()
}

func (l Layout) Width() int {
	return l.PanelLeft() + PanelWidth
}

func (l Layout) Height() int {
	return max(2*Margin+l.OLEDHeight()+ControlsHeight, MinHeight)
}

// ControlsY is the vertical center of the LED and the tilt gauge.
func (l Layout) ControlsY() int {
	return 2*Margin + l.OLEDHeight() + ControlsHeight/2
}
