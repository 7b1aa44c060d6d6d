package ui

import (
	"image/color"

	"github.com/cbodonnell/mazerun/client/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

var (
	labelColor = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	hintColor  = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
)

// Status is what the side panel reports.
type Status struct {
	Mode       string
	State      string
	Difficulty string
	Level      string
	Time       string
	Score      string
	Run        string
}

// Panel is the simulator's side panel: live game status, the key bindings
// and buttons to pause and reset the device.
type Panel struct {
	UI *ebitenui.UI

	mode       *widget.Text
	state      *widget.Text
	difficulty *widget.Text
	level      *widget.Text
	time       *widget.Text
	score      *widget.Text
	run        *widget.Text
}

type NewPanelOptions struct {
	// Left is the x-coordinate the panel starts at.
	Left int
	// OnPause is called when the pause button is clicked.
	OnPause func()
	// OnReset is called when the reset button is clicked.
	OnReset func()
}

func NewPanel(opts NewPanelOptions) *Panel {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}

	fontFace := fonts.TTFSmallFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:  16,
				Left: opts.Left,
			}))),
	)

	p := &Panel{}
	newLabel := func(clr color.Color) *widget.Text {
		t := widget.NewText(
			widget.TextOpts.Text("", fontFace, clr),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionStart,
				}),
			),
		)
		rootContainer.AddChild(t)
		return t
	}
	p.mode = newLabel(labelColor)
	p.state = newLabel(labelColor)
	p.difficulty = newLabel(labelColor)
	p.level = newLabel(labelColor)
	p.time = newLabel(labelColor)
	p.score = newLabel(labelColor)
	p.run = newLabel(hintColor)

	newButton := func(label string, onClick func()) {
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionStart,
				}),
			),
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text(label, fontFace, &widget.ButtonTextColor{
				Idle:     color.NRGBA{254, 255, 255, 255},
				Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			}),
			widget.ButtonOpts.TextPadding(widget.Insets{
				Left:   20,
				Right:  20,
				Top:    4,
				Bottom: 4,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
		rootContainer.AddChild(button)
	}
	newButton("Pause (P)", opts.OnPause)
	newButton("Reset (R)", opts.OnReset)

	for _, hint := range []string{
		"arrows/WASD: tilt",
		"space/enter: button",
		"E/tab/wheel: turn right",
		"Q: turn left",
		"esc: quit",
	} {
		newLabel(hintColor).Label = hint
	}

	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	return p
}

// SetStatus updates the status labels.
func (p *Panel) SetStatus(s Status) {
	p.mode.Label = "Device: " + s.Mode
	p.state.Label = "State: " + s.State
	p.difficulty.Label = "Mode: " + s.Difficulty
	p.level.Label = "Level: " + s.Level
	p.time.Label = "Time: " + s.Time
	p.score.Label = "Score: " + s.Score
	p.run.Label = "Run: " + s.Run
}
