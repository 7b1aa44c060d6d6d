// Package tty simulates the handheld in a terminal: the OLED as a character
// grid, the LED as a coloured dot and the keyboard as tilt, encoder and button.
package tty

import (
	"image/color"

	"github.com/cbodonnell/mazerun/pkg/device"
	"github.com/cbodonnell/mazerun/pkg/scene"
	"github.com/gdamore/tcell/v2"
)

const (
	// PixelsPerColumn and PixelsPerRow map OLED pixels onto terminal cells.
	PixelsPerColumn = 3
	PixelsPerRow    = 4

	Columns = scene.ScreenWidth / PixelsPerColumn
	Rows    = scene.ScreenHeight / PixelsPerRow
)

// CellOf returns the terminal cell, relative to the OLED area, a glyph
// anchored at pixel (x, y) starts in.
func CellOf(x, y int) (col, row int) {
	return (x + 1) / PixelsPerColumn, y / PixelsPerRow
}

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	oledStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	helpStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Display draws scenes inside a frame whose top-left corner is at the
// screen origin.
type Display struct {
	screen tcell.Screen
}

var _ device.Display = &Display{}

func NewDisplay(screen tcell.Screen) *Display {
	return &Display{screen: screen}
}

func (d *Display) Show(s scene.Scene) error {
	d.drawFrame()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			d.screen.SetContent(col+1, row+1, ' ', nil, oledStyle)
		}
	}
	for _, g := range s.Glyphs {
		col, row := CellOf(g.X, g.Y)
		if row < 0 || row >= Rows {
			continue
		}
		for i, r := range g.Text {
			if c := col + i; c >= 0 && c < Columns {
				d.screen.SetContent(c+1, row+1, r, nil, oledStyle)
			}
		}
	}
	d.screen.Show()
	return nil
}

func (d *Display) drawFrame() {
	right, bottom := Columns+1, Rows+1
	for x := 1; x < right; x++ {
		d.screen.SetContent(x, 0, tcell.RuneHLine, nil, frameStyle)
		d.screen.SetContent(x, bottom, tcell.RuneHLine, nil, frameStyle)
	}
	for y := 1; y < bottom; y++ {
		d.screen.SetContent(0, y, tcell.RuneVLine, nil, frameStyle)
		d.screen.SetContent(right, y, tcell.RuneVLine, nil, frameStyle)
	}
	d.screen.SetContent(0, 0, tcell.RuneULCorner, nil, frameStyle)
	d.screen.SetContent(right, 0, tcell.RuneURCorner, nil, frameStyle)
	d.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, frameStyle)
	d.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, frameStyle)
}

// LED draws the status LED under the display frame.
type LED struct {
	screen tcell.Screen
}

var _ device.LED = &LED{}

func NewLED(screen tcell.Screen) *LED {
	return &LED{screen: screen}
}

// LEDRow is the terminal row the LED is drawn on.
const LEDRow = Rows + 3

func (l *LED) Set(c color.RGBA) error {
	drawText(l.screen, 1, LEDRow, "LED ", helpStyle)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	r := '●'
	if c == device.Off {
		style = frameStyle
		r = '○'
	}
	l.screen.SetContent(5, LEDRow, r, nil, style)
	l.screen.Show()
	return nil
}

// DrawHelp prints the key bindings below the LED.
func DrawHelp(screen tcell.Screen) {
	lines := []string{
		"arrows: tilt   space/enter: button",
		"tab/e: turn right   q: turn left",
		"esc: quit",
	}
	for i, line := range lines {
		drawText(screen, 1, LEDRow+2+i, line, helpStyle)
	}
	screen.Show()
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, st)
	}
}
