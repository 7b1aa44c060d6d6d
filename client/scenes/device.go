package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/mazerun/client/objects"
	"github.com/cbodonnell/mazerun/client/ui"
)

var (
	casingColor = color.RGBA{R: 0x2a, G: 0x2d, B: 0x34, A: 0xff}
	bezelColor  = color.RGBA{R: 0x10, G: 0x10, B: 0x12, A: 0xff}
)

const (
	zCasing = iota
	zBezel
	zDevice
	zPanel
	zEffects
	zOverlay
)

// DeviceScene shows the handheld: the OLED, the LED, a bubble level for the
// tilt and the side panel.
type DeviceScene struct {
	*BaseScene

	root    *objects.SortedZIndexObject
	layout  Layout
	panel   *ui.Panel
	overlay *objects.TextOverlayObject
	effects int
}

var _ Scene = &DeviceScene{}

type DeviceSceneOptions struct {
	Layout  Layout
	Display objects.SceneSource
	LED     objects.ColorSource
	Motion  objects.AngleSource
	// MaxTilt is the tilt at the edge of the gauge, Threshold the tilt that
	// starts a gesture, both in degrees.
	MaxTilt   float64
	Threshold float64
	OnPause   func()
	OnReset   func()
}

func NewDeviceScene(opts DeviceSceneOptions) (*DeviceScene, error) {
	l := opts.Layout
	root := objects.NewSortedZIndexObject("device-root")
	panel := ui.NewPanel(ui.NewPanelOptions{
		Left:    l.PanelLeft(),
		OnPause: opts.OnPause,
		OnReset: opts.OnReset,
	})
	overlay := objects.NewTextOverlayObject("overlay-pause", "", zOverlay)

	oledX, oledY := float32(Margin), float32(Margin)
	oledW, oledH := float32(l.OLEDWidth()), float32(l.OLEDHeight())
	controlsY := float32(l.ControlsY())
	radius := float32(ControlsHeight) / 2 * 0.7

	children := []objects.GameObject{
		objects.NewRectObject("casing", objects.NewRectObjectOptions{
			W:      float32(l.PanelLeft() - Margin/2),
			H:      float32(l.Height()),
			Color:  casingColor,
			ZIndex: zCasing,
		}),
		objects.NewRectObject("bezel", objects.NewRectObjectOptions{
			X:      oledX - 6,
			Y:      oledY - 6,
			W:      oledW + 12,
			H:      oledH + 12,
			Color:  bezelColor,
			ZIndex: zBezel,
		}),
		objects.NewOLEDObject("oled", objects.NewOLEDObjectOptions{
			Source: opts.Display,
			X:      float64(oledX),
			Y:      float64(oledY),
			Scale:  l.Scale,
			ZIndex: zDevice,
		}),
		objects.NewLEDObject("led", opts.LED, oledX+oledW/4, controlsY, radius/2, zDevice),
		objects.NewTiltObject("tilt", objects.NewTiltObjectOptions{
			Source:    opts.Motion,
			CX:        oledX + 3*oledW/4,
			CY:        controlsY,
			R:         radius,
			MaxAngle:  opts.MaxTilt,
			Threshold: opts.Threshold,
			ZIndex:    zDevice,
		}),
		objects.NewUIObject("panel", panel.UI, zPanel),
		overlay,
	}
	for _, child := range children {
		if err := root.AddChild(child, false); err != nil {
			return nil, fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}

	return &DeviceScene{
		BaseScene: NewBaseScene("device", root),
		root:      root,
		layout:    l,
		panel:     panel,
		overlay:   overlay,
	}, nil
}

func (s *DeviceScene) SetStatus(status ui.Status) {
	s.panel.SetStatus(status)
}

func (s *DeviceScene) SetPaused(paused bool) {
	if paused {
		s.overlay.SetText("Paused")
	} else {
		s.overlay.SetText("")
	}
}

// Announce floats a short message over the display.
func (s *DeviceScene) Announce(text string, clr color.Color) error {
	s.effects++
	effect := objects.NewTextEffect(fmt.Sprintf("effect-%d", s.effects), objects.NewTextEffectOptions{
		Text:   text,
		X:      float64(Margin + s.layout.OLEDWidth()/2),
		Y:      float64(Margin + s.layout.OLEDHeight()/2),
		Color:  clr,
		Scroll: true,
		TTL:    1200,
		ZIndex: zEffects,
	})
	if err := s.root.AddChild(effect, true); err != nil {
		return fmt.Errorf("failed to add text effect: %v", err)
	}
	return nil
}
