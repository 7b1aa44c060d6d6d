package scenes

import "github.com/cbodonnell/mazerun/client/objects"

// ErrorScene replaces the device when its control loop fails.
type ErrorScene struct {
	*BaseScene
}

var _ Scene = &ErrorScene{}

func NewErrorScene(msg string, layout Layout) (Scene, error) {
	root := objects.NewSortedZIndexObject("error-root")
	if err := root.AddChild(objects.NewTextOverlayObject("overlay-error", msg, 0), false); err != nil {
		return nil, err
	}
	if err := root.AddChild(objects.NewTextEffect("error-hint", objects.NewTextEffectOptions{
		Text: "press R to reset",
		X:    float64(layout.Width()) / 2,
		Y:    float64(layout.Height()) - 24,
	}), false); err != nil {
		return nil, err
	}
	return &ErrorScene{
		BaseScene: NewBaseScene("error", root),
	}, nil
}
