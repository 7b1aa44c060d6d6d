package scenes

import (
	"github.com/cbodonnell/mazerun/client/objects"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	objects.Lifecycle

	GetName() string
	GetRoot() objects.GameObject
}

// BaseScene runs the lifecycle of an object tree.
type BaseScene struct {
	Name string
	Root objects.GameObject
}

func NewBaseScene(name string, root objects.GameObject) *BaseScene {
	return &BaseScene{Name: name, Root: root}
}

func (s *BaseScene) GetName() string {
	return s.Name
}

func (s *BaseScene) GetRoot() objects.GameObject {
	return s.Root
}

func (s *BaseScene) Init() error {
	return objects.InitTree(s.Root)
}

func (s *BaseScene) Destroy() error {
	return objects.DestroyTree(s.Root)
}

func (s *BaseScene) Update() error {
	return objects.UpdateTree(s.Root)
}

func (s *BaseScene) Draw(screen *ebiten.Image) {
	objects.DrawTree(s.Root, screen)
}
