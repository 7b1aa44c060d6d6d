package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Lifecycle is driven by the simulator window. Update runs once per
// simulated control loop tick, Draw once per rendered frame.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetChildren() []GameObject
	SetParent(parent GameObject)
	GetParent() GameObject
}

type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children []GameObject
}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings when drawing, lowest first.
	ZIndex int
}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{id: id}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error { return nil }
func (o *BaseObject) Destroy() error { return nil }
func (o *BaseObject) Update() error { return nil }
func (o *BaseObject) Draw(screen *ebiten.Image) {}
func (o *BaseObject) GetID() string { return o.id }
func (o *BaseObject) GetZIndex() int { return o.zIndex }
func (o *BaseObject) GetChildren() []GameObject { return o.children }
func (o *BaseObject) SetParent(parent GameObject) { o.parent = parent }
func (o *BaseObject) GetParent() GameObject { return o.parent }

// AddChild appends a child in insertion order.
func (o *BaseObject) AddChild(child GameObject) {
	o.children = append(o.children, child)
	child.SetParent(o)
}

// InitTree initializes obj and then its children.
func InitTree(obj GameObject) error {
	if err := obj.Init(); err != nil {
		return fmt.Errorf("failed to initialize %s: %v", obj.GetID(), err)
	}
	for _, child := range obj.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of obj and then obj itself.
func DestroyTree(obj GameObject) error {
	for _, child := range obj.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := obj.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy %s: %v", obj.GetID(), err)
	}
	return nil
}

// UpdateTree updates obj and then its children.
func UpdateTree(obj GameObject) error {
	if err := obj.Update(); err != nil {
		return fmt.Errorf("failed to update %s: %v", obj.GetID(), err)
	}
	// children may remove themselves while updating
	children := append([]GameObject(nil), obj.GetChildren()...)
	for _, child := range children {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws obj and then its children on top.
func DrawTree(obj GameObject, screen *ebiten.Image) {
	obj.Draw(screen)
	for _, child := range obj.GetChildren() {
		DrawTree(child, screen)
	}
}
