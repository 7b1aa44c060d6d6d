package objects

import (
	"fmt"
)

// SortedZIndexObject is a GameObject that maintains a sorted list of child objects by z-index.
type SortedZIndexObject struct {
	*BaseObject

	// sorted is a list of child objects sorted by z-index.
	sorted []GameObject
}

var _ GameObject = &SortedZIndexObject{}

func NewSortedZIndexObject(id string) *SortedZIndexObject {
	return &SortedZIndexObject{
		BaseObject: NewBaseObject(id, nil),
		sorted:     make([]GameObject, 0),
	}
}

// AddChild inserts child after every sibling with a lower or equal z-index.
// Children added after the tree was initialized are initialized here.
func (o *SortedZIndexObject) AddChild(child GameObject, initialize bool) error {
	for _, obj := range o.sorted {
		if obj.GetID() == child.GetID() {
			return fmt.Errorf("child object with id %s already exists", child.GetID())
		}
	}
	if initialize {
		if err := InitTree(child); err != nil {
			return fmt.Errorf("failed to initialize child object tree: %v", err)
		}
	}
	child.SetParent(o)
	for i, obj := range o.sorted {
		if obj.GetZIndex() > child.GetZIndex() {
			o.sorted = append(o.sorted[:i], append([]GameObject{child}, o.sorted[i:]...)...)
			return nil
		}
	}
	o.sorted = append(o.sorted, child)
	return nil
}

func (o *SortedZIndexObject) RemoveChild(id string) error {
	for i, obj := range o.sorted {
		if obj.GetID() != id {
			continue
		}
		if err := DestroyTree(obj); err != nil {
			return fmt.Errorf("failed to destroy child object tree: %v", err)
		}
		obj.SetParent(nil)
		o.sorted = append(o.sorted[:i], o.sorted[i+1:]...)
		return nil
	}
	return fmt.Errorf("child object with id %s does not exist", id)
}

func (o *SortedZIndexObject) GetChildren() []GameObject {
	return o.sorted
}

// RemoveFromParent detaches obj from a SortedZIndexObject parent.
func RemoveFromParent(obj GameObject) error {
	parent, ok := obj.GetParent().(*SortedZIndexObject)
	if !ok {
		return fmt.Errorf("parent of %s does not support removal", obj.GetID())
	}
	return parent.RemoveChild(obj.GetID())
}
