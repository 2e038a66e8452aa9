package examine

import (
	"examine3d/internal/engine"
	"examine3d/internal/input"
)

// GazeInteractor tracks the examinable item under the centre of the view,
// keeps it highlighted and starts examining it on interact. It holds the
// item by reference only; the item belongs to its GameObject.
type GazeInteractor struct {
	engine.BaseComponent
	InteractDistance float32
	Mask             engine.LayerMask

	svc     *Services
	current *ExaminableItem
}

func NewGazeInteractor() *GazeInteractor {
	return &GazeInteractor{
		InteractDistance: DefaultInteractDistance,
		Mask:             engine.MaskOf(engine.LayerDefault),
	}
}

func (gi *GazeInteractor) Bind(svc *Services) {
	gi.svc = svc
}

// Current returns the highlighted item, or nil.
func (gi *GazeInteractor) Current() *ExaminableItem {
	return gi.current
}

func (gi *GazeInteractor) Update(deltaTime float32) {
	if gi.svc == nil || gi.svc.Raycaster == nil {
		return
	}
	v := gi.svc.Viewer

	var item *ExaminableItem
	if hit, ok := gi.svc.Raycaster.Raycast(v.Position(), v.Forward(), gi.InteractDistance, gi.Mask); ok {
		item = engine.GetComponent[*ExaminableItem](hit.GameObject)
	}

	if item == nil {
		gi.release()
		return
	}
	if item != gi.current {
		if gi.current != nil {
			gi.current.SetHighlight(false)
		}
		gi.current = item
		item.SetHighlight(true)
		gi.svc.Presenter.SetCrosshairHighlight(true)
	}

	if gi.svc.Input.Pressed(input.ActionInteract) {
		gi.release()
		item.BeginExamine()
	}
}

// release un-highlights the tracked item and forgets it.
func (gi *GazeInteractor) release() {
	if gi.current == nil {
		return
	}
	gi.current.SetHighlight(false)
	gi.current = nil
	gi.svc.Presenter.SetCrosshairHighlight(false)
}

func (gi *GazeInteractor) OnDisable() {
	if gi.svc != nil {
		gi.release()
	}
}

func (gi *GazeInteractor) OnEnable() {}
