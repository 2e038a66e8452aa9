package examine

import (
	"fmt"

	"examine3d/internal/components"
	"examine3d/internal/engine"
	"examine3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/multierr"
)

// Emitter is implemented by renderers that can glow to show a highlight.
type Emitter interface {
	SetEmission(on bool)
}

// ExaminableItem lets the player pick an object up into the examine pose,
// turn and zoom it, interact with its inspect points and drop it back.
type ExaminableItem struct {
	engine.BaseComponent
	Config ItemConfig

	svc *Services

	state             State
	highlighted       bool
	canRotate         bool
	inspectEnabled    bool
	inspectSuppressed bool
	currentZoom       float32
	// anchor is the examine pose in camera space: right, up, forward.
	anchor rl.Vector3

	originalPos rl.Vector3
	originalRot rl.Vector3

	children []*engine.GameObject
	points   []*InspectPoint
	problems []error

	pose     engine.TaskSlot
	arm      engine.TaskSlot
	debounce engine.TaskSlot
}

func NewExaminableItem(cfg ItemConfig) *ExaminableItem {
	return &ExaminableItem{Config: cfg}
}

// Bind attaches the shared collaborators. It must be called before the
// scene starts.
func (it *ExaminableItem) Bind(svc *Services) {
	it.svc = svc
}

func (it *ExaminableItem) State() State         { return it.state }
func (it *ExaminableItem) Zoom() float32        { return it.currentZoom }
func (it *ExaminableItem) CanRotate() bool      { return it.canRotate }
func (it *ExaminableItem) Highlighted() bool    { return it.highlighted }
func (it *ExaminableItem) InspectEnabled() bool { return it.inspectEnabled }

// OriginalPosition is the world position captured at Start.
func (it *ExaminableItem) OriginalPosition() rl.Vector3 { return it.originalPos }

// OriginalRotation is the world rotation captured at Start.
func (it *ExaminableItem) OriginalRotation() rl.Vector3 { return it.originalRot }

// Problems lists the setup errors found at Start.
func (it *ExaminableItem) Problems() []error {
	return append([]error(nil), it.problems...)
}

// Err combines Problems into a single error, or nil.
func (it *ExaminableItem) Err() error {
	return multierr.Combine(it.problems...)
}

// Name is the configured item name, falling back to the object name.
func (it *ExaminableItem) Name() string {
	if it.Config.Name != "" {
		return it.Config.Name
	}
	if g := it.GetGameObject(); g != nil {
		return g.Name
	}
	return ""
}

func (it *ExaminableItem) Start() {
	g := it.GetGameObject()
	it.originalPos = g.WorldPosition()
	it.originalRot = g.WorldRotation()

	it.Config.InitialZoom = it.Config.clampZoom(it.Config.InitialZoom)
	it.resetZoom()

	it.resolveReferences(g.Scene)
	it.checkAssets()
	for _, p := range it.points {
		p.setActive(false)
	}

	if it.svc != nil {
		for _, err := range it.problems {
			it.svc.Log.Warn().Err(err).Str("item", it.Name()).Msg("examinable setup problem")
		}
	}
}

func (it *ExaminableItem) addProblem(field string, err error) {
	it.problems = append(it.problems, &ConfigError{Item: it.Name(), Field: field, Err: err})
}

func (it *ExaminableItem) resolveReferences(scene *engine.Scene) {
	it.children = it.children[:0]
	for i, ref := range it.Config.Children {
		obj := ref.Get(scene)
		if obj == nil {
			it.addProblem(fmt.Sprintf("children[%d]", i), fmt.Errorf("%w: %q", ErrMissingReference, ref.Name))
			continue
		}
		it.children = append(it.children, obj)
	}

	it.points = it.points[:0]
	for i, ref := range it.Config.InspectPoints {
		p := engine.GetComponent[*InspectPoint](ref.Get(scene))
		if p == nil {
			it.addProblem(fmt.Sprintf("inspectPoints[%d]", i), fmt.Errorf("%w: %q", ErrMissingReference, ref.Name))
			continue
		}
		p.svc = it.svc
		if p.Toggle != "" && p.toggleTarget() == nil {
			it.addProblem(fmt.Sprintf("inspectPoints[%d].toggle", i), fmt.Errorf("%w: %q", ErrMissingReference, p.Toggle))
		}
		it.points = append(it.points, p)
	}
}

func (it *ExaminableItem) checkAssets() {
	if it.svc == nil {
		return
	}
	if sounds := it.svc.Sounds; sounds != nil {
		if h := it.Config.PickupSound; h != "" && !sounds.HasSound(h) {
			it.addProblem("pickupSound", fmt.Errorf("%w: %q", ErrMissingSound, h))
		}
		if h := it.Config.DropSound; h != "" && !sounds.HasSound(h) {
			it.addProblem("dropSound", fmt.Errorf("%w: %q", ErrMissingSound, h))
		}
		for i, p := range it.points {
			if h := p.Sound; h != "" && !sounds.HasSound(h) {
				it.addProblem(fmt.Sprintf("inspectPoints[%d].sound", i), fmt.Errorf("%w: %q", ErrMissingSound, h))
			}
		}
	}
	if fonts := it.svc.Fonts; fonts != nil {
		if f := it.Config.NameStyle.Font; f != "" && !fonts.HasFont(f) {
			it.addProblem("nameStyle.font", fmt.Errorf("%w: %q", ErrMissingFont, f))
		}
		if f := it.Config.DescriptionStyle.Font; f != "" && !fonts.HasFont(f) {
			it.addProblem("descriptionStyle.font", fmt.Errorf("%w: %q", ErrMissingFont, f))
		}
	}
}

// SetHighlight turns the aim highlight on or off.
func (it *ExaminableItem) SetHighlight(on bool) {
	if it.svc == nil {
		return
	}
	it.highlighted = on
	if it.Config.NameHighlight {
		if on {
			it.svc.Presenter.SetNameHighlight(it.Name(), true, true)
		} else {
			it.svc.Presenter.SetNameHighlight("", false, false)
		}
	}
	if it.Config.EmissionHighlight {
		it.setSelfEmission(on)
		it.setChildrenEmission(on)
	}
}

// BeginExamine lifts the item into the examine pose. It does nothing while
// the item is already being examined; an item still returning home is
// picked up again from where it is.
func (it *ExaminableItem) BeginExamine() {
	if it.svc == nil || it.state == StateExamining {
		return
	}
	g := it.GetGameObject()
	it.state = StateExamining

	it.setColliderEnabled(false)
	it.arm.Start(engine.Wait(inspectArmDelay, it.enableInspectPoints))
	it.setPlayerEnabled(false)

	it.svc.Presenter.SetNameHighlight("", false, false)
	it.highlighted = false

	g.Layer = engine.LayerExamine
	it.svc.playSound(it.Config.PickupSound)

	it.resetZoom()
	g.SetWorldRotation(rl.Vector3Add(engine.LookRotation(it.svc.Viewer.Forward()), it.Config.InitialRotation))

	it.setChildrenLayer(engine.LayerExamine)
	it.setChildrenEmission(false)
	it.setSelfEmission(false)
	it.canRotate = true

	it.svc.Presenter.ShowHelpPrompt(true)

	it.pose.Start(engine.MoveTo(g, it.svc.anchorWorld(it.anchor), it.Config.PoseDuration))

	p := it.svc.Presenter
	switch it.Config.UIMode {
	case UINone:
		p.ShowCloseAffordance(true)
	case UIBasicPanel:
		p.ShowBasicPanel(it.Name(), it.Config.Description, true)
		p.SetPanelTextStyle(UIBasicPanel, it.Config.NameStyle, it.Config.DescriptionStyle)
	case UISidePanel:
		p.ShowSidePanel(it.Name(), it.Config.Description, true)
		p.SetPanelTextStyle(UISidePanel, it.Config.NameStyle, it.Config.DescriptionStyle)
	}

	it.svc.Log.Debug().Str("item", it.Name()).Msg("examine begin")
}

// DropObject puts the item back. With interpolate the item travels home
// over the pose duration, otherwise it snaps there. Rotation is always
// restored at once. Does nothing unless the item is being examined.
func (it *ExaminableItem) DropObject(interpolate bool) {
	if it.svc == nil || it.state != StateExamining {
		return
	}
	g := it.GetGameObject()

	it.setPlayerEnabled(true)
	it.setColliderEnabled(true)

	if interpolate && it.Config.PoseDuration > 0 {
		it.state = StateReturning
		it.pose.Start(engine.Then(engine.MoveTo(g, it.originalPos, it.Config.PoseDuration), func() {
			it.state = StateIdle
		}))
	} else {
		it.pose.Stop()
		g.SetWorldPosition(it.originalPos)
		it.state = StateIdle
	}
	g.SetWorldRotation(it.originalRot)

	g.Layer = engine.LayerDefault
	it.svc.playSound(it.Config.DropSound)

	it.svc.Presenter.SetInspectAnchor(false, rl.Vector2{})
	it.setChildrenLayer(engine.LayerDefault)
	it.setChildrenEmission(false)
	it.setSelfEmission(false)
	it.disableInspectPoints()
	it.canRotate = false

	it.resetZoom()
	it.svc.Presenter.ShowHelpPrompt(false)

	p := it.svc.Presenter
	switch it.Config.UIMode {
	case UINone:
		p.ShowCloseAffordance(false)
	case UIBasicPanel:
		p.ShowBasicPanel("", "", false)
	case UISidePanel:
		p.ShowSidePanel("", "", false)
	}

	it.svc.Log.Debug().Str("item", it.Name()).Bool("interpolate", interpolate).Msg("examine drop")
}

func (it *ExaminableItem) Update(deltaTime float32) {
	if it.svc == nil {
		return
	}
	it.pose.Update(deltaTime)
	it.arm.Update(deltaTime)
	it.debounce.Update(deltaTime)

	if !it.canRotate {
		return
	}
	in := it.svc.Input

	if it.inspectEnabled && len(it.points) > 0 {
		it.updateInspect(in)
	}

	if in.Held(input.ActionRotate) {
		it.rotate(in.LookDelta())
	} else if in.Pressed(input.ActionDrop) {
		it.DropObject(true)
		return
	}

	it.updateZoom(in.Scroll())
}

func (it *ExaminableItem) rotate(look rl.Vector2) {
	h := look.X * it.Config.RotationSpeed
	v := look.Y * it.Config.RotationSpeed
	if !it.Config.InvertRotation {
		h, v = -h, -v
	}
	g := it.GetGameObject()
	rot := g.WorldRotation()
	rot.X += v
	rot.Y += h
	g.SetWorldRotation(rot)
}

// updateZoom moves one sensitivity step per frame in the direction of the
// scroll, whatever its magnitude.
func (it *ExaminableItem) updateZoom(scroll float32) {
	switch {
	case scroll > 0:
		it.currentZoom += it.Config.ZoomSensitivity
	case scroll < 0:
		it.currentZoom -= it.Config.ZoomSensitivity
	default:
		return
	}
	it.currentZoom = it.Config.clampZoom(it.currentZoom)
	it.anchor = rl.Vector3{X: it.Config.HorizontalOffset, Y: it.Config.VerticalOffset, Z: it.currentZoom}

	it.pose.Stop()
	it.GetGameObject().SetWorldPosition(it.svc.anchorWorld(it.anchor))
}

// resetZoom restores the initial zoom and anchor without moving the item.
func (it *ExaminableItem) resetZoom() {
	it.currentZoom = it.Config.InitialZoom
	it.anchor = rl.Vector3{X: it.Config.HorizontalOffset, Y: it.Config.VerticalOffset, Z: it.currentZoom}
}

func (it *ExaminableItem) updateInspect(in input.Source) {
	v := it.svc.Viewer
	ray := v.ScreenPointToRay(in.MousePosition())
	if it.svc.Raycaster != nil {
		hit, ok := it.svc.Raycaster.Raycast(ray.Position, ray.Direction, it.svc.inspectDistance(), engine.AllLayers)
		if ok {
			if p := engine.GetComponent[*InspectPoint](hit.GameObject); p != nil {
				it.svc.Presenter.SetInspectAnchor(true, v.WorldToScreen(hit.GameObject.WorldPosition()))
				it.svc.Presenter.SetInspectText(p.Information())
				if in.Pressed(input.ActionInteract) && !it.inspectSuppressed {
					it.inspectSuppressed = true
					it.debounce.Start(engine.Wait(inspectDebounce, func() { it.inspectSuppressed = false }))
					p.Interact()
				}
				return
			}
		}
	}
	it.svc.Presenter.SetInspectAnchor(false, rl.Vector2{})
}

func (it *ExaminableItem) enableInspectPoints() {
	if len(it.points) == 0 {
		return
	}
	it.inspectEnabled = true
	for _, p := range it.points {
		p.setActive(true)
	}
}

func (it *ExaminableItem) disableInspectPoints() {
	it.arm.Stop()
	it.debounce.Stop()
	it.inspectSuppressed = false
	for _, p := range it.points {
		p.setActive(false)
	}
	it.inspectEnabled = false
}

func (it *ExaminableItem) setPlayerEnabled(on bool) {
	if it.svc.Gate != nil {
		it.svc.Gate.SetPlayerAndLookInputEnabled(on)
	}
}

func (it *ExaminableItem) setColliderEnabled(on bool) {
	for _, c := range it.GetGameObject().Components() {
		if col, ok := c.(components.Collider); ok {
			engine.SetEnabled(col, on)
		}
	}
}

func (it *ExaminableItem) setSelfEmission(on bool) {
	if it.Config.EmptyParent {
		return
	}
	setEmission(it.GetGameObject(), on)
}

func (it *ExaminableItem) setChildrenEmission(on bool) {
	for _, c := range it.children {
		setEmission(c, on)
	}
}

func (it *ExaminableItem) setChildrenLayer(l engine.Layer) {
	for _, c := range it.children {
		c.Layer = l
	}
}

func setEmission(g *engine.GameObject, on bool) {
	for _, c := range g.Components() {
		if e, ok := c.(Emitter); ok {
			e.SetEmission(on)
		}
	}
}
