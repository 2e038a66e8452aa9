package examine

import (
	"testing"

	"examine3d/internal/components"
	"examine3d/internal/engine"
	"examine3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

type call struct {
	name string
	args []any
}

type fakePresenter struct {
	calls []call
}

func (p *fakePresenter) record(name string, args ...any) {
	p.calls = append(p.calls, call{name: name, args: args})
}

func (p *fakePresenter) count(name string) int {
	n := 0
	for _, c := range p.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

// last returns the arguments of the most recent call to name, or nil.
func (p *fakePresenter) last(name string) []any {
	for i := len(p.calls) - 1; i >= 0; i-- {
		if p.calls[i].name == name {
			return p.calls[i].args
		}
	}
	return nil
}

func (p *fakePresenter) reset() { p.calls = nil }

func (p *fakePresenter) ShowBasicPanel(name, description string, show bool) {
	p.record("ShowBasicPanel", name, description, show)
}

func (p *fakePresenter) ShowSidePanel(name, description string, show bool) {
	p.record("ShowSidePanel", name, description, show)
}

func (p *fakePresenter) SetPanelTextStyle(mode UIMode, name, description TextStyle) {
	p.record("SetPanelTextStyle", mode, name, description)
}

func (p *fakePresenter) ShowCloseAffordance(show bool) {
	p.record("ShowCloseAffordance", show)
}

func (p *fakePresenter) SetNameHighlight(name string, show, highlighted bool) {
	p.record("SetNameHighlight", name, show, highlighted)
}

func (p *fakePresenter) ShowHelpPrompt(show bool) {
	p.record("ShowHelpPrompt", show)
}

func (p *fakePresenter) SetInspectAnchor(show bool, screenPos rl.Vector2) {
	p.record("SetInspectAnchor", show, screenPos)
}

func (p *fakePresenter) SetInspectText(text string) {
	p.record("SetInspectText", text)
}

func (p *fakePresenter) SetCrosshairHighlight(on bool) {
	p.record("SetCrosshairHighlight", on)
}

func (p *fakePresenter) SetCrosshairVisible(on bool) {
	p.record("SetCrosshairVisible", on)
}

type fakeGate struct {
	calls []bool
}

func (g *fakeGate) SetPlayerAndLookInputEnabled(enabled bool) {
	g.calls = append(g.calls, enabled)
}

type fakeSounds struct {
	loaded map[string]bool
	played []string
}

func (s *fakeSounds) PlaySound(handle string)     { s.played = append(s.played, handle) }
func (s *fakeSounds) HasSound(handle string) bool { return s.loaded[handle] }

type fakeFonts map[string]bool

func (f fakeFonts) HasFont(name string) bool { return f[name] }

// fakeViewer sits at pos looking down -Z.
type fakeViewer struct {
	pos rl.Vector3
}

func (v *fakeViewer) Position() rl.Vector3 { return v.pos }
func (v *fakeViewer) Forward() rl.Vector3  { return rl.Vector3{Z: -1} }
func (v *fakeViewer) Up() rl.Vector3       { return rl.Vector3{Y: 1} }
func (v *fakeViewer) Right() rl.Vector3    { return rl.Vector3{X: 1} }

func (v *fakeViewer) ScreenPointToRay(p rl.Vector2) rl.Ray {
	return rl.Ray{Position: v.pos, Direction: rl.Vector3{Z: -1}}
}

func (v *fakeViewer) WorldToScreen(p rl.Vector3) rl.Vector2 {
	return rl.Vector2{X: p.X * 100, Y: p.Y * 100}
}

// fakeRaycaster reports a hit on target whenever it is active.
type fakeRaycaster struct {
	target *engine.GameObject
	masks  []engine.LayerMask
}

func (r *fakeRaycaster) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	r.masks = append(r.masks, mask)
	if r.target == nil || !r.target.ActiveInHierarchy() {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{GameObject: r.target, Point: r.target.WorldPosition(), Distance: 1}, true
}

type fakeEmitter struct {
	engine.BaseComponent
	on    bool
	calls int
}

func (e *fakeEmitter) SetEmission(on bool) {
	e.on = on
	e.calls++
}

var _ Emitter = (*components.ModelRenderer)(nil)

type fixture struct {
	t         *testing.T
	scene     *engine.Scene
	svc       *Services
	presenter *fakePresenter
	gate      *fakeGate
	sounds    *fakeSounds
	in        *input.Snapshot
	ray       *fakeRaycaster
	obj       *engine.GameObject
	collider  *components.BoxCollider
	emitter   *fakeEmitter
	item      *ExaminableItem
}

func testConfig() ItemConfig {
	cfg := DefaultItemConfig()
	cfg.Name = "Key"
	cfg.Description = "A rusty key"
	return cfg
}

func newFixture(t *testing.T, cfg ItemConfig) *fixture {
	f := &fixture{
		t:         t,
		scene:     engine.NewScene("test"),
		presenter: &fakePresenter{},
		gate:      &fakeGate{},
		sounds:    &fakeSounds{loaded: map[string]bool{"pickup": true, "drop": true}},
		in:        &input.Snapshot{},
		ray:       &fakeRaycaster{},
	}
	f.svc = &Services{
		Presenter: f.presenter,
		Gate:      f.gate,
		Sounds:    f.sounds,
		Fonts:     fakeFonts{"serif": true},
		Input:     f.in,
		Viewer:    &fakeViewer{},
		Raycaster: f.ray,
		Log:       zerolog.Nop(),
	}

	f.obj = engine.NewGameObject("KeyObject")
	f.obj.Transform.Position = rl.Vector3{X: 1, Y: 1, Z: -3}
	f.obj.Transform.Rotation = rl.Vector3{X: 10, Y: 20, Z: 30}
	f.collider = components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	f.emitter = &fakeEmitter{}
	f.item = NewExaminableItem(cfg)
	f.obj.AddComponent(f.collider)
	f.obj.AddComponent(f.emitter)
	f.obj.AddComponent(f.item)
	f.scene.AddGameObject(f.obj)
	return f
}

// addChild adds a child object with its own emitter under the item.
func (f *fixture) addChild(name string) (*engine.GameObject, *fakeEmitter) {
	child := engine.NewGameObject(name)
	e := &fakeEmitter{}
	child.AddComponent(e)
	f.obj.AddChild(child)
	f.scene.AddGameObject(child)
	f.item.Config.Children = append(f.item.Config.Children, engine.Ref(name))
	return child, e
}

// addInspectPoint adds an inspect point object under the item.
func (f *fixture) addInspectPoint(name, text string) (*engine.GameObject, *InspectPoint) {
	obj := engine.NewGameObject(name)
	obj.Layer = engine.LayerInspectPoint
	obj.Transform.Position = rl.Vector3{Y: 0.5}
	p := NewInspectPoint(text)
	obj.AddComponent(p)
	f.obj.AddChild(obj)
	f.scene.AddGameObject(obj)
	f.item.Config.InspectPoints = append(f.item.Config.InspectPoints, engine.Ref(name))
	return obj, p
}

// start binds services and starts the scene.
func (f *fixture) start() {
	BindScene(f.scene, f.svc)
	f.scene.Start()
}

// frames runs n scene updates of dt seconds each.
func (f *fixture) frames(n int, dt float32) {
	for i := 0; i < n; i++ {
		f.scene.Update(dt)
	}
}
