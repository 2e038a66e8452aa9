package examine

import "examine3d/internal/engine"

// InspectPoint is a labelled spot on an examinable item. It is only active,
// and so only hit by the cursor ray, while its item is being examined.
type InspectPoint struct {
	engine.BaseComponent
	Text string

	// Scene-authored actions, run on interact in this order: Sound is
	// played, the object named Toggle is shown or hidden, and RevealText
	// replaces Text.
	Sound      string
	Toggle     string
	RevealText string

	// OnInteract fires when the user presses interact on the point.
	OnInteract engine.Event

	svc *Services
}

func NewInspectPoint(text string) *InspectPoint {
	return &InspectPoint{Text: text}
}

func (p *InspectPoint) Information() string {
	return p.Text
}

func (p *InspectPoint) Interact() {
	p.OnInteract.Invoke()
}

func (p *InspectPoint) hasActions() bool {
	return p.Sound != "" || p.Toggle != "" || p.RevealText != ""
}

func (p *InspectPoint) runActions() {
	if p.svc != nil {
		p.svc.playSound(p.Sound)
	}
	if p.Toggle != "" {
		if target := p.toggleTarget(); target != nil {
			target.SetActive(!target.Active)
		}
	}
	if p.RevealText != "" {
		p.Text = p.RevealText
	}
}

func (p *InspectPoint) toggleTarget() *engine.GameObject {
	g := p.GetGameObject()
	if g == nil {
		return nil
	}
	return engine.Ref(p.Toggle).Get(g.Scene)
}

func (p *InspectPoint) setActive(on bool) {
	if g := p.GetGameObject(); g != nil {
		g.SetActive(on)
	}
}
