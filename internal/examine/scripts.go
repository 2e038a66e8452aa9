package examine

import (
	"examine3d/internal/assets"
	"examine3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterScript("Examinable", examinableFactory, examinableSerializer)
	engine.RegisterScript("InspectPoint", inspectPointFactory, inspectPointSerializer)
	engine.RegisterScript("GazeInteractor", interactorFactory, interactorSerializer)
}

func examinableFactory(props engine.Props) engine.Component {
	cfg := DefaultItemConfig()
	cfg.RotationSpeed = props.Float("rotationSpeed", cfg.RotationSpeed)
	cfg.InvertRotation = props.Bool("invertRotation", cfg.InvertRotation)
	if zr := props.Floats("zoomRange"); len(zr) == 2 {
		cfg.ZoomMin, cfg.ZoomMax = zr[0], zr[1]
	}
	cfg.ZoomSensitivity = props.Float("zoomSensitivity", cfg.ZoomSensitivity)
	cfg.InitialZoom = props.Float("initialZoom", cfg.InitialZoom)
	cfg.PoseDuration = props.Float("poseDuration", cfg.PoseDuration)
	if r := props.Floats("initialRotation"); len(r) == 3 {
		cfg.InitialRotation = rl.Vector3{X: r[0], Y: r[1], Z: r[2]}
	}
	cfg.HorizontalOffset = props.Float("horizontalOffset", cfg.HorizontalOffset)
	cfg.VerticalOffset = props.Float("verticalOffset", cfg.VerticalOffset)
	cfg.EmptyParent = props.Bool("emptyParent", cfg.EmptyParent)
	for _, name := range props.Strings("children") {
		cfg.Children = append(cfg.Children, engine.Ref(name))
	}
	for _, name := range props.Strings("inspectPoints") {
		cfg.InspectPoints = append(cfg.InspectPoints, engine.Ref(name))
	}
	cfg.EmissionHighlight = props.Bool("emissionHighlight", cfg.EmissionHighlight)
	cfg.NameHighlight = props.Bool("nameHighlight", cfg.NameHighlight)
	cfg.Name = props.String("name", cfg.Name)
	cfg.Description = props.String("description", cfg.Description)
	cfg.PickupSound = props.String("pickupSound", cfg.PickupSound)
	cfg.DropSound = props.String("dropSound", cfg.DropSound)

	it := NewExaminableItem(cfg)

	mode, err := ParseUIMode(props.String("uiMode", ""))
	if err != nil {
		it.addProblem("uiMode", err)
	}
	it.Config.UIMode = mode

	var styleErr error
	it.Config.NameStyle, styleErr = parseTextStyle(props["nameStyle"], cfg.NameStyle)
	if styleErr != nil {
		it.addProblem("nameStyle.color", styleErr)
	}
	it.Config.DescriptionStyle, styleErr = parseTextStyle(props["descriptionStyle"], cfg.DescriptionStyle)
	if styleErr != nil {
		it.addProblem("descriptionStyle.color", styleErr)
	}
	return it
}

func parseTextStyle(raw any, fallback TextStyle) (TextStyle, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return fallback, nil
	}
	p := engine.Props(m)
	style := TextStyle{
		Size:  p.Float("size", fallback.Size),
		Font:  p.String("font", fallback.Font),
		Color: fallback.Color,
	}
	if name := p.String("color", ""); name != "" {
		c, err := assets.ParseColor(name)
		if err != nil {
			return style, err
		}
		style.Color = c
	}
	return style, nil
}

func textStyleProps(s TextStyle) map[string]any {
	return map[string]any{
		"size":  s.Size,
		"font":  s.Font,
		"color": assets.ColorName(s.Color),
	}
}

func refNames(refs []engine.GameObjectRef) []string {
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}
	return names
}

func examinableSerializer(c engine.Component) map[string]any {
	it, ok := c.(*ExaminableItem)
	if !ok {
		return nil
	}
	cfg := it.Config
	return map[string]any{
		"rotationSpeed":     cfg.RotationSpeed,
		"invertRotation":    cfg.InvertRotation,
		"zoomRange":         []float32{cfg.ZoomMin, cfg.ZoomMax},
		"zoomSensitivity":   cfg.ZoomSensitivity,
		"initialZoom":       cfg.InitialZoom,
		"poseDuration":      cfg.PoseDuration,
		"initialRotation":   []float32{cfg.InitialRotation.X, cfg.InitialRotation.Y, cfg.InitialRotation.Z},
		"horizontalOffset":  cfg.HorizontalOffset,
		"verticalOffset":    cfg.VerticalOffset,
		"emptyParent":       cfg.EmptyParent,
		"children":          refNames(cfg.Children),
		"inspectPoints":     refNames(cfg.InspectPoints),
		"emissionHighlight": cfg.EmissionHighlight,
		"nameHighlight":     cfg.NameHighlight,
		"uiMode":            cfg.UIMode.String(),
		"name":              cfg.Name,
		"description":       cfg.Description,
		"nameStyle":         textStyleProps(cfg.NameStyle),
		"descriptionStyle":  textStyleProps(cfg.DescriptionStyle),
		"pickupSound":       cfg.PickupSound,
		"dropSound":         cfg.DropSound,
	}
}

func inspectPointFactory(props engine.Props) engine.Component {
	p := NewInspectPoint(props.String("text", ""))
	p.Sound = props.String("sound", "")
	p.Toggle = props.String("toggle", "")
	p.RevealText = props.String("revealText", "")
	if p.hasActions() {
		p.OnInteract.AddListener(p.runActions)
	}
	return p
}

func inspectPointSerializer(c engine.Component) map[string]any {
	p, ok := c.(*InspectPoint)
	if !ok {
		return nil
	}
	props := map[string]any{"text": p.Text}
	for key, v := range map[string]string{"sound": p.Sound, "toggle": p.Toggle, "revealText": p.RevealText} {
		if v != "" {
			props[key] = v
		}
	}
	return props
}

func interactorFactory(props engine.Props) engine.Component {
	gi := NewGazeInteractor()
	gi.InteractDistance = props.Float("interactDistance", gi.InteractDistance)
	return gi
}

func interactorSerializer(c engine.Component) map[string]any {
	gi, ok := c.(*GazeInteractor)
	if !ok {
		return nil
	}
	return map[string]any{"interactDistance": gi.InteractDistance}
}

// BindScene hands svc to every examinable item and gaze interactor in the
// scene. Call it after loading and before the scene starts.
func BindScene(scene *engine.Scene, svc *Services) (items []*ExaminableItem, interactors []*GazeInteractor) {
	for _, g := range scene.GameObjects {
		for _, c := range g.Components() {
			switch v := c.(type) {
			case *ExaminableItem:
				v.Bind(svc)
				items = append(items, v)
			case *GazeInteractor:
				v.Bind(svc)
				interactors = append(interactors, v)
			}
		}
	}
	return items, interactors
}
