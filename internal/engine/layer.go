package engine

// Layer selects which render pass and which raycasts see an object.
type Layer int

const (
	LayerDefault Layer = iota
	// LayerExamine holds objects drawn over the scene while being examined.
	LayerExamine
	// LayerInspectPoint holds inspect point markers on examined objects.
	LayerInspectPoint
)

var layerNames = map[Layer]string{
	LayerDefault:      "Default",
	LayerExamine:      "ExamineLayer",
	LayerInspectPoint: "InspectPointLayer",
}

func (l Layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return "Unknown"
}

// LayerByName maps a scene-file layer name to a Layer. Unknown names map to
// LayerDefault.
func LayerByName(name string) Layer {
	for l, n := range layerNames {
		if n == name {
			return l
		}
	}
	return LayerDefault
}

// LayerMask is a set of layers, one bit per Layer.
type LayerMask uint32

// MaskOf builds a mask containing the given layers.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << uint(l)
	}
	return m
}

// AllLayers matches every layer.
const AllLayers LayerMask = ^LayerMask(0)

func (m LayerMask) Has(l Layer) bool {
	return m&(1<<uint(l)) != 0
}
