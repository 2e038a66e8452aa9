package engine

// GameObjectRef is a serializable reference to a GameObject by name.
// Scene files reference children and inspect points this way because
// UIDs are assigned at load time.
//
// Example:
//
//	type MyScript struct {
//	    engine.BaseComponent
//	    Target engine.GameObjectRef
//	}
//
//	func (s *MyScript) Start() {
//	    if target := s.Target.Get(s.GetGameObject().Scene); target != nil {
//	        // Use the target...
//	    }
//	}
type GameObjectRef struct {
	Name string
}

// Ref builds a reference to the named object.
func Ref(name string) GameObjectRef {
	return GameObjectRef{Name: name}
}

// Get resolves the reference to the actual GameObject.
// Returns nil if the reference is empty or the object doesn't exist.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.Name == "" || scene == nil {
		return nil
	}
	return scene.FindByName(r.Name)
}

// IsValid returns true if the reference names something.
// Note: This doesn't check if the GameObject actually exists in the scene.
func (r GameObjectRef) IsValid() bool {
	return r.Name != ""
}

// Set sets the reference to point to the given GameObject.
// Pass nil to clear the reference.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.Name = ""
	} else {
		r.Name = g.Name
	}
}

// Clear clears the reference.
func (r *GameObjectRef) Clear() {
	r.Name = ""
}
