package world

import (
	"examine3d/internal/components"
	"examine3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the scene in two passes. The default layer is drawn
// normally; examined items and their inspect points are drawn into an
// overlay texture with its own depth buffer, so they are never hidden by
// walls, and composited on top.
type Renderer struct {
	Background rl.Color
	// Backdrop dims the world while an item is examined.
	Backdrop rl.Color
	Cull     bool

	overlay     rl.RenderTexture2D
	overlayW    int32
	overlayH    int32
	hasOverlay  bool
	overlayUsed bool

	// Stats from the last frame.
	Drawn  int
	Culled int
}

func NewRenderer(backdropAlpha float32) *Renderer {
	return &Renderer{
		Background: rl.NewColor(20, 20, 30, 255),
		Backdrop:   rl.Fade(rl.Black, backdropAlpha),
		Cull:       true,
	}
}

// overlayMask selects the layers drawn over the world.
var overlayMask = engine.MaskOf(engine.LayerExamine, engine.LayerInspectPoint)

// partition splits the visible renderers into world and overlay passes.
func partition(objects []*engine.GameObject) (world, overlay []*components.ModelRenderer) {
	for _, g := range objects {
		if !g.ActiveInHierarchy() {
			continue
		}
		r := engine.GetComponent[*components.ModelRenderer](g)
		if r == nil || !r.Enabled() {
			continue
		}
		if overlayMask.Has(g.Layer) {
			overlay = append(overlay, r)
		} else {
			world = append(world, r)
		}
	}
	return world, overlay
}

// boundingSphere uses the object's first collider to size a culling
// sphere. Objects without colliders are never culled.
func boundingSphere(g *engine.GameObject) (rl.Vector3, float32, bool) {
	for _, c := range g.Components() {
		if col, ok := c.(components.Collider); ok {
			b := col.Bounds()
			return b.Center(), rl.Vector3Length(b.Size()) / 2, true
		}
	}
	return rl.Vector3{}, 0, false
}

func (r *Renderer) visible(f *Frustum, g *engine.GameObject) bool {
	if !r.Cull || f == nil {
		return true
	}
	center, radius, ok := boundingSphere(g)
	if !ok {
		return true
	}
	return f.ContainsSphere(center, radius)
}

// PrepareOverlay renders the examine layers into the overlay texture.
// Call it before BeginDrawing.
func (r *Renderer) PrepareOverlay(w *World, cam *components.Camera, width, height int32) {
	_, overlay := partition(w.Scene.GameObjects)
	r.overlayUsed = len(overlay) > 0
	if !r.overlayUsed {
		return
	}
	r.ensureOverlay(width, height)

	rl.BeginTextureMode(r.overlay)
	rl.ClearBackground(rl.Blank)
	rl.BeginMode3D(cam.GetRaylibCamera())
	for _, mr := range overlay {
		mr.Draw()
	}
	rl.EndMode3D()
	rl.EndTextureMode()
}

func (r *Renderer) ensureOverlay(width, height int32) {
	if r.hasOverlay && r.overlayW == width && r.overlayH == height {
		return
	}
	if r.hasOverlay {
		rl.UnloadRenderTexture(r.overlay)
	}
	r.overlay = rl.LoadRenderTexture(width, height)
	r.overlayW, r.overlayH = width, height
	r.hasOverlay = true
}

// Draw draws the world, the backdrop when dimmed and then the overlay.
// Call it between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(w *World, cam *components.Camera, dimmed bool) {
	rl.ClearBackground(r.Background)

	frustum := CameraFrustum(cam)
	worldPass, _ := partition(w.Scene.GameObjects)
	r.Drawn, r.Culled = 0, 0

	rl.BeginMode3D(cam.GetRaylibCamera())
	if w.hasFloor {
		rl.DrawModel(w.floorModel, rl.Vector3{Y: w.FloorY}, 1.0, w.FloorColor)
	}
	for _, mr := range worldPass {
		if !r.visible(&frustum, mr.GetGameObject()) {
			r.Culled++
			continue
		}
		mr.Draw()
		r.Drawn++
	}
	rl.EndMode3D()

	if dimmed {
		rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), r.Backdrop)
	}

	if r.overlayUsed && r.hasOverlay {
		tex := r.overlay.Texture
		// Render textures are stored upside down.
		src := rl.Rectangle{Width: float32(tex.Width), Height: -float32(tex.Height)}
		rl.DrawTextureRec(tex, src, rl.Vector2{}, rl.White)
	}
}

func (r *Renderer) Unload() {
	if r.hasOverlay {
		rl.UnloadRenderTexture(r.overlay)
		r.hasOverlay = false
	}
}
