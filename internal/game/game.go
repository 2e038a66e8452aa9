// Package game wires configuration, the world, the player and the examine
// services into the window loop.
package game

import (
	"fmt"

	"examine3d/internal/assets"
	"examine3d/internal/audio"
	"examine3d/internal/components"
	"examine3d/internal/config"
	"examine3d/internal/engine"
	"examine3d/internal/examine"
	"examine3d/internal/input"
	"examine3d/internal/player"
	"examine3d/internal/ui"
	"examine3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

type Game struct {
	Config config.Config
	Log    zerolog.Logger

	World    *world.World
	Renderer *world.Renderer
	Player   *engine.GameObject
	Camera   *components.Camera
	Input    input.Source
	Fonts    *ui.Fonts
	Overlay  *ui.Overlay
	Sounds   *audio.Bank
	Gate     *player.Gate
	Services *examine.Services

	Items       []*examine.ExaminableItem
	Interactors []*examine.GazeInteractor

	ShowStats bool
}

func New(cfg config.Config, log zerolog.Logger) *Game {
	bindings := input.DefaultBindings()
	if overrides, err := input.ParseBindings(cfg.Input.Bindings); err != nil {
		log.Warn().Err(err).Msg("ignoring configured key bindings")
	} else {
		bindings = bindings.Merge(overrides)
	}

	opts := ui.DefaultOptions()
	opts.ShowHelp = cfg.UI.ShowHelp
	opts.FontSize = float32(cfg.UI.FontSize)
	opts.InteractKey = bindings[input.ActionInteract].Label()
	opts.RotateKey = bindings[input.ActionRotate].Label()
	opts.DropKey = bindings[input.ActionDrop].Label()

	fonts := ui.NewFonts(int32(cfg.UI.FontSize*2), log.With().Str("component", "fonts").Logger())
	sounds := audio.NewBank(log.With().Str("component", "audio").Logger())
	sounds.SetEnabled(cfg.Audio.Enabled)
	sounds.SetVolume(cfg.Audio.Volume)

	return &Game{
		Config:   cfg,
		Log:      log,
		World:    world.New(log.With().Str("component", "world").Logger()),
		Renderer: world.NewRenderer(cfg.UI.BlurAlpha),
		Input:    input.NewRaylibSource(bindings, cfg.Input.MouseSensitivity),
		Fonts:    fonts,
		Overlay:  ui.NewOverlay(opts, fonts),
		Sounds:   sounds,
	}
}

// Run opens the window, loads the scene and runs until the window closes.
func (g *Game) Run() error {
	win := g.Config.Window
	if win.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	} else {
		rl.SetConfigFlags(rl.FlagMsaa4xHint)
	}
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()
	defer assets.Unload()
	rl.SetTargetFPS(int32(win.TargetFPS))
	rl.SetExitKey(0)

	g.Sounds.Init()
	defer g.Sounds.Close()
	g.Sounds.LoadAll(g.Config.Audio.Sounds)
	g.Fonts.Load(g.Config.UI.Fonts)
	ui.ApplyTheme()

	g.World.Initialize()
	defer g.World.Unload()
	defer g.Renderer.Unload()

	spawn, err := g.World.LoadScene(g.Config.ScenePath)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	g.Setup(spawn)
	g.Camera.SetViewport(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	g.Overlay.SetCrosshairVisible(true)
	rl.DisableCursor()

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
	return nil
}

// Setup creates the player, binds the examine services to the loaded
// scene and starts it.
func (g *Game) Setup(spawn *world.PlayerDef) {
	g.createPlayer(spawn)

	g.Gate = player.NewGate(g.Player, g.Overlay, g.Log.With().Str("component", "player").Logger())
	g.Services = &examine.Services{
		Presenter:       g.Overlay,
		Gate:            g.Gate,
		Sounds:          g.Sounds,
		Fonts:           g.Fonts,
		Input:           g.Input,
		Viewer:          g.Camera,
		Raycaster:       g.World,
		Log:             g.Log.With().Str("component", "examine").Logger(),
		InspectDistance: g.Config.Examine.InspectDistance,
	}
	g.Items, g.Interactors = examine.BindScene(g.World.Scene, g.Services)
	g.Overlay.OnClose = g.dropExamined

	g.World.Scene.Start()

	misconfigured := 0
	for _, it := range g.Items {
		if it.Err() != nil {
			misconfigured++
		}
	}
	g.Log.Info().
		Int("items", len(g.Items)).
		Int("misconfigured", misconfigured).
		Int("interactors", len(g.Interactors)).
		Msg("examine ready")
}

func (g *Game) createPlayer(spawn *world.PlayerDef) {
	g.Player = engine.NewGameObject("Player")

	fps := components.NewFPSController(g.Input)
	if spawn != nil {
		g.Player.Transform.Position = rl.Vector3{X: spawn.Position[0], Y: spawn.Position[1], Z: spawn.Position[2]}
		fps.Yaw = spawn.Yaw
		fps.Pitch = spawn.Pitch
	}
	g.Player.AddComponent(fps)

	body := world.NewPlayerCollision()
	body.FloorY = g.World.FloorY
	g.Player.AddComponent(body)

	g.Camera = components.NewCamera()
	g.Camera.IsMain = true
	g.Player.AddComponent(g.Camera)

	gi := examine.NewGazeInteractor()
	if d := g.Config.Examine.InteractDistance; d > 0 {
		gi.InteractDistance = d
	}
	g.Player.AddComponent(gi)

	g.World.Scene.AddGameObject(g.Player)
}

// Examined returns the item currently being examined, or nil.
func (g *Game) Examined() *examine.ExaminableItem {
	for _, it := range g.Items {
		if it.State() == examine.StateExamining {
			return it
		}
	}
	return nil
}

func (g *Game) dropExamined() {
	if it := g.Examined(); it != nil {
		it.DropObject(true)
	}
}

// Step advances the simulation by deltaTime without touching the window.
func (g *Game) Step(deltaTime float32) {
	g.World.Update(deltaTime)
}

func (g *Game) Update(deltaTime float32) {
	if rl.IsWindowResized() {
		g.Camera.SetViewport(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.ShowStats = !g.ShowStats
	}
	g.Step(deltaTime)
}

func (g *Game) Draw() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	g.Renderer.PrepareOverlay(g.World, g.Camera, w, h)

	rl.BeginDrawing()
	g.Renderer.Draw(g.World, g.Camera, g.Gate.Blurred())
	g.Overlay.Draw(w, h)
	if g.ShowStats {
		g.drawStats()
	}
	rl.EndDrawing()
}

func (g *Game) drawStats() {
	rl.DrawFPS(10, 10)
	rl.DrawText(fmt.Sprintf("Drawn: %d  Culled: %d", g.Renderer.Drawn, g.Renderer.Culled), 10, 35, 16, rl.Green)
	state := "idle"
	if it := g.Examined(); it != nil {
		state = fmt.Sprintf("examining %s (zoom %.2f)", it.Name(), it.Zoom())
	}
	rl.DrawText(state, 10, 55, 16, rl.Green)
}
