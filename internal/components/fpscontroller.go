package components

import (
	"math"

	"examine3d/internal/engine"
	"examine3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSController drives first-person walking, running, crouching and
// mouse look. The player gate disables it while an item is examined.
type FPSController struct {
	engine.BaseComponent
	Input input.Source

	Yaw           float32
	Pitch         float32
	MoveSpeed     float32
	RunMultiplier float32
	CrouchSpeed   float32
	LookSpeed     float32
	Velocity      rl.Vector3
	Gravity       float32
	JumpStrength  float32
	Grounded      bool
	Crouching     bool

	StandEyeHeight  float32
	CrouchEyeHeight float32
	// EyeHeight eases between the stand and crouch heights.
	EyeHeight   float32
	CrouchBlend float32
}

func NewFPSController(src input.Source) *FPSController {
	return &FPSController{
		Input:           src,
		Yaw:             -90.0,
		MoveSpeed:       4.0,
		RunMultiplier:   1.8,
		CrouchSpeed:     2.0,
		LookSpeed:       1.0,
		Gravity:         20.0,
		JumpStrength:    6.0,
		StandEyeHeight:  1.7,
		CrouchEyeHeight: 1.0,
		EyeHeight:       1.7,
		CrouchBlend:     10.0,
	}
}

func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil || f.Input == nil {
		return
	}

	look := f.Input.LookDelta()
	f.Yaw += look.X * f.LookSpeed
	f.Pitch += look.Y * f.LookSpeed
	if f.Pitch > 89 {
		f.Pitch = 89
	}
	if f.Pitch < -89 {
		f.Pitch = -89
	}

	forward, right := f.getDirections()

	var moveDir rl.Vector3
	if f.Input.Held(input.ActionForward) {
		moveDir = rl.Vector3Add(moveDir, forward)
	}
	if f.Input.Held(input.ActionBack) {
		moveDir = rl.Vector3Subtract(moveDir, forward)
	}
	if f.Input.Held(input.ActionRight) {
		moveDir = rl.Vector3Add(moveDir, right)
	}
	if f.Input.Held(input.ActionLeft) {
		moveDir = rl.Vector3Subtract(moveDir, right)
	}
	if l := rl.Vector3Length(moveDir); l > 0 {
		moveDir = rl.Vector3Scale(moveDir, 1/l)
	}

	f.Crouching = f.Input.Held(input.ActionCrouch)
	speed := f.MoveSpeed
	switch {
	case f.Crouching:
		speed = f.CrouchSpeed
	case f.Input.Held(input.ActionRun):
		speed *= f.RunMultiplier
	}

	f.Velocity.X = moveDir.X * speed
	f.Velocity.Z = moveDir.Z * speed

	if f.Input.Pressed(input.ActionJump) && f.Grounded && !f.Crouching {
		f.Velocity.Y = f.JumpStrength
		f.Grounded = false
	}
	if !f.Grounded {
		f.Velocity.Y -= f.Gravity * deltaTime
	}

	target := f.StandEyeHeight
	if f.Crouching {
		target = f.CrouchEyeHeight
	}
	f.EyeHeight += (target - f.EyeHeight) * min(1, f.CrouchBlend*deltaTime)

	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(f.Velocity, deltaTime))
}

// getDirections returns the horizontal forward and right axes for the
// current yaw.
func (f *FPSController) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Z: float32(math.Cos(yawRad)),
	}
	return
}

func (f *FPSController) GetLookDirection() rl.Vector3 {
	yawRad := float64(f.Yaw) * math.Pi / 180
	pitchRad := float64(f.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

func (f *FPSController) GetEyeHeight() float32 {
	return f.EyeHeight
}

// OnDisable stops residual horizontal motion so the player does not drift
// while control is handed to another system.
func (f *FPSController) OnDisable() {
	f.Velocity.X = 0
	f.Velocity.Z = 0
}

func (f *FPSController) OnEnable() {}
