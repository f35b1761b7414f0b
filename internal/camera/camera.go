// Package camera is the free-fly viewport camera: hold the right mouse
// button to look around and fly with WASD/QE.
package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	MinSpeed float32 = 1
	MaxSpeed float32 = 100
)

type Fly struct {
	Position  rl.Vector3
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32

	zooming      bool
	zoomStart    rl.Vector3
	zoomTarget   rl.Vector3
	zoomProgress float32
}

// New places the camera at pos looking at target.
func New(pos, target rl.Vector3) *Fly {
	c := &Fly{
		Position:  pos,
		MoveSpeed: 10,
		LookSpeed: 0.1,
	}
	c.LookAt(target)
	return c
}

// LookAt turns the camera toward target.
func (c *Fly) LookAt(target rl.Vector3) {
	dir := rl.Vector3Normalize(rl.Vector3Subtract(target, c.Position))
	c.Pitch = float32(math.Asin(float64(dir.Y))) * rl.Rad2deg
	c.Yaw = float32(math.Atan2(float64(dir.Z), float64(dir.X))) * rl.Rad2deg
}

// Update applies mouse look, fly keys and the focus animation.
func (c *Fly) Update(deltaTime float32) {
	c.updateZoom(deltaTime)

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		c.zooming = false

		mouseDelta := rl.GetMouseDelta()
		c.Yaw += mouseDelta.X * c.LookSpeed
		c.Pitch -= mouseDelta.Y * c.LookSpeed
		c.Pitch = clampPitch(c.Pitch)

		forward, right := c.Directions()
		speed := c.MoveSpeed * deltaTime

		if rl.IsKeyDown(rl.KeyW) {
			c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(forward, speed))
		}
		if rl.IsKeyDown(rl.KeyS) {
			c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(forward, -speed))
		}
		if rl.IsKeyDown(rl.KeyA) {
			c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(right, speed))
		}
		if rl.IsKeyDown(rl.KeyD) {
			c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(right, -speed))
		}
		if rl.IsKeyDown(rl.KeyE) {
			c.Position.Y += speed
		}
		if rl.IsKeyDown(rl.KeyQ) {
			c.Position.Y -= speed
		}
	}

	// shift+wheel adjusts fly speed
	scroll := rl.GetMouseWheelMove()
	if scroll != 0 && (rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)) {
		c.MoveSpeed = min(max(c.MoveSpeed+scroll*2, MinSpeed), MaxSpeed)
	}
}

// Flying reports whether the camera currently owns the keyboard.
func (c *Fly) Flying() bool {
	return rl.IsMouseButtonDown(rl.MouseRightButton)
}

func clampPitch(p float32) float32 {
	if p > 89 {
		return 89
	}
	if p < -89 {
		return -89
	}
	return p
}

// Directions returns the view direction and the horizontal left vector.
func (c *Fly) Directions() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	forward = rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

func (c *Fly) Raylib() rl.Camera3D {
	forward, _ := c.Directions()
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

// Focus starts a short animation that frames a sphere of the given radius
// around target without changing the view direction.
func (c *Fly) Focus(target rl.Vector3, radius float32) {
	distance := max(radius*3, 3)
	forward, _ := c.Directions()

	c.zooming = true
	c.zoomStart = c.Position
	c.zoomTarget = rl.Vector3Subtract(target, rl.Vector3Scale(forward, distance))
	c.zoomProgress = 0
}

func (c *Fly) updateZoom(deltaTime float32) {
	if !c.zooming {
		return
	}

	c.zoomProgress += deltaTime * 4
	if c.zoomProgress >= 1 {
		c.zooming = false
		c.Position = c.zoomTarget
		return
	}

	// ease-out cubic
	t := c.zoomProgress
	ease := 1 - (1-t)*(1-t)*(1-t)
	c.Position = rl.Vector3Lerp(c.zoomStart, c.zoomTarget, ease)
}
