// Package camera implements a first-person fly camera driven by keyboard
// movement, mouse look and scroll zoom.
//
// Orientation follows a right-handed, Y-up convention:
//
//	front = normalize(cos(yaw)·cos(pitch), sin(pitch), sin(yaw)·cos(pitch))
//
// so yaw = -90° and pitch = 0° look down the -Z axis. The camera is not safe
// for concurrent use; the render loop owns it.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera implements a 3D camera for navigation
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles, in degrees
	yaw   float32
	pitch float32

	// Zoom
	fov    float32
	fovMin float32
	fovMax float32

	// Camera options
	speed            float32
	sensitivity      float32
	invertHorizontal bool
	invertVertical   bool
}

// New creates a camera at position. The front vector is re-derived from yaw
// and pitch, so front only matters until the first orientation update.
func New(position, front, up mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		position:    position,
		front:       front,
		up:          up.Normalize(),
		yaw:         yaw,
		pitch:       pitch,
		fov:         DefaultFOVMax,
		fovMin:      DefaultFOVMin,
		fovMax:      DefaultFOVMax,
		speed:       DefaultSpeed,
		sensitivity: DefaultSensitivity,
	}

	c.updateCameraVectors()

	return c
}

// updateCameraVectors recalculates front and right from the Euler angles
func (c *Camera) updateCameraVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.up).Normalize()
}

// ProcessKeyboard moves the camera along front or right by speed*dt.
func (c *Camera) ProcessKeyboard(direction Direction, dt float32) {
	velocity := c.speed * dt

	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by mouse offsets scaled by the
// sensitivity. With constrainPitch the pitch saturates at ±89° so the view
// never flips over the poles.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	xOffset *= c.sensitivity
	yOffset *= c.sensitivity

	if c.invertHorizontal {
		xOffset = -xOffset
	}
	if c.invertVertical {
		yOffset = -yOffset
	}

	c.yaw += xOffset
	c.pitch += yOffset

	if constrainPitch {
		c.pitch = clampPitch(c.pitch)
	}

	c.updateCameraVectors()
}

// ProcessMouseScroll zooms by narrowing the field of view.
func (c *Camera) ProcessMouseScroll(delta float32) {
	c.fov = mgl32.Clamp(c.fov-delta, c.fovMin, c.fovMax)
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// FieldOfView returns the vertical field of view in degrees.
func (c *Camera) FieldOfView() float32 {
	return c.fov
}

// SetFieldOfView sets the field of view, clamped to the zoom limits.
func (c *Camera) SetFieldOfView(fov float32) {
	c.fov = mgl32.Clamp(fov, c.fovMin, c.fovMax)
}

// SetFieldOfViewRange changes the zoom limits and re-clamps the current
// field of view. Reversed bounds are swapped.
func (c *Camera) SetFieldOfViewRange(min, max float32) {
	if min > max {
		min, max = max, min
	}
	c.fovMin = min
	c.fovMax = max
	c.fov = mgl32.Clamp(c.fov, min, max)
}

// FieldOfViewRange returns the zoom limits.
func (c *Camera) FieldOfViewRange() (min, max float32) {
	return c.fovMin, c.fovMax
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetOrientation sets the camera rotation angles. Pitch is always clamped.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clampPitch(pitch)
	c.updateCameraVectors()
}

// LookAt turns the camera toward target. Targets straight above or below
// end up at the pitch limit.
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position)
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()

	c.yaw = mgl32.RadToDeg(math32.Atan2(direction.Z(), direction.X()))
	c.pitch = clampPitch(mgl32.RadToDeg(math32.Asin(direction.Y())))

	c.updateCameraVectors()
}

// Front returns the camera's unit look direction
func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

// Right returns the camera's unit right vector
func (c *Camera) Right() mgl32.Vec3 {
	return c.right
}

// Up returns the fixed up vector
func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// Speed returns the movement speed in world units per second.
func (c *Camera) Speed() float32 {
	return c.speed
}

// SetSpeed sets the movement speed in world units per second.
func (c *Camera) SetSpeed(speed float32) {
	c.speed = speed
}

// SetMouseSensitivity sets the multiplier applied to mouse offsets.
func (c *Camera) SetMouseSensitivity(sensitivity float32) {
	c.sensitivity = sensitivity
}

// SetInvertHorizontal flips the sign of yaw updates.
func (c *Camera) SetInvertHorizontal(invert bool) {
	c.invertHorizontal = invert
}

// SetInvertVertical flips the sign of pitch updates.
func (c *Camera) SetInvertVertical(invert bool) {
	c.invertVertical = invert
}

func clampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, MinPitch, MaxPitch)
}
