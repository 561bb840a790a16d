package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit camera limits.
const (
	MinDistance = 0.2
	MaxDistance = 20

	maxPitch    = 1.5 // just short of straight up/down, where LookAt degenerates
	rotateSpeed = 0.01
	zoomStep    = 0.9
)

// Orbit is a camera circling the origin, where FitMatrix places the model.
type Orbit struct {
	Yaw      float32 // radians around Y
	Pitch    float32 // radians above the XZ plane
	Distance float32
}

// NewOrbit returns a camera looking slightly down at a unit-sized model.
func NewOrbit() Orbit {
	return Orbit{Yaw: 0, Pitch: 0.3, Distance: 2}
}

// Rotate turns the camera by a mouse drag of dx, dy pixels.
func (o *Orbit) Rotate(dx, dy float32) {
	o.Yaw += dx * rotateSpeed
	o.Pitch = mgl32.Clamp(o.Pitch+dy*rotateSpeed, -maxPitch, maxPitch)
}

// Zoom moves the camera in (positive steps) or out (negative steps).
func (o *Orbit) Zoom(steps float32) {
	d := float64(o.Distance) * math.Pow(zoomStep, float64(steps))
	o.Distance = float32(math.Min(math.Max(d, MinDistance), MaxDistance))
}

// Eye returns the camera position.
func (o Orbit) Eye() mgl32.Vec3 {
	cp := float32(math.Cos(float64(o.Pitch)))
	return mgl32.Vec3{
		o.Distance * cp * float32(math.Sin(float64(o.Yaw))),
		o.Distance * float32(math.Sin(float64(o.Pitch))),
		o.Distance * cp * float32(math.Cos(float64(o.Yaw))),
	}
}

// View returns the view matrix.
func (o Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.Eye(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// Projection returns a 45 degree perspective for a width x height viewport.
func Projection(width, height int32) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.01, 100)
}
