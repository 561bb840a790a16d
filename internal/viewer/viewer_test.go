package viewer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/objmesh/internal/render"
)

// Window and GL paths need a display; event handling and the camera
// transform are tested here.

func TestInputState_Quit(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  bool
	}{
		{"quit event", &sdl.QuitEvent{}, false},
		{"escape pressed", &sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}, false},
		{"escape released", &sdl.KeyboardEvent{State: sdl.RELEASED, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}, true},
		{"other key", &sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_SPACE}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newInputState()
			s.handle(tt.event)
			if s.running != tt.want {
				t.Errorf("expected running=%v, got %v", tt.want, s.running)
			}
		})
	}
}

func TestInputState_DragRotates(t *testing.T) {
	s := newInputState()
	start := s.orbit

	s.handle(&sdl.MouseMotionEvent{XRel: 50, YRel: 10})
	if s.orbit != start {
		t.Error("expected motion without a pressed button to be ignored")
	}

	s.handle(&sdl.MouseButtonEvent{Button: sdl.BUTTON_LEFT, State: sdl.PRESSED})
	s.handle(&sdl.MouseMotionEvent{XRel: 50, YRel: 10})
	if s.orbit.Yaw <= start.Yaw || s.orbit.Pitch <= start.Pitch {
		t.Errorf("expected yaw and pitch to grow, got %+v", s.orbit)
	}

	turned := s.orbit
	s.handle(&sdl.MouseButtonEvent{Button: sdl.BUTTON_LEFT, State: sdl.RELEASED})
	s.handle(&sdl.MouseMotionEvent{XRel: 50, YRel: 10})
	if s.orbit != turned {
		t.Error("expected motion after release to be ignored")
	}
}

func TestInputState_WheelZooms(t *testing.T) {
	s := newInputState()
	s.handle(&sdl.MouseWheelEvent{Y: 2})
	if s.orbit.Distance >= render.NewOrbit().Distance {
		t.Errorf("expected zoom in, got distance %v", s.orbit.Distance)
	}
}

func TestInputState_Resize(t *testing.T) {
	s := newInputState()
	s.handle(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED})
	if !s.resized {
		t.Error("expected resize to be flagged")
	}
}

func TestModelViewProjection_OriginInView(t *testing.T) {
	mvp := modelViewProjection(render.NewOrbit(), 1280, 720, mgl32.Ident4())
	clip := mvp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if clip.W() <= 0 {
		t.Fatalf("expected origin in front of the camera, got w=%v", clip.W())
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if !ndc.Vec2().ApproxEqualThreshold(mgl32.Vec2{}, 1e-5) {
		t.Errorf("expected origin at screen center, got %v", ndc)
	}
	if ndc.Z() < -1 || ndc.Z() > 1 {
		t.Errorf("expected origin within depth range, got %v", ndc.Z())
	}
}
