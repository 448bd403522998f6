package camera

import "testing"

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	c := NewOrbitCamera()
	m := c.ViewMatrix()

	eye := c.Position()
	view := m.TransformVec3(eye)

	if abs(view.X) > 0.001 || abs(view.Y) > 0.001 || abs(view.Z) > 0.001 {
		t.Errorf("view matrix should map eye to origin, got %v", view)
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("pitch should clamp to MaxPitch %f, got %f", c.MaxPitch, c.RotationX)
	}

	c.HandleDrag(0, -20000)
	if c.RotationX != c.MinPitch {
		t.Errorf("pitch should clamp to MinPitch %f, got %f", c.MinPitch, c.RotationX)
	}
}

func TestHandleZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera()

	for i := 0; i < 100; i++ {
		c.HandleZoom(10)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance should clamp to MinDistance %f, got %f", c.MinDistance, c.Distance)
	}

	for i := 0; i < 100; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance should clamp to MaxDistance %f, got %f", c.MaxDistance, c.Distance)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
