package scene

import "testing"

func TestBuildCubeShape(t *testing.T) {
	vertices, indices := buildCube()

	if len(vertices) != 24 {
		t.Errorf("expected 24 vertices, got %d", len(vertices))
	}
	if len(indices) != 36 {
		t.Errorf("expected 36 indices, got %d", len(indices))
	}

	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			t.Errorf("index %d out of range: %d", i, idx)
		}
	}
}

func TestBuildCubeTangentFrames(t *testing.T) {
	vertices, _ := buildCube()

	dot := func(a, b [3]float32) float32 {
		return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
	}

	for i, v := range vertices {
		// Frame vectors are axis-aligned unit vectors and mutually orthogonal.
		if dot(v.Normal, v.Normal) != 1 {
			t.Errorf("vertex %d: normal %v not unit length", i, v.Normal)
		}
		if dot(v.Tangent, v.Tangent) != 1 {
			t.Errorf("vertex %d: tangent %v not unit length", i, v.Tangent)
		}
		if dot(v.Bitangent, v.Bitangent) != 1 {
			t.Errorf("vertex %d: bitangent %v not unit length", i, v.Bitangent)
		}
		if dot(v.Normal, v.Tangent) != 0 || dot(v.Normal, v.Bitangent) != 0 || dot(v.Tangent, v.Bitangent) != 0 {
			t.Errorf("vertex %d: frame not orthogonal", i)
		}
	}
}

func TestBuildCubeTexCoords(t *testing.T) {
	vertices, _ := buildCube()

	for i, v := range vertices {
		for c := 0; c < 2; c++ {
			if v.TexCoord[c] != 0 && v.TexCoord[c] != 1 {
				t.Errorf("vertex %d: texcoord %v should be at a corner", i, v.TexCoord)
			}
		}
	}
}
