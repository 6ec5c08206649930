package scene

import (
	"testing"

	"clipraster/internal/pipeline"
	"clipraster/internal/shading"
)

func checkLayout(t *testing.T, m Mesh) {
	t.Helper()
	if len(m.Vertices)%shading.Stride != 0 {
		t.Fatalf("%s: vertex array length %d not a multiple of stride %d", m.Name, len(m.Vertices), shading.Stride)
	}
	n := m.NumVertices()
	if n < 3 {
		t.Fatalf("%s: only %d vertices", m.Name, n)
	}
	for _, i := range m.Indices {
		if i < 0 || i >= n {
			t.Fatalf("%s: index %d out of range [0,%d)", m.Name, i, n)
		}
	}
}

func TestCubeGeometry(t *testing.T) {
	m := Cube(1)
	checkLayout(t, m)
	if m.Type != pipeline.Indexed {
		t.Errorf("Type = %v, want Indexed", m.Type)
	}
	if m.NumVertices() != 24 {
		t.Errorf("NumVertices = %d, want 24 (4 per face)", m.NumVertices())
	}
	if m.NumTriangles() != 12 {
		t.Errorf("NumTriangles = %d, want 12", m.NumTriangles())
	}
	// Every position stays within the half-extent box.
	for v := 0; v < m.NumVertices(); v++ {
		for k := 0; k < 3; k++ {
			p := m.Vertices[v*shading.Stride+shading.InPos+k]
			if p < -0.5 || p > 0.5 {
				t.Fatalf("vertex %d coord %d = %v outside ±0.5", v, k, p)
			}
		}
	}
}

func TestPlaneGeometry(t *testing.T) {
	m := Plane(2.5, -0.5)
	checkLayout(t, m)
	if m.Type != pipeline.List {
		t.Errorf("Type = %v, want List", m.Type)
	}
	if m.NumVertices() != 6 {
		t.Errorf("NumVertices = %d, want 6 (two list triangles)", m.NumVertices())
	}
	for v := 0; v < m.NumVertices(); v++ {
		if y := m.Vertices[v*shading.Stride+shading.InPos+1]; y != -0.5 {
			t.Fatalf("vertex %d height = %v, want -0.5", v, y)
		}
	}
}

func TestDiscGeometry(t *testing.T) {
	const segments = 24
	m := Disc(segments, 1)
	checkLayout(t, m)
	if m.Type != pipeline.Fan {
		t.Errorf("Type = %v, want Fan", m.Type)
	}
	// Center + a closed ring (first rim vertex repeated).
	if m.NumVertices() != segments+2 {
		t.Errorf("NumVertices = %d, want %d", m.NumVertices(), segments+2)
	}
}

func TestRibbonGeometry(t *testing.T) {
	const segments = 16
	m := Ribbon(segments, 0.3, 1.2)
	checkLayout(t, m)
	if m.Type != pipeline.Strip {
		t.Errorf("Type = %v, want Strip", m.Type)
	}
	if m.NumVertices() != 2*(segments+1) {
		t.Errorf("NumVertices = %d, want %d (two rails)", m.NumVertices(), 2*(segments+1))
	}
}

func TestBuildKnownScenes(t *testing.T) {
	for _, name := range []string{"cube", "disc", "ribbon", "glow"} {
		meshes, err := Build(name)
		if err != nil {
			t.Errorf("Build(%q): %v", name, err)
			continue
		}
		if len(meshes) == 0 {
			t.Errorf("Build(%q) returned no meshes", name)
		}
		for _, m := range meshes {
			checkLayout(t, m)
		}
	}
}

func TestBuildGlowMarksEmissiveMesh(t *testing.T) {
	meshes, err := Build("glow")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	emissive := 0
	for _, m := range meshes {
		if m.Emissive {
			emissive++
		}
	}
	if emissive != 1 {
		t.Errorf("glow scene has %d emissive meshes, want 1", emissive)
	}
}

func TestBuildUnknownSceneFails(t *testing.T) {
	if _, err := Build("teapot"); err == nil {
		t.Fatal("Build of unknown scene succeeded, want error")
	}
}
