package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestFullscreenQuad(t *testing.T) {
	buf := fullscreenQuad()
	if len(buf) != 6*quadVertexStride {
		t.Fatalf("quad buffer is %d bytes, want %d", len(buf), 6*quadVertexStride)
	}

	verts := make([][2]float32, 6)
	for i := range verts {
		x := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8:]))
		y := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8+4:]))
		verts[i] = [2]float32{x, y}
	}

	// Every vertex sits on a clip-space corner.
	for i, v := range verts {
		if math.Abs(float64(v[0])) != 1 || math.Abs(float64(v[1])) != 1 {
			t.Errorf("vertex %d = %v, not a corner", i, v)
		}
	}

	// All four corners are covered.
	corners := map[[2]float32]bool{}
	for _, v := range verts {
		corners[v] = true
	}
	if len(corners) != 4 {
		t.Errorf("quad covers %d distinct corners, want 4", len(corners))
	}

	// Both triangles wind counter-clockwise.
	for tri := 0; tri < 2; tri++ {
		a, b, c := verts[tri*3], verts[tri*3+1], verts[tri*3+2]
		cross := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
		if cross <= 0 {
			t.Errorf("triangle %d winds clockwise (cross = %v)", tri, cross)
		}
	}
}

func TestPackUniforms(t *testing.T) {
	u := Uniforms{CenterX: -0.5, CenterY: 0.25, Scale: 1.5, Aspect: 4.0 / 3.0}
	buf := packUniforms(u)
	if len(buf) != uniformSize {
		t.Fatalf("uniform buffer is %d bytes, want %d", len(buf), uniformSize)
	}

	want := []float32{u.CenterX, u.CenterY, u.Scale, u.Aspect}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Errorf("field %d = %v, want %v", i, got, w)
		}
	}
}

func TestQuadVertexLayout(t *testing.T) {
	layout := quadVertexLayout()
	if len(layout) != 1 {
		t.Fatalf("got %d buffer layouts, want 1", len(layout))
	}
	l := layout[0]
	if l.ArrayStride != quadVertexStride {
		t.Errorf("stride = %d, want %d", l.ArrayStride, quadVertexStride)
	}
	if len(l.Attributes) != 1 {
		t.Fatalf("got %d attributes, want 1", len(l.Attributes))
	}
	attr := l.Attributes[0]
	if attr.Format != gputypes.VertexFormatFloat32x2 {
		t.Errorf("format = %v, want Float32x2", attr.Format)
	}
	if attr.Offset != 0 || attr.ShaderLocation != 0 {
		t.Errorf("attribute = %+v, want offset 0 at location 0", attr)
	}
}
