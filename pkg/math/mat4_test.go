package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

// Scale must reach the point before the translation does.
func TestComposeScaleThenTranslate(t *testing.T) {
	m := Translate(1, 0, 0).Mul(Scale(2, 1, 1))
	result := m.TransformPoint([3]float32{1, 0, 0})

	expected := [3]float32{3, 0, 0}
	if result != expected {
		t.Errorf("translate*scale: got %v, want %v", result, expected)
	}

	// Reversed order translates first, then doubles.
	result = Scale(2, 1, 1).Mul(Translate(1, 0, 0)).TransformPoint([3]float32{1, 0, 0})
	if result != [3]float32{4, 0, 0} {
		t.Errorf("scale*translate: got %v, want (4, 0, 0)", result)
	}
}

func TestComposeMatchesMul(t *testing.T) {
	parent := Translate(0, 0.5, 0)
	tr := Translate(-0.5, -0.13, 0.05)
	r := Rotate(45, 1, 0, 0)
	s := Scale(1, 0.3, 0.1)

	want := parent.Mul(tr).Mul(r).Mul(s)
	got := Compose(parent, tr, r, s)
	for i := range want {
		if abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("Compose element %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestRotateDegrees(t *testing.T) {
	tests := []struct {
		name    string
		degrees float32
		axis    [3]float32
		in      [3]float32
		want    [3]float32
	}{
		{"90 about Y", 90, [3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{"90 about X", 90, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}, [3]float32{0, 0, 1}},
		{"180 about Z", 180, [3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{-1, 0, 0}},
		{"unnormalized axis", 90, [3]float32{0, 5, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{"zero axis is identity", 90, [3]float32{0, 0, 0}, [3]float32{1, 2, 3}, [3]float32{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Rotate(tt.degrees, tt.axis[0], tt.axis[1], tt.axis[2])
			got := m.TransformPoint(tt.in)
			for i := 0; i < 3; i++ {
				if abs(got[i]-tt.want[i]) > 0.001 {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestRotateLeavesAxisUnchanged(t *testing.T) {
	m := Rotate(37, 0, 0, 1)
	got := m.TransformPoint([3]float32{0, 0, 2})
	if abs(got[0]) > 1e-6 || abs(got[1]) > 1e-6 || abs(got[2]-2) > 1e-6 {
		t.Errorf("rotation changed a point on its axis: %v", got)
	}
	if m[15] != 1 || m[12] != 0 || m[13] != 0 || m[14] != 0 {
		t.Error("rotation should not touch the homogeneous row/column")
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(4, 5, 6).Mul(Scale(2, 2, 2))
	got := m.TransformDirection([3]float32{1, 0, 0})
	if got != [3]float32{2, 0, 0} {
		t.Errorf("TransformDirection: got %v, want (2, 0, 0)", got)
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	m := Perspective(fov, 1, 5, 110)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
	if m[0] != m[5] {
		t.Errorf("square aspect should give equal x/y focal terms: %f vs %f", m[0], m[5])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 6, -7}
	center := Vec3{0, 0, 8}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	// The eye lands on the view-space origin.
	p := m.TransformVec3(eye)
	if p.Length() > 1e-4 {
		t.Errorf("eye should map to origin, got %v", p)
	}
	// The target lies straight ahead (negative Z in view space).
	c := m.TransformVec3(center)
	if abs(c.X) > 1e-4 || abs(c.Y) > 1e-4 || c.Z >= 0 {
		t.Errorf("center should be on -Z axis, got %v", c)
	}
}

func TestRadians(t *testing.T) {
	if abs(Radians(180)-float32(math.Pi)) > 1e-6 {
		t.Errorf("Radians(180) = %f", Radians(180))
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
