package vecmath

import (
	"math"
	"math/rand"
	"testing"
)

func TestNew(t *testing.T) {
	v := New(1.0, 2.0)
	if v.X != 1.0 || v.Y != 2.0 {
		t.Errorf("Expected (1,2), got (%f,%f)", v.X, v.Y)
	}
}

func TestAdd(t *testing.T) {
	v1 := New(1.0, 2.0)
	v2 := New(4.0, 5.0)

	result := v1.Add(v2)
	if result.X != 5.0 || result.Y != 7.0 {
		t.Errorf("Expected (5,7), got (%f,%f)", result.X, result.Y)
	}
}

func TestSub(t *testing.T) {
	v1 := New(5.0, 7.0)
	v2 := New(1.0, 2.0)

	result := v1.Sub(v2)
	if result.X != 4.0 || result.Y != 5.0 {
		t.Errorf("Expected (4,5), got (%f,%f)", result.X, result.Y)
	}
}

func TestNeg(t *testing.T) {
	v := New(3.0, -2.0)
	result := v.Neg()
	if result.X != -3.0 || result.Y != 2.0 {
		t.Errorf("Expected (-3,2), got (%f,%f)", result.X, result.Y)
	}
}

func TestScale(t *testing.T) {
	v := New(2.0, 3.0)
	result := v.Scale(2.0)
	if result.X != 4.0 || result.Y != 6.0 {
		t.Errorf("Expected (4,6), got (%f,%f)", result.X, result.Y)
	}
}

func TestDiv(t *testing.T) {
	v := New(4.0, 6.0)
	result := v.Div(2.0)
	if result.X != 2.0 || result.Y != 3.0 {
		t.Errorf("Expected (2,3), got (%f,%f)", result.X, result.Y)
	}
}

func TestDot(t *testing.T) {
	v1 := New(2.0, 3.0)
	v2 := New(5.0, 6.0)

	dot := v1.Dot(v2)
	expected := float32(2.0*5.0 + 3.0*6.0)

	if math.Abs(float64(dot-expected)) > 0.001 {
		t.Errorf("Expected dot product %f, got %f", expected, dot)
	}
}

// TestPerp checks the quarter-turn rotation (x,y) -> (-y,x), the
// convention the Barnes-Hut seeding rotation in the container depends on.
func TestPerp(t *testing.T) {
	v := New(1.0, 0.0)
	result := v.Perp()
	if result.X != 0.0 || result.Y != 1.0 {
		t.Errorf("Expected (0,1), got (%f,%f)", result.X, result.Y)
	}
}

func TestLength(t *testing.T) {
	v := New(3.0, 4.0)
	length := v.Length()
	expected := float32(5.0)

	if math.Abs(float64(length-expected)) > 0.001 {
		t.Errorf("Expected length %f, got %f", expected, length)
	}
}

func TestLengthSquared(t *testing.T) {
	v := New(3.0, 4.0)
	if v.LengthSquared() != 25.0 {
		t.Errorf("Expected 25.0, got %f", v.LengthSquared())
	}
}

func TestNormalize(t *testing.T) {
	v := New(3.0, 4.0)

	normalized := v.Normalize()
	length := normalized.Length()

	if math.Abs(float64(length-1.0)) > 0.001 {
		t.Errorf("Expected normalized length 1.0, got %f", length)
	}

	expectedX := float32(3.0 / 5.0)
	expectedY := float32(4.0 / 5.0)

	if math.Abs(float64(normalized.X-expectedX)) > 0.001 {
		t.Errorf("Expected normalized X=%f, got %f", expectedX, normalized.X)
	}
	if math.Abs(float64(normalized.Y-expectedY)) > 0.001 {
		t.Errorf("Expected normalized Y=%f, got %f", expectedY, normalized.Y)
	}
}

func TestRandUniformRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := RandUniform(rng)
		if v.X < -1 || v.X >= 1 || v.Y < -1 || v.Y >= 1 {
			t.Fatalf("RandUniform out of range: %+v", v)
		}
	}
}

// TestRandUniformDeterministic checks that seeding the source makes the
// draw sequence reproducible, the property end-to-end scenario S6 depends
// on.
func TestRandUniformDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for i := 0; i < 10; i++ {
		va := RandUniform(a)
		vb := RandUniform(b)
		if va != vb {
			t.Fatalf("draw %d diverged: %+v vs %+v", i, va, vb)
		}
	}
}

func TestRandNormalDistinctComponents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sawNonZero := false
	for i := 0; i < 100; i++ {
		v := RandNormal(rng)
		if v.X != 0 || v.Y != 0 {
			sawNonZero = true
		}
	}
	if !sawNonZero {
		t.Fatalf("RandNormal produced only zero vectors")
	}
}
