package fonts

import "testing"

func TestGet_AllStyles(t *testing.T) {
	for _, bold := range []bool{false, true} {
		for _, italic := range []bool{false, true} {
			f, err := Get(bold, italic)
			if err != nil {
				t.Fatalf("Get(%v, %v) error: %v", bold, italic, err)
			}
			if len(f.Data()) == 0 {
				t.Errorf("Get(%v, %v) returned empty font data", bold, italic)
			}
			again, _ := Get(bold, italic)
			if again != f {
				t.Errorf("Get(%v, %v) is not cached", bold, italic)
			}
		}
	}
}

func TestMeasure(t *testing.T) {
	w1, h1, err := Measure("Hello", 20, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("Measure(Hello) = %vx%v, want positive", w1, h1)
	}

	w2, _, _ := Measure("HelloHello", 20, false, false)
	if w2 <= w1 {
		t.Errorf("longer text is not wider: %v <= %v", w2, w1)
	}

	w3, h3, _ := Measure("Hello", 40, false, false)
	if w3 <= w1 || h3 <= h1 {
		t.Errorf("larger size is not larger: %vx%v vs %vx%v", w3, h3, w1, h1)
	}

	_, h4, _ := Measure("Hello\nWorld", 20, false, false)
	if h4 <= h1 {
		t.Errorf("two lines are not taller: %v <= %v", h4, h1)
	}

	w5, h5, _ := Measure("", 20, false, false)
	if w5 != 0 || h5 <= 0 {
		t.Errorf("Measure(\"\") = %vx%v, want 0 x line height", w5, h5)
	}
}

func TestFace(t *testing.T) {
	f, _ := Get(false, false)
	face, err := f.Face(16)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()
	if face.Metrics().Height <= 0 {
		t.Error("face has no height")
	}
}
