package xwm

import "testing"

func TestButtonLayout(t *testing.T) {
	y, xs := buttonLayout(800, 32)

	if y != 10 {
		t.Errorf("expected y 10, got %d", y)
	}
	if (xs != [3]int{778, 756, 734}) {
		t.Errorf("expected xs [778 756 734], got %v", xs)
	}
}

func TestButtonLayout_NeverWraps(t *testing.T) {
	tests := []struct {
		name       string
		width      uint16
		bandHeight uint16
	}{
		{"band shorter than a button", 800, 8},
		{"window narrower than one button", 8, 32},
		{"window narrower than the row", 40, 32},
		{"degenerate window", 1, 1},
	}

	for _, test := range tests {
		y, xs := buttonLayout(test.width, test.bandHeight)
		if y < 0 || y > int(test.bandHeight) {
			t.Errorf("%s: y %d out of band", test.name, y)
		}
		for i, x := range xs {
			if x < 0 || x > int(test.width) {
				t.Errorf("%s: button %d at x %d outside window", test.name, i, x)
			}
		}
	}
}
