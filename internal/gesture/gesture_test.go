package gesture

import "testing"

func TestRecognizer_DragMovesWindowByPointerDelta(t *testing.T) {
	r := NewRecognizer(32)

	origin := Point{X: 100, Y: 200}
	press := Point{X: 150, Y: 210}

	if !r.HandlePress(Press{LocalY: 10, Root: press, Origin: origin}) {
		t.Fatal("expected press inside band to start a drag")
	}

	tests := []struct {
		dx int
		dy int
	}{
		{0, 0},
		{5, 0},
		{0, 5},
		{-40, 13},
		{300, -250},
	}

	for _, test := range tests {
		target, ok := r.HandleMotion(Point{X: press.X + test.dx, Y: press.Y + test.dy})
		if !ok {
			t.Fatalf("expected motion with delta (%d, %d) to move the window", test.dx, test.dy)
		}
		expected := Point{X: origin.X + test.dx, Y: origin.Y + test.dy}
		if target != expected {
			t.Errorf("delta (%d, %d): expected origin %+v, got %+v", test.dx, test.dy, expected, target)
		}
	}
}

func TestRecognizer_PressOutsideBand(t *testing.T) {
	r := NewRecognizer(32)

	tests := []struct {
		name    string
		localY  int
		started bool
	}{
		{"top edge", 0, true},
		{"inside band", 31, true},
		{"band boundary", 32, false},
		{"below band", 200, false},
	}

	for _, test := range tests {
		r.HandleRelease()
		started := r.HandlePress(Press{LocalY: test.localY})
		if started != test.started {
			t.Errorf("%s: press at y=%d started=%v, expected %v", test.name, test.localY, started, test.started)
		}
	}
}

func TestRecognizer_PressOverControlDoesNotDrag(t *testing.T) {
	r := NewRecognizer(32)

	if r.HandlePress(Press{LocalY: 10, OverControl: true}) {
		t.Fatal("expected press over a control button to be ignored")
	}
	if r.Dragging() {
		t.Fatal("expected recognizer to stay idle")
	}
	if _, ok := r.HandleMotion(Point{X: 500, Y: 500}); ok {
		t.Fatal("expected motion to be ignored while idle")
	}
}

func TestRecognizer_ReleaseClearsDragState(t *testing.T) {
	r := NewRecognizer(32)

	if !r.HandlePress(Press{LocalY: 5, Root: Point{X: 10, Y: 10}}) {
		t.Fatal("expected drag to start")
	}
	r.HandleRelease()

	if r.Dragging() {
		t.Fatal("expected recognizer to be idle after release")
	}
	if _, ok := r.HandleMotion(Point{X: 999, Y: 999}); ok {
		t.Fatal("expected motion after release to move nothing")
	}
}

func TestRecognizer_ReleaseWhileIdle(t *testing.T) {
	r := NewRecognizer(32)

	r.HandleRelease()

	if r.Dragging() {
		t.Fatal("expected recognizer to stay idle")
	}
}

func TestRecognizer_SecondPressDuringDragIsIgnored(t *testing.T) {
	r := NewRecognizer(32)

	if !r.HandlePress(Press{LocalY: 5, Root: Point{X: 50, Y: 5}, Origin: Point{X: 40, Y: 0}}) {
		t.Fatal("expected drag to start")
	}
	if r.HandlePress(Press{LocalY: 5, Root: Point{X: 300, Y: 5}, Origin: Point{X: 40, Y: 0}}) {
		t.Fatal("expected second press during a drag to be ignored")
	}

	// The anchor from the first press still drives motion.
	target, ok := r.HandleMotion(Point{X: 60, Y: 10})
	if !ok {
		t.Fatal("expected drag to still be active")
	}
	if (target != Point{X: 50, Y: 5}) {
		t.Errorf("expected origin (50, 5), got %+v", target)
	}
}
