package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionRotate) {
		t.Error("empty frame should not report actions")
	}

	f.Set(ActionRotate)
	f.Set(ActionLeft)
	if !f.Has(ActionRotate) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported")
	}
}

func TestInputFrameClickAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.SetClick(7, 3)

	if f.Click == nil || *f.Click != (Point{X: 7, Y: 3}) {
		t.Fatalf("Click = %v, expected (7,3)", f.Click)
	}

	f.Clear()
	if f.Has(ActionPause) || f.Click != nil {
		t.Error("Clear should drop actions and the click")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.SetClick(1, 2)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionUp) {
		t.Error("clone lost its action after original was cleared")
	}
	if clone.Click == nil || clone.Click.X != 1 || clone.Click.Y != 2 {
		t.Errorf("clone click = %v, expected (1,2)", clone.Click)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:   "None",
		ActionLeft:   "Left",
		ActionRotate: "Rotate",
		ActionPause:  "Pause",
		Action(99):   "Unknown",
	}
	for a, expected := range tests {
		if got := a.String(); got != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, expected)
		}
	}
}
