package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionAttack) {
		t.Fatal("zero frame should have no actions")
	}

	f.Set(ActionAttack)
	f.Set(ActionLeft)
	if !f.Has(ActionAttack) || !f.Has(ActionLeft) {
		t.Errorf("expected Attack and Left to be set, got %v", f.Actions)
	}
	if f.Has(ActionRight) {
		t.Error("Right should not be set")
	}

	f.Clear()
	if len(f.Actions) != 0 {
		t.Errorf("Clear() left %d actions", len(f.Actions))
	}
}

func TestActionString(t *testing.T) {
	if ActionAttack.String() != "Attack" {
		t.Errorf("ActionAttack.String() = %q", ActionAttack.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
