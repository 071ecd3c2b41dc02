package difficulty

import "testing"

func TestNewManagerStartsAtNormal(t *testing.T) {
	m := NewManager()
	if got := m.Current().Name; got != "NORMAL" {
		t.Errorf("initial preset = %s, want NORMAL", got)
	}
}

func TestCycleWrapsAround(t *testing.T) {
	m := NewManager()

	want := []string{"HARD", "EASY", "NORMAL"}
	for _, name := range want {
		if got := m.Cycle().Name; got != name {
			t.Errorf("Cycle() = %s, want %s", got, name)
		}
	}
}

func TestSetClampsIndex(t *testing.T) {
	m := NewManager()

	m.Set(-5)
	if got := m.Current().Name; got != "EASY" {
		t.Errorf("Set(-5) preset = %s, want EASY", got)
	}

	m.Set(99)
	if got := m.Current().Name; got != "HARD" {
		t.Errorf("Set(99) preset = %s, want HARD", got)
	}
}

func TestNewManagerWithEmptyFallsBack(t *testing.T) {
	m := NewManagerWith(nil)
	if got := m.Current().Name; got != "NORMAL" {
		t.Errorf("fallback preset = %s, want NORMAL", got)
	}
}

func TestCurrentReflectsCustomPresets(t *testing.T) {
	custom := Presets()
	custom[1].PlungerMaxPower = 9999

	m := NewManagerWith(custom)
	if got := m.Current().PlungerMaxPower; got != 9999 {
		t.Errorf("custom PlungerMaxPower = %v, want 9999", got)
	}
}
