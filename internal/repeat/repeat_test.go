package repeat

import "testing"

func TestParseMax(t *testing.T) {
	tests := []struct {
		attr string
		want int
	}{
		{"", 1},
		{"3", 3},
		{" 2 ", 2},
		{"0", 1},
		{"-4", 1},
		{"many", 1},
	}
	for _, tt := range tests {
		if got := ParseMax(tt.attr); got != tt.want {
			t.Errorf("ParseMax(%q) = %d, want %d", tt.attr, got, tt.want)
		}
	}
}

func TestAdvance(t *testing.T) {
	c := New([]int{3, 1})

	if !c.Advance(0) || !c.Advance(0) {
		t.Fatal("slide 0 should repeat twice more")
	}
	if c.Current(0) != 3 {
		t.Errorf("current = %d, want 3", c.Current(0))
	}
	if c.Advance(0) {
		t.Error("slide 0 is on its last repeat")
	}
	if c.Advance(1) {
		t.Error("slide 1 does not repeat")
	}
}

func TestRegress(t *testing.T) {
	c := New([]int{2})
	if c.Regress(0) {
		t.Error("first repeat cannot regress")
	}
	c.Advance(0)
	if !c.Regress(0) || c.Current(0) != 1 {
		t.Errorf("expected to regress to 1, at %d", c.Current(0))
	}
}

func TestSetClampsAndReset(t *testing.T) {
	c := New([]int{0, 4})
	if c.Max(0) != 1 {
		t.Errorf("max below one should be one, got %d", c.Max(0))
	}

	c.Set(1, 9)
	if c.Current(1) != 4 {
		t.Errorf("Set should clamp to max, got %d", c.Current(1))
	}
	c.Set(1, -2)
	if c.Current(1) != 1 {
		t.Errorf("Set should clamp to one, got %d", c.Current(1))
	}

	c.Set(1, 3)
	c.ResetAll()
	if c.Current(1) != 1 {
		t.Errorf("ResetAll left %d", c.Current(1))
	}
}

func TestOutOfRange(t *testing.T) {
	c := New([]int{2})
	if c.Advance(5) || c.Regress(-1) {
		t.Error("unknown slides never repeat")
	}
	if c.Max(7) != 1 || c.Current(7) != 1 {
		t.Error("unknown slides report a single repeat")
	}
}
