package remote

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"next", Command{Action: Forward}},
		{" FORWARD\n", Command{Action: Forward}},
		{"prev", Command{Action: Backward}},
		{"previous", Command{Action: Backward}},
		{"backward", Command{Action: Backward}},
		{"reset", Command{Action: Reset}},
		{"jump 3", Command{Action: Jump, Slide: 2}},
		{"goto 1", Command{Action: Jump, Slide: 0}},
	}
	for _, tt := range tests {
		got, err := ParseCommand(tt.in)
		if err != nil {
			t.Errorf("ParseCommand(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCommand(%q): expected %+v, got %+v", tt.in, tt.want, got)
		}
	}

	for _, bad := range []string{"", "dance", "jump", "jump 0", "jump x", "jump 1 2"} {
		if _, err := ParseCommand(bad); err == nil {
			t.Errorf("ParseCommand(%q): expected an error", bad)
		}
	}
}
