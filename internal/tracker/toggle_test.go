package tracker

import "testing"

func TestToggle(t *testing.T) {
	tests := []struct {
		name          string
		completed     bool
		streak        int
		wantCompleted bool
		wantStreak    int
	}{
		{"mark complete increments streak", false, 3, true, 4},
		{"mark incomplete decrements streak", true, 4, false, 3},
		{"first completion", false, 0, true, 1},
		{"uncomplete at streak 1", true, 1, false, 0},
		{"uncomplete at streak 0 clamps", true, 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCompleted, gotStreak := Toggle(tt.completed, tt.streak)
			if gotCompleted != tt.wantCompleted || gotStreak != tt.wantStreak {
				t.Errorf("Toggle(%v, %d) = (%v, %d), want (%v, %d)",
					tt.completed, tt.streak, gotCompleted, gotStreak, tt.wantCompleted, tt.wantStreak)
			}
		})
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	// Every state reachable through Toggle satisfies streak >= 1 when
	// completed; double-toggling any such state returns to the start.
	for streak := 0; streak <= 10; streak++ {
		c1, s1 := Toggle(false, streak)
		c2, s2 := Toggle(c1, s1)
		if c2 != false || s2 != streak {
			t.Errorf("double toggle from (false, %d) = (%v, %d), want (false, %d)", streak, c2, s2, streak)
		}
	}

	for streak := 1; streak <= 10; streak++ {
		c1, s1 := Toggle(true, streak)
		c2, s2 := Toggle(c1, s1)
		if c2 != true || s2 != streak {
			t.Errorf("double toggle from (true, %d) = (%v, %d), want (true, %d)", streak, c2, s2, streak)
		}
	}
}

func TestToggleNeverNegative(t *testing.T) {
	for streak := 0; streak <= 5; streak++ {
		for _, completed := range []bool{true, false} {
			if _, s := Toggle(completed, streak); s < 0 {
				t.Errorf("Toggle(%v, %d) produced negative streak %d", completed, streak, s)
			}
		}
	}
}
