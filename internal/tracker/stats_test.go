package tracker

import (
	"testing"

	"github.com/zenhabits/zenhabits/internal/models"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name            string
		habits          []models.Habit
		wantHabits      int
		wantCompleted   int
		wantTotalStreak int
		wantRate        float64
	}{
		{"empty list", nil, 0, 0, 0, 0},
		{
			"mixed completion",
			[]models.Habit{
				{Title: "read", Completed: true, Streak: 3},
				{Title: "run", Completed: false, Streak: 0},
				{Title: "write", Completed: true, Streak: 7},
				{Title: "meditate", Completed: false, Streak: 2},
			},
			4, 2, 12, 50,
		},
		{
			"all complete",
			[]models.Habit{
				{Title: "read", Completed: true, Streak: 1},
				{Title: "run", Completed: true, Streak: 1},
			},
			2, 2, 2, 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.habits)
			if got.Habits != tt.wantHabits || got.Completed != tt.wantCompleted || got.TotalStreak != tt.wantTotalStreak {
				t.Errorf("ComputeStats() = %+v, want habits=%d completed=%d totalStreak=%d",
					got, tt.wantHabits, tt.wantCompleted, tt.wantTotalStreak)
			}
			if rate := got.CompletionRate(); rate != tt.wantRate {
				t.Errorf("CompletionRate() = %v, want %v", rate, tt.wantRate)
			}
		})
	}
}

func TestServiceStats(t *testing.T) {
	svc := setupService(t)
	userID := registerTestUser(t, svc, "alice")

	t.Run("no habits", func(t *testing.T) {
		stats, err := svc.Stats(userID)
		if err != nil {
			t.Fatalf("Stats() returned error: %v", err)
		}
		if stats.Habits != 0 || stats.CompletionRate() != 0 {
			t.Errorf("Stats() for empty list = %+v", stats)
		}
	})

	t.Run("reflects stored state", func(t *testing.T) {
		for _, title := range []string{"read", "run", "write"} {
			if _, err := svc.AddHabit(userID, title); err != nil {
				t.Fatalf("AddHabit(%s) returned error: %v", title, err)
			}
		}
		habits, _ := svc.ListHabits(userID)
		if _, err := svc.ToggleHabit(habits[0]); err != nil {
			t.Fatalf("ToggleHabit() returned error: %v", err)
		}

		stats, err := svc.Stats(userID)
		if err != nil {
			t.Fatalf("Stats() returned error: %v", err)
		}
		if stats.Habits != 3 || stats.Completed != 1 || stats.TotalStreak != 1 {
			t.Errorf("Stats() = %+v, want habits=3 completed=1 totalStreak=1", stats)
		}
	})

	t.Run("excludes other users", func(t *testing.T) {
		bobID := registerTestUser(t, svc, "bob")

		stats, err := svc.Stats(bobID)
		if err != nil {
			t.Fatalf("Stats() returned error: %v", err)
		}
		if stats.Habits != 0 {
			t.Errorf("Stats() for other user = %+v, want no habits", stats)
		}
	})
}
