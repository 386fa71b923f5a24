package tracker

import "github.com/zenhabits/zenhabits/internal/models"

// Stats aggregates a user's habit list into the numbers shown on the
// dashboard header and by 'habit stats'.
type Stats struct {
	Habits      int
	Completed   int
	TotalStreak int
}

// CompletionRate returns the completed share in percent. An empty list
// has a rate of zero.
func (s Stats) CompletionRate() float64 {
	if s.Habits == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Habits) * 100
}

// ComputeStats folds a habit list into its aggregate counts.
func ComputeStats(habits []models.Habit) Stats {
	st := Stats{Habits: len(habits)}
	for _, h := range habits {
		if h.Completed {
			st.Completed++
		}
		st.TotalStreak += h.Streak
	}
	return st
}

// Stats returns the aggregate view of the user's habits.
func (s *Service) Stats(userID int64) (Stats, error) {
	habits, err := s.store.GetHabits(userID)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(habits), nil
}
