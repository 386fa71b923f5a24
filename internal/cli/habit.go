package cli

import (
	"fmt"
	"strings"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion."`
	Remove HabitRemoveCmd `cmd:"" help:"Remove a habit."`
	Stats  HabitStatsCmd  `cmd:"" help:"Show aggregate habit statistics."`
}

type HabitAddCmd struct {
	Title string `arg:"" help:"Habit title."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habitID, err := ctx.Tracker.AddHabit(sess.UserID, c.Title)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit %d: %s\n", habitID, c.Title)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Tracker.ListHabits(sess.UserID)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'zenhabits habit add'.")
		return nil
	}

	for _, h := range habits {
		status := "○"
		if h.Completed {
			status = "✓"
		}
		streak := ""
		if h.Streak > 0 {
			streak = fmt.Sprintf("  (streak %d)", h.Streak)
		}
		fmt.Printf("%s %4d  %s%s\n", status, h.ID, h.Title, streak)
	}
	return nil
}

type HabitToggleCmd struct {
	ID int64 `arg:"" help:"Habit id (see 'habit list')."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// The toggle works from the authoritative stored state, then the
	// list is re-fetched rather than patched.
	habits, err := ctx.Tracker.ListHabits(sess.UserID)
	if err != nil {
		return err
	}

	for _, h := range habits {
		if h.ID != c.ID {
			continue
		}
		updated, err := ctx.Tracker.ToggleHabit(h)
		if err != nil {
			return err
		}
		state := "incomplete"
		if updated.Completed {
			state = "complete"
		}
		fmt.Printf("Marked %q %s (streak %d)\n", updated.Title, state, updated.Streak)
		return nil
	}

	return fmt.Errorf("habit %d not found", c.ID)
}

type HabitStatsCmd struct{}

func (c *HabitStatsCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	stats, err := ctx.Tracker.Stats(sess.UserID)
	if err != nil {
		return err
	}

	if stats.Habits == 0 {
		fmt.Println("No habits yet. Add one with 'zenhabits habit add'.")
		return nil
	}

	fmt.Printf("Habits:          %d\n", stats.Habits)
	fmt.Printf("Completed:       %d (%.0f%%)\n", stats.Completed, stats.CompletionRate())
	fmt.Printf("Combined streak: %d days\n", stats.TotalStreak)
	return nil
}

type HabitRemoveCmd struct {
	ID int64 `arg:"" help:"Habit id to remove."`
}

func (c *HabitRemoveCmd) Run(ctx *Context) error {
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Only allow removing habits the session owns
	habits, err := ctx.Tracker.ListHabits(sess.UserID)
	if err != nil {
		return err
	}
	owned := false
	var title string
	for _, h := range habits {
		if h.ID == c.ID {
			owned = true
			title = h.Title
			break
		}
	}
	if !owned {
		return fmt.Errorf("habit %d not found", c.ID)
	}

	if err := ctx.Tracker.RemoveHabit(c.ID); err != nil {
		return err
	}

	fmt.Printf("Removed habit: %s\n", strings.TrimSpace(title))
	return nil
}
