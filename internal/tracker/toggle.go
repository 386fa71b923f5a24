// Package tracker holds the habit completion rules and the operation
// set the UI layers call. State changes are computed here and persisted
// through a storage.Provider; callers re-fetch the habit list after
// every mutation instead of patching their own copy.
package tracker

// Toggle computes the next (completed, streak) pair for a habit when
// the user flips its completion state. Marking complete increments the
// streak; marking incomplete decrements it. The streak never drops
// below zero.
func Toggle(completed bool, streak int) (bool, int) {
	if completed {
		streak--
		if streak < 0 {
			streak = 0
		}
		return false, streak
	}
	return true, streak + 1
}
