package achievements

import (
	"fmt"
	"os"
	"time"

	"focusdeck/internal/stats"
)

// Check evaluates every still-locked achievement against the stats
// snapshot, stamps the ones that now qualify with unlock time now, and
// returns the updated slice together with the total bonus XP earned.
// The input slice is not modified.
//
// Already-unlocked entries are never re-evaluated, so a second call
// with unchanged stats unlocks nothing and returns a zero delta. A
// condition that fails to evaluate is logged and treated as not met;
// the remaining entries are still checked.
func Check(s stats.UserStats, achs []Achievement, now time.Time) ([]Achievement, int) {
	out := make([]Achievement, len(achs))
	copy(out, achs)

	xpDelta := 0
	for i := range out {
		a := &out[i]
		if a.Unlocked() || a.Condition == nil {
			continue
		}
		met, err := a.Condition.Met(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: achievement %s: %v\n", a.ID, err)
			continue
		}
		if !met {
			continue
		}
		t := now
		a.UnlockedAt = &t
		xpDelta += a.Points
	}
	return out, xpDelta
}

// Diff returns the entries of next that are unlocked but were locked in
// prev. Both slices must come from the same catalog order.
func Diff(prev, next []Achievement) []Achievement {
	var newly []Achievement
	for i := range next {
		if i < len(prev) && !prev[i].Unlocked() && next[i].Unlocked() {
			newly = append(newly, next[i])
		}
	}
	return newly
}
