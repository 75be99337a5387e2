package service

import (
	"sort"
)

// BucketAllocation holds the fixed per-component minute budgets and the
// exercise cap for one supported total-duration bucket.
type BucketAllocation struct {
	WarmupMinutes     int
	BreathworkMinutes int
	CooldownMinutes   int
	MeditationMinutes int
	StretchingMinutes int
	MaxExercises      int
}

// AllocationTable maps each supported workout duration (total minutes per
// day) to its component budgets. The exact values are tuning, not law:
// shorter sessions drop optional wellness components first (breathwork,
// then stretching) before the remaining components are shortened.
type AllocationTable map[int]BucketAllocation

// DefaultAllocationTable returns the standard 15/30/45/60 minute buckets.
func DefaultAllocationTable() AllocationTable {
	return AllocationTable{
		15: {WarmupMinutes: 4, BreathworkMinutes: 0, CooldownMinutes: 4, MeditationMinutes: 3, StretchingMinutes: 0, MaxExercises: 2},
		30: {WarmupMinutes: 5, BreathworkMinutes: 3, CooldownMinutes: 5, MeditationMinutes: 5, StretchingMinutes: 0, MaxExercises: 2},
		45: {WarmupMinutes: 5, BreathworkMinutes: 5, CooldownMinutes: 5, MeditationMinutes: 5, StretchingMinutes: 0, MaxExercises: 4},
		60: {WarmupMinutes: 7, BreathworkMinutes: 5, CooldownMinutes: 7, MeditationMinutes: 7, StretchingMinutes: 10, MaxExercises: 4},
	}
}

// Buckets returns the table's supported durations in ascending order.
func (t AllocationTable) Buckets() []int {
	buckets := make([]int, 0, len(t))
	for b := range t {
		buckets = append(buckets, b)
	}
	sort.Ints(buckets)
	return buckets
}

// Supports reports whether the duration is one of the table's buckets.
func (t AllocationTable) Supports(totalMinutes int) bool {
	_, ok := t[totalMinutes]
	return ok
}

// ComponentDurations is the result of allocating a day's total duration:
// per-component minutes plus the derived include flags for the optional
// wellness components.
type ComponentDurations struct {
	WarmupMinutes     int
	BreathworkMinutes int
	CooldownMinutes   int
	MeditationMinutes int
	StretchingMinutes int
	MaxExercises      int
	IncludeBreathwork bool
	IncludeStretching bool
}

// Allocate snaps totalMinutes to the nearest supported bucket and returns
// that bucket's component budgets. A component is included iff its budget
// is above zero.
func (t AllocationTable) Allocate(totalMinutes int) ComponentDurations {
	alloc := t[t.clamp(totalMinutes)]
	return ComponentDurations{
		WarmupMinutes:     alloc.WarmupMinutes,
		BreathworkMinutes: alloc.BreathworkMinutes,
		CooldownMinutes:   alloc.CooldownMinutes,
		MeditationMinutes: alloc.MeditationMinutes,
		StretchingMinutes: alloc.StretchingMinutes,
		MaxExercises:      alloc.MaxExercises,
		IncludeBreathwork: alloc.BreathworkMinutes > 0,
		IncludeStretching: alloc.StretchingMinutes > 0,
	}
}

// clamp returns the supported bucket closest to totalMinutes, preferring
// the shorter bucket on ties.
func (t AllocationTable) clamp(totalMinutes int) int {
	buckets := t.Buckets()
	best := buckets[0]
	for _, b := range buckets[1:] {
		if abs(totalMinutes-b) < abs(totalMinutes-best) {
			best = b
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
