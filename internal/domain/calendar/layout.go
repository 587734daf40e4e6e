package calendar

import (
	"sort"
	"time"

	"vet-scheduler/internal/pkg/interval"
)

type Entry struct {
	Start    time.Time
	Duration time.Duration
}

// Slot is the lane placement of entries[Index].
type Slot struct {
	Index     int
	LaneIndex int
	LaneCount int
}

// Layout places every entry starting inside [windowStart, windowEnd] on a lane.
//
// An entry's lane group is its direct overlap set on the same day, not the
// transitive cluster, so two neighbours of a shared entry may report different
// lane counts. Slots come back in input order.
func Layout(entries []Entry, windowStart, windowEnd time.Time) []Slot {
	kept := make([]int, 0, len(entries))
	for i, e := range entries {
		if e.Start.Before(windowStart) || e.Start.After(windowEnd) {
			continue
		}
		kept = append(kept, i)
	}

	ordered := make([]int, len(kept))
	copy(ordered, kept)
	sort.SliceStable(ordered, func(a, b int) bool {
		return less(entries, ordered[a], ordered[b])
	})

	slots := make([]Slot, 0, len(kept))
	for _, i := range kept {
		lane, count := 0, 0
		for _, j := range ordered {
			if j != i && !sharesLane(entries[i], entries[j]) {
				continue
			}
			if j == i {
				lane = count
			}
			count++
		}
		slots = append(slots, Slot{Index: i, LaneIndex: lane, LaneCount: count})
	}
	return slots
}

func less(entries []Entry, a, b int) bool {
	if !entries[a].Start.Equal(entries[b].Start) {
		return entries[a].Start.Before(entries[b].Start)
	}
	return a < b
}

func sharesLane(a, b Entry) bool {
	return interval.SameCalendarDay(a.Start, b.Start) &&
		interval.Overlaps(a.Start, a.Duration, b.Start, b.Duration)
}
