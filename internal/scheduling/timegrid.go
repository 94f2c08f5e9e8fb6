package scheduling

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. Touching
// boundaries do not overlap, so back-to-back appointments are legal.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// OverlapsInterval is Overlaps against an Interval value.
func OverlapsInterval(start, end time.Time, iv Interval) bool {
	return Overlaps(start, end, iv.Start, iv.End)
}

// RoundUpToStep truncates t to minute precision and rounds it up to the
// next multiple of stepMinutes. A t already on the grid is returned
// unchanged (minus seconds).
func RoundUpToStep(t time.Time, stepMinutes int) time.Time {
	t = t.Truncate(time.Minute)
	remainder := t.Minute() % stepMinutes
	if remainder == 0 {
		return t
	}
	return t.Add(time.Duration(stepMinutes-remainder) * time.Minute)
}

// IsAlignedToStep reports whether t falls exactly on the step grid:
// minute divisible by stepMinutes and no sub-minute component.
func IsAlignedToStep(t time.Time, stepMinutes int) bool {
	return t.Minute()%stepMinutes == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// SameDay reports whether both instants fall on the same calendar day
// in their respective locations. Callers normalize to the business
// timezone first.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// GenerateSlots enumerates candidate start times openAt + k*step for
// k = 0, 1, 2, ... while start+duration still fits before closeAt.
// Pure function of its inputs; output is chronological. stepMinutes must
// be positive, callers enforce operational bounds.
func GenerateSlots(openAt, closeAt time.Time, duration time.Duration, stepMinutes int) []time.Time {
	if stepMinutes <= 0 || duration <= 0 {
		return nil
	}

	step := time.Duration(stepMinutes) * time.Minute
	slots := make([]time.Time, 0)

	for cur := openAt; !cur.Add(duration).After(closeAt); cur = cur.Add(step) {
		slots = append(slots, cur)
	}
	return slots
}
