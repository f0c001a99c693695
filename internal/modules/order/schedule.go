// README: Pickup scheduling: available dates, time slots, and express eligibility.
package order

import "time"

const (
	// Offered pickup dates per request.
	scheduleDateCount = 4
	// The operational shift closes at 16:00 for next-day starts; the same
	// hour ends express promises and hides the evening slot for today.
	nextDayCutoffHour = 16
	// Today's morning slot disappears once the window is about to close.
	morningCutoffHour = 11
)

// AvailableDates returns the pickup dates offered at the given wall-clock
// time. After the 16:00 cutoff the first offered date is tomorrow.
// Time-sensitive: recompute on every request, never cache.
func AvailableDates(now time.Time) []time.Time {
	first := midnight(now)
	if now.Hour() >= nextDayCutoffHour {
		first = first.AddDate(0, 0, 1)
	}
	dates := make([]time.Time, scheduleDateCount)
	for i := range dates {
		dates[i] = first.AddDate(0, 0, i)
	}
	return dates
}

// AvailableSlots returns the selectable time slots for one offered date.
// Same-day slots are hidden as their windows approach; future dates always
// show both. Past dates offer nothing.
func AvailableSlots(now time.Time, date time.Time) []Slot {
	day := midnight(date)
	today := midnight(now)
	if day.Before(today) {
		return nil
	}
	if day.After(today) {
		return []Slot{SlotMorning, SlotEvening}
	}

	var slots []Slot
	if now.Hour() < morningCutoffHour {
		slots = append(slots, SlotMorning)
	}
	if now.Hour() < nextDayCutoffHour {
		slots = append(slots, SlotEvening)
	}
	return slots
}

// ExpressEligible reports whether the 3-hour express pickup promise can still
// be made today.
func ExpressEligible(now time.Time) bool {
	return now.Hour() < nextDayCutoffHour
}

// slotOffered reports whether a slot would currently be shown for the date.
// Used as the placement guard so a consumer cannot submit a slot the
// calculator no longer offers.
func slotOffered(now time.Time, date time.Time, slot Slot) bool {
	for _, s := range AvailableSlots(now, date) {
		if s == slot {
			return true
		}
	}
	return false
}

func dateOffered(now time.Time, date time.Time) bool {
	day := midnight(date)
	for _, d := range AvailableDates(now) {
		if d.Equal(day) {
			return true
		}
	}
	return false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
