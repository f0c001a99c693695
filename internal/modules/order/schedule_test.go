// README: Scheduling calculator tests (cutoffs, slot hiding, express).
package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 10, hour, min, 0, 0, time.Local)
}

func TestAvailableDatesBeforeCutoff(t *testing.T) {
	now := at(10, 0)
	dates := AvailableDates(now)
	require.Len(t, dates, 4)
	assert.Equal(t, midnight(now), dates[0])
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i])
	}
}

func TestAvailableDatesAfterCutoff(t *testing.T) {
	now := at(16, 30)
	dates := AvailableDates(now)
	require.Len(t, dates, 4)
	assert.Equal(t, midnight(now).AddDate(0, 0, 1), dates[0])
}

func TestAvailableSlotsTodayMorningHidden(t *testing.T) {
	now := at(11, 30)
	slots := AvailableSlots(now, now)
	assert.NotContains(t, slots, SlotMorning)
	assert.Contains(t, slots, SlotEvening)
}

func TestAvailableSlotsTodayAllOpen(t *testing.T) {
	now := at(9, 0)
	assert.Equal(t, []Slot{SlotMorning, SlotEvening}, AvailableSlots(now, now))
}

func TestAvailableSlotsTodayAllClosed(t *testing.T) {
	now := at(16, 5)
	assert.Empty(t, AvailableSlots(now, now))
}

func TestAvailableSlotsFutureDateUnconditional(t *testing.T) {
	now := at(17, 0)
	tomorrow := now.AddDate(0, 0, 1)
	assert.Equal(t, []Slot{SlotMorning, SlotEvening}, AvailableSlots(now, tomorrow))
}

func TestAvailableSlotsPastDateEmpty(t *testing.T) {
	now := at(9, 0)
	yesterday := now.AddDate(0, 0, -1)
	assert.Empty(t, AvailableSlots(now, yesterday))
}

func TestExpressEligibility(t *testing.T) {
	assert.True(t, ExpressEligible(at(15, 59)))
	assert.False(t, ExpressEligible(at(16, 0)))
	assert.False(t, ExpressEligible(at(20, 0)))
	assert.True(t, ExpressEligible(at(0, 0)))
}

func TestSlotOfferedGuard(t *testing.T) {
	now := at(11, 30)
	assert.False(t, slotOffered(now, now, SlotMorning))
	assert.True(t, slotOffered(now, now, SlotEvening))
	assert.False(t, slotOffered(now, now, Slot("12:00-13:00")))
}
