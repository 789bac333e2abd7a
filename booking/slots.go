package booking

import (
	"fmt"
	"strings"
	"time"
)

const slotDuration = 30 * time.Minute

var defaultHours = []int{9, 10, 11, 12, 14, 15}

func dayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	day = day.In(loc)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// DefaultSlots are offered when a service publishes no slots for the day.
func DefaultSlots(serviceID string, day time.Time, loc *time.Location) []Slot {
	dayStart, _ := dayBounds(day, loc)

	slots := make([]Slot, 0, len(defaultHours))
	for _, hour := range defaultHours {
		start := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), hour, 0, 0, 0, loc)
		slot := Slot{
			ID:        fmt.Sprintf("default-%02d00", hour),
			ServiceID: serviceID,
			Start:     start,
			End:       start.Add(slotDuration),
		}
		slot.Time = slot.Label(loc)
		slots = append(slots, slot)
	}

	return slots
}

// FindSlot returns the first slot whose HH:MM label equals hour.
func FindSlot(slots []Slot, hour string, loc *time.Location) (Slot, bool) {
	hour = strings.TrimSpace(hour)
	for _, slot := range slots {
		if slot.Label(loc) == hour {
			return slot, true
		}
	}
	return Slot{}, false
}
