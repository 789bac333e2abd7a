package booking_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	bk "github.com/jungle-app/jungle-booking/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSlots(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	require.Nil(t, err)

	// 23:30 UTC on the 10th is already the 11th in Rome.
	slots := bk.DefaultSlots("svc1", time.Date(2026, time.March, 10, 23, 30, 0, 0, time.UTC), rome)

	labels := []string{}
	for _, slot := range slots {
		labels = append(labels, slot.Time)
		assert.Equal(t, 11, slot.Start.In(rome).Day())
	}

	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00"}, labels)
}

func TestFindSlot(t *testing.T) {
	slots := bk.DefaultSlots("svc1", day, time.UTC)

	slot, ok := bk.FindSlot(slots, " 11:00 ", time.UTC)
	require.True(t, ok)
	assert.Equal(t, day.Add(11*time.Hour), slot.Start)

	_, ok = bk.FindSlot(slots, "13:00", time.UTC)
	assert.False(t, ok)
}

func TestParsePeople(t *testing.T) {
	tests := map[string]int{
		"2":   2,
		"4+":  4,
		" 3 ": 3,
		"":    1,
		"0":   1,
		"abc": 1,
		"-2":  1,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, bk.ParsePeople(input))
		})
	}
}

func TestNewAccessToken(t *testing.T) {
	now := time.UnixMilli(1773100800000)

	token := bk.NewAccessToken(now)

	assert.Regexp(t, `^BK-1773100800000-[0-9a-z]{6}$`, token)
	assert.NotEqual(t, token, bk.NewAccessToken(now))
}
