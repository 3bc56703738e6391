package instructor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identical", "09:00", "09:30", "09:00", "09:30", true},
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"contained", "09:00", "11:00", "09:30", "10:00", true},
		{"adjacent", "09:00", "09:30", "09:30", "10:00", false},
		{"disjoint", "09:00", "09:30", "11:00", "11:30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidDate("2025-03-10"))
	assert.False(t, ValidDate("2025-3-10"))
	assert.False(t, ValidDate("2025-13-40"))

	assert.True(t, ValidTimeOfDay("09:00"))
	assert.True(t, ValidTimeOfDay("23:59"))
	assert.False(t, ValidTimeOfDay("9:00"))
	assert.False(t, ValidTimeOfDay("24:00"))
	assert.False(t, ValidTimeOfDay("19:75"))
	assert.False(t, ValidTimeOfDay("00:60"))

	assert.True(t, ValidClassType("driving_lesson"))
	assert.True(t, ValidClassType("ticket_class"))
	assert.False(t, ValidClassType("karting"))

	assert.True(t, ValidPaymentMethod("online"))
	assert.True(t, ValidPaymentMethod("physical"))
	assert.False(t, ValidPaymentMethod("crypto"))
}

func TestSlotKey(t *testing.T) {
	slot := Slot{SlotDate: "2025-03-10", StartTime: "09:00", EndTime: "09:30"}
	assert.Equal(t, "2025-03-10-09:00-09:30", slot.Key())
	assert.Equal(t, slot.Key(), SlotKey("2025-03-10", "09:00", "09:30"))
}

func TestOccupiedBy(t *testing.T) {
	student := 5
	slot := Slot{Status: StatusPending, StudentID: &student}

	assert.True(t, slot.OccupiedBy(5))
	assert.False(t, slot.OccupiedBy(6))

	slot.Status = StatusCancelled
	assert.False(t, slot.OccupiedBy(5))

	slot.Status = StatusBooked
	assert.True(t, slot.OccupiedBy(5))
}
