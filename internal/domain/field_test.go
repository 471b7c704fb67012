package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_SlotCost(t *testing.T) {
	paid := Field{CostPerHour: 100, Availability: AvailabilityPaid}
	assert.Equal(t, 150.0, paid.SlotCost())

	cheap := Field{CostPerHour: 40, Availability: AvailabilityPaid}
	assert.Equal(t, 60.0, cheap.SlotCost())

	odd := Field{CostPerHour: 33.33, Availability: AvailabilityPaid}
	assert.Equal(t, 50.0, odd.SlotCost())

	free := Field{CostPerHour: 100, Availability: AvailabilityFree}
	assert.Equal(t, 0.0, free.SlotCost())
}

func TestDefaultTimeSlots(t *testing.T) {
	slots := DefaultTimeSlots(5)

	assert.Len(t, slots, 11)
	assert.Equal(t, "06:00", slots[0].StartTime)
	assert.Equal(t, "07:30", slots[0].EndTime)
	assert.Equal(t, "21:00", slots[10].StartTime)
	assert.Equal(t, "22:30", slots[10].EndTime)
	for _, s := range slots {
		assert.Equal(t, int64(5), s.FieldID)
		assert.True(t, s.IsAvailable)
	}
}

func TestParseFieldType(t *testing.T) {
	for _, valid := range []string{"Cricket", "Football", "Tennis", "Basketball"} {
		_, ok := ParseFieldType(valid)
		assert.True(t, ok, valid)
	}
	for _, invalid := range []string{"football", "Hockey", ""} {
		_, ok := ParseFieldType(invalid)
		assert.False(t, ok, invalid)
	}
}
