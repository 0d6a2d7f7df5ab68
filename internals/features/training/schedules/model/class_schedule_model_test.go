// file: internals/features/training/schedules/model/class_schedule_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 30, m)

	h, m, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23, h)
	assert.Equal(t, 59, m)

	for _, bad := range []string{"24:00", "9:30:00", "09.30", "", "pagi"} {
		_, _, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func weeklyPattern() *ClassScheduleModel {
	return &ClassScheduleModel{
		ClassScheduleDayOfWeek: 1, // Senin
		ClassScheduleStartTime: "10:00",
		ClassScheduleEndTime:   "12:00",
		ClassScheduleStartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ClassScheduleEndDate:   time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestOccursOn(t *testing.T) {
	p := weeklyPattern()

	assert.True(t, p.OccursOn(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)))   // Senin dalam jendela
	assert.False(t, p.OccursOn(time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)))  // Selasa
	assert.False(t, p.OccursOn(time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC))) // Senin di luar jendela

	// batas jendela inklusif dua sisi
	p.ClassScheduleStartDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	p.ClassScheduleEndDate = time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC)
	assert.True(t, p.OccursOn(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.OccursOn(time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC)))

	// Minggu dipetakan ke ISO 7
	p.ClassScheduleDayOfWeek = 7
	assert.True(t, p.OccursOn(time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)))

	// komponen jam pada tanggal input tidak berpengaruh
	p.ClassScheduleDayOfWeek = 1
	assert.True(t, p.OccursOn(time.Date(2026, 9, 7, 23, 45, 0, 0, time.UTC)))
}

func TestWindowOn(t *testing.T) {
	p := weeklyPattern()
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	start, end, err := p.WindowOn(date, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC), end)

	// zona lain menggeser instan, bukan jam dinding
	jakarta := time.FixedZone("WIB", 7*3600)
	start, _, err = p.WindowOn(date, jakarta)
	require.NoError(t, err)
	assert.Equal(t, 10, start.Hour())
	assert.Equal(t, time.Date(2026, 9, 7, 3, 0, 0, 0, time.UTC), start.UTC())

	p.ClassScheduleStartTime = "ngawur"
	_, _, err = p.WindowOn(date, time.UTC)
	assert.Error(t, err)
}

func TestDateOnly(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	a := DateOnly(time.Date(2026, 9, 7, 23, 59, 0, 0, wib))
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), a)
}
