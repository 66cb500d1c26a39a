package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestResolveDayTokenToday(t *testing.T) {
	now := date(2025, time.March, 12, 15, 30, 0) // a Wednesday
	r := resolveDayToken(DayToday, now)
	require.NotNil(t, r)

	assert.Equal(t, date(2025, time.March, 12, 0, 0, 0), r.Start)
	assert.Equal(t, date(2025, time.March, 12, 23, 59, 59), r.End)
	assert.False(t, now.Before(r.Start))
	assert.False(t, now.After(r.End))
}

func TestResolveDayTokenTomorrow(t *testing.T) {
	now := date(2025, time.March, 12, 9, 0, 0)
	today := resolveDayToken(DayToday, now)
	tomorrow := resolveDayToken(DayTomorrow, now)
	require.NotNil(t, tomorrow)

	assert.Equal(t, today.Start.AddDate(0, 0, 1), tomorrow.Start)
	assert.Equal(t, today.End.AddDate(0, 0, 1), tomorrow.End)
}

func TestResolveDayTokenThisWeekend(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "midweek points at the coming saturday",
			now:       date(2025, time.March, 12, 12, 0, 0), // Wednesday
			wantStart: date(2025, time.March, 15, 0, 0, 0),
			wantEnd:   date(2025, time.March, 16, 23, 59, 59),
		},
		{
			name:      "saturday starts today",
			now:       date(2025, time.March, 15, 12, 0, 0),
			wantStart: date(2025, time.March, 15, 0, 0, 0),
			wantEnd:   date(2025, time.March, 16, 23, 59, 59),
		},
		{
			name:      "sunday rolls over to the next weekend",
			now:       date(2025, time.March, 16, 12, 0, 0),
			wantStart: date(2025, time.March, 22, 0, 0, 0),
			wantEnd:   date(2025, time.March, 23, 23, 59, 59),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resolveDayToken(DayThisWeekend, tt.now)
			require.NotNil(t, r)
			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, tt.wantEnd, r.End)
		})
	}
}

func TestResolveDayTokenThisWeek(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "wednesday runs to sunday night",
			now:       date(2025, time.March, 12, 8, 0, 0),
			wantStart: date(2025, time.March, 12, 0, 0, 0),
			wantEnd:   date(2025, time.March, 16, 23, 59, 59),
		},
		{
			name:      "sunday collapses to a single day",
			now:       date(2025, time.March, 16, 8, 0, 0),
			wantStart: date(2025, time.March, 16, 0, 0, 0),
			wantEnd:   date(2025, time.March, 16, 23, 59, 59),
		},
		{
			name:      "monday covers the full remaining week",
			now:       date(2025, time.March, 10, 8, 0, 0),
			wantStart: date(2025, time.March, 10, 0, 0, 0),
			wantEnd:   date(2025, time.March, 16, 23, 59, 59),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resolveDayToken(DayThisWeek, tt.now)
			require.NotNil(t, r)
			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, tt.wantEnd, r.End)
		})
	}
}

func TestResolveDayTokenNextWeek(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
	}{
		{
			name:      "midweek jumps to the coming monday",
			now:       date(2025, time.March, 12, 8, 0, 0), // Wednesday
			wantStart: date(2025, time.March, 17, 0, 0, 0),
		},
		{
			name:      "monday skips a full week ahead",
			now:       date(2025, time.March, 10, 8, 0, 0),
			wantStart: date(2025, time.March, 17, 0, 0, 0),
		},
		{
			name:      "sunday starts the very next day",
			now:       date(2025, time.March, 16, 8, 0, 0),
			wantStart: date(2025, time.March, 17, 0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resolveDayToken(DayNextWeek, tt.now)
			require.NotNil(t, r)
			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, time.Monday, r.Start.Weekday())
			// Monday through Sunday night, exactly seven days.
			assert.Equal(t, endOfDay(r.Start.AddDate(0, 0, 6)), r.End)
			assert.True(t, r.Start.After(tt.now))
		})
	}
}

func TestResolveDayTokenUnknown(t *testing.T) {
	now := date(2025, time.March, 12, 8, 0, 0)
	assert.Nil(t, resolveDayToken("someday", now))
	assert.Nil(t, resolveDayToken("", now))
	assert.Nil(t, resolveDayToken("TODAY", now))
}
