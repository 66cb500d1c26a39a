package service

import (
	"strings"
	"testing"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderFilter(t *testing.T, f EventFilter) (string, []interface{}) {
	t.Helper()
	sql, args, err := goqu.Dialect("postgres").
		From("events").
		Where(f.Expression()).
		Prepared(true).
		ToSQL()
	require.NoError(t, err)
	return sql, args
}

func TestFilterAlwaysExcludesEndedEvents(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	sql, args := renderFilter(t, EventFilter{Now: now})

	assert.Contains(t, sql, `"end_date" >=`)
	assert.Contains(t, args, startOfDay(now))
}

func TestFilterCategoryIsSlugged(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	sql, args := renderFilter(t, EventFilter{Category: "Live Concert", Now: now})

	assert.Contains(t, sql, `"category" =`)
	assert.Contains(t, args, "live-concert")
}

func TestFilterCategoryAllIsNoFilter(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)

	sql, _ := renderFilter(t, EventFilter{Category: CategoryAll, Now: now})
	assert.NotContains(t, sql, `"category"`)

	sql, _ = renderFilter(t, EventFilter{Category: "", Now: now})
	assert.NotContains(t, sql, `"category"`)
}

func TestFilterSingleDayTokenUsesOverlap(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	sql, args := renderFilter(t, EventFilter{DayTokens: []string{DayToday}, Now: now})

	assert.Contains(t, sql, `"start_date" <=`)
	assert.Contains(t, args, endOfDay(now))
	assert.Contains(t, args, startOfDay(now))
}

func TestFilterMultipleDayTokensAreORed(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	sql, args := renderFilter(t, EventFilter{
		DayTokens: []string{DayToday, DayTomorrow},
		Now:       now,
	})

	assert.Contains(t, sql, " OR ")
	// Two overlap windows plus the not-ended guard.
	assert.Len(t, args, 5)
	assert.Contains(t, args, startOfDay(now).AddDate(0, 0, 1))
}

func TestFilterUnknownTokensAreDropped(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)

	sql, args := renderFilter(t, EventFilter{
		DayTokens: []string{DayToday, "someday"},
		Now:       now,
	})
	assert.NotContains(t, sql, " OR ")
	assert.Len(t, args, 3)

	// All tokens unknown leaves only the not-ended guard.
	_, args = renderFilter(t, EventFilter{
		DayTokens: []string{"someday", "whenever"},
		Now:       now,
	})
	assert.Len(t, args, 1)
}

func TestFilterDayTokensWinOverCustomBounds(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	start := date(2025, time.June, 1, 0, 0, 0)
	end := date(2025, time.June, 30, 0, 0, 0)

	_, args := renderFilter(t, EventFilter{
		DayTokens:   []string{DayToday},
		CustomStart: &start,
		CustomEnd:   &end,
		Now:         now,
	})

	assert.NotContains(t, args, start)
	assert.NotContains(t, args, endOfDay(end))
}

func TestFilterCustomRange(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	start := date(2025, time.June, 1, 0, 0, 0)
	end := date(2025, time.June, 30, 0, 0, 0)

	sql, args := renderFilter(t, EventFilter{
		CustomStart: &start,
		CustomEnd:   &end,
		Now:         now,
	})

	assert.Contains(t, sql, `"start_date" <=`)
	assert.Contains(t, args, startOfDay(now))
	assert.Contains(t, args, start)
	// The upper bound is pushed to the end of that day so the whole day counts.
	assert.Contains(t, args, endOfDay(end))
}

func TestFilterCustomStartOnly(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	start := date(2025, time.June, 1, 0, 0, 0)

	sql, args := renderFilter(t, EventFilter{CustomStart: &start, Now: now})

	assert.Contains(t, sql, `"start_date" >=`)
	assert.NotContains(t, sql, `"start_date" <=`)
	assert.Contains(t, args, start)
}

func TestFilterCustomEndOnly(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	end := date(2025, time.June, 30, 0, 0, 0)

	sql, args := renderFilter(t, EventFilter{CustomEnd: &end, Now: now})

	assert.Equal(t, 2, strings.Count(sql, `"end_date" >=`))
	assert.Contains(t, sql, `"end_date" <=`)
	assert.Contains(t, args, now)
	assert.Contains(t, args, endOfDay(end))
}

func TestFilterExpressionIsStable(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	f := EventFilter{
		Category:  "Live Concert",
		DayTokens: []string{DayToday, DayThisWeekend},
		Now:       now,
	}

	sql1, args1 := renderFilter(t, f)
	sql2, args2 := renderFilter(t, f)
	assert.Equal(t, sql1, sql2)
	assert.Equal(t, args1, args2)
}
