package service

import (
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/gosimple/slug"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "all"

// EventFilter carries the discovery filters of one query. Now anchors every
// relative calculation so a single request sees one consistent "today".
type EventFilter struct {
	Category    string
	DayTokens   []string
	CustomStart *time.Time
	CustomEnd   *time.Time
	Now         time.Time
}

// Expression builds the WHERE predicate for the event catalog. Events whose
// end_date is already behind the start of today are excluded regardless of
// the other filters. The date branches are mutually exclusive: day tokens
// take priority over custom bounds.
func (f EventFilter) Expression() goqu.Expression {
	exprs := []goqu.Expression{
		goqu.C("end_date").Gte(startOfDay(f.Now)),
	}

	if f.Category != "" && f.Category != CategoryAll {
		exprs = append(exprs, goqu.C("category").Eq(slug.Make(f.Category)))
	}

	switch {
	case len(f.DayTokens) > 1:
		overlaps := make([]goqu.Expression, 0, len(f.DayTokens))
		for _, token := range f.DayTokens {
			if r := resolveDayToken(token, f.Now); r != nil {
				overlaps = append(overlaps, overlapExpr(*r))
			}
		}
		// Unknown tokens are dropped; if nothing resolved, only the
		// not-ended clause remains.
		if len(overlaps) > 0 {
			exprs = append(exprs, goqu.Or(overlaps...))
		}

	case len(f.DayTokens) == 1:
		if r := resolveDayToken(f.DayTokens[0], f.Now); r != nil {
			exprs = append(exprs, overlapExpr(*r))
		}

	case f.CustomStart != nil && f.CustomEnd != nil:
		exprs = append(exprs, overlapExpr(DateRange{
			Start: *f.CustomStart,
			End:   endOfDay(*f.CustomEnd),
		}))

	case f.CustomStart != nil:
		exprs = append(exprs, goqu.C("start_date").Gte(*f.CustomStart))

	case f.CustomEnd != nil:
		exprs = append(exprs,
			goqu.C("end_date").Gte(f.Now),
			goqu.C("end_date").Lte(endOfDay(*f.CustomEnd)),
		)
	}

	return goqu.And(exprs...)
}

// overlapExpr is the interval-overlap test: an event touches a window if it
// starts before the window ends and ends after the window starts. Testing
// only start_date would silently drop multi-day events already in progress.
func overlapExpr(r DateRange) goqu.Expression {
	return goqu.And(
		goqu.C("start_date").Lte(r.End),
		goqu.C("end_date").Gte(r.Start),
	)
}
