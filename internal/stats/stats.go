// Package stats is the aggregation engine: pure transformations from a flight
// list to derived statistics and tax-residency figures. Nothing here performs
// I/O or returns an error — callers hand in an already-fetched record list and
// every finite non-negative input produces a well-defined result.
package stats

import (
	"github.com/mhaugen/awaydays/backend/internal/domain"
)

// MaxOutsideDays is the 183-day rule threshold: the maximum number of days
// that can be spent outside the home country in a tax year before residency
// exposure changes.
const MaxOutsideDays = 183

// Compute folds a flight list into per-country day totals and summary figures.
//
// A missing or zero Days value counts as one day so records that predate the
// field still contribute; negative values never reach this package — they are
// rejected at the record creation boundary. Country keys are the To field matched exactly, so two spellings of
// the same country accumulate separately. An empty list yields the zero value.
//
// The fold runs in slice order. Order only matters for the most-visited
// tie-break: a strictly-greater comparison keeps the earliest destination to
// reach the maximum cumulative total.
func Compute(flights []domain.Flight) domain.Statistics {
	var s domain.Statistics
	if len(flights) == 0 {
		return s
	}

	totals := make(map[string]int, len(flights))
	order := make([]string, 0, len(flights))
	for _, f := range flights {
		days := f.Days
		if days < 1 {
			days = 1
		}
		if _, seen := totals[f.To]; !seen {
			order = append(order, f.To)
		}
		totals[f.To] += days
		s.TotalDays += days
		if days > s.LongestStay {
			s.LongestStay = days
		}
	}

	s.TotalFlights = len(flights)
	s.AvgStayDuration = roundDiv(s.TotalDays, s.TotalFlights)

	s.Countries = make([]domain.CountryDays, 0, len(order))
	best := -1
	for _, country := range order {
		s.Countries = append(s.Countries, domain.CountryDays{Country: country, Days: totals[country]})
		if totals[country] > best {
			best = totals[country]
			s.MostVisitedCountry = country
		}
	}

	return s
}

// ComputeTaxResidency measures totalDays against the 183-day threshold.
// Exactly 183 days is still within budget; only day 184 crosses the line.
// PercentUsed is capped at 100 so progress displays never overflow.
func ComputeTaxResidency(totalDays int) domain.ResidencyReport {
	r := domain.ResidencyReport{
		MaxOutsideDays: MaxOutsideDays,
		TotalDays:      totalDays,
		Status:         domain.ResidencyWithinBudget,
	}
	if remaining := MaxOutsideDays - totalDays; remaining > 0 {
		r.DaysRemaining = remaining
	}
	r.PercentUsed = roundDiv(100*totalDays, MaxOutsideDays)
	if r.PercentUsed > 100 {
		r.PercentUsed = 100
	}
	if totalDays > MaxOutsideDays {
		r.Status = domain.ResidencyExceeded
	}
	return r
}

// ComputeHomePresence applies the alternate calendar-year rule as a distinct
// named operation: given the days spent abroad in year, it reports how many
// days of home-country presence that year requires (calendar length minus the
// 183-day allowance) and whether the remaining calendar can still satisfy it.
func ComputeHomePresence(totalDays, year int) domain.HomePresenceReport {
	calendarDays := 365
	if isLeap(year) {
		calendarDays = 366
	}

	rep := domain.HomePresenceReport{
		Year:             year,
		CalendarDays:     calendarDays,
		RequiredHomeDays: calendarDays - MaxOutsideDays,
		DaysAbroad:       totalDays,
	}
	if possible := calendarDays - totalDays; possible > 0 {
		rep.HomeDaysPossible = possible
	}
	rep.Satisfiable = rep.HomeDaysPossible >= rep.RequiredHomeDays
	return rep
}

// roundDiv divides two non-negative ints, rounding half away from zero.
// A zero denominator yields 0 rather than panicking (empty record lists).
func roundDiv(num, den int) int {
	if den == 0 {
		return 0
	}
	return (num + den/2) / den
}

// isLeap reports whether year is a Gregorian leap year.
func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
