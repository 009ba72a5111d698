package domain

// CountryDays is one destination country with its cumulative day total.
type CountryDays struct {
	Country string `json:"country"`
	Days    int    `json:"days"`
}

// Statistics is the derived view over one owner's flight list.
// It is recomputed on every read and never persisted.
type Statistics struct {
	// Countries holds per-destination day totals in order of first appearance
	// in the source record list. The sum of all entries equals TotalDays.
	Countries []CountryDays `json:"countries"`

	TotalFlights int `json:"total_flights"`
	TotalDays    int `json:"total_days"`

	// AvgStayDuration is TotalDays / TotalFlights rounded half away from
	// zero, or 0 when there are no flights.
	AvgStayDuration int `json:"avg_stay_duration"`

	// LongestStay is the largest single-record day count.
	LongestStay int `json:"longest_stay"`

	// MostVisitedCountry is the destination with the highest cumulative total.
	// Ties keep the earliest destination to reach the maximum.
	MostVisitedCountry string `json:"most_visited_country"`
}

// Residency status values reported by ResidencyReport.
const (
	ResidencyWithinBudget = "WITHIN_BUDGET"
	ResidencyExceeded     = "EXCEEDED"
)

// ResidencyReport measures total days abroad against the 183-day rule.
// Spending exactly 183 days outside is still within budget; only the 184th
// day crosses the threshold.
type ResidencyReport struct {
	MaxOutsideDays int    `json:"max_outside_days"`
	TotalDays      int    `json:"total_days"`
	DaysRemaining  int    `json:"days_remaining"`
	PercentUsed    int    `json:"percent_used"` // capped at 100
	Status         string `json:"status"`
}

// HomePresenceReport is the alternate calendar-year rule, kept as a distinct
// named result rather than merged into ResidencyReport: given the days spent
// abroad in a calendar year, how many days of home-country presence the year
// still allows and whether the remaining calendar can satisfy the requirement.
type HomePresenceReport struct {
	Year             int  `json:"year"`
	CalendarDays     int  `json:"calendar_days"` // 365, or 366 in a leap year
	RequiredHomeDays int  `json:"required_home_days"`
	DaysAbroad       int  `json:"days_abroad"`
	HomeDaysPossible int  `json:"home_days_possible"`
	Satisfiable      bool `json:"satisfiable"`
}
