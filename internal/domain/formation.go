package domain

import "time"

type FormationDomain string

const (
	DomainIT         FormationDomain = "IT"
	DomainFinance    FormationDomain = "Finance"
	DomainMarketing  FormationDomain = "Marketing"
	DomainManagement FormationDomain = "Management"
)

type Formation struct {
	ID        uint            `json:"id"`
	Title     string          `json:"title"`
	Domain    FormationDomain `json:"domain"`
	StartDate time.Time       `json:"start_date"`
	EndDate   *time.Time      `json:"end_date,omitempty"`
	Budget    float64         `json:"budget"`
	Location  string          `json:"location"`
	Schedule  string          `json:"schedule"` // e.g. "Full-time", "Part-time"
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SetStartDate assigns the start date and re-normalizes the end date.
func (f *Formation) SetStartDate(start time.Time) {
	f.StartDate = start
	f.normalizeEndDate()
}

// SetEndDate assigns the end date and re-normalizes it against the start date.
func (f *Formation) SetEndDate(end *time.Time) {
	f.EndDate = end
	f.normalizeEndDate()
}

// normalizeEndDate enforces a minimum one-day duration: an end date that is
// not strictly after the start date is forced to startDate + 1 day.
func (f *Formation) normalizeEndDate() {
	if f.StartDate.IsZero() || f.EndDate == nil {
		return
	}

	if !f.EndDate.After(f.StartDate) {
		forced := f.StartDate.AddDate(0, 0, 1)
		f.EndDate = &forced
	}
}

// DurationDays is derived from the date range on every read, never persisted.
func (f *Formation) DurationDays() int {
	if !f.StartDate.IsZero() && f.EndDate != nil {
		return int(f.EndDate.Sub(f.StartDate).Hours() / 24)
	}

	return 0
}

// IsCompleted reports whether the formation ended strictly before today.
// A formation without an end date is never completed.
func (f *Formation) IsCompleted(today time.Time) bool {
	return f.EndDate != nil && f.EndDate.Before(today)
}

// IsCurrent reports whether the formation started strictly before today and
// has not ended. A formation starting today is neither current nor upcoming.
func (f *Formation) IsCurrent(today time.Time) bool {
	return f.StartDate.Before(today) && (f.EndDate == nil || f.EndDate.After(today))
}

// IsUpcoming reports whether the formation starts strictly after today.
func (f *Formation) IsUpcoming(today time.Time) bool {
	return f.StartDate.After(today)
}

// StartsIn reports whether the formation starts in the given month of the given year.
func (f *Formation) StartsIn(month time.Month, year int) bool {
	return f.StartDate.Month() == month && f.StartDate.Year() == year
}

type FormationStats struct {
	Completed int `json:"completed"`
	Current   int `json:"current"`
	Upcoming  int `json:"upcoming"`
}

type MonthlyStats struct {
	FormationCount    int `json:"formation_count"`
	TotalParticipants int `json:"total_participants"`
}
