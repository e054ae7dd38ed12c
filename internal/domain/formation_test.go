package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)

	return &t
}

func TestFormation_SetEndDate(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     *time.Time
		wantEnd *time.Time
	}{
		{
			name:    "end after start is kept",
			start:   date(2025, time.June, 10),
			end:     datePtr(2025, time.June, 20),
			wantEnd: datePtr(2025, time.June, 20),
		},
		{
			name:    "end before start is forced to start plus one day",
			start:   date(2025, time.June, 10),
			end:     datePtr(2025, time.June, 5),
			wantEnd: datePtr(2025, time.June, 11),
		},
		{
			name:    "end equal to start is forced to start plus one day",
			start:   date(2025, time.June, 10),
			end:     datePtr(2025, time.June, 10),
			wantEnd: datePtr(2025, time.June, 11),
		},
		{
			name:    "nil end stays nil",
			start:   date(2025, time.June, 10),
			end:     nil,
			wantEnd: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Formation{}
			f.SetStartDate(tt.start)
			f.SetEndDate(tt.end)

			assert.Equal(t, tt.wantEnd, f.EndDate)
		})
	}
}

func TestFormation_SetStartDate_RenormalizesExistingEnd(t *testing.T) {
	f := Formation{}
	f.SetStartDate(date(2025, time.June, 1))
	f.SetEndDate(datePtr(2025, time.June, 5))

	// Moving the start past the end must pull the end forward again.
	f.SetStartDate(date(2025, time.June, 10))

	assert.Equal(t, datePtr(2025, time.June, 11), f.EndDate)
}

func TestFormation_DurationDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   *time.Time
		want  int
	}{
		{
			name:  "two week formation",
			start: date(2025, time.May, 1),
			end:   datePtr(2025, time.May, 15),
			want:  14,
		},
		{
			name:  "minimum one day",
			start: date(2025, time.May, 1),
			end:   datePtr(2025, time.May, 2),
			want:  1,
		},
		{
			name:  "no end date",
			start: date(2025, time.May, 1),
			end:   nil,
			want:  0,
		},
		{
			name: "no start date",
			end:  datePtr(2025, time.May, 15),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Formation{StartDate: tt.start, EndDate: tt.end}

			assert.Equal(t, tt.want, f.DurationDays())
		})
	}
}

func TestFormation_Classification(t *testing.T) {
	today := date(2025, time.February, 1)

	tests := []struct {
		name          string
		start         time.Time
		end           *time.Time
		wantCompleted bool
		wantCurrent   bool
		wantUpcoming  bool
	}{
		{
			name:          "ended before today",
			start:         date(2025, time.January, 1),
			end:           datePtr(2025, time.January, 15),
			wantCompleted: true,
		},
		{
			name:        "spanning today",
			start:       date(2025, time.January, 20),
			end:         datePtr(2025, time.February, 10),
			wantCurrent: true,
		},
		{
			name:         "starting after today",
			start:        date(2025, time.March, 1),
			end:          datePtr(2025, time.March, 15),
			wantUpcoming: true,
		},
		{
			name:        "started with no end date",
			start:       date(2025, time.January, 20),
			wantCurrent: true,
		},
		{
			name:  "starting today matches no bucket",
			start: date(2025, time.February, 1),
			end:   datePtr(2025, time.February, 10),
		},
		{
			name:  "ending today matches no bucket when started today",
			start: date(2025, time.February, 1),
			end:   datePtr(2025, time.February, 1),
		},
		{
			name:        "ending today but started earlier is not completed",
			start:       date(2025, time.January, 20),
			end:         datePtr(2025, time.February, 1),
			wantCurrent: false, // end == today fails the strict After check too
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Formation{StartDate: tt.start, EndDate: tt.end}

			assert.Equal(t, tt.wantCompleted, f.IsCompleted(today), "IsCompleted")
			assert.Equal(t, tt.wantCurrent, f.IsCurrent(today), "IsCurrent")
			assert.Equal(t, tt.wantUpcoming, f.IsUpcoming(today), "IsUpcoming")

			// At most one bucket may match for any date range.
			matches := 0
			for _, m := range []bool{f.IsCompleted(today), f.IsCurrent(today), f.IsUpcoming(today)} {
				if m {
					matches++
				}
			}
			assert.LessOrEqual(t, matches, 1)
		})
	}
}

func TestFormation_StartsIn(t *testing.T) {
	f := Formation{StartDate: date(2025, time.May, 20)}

	assert.True(t, f.StartsIn(time.May, 2025))
	assert.False(t, f.StartsIn(time.June, 2025))
	assert.False(t, f.StartsIn(time.May, 2024))
}
