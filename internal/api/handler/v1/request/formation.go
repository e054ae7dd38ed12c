package request

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

const dateLayout = "2006-01-02"

type FormationRequest struct {
	Title     string  `json:"title"`
	Domain    string  `json:"domain"`
	StartDate string  `json:"start_date" format:"YYYY-MM-DD"`
	EndDate   string  `json:"end_date,omitempty" format:"YYYY-MM-DD"`
	Budget    float64 `json:"budget"`
	Location  string  `json:"location"`
	Schedule  string  `json:"schedule"`
}

func (req *FormationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Domain, validation.Required,
			validation.In("IT", "Finance", "Marketing", "Management")),
		validation.Field(&req.StartDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.EndDate, validation.Date(dateLayout)),
		validation.Field(&req.Budget, validation.Required, validation.Min(0.01)),
		validation.Field(&req.Location, validation.Length(0, 100)),
		validation.Field(&req.Schedule, validation.Length(0, 50)),
	)
}

// ParseDates returns the request's calendar dates; the end date is nil when
// the field is omitted.
func (req *FormationRequest) ParseDates() (time.Time, *time.Time, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid start date: %w", err)
	}

	if req.EndDate == "" {
		return start, nil, nil
	}

	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid end date: %w", err)
	}

	return start, &end, nil
}
