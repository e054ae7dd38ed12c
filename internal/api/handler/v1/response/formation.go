package response

import (
	"time"

	"github.com/gestionformation/formation-api/internal/domain"
)

const dateLayout = "2006-01-02"

// FormationResponse is the external projection of a formation, with the
// derived duration included.
type FormationResponse struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	Domain       string  `json:"domain"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date,omitempty"`
	Budget       float64 `json:"budget"`
	Location     string  `json:"location"`
	Schedule     string  `json:"schedule"`
	DurationDays int     `json:"duration_days"`
}

func NewFormationResponse(f domain.Formation) FormationResponse {
	resp := FormationResponse{
		ID:           f.ID,
		Title:        f.Title,
		Domain:       string(f.Domain),
		StartDate:    f.StartDate.Format(dateLayout),
		Budget:       f.Budget,
		Location:     f.Location,
		Schedule:     f.Schedule,
		DurationDays: f.DurationDays(),
	}
	if f.EndDate != nil {
		resp.EndDate = f.EndDate.Format(dateLayout)
	}

	return resp
}

func NewFormationsResponse(formations []domain.Formation) []FormationResponse {
	resp := make([]FormationResponse, len(formations))
	for i, f := range formations {
		resp[i] = NewFormationResponse(f)
	}

	return resp
}

type FormationStatsResponse struct {
	Completed int `json:"completed"`
	Current   int `json:"current"`
	Upcoming  int `json:"upcoming"`
}

// StatsOverviewResponse carries application-wide totals.
type StatsOverviewResponse struct {
	Formations int `json:"formations"`
}

type MonthlyStatsResponse struct {
	Month             time.Month `json:"month"`
	Year              int        `json:"year"`
	FormationCount    int        `json:"formation_count"`
	TotalParticipants int        `json:"total_participants"`
}
