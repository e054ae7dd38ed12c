package response

import (
	"github.com/gestionformation/formation-api/internal/domain"
)

// ParticipantResponse is the external projection of a participant. The
// soft-delete flag never leaves the service.
type ParticipantResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
	Structure string `json:"structure"`
	Profile   string `json:"profile"`
}

func NewParticipantResponse(p domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Telephone: p.Telephone,
		Structure: string(p.Structure),
		Profile:   string(p.Profile),
	}
}

func NewParticipantsResponse(participants []domain.Participant) []ParticipantResponse {
	resp := make([]ParticipantResponse, len(participants))
	for i, p := range participants {
		resp[i] = NewParticipantResponse(p)
	}

	return resp
}

type ParticipantCountResponse struct {
	Profile string `json:"profile"`
	Count   int64  `json:"count"`
}
