package domain

import "time"

type Structure string

const (
	StructureIT        Structure = "IT"
	StructureFinance   Structure = "Finance"
	StructureMarketing Structure = "Marketing"
	StructureHR        Structure = "HR"
)

type Profile string

const (
	ProfileParticipant Profile = "Participant"
	ProfileIntern      Profile = "Intern"
	ProfileExtern      Profile = "Extern"
)

type Participant struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Telephone string    `json:"telephone,omitempty"`
	Structure Structure `json:"structure"`
	Profile   Profile   `json:"profile"`
	Deleted   bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
