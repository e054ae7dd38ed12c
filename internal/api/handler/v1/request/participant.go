package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type ParticipantRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
	Structure string `json:"structure"`
	Profile   string `json:"profile"`
}

func (req *ParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Telephone, validation.Length(0, 20)),
		validation.Field(&req.Structure, validation.Required,
			validation.In("IT", "Finance", "Marketing", "HR")),
		validation.Field(&req.Profile, validation.Required,
			validation.In("Participant", "Intern", "Extern")),
	)
}
