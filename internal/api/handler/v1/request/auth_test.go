package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSignupRequest() SignupRequest {
	return SignupRequest{
		Username:        "sarah_m",
		Password:        "Password123",
		ConfirmPassword: "Password123",
		FirstName:       "Sarah",
		LastName:        "Martin",
		Role:            "MANAGER",
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignupRequest)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(*SignupRequest) {},
		},
		{
			name: "password too short",
			mutate: func(req *SignupRequest) {
				req.Password = "Pass1"
				req.ConfirmPassword = "Pass1"
			},
			wantErr: errInvalidPassword,
		},
		{
			name: "password without digits",
			mutate: func(req *SignupRequest) {
				req.Password = "PasswordOnly"
				req.ConfirmPassword = "PasswordOnly"
			},
			wantErr: errInvalidPassword,
		},
		{
			name: "password without letters",
			mutate: func(req *SignupRequest) {
				req.Password = "12345678901"
				req.ConfirmPassword = "12345678901"
			},
			wantErr: errInvalidPassword,
		},
		{
			name:    "confirm password mismatch",
			mutate:  func(req *SignupRequest) { req.ConfirmPassword = "Password124" },
			wantErr: errConfirmPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignupRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignupRequest_Validate_RejectsUnknownRole(t *testing.T) {
	req := validSignupRequest()
	req.Role = "SUPERUSER"

	assert.Error(t, req.Validate())
}

func TestChangePasswordRequest_Validate(t *testing.T) {
	req := ChangePasswordRequest{CurrentPassword: "OldPassword1", NewPassword: "NewPassword1"}
	assert.NoError(t, req.Validate())

	req.NewPassword = "short"
	assert.ErrorIs(t, req.Validate(), errInvalidPassword)
}
