package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFormationRequest() FormationRequest {
	return FormationRequest{
		Title:     "Go Fundamentals",
		Domain:    "IT",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-20",
		Budget:    1500,
		Location:  "Paris",
		Schedule:  "Full-time",
	}
}

func TestFormationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FormationRequest)
		wantErr bool
	}{
		{
			name:   "valid request",
			mutate: func(*FormationRequest) {},
		},
		{
			name:   "end date is optional",
			mutate: func(req *FormationRequest) { req.EndDate = "" },
		},
		{
			name:    "missing title",
			mutate:  func(req *FormationRequest) { req.Title = "" },
			wantErr: true,
		},
		{
			name:    "unknown domain",
			mutate:  func(req *FormationRequest) { req.Domain = "Cooking" },
			wantErr: true,
		},
		{
			name:    "malformed start date",
			mutate:  func(req *FormationRequest) { req.StartDate = "10/06/2025" },
			wantErr: true,
		},
		{
			name:    "zero budget",
			mutate:  func(req *FormationRequest) { req.Budget = 0 },
			wantErr: true,
		},
		{
			name:    "negative budget",
			mutate:  func(req *FormationRequest) { req.Budget = -100 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validFormationRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormationRequest_ParseDates(t *testing.T) {
	t.Run("both dates", func(t *testing.T) {
		req := validFormationRequest()

		start, end, err := req.ParseDates()

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), start)
		require.NotNil(t, end)
		assert.Equal(t, time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("omitted end date", func(t *testing.T) {
		req := validFormationRequest()
		req.EndDate = ""

		_, end, err := req.ParseDates()

		require.NoError(t, err)
		assert.Nil(t, end)
	})
}
