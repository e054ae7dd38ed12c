package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestionformation/formation-api/internal/api/handler/v1/response"
	"github.com/gestionformation/formation-api/internal/domain"
	"github.com/gestionformation/formation-api/internal/service"
)

type fakeFormationService struct {
	formations map[uint]domain.Formation
	stats      domain.FormationStats
}

func (s *fakeFormationService) CreateFormation(_ context.Context, formation domain.Formation) (domain.Formation, error) {
	formation.ID = 1

	return formation, nil
}

func (s *fakeFormationService) GetFormation(_ context.Context, id uint) (domain.Formation, error) {
	formation, ok := s.formations[id]
	if !ok {
		return domain.Formation{}, service.ErrFormationNotFound
	}

	return formation, nil
}

func (s *fakeFormationService) GetAllFormations(_ context.Context) ([]domain.Formation, error) {
	result := make([]domain.Formation, 0, len(s.formations))
	for _, f := range s.formations {
		result = append(result, f)
	}

	return result, nil
}

func (s *fakeFormationService) UpdateFormation(_ context.Context, id uint, details domain.Formation) (domain.Formation, error) {
	if _, ok := s.formations[id]; !ok {
		return domain.Formation{}, service.ErrFormationNotFound
	}
	details.ID = id

	return details, nil
}

func (s *fakeFormationService) DeleteFormation(_ context.Context, id uint) error {
	if _, ok := s.formations[id]; !ok {
		return service.ErrFormationNotFound
	}

	return nil
}

func (s *fakeFormationService) Enroll(_ context.Context, participantID, formationID uint) error {
	if _, ok := s.formations[formationID]; !ok {
		return service.ErrFormationNotFound
	}

	return nil
}

func (s *fakeFormationService) Withdraw(_ context.Context, participantID, formationID uint) error {
	return nil
}

func (s *fakeFormationService) GetFormationParticipants(_ context.Context, formationID uint) ([]domain.Participant, error) {
	if _, ok := s.formations[formationID]; !ok {
		return nil, service.ErrFormationNotFound
	}

	return nil, nil
}

func (s *fakeFormationService) Classify(_ context.Context, _ time.Time) (domain.FormationStats, error) {
	return s.stats, nil
}

func (s *fakeFormationService) MonthlyStats(_ context.Context, _ time.Month, _ int) (domain.MonthlyStats, error) {
	return domain.MonthlyStats{FormationCount: 1, TotalParticipants: 3}, nil
}

func setupFormationRouter(svc FormationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewFormationHandler(svc)

	router.GET("/formations", handler.HandleGetFormations)
	router.POST("/formations", handler.HandleCreateFormation)
	router.GET("/formations/stats", handler.HandleGetFormationStats)
	router.GET("/formations/stats/monthly", handler.HandleGetMonthlyStats)
	router.GET("/formations/stats/completed", handler.HandleCountCompletedFormations)
	router.GET("/formations/stats/current", handler.HandleCountCurrentFormations)
	router.GET("/formations/stats/upcoming", handler.HandleCountUpcomingFormations)
	router.GET("/stats", handler.HandleGetStatsOverview)
	router.GET("/formations/:formationID", handler.HandleGetFormation)
	router.POST("/formations/:formationID/participants/:participantID", handler.HandleEnrollParticipant)

	return router
}

func TestFormationHandler_HandleGetFormation(t *testing.T) {
	start := time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)
	svc := &fakeFormationService{
		formations: map[uint]domain.Formation{
			1: {ID: 1, Title: "Go Fundamentals", Domain: domain.DomainIT, StartDate: start, EndDate: &end, Budget: 1500},
		},
	}
	router := setupFormationRouter(svc)

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/formations/1", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.FormationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Go Fundamentals", resp.Title)
		assert.Equal(t, 14, resp.DurationDays)
		assert.Equal(t, "2025-05-05", resp.StartDate)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/formations/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/formations/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFormationHandler_HandleCreateFormation(t *testing.T) {
	router := setupFormationRouter(&fakeFormationService{})

	t.Run("created", func(t *testing.T) {
		body := `{"title":"Go Fundamentals","domain":"IT","start_date":"2025-06-10","end_date":"2025-06-05","budget":1500}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/formations", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		// The inverted end date is forced to start plus one day before the
		// service ever sees it.
		var resp response.FormationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "2025-06-11", resp.EndDate)
	})

	t.Run("invalid body", func(t *testing.T) {
		body := `{"title":"","domain":"Cooking","start_date":"2025-06-10","budget":0}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/formations", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFormationHandler_HandleEnrollParticipant(t *testing.T) {
	svc := &fakeFormationService{
		formations: map[uint]domain.Formation{10: {ID: 10}},
	}
	router := setupFormationRouter(svc)

	t.Run("enrolled", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/formations/10/participants/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown formation", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/formations/99/participants/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed participant ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/formations/10/participants/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFormationHandler_HandleGetFormationStats(t *testing.T) {
	svc := &fakeFormationService{
		stats: domain.FormationStats{Completed: 4, Current: 2, Upcoming: 3},
	}
	router := setupFormationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/formations/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.FormationStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Completed)
	assert.Equal(t, 2, resp.Current)
	assert.Equal(t, 3, resp.Upcoming)
}

func TestFormationHandler_BucketCounts(t *testing.T) {
	svc := &fakeFormationService{
		stats: domain.FormationStats{Completed: 4, Current: 2, Upcoming: 3},
	}
	router := setupFormationRouter(svc)

	tests := []struct {
		path string
		want string
	}{
		{path: "/formations/stats/completed", want: "4"},
		{path: "/formations/stats/current", want: "2"},
		{path: "/formations/stats/upcoming", want: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestFormationHandler_HandleGetStatsOverview(t *testing.T) {
	svc := &fakeFormationService{
		formations: map[uint]domain.Formation{
			1: {ID: 1, Title: "Go Fundamentals"},
			2: {ID: 2, Title: "Agile Basics"},
		},
	}
	router := setupFormationRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"formations": 2}`, w.Body.String())
}

func TestFormationHandler_HandleGetMonthlyStats(t *testing.T) {
	router := setupFormationRouter(&fakeFormationService{})

	t.Run("valid query", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/formations/stats/monthly?month=5&year=2025", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.MonthlyStatsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.FormationCount)
		assert.Equal(t, 3, resp.TotalParticipants)
	})

	t.Run("month out of range", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/formations/stats/monthly?month=13&year=2025", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
