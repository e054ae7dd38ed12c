package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestionformation/formation-api/internal/api/handler/v1/request"
	"github.com/gestionformation/formation-api/internal/api/handler/v1/response"
	"github.com/gestionformation/formation-api/internal/domain"
	"github.com/gestionformation/formation-api/internal/service"
)

type FormationService interface {
	CreateFormation(ctx context.Context, formation domain.Formation) (domain.Formation, error)
	GetFormation(ctx context.Context, id uint) (domain.Formation, error)
	GetAllFormations(ctx context.Context) ([]domain.Formation, error)
	UpdateFormation(ctx context.Context, id uint, details domain.Formation) (domain.Formation, error)
	DeleteFormation(ctx context.Context, id uint) error
	Enroll(ctx context.Context, participantID, formationID uint) error
	Withdraw(ctx context.Context, participantID, formationID uint) error
	GetFormationParticipants(ctx context.Context, formationID uint) ([]domain.Participant, error)
	Classify(ctx context.Context, today time.Time) (domain.FormationStats, error)
	MonthlyStats(ctx context.Context, month time.Month, year int) (domain.MonthlyStats, error)
}

type FormationHandler struct {
	svc FormationService
}

func NewFormationHandler(svc FormationService) *FormationHandler {
	return &FormationHandler{
		svc: svc,
	}
}

// HandleGetFormations godoc
// @Summary      List all formations
// @Tags         formations
// @Produce      json
// @Success      200  {array}   response.FormationResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /formations [get]
// @Security BearerAuth
func (h *FormationHandler) HandleGetFormations(ctx *gin.Context) {
	formations, err := h.svc.GetAllFormations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetFormations -> h.svc.GetAllFormations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewFormationsResponse(formations))
}

// HandleGetFormation godoc
// @Summary      Get a formation by ID
// @Tags         formations
// @Produce      json
// @Param        formationID  path      int  true  "Formation ID"
// @Success      200  {object}  response.FormationResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /formations/{formationID} [get]
// @Security BearerAuth
func (h *FormationHandler) HandleGetFormation(ctx *gin.Context) {
	formationID, err := parseIDParam(ctx, "formationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	formation, err := h.svc.GetFormation(ctx.Request.Context(), formationID)
	if err != nil {
		if errors.Is(err, service.ErrFormationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("formation", "ID", formationID))

			return
		}

		err = fmt.Errorf("v1.HandleGetFormation -> h.svc.GetFormation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewFormationResponse(formation))
}

// HandleCreateFormation godoc
// @Summary      Create a new formation
// @Tags         formations
// @Accept       json
// @Produce      json
// @Param        request  body      request.FormationRequest  true  "formation details"
// @Success      201  {object}  response.FormationResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /formations [post]
// @Security BearerAuth
func (h *FormationHandler) HandleCreateFormation(ctx *gin.Context) {
	var req request.FormationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	formation, err := formationFromRequest(req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateFormation(ctx.Request.Context(), formation)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateFormation -> h.svc.CreateFormation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewFormationResponse(created))
}

// HandleUpdateFormation godoc
// @Summary      Update a formation
// @Tags         formations
// @Accept       json
// @Produce      json
// @Param        formationID  path      int  true  "Formation ID"
// @Param        request  body      request.FormationRequest  true  "formation details"
// @Success      200  {object}  response.FormationResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /formations/{formationID} [put]
// @Security BearerAuth
func (h *FormationHandler) HandleUpdateFormation(ctx *gin.Context) {
	formationID, err := parseIDParam(ctx, "formationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.FormationRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	details, err := formationFromRequest(req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateFormation(ctx.Request.Context(), formationID, details)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFormationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("formation", "ID", formationID))
		case errors.Is(err, service.ErrValidation):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateFormation -> h.svc.UpdateFormation -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewFormationResponse(updated))
}

// HandleDeleteFormation godoc
// @Summary      Delete a formation
// @Description  Hard-deletes the formation and its enrollment entries.
// @Tags         formations
// @Produce      json
// @Param        formationID  path      int  true  "Formation ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /formations/{formationID} [delete]
// @Security BearerAuth
func (h *FormationHandler) HandleDeleteFormation(ctx *gin.Context) {
	formationID, err := parseIDParam(ctx, "formationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteFormation(ctx.Request.Context(), formationID); err != nil {
		if errors.Is(err, service.ErrFormationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("formation", "ID", formationID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteFormation -> h.svc.DeleteFormation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetFormationParticipants godoc
// @Summary      List participants of a formation
// @Description  Includes soft-deleted participants so historical enrollments stay visible.
// @Tags         formations
// @Produce      json
// @Param        formationID  path      int  true  "Formation ID"
// @Success      200  {array}   response.ParticipantResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /formations/{formationID}/participants [get]
// @Security BearerAuth
func (h *FormationHandler) HandleGetFormationParticipants(ctx *gin.Context) {
	formationID, err := parseIDParam(ctx, "formationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	participants, err := h.svc.GetFormationParticipants(ctx.Request.Context(), formationID)
	if err != nil {
		if errors.Is(err, service.ErrFormationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("formation", "ID", formationID))

			return
		}

		err = fmt.Errorf("v1.HandleGetFormationParticipants -> h.svc.GetFormationParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipantsResponse(participants))
}

// HandleEnrollParticipant godoc
// @Summary      Enroll a participant in a formation
// @Description  Enrolling an already-enrolled pair is a no-op success.
// @Tags         formations
// @Produce      json
// @Param        formationID    path      int  true  "Formation ID"
// @Param        participantID  path      int  true  "Participant ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /formations/{formationID}/participants/{participantID} [post]
// @Security BearerAuth
func (h *FormationHandler) HandleEnrollParticipant(ctx *gin.Context) {
	participantID, formationID, ok := parseEnrollmentParams(ctx)
	if !ok {
		return
	}

	if err := h.svc.Enroll(ctx.Request.Context(), participantID, formationID); err != nil {
		renderEnrollmentErr(ctx, err, participantID, formationID, "v1.HandleEnrollParticipant -> h.svc.Enroll")

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "participant enrolled"})
}

// HandleWithdrawParticipant godoc
// @Summary      Withdraw a participant from a formation
// @Description  Withdrawing a pair that is not enrolled is a no-op success.
// @Tags         formations
// @Produce      json
// @Param        formationID    path      int  true  "Formation ID"
// @Param        participantID  path      int  true  "Participant ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /formations/{formationID}/participants/{participantID} [delete]
// @Security BearerAuth
func (h *FormationHandler) HandleWithdrawParticipant(ctx *gin.Context) {
	participantID, formationID, ok := parseEnrollmentParams(ctx)
	if !ok {
		return
	}

	if err := h.svc.Withdraw(ctx.Request.Context(), participantID, formationID); err != nil {
		renderEnrollmentErr(ctx, err, participantID, formationID, "v1.HandleWithdrawParticipant -> h.svc.Withdraw")

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetFormationStats godoc
// @Summary      Classify formations as completed, current or upcoming
// @Tags         formations
// @Produce      json
// @Success      200  {object}  response.FormationStatsResponse
// @Failure      500  {object}  response.Err
// @Router       /formations/stats [get]
// @Security BearerAuth
func (h *FormationHandler) HandleGetFormationStats(ctx *gin.Context) {
	stats, ok := h.classifyToday(ctx, "v1.HandleGetFormationStats")
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, response.FormationStatsResponse{
		Completed: stats.Completed,
		Current:   stats.Current,
		Upcoming:  stats.Upcoming,
	})
}

// HandleCountCompletedFormations godoc
// @Summary      Count formations that have already ended
// @Tags         formations
// @Produce      json
// @Success      200  {integer}  int
// @Failure      500  {object}  response.Err
// @Router       /formations/stats/completed [get]
// @Security BearerAuth
func (h *FormationHandler) HandleCountCompletedFormations(ctx *gin.Context) {
	stats, ok := h.classifyToday(ctx, "v1.HandleCountCompletedFormations")
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, stats.Completed)
}

// HandleCountCurrentFormations godoc
// @Summary      Count formations currently in progress
// @Tags         formations
// @Produce      json
// @Success      200  {integer}  int
// @Failure      500  {object}  response.Err
// @Router       /formations/stats/current [get]
// @Security BearerAuth
func (h *FormationHandler) HandleCountCurrentFormations(ctx *gin.Context) {
	stats, ok := h.classifyToday(ctx, "v1.HandleCountCurrentFormations")
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, stats.Current)
}

// HandleCountUpcomingFormations godoc
// @Summary      Count formations that have not started yet
// @Tags         formations
// @Produce      json
// @Success      200  {integer}  int
// @Failure      500  {object}  response.Err
// @Router       /formations/stats/upcoming [get]
// @Security BearerAuth
func (h *FormationHandler) HandleCountUpcomingFormations(ctx *gin.Context) {
	stats, ok := h.classifyToday(ctx, "v1.HandleCountUpcomingFormations")
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, stats.Upcoming)
}

// classifyToday runs the classification against today's date and renders a 500
// itself when the service fails.
func (h *FormationHandler) classifyToday(ctx *gin.Context, op string) (domain.FormationStats, bool) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	stats, err := h.svc.Classify(ctx.Request.Context(), today)
	if err != nil {
		err = fmt.Errorf("%v -> h.svc.Classify -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return domain.FormationStats{}, false
	}

	return stats, true
}

// HandleGetStatsOverview godoc
// @Summary      Application-wide totals
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.StatsOverviewResponse
// @Failure      500  {object}  response.Err
// @Router       /stats [get]
// @Security BearerAuth
func (h *FormationHandler) HandleGetStatsOverview(ctx *gin.Context) {
	formations, err := h.svc.GetAllFormations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStatsOverview -> h.svc.GetAllFormations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.StatsOverviewResponse{
		Formations: len(formations),
	})
}

// HandleGetMonthlyStats godoc
// @Summary      Formation and enrollment counts for a month
// @Tags         formations
// @Produce      json
// @Param        month  query     int  true  "Month (1-12)"
// @Param        year   query     int  true  "Year"
// @Success      200  {object}  response.MonthlyStatsResponse
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /formations/stats/monthly [get]
// @Security BearerAuth
func (h *FormationHandler) HandleGetMonthlyStats(ctx *gin.Context) {
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil || month < 1 || month > 12 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("month must be between 1 and 12")))

		return
	}

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("year is required")))

		return
	}

	stats, err := h.svc.MonthlyStats(ctx.Request.Context(), time.Month(month), year)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMonthlyStats -> h.svc.MonthlyStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MonthlyStatsResponse{
		Month:             time.Month(month),
		Year:              year,
		FormationCount:    stats.FormationCount,
		TotalParticipants: stats.TotalParticipants,
	})
}

func formationFromRequest(req request.FormationRequest) (domain.Formation, error) {
	start, end, err := req.ParseDates()
	if err != nil {
		return domain.Formation{}, err
	}

	formation := domain.Formation{
		Title:    req.Title,
		Domain:   domain.FormationDomain(req.Domain),
		Budget:   req.Budget,
		Location: req.Location,
		Schedule: req.Schedule,
	}
	formation.SetStartDate(start)
	formation.SetEndDate(end)

	return formation, nil
}
