package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestionformation/formation-api/internal/api/handler/v1/request"
	"github.com/gestionformation/formation-api/internal/api/handler/v1/response"
	"github.com/gestionformation/formation-api/internal/domain"
	"github.com/gestionformation/formation-api/internal/service"
)

type ParticipantService interface {
	CreateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	GetParticipant(ctx context.Context, id uint) (domain.Participant, error)
	GetAllParticipants(ctx context.Context) ([]domain.Participant, error)
	GetParticipantsByProfile(ctx context.Context, profile domain.Profile) ([]domain.Participant, error)
	CountParticipantsByProfile(ctx context.Context, profile domain.Profile) (int64, error)
	UpdateParticipant(ctx context.Context, id uint, details domain.Participant) (domain.Participant, error)
	DeleteParticipant(ctx context.Context, id uint) error
	GetParticipantFormations(ctx context.Context, participantID uint) ([]domain.Formation, error)
	Enroll(ctx context.Context, participantID, formationID uint) error
	Withdraw(ctx context.Context, participantID, formationID uint) error
}

type ParticipantHandler struct {
	svc ParticipantService
}

func NewParticipantHandler(svc ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		svc: svc,
	}
}

// HandleGetParticipants godoc
// @Summary      List all active participants
// @Description  Soft-deleted participants are excluded.
// @Tags         participants
// @Produce      json
// @Success      200  {array}   response.ParticipantResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleGetParticipants(ctx *gin.Context) {
	participants, err := h.svc.GetAllParticipants(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetParticipants -> h.svc.GetAllParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipantsResponse(participants))
}

// HandleGetParticipantsByProfile godoc
// @Summary      List active participants with a given profile
// @Tags         participants
// @Produce      json
// @Param        profile  path      string  true  "Profile"  Enums(Participant, Intern, Extern)
// @Success      200  {array}   response.ParticipantResponse
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/profile/{profile} [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleGetParticipantsByProfile(ctx *gin.Context) {
	profile := ctx.Param("profile")
	if !validProfile(profile) {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("unknown profile")))

		return
	}

	participants, err := h.svc.GetParticipantsByProfile(ctx.Request.Context(), domain.Profile(profile))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetParticipantsByProfile -> h.svc.GetParticipantsByProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipantsResponse(participants))
}

// HandleGetParticipant godoc
// @Summary      Get a participant by ID
// @Tags         participants
// @Produce      json
// @Param        participantID  path      int  true  "Participant ID"
// @Success      200  {object}  response.ParticipantResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{participantID} [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleGetParticipant(ctx *gin.Context) {
	participantID, err := parseIDParam(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	participant, err := h.svc.GetParticipant(ctx.Request.Context(), participantID)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", participantID))

			return
		}

		err = fmt.Errorf("v1.HandleGetParticipant -> h.svc.GetParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipantResponse(participant))
}

// HandleCreateParticipant godoc
// @Summary      Create a new participant
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        request  body      request.ParticipantRequest  true  "participant details"
// @Success      201  {object}  response.ParticipantResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants [post]
// @Security BearerAuth
func (h *ParticipantHandler) HandleCreateParticipant(ctx *gin.Context) {
	var req request.ParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateParticipant(ctx.Request.Context(), participantFromRequest(req))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateParticipant -> h.svc.CreateParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewParticipantResponse(created))
}

// HandleUpdateParticipant godoc
// @Summary      Update a participant
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        participantID  path      int  true  "Participant ID"
// @Param        request  body      request.ParticipantRequest  true  "participant details"
// @Success      200  {object}  response.ParticipantResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{participantID} [put]
// @Security BearerAuth
func (h *ParticipantHandler) HandleUpdateParticipant(ctx *gin.Context) {
	participantID, err := parseIDParam(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ParticipantRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateParticipant(ctx.Request.Context(), participantID, participantFromRequest(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipantNotFound):
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", participantID))
		case errors.Is(err, service.ErrValidation):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateParticipant -> h.svc.UpdateParticipant -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipantResponse(updated))
}

// HandleDeleteParticipant godoc
// @Summary      Soft-delete a participant
// @Description  Marks the participant deleted; enrollment history is preserved.
//               Deleting a missing or already-deleted participant succeeds.
// @Tags         participants
// @Produce      json
// @Param        participantID  path      int  true  "Participant ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{participantID} [delete]
// @Security BearerAuth
func (h *ParticipantHandler) HandleDeleteParticipant(ctx *gin.Context) {
	participantID, err := parseIDParam(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteParticipant(ctx.Request.Context(), participantID); err != nil {
		err = fmt.Errorf("v1.HandleDeleteParticipant -> h.svc.DeleteParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetParticipantFormations godoc
// @Summary      List formations a participant is enrolled in
// @Tags         participants
// @Produce      json
// @Param        participantID  path      int  true  "Participant ID"
// @Success      200  {array}   response.FormationResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{participantID}/formations [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleGetParticipantFormations(ctx *gin.Context) {
	participantID, err := parseIDParam(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	formations, err := h.svc.GetParticipantFormations(ctx.Request.Context(), participantID)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", participantID))

			return
		}

		err = fmt.Errorf("v1.HandleGetParticipantFormations -> h.svc.GetParticipantFormations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewFormationsResponse(formations))
}

// HandleCountParticipantsByProfile godoc
// @Summary      Count active participants with a given profile
// @Tags         participants
// @Produce      json
// @Param        profile  path      string  true  "Profile"  Enums(Participant, Intern, Extern)
// @Success      200  {object}  response.ParticipantCountResponse
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/profile/{profile}/count [get]
// @Security BearerAuth
func (h *ParticipantHandler) HandleCountParticipantsByProfile(ctx *gin.Context) {
	profile := ctx.Param("profile")
	if !validProfile(profile) {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("unknown profile")))

		return
	}

	count, err := h.svc.CountParticipantsByProfile(ctx.Request.Context(), domain.Profile(profile))
	if err != nil {
		err = fmt.Errorf("v1.HandleCountParticipantsByProfile -> h.svc.CountParticipantsByProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.ParticipantCountResponse{
		Profile: profile,
		Count:   count,
	})
}

// HandleEnrollInFormation godoc
// @Summary      Enroll a participant in a formation
// @Description  Participant-side mirror of the formation enrollment route.
// @Tags         participants
// @Produce      json
// @Param        participantID  path      int  true  "Participant ID"
// @Param        formationID    path      int  true  "Formation ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{participantID}/formations/{formationID} [post]
// @Security BearerAuth
func (h *ParticipantHandler) HandleEnrollInFormation(ctx *gin.Context) {
	participantID, formationID, ok := parseEnrollmentParams(ctx)
	if !ok {
		return
	}

	if err := h.svc.Enroll(ctx.Request.Context(), participantID, formationID); err != nil {
		renderEnrollmentErr(ctx, err, participantID, formationID, "v1.HandleEnrollInFormation -> h.svc.Enroll")

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "participant enrolled"})
}

// HandleWithdrawFromFormation godoc
// @Summary      Withdraw a participant from a formation
// @Description  Participant-side mirror of the formation withdrawal route.
// @Tags         participants
// @Produce      json
// @Param        participantID  path      int  true  "Participant ID"
// @Param        formationID    path      int  true  "Formation ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participants/{participantID}/formations/{formationID} [delete]
// @Security BearerAuth
func (h *ParticipantHandler) HandleWithdrawFromFormation(ctx *gin.Context) {
	participantID, formationID, ok := parseEnrollmentParams(ctx)
	if !ok {
		return
	}

	if err := h.svc.Withdraw(ctx.Request.Context(), participantID, formationID); err != nil {
		renderEnrollmentErr(ctx, err, participantID, formationID, "v1.HandleWithdrawFromFormation -> h.svc.Withdraw")

		return
	}

	ctx.Status(http.StatusNoContent)
}

func validProfile(profile string) bool {
	switch domain.Profile(profile) {
	case domain.ProfileParticipant, domain.ProfileIntern, domain.ProfileExtern:
		return true
	}

	return false
}

func participantFromRequest(req request.ParticipantRequest) domain.Participant {
	return domain.Participant{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Telephone: req.Telephone,
		Structure: domain.Structure(req.Structure),
		Profile:   domain.Profile(req.Profile),
	}
}
