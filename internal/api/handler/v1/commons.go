package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gestionformation/formation-api/internal/api/handler/v1/response"
	"github.com/gestionformation/formation-api/internal/service"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %w", name, err)
	}

	return uint(id), nil
}

// parseEnrollmentParams reads both IDs of an enrollment route, rendering a 400
// itself when either is malformed.
func parseEnrollmentParams(ctx *gin.Context) (participantID, formationID uint, ok bool) {
	participantID, err := parseIDParam(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return 0, 0, false
	}

	formationID, err = parseIDParam(ctx, "formationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return 0, 0, false
	}

	return participantID, formationID, true
}

func renderEnrollmentErr(ctx *gin.Context, err error, participantID, formationID uint, op string) {
	switch {
	case errors.Is(err, service.ErrParticipantNotFound):
		response.RenderErr(ctx, response.ErrNotFound("participant", "ID", participantID))
	case errors.Is(err, service.ErrFormationNotFound):
		response.RenderErr(ctx, response.ErrNotFound("formation", "ID", formationID))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
