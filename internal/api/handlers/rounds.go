package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jkelleher/presspool/internal/services"
	"github.com/jkelleher/presspool/pkg/utils"
)

type RoundHandler struct {
	calc      *services.RoundCalculator
	finalizer *services.Finalizer
	logger    *logrus.Logger
}

func NewRoundHandler(calc *services.RoundCalculator, finalizer *services.Finalizer, logger *logrus.Logger) *RoundHandler {
	return &RoundHandler{calc: calc, finalizer: finalizer, logger: logger}
}

// GetResults returns the live settlement view of a round: per-game standings
// and hole detail, active press state, and the projected settlements.
func (h *RoundHandler) GetResults(c *gin.Context) {
	roundID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid round id", err.Error())
		return
	}

	results, err := h.calc.CalculateResults(c.Request.Context(), roundID)
	if err != nil {
		sendServiceError(c, h.logger, err, "Failed to calculate round results")
		return
	}
	utils.SendSuccess(c, results)
}

// FinalizeRound settles the round: resolves presses, persists settlements and
// marks the round completed. Finalizing twice returns a conflict.
func (h *RoundHandler) FinalizeRound(c *gin.Context) {
	roundID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid round id", err.Error())
		return
	}

	result, err := h.finalizer.FinalizeRound(c.Request.Context(), roundID)
	if err != nil {
		sendServiceError(c, h.logger, err, "Failed to finalize round")
		return
	}
	utils.SendSuccess(c, result)
}

// sendServiceError maps service-layer errors onto the response envelope.
func sendServiceError(c *gin.Context, logger *logrus.Logger, err error, logMsg string) {
	var appErr *utils.AppError
	switch {
	case errors.Is(err, utils.ErrNotFound):
		utils.SendNotFound(c, "Round not found")
	case errors.Is(err, utils.ErrForbidden):
		utils.SendForbidden(c, "Not a participant in this round")
	case errors.Is(err, utils.ErrRoundFinalized):
		utils.SendError(c, http.StatusConflict, utils.NewAppError(utils.ErrCodeFinalized, "Round is already finalized"))
	case errors.Is(err, utils.ErrSettlementsExist):
		utils.SendError(c, http.StatusConflict, utils.NewAppError(utils.ErrCodeConflict, "Settlements already exist for this round"))
	case errors.Is(err, utils.ErrPressNotActive):
		utils.SendError(c, http.StatusConflict, utils.NewAppError(utils.ErrCodePressState, "Press is not active"))
	case errors.As(err, &appErr):
		utils.SendError(c, http.StatusBadRequest, appErr)
	default:
		logger.WithError(err).Error(logMsg)
		utils.SendInternalError(c, logMsg)
	}
}
