package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jkelleher/presspool/internal/api/middleware"
	"github.com/jkelleher/presspool/internal/services"
	"github.com/jkelleher/presspool/pkg/utils"
)

type PressHandler struct {
	presses *services.PressService
	logger  *logrus.Logger
}

func NewPressHandler(presses *services.PressService, logger *logrus.Logger) *PressHandler {
	return &PressHandler{presses: presses, logger: logger}
}

// OpenPress starts a press on one of the round's match games.
func (h *PressHandler) OpenPress(c *gin.Context) {
	roundID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid round id", err.Error())
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendUnauthorized(c, "Authentication required")
		return
	}

	var req services.OpenPressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid press request", err.Error())
		return
	}

	press, err := h.presses.OpenPress(c.Request.Context(), userID, roundID, req)
	if err != nil {
		sendServiceError(c, h.logger, err, "Failed to open press")
		return
	}
	utils.SendCreated(c, press)
}

// CancelPress voids an active press.
func (h *PressHandler) CancelPress(c *gin.Context) {
	pressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid press id", err.Error())
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.SendUnauthorized(c, "Authentication required")
		return
	}

	press, err := h.presses.CancelPress(c.Request.Context(), userID, pressID)
	if err != nil {
		sendServiceError(c, h.logger, err, "Failed to cancel press")
		return
	}
	utils.SendSuccess(c, press)
}
