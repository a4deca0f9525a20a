package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const passwordPrompt = "¡Hola! Este bot es privado. Introduce la contraseña:"

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(genericErrorText)
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(genericErrorText)
	}

	h.ResetState(userID)

	if !authorized {
		return c.Send(passwordPrompt)
	}

	return c.Send(mainMenuText, mainMenuMarkup())
}
