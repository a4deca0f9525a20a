package handler

import (
	"strings"

	"fechas/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(genericErrorText)
	}

	if !authorized {
		return h.handlePassword(c, text)
	}

	if text == "" {
		return nil
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingDate:
		return h.handleEventDate(c, state, text)

	case domain.StateIdle, domain.StateWaitingTitle:
		// Any text outside the date step starts a new event, the button is optional
		h.SetState(userID, &domain.StateData{
			State:        domain.StateWaitingDate,
			CurrentTitle: text,
		})

		return c.Send(dateRequestText, cancelMarkup())

	default:
		h.logger.Warn("Unknown conversation state, resetting",
			zap.Int64("user_id", userID),
			zap.String("state", string(state.State)),
		)
		h.ResetState(userID)
		return c.Send(mainMenuText, mainMenuMarkup())
	}
}

const dateRequestText = "📅 ¿Cuándo fue? Envía la fecha como AAAA-MM-DD, por ejemplo 2020-10-07"

// handlePassword authorizes the user when text is the bot password
func (h *Handler) handlePassword(c tele.Context, text string) error {
	userID := c.Sender().ID

	authorized, err := h.authService.Authorize(userID, text)
	if err != nil {
		h.logger.Error("Failed to authorize user", zap.Error(err))
		return c.Send(genericErrorText)
	}

	if !authorized {
		return c.Send("Contraseña incorrecta")
	}

	h.logger.Info("User authorized", zap.Int64("user_id", userID))
	h.ResetState(userID)
	return c.Send("✅ ¡Acceso concedido!\n\n"+mainMenuText, mainMenuMarkup())
}

// handleEventDate saves the pending event with the date in text
func (h *Handler) handleEventDate(c tele.Context, state *domain.StateData, text string) error {
	userID := c.Sender().ID

	view, err := h.eventService.SaveEvent(userID, state.CurrentTitle, text)
	if err != nil {
		msg, retry := userMessage(err)
		if !retry {
			h.logger.Error("Failed to save event",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
			h.ResetState(userID)
			return c.Send(msg, mainMenuMarkup())
		}

		// Keep waiting for a valid value
		if isTitleError(err) {
			h.SetState(userID, &domain.StateData{State: domain.StateWaitingTitle})
		}
		return c.Send(msg, cancelMarkup())
	}

	h.logger.Info("Event saved",
		zap.Int64("user_id", userID),
		zap.String("title", view.Event.Title),
		zap.String("date", view.Event.Date.String()),
	)

	h.ResetState(userID)
	return c.Send("✅ Guardado\n\n"+formatEventView(view), mainMenuMarkup())
}
