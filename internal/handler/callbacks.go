package handler

import (
	"strconv"
	"strings"
	"unicode"

	"fechas/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// callbackID parses the numeric payload of a dynamic button
func callbackID(c tele.Context) (int, error) {
	return strconv.Atoi(cleanCallbackData(c.Data()))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Another callback already put the same content in the message
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		return c.Respond()
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// editOrSend edits the message behind a callback, or sends a new one
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleCallback acknowledges callbacks no other endpoint claimed
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", cleanCallbackData(callback.Data)),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}

// handleViewEvents shows the first page of the user's events
func (h *Handler) handleViewEvents(c tele.Context) error {
	return h.showEventsPage(c, 1)
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context) error {
	page, err := callbackID(c)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Página no válida"})
	}
	return h.showEventsPage(c, page)
}

func (h *Handler) showEventsPage(c tele.Context, page int) error {
	userID := c.Sender().ID

	views, totalPages, err := h.eventService.GetEventsPage(userID, page)
	if err != nil {
		h.logger.Error("Failed to get events page", zap.Error(err), zap.Int("page", page))
		return c.Respond(&tele.CallbackResponse{Text: "Error al cargar los datos"})
	}

	if len(views) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Todavía no tienes fechas guardadas",
			ShowAlert: true,
		})
	}

	text := "📅 Tus fechas (" + h.eventService.Today().String() + "):"
	return h.editOrSend(c, text, eventsPageMarkup(views, page, totalPages))
}

// handleEventSelection shows one event with its elapsed time
func (h *Handler) handleEventSelection(c tele.Context) error {
	userID := c.Sender().ID

	eventID, err := callbackID(c)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Fecha no válida"})
	}

	view, err := h.eventService.GetEvent(userID, eventID)
	if err != nil {
		h.logger.Error("Failed to get event", zap.Error(err), zap.Int("event_id", eventID))
		return c.Respond(&tele.CallbackResponse{Text: "Error al cargar"})
	}
	if view == nil {
		return c.Respond(&tele.CallbackResponse{Text: "Esa fecha ya no existe"})
	}

	return h.editOrSend(c, formatEventView(*view), eventMarkup(eventID))
}

// handleDeleteEvent removes the selected event
func (h *Handler) handleDeleteEvent(c tele.Context) error {
	userID := c.Sender().ID

	eventID, err := callbackID(c)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Fecha no válida"})
	}

	if err := h.eventService.DeleteEvent(userID, eventID); err != nil {
		h.logger.Error("Failed to delete event", zap.Error(err), zap.Int("event_id", eventID))
		return c.Respond(&tele.CallbackResponse{Text: "No se pudo eliminar"})
	}

	h.logger.Info("Event deleted", zap.Int64("user_id", userID), zap.Int("event_id", eventID))
	return h.editOrSend(c, "🗑 Fecha eliminada\n\n"+mainMenuText, mainMenuMarkup())
}

// handleAddEvent starts the add event conversation
func (h *Handler) handleAddEvent(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingTitle})
	return h.editOrSend(c, "✏️ ¿Qué quieres recordar? Envía un título", cancelMarkup())
}

// handleCancel cancels current operation and returns to the main menu
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.editOrSend(c, mainMenuText, mainMenuMarkup())
}
