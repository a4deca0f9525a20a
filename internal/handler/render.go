package handler

import (
	"errors"
	"fmt"
	"strconv"

	"fechas/internal/domain"
	"fechas/internal/middleware"
	"fechas/internal/service"

	tele "gopkg.in/telebot.v3"
)

const genericErrorText = middleware.GenericErrorText

// formatEventView renders an event detail message
func formatEventView(v domain.EventView) string {
	text := fmt.Sprintf("📌 %s\n📅 %s\n\n%s\n%s", v.Event.Title, v.Event.Date, v.Text, v.Bar)
	if v.Anniversary != "" {
		text += "\n🎉 " + v.Anniversary
	}
	return text
}

// eventsPageMarkup builds one button per event plus navigation and back rows
func eventsPageMarkup(views []domain.EventView, page, totalPages int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, v := range views {
		btn := markup.Data(v.ButtonLabel(), uniqueEvent, strconv.Itoa(v.Event.ID))
		rows = append(rows, markup.Row(btn))
	}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", uniquePage, strconv.Itoa(page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", uniquePage, strconv.Itoa(page+1)))
		}
		if len(navRow) > 0 {
			rows = append(rows, navRow)
		}
	}

	rows = append(rows, markup.Row(btnMainMenu))

	markup.Inline(rows...)
	return markup
}

// eventMarkup is the keyboard under an event detail
func eventMarkup(eventID int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("🗑 Eliminar", uniqueDelete, strconv.Itoa(eventID))),
		markup.Row(btnBackToEvents, btnMainMenu),
	)
	return markup
}

// userMessage maps a save error to a reply.
// retry is true when the user can fix the input and send it again.
func userMessage(err error) (msg string, retry bool) {
	switch {
	case errors.Is(err, domain.ErrMalformedDate):
		return "Formato no válido. Usa AAAA-MM-DD, por ejemplo 2020-10-07", true
	case errors.Is(err, domain.ErrInvalidMonth), errors.Is(err, domain.ErrInvalidDay):
		return "Esa fecha no existe. Revisa el mes y el día", true
	case errors.Is(err, domain.ErrChronologicalOrder):
		return "La fecha no puede estar en el futuro", true
	case errors.Is(err, service.ErrEmptyTitle):
		return "El título no puede estar vacío. Envía un título", true
	case errors.Is(err, service.ErrTitleTooLong):
		return "El título es demasiado largo. Envía uno más corto", true
	}
	return "No se pudo guardar la fecha. Inténtalo de nuevo.", false
}

// isTitleError reports whether err asks for a new title rather than a new date
func isTitleError(err error) bool {
	return errors.Is(err, service.ErrEmptyTitle) || errors.Is(err, service.ErrTitleTooLong)
}
