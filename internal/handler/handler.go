package handler

import (
	"sync"

	"fechas/internal/domain"
	"fechas/internal/middleware"
	"fechas/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	authService  *service.AuthService
	eventService *service.EventService
	logger       *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	eventService *service.EventService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		authService:  authService,
		eventService: eventService,
		logger:       logger,
		states:       make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	auth := middleware.AuthMiddleware(h.authService, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages carry the password, titles and dates
	h.bot.Handle(tele.OnText, h.handleText)

	// Static buttons
	h.bot.Handle(&btnViewEvents, h.handleViewEvents, auth)
	h.bot.Handle(&btnAddEvent, h.handleAddEvent, auth)
	h.bot.Handle(&btnCancel, h.handleCancel, auth)
	h.bot.Handle(&btnBackToEvents, h.handleViewEvents, auth)
	h.bot.Handle(&btnMainMenu, h.handleCancel, auth)

	// Dynamic buttons, the payload is in callback data
	h.bot.Handle(&tele.Btn{Unique: uniqueEvent}, h.handleEventSelection, auth)
	h.bot.Handle(&tele.Btn{Unique: uniqueDelete}, h.handleDeleteEvent, auth)
	h.bot.Handle(&tele.Btn{Unique: uniquePage}, h.handlePagination, auth)

	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

const (
	uniqueEvent  = "event"
	uniqueDelete = "delete"
	uniquePage   = "page"
)

// Inline keyboard buttons
var (
	btnViewEvents = tele.Btn{
		Unique: "view_events",
		Text:   "📅 Mis fechas",
	}
	btnAddEvent = tele.Btn{
		Unique: "add_event",
		Text:   "➕ Nueva fecha",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancelar",
	}
	btnBackToEvents = tele.Btn{
		Unique: "back_to_events",
		Text:   "◀️ A mis fechas",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Menú principal",
	}
)

const mainMenuText = "🏠 Menú principal\n\nElige una opción:"

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnViewEvents),
		menu.Row(btnAddEvent),
	)
	return menu
}

// cancelMarkup returns a keyboard with a single cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
