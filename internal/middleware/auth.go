package middleware

import (
	"fechas/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	// GenericErrorText is shown when a request fails for reasons the user cannot fix
	GenericErrorText = "Se produjo un error. Inténtalo más tarde."

	notAuthorizedText = "Primero envía /start e introduce la contraseña"
)

// AuthMiddleware lets only authorized users through to button handlers
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware",
					zap.Error(err),
					zap.Int64("user_id", userID),
				)
				return reply(c, GenericErrorText)
			}

			if !authorized {
				logger.Info("Rejected unauthorized user", zap.Int64("user_id", userID))
				return reply(c, notAuthorizedText)
			}

			return next(c)
		}
	}
}

// reply answers a callback with an alert, or a message with a new message
func reply(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}
