package handler

import (
	tele "gopkg.in/telebot.v3"
)

// Notifier sends plain messages to users through the bot
type Notifier struct {
	bot *tele.Bot
}

// NewNotifier creates a notifier backed by bot
func NewNotifier(bot *tele.Bot) *Notifier {
	return &Notifier{bot: bot}
}

// Notify implements service.Notifier
func (n *Notifier) Notify(userID int64, text string) error {
	_, err := n.bot.Send(tele.ChatID(userID), text)
	return err
}
