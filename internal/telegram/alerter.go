// Package telegram pushes one-way staff alerts through the Telegram Bot
// API: a line per newly filed complaint and per urgent announcement, sent
// to the configured staff chat.
package telegram

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"clubportal/backend/internal/models"
)

// Alerter owns the bot connection and the target staff chat.
type Alerter struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
}

// NewAlerter authorizes the bot and binds it to the staff chat.
func NewAlerter(token string, chatID int64) (*Alerter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("Authorized staff alert bot on account %s", bot.Self.UserName)

	return &Alerter{BotAPI: bot, ChatID: chatID}, nil
}

// NotifyNewComplaint pushes a short summary of a freshly filed complaint.
func (a *Alerter) NotifyNewComplaint(c models.Complaint) {
	text := fmt.Sprintf("New complaint %s [%s/%s]\n%s: %s",
		c.ID, c.Category, c.Priority, c.UserName, c.Subject)
	a.send(text)
}

// NotifyUrgentAnnouncement mirrors urgent broadcasts into the staff chat.
func (a *Alerter) NotifyUrgentAnnouncement(ann models.Announcement) {
	text := fmt.Sprintf("Urgent announcement: %s\n%s", ann.Title, ann.Content)
	a.send(text)
}

func (a *Alerter) send(text string) {
	msg := tgbotapi.NewMessage(a.ChatID, text)
	if _, err := a.BotAPI.Send(msg); err != nil {
		log.Printf("Failed to send staff alert: %v", err)
	}
}
