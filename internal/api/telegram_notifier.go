// Package api provides handlers for external APIs and interfaces
package api

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MessageSender delivers a single chat message to one recipient, allowing
// tests to substitute a fake without network access
type MessageSender interface {
	SendMessage(chatID int64, text string) error
}

// telegramSender implements MessageSender on top of the Telegram bot API
type telegramSender struct {
	bot *tgbotapi.BotAPI
}

func (s *telegramSender) SendMessage(chatID int64, text string) error {
	_, err := s.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func newTelegramSender(token string) (MessageSender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %v", err)
	}
	return &telegramSender{bot: bot}, nil
}

// Notifier sends failure alerts to the configured list of Telegram chats
type Notifier struct {
	token     string
	chatlist  []string
	newSender func(token string) (MessageSender, error)
}

// NewNotifier creates a failure notifier. An empty token is allowed and
// turns SendAlert into a logged no-op.
func NewNotifier(token string, chatlist []string) *Notifier {
	return &Notifier{
		token:     token,
		chatlist:  chatlist,
		newSender: newTelegramSender,
	}
}

// SendAlert notifies every configured chat about a failed run. Send errors
// are returned to the caller; the process is already exiting non-zero, so
// they are reported rather than recovered.
func (n *Notifier) SendAlert(message string) error {
	if n.token == "" {
		log.Println("TOKEN not defined in environment, skip sending telegram message")
		return nil
	}

	if len(n.chatlist) == 0 {
		log.Println("chatlist is empty (env var: TELEGRAM_CHATLIST)")
	}

	text := fmt.Sprintf("Error while executing: %s", message)

	// The sender is created lazily so an empty chatlist never touches the
	// Telegram API.
	var sender MessageSender
	for _, chat := range n.chatlist {
		chatID, err := strconv.ParseInt(chat, 10, 64)
		if err != nil {
			log.Printf("Skipping invalid chat ID %q: %v", chat, err)
			continue
		}

		if sender == nil {
			sender, err = n.newSender(n.token)
			if err != nil {
				return err
			}
		}

		log.Printf("Sending alert to chat %d", chatID)
		if err := sender.SendMessage(chatID, text); err != nil {
			return fmt.Errorf("failed to send alert to chat %d: %v", chatID, err)
		}
	}

	return nil
}
