package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	chatID int64
	text   string
}

// fakeSender records messages instead of calling the Telegram API
type fakeSender struct {
	messages []sentMessage
	err      error
}

func (f *fakeSender) SendMessage(chatID int64, text string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, sentMessage{chatID: chatID, text: text})
	return nil
}

func newTestNotifier(token string, chatlist []string, sender MessageSender) (*Notifier, *int) {
	factoryCalls := 0
	notifier := NewNotifier(token, chatlist)
	notifier.newSender = func(string) (MessageSender, error) {
		factoryCalls++
		return sender, nil
	}
	return notifier, &factoryCalls
}

func TestSendAlertWithoutToken(t *testing.T) {
	sender := &fakeSender{}
	notifier, factoryCalls := newTestNotifier("", []string{"139656428"}, sender)

	err := notifier.SendAlert("boom")
	require.NoError(t, err)
	assert.Equal(t, 0, *factoryCalls)
	assert.Empty(t, sender.messages)
}

func TestSendAlertEmptyChatlist(t *testing.T) {
	sender := &fakeSender{}
	notifier, factoryCalls := newTestNotifier("bot-token", nil, sender)

	err := notifier.SendAlert("boom")
	require.NoError(t, err)

	// Iterating an empty list must not touch the Telegram API
	assert.Equal(t, 0, *factoryCalls)
	assert.Empty(t, sender.messages)
}

func TestSendAlertSendsToEveryRecipient(t *testing.T) {
	sender := &fakeSender{}
	notifier, factoryCalls := newTestNotifier("bot-token", []string{"139656428", "42"}, sender)

	err := notifier.SendAlert("couldn't retrieve website")
	require.NoError(t, err)

	assert.Equal(t, 1, *factoryCalls)
	require.Len(t, sender.messages, 2)
	assert.Equal(t, int64(139656428), sender.messages[0].chatID)
	assert.Equal(t, int64(42), sender.messages[1].chatID)
	for _, msg := range sender.messages {
		assert.Equal(t, "Error while executing: couldn't retrieve website", msg.text)
	}
}

func TestSendAlertSkipsInvalidChatID(t *testing.T) {
	sender := &fakeSender{}
	notifier, _ := newTestNotifier("bot-token", []string{"not-a-number", "42"}, sender)

	err := notifier.SendAlert("boom")
	require.NoError(t, err)

	require.Len(t, sender.messages, 1)
	assert.Equal(t, int64(42), sender.messages[0].chatID)
}

func TestSendAlertReturnsSendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("blocked by user")}
	notifier, _ := newTestNotifier("bot-token", []string{"42"}, sender)

	err := notifier.SendAlert("boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked by user")
}
