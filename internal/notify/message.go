package notify

import (
	"errors"
	"time"
)

// ErrRejected marks a message the messaging gateway refused; redelivery will not help.
var ErrRejected = errors.New("message rejected by gateway")

// Message is the notification envelope published to the broker and relayed to the gateway.
type Message struct {
	To        string    `json:"to" validate:"required"`
	Text      string    `json:"text" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMessage(to, text string) Message {
	return Message{To: to, Text: text, CreatedAt: time.Now().UTC()}
}
