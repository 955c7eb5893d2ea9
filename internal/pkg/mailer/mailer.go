package mailer

import (
	"context"
	"log"
)

type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// DevConsoleSender logs outgoing mail instead of delivering it. Used when no
// API key is configured, so local development never needs mail credentials.
type DevConsoleSender struct {
	enabled bool
}

func NewDevConsoleSender(enabled bool) *DevConsoleSender {
	return &DevConsoleSender{enabled: enabled}
}

func (s *DevConsoleSender) Send(_ context.Context, msg Message) error {
	if s.enabled {
		log.Printf("[DEV-EMAIL] to=%s subject=%q bytes=%d", msg.To, msg.Subject, len(msg.HTML))
	}
	return nil
}
