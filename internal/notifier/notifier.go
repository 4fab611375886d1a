package notifier

import (
	"github.com/rs/zerolog/log"
)

// Notifier is the delivery side of the notification worker. An
// interface so the channel can change later (email, Slack, SMS).
type Notifier interface {
	Notify(message string) error
}

// ConsoleNotifier logs each notification. Good enough until a real
// channel is wired in.
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(message string) error {
	log.Info().Str("channel", "console").Msg(message)
	return nil
}
