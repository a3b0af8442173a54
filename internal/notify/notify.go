package notify

import (
	"context"
	"time"

	"go-micro.dev/v4"
	"go-micro.dev/v4/client"
	"go-micro.dev/v4/logger"
)

// Topic carries user-facing notices produced while browsing the catalog.
const Topic = "rms-catalog.notices"

const publishTimeout = 10 * time.Second

const sender = "rms-catalog"

type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Notice is a fire-and-forget user-visible message.
type Notice struct {
	Sender string
	Level  Level
	Text   string
}

// Publisher pushes notices to the broker. Delivery failures are logged and
// swallowed, notices never fail the operation that produced them.
type Publisher struct {
	pub micro.Event
}

func New(c client.Client) *Publisher {
	return &Publisher{pub: micro.NewEvent(Topic, c)}
}

func (p *Publisher) Info(text string) {
	p.publish(LevelInfo, text)
}

func (p *Publisher) Success(text string) {
	p.publish(LevelSuccess, text)
}

func (p *Publisher) Error(text string) {
	p.publish(LevelError, text)
}

func (p *Publisher) publish(level Level, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	notice := Notice{Sender: sender, Level: level, Text: text}
	if err := p.pub.Publish(ctx, &notice); err != nil {
		logger.Warnf("Send notice failed: %s", err)
	}
}
