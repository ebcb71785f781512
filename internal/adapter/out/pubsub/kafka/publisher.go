package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"techblog/internal/model"

	kafkago "github.com/segmentio/kafka-go"
)

const DefaultTopic = "display-changed"

const writeTimeout = 5 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher forwards display-change events to a Kafka topic keyed by post
// id, so that every event of one post lands on the same partition.
type Publisher struct {
	w messageWriter
}

func NewPublisher(brokers []string, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		w: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkago.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafkago.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *Publisher) InvalidateDisplay(ctx context.Context, ev model.DisplayChanged) error {
	msg, err := buildMessage(ev)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write display event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.w.Close()
}

func buildMessage(ev model.DisplayChanged) (kafkago.Message, error) {
	value, err := json.Marshal(ev)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("marshal display event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(strconv.FormatInt(ev.PostID, 10)),
		Value: value,
		Time:  ev.At,
	}, nil
}
