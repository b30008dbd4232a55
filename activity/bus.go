package activity

import (
	"context"
	"encoding/json"
	"sync"

	Logger "github.com/Luismorlan/yatube/utils/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Event is the payload of every activity message. Only fields relevant to the
// topic are set.
type Event struct {
	ActorID   uint `json:"actor_id,omitempty"`
	PostID    uint `json:"post_id,omitempty"`
	CommentID uint `json:"comment_id,omitempty"`
	AuthorID  uint `json:"author_id,omitempty"`
	GroupID   uint `json:"group_id,omitempty"`
	// StaleImageKey is an image no post references anymore.
	StaleImageKey string `json:"stale_image_key,omitempty"`
	// Uri of a page cache lookup.
	Uri string `json:"uri,omitempty"`
}

// Publisher is what request handling code depends on. Publishing never fails
// the caller.
type Publisher interface {
	Publish(topic string, event Event)
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(topic string, event Event) {}

// Bus is the in-process event bus, a watermill go channel. Messages published
// to a topic nobody subscribes are dropped.
type Bus struct {
	EventBus *gochannel.GoChannel
}

func NewBus() *Bus {
	return &Bus{
		EventBus: gochannel.NewGoChannel(
			gochannel.Config{
				OutputChannelBuffer:            100,
				BlockPublishUntilSubscriberAck: false,
			},
			watermill.NewStdLogger(false, false),
		),
	}
}

func (b *Bus) Publish(topic string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		Logger.Log.WithFields(logrus.Fields{"topic": topic}).Error("cannot marshal activity event: ", err)
		return
	}
	if err := b.EventBus.Publish(topic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		Logger.Log.WithFields(logrus.Fields{"topic": topic}).Error("cannot publish activity event: ", err)
	}
}

func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.EventBus.Subscribe(ctx, topic)
}

func (b *Bus) Close() error {
	return b.EventBus.Close()
}

// DecodeEvent parses a message payload published by Bus.
func DecodeEvent(msg *message.Message) (Event, error) {
	var event Event
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return Event{}, errors.Wrap(err, "cannot decode activity event")
	}
	return event, nil
}

// Consume subscribes to every topic and calls handle for each decoded event
// until ctx is done. handle may be called from several routines at once.
func (b *Bus) Consume(ctx context.Context, topics []string, handle func(topic string, event Event)) error {
	return consume(ctx, b.EventBus, topics, handle)
}

// consume returns only once every started subscription routine is done, also
// when a later subscription fails.
func consume(ctx context.Context, subscriber message.Subscriber, topics []string, handle func(topic string, event Event)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for _, topic := range topics {
		messages, err := subscriber.Subscribe(ctx, topic)
		if err != nil {
			cancel()
			wg.Wait()
			return errors.Wrapf(err, "cannot subscribe to %s", topic)
		}
		wg.Add(1)
		go func(topic string, messages <-chan *message.Message) {
			defer wg.Done()
			for msg := range messages {
				msg.Ack()
				event, err := DecodeEvent(msg)
				if err != nil {
					Logger.Log.WithFields(logrus.Fields{"topic": topic}).Error(err)
					continue
				}
				handle(topic, event)
			}
		}(topic, messages)
	}

	<-ctx.Done()
	wg.Wait()
	return nil
}
