package activity

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusPublishAndDecode(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	messages, err := bus.Subscribe(ctx, TOPIC_FOLLOW_CREATED)
	require.Nil(t, err)

	bus.Publish(TOPIC_FOLLOW_CREATED, Event{ActorID: 1, AuthorID: 2})

	select {
	case msg := <-messages:
		msg.Ack()
		event, err := DecodeEvent(msg)
		require.Nil(t, err)
		assert.Equal(t, Event{ActorID: 1, AuthorID: 2}, event)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestDecodeEvent_Invalid(t *testing.T) {
	_, err := DecodeEvent(message.NewMessage(watermill.NewUUID(), []byte("{")))
	assert.NotNil(t, err)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	p.Publish(TOPIC_POST_CREATED, Event{})
}

type flakyModule struct {
	runs int32
}

func (m *flakyModule) RunModule(ctx context.Context) error {
	if atomic.AddInt32(&m.runs, 1) == 1 {
		return errors.New("first run fails")
	}
	<-ctx.Done()
	return nil
}

func (m *flakyModule) Name() string { return "flaky" }

func TestRunModuleWithGracefulRestart_StopsOnCancel(t *testing.T) {
	m := &flakyModule{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RunModuleWithGracefulRestart(ctx, m)
		close(done)
	}()

	// The first run fails, cancelling during the retry delay must return.
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&m.runs) >= 1 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("module kept running after cancel")
	}
}

// halfSubscriber serves the first topic and fails every later one.
type halfSubscriber struct {
	firstCtx context.Context
	handled  int32
}

func (s *halfSubscriber) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	if s.firstCtx != nil {
		return nil, errors.New("subscriber is full")
	}
	s.firstCtx = ctx
	messages := make(chan *message.Message)
	go func() {
		<-ctx.Done()
		close(messages)
	}()
	return messages, nil
}

func (s *halfSubscriber) Close() error { return nil }

func TestConsume_FailedSubscriptionStopsStartedRoutines(t *testing.T) {
	sub := &halfSubscriber{}
	err := consume(context.Background(), sub, []string{TOPIC_POST_CREATED, TOPIC_POST_DELETED}, func(string, Event) {
		atomic.AddInt32(&sub.handled, 1)
	})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), TOPIC_POST_DELETED)
	require.NotNil(t, sub.firstCtx)
	assert.NotNil(t, sub.firstCtx.Err())
	assert.Equal(t, int32(0), atomic.LoadInt32(&sub.handled))
}
