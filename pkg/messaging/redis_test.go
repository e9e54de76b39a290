package messaging_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/semo-study/pkg/messaging"
)

func newClient(t *testing.T) messaging.RedisClient {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return messaging.NewFromClient(rdb)
}

func receive(t *testing.T, ch <-chan messaging.Message) messaging.Message {
	t.Helper()
	select {
	case msg, ok := <-ch:
		require.True(t, ok, "channel closed before a message arrived")
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
		return messaging.Message{}
	}
}

func TestMessageDecode(t *testing.T) {
	msg := messaging.Message{Channel: "study:activity", Payload: []byte(`{"type":"progress.updated","streak":3}`)}

	var event struct {
		Type   string `json:"type"`
		Streak int    `json:"streak"`
	}
	require.NoError(t, msg.Decode(&event))
	assert.Equal(t, "progress.updated", event.Type)
	assert.Equal(t, 3, event.Streak)

	assert.Error(t, messaging.Message{Payload: []byte("not json")}.Decode(&event))
}

func TestPublishSubscribe(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := client.Subscribe(ctx, "study:activity")
	require.NoError(t, err)

	require.NoError(t, client.Publish(ctx, "study:activity", map[string]interface{}{
		"type":   "progress.updated",
		"streak": 2,
	}))

	msg := receive(t, ch)
	assert.Equal(t, "study:activity", msg.Channel)
	assert.False(t, msg.Time.IsZero())

	var event struct {
		Type   string `json:"type"`
		Streak int    `json:"streak"`
	}
	require.NoError(t, msg.Decode(&event))
	assert.Equal(t, "progress.updated", event.Type)
	assert.Equal(t, 2, event.Streak)

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription channel not closed after cancel")
	}
}

func TestPublish_UnencodableMessage(t *testing.T) {
	client := newClient(t)

	err := client.Publish(context.Background(), "study:activity", make(chan int))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "직렬화")
}
