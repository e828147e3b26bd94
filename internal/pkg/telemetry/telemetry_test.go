package telemetry

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/pkg/mqtt"
	"github.com/lesedi-io/lesedi/pkg/options"
)

type message struct {
	topic   string
	payload []byte
}

type fakeClient struct {
	mu        sync.Mutex
	published []message
}

var _ mqtt.Client = (*fakeClient)(nil)

func (c *fakeClient) Start(context.Context) error { return nil }
func (c *fakeClient) Disconnect(context.Context)  {}
func (c *fakeClient) Publish(_ context.Context, topic string, _ int, _ bool, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published = append(c.published, message{topic, payload})
	return nil
}
func (c *fakeClient) Subscribe(context.Context, string, int, mqtt.MessageHandler) error { return nil }
func (c *fakeClient) AwaitConnection(context.Context) error                             { return nil }
func (c *fakeClient) IsConnected() bool                                                 { return true }

func (c *fakeClient) on(topic string) []message {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []message
	for _, m := range c.published {
		if m.topic == topic {
			out = append(out, m)
		}
	}
	return out
}

func newOptions() *options.MqttOptions {
	opts := options.NewMqttOptions()
	opts.Broker = "tcp://127.0.0.1:1883"
	opts.TopicRoot = "lesedi"
	opts.Site = "sutherland"
	return opts
}

func TestClientConfigSetsPresence(t *testing.T) {
	cfg := ClientConfig(newOptions())
	assert.Equal(t, "lesedi/online/sutherland", cfg.WillTopic)
	assert.Equal(t, []byte("offline"), cfg.WillPayload)
	assert.True(t, cfg.WillRetain)
	assert.Equal(t, "lesedi/online/sutherland", cfg.BirthTopic)
	assert.Equal(t, []byte("online"), cfg.BirthPayload)
}

func TestPublisher(t *testing.T) {
	client := &fakeClient{}
	clk := clocktesting.NewFakeClock(time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC))
	status := func(context.Context) (*v1.Status, error) {
		return &v1.Status{State: v1.StateReady, DomeAngle: 270}, nil
	}
	p := New(client, newOptions(), status, WithClock(clk), WithInterval(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Start(ctx) }()

	p.PublishEvent(v1.Event{Type: v1.EventTransition, From: "OFF", To: "STARTUP"})
	require.Eventually(t, func() bool { return len(client.on("lesedi/events/sutherland")) == 1 }, time.Second, time.Millisecond)

	var e v1.Event
	require.NoError(t, json.Unmarshal(client.on("lesedi/events/sutherland")[0].payload, &e))
	assert.Equal(t, v1.EventTransition, e.Type)
	assert.Equal(t, "STARTUP", e.To)

	require.Eventually(t, clk.HasWaiters, time.Second, time.Millisecond)
	clk.Step(time.Second)
	require.Eventually(t, func() bool { return len(client.on("lesedi/status/sutherland")) == 1 }, time.Second, time.Millisecond)

	var s v1.Status
	require.NoError(t, json.Unmarshal(client.on("lesedi/status/sutherland")[0].payload, &s))
	assert.Equal(t, v1.StateReady, s.State)
	assert.Equal(t, 270.0, s.DomeAngle)

	cancel()
	require.NoError(t, <-done)
}

func TestPublishEventDropsWhenFull(t *testing.T) {
	p := New(&fakeClient{}, newOptions(), nil)
	for i := 0; i < eventBuffer+10; i++ {
		p.PublishEvent(v1.Event{Type: v1.EventStep})
	}
	assert.Len(t, p.events, eventBuffer)
}
