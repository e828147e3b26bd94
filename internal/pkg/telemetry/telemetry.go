// Package telemetry publishes coordinator events and status snapshots over MQTT.
package telemetry

import (
	"context"
	"encoding/json"
	"time"

	"k8s.io/utils/clock"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/pkg/log"
	"github.com/lesedi-io/lesedi/pkg/mqtt"
	"github.com/lesedi-io/lesedi/pkg/mqtt/topic"
	"github.com/lesedi-io/lesedi/pkg/options"
)

const (
	DefaultInterval = 5 * time.Second

	eventBuffer = 256

	payloadOnline  = "online"
	payloadOffline = "offline"
)

// StatusFunc reads the current observatory status.
type StatusFunc func(ctx context.Context) (*v1.Status, error)

// Publisher implements the coordinator event sink. Events are queued and
// sent from Start so the coordinator never waits on the broker.
type Publisher struct {
	client   mqtt.Client
	topics   *topic.TopicBuilder
	site     string
	interval time.Duration
	status   StatusFunc
	clock    clock.WithTicker
	events   chan v1.Event
	logger   log.Logger
}

type Option func(*Publisher)

func WithClock(clk clock.WithTicker) Option {
	return func(p *Publisher) { p.clock = clk }
}

func WithInterval(d time.Duration) Option {
	return func(p *Publisher) { p.interval = d }
}

// ClientConfig derives the MQTT client config from opts with the retained
// online marker and the offline last will set up for the site.
func ClientConfig(opts *options.MqttOptions) *mqtt.ClientConfig {
	topics := topic.NewTopicBuilder(opts.TopicRoot)
	cfg := opts.ToClientConfig()
	cfg.WillTopic = topics.Online(opts.Site)
	cfg.WillPayload = []byte(payloadOffline)
	cfg.WillQoS = 1
	cfg.WillRetain = true
	cfg.BirthTopic = topics.Online(opts.Site)
	cfg.BirthPayload = []byte(payloadOnline)
	return cfg
}

func New(client mqtt.Client, opts *options.MqttOptions, status StatusFunc, fns ...Option) *Publisher {
	p := &Publisher{
		client:   client,
		topics:   topic.NewTopicBuilder(opts.TopicRoot),
		site:     opts.Site,
		interval: DefaultInterval,
		status:   status,
		clock:    clock.RealClock{},
		events:   make(chan v1.Event, eventBuffer),
		logger:   log.WithName("telemetry").WithValues("site", opts.Site),
	}
	for _, fn := range fns {
		fn(p)
	}
	return p
}

// PublishEvent queues e. Events are dropped when the queue is full.
func (p *Publisher) PublishEvent(e v1.Event) {
	select {
	case p.events <- e:
	default:
		p.logger.Warn("Event queue full, dropping event", "type", string(e.Type))
	}
}

// Start connects to the broker and publishes until ctx is done.
func (p *Publisher) Start(ctx context.Context) error {
	if err := p.client.Start(ctx); err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		p.client.Disconnect(dctx)
	}()

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("Telemetry publisher started", "interval", p.interval)
	for {
		select {
		case <-ctx.Done():
			return nil
		case e := <-p.events:
			p.publish(ctx, p.topics.Events(p.site), e)
		case <-ticker.C():
			p.snapshot(ctx)
		}
	}
}

func (p *Publisher) snapshot(ctx context.Context) {
	if p.status == nil {
		return
	}
	s, err := p.status(ctx)
	if err != nil {
		p.logger.Error(err, "Failed to read status for snapshot")
		return
	}
	p.publish(ctx, p.topics.Status(p.site), s)
}

func (p *Publisher) publish(ctx context.Context, topic string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		p.logger.Error(err, "Failed to encode telemetry", "topic", topic)
		return
	}
	if err := p.client.Publish(ctx, topic, 1, false, payload); err != nil {
		p.logger.Error(err, "Failed to publish telemetry", "topic", topic)
	}
}
