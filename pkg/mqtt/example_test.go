package mqtt_test

import (
	"context"
	"fmt"
	"time"

	"github.com/lesedi-io/lesedi/pkg/log"
	"github.com/lesedi-io/lesedi/pkg/mqtt"
	"github.com/lesedi-io/lesedi/pkg/mqtt/topic"
)

// ExampleClient shows a subscriber following the events of one site.
func ExampleClient() {
	topics := topic.NewTopicBuilder("lesedi")

	cfg := &mqtt.ClientConfig{
		BrokerURL:      "tcp://localhost:1883",
		ClientID:       "lesedi-monitor-example",
		KeepAlive:      60,
		ConnectTimeout: 5 * time.Second,
		CleanStart:     true,
	}

	client, err := mqtt.NewClient(cfg)
	if err != nil {
		log.Error(err, "Failed to create MQTT client")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Start(ctx); err != nil {
		log.Error(err, "Failed to start MQTT client")
		return
	}
	defer client.Disconnect(context.Background())

	if err := client.AwaitConnection(ctx); err != nil {
		log.Error(err, "Broker not reachable")
		return
	}

	onEvent := func(ctx context.Context, topic string, payload []byte) {
		fmt.Printf("%s: %s\n", topic, payload)
	}
	if err := client.Subscribe(ctx, topics.EventsWildcard(), 1, onEvent); err != nil {
		log.Error(err, "Subscribe failed")
		return
	}

	<-ctx.Done()
}
