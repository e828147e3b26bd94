package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	genericapiserver "k8s.io/apiserver/pkg/server"

	v1 "github.com/lesedi-io/lesedi/api/v1"
	"github.com/lesedi-io/lesedi/pkg/mqtt"
	"github.com/lesedi-io/lesedi/pkg/mqtt/topic"
)

func (c *cli) monitorCommand() *cobra.Command {
	var withStatus bool
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Print coordinator events published over MQTT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o := c.opts.MqttOptions
			if !o.Enabled() {
				return fmt.Errorf("--mqtt.broker is required")
			}
			ctx := genericapiserver.SetupSignalContext()
			client, err := mqtt.NewClient(o.ToClientConfig())
			if err != nil {
				return err
			}
			if err := client.Start(ctx); err != nil {
				return err
			}
			defer client.Disconnect(context.Background())
			if err := client.AwaitConnection(ctx); err != nil {
				return err
			}
			return monitor(ctx, client, topic.NewTopicBuilder(o.TopicRoot), o.Site, withStatus, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&withStatus, "status", false, "Also print the periodic status snapshots.")
	return cmd
}

// monitor prints events for site until ctx is done. An empty site follows
// every site.
func monitor(ctx context.Context, client mqtt.Client, topics *topic.TopicBuilder, site string, withStatus bool, w io.Writer) error {
	var mu sync.Mutex
	emit := func(line string) {
		mu.Lock()
		defer mu.Unlock()
		_, _ = fmt.Fprintln(w, line)
	}

	events := topics.EventsWildcard()
	status := topics.StatusWildcard()
	if site != "" {
		events, status = topics.Events(site), topics.Status(site)
	}

	err := client.Subscribe(ctx, events, 1, func(_ context.Context, _ string, payload []byte) {
		var e v1.Event
		if err := json.Unmarshal(payload, &e); err != nil {
			emit("malformed event: " + err.Error())
			return
		}
		emit(formatEvent(e))
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", events, err)
	}
	if withStatus {
		err := client.Subscribe(ctx, status, 0, func(_ context.Context, _ string, payload []byte) {
			var s v1.Status
			if err := json.Unmarshal(payload, &s); err != nil {
				emit("malformed status: " + err.Error())
				return
			}
			emit(formatStatus(s))
		})
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", status, err)
		}
	}

	<-ctx.Done()
	return nil
}

func formatEvent(e v1.Event) string {
	parts := []string{e.Time.Local().Format(time.TimeOnly), string(e.Type)}
	switch e.Type {
	case v1.EventTransition:
		parts = append(parts, e.From+" -> "+e.To)
	case v1.EventStep:
		parts = append(parts, e.Sequence+": "+e.Step)
	case v1.EventSequenceFailed:
		parts = append(parts, fmt.Sprintf("%s failed at %s: %s", e.Sequence, e.Step, e.Message))
		return strings.Join(parts, "  ")
	}
	if e.Message != "" && e.Type != v1.EventTransition {
		parts = append(parts, e.Message)
	}
	return strings.Join(parts, "  ")
}

func formatStatus(s v1.Status) string {
	return fmt.Sprintf("status  %s  alt %s az %s  dome %s  covers %s  stop %s",
		s.State, deg(s.TelescopeAlt), deg(s.TelescopeAz), deg(s.DomeAngle), coversState(&s), yesNo(s.Stopped))
}
