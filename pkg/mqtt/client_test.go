package mqtt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicsMatch(t *testing.T) {
	tests := []struct {
		filter string
		topic  string
		want   bool
	}{
		{"lesedi/v1/events/sutherland", "lesedi/v1/events/sutherland", true},
		{"lesedi/v1/events/+", "lesedi/v1/events/sutherland", true},
		{"lesedi/v1/events/+", "lesedi/v1/status/sutherland", false},
		{"lesedi/v1/#", "lesedi/v1/status/sutherland", true},
		{"lesedi/v1/+", "lesedi/v1/events/sutherland", false},
		{"lesedi/v1/events/sutherland", "lesedi/v1/events/other", false},
	}

	for _, tt := range tests {
		t.Run(tt.filter+"=>"+tt.topic, func(t *testing.T) {
			assert.Equal(t, tt.want, topicsMatch(tt.filter, tt.topic))
		})
	}
}

func TestTopicFilterStripsSharedPrefix(t *testing.T) {
	assert.Equal(t, "lesedi/v1/events/+", topicFilter("$share/monitors/lesedi/v1/events/+"))
	assert.Equal(t, "lesedi/v1/events/+", topicFilter("lesedi/v1/events/+"))
}

func TestNewClientValidates(t *testing.T) {
	_, err := NewClient(nil)
	require.Error(t, err)

	_, err = NewClient(&ClientConfig{BrokerURL: "http://broker:80"})
	require.Error(t, err)

	c, err := NewClient(&ClientConfig{BrokerURL: "tcp://127.0.0.1:1883", ClientID: "lesedi"})
	require.NoError(t, err)
	assert.False(t, c.IsConnected())
}
