package topic

import (
	"fmt"
)

// Topic segments shared by the Lesedi server and its subscribers.
const (
	// SuffixEvents carries coordinator transitions and sequence steps.
	// Structure: {root}/events/{site}
	SuffixEvents = "events"

	// SuffixStatus carries periodic status snapshots.
	// Structure: {root}/status/{site}
	SuffixStatus = "status"

	// SuffixOnline carries the retained online/offline marker.
	// Structure: {root}/online/{site}
	SuffixOnline = "online"
)

// TopicBuilder builds topic strings under a fixed root namespace.
type TopicBuilder struct {
	// root is the base namespace for all topics (e.g. "lesedi").
	root string
}

// NewTopicBuilder creates a new instance of TopicBuilder with the specified root namespace.
func NewTopicBuilder(root string) *TopicBuilder {
	return &TopicBuilder{root: root}
}

// Events returns the event topic for a site.
func (b *TopicBuilder) Events(site string) string {
	return b.build(SuffixEvents, site)
}

// EventsWildcard matches the events of every site.
func (b *TopicBuilder) EventsWildcard() string {
	return b.build(SuffixEvents, Wildcard)
}

// Status returns the status snapshot topic for a site.
func (b *TopicBuilder) Status(site string) string {
	return b.build(SuffixStatus, site)
}

// StatusWildcard matches the status snapshots of every site.
func (b *TopicBuilder) StatusWildcard() string {
	return b.build(SuffixStatus, Wildcard)
}

// Online returns the retained presence topic for a site.
func (b *TopicBuilder) Online(site string) string {
	return b.build(SuffixOnline, site)
}

// Pattern: {root}/{suffix}/{identifier}
func (b *TopicBuilder) build(suffix, id string) string {
	return fmt.Sprintf("%s/%s/%s", b.root, suffix, id)
}
