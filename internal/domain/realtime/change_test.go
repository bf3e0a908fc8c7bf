//go:build unit
// +build unit

package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessagesTopic(t *testing.T) {
	topic := MessagesTopic("c1")
	assert.Equal(t, "messages:c1", topic)

	id, ok := ConversationOf(topic)
	assert.True(t, ok)
	assert.Equal(t, "c1", id)

	_, ok = ConversationOf("messages:")
	assert.False(t, ok)
	_, ok = ConversationOf(TopicNotifications)
	assert.False(t, ok)
}

func TestNewInsert(t *testing.T) {
	c := NewInsert(TopicNotifications, TableNotifications, map[string]string{"id": "n1"})
	assert.Equal(t, EventInsert, c.Type)
	assert.Equal(t, TableNotifications, c.Table)
	assert.False(t, c.CommitTimestamp.IsZero())
}
