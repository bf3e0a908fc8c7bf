package realtime

import (
	"context"
	"strings"
	"time"
)

// Topics a connection can subscribe to
const (
	TopicNotifications = "notifications"
	TopicConversations = "conversations"
	messagesPrefix     = "messages:"
)

// Tables whose inserts are published
const (
	TableMessages      = "messages"
	TableNotifications = "notifications"
	TableConversations = "conversations"
)

// EventInsert is the only change type emitted
const EventInsert = "INSERT"

// MessagesTopic is the topic of the messages of one conversation
func MessagesTopic(conversationID string) string {
	return messagesPrefix + conversationID
}

// ConversationOf returns the conversation id of a messages topic
func ConversationOf(topic string) (string, bool) {
	if !strings.HasPrefix(topic, messagesPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(topic, messagesPrefix)
	return id, id != ""
}

// Change is a committed row change delivered to subscribers
type Change struct {
	Type            string      `json:"type"`
	Topic           string      `json:"topic"`
	Table           string      `json:"table"`
	Record          interface{} `json:"record"`
	CommitTimestamp time.Time   `json:"commit_timestamp"`
}

// NewInsert builds an INSERT change for table on topic
func NewInsert(topic, table string, record interface{}) Change {
	return Change{
		Type:            EventInsert,
		Topic:           topic,
		Table:           table,
		Record:          record,
		CommitTimestamp: time.Now().UTC(),
	}
}

// Publisher fans changes out to the connections of the recipients.
type Publisher interface {
	Publish(ctx context.Context, change Change, recipients []string)
}

// SubscriptionAuthorizer decides whether a user may subscribe to a topic.
type SubscriptionAuthorizer interface {
	Authorize(ctx context.Context, userID, topic string) error
}
