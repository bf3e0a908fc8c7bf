package v1

import (
	"context"

	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/realtime"
)

type recordPublisher struct {
	next realtime.Publisher
}

// NewRecordPublisher wraps next so that published records carry the same JSON
// shape as the REST responses.
func NewRecordPublisher(next realtime.Publisher) realtime.Publisher {
	return &recordPublisher{next: next}
}

func (p *recordPublisher) Publish(ctx context.Context, change realtime.Change, recipients []string) {
	change.Record = toRecord(change.Record)
	p.next.Publish(ctx, change, recipients)
}

func toRecord(record interface{}) interface{} {
	switch r := record.(type) {
	case *messaging.Message:
		return toMessageResponse(r)
	case *messaging.Conversation:
		return toConversationResponse(r)
	case *notifications.Notification:
		return toNotificationResponse(r)
	default:
		return record
	}
}
