//go:build unit
// +build unit

package v1

import (
	"context"
	"testing"

	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/domain/notifications"
	"github.com/Tsilavina4274/odyssea/internal/domain/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecordPublisher_MapsRecords(t *testing.T) {
	message := &messaging.Message{ID: testResourceID, ConversationID: testResourceID, SenderID: testStudentID, Content: "Salut"}
	notification := &notifications.Notification{ID: testResourceID, UserID: testStudentID, Type: notifications.TypeMessage, Title: "Nouveau message"}

	tests := []struct {
		name   string
		change realtime.Change
		check  func(t *testing.T, record interface{})
	}{
		{
			name:   "message",
			change: realtime.NewInsert(realtime.MessagesTopic(testResourceID), realtime.TableMessages, message),
			check: func(t *testing.T, record interface{}) {
				response, ok := record.(*MessageResponse)
				if assert.True(t, ok) {
					assert.Equal(t, "Salut", response.Content)
					assert.Equal(t, []string{}, response.Attachments)
				}
			},
		},
		{
			name:   "notification",
			change: realtime.NewInsert(realtime.TopicNotifications, realtime.TableNotifications, notification),
			check: func(t *testing.T, record interface{}) {
				_, ok := record.(*NotificationResponse)
				assert.True(t, ok)
			},
		},
		{
			name:   "other",
			change: realtime.NewInsert(realtime.TopicNotifications, "custom", map[string]string{"k": "v"}),
			check: func(t *testing.T, record interface{}) {
				assert.Equal(t, map[string]string{"k": "v"}, record)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := new(MockPublisher)
			recipients := []string{testStudentID}
			next.On("Publish", mock.Anything, mock.Anything, recipients).Run(func(args mock.Arguments) {
				change := args.Get(1).(realtime.Change)
				assert.Equal(t, tt.change.Topic, change.Topic)
				tt.check(t, change.Record)
			}).Return()

			NewRecordPublisher(next).Publish(context.Background(), tt.change, recipients)

			next.AssertExpectations(t)
		})
	}
}
