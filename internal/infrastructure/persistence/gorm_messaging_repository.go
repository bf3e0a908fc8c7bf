package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tsilavina4274/odyssea/internal/domain/messaging"
	"github.com/Tsilavina4274/odyssea/internal/domain/shared"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence/models"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormConversationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormConversationRepository creates a new GORM-based ConversationRepository implementation
func NewGormConversationRepository(db *gorm.DB, logger logger.Logger) (messaging.ConversationRepository, error) {
	return &gormConversationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormConversationRepository) Create(ctx context.Context, conversation *messaging.Conversation, participants []*messaging.Participant) error {
	if err := conversation.Validate(); err != nil {
		return shared.Invalid(err)
	}

	model := &models.ConversationModel{}
	model.FromDomain(conversation)

	participantModels := make([]*models.ParticipantModel, len(participants))
	for i, p := range participants {
		participantModels[i] = &models.ParticipantModel{}
		participantModels[i].FromDomain(p)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return wrapWriteError(err, "create", "conversation")
		}
		if len(participantModels) > 0 {
			if err := tx.Create(&participantModels).Error; err != nil {
				return wrapWriteError(err, "create", "participants")
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created conversation with id ", conversation.ID)
	return nil
}

func (r *gormConversationRepository) GetByID(ctx context.Context, conversationID string) (*messaging.Conversation, error) {
	var model models.ConversationModel
	if err := r.db.WithContext(ctx).Where("id = ?", conversationID).First(&model).Error; err != nil {
		return nil, wrapFetchError(err, "conversation", conversationID)
	}
	return model.ToDomain(), nil
}

func (r *gormConversationRepository) ListByUser(ctx context.Context, userID string) ([]*messaging.Conversation, error) {
	var modelList []*models.ConversationModel
	err := r.db.WithContext(ctx).
		Joins("JOIN conversation_participants cp ON cp.conversation_id = conversations.id").
		Where("cp.user_id = ?", userID).
		Order("conversations.updated_at desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversations: %w", err)
	}

	domainList := make([]*messaging.Conversation, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormConversationRepository) ListParticipants(ctx context.Context, conversationIDs []string) ([]*messaging.Participant, error) {
	if len(conversationIDs) == 0 {
		return nil, nil
	}

	var modelList []*models.ParticipantModel
	err := r.db.WithContext(ctx).
		Where("conversation_id IN ?", conversationIDs).
		Order("joined_at").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch participants: %w", err)
	}

	domainList := make([]*messaging.Participant, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormConversationRepository) GetParticipant(ctx context.Context, conversationID, userID string) (*messaging.Participant, error) {
	var model models.ParticipantModel
	err := r.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		First(&model).Error
	if err != nil {
		return nil, wrapFetchError(err, "participant", userID)
	}
	return model.ToDomain(), nil
}

func (r *gormConversationRepository) Touch(ctx context.Context, conversationID string, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&models.ConversationModel{}).
		Where("id = ?", conversationID).
		UpdateColumn("updated_at", at).Error
	if err != nil {
		return fmt.Errorf("failed to touch conversation: %w", err)
	}
	return nil
}

func (r *gormConversationRepository) MarkRead(ctx context.Context, conversationID, userID string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.ParticipantModel{}).
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		UpdateColumn("last_read_at", at)
	if result.Error != nil {
		return fmt.Errorf("failed to mark conversation as read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("participant", userID)
	}
	return nil
}

func (r *gormConversationRepository) FindDirect(ctx context.Context, userID, otherUserID string) (*messaging.Conversation, error) {
	db := r.db.WithContext(ctx)
	ofUser := db.Model(&models.ParticipantModel{}).Select("conversation_id").Where("user_id = ?", userID)
	ofOther := db.Model(&models.ParticipantModel{}).Select("conversation_id").Where("user_id = ?", otherUserID)

	var model models.ConversationModel
	err := db.
		Where("is_group = ?", false).
		Where("id IN (?)", ofUser).
		Where("id IN (?)", ofOther).
		Where("(SELECT COUNT(*) FROM conversation_participants p WHERE p.conversation_id = conversations.id) = 2").
		Order("created_at").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch direct conversation: %w", err)
	}
	return model.ToDomain(), nil
}

type gormMessageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMessageRepository creates a new GORM-based MessageRepository implementation
func NewGormMessageRepository(db *gorm.DB, logger logger.Logger) (messaging.MessageRepository, error) {
	return &gormMessageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMessageRepository) Create(ctx context.Context, message *messaging.Message) error {
	if err := message.Validate(); err != nil {
		return shared.Invalid(err)
	}

	model := &models.MessageModel{}
	model.FromDomain(message)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrapWriteError(err, "create", "message")
	}

	r.logger.Info("Created message with id ", message.ID)
	return nil
}

func (r *gormMessageRepository) List(ctx context.Context, conversationID string, limit, offset int) ([]*messaging.Message, error) {
	var modelList []*models.MessageModel
	dbQuery := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at asc")
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	if offset > 0 {
		dbQuery = dbQuery.Offset(offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	domainList := make([]*messaging.Message, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormMessageRepository) Last(ctx context.Context, conversationID string) (*messaging.Message, error) {
	var modelList []*models.MessageModel
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at desc").
		Limit(1).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch last message: %w", err)
	}
	if len(modelList) == 0 {
		return nil, nil
	}
	return modelList[0].ToDomain(), nil
}

func (r *gormMessageRepository) CountUnread(ctx context.Context, conversationID, userID string, since *time.Time) (int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&models.MessageModel{}).
		Where("conversation_id = ? AND sender_id <> ?", conversationID, userID)
	if since != nil {
		dbQuery = dbQuery.Where("created_at > ?", *since)
	}

	var count int64
	if err := dbQuery.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}
