package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/cinefeed/internal/model"
)

type MessageRepository interface {
	Create(ctx context.Context, m *model.Message) error
	// ListBetween 两人会话，按发送时间升序
	ListBetween(ctx context.Context, userID1, userID2 string) ([]*model.Message, error)
	ListByReceiver(ctx context.Context, receiverID string) ([]*model.Message, error)
	// MarkRead 把 sender 发给 receiver 的未读消息全部置为已读
	MarkRead(ctx context.Context, receiverID, senderID string) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository { return &messageRepository{db: db} }

func (r *messageRepository) Create(ctx context.Context, m *model.Message) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *messageRepository) ListBetween(ctx context.Context, userID1, userID2 string) ([]*model.Message, error) {
	var res []*model.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID1, userID2, userID2, userID1).
		Order("sent_at ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (r *messageRepository) ListByReceiver(ctx context.Context, receiverID string) ([]*model.Message, error) {
	var res []*model.Message
	err := r.db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("sent_at DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (r *messageRepository) MarkRead(ctx context.Context, receiverID, senderID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", receiverID, senderID, false).
		Update("is_read", true).Error
}
