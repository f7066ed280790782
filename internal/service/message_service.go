package service

import (
	"context"
	"strings"
	"time"

	"github.com/d60-Lab/cinefeed/internal/model"
	"github.com/d60-Lab/cinefeed/internal/repository"
)

// MessageView 私信 + 两端用户摘要
type MessageView struct {
	ID       string            `json:"id"`
	Sender   model.UserSummary `json:"sender"`
	Receiver model.UserSummary `json:"receiver"`
	Content  string            `json:"content"`
	SentAt   time.Time         `json:"sentAt"`
	IsRead   bool              `json:"isRead"`
}

// MessageService 私信收发
type MessageService interface {
	Send(ctx context.Context, senderID, receiverID, content string) (*MessageView, error)
	// Conversation 两人全部往来，按发送时间升序
	Conversation(ctx context.Context, userID1, userID2 string) ([]MessageView, error)
	// Inbox 收件箱：发给 userID 的全部私信，新的在前
	Inbox(ctx context.Context, userID string) ([]MessageView, error)
	// MarkRead 读会话时把对方发来的未读置为已读
	MarkRead(ctx context.Context, receiverID, senderID string) error
}

type messageService struct {
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
}

func NewMessageService(msgRepo repository.MessageRepository, userRepo repository.UserRepository) MessageService {
	return &messageService{msgRepo: msgRepo, userRepo: userRepo}
}

func (s *messageService) Send(ctx context.Context, senderID, receiverID, content string) (*MessageView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	sender, err := s.userRepo.FindByID(ctx, senderID)
	if err != nil {
		return nil, translateUserLookup(err)
	}
	receiver, err := s.userRepo.FindByID(ctx, receiverID)
	if err != nil {
		return nil, translateUserLookup(err)
	}

	m := &model.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		SentAt:     time.Now(),
	}
	if err := s.msgRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return &MessageView{
		ID:       m.ID,
		Sender:   sender.Summary(),
		Receiver: receiver.Summary(),
		Content:  m.Content,
		SentAt:   m.SentAt,
		IsRead:   m.IsRead,
	}, nil
}

func (s *messageService) Conversation(ctx context.Context, userID1, userID2 string) ([]MessageView, error) {
	msgs, err := s.msgRepo.ListBetween(ctx, userID1, userID2)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, msgs, map[string]struct{}{userID1: {}, userID2: {}})
}

func (s *messageService) Inbox(ctx context.Context, userID string) ([]MessageView, error) {
	msgs, err := s.msgRepo.ListByReceiver(ctx, userID)
	if err != nil {
		return nil, err
	}
	userSet := map[string]struct{}{userID: {}}
	for _, m := range msgs {
		userSet[m.SenderID] = struct{}{}
	}
	return s.toViews(ctx, msgs, userSet)
}

func (s *messageService) toViews(ctx context.Context, msgs []*model.Message, userSet map[string]struct{}) ([]MessageView, error) {
	users, err := s.userRepo.FindByIDs(ctx, keys(userSet))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.UserSummary, len(users))
	for _, u := range users {
		byID[u.ID] = u.Summary()
	}

	views := make([]MessageView, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, MessageView{
			ID:       m.ID,
			Sender:   byID[m.SenderID],
			Receiver: byID[m.ReceiverID],
			Content:  m.Content,
			SentAt:   m.SentAt,
			IsRead:   m.IsRead,
		})
	}
	return views, nil
}

func (s *messageService) MarkRead(ctx context.Context, receiverID, senderID string) error {
	return s.msgRepo.MarkRead(ctx, receiverID, senderID)
}
