package service

import (
	"context"
	"strings"
	"time"

	"printing-support-be/internal/constant"
	"printing-support-be/internal/dto"
	"printing-support-be/internal/entity"
	"printing-support-be/internal/pkg/logger"
	"printing-support-be/internal/repository/specification"
	"printing-support-be/internal/repository/unitofwork"
	"printing-support-be/pkg/llm"

	"github.com/google/uuid"
)

type IChatService interface {
	ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error)
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (uuid.UUID, error)
	ListMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.MessageResponse, error)
	AppendMessage(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, role, content string) (*dto.AppendMessageResponse, error)
}

type chatService struct {
	uowFactory   unitofwork.RepositoryFactory
	llmProvider  llm.LLMProvider
	publisher    IPublisherService
	systemPrompt string
	log          logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	publisher IPublisherService,
	systemPrompt string,
	log logger.ILogger,
) IChatService {
	if systemPrompt == "" {
		systemPrompt = constant.SupportAgentPromptV2
	}
	return &chatService{
		uowFactory:   uowFactory,
		llmProvider:  llmProvider,
		publisher:    publisher,
		systemPrompt: systemPrompt,
		log:          log,
	}
}

func (s *chatService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "last_message_at", Desc: true},
		specification.Limit{N: constant.SessionListLimit},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SessionResponse, len(sessions))
	for i, session := range sessions {
		res[i] = sessionToResponse(session)
	}
	return res, nil
}

func (s *chatService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	session := &entity.ChatSession{
		Id:            uuid.New(),
		UserId:        userId,
		Title:         NormalizeSessionTitle(req.Title),
		CreatedAt:     now,
		UpdatedAt:     now,
		LastMessageAt: now,
	}

	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	return sessionToResponse(session), nil
}

// DeleteSession removes a session and its messages in one transaction.
// Zero deleted rows means the session is absent or belongs to someone
// else; the caller cannot tell which.
func (s *chatService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (uuid.UUID, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return uuid.Nil, err
	}
	defer uow.Rollback()

	if _, err := uow.ChatMessageRepository().Delete(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OwnedBy{UserID: userId},
	); err != nil {
		return uuid.Nil, err
	}

	rows, err := uow.ChatSessionRepository().Delete(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return uuid.Nil, err
	}
	if rows == 0 {
		return uuid.Nil, ErrSessionNotFound
	}

	if err := uow.Commit(); err != nil {
		return uuid.Nil, err
	}
	return sessionId, nil
}

func (s *chatService) ListMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.verifyOwnership(ctx, uow, userId, sessionId); err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
		specification.Limit{N: constant.MessageListLimit},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.MessageResponse, len(messages))
	for i, msg := range messages {
		res[i] = messageToResponse(msg)
	}
	return res, nil
}

// AppendMessage persists a message after re-verifying session ownership.
// A user turn additionally runs the completion relay: the user message
// is inserted first and survives even if the upstream call fails, in
// which case no assistant row is written and the error propagates.
func (s *chatService) AppendMessage(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, role, content string) (*dto.AppendMessageResponse, error) {
	if role == "" {
		role = constant.ChatMessageRoleUser
	}
	if !constant.IsValidRole(role) {
		return nil, ErrInvalidRole
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.verifyOwnership(ctx, uow, userId, sessionId); err != nil {
		return nil, err
	}

	inserted, err := s.insertMessage(ctx, uow, userId, sessionId, role, content)
	if err != nil {
		return nil, err
	}

	if role != constant.ChatMessageRoleUser {
		return &dto.AppendMessageResponse{Message: messageToResponse(inserted)}, nil
	}

	reply, err := s.generateReply(ctx, uow, userId, sessionId)
	if err != nil {
		s.log.Error("chat", "completion failed, user message kept", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	assistant, err := s.insertMessage(ctx, uow, userId, sessionId, constant.ChatMessageRoleAssistant, reply)
	if err != nil {
		return nil, err
	}

	return &dto.AppendMessageResponse{
		UserMessage:      messageToResponse(inserted),
		AssistantMessage: messageToResponse(assistant),
	}, nil
}

// verifyOwnership is the ownership filter applied immediately before
// every read or write that touches a session.
func (s *chatService) verifyOwnership(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) error {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	return nil
}

// insertMessage appends one row and touches the parent session. The two
// statements are deliberately not one transaction: losing a timestamp
// bump is acceptable, losing a message is not.
func (s *chatService) insertMessage(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID, role, content string) (*entity.ChatMessage, error) {
	msg := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: sessionId,
		UserId:    userId,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := uow.ChatMessageRepository().Create(ctx, msg); err != nil {
		return nil, err
	}

	if err := uow.ChatSessionRepository().Touch(ctx, sessionId); err != nil {
		s.log.Warn("chat", "failed to touch session timestamps", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
	}

	s.publisher.PublishChatActivity(ctx, msg)

	return msg, nil
}

// generateReply sends the recent history window plus the behavioral
// prompt upstream and never returns an empty reply.
func (s *chatService) generateReply(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (string, error) {
	recent, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: constant.HistoryWindowSize},
	)
	if err != nil {
		return "", err
	}

	history := make([]llm.Message, 0, len(recent)+1)
	history = append(history, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: s.systemPrompt,
	})
	// recent is newest-first; reverse into chronological order.
	for i := len(recent) - 1; i >= 0; i-- {
		history = append(history, llm.Message{
			Role:    recent[i].Role,
			Content: recent[i].Content,
		})
	}

	reply, err := s.llmProvider.Chat(ctx, history,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(1024),
	)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(reply) == "" {
		return constant.AssistantFallbackReply, nil
	}
	return reply, nil
}

// NormalizeSessionTitle trims, defaults and truncates a client-supplied
// title to the 60-rune cap.
func NormalizeSessionTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return constant.DefaultSessionTitle
	}
	runes := []rune(title)
	if len(runes) > constant.SessionTitleMax {
		title = string(runes[:constant.SessionTitleMax])
	}
	if strings.TrimSpace(title) == "" {
		return constant.DefaultSessionTitle
	}
	return title
}

func sessionToResponse(s *entity.ChatSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:            s.Id,
		Title:         s.Title,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		LastMessageAt: s.LastMessageAt,
	}
}

func messageToResponse(m *entity.ChatMessage) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:        m.Id,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
