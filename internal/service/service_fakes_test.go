package service

import (
	"context"
	"sort"
	"time"

	"printing-support-be/internal/entity"
	"printing-support-be/internal/pkg/logger"
	"printing-support-be/internal/repository/contract"
	"printing-support-be/internal/repository/specification"
	"printing-support-be/internal/repository/unitofwork"
	"printing-support-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory store shared by the fake repositories. Specifications are
// interpreted structurally so service-level filtering and ordering
// behave like the real GORM layer.

type fakeStore struct {
	users    []*entity.User
	sessions []*entity.ChatSession
	messages []*entity.ChatMessage
}

type sessionFilter struct {
	byID        *uuid.UUID
	ownedBy     *uuid.UUID
	bySessionID *uuid.UUID
	byEmail     string
	byPhone     string
	orderField  string
	orderDesc   bool
	limit       int
}

func parseSpecs(specs []specification.Specification) sessionFilter {
	var f sessionFilter
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			id := s.ID
			f.byID = &id
		case specification.OwnedBy:
			id := s.UserID
			f.ownedBy = &id
		case specification.BySessionID:
			id := s.SessionID
			f.bySessionID = &id
		case specification.ByEmail:
			f.byEmail = s.Email
		case specification.ByPhone:
			f.byPhone = s.Phone
		case specification.OrderBy:
			f.orderField = s.Field
			f.orderDesc = s.Desc
		case specification.Limit:
			f.limit = s.N
		}
	}
	return f
}

// --- user repository ---

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.users = append(r.store.users, user)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	f := parseSpecs(specs)
	for _, u := range r.store.users {
		if f.byEmail != "" && u.Email != f.byEmail {
			continue
		}
		if f.byPhone != "" && u.Phone != f.byPhone {
			continue
		}
		if f.byID != nil && u.Id != *f.byID {
			continue
		}
		return u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.users)), nil
}

// --- session repository ---

type fakeSessionRepo struct{ store *fakeStore }

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	r.store.sessions = append(r.store.sessions, session)
	return nil
}

func (r *fakeSessionRepo) matches(s *entity.ChatSession, f sessionFilter) bool {
	if f.byID != nil && s.Id != *f.byID {
		return false
	}
	if f.ownedBy != nil && s.UserId != *f.ownedBy {
		return false
	}
	return true
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	f := parseSpecs(specs)
	for _, s := range r.store.sessions {
		if r.matches(s, f) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	f := parseSpecs(specs)
	var out []*entity.ChatSession
	for _, s := range r.store.sessions {
		if r.matches(s, f) {
			out = append(out, s)
		}
	}
	if f.orderField == "last_message_at" {
		sort.SliceStable(out, func(i, j int) bool {
			if f.orderDesc {
				return out[i].LastMessageAt.After(out[j].LastMessageAt)
			}
			return out[i].LastMessageAt.Before(out[j].LastMessageAt)
		})
	}
	if f.limit > 0 && len(out) > f.limit {
		out = out[:f.limit]
	}
	return out, nil
}

func (r *fakeSessionRepo) Touch(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	for _, s := range r.store.sessions {
		if s.Id == id {
			s.UpdatedAt = now
			s.LastMessageAt = now
		}
	}
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	f := parseSpecs(specs)
	var kept []*entity.ChatSession
	var deleted int64
	for _, s := range r.store.sessions {
		if r.matches(s, f) {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	r.store.sessions = kept
	return deleted, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.sessions)), nil
}

// --- message repository ---

type fakeMessageRepo struct{ store *fakeStore }

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.store.messages = append(r.store.messages, message)
	return nil
}

func (r *fakeMessageRepo) matches(m *entity.ChatMessage, f sessionFilter) bool {
	if f.bySessionID != nil && m.SessionId != *f.bySessionID {
		return false
	}
	if f.ownedBy != nil && m.UserId != *f.ownedBy {
		return false
	}
	return true
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	f := parseSpecs(specs)
	var out []*entity.ChatMessage
	for _, m := range r.store.messages {
		if r.matches(m, f) {
			out = append(out, m)
		}
	}
	if f.orderField == "created_at" {
		sort.SliceStable(out, func(i, j int) bool {
			if f.orderDesc {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	}
	if f.limit > 0 && len(out) > f.limit {
		out = out[:f.limit]
	}
	return out, nil
}

func (r *fakeMessageRepo) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	f := parseSpecs(specs)
	var kept []*entity.ChatMessage
	var deleted int64
	for _, m := range r.store.messages {
		if r.matches(m, f) {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	r.store.messages = kept
	return deleted, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.messages)), nil
}

// --- unit of work ---

type fakeUnitOfWork struct{ store *fakeStore }

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return &fakeSessionRepo{store: u.store}
}

func (u *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return &fakeMessageRepo{store: u.store}
}

type fakeFactory struct{ store *fakeStore }

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

// --- llm provider ---

type fakeLLM struct {
	reply   string
	err     error
	history []llm.Message
}

func (p *fakeLLM) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	p.history = messages
	return p.reply, p.err
}

func (p *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.reply, p.err
}

// --- publisher ---

type fakePublisher struct {
	published []*entity.ChatMessage
}

func (p *fakePublisher) PublishChatActivity(ctx context.Context, msg *entity.ChatMessage) {
	p.published = append(p.published, msg)
}

// --- logger ---

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

var _ logger.ILogger = nopLogger{}
