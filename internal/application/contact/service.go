package contact

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/pkg/id"
	"github.com/portfolio-api/internal/pkg/validate"
)

// Service receives contact-form submissions from the public site and lets the
// admin back-office triage them. Submissions fan out an operator alert; alert
// failures are logged, never surfaced to the visitor.
type Service interface {
	Submit(ctx context.Context, req domain.CreateContactRequest) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	Get(ctx context.Context, messageID string) (*domain.ContactMessage, error)
	MarkRead(ctx context.Context, messageID string) error
	Delete(ctx context.Context, messageID string) error
}

type contactStore interface {
	Put(ctx context.Context, m *domain.ContactMessage) error
	Get(ctx context.Context, messageID string) (*domain.ContactMessage, error)
	Scan(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, messageID string) error
	HardDelete(ctx context.Context, messageID string) error
}

type alertPublisher interface {
	PublishAlert(ctx context.Context, subject, message string) error
}

type service struct {
	store  contactStore
	alerts alertPublisher // nil when no topic is configured
}

func NewService(store contactStore, alerts alertPublisher) Service {
	return &service{store: store, alerts: alerts}
}

func (s *service) Submit(ctx context.Context, req domain.CreateContactRequest) (*domain.ContactMessage, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}

	m := &domain.ContactMessage{
		MessageID: id.New(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Body,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Put(ctx, m); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}

	if s.alerts != nil {
		subject := fmt.Sprintf("New contact message from %s", req.Name)
		body := fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s", req.Name, req.Email, req.Subject, req.Body)
		if err := s.alerts.PublishAlert(ctx, subject, body); err != nil {
			slog.Error("contact alert publish failed", "message_id", m.MessageID, "error", err)
		}
	}
	return m, nil
}

// List returns all messages newest-first.
func (s *service) List(ctx context.Context) ([]domain.ContactMessage, error) {
	msgs, err := s.store.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].CreatedAt.After(msgs[j].CreatedAt) })
	return msgs, nil
}

func (s *service) Get(ctx context.Context, messageID string) (*domain.ContactMessage, error) {
	return s.store.Get(ctx, messageID)
}

func (s *service) MarkRead(ctx context.Context, messageID string) error {
	if _, err := s.store.Get(ctx, messageID); err != nil {
		return err
	}
	return s.store.MarkRead(ctx, messageID)
}

func (s *service) Delete(ctx context.Context, messageID string) error {
	if _, err := s.store.Get(ctx, messageID); err != nil {
		return err
	}
	return s.store.HardDelete(ctx, messageID)
}
