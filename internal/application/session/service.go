package session

import (
	"context"
	"fmt"
	"time"

	"github.com/portfolio-api/internal/application/auth"
	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/pkg/id"
	"github.com/portfolio-api/internal/pkg/token"
)

// Service exchanges a verified PIN for a signed session and manages its
// lifecycle: refresh-token rotation, logout and introspection.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetCurrent(ctx context.Context, sessionID string) (*domain.Session, error)
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Pin   string `json:"pin" validate:"required"`
}

type LoginResult struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Session      *domain.Session `json:"session"`
}

type sessionStore interface {
	Put(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Update(ctx context.Context, sessionID string, updates map[string]interface{}) error
	GetByRefreshToken(ctx context.Context, token string) (*domain.Session, error)
	RotateRefreshToken(ctx context.Context, sessionID, newToken string, newExpiry int64) error
}

type pinVerifier interface {
	VerifyPin(ctx context.Context, email, candidate string) (*auth.VerifyPinResult, error)
}

type tokenSigner interface {
	Sign(email, role, sessionID string) (string, error)
}

type service struct {
	store         sessionStore
	verifier      pinVerifier
	signer        tokenSigner
	refreshExpiry time.Duration
}

func NewService(store sessionStore, verifier pinVerifier, signer tokenSigner, refreshExpiry time.Duration) Service {
	return &service{store: store, verifier: verifier, signer: signer, refreshExpiry: refreshExpiry}
}

// Login verifies the PIN exactly once; on success the PIN is already consumed,
// so a store failure past that point means the caller must request a new one.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	res, err := s.verifier.VerifyPin(ctx, req.Email, req.Pin)
	if err != nil {
		return nil, err
	}
	if !res.Verified {
		return nil, fmt.Errorf("%s: %w", res.Message, domain.ErrUnauthorized)
	}

	refreshToken, err := token.NewRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sess := &domain.Session{
		SessionID:        id.New(),
		Email:            auth.NormalizeEmail(req.Email),
		Enable:           true,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: now.Add(s.refreshExpiry).Unix(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.signer.Sign(sess.Email, domain.RoleAdmin, sess.SessionID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &LoginResult{AccessToken: access, RefreshToken: sess.RefreshToken, Session: sess}, nil
}

// Refresh rotates the refresh token so each one is single-use.
func (s *service) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	sess, err := s.store.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if time.Now().Unix() > sess.RefreshExpiresAt {
		return nil, fmt.Errorf("refresh token expired: %w", domain.ErrUnauthorized)
	}

	newToken, err := token.NewRefreshToken()
	if err != nil {
		return nil, err
	}
	newExpiry := time.Now().UTC().Add(s.refreshExpiry).Unix()
	if err := s.store.RotateRefreshToken(ctx, sess.SessionID, newToken, newExpiry); err != nil {
		return nil, fmt.Errorf("rotate refresh token: %w", err)
	}
	sess.RefreshToken = newToken
	sess.RefreshExpiresAt = newExpiry

	access, err := s.signer.Sign(sess.Email, domain.RoleAdmin, sess.SessionID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &LoginResult{AccessToken: access, RefreshToken: newToken, Session: sess}, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	return s.store.Update(ctx, sessionID, map[string]interface{}{
		"enable": false,
	})
}

func (s *service) GetCurrent(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.Enable {
		return nil, fmt.Errorf("session disabled: %w", domain.ErrUnauthorized)
	}
	return sess, nil
}
