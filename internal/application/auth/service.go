package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/pkg/id"
	"github.com/portfolio-api/internal/pkg/pin"
)

// GenericPinSentMessage is returned by RequestPin whether or not the email is
// allow-listed. The two paths must be byte-identical so the endpoint cannot
// be used to enumerate admin addresses.
const GenericPinSentMessage = "If this email is registered, you will receive a PIN shortly."

// GenericInvalidMessage covers every VerifyPin rejection: disallowed email,
// malformed PIN, no active PIN, expired PIN, wrong PIN. One message, one
// observable outcome.
const GenericInvalidMessage = "Invalid email or PIN."

type RequestPinResult struct {
	Message string `json:"message"`
}

type VerifyPinResult struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

// Service is the passwordless login flow: issue a one-time PIN to an
// allow-listed email, then verify-and-consume it.
type Service interface {
	RequestPin(ctx context.Context, email string) (*RequestPinResult, error)
	VerifyPin(ctx context.Context, email, candidate string) (*VerifyPinResult, error)
	PurgeExpired(ctx context.Context) (int, error)
}

// pinStore is the persistence the flow needs. Put must atomically supersede
// any prior record for the same email; Delete must be idempotent and keyed
// by record identity.
type pinStore interface {
	Put(ctx context.Context, rec *domain.PinRecord) error
	GetActive(ctx context.Context, email string) (*domain.PinRecord, error)
	Delete(ctx context.Context, email, pinID string) error
	PurgeExpired(ctx context.Context) (int, error)
}

// PinSender delivers the plaintext PIN out-of-band. Fire-and-forget: no
// retry contract.
type PinSender interface {
	SendPin(to, pin string) error
}

// Hasher is the one-way PIN transform. Verify must report a mismatch, not an
// error, for malformed stored hashes.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(candidate, hash string) bool
}

// alertPublisher raises best-effort operator alerts; nil disables them.
type alertPublisher interface {
	PublishAlert(ctx context.Context, subject, message string) error
}

type Config struct {
	PinLength int
	PinTTL    time.Duration
}

type service struct {
	store  pinStore
	sender PinSender
	hasher Hasher
	allow  *AllowList
	alerts alertPublisher
	cfg    Config
}

func NewService(store pinStore, sender PinSender, hasher Hasher, allow *AllowList, alerts alertPublisher, cfg Config) Service {
	if cfg.PinLength <= 0 {
		cfg.PinLength = 6
	}
	if cfg.PinTTL <= 0 {
		cfg.PinTTL = 10 * time.Minute
	}
	return &service{store: store, sender: sender, hasher: hasher, allow: allow, alerts: alerts, cfg: cfg}
}

func (s *service) RequestPin(ctx context.Context, email string) (*RequestPinResult, error) {
	email = NormalizeEmail(email)

	if !s.allow.IsAllowed(email) {
		// Skip generation, storage and delivery entirely, but answer exactly
		// as the allowed path does. The rejection reason stays in the logs.
		slog.Info("pin_request_skipped", "reason", "email_not_allowed")
		return &RequestPinResult{Message: GenericPinSentMessage}, nil
	}

	code, err := pin.Generate(s.cfg.PinLength)
	if err != nil {
		return nil, fmt.Errorf("generate pin: %w", err)
	}
	hash, err := s.hasher.Hash(code)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}

	now := time.Now().UTC()
	rec := &domain.PinRecord{
		Email:     email,
		PinID:     id.New(),
		PinHash:   hash,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.PinTTL).Unix(),
	}
	// Put supersedes any prior PIN for this email in a single write; a user
	// who double-submits invalidates their own in-flight PIN.
	if err := s.store.Put(ctx, rec); err != nil {
		return nil, fmt.Errorf("store pin: %w", err)
	}

	if err := s.sender.SendPin(email, code); err != nil {
		// The record exists but the user cannot receive it. This is the one
		// failure surfaced distinctly: it only occurs after the allow-list
		// passed, so it leaks nothing about address validity.
		slog.Error("pin_delivery_failed", "err", err)
		if s.alerts != nil {
			if aerr := s.alerts.PublishAlert(ctx, "Login PIN delivery failed",
				fmt.Sprintf("Could not deliver a login PIN to %s: %v", email, err)); aerr != nil {
				slog.Error("pin_delivery_alert_failed", "err", aerr)
			}
		}
		return nil, fmt.Errorf("send pin: %w", domain.ErrDeliveryFailed)
	}

	return &RequestPinResult{Message: GenericPinSentMessage}, nil
}

func (s *service) VerifyPin(ctx context.Context, email, candidate string) (*VerifyPinResult, error) {
	email = NormalizeEmail(email)

	if !pin.ValidShape(candidate, s.cfg.PinLength) {
		return s.rejected("pin_malformed"), nil
	}
	if !s.allow.IsAllowed(email) {
		// No store lookup for disallowed addresses; best-effort timing parity
		// with the "no active PIN" case.
		return s.rejected("email_not_allowed"), nil
	}

	rec, err := s.store.GetActive(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load pin: %w", err)
	}
	if rec == nil {
		return s.rejected("no_active_pin"), nil
	}

	if !s.hasher.Verify(candidate, rec.PinHash) {
		// The record stays: a typo must not burn the PIN inside its window.
		return s.rejected("pin_mismatch"), nil
	}

	// Single use: consume before reporting success. The delete is conditioned
	// on the record identity so a concurrently reissued PIN survives.
	if err := s.store.Delete(ctx, email, rec.PinID); err != nil {
		return nil, fmt.Errorf("consume pin: %w", err)
	}

	return &VerifyPinResult{Verified: true}, nil
}

// PurgeExpired removes stale PIN records. Housekeeping only — VerifyPin
// re-checks expiry itself.
func (s *service) PurgeExpired(ctx context.Context) (int, error) {
	return s.store.PurgeExpired(ctx)
}

// rejected collapses every failure cause into the single generic outcome.
// The reason tag is logged and never serialized.
func (s *service) rejected(reason string) *VerifyPinResult {
	slog.Info("pin_verify_rejected", "reason", reason)
	return &VerifyPinResult{Verified: false, Message: GenericInvalidMessage}
}
