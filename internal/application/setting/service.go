package setting

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/pkg/validate"
)

// Service manages key/value site settings. Keys under the "public." prefix
// are readable without authentication; the rest are admin-only.
type Service interface {
	ListPublic(ctx context.Context) (map[string]string, error)
	ListAll(ctx context.Context) ([]domain.Setting, error)
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, key string, req domain.UpsertSettingRequest) (*domain.Setting, error)
	Delete(ctx context.Context, key string) error
}

type settingStore interface {
	Put(ctx context.Context, s *domain.Setting) error
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Scan(ctx context.Context) ([]domain.Setting, error)
	HardDelete(ctx context.Context, key string) error
}

type service struct {
	store settingStore
}

func NewService(store settingStore) Service {
	return &service{store: store}
}

// ListPublic returns only "public."-prefixed settings, with the prefix
// stripped from the keys.
func (s *service) ListPublic(ctx context.Context) (map[string]string, error) {
	all, err := s.store.Scan(ctx)
	if err != nil {
		return nil, err
	}
	public := make(map[string]string)
	for _, st := range all {
		if strings.HasPrefix(st.Key, domain.PublicSettingPrefix) {
			public[strings.TrimPrefix(st.Key, domain.PublicSettingPrefix)] = st.Value
		}
	}
	return public, nil
}

func (s *service) ListAll(ctx context.Context) ([]domain.Setting, error) {
	all, err := s.store.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Key < all[j].Key })
	return all, nil
}

func (s *service) Get(ctx context.Context, key string) (*domain.Setting, error) {
	return s.store.Get(ctx, key)
}

func (s *service) Upsert(ctx context.Context, key string, req domain.UpsertSettingRequest) (*domain.Setting, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("setting key required: %w", domain.ErrBadRequest)
	}
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrBadRequest)
	}

	st := &domain.Setting{Key: key, Value: req.Value}
	if err := s.store.Put(ctx, st); err != nil {
		return nil, fmt.Errorf("store setting: %w", err)
	}
	return st, nil
}

func (s *service) Delete(ctx context.Context, key string) error {
	if _, err := s.store.Get(ctx, key); err != nil {
		return err
	}
	return s.store.HardDelete(ctx, key)
}
