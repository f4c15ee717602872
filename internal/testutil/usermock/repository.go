package usermock

import (
	"context"
	"errors"
	"sync"
	"time"

	domain "prestamos-backend/internal/domain/user"
)

var (
	_ domain.Repository      = (*Repo)(nil)
	_ domain.RevocationStore = (*Revocations)(nil)
)

var errUnimplemented = errors.New("usermock: method not implemented")

// Repo is a function-backed mock of user.Repository.
type Repo struct {
	CreateFn     func(ctx context.Context, u *domain.User) error
	GetByIDFn    func(ctx context.Context, id uint64) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errUnimplemented
}

// Revocations is an in-memory RevocationStore. Err, when set, is returned by
// every call.
type Revocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	Err     error
}

func (m *Revocations) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.revoked == nil {
		m.revoked = map[string]time.Time{}
	}
	m.revoked[tokenID] = expiresAt
	return nil
}

func (m *Revocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[tokenID]
	return ok, nil
}
