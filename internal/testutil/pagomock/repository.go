package pagomock

import (
	"context"
	"errors"

	domain "prestamos-backend/internal/domain/pago"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("pagomock: method not implemented")

// Repo is a function-backed mock of the domain repository. Unset write
// methods are no-ops; unset reads return errUnimplemented.
type Repo struct {
	CreateFn            func(ctx context.Context, p *domain.Pago) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.Pago, error)
	GetByIDForUpdateFn  func(ctx context.Context, id uint64) (*domain.Pago, error)
	GetDetailFn         func(ctx context.Context, id uint64) (*domain.Pago, error)
	ListFn              func(ctx context.Context) ([]domain.Pago, error)
	ListByPrestamoIDFn  func(ctx context.Context, prestamoID uint64) ([]domain.Pago, error)
	CountByPrestamoIDFn func(ctx context.Context, prestamoID uint64) (int64, error)
	DeleteFn            func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Pago) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Pago, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Pago, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetDetail(ctx context.Context, id uint64) (*domain.Pago, error) {
	if m.GetDetailFn != nil {
		return m.GetDetailFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Pago, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByPrestamoID(ctx context.Context, prestamoID uint64) ([]domain.Pago, error) {
	if m.ListByPrestamoIDFn != nil {
		return m.ListByPrestamoIDFn(ctx, prestamoID)
	}
	return nil, errUnimplemented
}

func (m *Repo) CountByPrestamoID(ctx context.Context, prestamoID uint64) (int64, error) {
	if m.CountByPrestamoIDFn != nil {
		return m.CountByPrestamoIDFn(ctx, prestamoID)
	}
	return 0, errUnimplemented
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
