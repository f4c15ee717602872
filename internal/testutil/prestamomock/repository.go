package prestamomock

import (
	"context"
	"errors"

	domain "prestamos-backend/internal/domain/prestamo"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("prestamomock: method not implemented")

// Repo is a function-backed mock of the domain repository. Unset write
// methods are no-ops; unset reads return errUnimplemented.
type Repo struct {
	CreateFn           func(ctx context.Context, p *domain.Prestamo) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Prestamo, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Prestamo, error)
	GetBySolicitudIDFn func(ctx context.Context, solicitudID uint64) (*domain.Prestamo, error)
	ListFn             func(ctx context.Context) ([]domain.Prestamo, error)
	GetDetailFn        func(ctx context.Context, id uint64) (*domain.Prestamo, error)
	SaveFn             func(ctx context.Context, p *domain.Prestamo) error
	DeleteFn           func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Prestamo) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Prestamo, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Prestamo, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetBySolicitudID(ctx context.Context, solicitudID uint64) (*domain.Prestamo, error) {
	if m.GetBySolicitudIDFn != nil {
		return m.GetBySolicitudIDFn(ctx, solicitudID)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Prestamo, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetDetail(ctx context.Context, id uint64) (*domain.Prestamo, error) {
	if m.GetDetailFn != nil {
		return m.GetDetailFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, p *domain.Prestamo) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
