package solicitudmock

import (
	"context"
	"errors"

	domain "prestamos-backend/internal/domain/solicitud"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("solicitudmock: method not implemented")

// Repo is a function-backed mock of the domain repository. Unset write
// methods are no-ops; unset reads return errUnimplemented.
type Repo struct {
	CreateFn           func(ctx context.Context, s *domain.Solicitud) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Solicitud, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Solicitud, error)
	ListFn             func(ctx context.Context) ([]domain.Solicitud, error)
	SaveFn             func(ctx context.Context, s *domain.Solicitud) error
	DeleteFn           func(ctx context.Context, id uint64) error
	CountByClienteIDFn func(ctx context.Context, clienteID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Solicitud) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Solicitud, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Solicitud, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Solicitud, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, s *domain.Solicitud) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) CountByClienteID(ctx context.Context, clienteID uint64) (int64, error) {
	if m.CountByClienteIDFn != nil {
		return m.CountByClienteIDFn(ctx, clienteID)
	}
	return 0, errUnimplemented
}
