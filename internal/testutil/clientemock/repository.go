package clientemock

import (
	"context"
	"errors"

	domain "prestamos-backend/internal/domain/cliente"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("clientemock: method not implemented")

// Repo is a function-backed mock of the domain repository. Unset write
// methods are no-ops; unset reads return errUnimplemented.
type Repo struct {
	CreateFn      func(ctx context.Context, c *domain.Cliente) error
	GetByIDFn     func(ctx context.Context, id uint64) (*domain.Cliente, error)
	ListFn        func(ctx context.Context) ([]domain.Cliente, error)
	SaveFn        func(ctx context.Context, c *domain.Cliente) error
	DeleteFn      func(ctx context.Context, id uint64) error
	ExistsByDPIFn func(ctx context.Context, dpi string, excludeID uint64) (bool, error)
	ExistsByNITFn func(ctx context.Context, nit string, excludeID uint64) (bool, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Cliente) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Cliente, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Cliente, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, c *domain.Cliente) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) ExistsByDPI(ctx context.Context, dpi string, excludeID uint64) (bool, error) {
	if m.ExistsByDPIFn != nil {
		return m.ExistsByDPIFn(ctx, dpi, excludeID)
	}
	return false, errUnimplemented
}

func (m *Repo) ExistsByNIT(ctx context.Context, nit string, excludeID uint64) (bool, error) {
	if m.ExistsByNITFn != nil {
		return m.ExistsByNITFn(ctx, nit, excludeID)
	}
	return false, errUnimplemented
}
