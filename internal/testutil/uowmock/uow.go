package uowmock

import (
	"context"
	"errors"

	"prestamos-backend/internal/domain/prestamo"
	"prestamos-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinPrestamoTxFn func(ctx context.Context, prestamoID uint64, fn func(r uow.Repos, p *prestamo.Prestamo) error) error
}

// Passthrough runs every callback directly against repos. The prestamo
// callback gets whatever repos.Prestamos.GetByIDForUpdate returns, so tests
// exercise the same lookup path as the gorm implementation.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinPrestamoTxFn: func(ctx context.Context, id uint64, fn func(uow.Repos, *prestamo.Prestamo) error) error {
			p, err := repos.Prestamos.GetByIDForUpdate(ctx, id)
			if err != nil {
				return prestamo.ErrNotFound
			}
			return fn(repos, p)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinPrestamoTx(ctx context.Context, prestamoID uint64, fn func(r uow.Repos, p *prestamo.Prestamo) error) error {
	if m.WithinPrestamoTxFn != nil {
		return m.WithinPrestamoTxFn(ctx, prestamoID, fn)
	}
	return errUnimplemented
}
