package uow

import (
	"context"

	"prestamos-backend/internal/domain/cliente"
	"prestamos-backend/internal/domain/pago"
	"prestamos-backend/internal/domain/prestamo"
	"prestamos-backend/internal/domain/solicitud"
)

// Repos are bound to one transaction.
type Repos struct {
	Clientes    cliente.Repository
	Solicitudes solicitud.Repository
	Prestamos   prestamo.Repository
	Pagos       pago.Repository
}

type UnitOfWork interface {
	// plain tx; fn's error rolls everything back
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the prestamo row first, then pass it in; a missing row yields prestamo.ErrNotFound
	WithinPrestamoTx(ctx context.Context, prestamoID uint64, fn func(r Repos, p *prestamo.Prestamo) error) error
}
