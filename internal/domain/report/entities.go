package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RecentPrestamo is a prestamo row joined with its owner's name parts.
type RecentPrestamo struct {
	ID              uint64
	MontoAprobado   decimal.Decimal
	Estado          string
	FechaAprobacion time.Time
	PrimerNombre    string
	PrimerApellido  string
	CreatedAt       time.Time
}

// Repository is read-only; every method is a direct aggregate over current rows.
type Repository interface {
	CountClientes(ctx context.Context) (int64, error)
	// Clients owning at least one solicitud that has a prestamo.
	CountClientesConPrestamo(ctx context.Context) (int64, error)
	// [from, to)
	CountClientesCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountPrestamosByEstado(ctx context.Context, estado string) (int64, error)
	// [from, to) on pagos.fecha_pago
	SumPagosBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	RecentPrestamos(ctx context.Context, limit int) ([]RecentPrestamo, error)
}
