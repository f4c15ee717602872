package pago

import "context"

type Repository interface {
	Create(ctx context.Context, p *Pago) error
	GetByID(ctx context.Context, id uint64) (*Pago, error)
	// GetByIDForUpdate locks the row until the surrounding tx ends.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Pago, error)
	// GetDetail and List preload Prestamo.Solicitud.Cliente; List is newest first.
	GetDetail(ctx context.Context, id uint64) (*Pago, error)
	List(ctx context.Context) ([]Pago, error)
	ListByPrestamoID(ctx context.Context, prestamoID uint64) ([]Pago, error)
	CountByPrestamoID(ctx context.Context, prestamoID uint64) (int64, error)
	Delete(ctx context.Context, id uint64) error
}
