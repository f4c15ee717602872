package prestamo

import "context"

type Repository interface {
	Create(ctx context.Context, p *Prestamo) error
	GetByID(ctx context.Context, id uint64) (*Prestamo, error)
	// GetByIDForUpdate locks the row until the surrounding tx ends;
	// every balance mutation goes through it.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Prestamo, error)
	GetBySolicitudID(ctx context.Context, solicitudID uint64) (*Prestamo, error)
	// List preloads Solicitud.Cliente, newest first.
	List(ctx context.Context) ([]Prestamo, error)
	// GetDetail preloads Solicitud.Cliente.
	GetDetail(ctx context.Context, id uint64) (*Prestamo, error)
	Save(ctx context.Context, p *Prestamo) error
	Delete(ctx context.Context, id uint64) error
}
