package solicitud

import "context"

type Repository interface {
	Create(ctx context.Context, s *Solicitud) error
	GetByID(ctx context.Context, id uint64) (*Solicitud, error)
	// GetByIDForUpdate locks the row until the surrounding tx ends.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Solicitud, error)
	// List preloads Cliente.
	List(ctx context.Context) ([]Solicitud, error)
	Save(ctx context.Context, s *Solicitud) error
	Delete(ctx context.Context, id uint64) error
	CountByClienteID(ctx context.Context, clienteID uint64) (int64, error)
}
