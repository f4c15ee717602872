package cliente

import "context"

type Repository interface {
	Create(ctx context.Context, c *Cliente) error
	GetByID(ctx context.Context, id uint64) (*Cliente, error)
	List(ctx context.Context) ([]Cliente, error)
	Save(ctx context.Context, c *Cliente) error
	Delete(ctx context.Context, id uint64) error

	// Uniqueness probes; excludeID skips the row being updated (0 = none).
	ExistsByDPI(ctx context.Context, dpi string, excludeID uint64) (bool, error)
	ExistsByNIT(ctx context.Context, nit string, excludeID uint64) (bool, error)
}
