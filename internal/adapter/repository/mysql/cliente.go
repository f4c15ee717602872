package mysql

import (
	"context"

	clienteDomain "prestamos-backend/internal/domain/cliente"

	"gorm.io/gorm"
)

type ClienteRepository struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) *ClienteRepository { return &ClienteRepository{db: db} }

func (r *ClienteRepository) Create(ctx context.Context, c *clienteDomain.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClienteRepository) GetByID(ctx context.Context, id uint64) (*clienteDomain.Cliente, error) {
	var out clienteDomain.Cliente
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ClienteRepository) List(ctx context.Context) ([]clienteDomain.Cliente, error) {
	var out []clienteDomain.Cliente
	res := r.db.WithContext(ctx).Order("id DESC").Find(&out)
	return out, res.Error
}

func (r *ClienteRepository) Save(ctx context.Context, c *clienteDomain.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClienteRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&clienteDomain.Cliente{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ClienteRepository) ExistsByDPI(ctx context.Context, dpi string, excludeID uint64) (bool, error) {
	return r.exists(ctx, "dpi", dpi, excludeID)
}

func (r *ClienteRepository) ExistsByNIT(ctx context.Context, nit string, excludeID uint64) (bool, error) {
	return r.exists(ctx, "nit", nit, excludeID)
}

// column is always one of the two literals above
func (r *ClienteRepository) exists(ctx context.Context, column, value string, excludeID uint64) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&clienteDomain.Cliente{}).Where(column+" = ?", value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
