package mysql

import (
	"context"

	prestamoDomain "prestamos-backend/internal/domain/prestamo"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PrestamoRepository struct{ db *gorm.DB }

func NewPrestamoRepository(db *gorm.DB) *PrestamoRepository { return &PrestamoRepository{db: db} }

func (r *PrestamoRepository) Create(ctx context.Context, p *prestamoDomain.Prestamo) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *PrestamoRepository) GetByID(ctx context.Context, id uint64) (*prestamoDomain.Prestamo, error) {
	var out prestamoDomain.Prestamo
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

// SELECT ... FOR UPDATE; sqlite has no row locks and its dialect drops the clause.
func (r *PrestamoRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*prestamoDomain.Prestamo, error) {
	var out prestamoDomain.Prestamo
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *PrestamoRepository) GetBySolicitudID(ctx context.Context, solicitudID uint64) (*prestamoDomain.Prestamo, error) {
	var out prestamoDomain.Prestamo
	res := r.db.WithContext(ctx).Where("solicitud_id = ?", solicitudID).First(&out)
	return &out, res.Error
}

func (r *PrestamoRepository) GetDetail(ctx context.Context, id uint64) (*prestamoDomain.Prestamo, error) {
	var out prestamoDomain.Prestamo
	res := r.db.WithContext(ctx).
		Preload("Solicitud.Cliente").
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *PrestamoRepository) List(ctx context.Context) ([]prestamoDomain.Prestamo, error) {
	var out []prestamoDomain.Prestamo
	res := r.db.WithContext(ctx).
		Preload("Solicitud.Cliente").
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PrestamoRepository) Save(ctx context.Context, p *prestamoDomain.Prestamo) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *PrestamoRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&prestamoDomain.Prestamo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
