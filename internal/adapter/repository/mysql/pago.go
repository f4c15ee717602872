package mysql

import (
	"context"

	pagoDomain "prestamos-backend/internal/domain/pago"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PagoRepository struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) *PagoRepository { return &PagoRepository{db: db} }

func (r *PagoRepository) Create(ctx context.Context, p *pagoDomain.Pago) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *PagoRepository) GetByID(ctx context.Context, id uint64) (*pagoDomain.Pago, error) {
	var out pagoDomain.Pago
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *PagoRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*pagoDomain.Pago, error) {
	var out pagoDomain.Pago
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *PagoRepository) GetDetail(ctx context.Context, id uint64) (*pagoDomain.Pago, error) {
	var out pagoDomain.Pago
	res := r.db.WithContext(ctx).
		Preload("Prestamo.Solicitud.Cliente").
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *PagoRepository) List(ctx context.Context) ([]pagoDomain.Pago, error) {
	var out []pagoDomain.Pago
	res := r.db.WithContext(ctx).
		Preload("Prestamo.Solicitud.Cliente").
		Order("fecha_pago DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PagoRepository) ListByPrestamoID(ctx context.Context, prestamoID uint64) ([]pagoDomain.Pago, error) {
	var out []pagoDomain.Pago
	res := r.db.WithContext(ctx).
		Where("prestamo_id = ?", prestamoID).
		Order("fecha_pago ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PagoRepository) CountByPrestamoID(ctx context.Context, prestamoID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&pagoDomain.Pago{}).
		Where("prestamo_id = ?", prestamoID).
		Count(&n).Error
	return n, err
}

func (r *PagoRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&pagoDomain.Pago{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
