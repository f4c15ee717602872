package mysql

import (
	"context"

	solicitudDomain "prestamos-backend/internal/domain/solicitud"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SolicitudRepository struct{ db *gorm.DB }

func NewSolicitudRepository(db *gorm.DB) *SolicitudRepository { return &SolicitudRepository{db: db} }

func (r *SolicitudRepository) Create(ctx context.Context, s *solicitudDomain.Solicitud) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *SolicitudRepository) GetByID(ctx context.Context, id uint64) (*solicitudDomain.Solicitud, error) {
	var out solicitudDomain.Solicitud
	res := r.db.WithContext(ctx).Preload("Cliente").Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *SolicitudRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*solicitudDomain.Solicitud, error) {
	var out solicitudDomain.Solicitud
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *SolicitudRepository) List(ctx context.Context) ([]solicitudDomain.Solicitud, error) {
	var out []solicitudDomain.Solicitud
	res := r.db.WithContext(ctx).Preload("Cliente").Order("id DESC").Find(&out)
	return out, res.Error
}

func (r *SolicitudRepository) Save(ctx context.Context, s *solicitudDomain.Solicitud) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error
}

func (r *SolicitudRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&solicitudDomain.Solicitud{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SolicitudRepository) CountByClienteID(ctx context.Context, clienteID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&solicitudDomain.Solicitud{}).
		Where("cliente_id = ?", clienteID).
		Count(&n).Error
	return n, err
}
