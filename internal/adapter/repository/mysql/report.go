package mysql

import (
	"context"
	"time"

	clienteDomain "prestamos-backend/internal/domain/cliente"
	pagoDomain "prestamos-backend/internal/domain/pago"
	prestamoDomain "prestamos-backend/internal/domain/prestamo"
	"prestamos-backend/internal/domain/report"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportRepository runs the dashboard aggregates. Date ranges come in as
// bounds computed by the caller so the SQL stays portable across drivers.
type ReportRepository struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{db: db} }

func (r *ReportRepository) CountClientes(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&clienteDomain.Cliente{}).Count(&n).Error
	return n, err
}

func (r *ReportRepository) CountClientesConPrestamo(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("clientes AS c").
		Joins("JOIN solicitudes s ON s.cliente_id = c.id").
		Joins("JOIN prestamos p ON p.solicitud_id = s.id").
		Distinct("c.id").
		Count(&n).Error
	return n, err
}

func (r *ReportRepository) CountClientesCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&clienteDomain.Cliente{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n).Error
	return n, err
}

func (r *ReportRepository) CountPrestamosByEstado(ctx context.Context, estado string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&prestamoDomain.Prestamo{}).
		Where("estado = ?", estado).
		Count(&n).Error
	return n, err
}

func (r *ReportRepository) SumPagosBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&pagoDomain.Pago{}).
		Select("COALESCE(SUM(monto_pagado), 0)").
		Where("fecha_pago >= ? AND fecha_pago < ?", from, to).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal.Round(prestamoDomain.MoneyScale), nil
}

func (r *ReportRepository) RecentPrestamos(ctx context.Context, limit int) ([]report.RecentPrestamo, error) {
	var out []report.RecentPrestamo
	err := r.db.WithContext(ctx).
		Table("prestamos AS p").
		Select("p.id, p.monto_aprobado, p.estado, p.fecha_aprobacion, c.primer_nombre, c.primer_apellido, p.created_at").
		Joins("JOIN solicitudes s ON s.id = p.solicitud_id").
		Joins("JOIN clientes c ON c.id = s.cliente_id").
		Order("p.created_at DESC, p.id DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
