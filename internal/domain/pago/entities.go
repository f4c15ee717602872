package pago

import (
	"time"

	"prestamos-backend/internal/domain/apperr"
	"prestamos-backend/internal/domain/prestamo"

	"github.com/shopspring/decimal"
)

type Metodo string

const (
	MetodoEfectivo      Metodo = "EFECTIVO"
	MetodoTarjeta       Metodo = "TARJETA"
	MetodoTransferencia Metodo = "TRANSFERENCIA"
)

func (m Metodo) Valid() bool {
	switch m {
	case MetodoEfectivo, MetodoTarjeta, MetodoTransferencia:
		return true
	}
	return false
}

var (
	ErrNotFound      = apperr.New(apperr.ErrNotFound, "Pago no encontrado")
	ErrInvalidMetodo = apperr.NewField(apperr.ErrValidation, "metodo_pago", "El método de pago debe ser EFECTIVO, TARJETA o TRANSFERENCIA")
)

// Table: pagos
type Pago struct {
	ID            uint64             `gorm:"primaryKey;column:id"`
	PrestamoID    uint64             `gorm:"column:prestamo_id;not null;index:idx_pagos_prestamo"`
	Prestamo      *prestamo.Prestamo `gorm:"foreignKey:PrestamoID;constraint:OnDelete:RESTRICT"`
	FechaPago     time.Time          `gorm:"column:fecha_pago;not null;index:idx_pagos_fecha_pago"`
	MontoPagado   decimal.Decimal    `gorm:"column:monto_pagado;type:decimal(12,2);not null"`
	MetodoPago    Metodo             `gorm:"column:metodo_pago;size:20;not null;default:'EFECTIVO'"`
	Observaciones string             `gorm:"column:observaciones;size:255"`
	UsuarioCrea   string             `gorm:"column:usuario_crea;size:100"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (Pago) TableName() string { return "pagos" }
