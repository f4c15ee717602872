package prestamo

import (
	"time"

	"prestamos-backend/internal/domain/apperr"
	"prestamos-backend/internal/domain/solicitud"

	"github.com/shopspring/decimal"
)

type Estado string

const (
	EstadoActivo Estado = "ACTIVO"
	EstadoPagado Estado = "PAGADO"
	EstadoMoroso Estado = "MOROSO"
)

func (e Estado) Valid() bool {
	switch e {
	case EstadoActivo, EstadoPagado, EstadoMoroso:
		return true
	}
	return false
}

var (
	ErrNotFound             = apperr.New(apperr.ErrNotFound, "Préstamo no encontrado")
	ErrSolicitudNotFound    = apperr.NewField(apperr.ErrNotFound, "solicitud_id", "Solicitud no encontrada")
	ErrSolicitudNotApproved = apperr.New(apperr.ErrInvalidState, "La solicitud debe estar en estado APROBADO para generar un préstamo")
	ErrAlreadyPromoted      = apperr.New(apperr.ErrInvalidState, "La solicitud ya tiene un préstamo generado")
	ErrHasPagos             = apperr.New(apperr.ErrInvalidState, "El préstamo tiene pagos registrados y no puede eliminarse")
	ErrInvalidMonto         = apperr.NewField(apperr.ErrValidation, "monto_aprobado", "El monto aprobado debe ser mayor que cero")
	ErrInvalidPlazo         = apperr.NewField(apperr.ErrValidation, "plazo_meses", "El plazo debe ser de al menos un mes")
	ErrInvalidTasa          = apperr.NewField(apperr.ErrValidation, "tasa_interes", "La tasa de interés no puede ser negativa")
	ErrInvalidEstado        = apperr.NewField(apperr.ErrValidation, "estado", "El estado debe ser ACTIVO, PAGADO o MOROSO")
	ErrEstadoFromLedger     = apperr.New(apperr.ErrInvalidState, "El estado PAGADO solo se asigna al saldar el préstamo con pagos")
	ErrEstadoSettled        = apperr.New(apperr.ErrInvalidState, "El préstamo no tiene saldo pendiente; su estado no puede cambiarse")
)

// Table: prestamos. solicitud_id is unique: a solicitud yields at most one prestamo.
type Prestamo struct {
	ID              uint64               `gorm:"primaryKey;column:id"`
	SolicitudID     uint64               `gorm:"column:solicitud_id;not null;uniqueIndex:ux_prestamos_solicitud_id"`
	Solicitud       *solicitud.Solicitud `gorm:"foreignKey:SolicitudID;constraint:OnDelete:RESTRICT"`
	MontoAprobado   decimal.Decimal      `gorm:"column:monto_aprobado;type:decimal(12,2);not null"`
	FechaAprobacion time.Time            `gorm:"column:fecha_aprobacion;not null"`
	TasaInteres     decimal.Decimal      `gorm:"column:tasa_interes;type:decimal(5,2);not null"`
	PlazoMeses      int                  `gorm:"column:plazo_meses;not null"`
	SaldoActual     decimal.Decimal      `gorm:"column:saldo_actual;type:decimal(12,2);not null"`
	Estado          Estado               `gorm:"column:estado;size:20;not null;default:'ACTIVO';index:idx_prestamos_estado"`
	CreatedAt       time.Time            `gorm:"column:created_at;autoCreateTime;index:idx_prestamos_created_at"`
	UpdatedAt       time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

func (Prestamo) TableName() string { return "prestamos" }
