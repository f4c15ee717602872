package solicitud

import (
	"time"

	"prestamos-backend/internal/domain/apperr"
	"prestamos-backend/internal/domain/cliente"

	"github.com/shopspring/decimal"
)

type Estado string

const (
	EstadoEnProceso Estado = "EN PROCESO"
	EstadoAprobado  Estado = "APROBADO"
	EstadoRechazado Estado = "RECHAZADO"
)

// Valid reports membership only; any estado may follow any other.
func (e Estado) Valid() bool {
	switch e {
	case EstadoEnProceso, EstadoAprobado, EstadoRechazado:
		return true
	}
	return false
}

var (
	ErrNotFound        = apperr.New(apperr.ErrNotFound, "Solicitud no encontrada")
	ErrInvalidEstado   = apperr.NewField(apperr.ErrValidation, "estado", "El estado debe ser EN PROCESO, APROBADO o RECHAZADO")
	ErrInvalidMonto    = apperr.NewField(apperr.ErrValidation, "monto_solicitado", "El monto solicitado debe ser mayor que cero")
	ErrInvalidPlazo    = apperr.NewField(apperr.ErrValidation, "plazo_meses", "El plazo debe ser de al menos un mes")
	ErrInvalidTasa     = apperr.NewField(apperr.ErrValidation, "tasa_interes", "La tasa de interés no puede ser negativa")
	ErrHasPrestamo     = apperr.New(apperr.ErrInvalidState, "La solicitud ya tiene un préstamo asociado y no puede eliminarse")
	ErrClienteNotFound = apperr.NewField(apperr.ErrNotFound, "cliente_id", "Cliente no encontrado")
)

// Table: solicitudes
type Solicitud struct {
	ID               uint64           `gorm:"primaryKey;column:id"`
	ClienteID        uint64           `gorm:"column:cliente_id;not null;index:idx_solicitudes_cliente"`
	Cliente          *cliente.Cliente `gorm:"foreignKey:ClienteID;constraint:OnDelete:RESTRICT"`
	MontoSolicitado  decimal.Decimal  `gorm:"column:monto_solicitado;type:decimal(12,2);not null"`
	PlazoMeses       int              `gorm:"column:plazo_meses;not null"`
	TasaInteres      decimal.Decimal  `gorm:"column:tasa_interes;type:decimal(5,2);not null"`
	Estado           Estado           `gorm:"column:estado;size:20;not null;default:'EN PROCESO'"`
	Observaciones    string           `gorm:"column:observaciones;size:255"`
	FechaSolicitud   time.Time        `gorm:"column:fecha_solicitud;not null"`
	UsuarioCrea      string           `gorm:"column:usuario_crea;size:100"`
	CreatedAt        time.Time        `gorm:"column:fecha_crea;autoCreateTime"`
	UsuarioActualiza string           `gorm:"column:usuario_actualiza;size:100"`
	UpdatedAt        time.Time        `gorm:"column:fecha_actualiza;autoUpdateTime"`
}

func (Solicitud) TableName() string { return "solicitudes" }
