package solicitud

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	ClienteID       uint64
	MontoSolicitado decimal.Decimal
	PlazoMeses      int
	TasaInteres     decimal.Decimal
	Observaciones   string
	Actor           string
}

// UpdateInput is a partial update: nil fields are left as they are.
type UpdateInput struct {
	ClienteID       *uint64
	MontoSolicitado *decimal.Decimal
	PlazoMeses      *int
	TasaInteres     *decimal.Decimal
	Estado          *string
	Observaciones   *string
	Actor           string
}

type SolicitudDTO struct {
	ID               uint64    `json:"id"`
	ClienteID        uint64    `json:"cliente_id"`
	ClienteNombre    string    `json:"cliente_nombre,omitempty"`
	MontoSolicitado  string    `json:"monto_solicitado"`
	PlazoMeses       int       `json:"plazo_meses"`
	TasaInteres      string    `json:"tasa_interes"`
	Estado           string    `json:"estado"`
	Observaciones    string    `json:"observaciones"`
	FechaSolicitud   time.Time `json:"fecha_solicitud"`
	UsuarioCrea      string    `json:"usuario_crea"`
	UsuarioActualiza string    `json:"usuario_actualiza"`
	FechaCrea        time.Time `json:"fecha_crea"`
	FechaActualiza   time.Time `json:"fecha_actualiza"`
}
