package cliente

import (
	"strings"
	"time"

	"prestamos-backend/internal/domain/apperr"
)

var (
	ErrNotFound       = apperr.New(apperr.ErrNotFound, "Cliente no encontrado")
	ErrDuplicateDPI   = apperr.NewField(apperr.ErrValidation, "dpi", "El DPI ya está registrado")
	ErrDuplicateNIT   = apperr.NewField(apperr.ErrValidation, "nit", "El NIT ya está registrado")
	ErrHasSolicitudes = apperr.New(apperr.ErrInvalidState, "El cliente tiene solicitudes registradas y no puede eliminarse")
)

// Table: clientes
type Cliente struct {
	ID               uint64    `gorm:"primaryKey;column:id"`
	PrimerNombre     string    `gorm:"column:primer_nombre;size:100;not null"`
	SegundoNombre    string    `gorm:"column:segundo_nombre;size:100"`
	PrimerApellido   string    `gorm:"column:primer_apellido;size:100;not null"`
	SegundoApellido  string    `gorm:"column:segundo_apellido;size:100"`
	DPI              string    `gorm:"column:dpi;size:20;not null;uniqueIndex:ux_clientes_dpi"`
	NIT              string    `gorm:"column:nit;size:20;not null;uniqueIndex:ux_clientes_nit"`
	FechaNacimiento  time.Time `gorm:"column:fecha_nacimiento;type:date;not null"`
	Direccion        string    `gorm:"column:direccion;size:255"`
	Correo           string    `gorm:"column:correo;size:100"`
	Telefono         string    `gorm:"column:telefono;size:20"`
	UsuarioCrea      string    `gorm:"column:usuario_crea;size:100"`
	UsuarioActualiza string    `gorm:"column:usuario_actualiza;size:100"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime;index:idx_clientes_created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Cliente) TableName() string { return "clientes" }

// DisplayName is "primer_nombre primer_apellido", the name shown on listings.
func (c Cliente) DisplayName() string {
	return strings.TrimSpace(c.PrimerNombre + " " + c.PrimerApellido)
}

// FullName joins every non-empty name part.
func (c Cliente) FullName() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.PrimerNombre, c.SegundoNombre, c.PrimerApellido, c.SegundoApellido} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
