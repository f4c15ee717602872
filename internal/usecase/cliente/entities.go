package cliente

import (
	"time"
)

const DateLayout = "2006-01-02"

type CreateInput struct {
	PrimerNombre    string
	SegundoNombre   string
	PrimerApellido  string
	SegundoApellido string
	DPI             string
	NIT             string
	FechaNacimiento time.Time
	Direccion       string
	Correo          string
	Telefono        string
	Actor           string // stamped on usuario_crea
}

// UpdateInput is a partial update: nil fields are left as they are.
type UpdateInput struct {
	PrimerNombre    *string
	SegundoNombre   *string
	PrimerApellido  *string
	SegundoApellido *string
	DPI             *string
	NIT             *string
	FechaNacimiento *time.Time
	Direccion       *string
	Correo          *string
	Telefono        *string
	Actor           string // stamped on usuario_actualiza
}

type ClienteDTO struct {
	ID               uint64    `json:"id"`
	PrimerNombre     string    `json:"primer_nombre"`
	SegundoNombre    string    `json:"segundo_nombre"`
	PrimerApellido   string    `json:"primer_apellido"`
	SegundoApellido  string    `json:"segundo_apellido"`
	NombreCompleto   string    `json:"nombre_completo"`
	DPI              string    `json:"dpi"`
	NIT              string    `json:"nit"`
	FechaNacimiento  string    `json:"fecha_nacimiento"`
	Direccion        string    `json:"direccion"`
	Correo           string    `json:"correo"`
	Telefono         string    `json:"telefono"`
	UsuarioCrea      string    `json:"usuario_crea"`
	UsuarioActualiza string    `json:"usuario_actualiza"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
