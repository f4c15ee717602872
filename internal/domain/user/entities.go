package user

import (
	"time"

	"prestamos-backend/internal/domain/apperr"
)

var (
	ErrNotFound           = apperr.New(apperr.ErrNotFound, "Usuario no encontrado")
	ErrEmailTaken         = apperr.NewField(apperr.ErrValidation, "email", "El correo ya está registrado")
	ErrInvalidCredentials = apperr.New(apperr.ErrUnauthorized, "Las credenciales no son correctas")
	ErrPasswordMismatch   = apperr.NewField(apperr.ErrValidation, "password_confirmation", "La confirmación de contraseña no coincide")
	ErrTokenRevoked       = apperr.New(apperr.ErrUnauthorized, "La sesión fue cerrada")
)

// Table: users. Name doubles as the audit tag stamped on usuario_crea / usuario_actualiza.
type User struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	Name         string    `gorm:"column:name;size:100;not null"`
	Email        string    `gorm:"column:email;size:191;not null;uniqueIndex:ux_users_email"`
	PasswordHash string    `gorm:"column:password;size:255;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "users" }
