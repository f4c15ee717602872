package db

import (
	"fmt"

	"prestamos-backend/internal/domain/cliente"
	"prestamos-backend/internal/domain/pago"
	"prestamos-backend/internal/domain/prestamo"
	"prestamos-backend/internal/domain/solicitud"
	"prestamos-backend/internal/domain/user"

	"gorm.io/gorm"
)

// Migrate creates or alters the schema. Order follows the foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&cliente.Cliente{},
		&solicitud.Solicitud{},
		&prestamo.Prestamo{},
		&pago.Pago{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
