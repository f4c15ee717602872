package mysql

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	clienteDomain "prestamos-backend/internal/domain/cliente"
	prestamoDomain "prestamos-backend/internal/domain/prestamo"
	solicitudDomain "prestamos-backend/internal/domain/solicitud"
	infradb "prestamos-backend/internal/infrastructure/db"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens a file-backed sqlite DB with foreign keys on and the full
// schema migrated. One connection, so transactions run one after another.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := infradb.OpenGormWithDialector(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := infradb.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func makeCliente(dpi, nit string) *clienteDomain.Cliente {
	return &clienteDomain.Cliente{
		PrimerNombre:    "Ana",
		PrimerApellido:  "López",
		DPI:             dpi,
		NIT:             nit,
		FechaNacimiento: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		UsuarioCrea:     "tester",
	}
}

func seedCliente(t *testing.T, db *gorm.DB, dpi, nit string) *clienteDomain.Cliente {
	t.Helper()
	c := makeCliente(dpi, nit)
	if err := NewClienteRepository(db).Create(context.Background(), c); err != nil {
		t.Fatalf("seed cliente: %v", err)
	}
	return c
}

func seedSolicitud(t *testing.T, db *gorm.DB, clienteID uint64, estado solicitudDomain.Estado) *solicitudDomain.Solicitud {
	t.Helper()
	s := &solicitudDomain.Solicitud{
		ClienteID:       clienteID,
		MontoSolicitado: dec("1000.00"),
		PlazoMeses:      12,
		TasaInteres:     dec("12.50"),
		Estado:          estado,
		FechaSolicitud:  time.Now().UTC(),
		UsuarioCrea:     "tester",
	}
	if err := NewSolicitudRepository(db).Create(context.Background(), s); err != nil {
		t.Fatalf("seed solicitud: %v", err)
	}
	return s
}

func seedPrestamo(t *testing.T, db *gorm.DB, solicitudID uint64, saldo string) *prestamoDomain.Prestamo {
	t.Helper()
	p := &prestamoDomain.Prestamo{
		SolicitudID:     solicitudID,
		MontoAprobado:   dec(saldo),
		FechaAprobacion: time.Now().UTC(),
		TasaInteres:     dec("12.50"),
		PlazoMeses:      12,
		SaldoActual:     dec(saldo),
		Estado:          prestamoDomain.EstadoActivo,
	}
	if err := NewPrestamoRepository(db).Create(context.Background(), p); err != nil {
		t.Fatalf("seed prestamo: %v", err)
	}
	return p
}

// seedChain builds cliente -> approved solicitud -> prestamo.
func seedChain(t *testing.T, db *gorm.DB, dpi, saldo string) *prestamoDomain.Prestamo {
	t.Helper()
	c := seedCliente(t, db, dpi, "NIT-"+dpi)
	s := seedSolicitud(t, db, c.ID, solicitudDomain.EstadoAprobado)
	return seedPrestamo(t, db, s.ID, saldo)
}
