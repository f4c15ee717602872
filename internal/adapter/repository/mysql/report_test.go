package mysql

import (
	"context"
	"testing"
	"time"

	prestamoDomain "prestamos-backend/internal/domain/prestamo"
	solicitudDomain "prestamos-backend/internal/domain/solicitud"
)

func TestReportRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	// cliente without prestamo
	lonely := seedCliente(t, db, "DPI-0", "NIT-0")
	seedSolicitud(t, db, lonely.ID, solicitudDomain.EstadoEnProceso)

	p1 := seedChain(t, db, "DPI-1", "1000.00")
	p2 := seedChain(t, db, "DPI-2", "2000.00")
	p2.Estado = prestamoDomain.EstadoMoroso
	if err := NewPrestamoRepository(db).Save(ctx, p2); err != nil {
		t.Fatalf("Save: %v", err)
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := monthStart.AddDate(0, 1, 0)

	pagos := NewPagoRepository(db)
	for _, pg := range []struct {
		id   uint64
		amt  string
		when time.Time
	}{
		{p1.ID, "100.25", monthStart.Add(time.Hour)},
		{p1.ID, "50.50", now},
		{p2.ID, "999.00", monthStart.Add(-time.Hour)}, // previous month
	} {
		if err := pagos.Create(ctx, makePago(pg.id, pg.amt, pg.when)); err != nil {
			t.Fatalf("Create pago: %v", err)
		}
	}

	if n, err := repo.CountClientes(ctx); err != nil || n != 3 {
		t.Fatalf("CountClientes = %d, %v", n, err)
	}
	if n, err := repo.CountClientesConPrestamo(ctx); err != nil || n != 2 {
		t.Fatalf("CountClientesConPrestamo = %d, %v", n, err)
	}
	if n, err := repo.CountClientesCreatedBetween(ctx, monthStart, next); err != nil || n != 3 {
		t.Fatalf("CountClientesCreatedBetween = %d, %v", n, err)
	}
	if n, err := repo.CountClientesCreatedBetween(ctx, next, next.AddDate(0, 1, 0)); err != nil || n != 0 {
		t.Fatalf("next month clientes = %d, %v", n, err)
	}
	if n, err := repo.CountPrestamosByEstado(ctx, string(prestamoDomain.EstadoActivo)); err != nil || n != 1 {
		t.Fatalf("CountPrestamosByEstado = %d, %v", n, err)
	}

	sum, err := repo.SumPagosBetween(ctx, monthStart, next)
	if err != nil {
		t.Fatalf("SumPagosBetween: %v", err)
	}
	if !sum.Equal(dec("150.75")) {
		t.Fatalf("sum = %s, want 150.75", sum)
	}
	empty, err := repo.SumPagosBetween(ctx, next, next.AddDate(0, 1, 0))
	if err != nil || !empty.IsZero() {
		t.Fatalf("empty sum = %s, %v", empty, err)
	}

	recent, err := repo.RecentPrestamos(ctx, 5)
	if err != nil {
		t.Fatalf("RecentPrestamos: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != p2.ID {
		t.Fatalf("recent = %+v", recent)
	}
	if recent[0].PrimerNombre != "Ana" || recent[0].PrimerApellido != "López" {
		t.Fatalf("names not joined: %+v", recent[0])
	}
	if !recent[1].MontoAprobado.Equal(dec("1000")) || recent[0].Estado != "MOROSO" {
		t.Fatalf("row values: %+v", recent)
	}
}
