package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"prestamos-backend/internal/domain/prestamo"
	"prestamos-backend/internal/domain/report"
)

type Usecase struct {
	repo report.Repository
	now  func() time.Time
}

func NewUsecase(r report.Repository) *Usecase { return &Usecase{repo: r, now: time.Now} }

// MonthRange is [first day of t's month, first day of the next) in UTC.
func MonthRange(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// Summary recomputes every figure from the store on each call.
func (u *Usecase) Summary(ctx context.Context) (*SummaryDTO, error) {
	from, to := MonthRange(u.now())
	var (
		out SummaryDTO
		err error
	)

	if out.Clientes, err = u.repo.CountClientes(ctx); err != nil {
		return nil, fmt.Errorf("count clientes: %w", err)
	}
	if out.ClientesConPrestamo, err = u.repo.CountClientesConPrestamo(ctx); err != nil {
		return nil, fmt.Errorf("count clientes con prestamo: %w", err)
	}
	if out.ClientesNuevosMes, err = u.repo.CountClientesCreatedBetween(ctx, from, to); err != nil {
		return nil, fmt.Errorf("count clientes nuevos: %w", err)
	}
	if out.PrestamosActivos, err = u.repo.CountPrestamosByEstado(ctx, string(prestamo.EstadoActivo)); err != nil {
		return nil, fmt.Errorf("count prestamos activos: %w", err)
	}
	ingresos, err := u.repo.SumPagosBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("sum pagos: %w", err)
	}
	out.IngresosMensuales = ingresos.StringFixed(prestamo.MoneyScale)

	recent, err := u.repo.RecentPrestamos(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent prestamos: %w", err)
	}
	out.PrestamosRecientes = make([]RecentPrestamoDTO, 0, len(recent))
	for _, r := range recent {
		out.PrestamosRecientes = append(out.PrestamosRecientes, RecentPrestamoDTO{
			ID:              r.ID,
			MontoAprobado:   r.MontoAprobado.StringFixed(prestamo.MoneyScale),
			ClienteNombre:   strings.TrimSpace(r.PrimerNombre + " " + r.PrimerApellido),
			Estado:          r.Estado,
			FechaAprobacion: r.FechaAprobacion,
		})
	}
	return &out, nil
}
