package prestamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prestamos-backend/internal/domain/pago"
	"prestamos-backend/internal/domain/prestamo"
	"prestamos-backend/internal/domain/solicitud"
	"prestamos-backend/internal/domain/uow"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Usecase struct {
	repo  prestamo.Repository
	pagos pago.Repository
	uow   uow.UnitOfWork
	log   logrus.FieldLogger
	now   func() time.Time
}

func NewUsecase(r prestamo.Repository, p pago.Repository, tx uow.UnitOfWork, log logrus.FieldLogger) *Usecase {
	return &Usecase{repo: r, pagos: p, uow: tx, log: log, now: time.Now}
}

// Promote creates the single prestamo of an APROBADO solicitud, with the
// full approved amount as opening balance.
func (u *Usecase) Promote(ctx context.Context, in PromoteInput) (*PrestamoDTO, error) {
	switch {
	case !in.MontoAprobado.IsPositive():
		return nil, prestamo.ErrInvalidMonto
	case in.PlazoMeses < 1:
		return nil, prestamo.ErrInvalidPlazo
	case in.TasaInteres.IsNegative():
		return nil, prestamo.ErrInvalidTasa
	}

	var p *prestamo.Prestamo
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// lock the solicitud so a concurrent estado change or promotion waits
		s, err := r.Solicitudes.GetByIDForUpdate(ctx, in.SolicitudID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return prestamo.ErrSolicitudNotFound
		}
		if err != nil {
			return fmt.Errorf("get solicitud: %w", err)
		}
		if s.Estado != solicitud.EstadoAprobado {
			return prestamo.ErrSolicitudNotApproved
		}

		_, err = r.Prestamos.GetBySolicitudID(ctx, s.ID)
		switch {
		case err == nil:
			return prestamo.ErrAlreadyPromoted
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("check prestamo: %w", err)
		}

		monto := in.MontoAprobado.Round(prestamo.MoneyScale)
		p = &prestamo.Prestamo{
			SolicitudID:     s.ID,
			MontoAprobado:   monto,
			FechaAprobacion: u.now().UTC(),
			TasaInteres:     in.TasaInteres.Round(2),
			PlazoMeses:      in.PlazoMeses,
			SaldoActual:     monto,
			Estado:          prestamo.EstadoActivo,
		}
		if err := r.Prestamos.Create(ctx, p); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return prestamo.ErrAlreadyPromoted
			}
			return fmt.Errorf("create prestamo: %w", err)
		}
		p.Solicitud = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"prestamo_id":  p.ID,
		"solicitud_id": p.SolicitudID,
		"monto":        p.MontoAprobado.StringFixed(2),
		"actor":        in.Actor,
	}).Info("prestamo: created")
	return toDTO(p, nil), nil
}

// Get returns the prestamo with its pagos, oldest first.
func (u *Usecase) Get(ctx context.Context, id uint64) (*PrestamoDTO, error) {
	p, err := u.repo.GetDetail(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, prestamo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get prestamo: %w", err)
	}
	pagos, err := u.pagos.ListByPrestamoID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	dto := toDTO(p, pagos)
	if dto.Pagos == nil {
		dto.Pagos = []PagoItem{}
	}
	return dto, nil
}

func (u *Usecase) List(ctx context.Context) ([]PrestamoDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prestamos: %w", err)
	}
	out := make([]PrestamoDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i], nil))
	}
	return out, nil
}

// Update changes tasa, plazo or a manual estado under the prestamo row
// lock, so it cannot interleave with a payment.
func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateInput) (*PrestamoDTO, error) {
	var out *prestamo.Prestamo
	err := u.uow.WithinPrestamoTx(ctx, id, func(r uow.Repos, p *prestamo.Prestamo) error {
		if in.TasaInteres != nil {
			if in.TasaInteres.IsNegative() {
				return prestamo.ErrInvalidTasa
			}
			p.TasaInteres = in.TasaInteres.Round(2)
		}
		if in.PlazoMeses != nil {
			if *in.PlazoMeses < 1 {
				return prestamo.ErrInvalidPlazo
			}
			p.PlazoMeses = *in.PlazoMeses
		}
		if in.Estado != nil && prestamo.Estado(*in.Estado) != p.Estado {
			if err := p.SetEstado(prestamo.Estado(*in.Estado)); err != nil {
				return err
			}
		}
		if err := r.Prestamos.Save(ctx, p); err != nil {
			return fmt.Errorf("save prestamo: %w", err)
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.WithFields(logrus.Fields{
		"prestamo_id": out.ID,
		"estado":      out.Estado,
		"actor":       in.Actor,
	}).Info("prestamo: updated")
	return toDTO(out, nil), nil
}

// Delete refuses while any pago references the prestamo.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.uow.WithinPrestamoTx(ctx, id, func(r uow.Repos, p *prestamo.Prestamo) error {
		n, err := r.Pagos.CountByPrestamoID(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("count pagos: %w", err)
		}
		if n > 0 {
			return prestamo.ErrHasPagos
		}
		switch err := r.Prestamos.Delete(ctx, p.ID); {
		case err == nil:
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return prestamo.ErrNotFound
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return prestamo.ErrHasPagos
		default:
			return fmt.Errorf("delete prestamo: %w", err)
		}
	})
}

func money(v decimal.Decimal) string { return v.StringFixed(prestamo.MoneyScale) }

func toDTO(p *prestamo.Prestamo, pagos []pago.Pago) *PrestamoDTO {
	dto := &PrestamoDTO{
		ID:              p.ID,
		SolicitudID:     p.SolicitudID,
		MontoAprobado:   money(p.MontoAprobado),
		FechaAprobacion: p.FechaAprobacion,
		TasaInteres:     p.TasaInteres.StringFixed(2),
		PlazoMeses:      p.PlazoMeses,
		SaldoActual:     money(p.SaldoActual),
		Estado:          string(p.Estado),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if s := p.Solicitud; s != nil {
		dto.ClienteID = s.ClienteID
		if s.Cliente != nil {
			dto.ClienteNombre = s.Cliente.DisplayName()
		}
	}
	for _, pg := range pagos {
		dto.Pagos = append(dto.Pagos, PagoItem{
			ID:            pg.ID,
			FechaPago:     pg.FechaPago,
			MontoPagado:   money(pg.MontoPagado),
			MetodoPago:    string(pg.MetodoPago),
			Observaciones: pg.Observaciones,
		})
	}
	return dto
}
