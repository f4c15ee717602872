package pago

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prestamos-backend/internal/domain/pago"
	"prestamos-backend/internal/domain/prestamo"
	"prestamos-backend/internal/domain/uow"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Usecase struct {
	repo pago.Repository
	uow  uow.UnitOfWork
	log  logrus.FieldLogger
	now  func() time.Time
}

func NewUsecase(r pago.Repository, tx uow.UnitOfWork, log logrus.FieldLogger) *Usecase {
	return &Usecase{repo: r, uow: tx, log: log, now: time.Now}
}

// Record inserts the pago and debits the prestamo in one transaction. The
// prestamo row is locked first, so the overpayment check sees a balance no
// other payment can move until commit.
func (u *Usecase) Record(ctx context.Context, in RecordInput) (*PagoDTO, error) {
	metodo := pago.Metodo(in.MetodoPago)
	if !metodo.Valid() {
		return nil, pago.ErrInvalidMetodo
	}

	var (
		pg *pago.Pago
		p  *prestamo.Prestamo
	)
	err := u.uow.WithinPrestamoTx(ctx, in.PrestamoID, func(r uow.Repos, locked *prestamo.Prestamo) error {
		amount := in.MontoPagado.Round(prestamo.MoneyScale)
		if err := locked.ApplyPayment(amount); err != nil {
			return err
		}
		pg = &pago.Pago{
			PrestamoID:    locked.ID,
			FechaPago:     u.now().UTC(),
			MontoPagado:   amount,
			MetodoPago:    metodo,
			Observaciones: in.Observaciones,
			UsuarioCrea:   in.Actor,
		}
		if err := r.Pagos.Create(ctx, pg); err != nil {
			return fmt.Errorf("create pago: %w", err)
		}
		if err := r.Prestamos.Save(ctx, locked); err != nil {
			return fmt.Errorf("save prestamo: %w", err)
		}
		p = locked
		return nil
	})
	if err != nil {
		u.log.WithFields(logrus.Fields{
			"prestamo_id": in.PrestamoID,
			"monto":       in.MontoPagado.String(),
		}).WithError(err).Warn("pago: rejected")
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"pago_id":     pg.ID,
		"prestamo_id": p.ID,
		"monto":       pg.MontoPagado.StringFixed(2),
		"saldo":       p.SaldoActual.StringFixed(2),
		"estado":      p.Estado,
		"actor":       in.Actor,
	}).Info("pago: recorded")

	dto := toDTO(pg)
	dto.SaldoActual = p.SaldoActual.StringFixed(2)
	dto.EstadoPrestamo = string(p.Estado)
	return dto, nil
}

// Reverse deletes the pago and credits its amount back. The prestamo is
// reopened as ACTIVO whatever the restored balance; estado is not
// recomputed from the balance sign.
func (u *Usecase) Reverse(ctx context.Context, pagoID uint64, actor string) (*ReversalDTO, error) {
	// unlocked read only to find which prestamo to lock
	cur, err := u.repo.GetByID(ctx, pagoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pago.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get pago: %w", err)
	}

	var out *ReversalDTO
	err = u.uow.WithinPrestamoTx(ctx, cur.PrestamoID, func(r uow.Repos, p *prestamo.Prestamo) error {
		// re-read under the lock: a concurrent reversal may have won
		pg, err := r.Pagos.GetByIDForUpdate(ctx, pagoID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pago.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get pago: %w", err)
		}
		if pg.PrestamoID != p.ID {
			return pago.ErrNotFound
		}

		p.RevertPayment(pg.MontoPagado)
		if err := r.Prestamos.Save(ctx, p); err != nil {
			return fmt.Errorf("save prestamo: %w", err)
		}
		if err := r.Pagos.Delete(ctx, pg.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pago.ErrNotFound
			}
			return fmt.Errorf("delete pago: %w", err)
		}
		out = &ReversalDTO{
			PagoID:      pg.ID,
			PrestamoID:  p.ID,
			SaldoActual: p.SaldoActual.StringFixed(2),
			Estado:      string(p.Estado),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"pago_id":     out.PagoID,
		"prestamo_id": out.PrestamoID,
		"monto":       cur.MontoPagado.StringFixed(2),
		"saldo":       out.SaldoActual,
		"actor":       actor,
	}).Info("pago: reversed")
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*PagoDTO, error) {
	pg, err := u.repo.GetDetail(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pago.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get pago: %w", err)
	}
	return toDTO(pg), nil
}

func (u *Usecase) List(ctx context.Context) ([]PagoDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	out := make([]PagoDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func toDTO(pg *pago.Pago) *PagoDTO {
	dto := &PagoDTO{
		ID:            pg.ID,
		PrestamoID:    pg.PrestamoID,
		FechaPago:     pg.FechaPago,
		MontoPagado:   pg.MontoPagado.StringFixed(2),
		MetodoPago:    string(pg.MetodoPago),
		Observaciones: pg.Observaciones,
		UsuarioCrea:   pg.UsuarioCrea,
		CreatedAt:     pg.CreatedAt,
	}
	if p := pg.Prestamo; p != nil && p.Solicitud != nil && p.Solicitud.Cliente != nil {
		dto.ClienteNombre = p.Solicitud.Cliente.DisplayName()
	}
	return dto
}
