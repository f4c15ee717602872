package mysql

import (
	"context"
	"errors"

	"prestamos-backend/internal/domain/prestamo"
	"prestamos-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Clientes:    &ClienteRepository{db: tx},
		Solicitudes: &SolicitudRepository{db: tx},
		Prestamos:   &PrestamoRepository{db: tx},
		Pagos:       &PagoRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinPrestamoTx(ctx context.Context, prestamoID uint64, fn func(r uow.Repos, p *prestamo.Prestamo) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the prestamo row up-front so concurrent payments serialize on it
		p, err := r.Prestamos.GetByIDForUpdate(ctx, prestamoID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return prestamo.ErrNotFound
		}
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}
