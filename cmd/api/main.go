package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "prestamos-backend/internal/adapter/http"
	"prestamos-backend/internal/adapter/middleware"
	"prestamos-backend/internal/adapter/repository/mysql"
	"prestamos-backend/internal/adapter/repository/redisstore"
	"prestamos-backend/internal/config"
	"prestamos-backend/internal/infrastructure/cache"
	"prestamos-backend/internal/infrastructure/db"
	"prestamos-backend/internal/infrastructure/logging"
	"prestamos-backend/internal/infrastructure/token"
	"prestamos-backend/internal/usecase/auth"
	"prestamos-backend/internal/usecase/cliente"
	"prestamos-backend/internal/usecase/dashboard"
	"prestamos-backend/internal/usecase/pago"
	"prestamos-backend/internal/usecase/prestamo"
	"prestamos-backend/internal/usecase/solicitud"
	"prestamos-backend/pkg/id"
)

func main() {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("config")
	}

	gdb, err := db.OpenGorm(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	if err := db.Migrate(gdb); err != nil {
		log.WithError(err).Fatal("migrate")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.WithError(err).Fatal("sql pool")
	}
	defer sqlDB.Close()

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("open redis")
	}
	defer rdb.Close()

	clientes := mysql.NewClienteRepository(gdb)
	solicitudes := mysql.NewSolicitudRepository(gdb)
	prestamos := mysql.NewPrestamoRepository(gdb)
	pagos := mysql.NewPagoRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	authUC := auth.NewUsecase(
		mysql.NewUserRepository(gdb),
		redisstore.NewRevocations(rdb),
		token.NewManager(cfg.JWTSecret, cfg.JWTTTL()),
		log,
	)

	e := httpadp.NewEcho(log)
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: id.New}), middleware.RequestLogger(log), echomw.Recover())

	httpadp.Register(e, httpadp.Handlers{
		Health: httpadp.NewHealthHandler(map[string]httpadp.Pinger{
			"db":    sqlDB.PingContext,
			"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}),
		Auth:        httpadp.NewAuthHandler(authUC),
		Clientes:    httpadp.NewClienteHandler(cliente.NewUsecase(clientes, solicitudes)),
		Solicitudes: httpadp.NewSolicitudHandler(solicitud.NewUsecase(solicitudes, clientes, prestamos)),
		Prestamos:   httpadp.NewPrestamoHandler(prestamo.NewUsecase(prestamos, pagos, tx, log)),
		Pagos:       httpadp.NewPagoHandler(pago.NewUsecase(pagos, tx, log)),
		Dashboard:   httpadp.NewDashboardHandler(dashboard.NewUsecase(mysql.NewReportRepository(gdb))),
	}, authUC, middleware.Idempotency(rdb, cfg.IdempotencyTTL(), log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	go func() {
		log.WithField("addr", addr).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
	log.Info("stopped")
}
