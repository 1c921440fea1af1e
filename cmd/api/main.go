package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/smartbin/internal/application/bin"
	"github.com/jhoicas/smartbin/internal/domain/entity"
	"github.com/jhoicas/smartbin/internal/domain/ledger"
	"github.com/jhoicas/smartbin/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/smartbin/internal/interfaces/http"
	"github.com/jhoicas/smartbin/pkg/config"
	"github.com/jhoicas/smartbin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Estado único del proceso: una cadena y un contenedor, inyectados en HTTP y scheduler.
	chain := ledger.NewChain()
	binUC := bin.NewBinUseCase(chain, entity.Bin{
		StockLevel:      cfg.Bin.InitialStock,
		Threshold:       cfg.Bin.Threshold,
		CustomerBalance: cfg.Bin.CustomerBalance,
		SupplierBalance: cfg.Bin.SupplierBalance,
	}, log.Named("bin"))

	sched := scheduler.New(binUC, cfg.Bin.CheckInterval, log)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}

	app := httpRouter.NewApp(cfg.App.Name, httpRouter.RouterDeps{BinUC: binUC})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Int("ledger_records", chain.Len()).Msg("aplicación detenida")
}
