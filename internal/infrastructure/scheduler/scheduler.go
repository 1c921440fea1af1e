package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/smartbin/internal/application/dto"
	"github.com/jhoicas/smartbin/internal/domain"
	"github.com/jhoicas/smartbin/pkg/logger"
)

// InventoryChecker puerto hacia la revisión de inventario bajo.
type InventoryChecker interface {
	CheckLowInventory(ctx context.Context) (*dto.SettlementResult, error)
}

// Scheduler ejecuta la revisión de inventario bajo cada intervalo fijo.
type Scheduler struct {
	cron     *cron.Cron
	checker  InventoryChecker
	interval time.Duration
	log      *logger.Logger
}

// New crea el scheduler. Una ejecución se omite si la anterior sigue en curso.
func New(checker InventoryChecker, interval time.Duration, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.NewNop()
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	return &Scheduler{
		cron:     c,
		checker:  checker,
		interval: interval,
		log:      log.Named("scheduler"),
	}
}

// Start programa la revisión ("@every <intervalo>") y arranca el cron.
func (s *Scheduler) Start() error {
	spec := "@every " + s.interval.String()
	if _, err := s.cron.AddFunc(spec, s.Check); err != nil {
		return fmt.Errorf("programar revisión de inventario: %w", err)
	}
	s.log.Info().Str("schedule", spec).Msg("iniciando scheduler")
	s.cron.Start()
	return nil
}

// Stop detiene el cron y espera a que termine la ejecución en curso.
func (s *Scheduler) Stop() {
	s.log.Info().Msg("deteniendo scheduler")
	<-s.cron.Stop().Done()
}

// Check ejecuta una revisión. Los fallos solo se registran en el log.
func (s *Scheduler) Check() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	res, err := s.checker.CheckLowInventory(ctx)
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		s.log.Warn().Msg("inventario bajo sin saldo suficiente para reponer")
	case err != nil:
		s.log.Error().Err(err).Msg("revisión de inventario")
	case res != nil:
		s.log.Info().
			Str("settlement_id", res.ID).
			Int("stock_level", res.State.StockLevel).
			Msg("transacción completada")
	default:
		s.log.Debug().Msg("inventario normal")
	}
}
