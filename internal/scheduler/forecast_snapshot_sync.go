package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/sustain-inventory/inventory-api/infrastructure/repository"
	"github.com/sustain-inventory/inventory-api/internal/config"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/aggregating"
	"github.com/sustain-inventory/inventory-api/internal/usecases/dashboarding"
	"github.com/sustain-inventory/inventory-api/internal/usecases/forecasting"
	"github.com/sustain-inventory/inventory-api/pkg/log"
	"github.com/sustain-inventory/inventory-api/pkg/utils"
)

// ForecastSeriesBuilder agrega as vendas e pede a previsão
type ForecastSeriesBuilder interface {
	BuildForecastSeries(ctx context.Context) (*dashboarding.ForecastSeries, error)
}

// ForecastSnapshotSyncConfig representa a configuração do agendador de snapshots
type ForecastSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Timeout      time.Duration
}

// ForecastSnapshotSyncService gera periodicamente um snapshot da previsão de vendas
type ForecastSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              ForecastSnapshotSyncConfig
	builder             ForecastSeriesBuilder
	snapshotRepo        repository.ForecastSnapshotRepository
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewForecastSnapshotSyncService(
	builder ForecastSeriesBuilder,
	snapshotRepo repository.ForecastSnapshotRepository,
	appConfig *config.Config,
) *ForecastSnapshotSyncService {
	syncConfig := ForecastSnapshotSyncConfig{
		CronSchedule: appConfig.ForecastSnapshot.CronSchedule,
		SyncEnabled:  appConfig.ForecastSnapshot.Enabled,
		Timeout:      snapshotTimeout(appConfig),
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de previsão carregada")

	return &ForecastSnapshotSyncService{
		scheduler:    gocron.NewScheduler(appConfig.SalesLocation()),
		config:       syncConfig,
		builder:      builder,
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
}

// O job cobre todas as tentativas da previsão mais uma folga
func snapshotTimeout(cfg *config.Config) time.Duration {
	attempts := max(cfg.Forecast.MaxAttempts, 1)
	return time.Duration(attempts)*cfg.Forecast.RequestTimeout + time.Minute
}

// Start inicia o agendador
func (s *ForecastSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Snapshot de previsão desabilitado por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de previsão")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de previsão: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de snapshots de previsão")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara o snapshot fora do horário agendado
func (s *ForecastSnapshotSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		log.ForContext(ctx).Info("Snapshot de previsão já em andamento, ignorando solicitação manual")
		return false
	}

	log.ForContext(ctx).Info("Iniciando snapshot manual de previsão")
	// A requisição HTTP termina antes do job; só o ID de correlação é herdado
	go s.runSync(context.WithoutCancel(ctx))
	return true
}

func (s *ForecastSnapshotSyncService) runSync(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := s.SyncForecastSnapshot(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar snapshot de previsão")
	}
}

// SyncForecastSnapshot agrega todas as vendas, pede a previsão e grava o snapshot
func (s *ForecastSnapshotSyncService) SyncForecastSnapshot(ctx context.Context) (*domain.ForecastSnapshot, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return nil, fmt.Errorf("snapshot de previsão já em andamento")
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	snapshot, err := s.buildAndSave(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncError = ""
		s.lastSyncCompletedAt = s.now()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"duration":          s.now().Sub(startTime).String(),
		"forecast_degraded": snapshot.Degraded,
		"forecast_days":     len(snapshot.Dates),
	}).Info("Snapshot de previsão concluído")
	return snapshot, nil
}

func (s *ForecastSnapshotSyncService) buildAndSave(ctx context.Context) (*domain.ForecastSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	series, err := s.builder.BuildForecastSeries(ctx)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	snapshot := domain.ForecastSnapshot{
		ID:          id,
		GeneratedAt: s.now().UTC(),
		Dates:       series.Dates,
		Totals:      aggregating.ToFloats(series.Totals),
		Result:      series.Result,
		Degraded:    forecasting.IsDegraded(series.Result),
	}

	if err := s.snapshotRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("erro ao gravar snapshot: %w", err)
	}

	return &snapshot, nil
}

// GetStatus retorna o status atual da sincronização
func (s *ForecastSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}

// GetLatestSnapshot devolve o último snapshot gravado, ou nil quando ainda não houve nenhum
func (s *ForecastSnapshotSyncService) GetLatestSnapshot(ctx context.Context) (*domain.ForecastSnapshot, error) {
	snapshot, err := s.snapshotRepo.GetLatestSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshot: %w", err)
	}
	return snapshot, nil
}
