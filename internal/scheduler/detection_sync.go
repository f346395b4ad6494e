// Package scheduler contém o serviço de agendamento da detecção periódica
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backbone-api/internal/config"
	"github.com/vfg2006/backbone-api/internal/domain"
	"github.com/vfg2006/backbone-api/internal/usecases/analyzing"
	"github.com/vfg2006/backbone-api/pkg/utils"
)

type DetectionSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// DetectionSnapshot guarda o resultado da última execução agendada. Vive só
// em memória: issues são efêmeros e recalculados a cada execução, nunca
// persistidos.
type DetectionSnapshot struct {
	Queue     *domain.PriorityQueueResponse `json:"queue"`
	Summary   *domain.PortfolioSummary      `json:"summary"`
	RanAt     time.Time                     `json:"ran_at"`
	DurationM int64                         `json:"duration_ms"`
}

type DetectionSyncService struct {
	scheduler           *gocron.Scheduler
	analyzer            analyzing.Analyzer
	config              DetectionSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshot        *DetectionSnapshot
}

func NewDetectionSyncService(
	analyzer analyzing.Analyzer,
	cfg *config.Config,
) *DetectionSyncService {
	syncConfig := DetectionSyncConfig{
		CronSchedule: cfg.DetectionSync.CronSchedule, // Default: 7h da manhã todos os dias
		Enabled:      cfg.DetectionSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de detecção de issues carregada")

	return &DetectionSyncService{
		scheduler: scheduler,
		analyzer:  analyzer,
		config:    syncConfig,
	}
}

func (s *DetectionSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de detecção de issues desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de detecção de issues")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunDetection(); err != nil {
			logrus.WithError(err).Error("Erro na execução agendada da detecção de issues")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar detecção de issues: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de detecção de issues")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução manual em background
func (s *DetectionSyncService) TriggerManualSync() {
	go func() {
		if err := s.RunDetection(); err != nil {
			logrus.WithError(err).Error("Erro na execução manual da detecção de issues")
		}
	}()
}

// RunDetection executa uma detecção completa e atualiza o snapshot em memória.
// Fila e agregado vêm de uma única execução do analyzer; o snapshot publicado
// nunca mistura resultados de instantes diferentes.
func (s *DetectionSyncService) RunDetection() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Detecção de issues já está em execução, ignorando")
		return nil
	}
	s.syncRunning = true
	startedAt := time.Now()
	s.lastSyncStartedAt = startedAt
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando detecção de issues do portfólio")

	queue, summary, err := s.analyzer.RunDetection()
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar a detecção de issues")
		return err
	}

	snapshot := &DetectionSnapshot{
		Queue:     queue,
		Summary:   summary,
		RanAt:     startedAt,
		DurationM: time.Since(startedAt).Milliseconds(),
	}

	s.syncMutex.Lock()
	s.lastSnapshot = snapshot
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"issues":           queue.IssueCount,
		"critical":         queue.CriticalCount,
		"portfolio_health": summary.Health,
	}).Info("Detecção de issues concluída")

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug("Snapshot da detecção:\n", utils.PrettyJson(snapshot))
	}

	return nil
}

// Status retorna o estado corrente do agendador para o endpoint de cron
func (s *DetectionSyncService) Status() map[string]interface{} {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]interface{}{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt
	}
	if s.lastSnapshot != nil {
		status["last_snapshot"] = s.lastSnapshot
	}

	return status
}

// LatestSnapshot devolve o resultado da última execução (nil se nunca rodou)
func (s *DetectionSyncService) LatestSnapshot() *DetectionSnapshot {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSnapshot
}
