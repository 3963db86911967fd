// Package scheduler runs background jobs on a gocron v2 scheduler.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/avestaexchange/avesta/internal/shared/biztime"
	"github.com/avestaexchange/avesta/internal/shared/logger"
)

const rateRefreshTimeout = 30 * time.Second

// BatchJob processes one batch per Execute call and reports how many items it handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// JobFunc adapts a function to BatchJob.
type JobFunc func(ctx context.Context) (int, error)

func (f JobFunc) Execute(ctx context.Context) (int, error) { return f(ctx) }

type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a scheduler in the business timezone.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterRateRefreshJob rebuilds the rate snapshot every interval so reads
// rarely wait on the market feed. The first run happens after one interval.
func (m *SchedulerManager) RegisterRateRefreshJob(refreshJob BatchJob, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), rateRefreshTimeout)
			defer cancel()
			m.refreshRates(ctx, refreshJob)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("rates", "refresh"),
		gocron.WithName("rate-refresh"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered rate refresh job", "interval", interval)
	return nil
}

func (m *SchedulerManager) refreshRates(ctx context.Context, refreshJob BatchJob) {
	startTime := biztime.NowUTC()

	pairs, err := refreshJob.Execute(ctx)
	if err != nil {
		m.logger.Warnw("scheduled rate refresh failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Debugw("scheduled rate refresh completed",
		"pairs", pairs,
		"duration", time.Since(startTime),
	)
}

func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to finish.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
