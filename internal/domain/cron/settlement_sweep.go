package cron

import (
	"context"
	"time"

	"github.com/questx-lab/concierge/internal/domain/settlement"
	"github.com/questx-lab/concierge/pkg/xcontext"
)

type SettlementSweepCronJob struct {
	sweep    *settlement.Sweep
	interval time.Duration
	runNow   bool
}

func NewSettlementSweepCronJob(ctx context.Context, sweep *settlement.Sweep) *SettlementSweepCronJob {
	cfg := xcontext.Configs(ctx).Settlement
	interval := cfg.Interval.Duration
	if interval <= 0 {
		interval = time.Hour
	}

	return &SettlementSweepCronJob{
		sweep:    sweep,
		interval: interval,
		runNow:   cfg.RunNow,
	}
}

func (job *SettlementSweepCronJob) Do(ctx context.Context) {
	summary, err := job.sweep.Run(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Settlement sweep %s failed: %v", summary.RunID, err)
		return
	}

	if summary.Failed > 0 {
		xcontext.Logger(ctx).Warnf("Settlement sweep %s could not settle orders: %v",
			summary.RunID, summary.FailedOrderIDs)
	}
}

func (job *SettlementSweepCronJob) RunNow() bool {
	return job.runNow
}

func (job *SettlementSweepCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
