package cron

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/questx-lab/concierge/config"
	"github.com/questx-lab/concierge/internal/domain/settlement"
	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/internal/repository"
	"github.com/questx-lab/concierge/pkg/testutil"
	"github.com/questx-lab/concierge/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestSettlementSweepCronJob(t *testing.T) {
	ctx := testutil.MockContext()
	cfg := xcontext.Configs(ctx)
	cfg.Settlement.Interval = config.Duration{Duration: 30 * time.Minute}
	cfg.Settlement.RunNow = true
	ctx = xcontext.WithConfigs(ctx, cfg)

	testutil.InsertDrawResult(ctx, testutil.SampleDrawResult(nil))
	order := testutil.SampleOrder(nil, testutil.SampleTicket([]int{1, 2, 3, 4, 5}, 7))
	testutil.InsertOrder(ctx, order)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	orderRepo := repository.NewOrderRepository()
	sweep := settlement.NewSweep(orderRepo, repository.NewDrawResultRepository(nil), nil, node).
		WithClock(func() time.Time { return time.Date(2026, 10, 19, 3, 0, 0, 0, time.UTC) })
	job := NewSettlementSweepCronJob(ctx, sweep)

	require.True(t, job.RunNow())
	next := job.Next()
	require.WithinDuration(t, time.Now().Add(30*time.Minute), next, time.Minute)

	job.Do(ctx)

	saved, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, entity.OrderPartialWin, saved.Status)
}
