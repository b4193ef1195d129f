package domain

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/questx-lab/concierge/internal/domain/settlement"
	"github.com/questx-lab/concierge/internal/model"
	"github.com/questx-lab/concierge/internal/repository"
	"github.com/questx-lab/concierge/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_settlementDomain_SettleNow(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.InsertDrawResult(ctx, testutil.SampleDrawResult(nil))
	order := testutil.SampleOrder(nil, testutil.SampleTicket([]int{1, 2, 3, 4, 5}, 7))
	testutil.InsertOrder(ctx, order)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	orderRepo := repository.NewOrderRepository()
	sweep := settlement.NewSweep(orderRepo, repository.NewDrawResultRepository(nil), nil, node).
		WithClock(func() time.Time { return time.Date(2026, 10, 19, 3, 0, 0, 0, time.UTC) })
	domain := NewSettlementDomain(sweep)

	resp, err := domain.SettleNow(ctx, &model.SettleNowRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Summary.Eligible)
	require.Equal(t, 1, resp.Summary.Settled)
	require.Empty(t, resp.Summary.FailedOrderIDs)

	got, err := NewOrderDomain(orderRepo).Get(ctx, &model.GetOrderRequest{ID: order.ID})
	require.NoError(t, err)
	require.Equal(t, "partial_win", got.Order.Status)
	require.Equal(t, "4.00", got.Order.TotalWinningUSD)
	require.Equal(t, "146.00", got.Order.TotalWinningTHB)
}
