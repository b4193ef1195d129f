package settlement

import (
	"testing"
	"time"

	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/questx-lab/concierge/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var settledAt = time.Date(2026, 10, 19, 3, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return settledAt
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		total string
		want  entity.OrderStatus
	}{
		{total: "0", want: entity.OrderNoWin},
		{total: "0.01", want: entity.OrderPartialWin},
		{total: "4", want: entity.OrderPartialWin},
		{total: "1000000", want: entity.OrderPartialWin},
		{total: "1000000.01", want: entity.OrderJackpot},
		{total: "120000000", want: entity.OrderJackpot},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			require.Equal(t, tt.want, StatusFor(decimal.RequireFromString(tt.total)))
		})
	}
}

func TestAggregator_Settle(t *testing.T) {
	draw := testutil.SampleDrawResult(nil)
	order := testutil.SampleOrder(nil,
		testutil.SampleTicket([]int{1, 2, 3, 4, 5}, 7),
		testutil.SampleTicket([]int{5, 12, 23, 1, 2}, 1),
		testutil.SampleTicket([]int{1, 2, 3, 4, 6}, 1),
	)

	require.NoError(t, NewAggregator(fixedClock).Settle(order, draw))

	require.Equal(t, entity.OrderPartialWin, order.Status)
	requireAmount(t, 11, order.TotalWinningUSD)
	require.True(t, decimal.RequireFromString("401.50").Equal(order.TotalWinningTHB))
	require.True(t, order.DrawCheckedAt.Valid)
	require.Equal(t, settledAt, order.DrawCheckedAt.Time)

	require.Equal(t, entity.TierMatch1Special, order.Tickets[0].PrizeTier)
	requireAmount(t, 4, order.Tickets[0].PrizeAmount)
	require.Equal(t, entity.TierMatch3, order.Tickets[1].PrizeTier)
	requireAmount(t, 7, order.Tickets[1].PrizeAmount)
	require.Equal(t, entity.TierNone, order.Tickets[2].PrizeTier)
	require.True(t, order.Tickets[2].PrizeAmount.IsZero())

	for _, ticket := range order.Tickets {
		require.True(t, ticket.SettledAt.Valid)
	}
}

func TestAggregator_Settle_NoWin(t *testing.T) {
	draw := testutil.SampleDrawResult(nil)
	order := testutil.SampleOrder(nil, testutil.SampleTicket([]int{1, 2, 3, 4, 6}, 1))

	require.NoError(t, NewAggregator(fixedClock).Settle(order, draw))
	require.Equal(t, entity.OrderNoWin, order.Status)
	require.True(t, order.TotalWinningUSD.IsZero())
	require.True(t, order.TotalWinningTHB.IsZero())
}

func TestAggregator_Settle_Jackpot(t *testing.T) {
	draw := testutil.SampleDrawResult(&entity.DrawResult{Multiplier: 10})
	ticket := testutil.SampleTicket([]int{69, 34, 23, 12, 5}, 7)
	ticket.MultiplierOptIn = true
	order := testutil.SampleOrder(nil, ticket)

	require.NoError(t, NewAggregator(fixedClock).Settle(order, draw))
	require.Equal(t, entity.OrderJackpot, order.Status)
	require.Equal(t, entity.TierJackpot, order.Tickets[0].PrizeTier)
	requireAmount(t, 120_000_000, order.TotalWinningUSD)
	require.Equal(t, 0, order.Tickets[0].MultiplierValue)
}

func TestAggregator_Settle_ThresholdWithoutJackpotTier(t *testing.T) {
	draw := testutil.SampleDrawResult(nil)
	// Two match 5 tickets exceed the threshold without hitting the jackpot.
	order := testutil.SampleOrder(nil,
		testutil.SampleTicket([]int{5, 12, 23, 34, 69}, 1),
		testutil.SampleTicket([]int{5, 12, 23, 34, 69}, 2),
	)

	require.NoError(t, NewAggregator(fixedClock).Settle(order, draw))
	require.Equal(t, entity.OrderJackpot, order.Status)
	requireAmount(t, 2_000_000, order.TotalWinningUSD)

	// Exactly one match 5 stays a partial win.
	order = testutil.SampleOrder(nil, testutil.SampleTicket([]int{5, 12, 23, 34, 69}, 1))
	require.NoError(t, NewAggregator(fixedClock).Settle(order, draw))
	require.Equal(t, entity.OrderPartialWin, order.Status)
}

func TestAggregator_Settle_SingleSmallWin(t *testing.T) {
	draw := testutil.SampleDrawResult(nil)
	order := testutil.SampleOrder(nil, testutil.SampleTicket([]int{1, 2, 3, 4, 5}, 7))

	require.NoError(t, NewAggregator(fixedClock).Settle(order, draw))
	requireAmount(t, 4, order.TotalWinningUSD)
	require.Equal(t, entity.OrderPartialWin, order.Status)
}

func TestAggregator_Settle_Twice(t *testing.T) {
	draw := testutil.SampleDrawResult(nil)
	order := testutil.SampleOrder(nil, testutil.SampleTicket([]int{1, 2, 3, 4, 5}, 7))
	aggregator := NewAggregator(fixedClock)

	require.NoError(t, aggregator.Settle(order, draw))
	total := order.TotalWinningUSD

	err := aggregator.Settle(order, draw)
	require.True(t, errorx.Is(err, errorx.AlreadySettled))
	require.True(t, total.Equal(order.TotalWinningUSD))
	require.Equal(t, entity.OrderPartialWin, order.Status)
}

func TestAggregator_Settle_Invalid(t *testing.T) {
	draw := testutil.SampleDrawResult(nil)

	tests := []struct {
		name  string
		order *entity.Order
	}{
		{
			name: "not waiting for draw",
			order: testutil.SampleOrder(&entity.Order{Status: entity.OrderConfirmed},
				testutil.SampleTicket([]int{1, 2, 3, 4, 5}, 7)),
		},
		{
			name: "other draw date",
			order: testutil.SampleOrder(&entity.Order{DrawDate: testutil.DrawDate.AddDate(0, 0, -3)},
				testutil.SampleTicket([]int{1, 2, 3, 4, 5}, 7)),
		},
		{
			name:  "no tickets",
			order: testutil.SampleOrder(nil),
		},
		{
			name: "one invalid ticket",
			order: testutil.SampleOrder(nil,
				testutil.SampleTicket([]int{1, 2, 3, 4, 5}, 7),
				testutil.SampleTicket([]int{1, 2, 3}, 7),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := tt.order.Status
			err := NewAggregator(fixedClock).Settle(tt.order, draw)
			require.True(t, errorx.Is(err, errorx.InvalidInput), err.Error())

			require.Equal(t, status, tt.order.Status)
			require.False(t, tt.order.DrawCheckedAt.Valid)
			for _, ticket := range tt.order.Tickets {
				require.False(t, ticket.SettledAt.Valid)
				require.Equal(t, entity.TierNone, ticket.PrizeTier)
			}
		})
	}
}
