package settlement

import (
	"database/sql"
	"errors"
	"time"

	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/shopspring/decimal"
)

// JackpotThreshold is the total USD winnings an order must exceed to be marked
// as jackpot, whatever tiers its tickets hit.
var JackpotThreshold = decimal.NewFromInt(1_000_000)

// StatusFor derives the settled status of an order from its total winnings.
func StatusFor(totalUSD decimal.Decimal) entity.OrderStatus {
	switch {
	case totalUSD.GreaterThan(JackpotThreshold):
		return entity.OrderJackpot
	case totalUSD.IsPositive():
		return entity.OrderPartialWin
	default:
		return entity.OrderNoWin
	}
}

type Aggregator struct {
	now func() time.Time
}

// NewAggregator returns an Aggregator stamping settlements with now. A nil now
// uses time.Now.
func NewAggregator(now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}

	return &Aggregator{now: now}
}

// Settle evaluates every ticket of order against draw and writes the results
// onto the tickets and the order. The order is left untouched if any ticket
// cannot be evaluated.
func (a *Aggregator) Settle(order *entity.Order, draw *entity.DrawResult) error {
	if order.Status.IsSettled() {
		return errorx.New(errorx.AlreadySettled,
			"Order %s is already settled with status %s", order.ID, order.Status)
	}

	if order.Status != entity.OrderWaitingDraw {
		return errorx.New(errorx.InvalidInput,
			"Order %s with status %s is not waiting for a draw", order.ID, order.Status)
	}

	if order.Game != draw.Game || !order.DrawDate.Equal(draw.DrawDate) {
		return errorx.New(errorx.InvalidInput,
			"Order %s (%s %s) does not belong to draw %s (%s %s)",
			order.ID, order.Game, order.DrawDate.Format("2006-01-02"),
			draw.ID, draw.Game, draw.DrawDate.Format("2006-01-02"))
	}

	if len(order.Tickets) == 0 {
		return errorx.New(errorx.InvalidInput, "Order %s has no tickets", order.ID)
	}

	outcomes := make([]Outcome, len(order.Tickets))
	var errs []error
	for i := range order.Tickets {
		outcome, err := EvaluateTicket(&order.Tickets[i], draw)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		outcomes[i] = outcome
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	now := sql.NullTime{Time: a.now().UTC(), Valid: true}
	total := decimal.Zero
	for i, outcome := range outcomes {
		ticket := &order.Tickets[i]
		ticket.MatchedMain = outcome.MatchedMain
		ticket.MatchedSpecial = outcome.MatchedSpecial
		ticket.PrizeTier = outcome.Tier
		ticket.PrizeAmount = outcome.Amount
		ticket.MultiplierValue = outcome.Multiplier
		ticket.SettledAt = now

		total = total.Add(outcome.Amount)
	}

	order.TotalWinningUSD = total
	order.TotalWinningTHB = total.Mul(order.ExchangeRate).Round(2)
	order.Status = StatusFor(total)
	order.DrawCheckedAt = now

	return nil
}
