package settlement

import (
	"github.com/questx-lab/concierge/internal/domain/prizetable"
	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/shopspring/decimal"
)

// Outcome is the result of one ticket against one draw.
type Outcome struct {
	MatchedMain    int
	MatchedSpecial bool
	Tier           entity.PrizeTier
	Amount         decimal.Decimal

	// Multiplier is the factor applied to Amount, zero if none was applied.
	Multiplier int
}

// EvaluateTicket computes the outcome of ticket against draw. It has no side
// effects; the caller writes the outcome back onto the ticket.
func EvaluateTicket(ticket *entity.Ticket, draw *entity.DrawResult) (Outcome, error) {
	if ticket.Game != draw.Game {
		return Outcome{}, errorx.New(errorx.InvalidInput,
			"Ticket %s is for %s but the draw is for %s", ticket.ID, ticket.Game, draw.Game)
	}

	table, err := prizetable.ForGame(draw.Game)
	if err != nil {
		return Outcome{}, err
	}

	if err := table.ValidateNumbers(ticket.Numbers, ticket.SpecialNumber); err != nil {
		return Outcome{}, errorx.New(errorx.InvalidInput, "Invalid ticket %s: %v", ticket.ID, err)
	}

	if err := table.ValidateNumbers(draw.WinningNumbers, draw.SpecialNumber); err != nil {
		return Outcome{}, errorx.New(errorx.InvalidInput, "Invalid draw %s: %v", draw.ID, err)
	}

	matchedMain := countMatches(ticket.Numbers, draw.WinningNumbers)
	matchedSpecial := ticket.SpecialNumber == draw.SpecialNumber

	prize := table.Lookup(matchedMain, matchedSpecial, draw.JackpotAmount)
	outcome := Outcome{
		MatchedMain:    matchedMain,
		MatchedSpecial: matchedSpecial,
		Tier:           prize.Tier,
		Amount:         prize.Amount,
	}

	if table.IsJackpot(prize.Tier) {
		if !prize.Amount.IsPositive() {
			return Outcome{}, errorx.New(errorx.InvalidInput,
				"Draw %s has no jackpot amount", draw.ID)
		}

		// The jackpot is never multiplied.
		return outcome, nil
	}

	if ticket.MultiplierOptIn && prize.IsWin() && draw.HasMultiplier() {
		outcome.Multiplier = draw.Multiplier
		outcome.Amount = prize.Amount.Mul(decimal.NewFromInt(int64(draw.Multiplier)))
	}

	return outcome, nil
}

// countMatches returns the size of the intersection of chosen and winning.
// Both must already be validated as sets of distinct numbers.
func countMatches(chosen, winning []int) int {
	winningSet := make(map[int]struct{}, len(winning))
	for _, n := range winning {
		winningSet[n] = struct{}{}
	}

	count := 0
	for _, n := range chosen {
		if _, ok := winningSet[n]; ok {
			count++
		}
	}

	return count
}
