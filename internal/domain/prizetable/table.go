// Package prizetable maps how many numbers a ticket matched to a prize tier.
//
// Each game owns a Table with its number ranges and an ordered rule list. The
// first rule matching (main count, special match) wins, so rules requiring the
// special number must come before the rule with the same main count that does
// not.
package prizetable

import (
	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/pkg/errorx"
	"github.com/shopspring/decimal"
)

type Prize struct {
	Tier   entity.PrizeTier
	Amount decimal.Decimal
}

func (p Prize) IsWin() bool {
	return p.Tier != entity.TierNone
}

type Rule struct {
	MatchedMain    int
	RequireSpecial bool
	Tier           entity.PrizeTier

	// Jackpot rules pay the jackpot declared by the draw and ignore Amount.
	Jackpot bool
	Amount  decimal.Decimal
}

func (r Rule) matches(matchedMain int, matchedSpecial bool) bool {
	if r.MatchedMain != matchedMain {
		return false
	}

	return matchedSpecial || !r.RequireSpecial
}

type Table struct {
	Game entity.GameType

	// MainCount numbers are picked from [1, MainMax], one special number from
	// [1, SpecialMax].
	MainCount  int
	MainMax    int
	SpecialMax int

	Rules []Rule
}

// Lookup returns the prize for a ticket which matched matchedMain main numbers
// and, if matchedSpecial, the special number. jackpot is the amount paid by a
// jackpot rule.
func (t *Table) Lookup(matchedMain int, matchedSpecial bool, jackpot decimal.Decimal) Prize {
	for _, rule := range t.Rules {
		if !rule.matches(matchedMain, matchedSpecial) {
			continue
		}

		if rule.Jackpot {
			return Prize{Tier: rule.Tier, Amount: jackpot}
		}

		return Prize{Tier: rule.Tier, Amount: rule.Amount}
	}

	return Prize{Tier: entity.TierNone, Amount: decimal.Zero}
}

// IsJackpot reports whether tier is paid from the declared jackpot.
func (t *Table) IsJackpot(tier entity.PrizeTier) bool {
	for _, rule := range t.Rules {
		if rule.Tier == tier {
			return rule.Jackpot
		}
	}

	return false
}

// ValidateNumbers checks that numbers are MainCount distinct values in range
// and that special is in range.
func (t *Table) ValidateNumbers(numbers []int, special int) error {
	if len(numbers) != t.MainCount {
		return errorx.New(errorx.InvalidInput,
			"%s requires %d main numbers, got %d", t.Game, t.MainCount, len(numbers))
	}

	seen := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		if n < 1 || n > t.MainMax {
			return errorx.New(errorx.InvalidInput,
				"%s main number %d is out of range [1, %d]", t.Game, n, t.MainMax)
		}

		if _, ok := seen[n]; ok {
			return errorx.New(errorx.InvalidInput, "%s main number %d is duplicated", t.Game, n)
		}
		seen[n] = struct{}{}
	}

	if special < 1 || special > t.SpecialMax {
		return errorx.New(errorx.InvalidInput,
			"%s special number %d is out of range [1, %d]", t.Game, special, t.SpecialMax)
	}

	return nil
}

var tables = map[entity.GameType]*Table{
	entity.Powerball:    powerball,
	entity.MegaMillions: megaMillions,
}

func ForGame(game entity.GameType) (*Table, error) {
	t, ok := tables[game]
	if !ok {
		return nil, errorx.New(errorx.InvalidInput, "no prize table for game %q", game)
	}

	return t, nil
}
