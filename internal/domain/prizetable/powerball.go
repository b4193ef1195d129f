package prizetable

import (
	"github.com/questx-lab/concierge/internal/entity"
	"github.com/shopspring/decimal"
)

var powerball = &Table{
	Game:       entity.Powerball,
	MainCount:  5,
	MainMax:    69,
	SpecialMax: 26,
	Rules: []Rule{
		{MatchedMain: 5, RequireSpecial: true, Tier: entity.TierJackpot, Jackpot: true},
		{MatchedMain: 5, Tier: entity.TierMatch5, Amount: decimal.NewFromInt(1_000_000)},
		{MatchedMain: 4, RequireSpecial: true, Tier: entity.TierMatch4Special, Amount: decimal.NewFromInt(50_000)},
		{MatchedMain: 4, Tier: entity.TierMatch4, Amount: decimal.NewFromInt(100)},
		{MatchedMain: 3, RequireSpecial: true, Tier: entity.TierMatch3Special, Amount: decimal.NewFromInt(100)},
		{MatchedMain: 3, Tier: entity.TierMatch3, Amount: decimal.NewFromInt(7)},
		{MatchedMain: 2, RequireSpecial: true, Tier: entity.TierMatch2Special, Amount: decimal.NewFromInt(7)},
		{MatchedMain: 1, RequireSpecial: true, Tier: entity.TierMatch1Special, Amount: decimal.NewFromInt(4)},
		{MatchedMain: 0, RequireSpecial: true, Tier: entity.TierMatchSpecialOnly, Amount: decimal.NewFromInt(4)},
	},
}
