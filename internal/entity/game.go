package entity

import "github.com/questx-lab/concierge/pkg/enum"

type GameType string

var (
	Powerball    = enum.New(GameType("Powerball"), "Powerball")
	MegaMillions = enum.New(GameType("MegaMillions"), "MegaMillions")
)

type PrizeTier string

var (
	TierNone             = enum.New(PrizeTier(""), "")
	TierJackpot          = enum.New(PrizeTier("jackpot"), "jackpot")
	TierMatch5           = enum.New(PrizeTier("match_5"), "match_5")
	TierMatch4Special    = enum.New(PrizeTier("match_4_special"), "match_4_special")
	TierMatch4           = enum.New(PrizeTier("match_4"), "match_4")
	TierMatch3Special    = enum.New(PrizeTier("match_3_special"), "match_3_special")
	TierMatch3           = enum.New(PrizeTier("match_3"), "match_3")
	TierMatch2Special    = enum.New(PrizeTier("match_2_special"), "match_2_special")
	TierMatch1Special    = enum.New(PrizeTier("match_1_special"), "match_1_special")
	TierMatchSpecialOnly = enum.New(PrizeTier("match_special_only"), "match_special_only")
)
