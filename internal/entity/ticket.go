package entity

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

type Ticket struct {
	Base

	OrderID string   `gorm:"type:varchar(64);index"`
	Game    GameType `gorm:"type:varchar(32)"`

	Numbers       Array[int]
	SpecialNumber int

	MultiplierOptIn bool
	MultiplierValue int

	// Settlement results, written once when the owning order is settled.
	MatchedMain    int
	MatchedSpecial bool
	PrizeTier      PrizeTier       `gorm:"type:varchar(32)"`
	PrizeAmount    decimal.Decimal `gorm:"type:decimal(20,2)"`
	SettledAt      sql.NullTime
}
