package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// DrawResult is the official outcome of one draw. It is created once when the
// result is published and is never changed after it has been verified.
type DrawResult struct {
	Base

	Game     GameType  `gorm:"type:varchar(32);uniqueIndex:idx_draw_results_game_draw_date"`
	DrawDate time.Time `gorm:"uniqueIndex:idx_draw_results_game_draw_date"`
	DrawTime string
	// DrawNumber is the sequence number published by the operator.
	DrawNumber int

	WinningNumbers Array[int]
	SpecialNumber  int

	// Multiplier is zero when the draw did not declare one.
	Multiplier    int
	JackpotAmount decimal.Decimal `gorm:"type:decimal(20,2)"`

	IsVerified bool
	VerifiedAt sql.NullTime
	Source     string
}

func (d *DrawResult) HasMultiplier() bool {
	return d.Multiplier >= 2
}
