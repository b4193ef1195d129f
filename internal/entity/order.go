package entity

import (
	"database/sql"
	"time"

	"github.com/questx-lab/concierge/pkg/enum"
	"github.com/shopspring/decimal"
)

type OrderStatus string

var (
	OrderPending          = enum.New(OrderStatus("pending"), "pending")
	OrderPaymentPending   = enum.New(OrderStatus("payment_pending"), "payment_pending")
	OrderPaymentFailed    = enum.New(OrderStatus("payment_failed"), "payment_failed")
	OrderConfirmed        = enum.New(OrderStatus("confirmed"), "confirmed")
	OrderPurchasedUSA     = enum.New(OrderStatus("purchased_usa"), "purchased_usa")
	OrderWaitingDraw      = enum.New(OrderStatus("waiting_draw"), "waiting_draw")
	OrderNoWin            = enum.New(OrderStatus("no_win"), "no_win")
	OrderPartialWin       = enum.New(OrderStatus("partial_win"), "partial_win")
	OrderJackpot          = enum.New(OrderStatus("jackpot"), "jackpot")
	OrderPayoutProcessing = enum.New(OrderStatus("payout_processing"), "payout_processing")
	OrderCompleted        = enum.New(OrderStatus("completed"), "completed")
	OrderCancelled        = enum.New(OrderStatus("cancelled"), "cancelled")
)

// IsSettled reports whether the order has already been evaluated against its
// draw. Settled orders must never be evaluated again.
func (s OrderStatus) IsSettled() bool {
	switch s {
	case OrderNoWin, OrderPartialWin, OrderJackpot, OrderPayoutProcessing, OrderCompleted:
		return true
	}

	return false
}

// IsWin reports whether the order has something to pay out.
func (s OrderStatus) IsWin() bool {
	return s == OrderPartialWin || s == OrderJackpot
}

var payoutTransitions = map[OrderStatus][]OrderStatus{
	OrderPartialWin:       {OrderPayoutProcessing},
	OrderJackpot:          {OrderPayoutProcessing},
	OrderPayoutProcessing: {OrderCompleted},
}

// CanPayoutTransition reports whether the payout workflow may move an order
// from s to next.
func (s OrderStatus) CanPayoutTransition(next OrderStatus) bool {
	for _, allowed := range payoutTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Order is a purchase of one or more tickets for one game and one draw date.
type Order struct {
	Base

	UserID   string    `gorm:"type:varchar(64);index"`
	Game     GameType  `gorm:"type:varchar(32)"`
	DrawDate time.Time `gorm:"index:idx_orders_status_draw_date,priority:2"`

	Status OrderStatus `gorm:"type:varchar(32);index:idx_orders_status_draw_date,priority:1"`

	// ExchangeRate is the USD to THB rate captured at purchase time.
	ExchangeRate    decimal.Decimal `gorm:"type:decimal(20,6)"`
	TotalWinningUSD decimal.Decimal `gorm:"type:decimal(20,2)"`
	TotalWinningTHB decimal.Decimal `gorm:"type:decimal(20,2)"`

	DrawCheckedAt sql.NullTime

	Tickets []Ticket `gorm:"foreignKey:OrderID"`
}
