package testutil

import (
	"context"
	"database/sql"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/questx-lab/concierge/internal/entity"
	"github.com/questx-lab/concierge/pkg/xcontext"
	"github.com/shopspring/decimal"
)

// DrawDate is the draw every sample belongs to unless overwritten.
var DrawDate = time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

// SampleDrawResult returns a verified Powerball draw with winning numbers
// {5, 12, 23, 34, 69} and special 7. Non-zero fields of init overwrite the
// sample.
func SampleDrawResult(init *entity.DrawResult) *entity.DrawResult {
	sample := &entity.DrawResult{
		Base:           entity.Base{ID: uuid.NewString()},
		Game:           entity.Powerball,
		DrawDate:       DrawDate,
		DrawTime:       "22:59",
		DrawNumber:     1578,
		WinningNumbers: entity.Array[int]{5, 12, 23, 34, 69},
		SpecialNumber:  7,
		JackpotAmount:  decimal.NewFromInt(120_000_000),
		IsVerified:     true,
		VerifiedAt:     sql.NullTime{Time: DrawDate.Add(24 * time.Hour), Valid: true},
		Source:         "powerball.com",
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	return sample
}

// SampleTicket returns a Powerball ticket without any settlement result.
func SampleTicket(numbers []int, special int) entity.Ticket {
	return entity.Ticket{
		Base:          entity.Base{ID: uuid.NewString()},
		Game:          entity.Powerball,
		Numbers:       numbers,
		SpecialNumber: special,
		PrizeAmount:   decimal.Zero,
	}
}

// SampleOrder returns a Powerball order waiting for DrawDate with the given
// tickets. Non-zero fields of init overwrite the sample.
func SampleOrder(init *entity.Order, tickets ...entity.Ticket) *entity.Order {
	sample := &entity.Order{
		Base:            entity.Base{ID: uuid.NewString()},
		UserID:          uuid.NewString(),
		Game:            entity.Powerball,
		DrawDate:        DrawDate,
		Status:          entity.OrderWaitingDraw,
		ExchangeRate:    decimal.RequireFromString("36.5"),
		TotalWinningUSD: decimal.Zero,
		TotalWinningTHB: decimal.Zero,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	for i := range tickets {
		tickets[i].OrderID = sample.ID
		if tickets[i].Game == "" {
			tickets[i].Game = sample.Game
		}
	}
	sample.Tickets = tickets

	return sample
}

// InsertOrder stores order and its tickets.
func InsertOrder(ctx context.Context, order *entity.Order) {
	if err := xcontext.DB(ctx).Create(order).Error; err != nil {
		panic(err)
	}
}

// InsertDrawResult stores draw.
func InsertDrawResult(ctx context.Context, draw *entity.DrawResult) {
	if err := xcontext.DB(ctx).Create(draw).Error; err != nil {
		panic(err)
	}
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.IsZero() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
