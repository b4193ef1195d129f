package model

import (
	"database/sql"
	"time"

	"github.com/questx-lab/concierge/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano
const DefaultDateLayout string = "2006-01-02"

func ConvertDrawResult(draw *entity.DrawResult) DrawResult {
	if draw == nil {
		return DrawResult{}
	}

	return DrawResult{
		ID:             draw.ID,
		Game:           string(draw.Game),
		DrawDate:       draw.DrawDate.UTC().Format(DefaultDateLayout),
		DrawTime:       draw.DrawTime,
		DrawNumber:     draw.DrawNumber,
		WinningNumbers: draw.WinningNumbers,
		SpecialNumber:  draw.SpecialNumber,
		Multiplier:     draw.Multiplier,
		JackpotAmount:  draw.JackpotAmount.StringFixed(2),
		IsVerified:     draw.IsVerified,
		VerifiedAt:     convertNullTime(draw.VerifiedAt),
		Source:         draw.Source,
	}
}

func ConvertTicket(ticket *entity.Ticket) Ticket {
	if ticket == nil {
		return Ticket{}
	}

	return Ticket{
		ID:              ticket.ID,
		Numbers:         ticket.Numbers,
		SpecialNumber:   ticket.SpecialNumber,
		MultiplierOptIn: ticket.MultiplierOptIn,
		MultiplierValue: ticket.MultiplierValue,
		MatchedMain:     ticket.MatchedMain,
		MatchedSpecial:  ticket.MatchedSpecial,
		PrizeTier:       string(ticket.PrizeTier),
		PrizeAmount:     ticket.PrizeAmount.StringFixed(2),
		SettledAt:       convertNullTime(ticket.SettledAt),
	}
}

func ConvertOrder(order *entity.Order) Order {
	if order == nil {
		return Order{}
	}

	tickets := []Ticket{}
	for i := range order.Tickets {
		tickets = append(tickets, ConvertTicket(&order.Tickets[i]))
	}

	return Order{
		ID:              order.ID,
		UserID:          order.UserID,
		Game:            string(order.Game),
		DrawDate:        order.DrawDate.UTC().Format(DefaultDateLayout),
		Status:          string(order.Status),
		ExchangeRate:    order.ExchangeRate.String(),
		TotalWinningUSD: order.TotalWinningUSD.StringFixed(2),
		TotalWinningTHB: order.TotalWinningTHB.StringFixed(2),
		DrawCheckedAt:   convertNullTime(order.DrawCheckedAt),
		Tickets:         tickets,
	}
}

func ConvertOrderSettledEvent(order *entity.Order) OrderSettledEvent {
	return OrderSettledEvent{
		OrderID:         order.ID,
		UserID:          order.UserID,
		Game:            string(order.Game),
		DrawDate:        order.DrawDate.UTC().Format(DefaultDateLayout),
		Status:          string(order.Status),
		TotalWinningUSD: order.TotalWinningUSD.StringFixed(2),
		TotalWinningTHB: order.TotalWinningTHB.StringFixed(2),
		SettledAt:       convertNullTime(order.DrawCheckedAt),
	}
}

func convertNullTime(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}

	return t.Time.UTC().Format(DefaultTimeLayout)
}
