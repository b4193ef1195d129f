package model

type SettleNowRequest struct{}

type SettleNowResponse struct {
	Summary SweepSummary `json:"summary"`
}

// OrderSettledEvent is published to OrderSettledTopic once an order has been
// settled against its draw.
type OrderSettledEvent struct {
	OrderID         string `json:"order_id"`
	UserID          string `json:"user_id"`
	Game            string `json:"game"`
	DrawDate        string `json:"draw_date"`
	Status          string `json:"status"`
	TotalWinningUSD string `json:"total_winning_usd"`
	TotalWinningTHB string `json:"total_winning_thb"`
	SettledAt       string `json:"settled_at"`
}
