package model

type DrawResult struct {
	ID             string `json:"id"`
	Game           string `json:"game"`
	DrawDate       string `json:"draw_date"`
	DrawTime       string `json:"draw_time"`
	DrawNumber     int    `json:"draw_number"`
	WinningNumbers []int  `json:"winning_numbers"`
	SpecialNumber  int    `json:"special_number"`
	Multiplier     int    `json:"multiplier"`
	JackpotAmount  string `json:"jackpot_amount"`
	IsVerified     bool   `json:"is_verified"`
	VerifiedAt     string `json:"verified_at,omitempty"`
	Source         string `json:"source"`
}

type Ticket struct {
	ID              string `json:"id"`
	Numbers         []int  `json:"numbers"`
	SpecialNumber   int    `json:"special_number"`
	MultiplierOptIn bool   `json:"multiplier_opt_in"`
	MultiplierValue int    `json:"multiplier_value,omitempty"`
	MatchedMain     int    `json:"matched_main"`
	MatchedSpecial  bool   `json:"matched_special"`
	PrizeTier       string `json:"prize_tier"`
	PrizeAmount     string `json:"prize_amount"`
	SettledAt       string `json:"settled_at,omitempty"`
}

type Order struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	Game            string   `json:"game"`
	DrawDate        string   `json:"draw_date"`
	Status          string   `json:"status"`
	ExchangeRate    string   `json:"exchange_rate"`
	TotalWinningUSD string   `json:"total_winning_usd"`
	TotalWinningTHB string   `json:"total_winning_thb"`
	DrawCheckedAt   string   `json:"draw_checked_at,omitempty"`
	Tickets         []Ticket `json:"tickets"`
}

type SweepSummary struct {
	RunID          string   `json:"run_id"`
	StartedAt      string   `json:"started_at"`
	DurationMillis int64    `json:"duration_millis"`
	Eligible       int      `json:"eligible"`
	Settled        int      `json:"settled"`
	Skipped        int      `json:"skipped"`
	MissingDraw    int      `json:"missing_draw"`
	Failed         int      `json:"failed"`
	FailedOrderIDs []string `json:"failed_order_ids"`
}
