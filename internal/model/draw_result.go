package model

type CreateDrawResultRequest struct {
	Game           string `json:"game"`
	DrawDate       string `json:"draw_date"`
	DrawTime       string `json:"draw_time"`
	DrawNumber     int    `json:"draw_number"`
	WinningNumbers []int  `json:"winning_numbers"`
	SpecialNumber  int    `json:"special_number"`
	Multiplier     int    `json:"multiplier"`
	JackpotAmount  string `json:"jackpot_amount"`
	// IsVerified defaults to true. A draw stored with false is staged and is
	// not settled until VerifyDrawResult is called.
	IsVerified *bool  `json:"is_verified"`
	Source     string `json:"source"`
}

type CreateDrawResultResponse struct {
	ID string `json:"id"`
}

type GetDrawResultRequest struct {
	Game     string `form:"game" json:"game"`
	DrawDate string `form:"draw_date" json:"draw_date"`
}

type GetDrawResultResponse struct {
	DrawResult DrawResult `json:"draw_result"`
}

type VerifyDrawResultRequest struct {
	ID string `json:"id"`
}

type VerifyDrawResultResponse struct {
	DrawResult DrawResult `json:"draw_result"`
}
