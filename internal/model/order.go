package model

type GetOrderRequest struct {
	ID string `form:"id" json:"id"`
}

type GetOrderResponse struct {
	Order Order `json:"order"`
}

type UpdateOrderPayoutStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type UpdateOrderPayoutStatusResponse struct{}
