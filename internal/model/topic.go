package model

var (
	OrderSettledTopic = "order_settled"
)
