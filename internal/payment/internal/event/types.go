package event

const PaymentEventName = "payment_events"

// PaymentEvent 只携带订单号和终态, 下游按需回查
type PaymentEvent struct {
	OrderSN string
	Status  uint8
}
