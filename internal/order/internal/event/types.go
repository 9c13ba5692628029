package event

const paymentEvents = "payment_events"

// PaymentEvent 与 payment 模块的事件结构保持一致
type PaymentEvent struct {
	OrderSN string
	Status  uint8
}

const (
	paymentStatusPaidSuccess uint8 = 3
	paymentStatusPaidFailed  uint8 = 4
)
