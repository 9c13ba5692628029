package errs

var (
	SystemError              = ErrorCode{Code: 504001, Msg: "系统错误"}
	OutOfStock               = ErrorCode{Code: 504002, Msg: "商品库存不足"}
	InsufficientBatchStock   = ErrorCode{Code: 504003, Msg: "仓内批次库存不足"}
	PaymentSetupFailed       = ErrorCode{Code: 504004, Msg: "发起支付失败"}
	ShipmentCreationFailed   = ErrorCode{Code: 504005, Msg: "创建运单失败"}
	EmptyCart                = ErrorCode{Code: 504006, Msg: "购物车为空"}
	OrderNotFound            = ErrorCode{Code: 504007, Msg: "订单未找到"}
	InvalidOrderStatus       = ErrorCode{Code: 504008, Msg: "订单状态非法"}
	DuplicateCheckoutAttempt = ErrorCode{Code: 504009, Msg: "重复请求"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
