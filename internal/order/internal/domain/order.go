// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusPending       OrderStatus = 1 // 已创建待支付
	StatusPaid          OrderStatus = 2 // 已支付, 已向承运商下揽收单
	StatusCancelled     OrderStatus = 3 // 已取消, 终态
	StatusPaymentFailed OrderStatus = 4 // 支付后发货失败, 等待人工对账
	StatusShipped       OrderStatus = 5 // 承运商已揽收
	StatusDelivered     OrderStatus = 6 // 已签收, 终态
)

// 状态机: 待支付可以走向支付成功/取消/支付失败, 支付成功后只能沿物流推进。
// 已揽收之后不允许取消
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending: {StatusPaid, StatusCancelled, StatusPaymentFailed},
	StatusPaid:    {StatusShipped},
	StatusShipped: {StatusDelivered},
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

type Receiver struct {
	Name  string
	Phone string
}

type Address struct {
	Province string
	City     string
	Detail   string
	Zip      string
}

type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	// Channel 支付渠道, 见 payment 模块的 ChannelType
	Channel int64
	// SubtotalAmount 商品小计, 单位为分
	SubtotalAmount int64
	// ShippingFee 运费, 单位为分
	ShippingFee int64
	// TotalAmount 实付总额 = 小计 + 运费, 下单时一次性算定, 之后不再重算
	TotalAmount    int64
	Receiver       Receiver
	Address        Address
	Carrier        string
	TrackingNumber string
	Status         OrderStatus
	Items          []OrderItem
	Ctime          int64
	Utime          int64
}

// CheckoutResult 下单结果。微信渠道返回二维码链接,
// 货到付款渠道订单里已带运单号
type CheckoutResult struct {
	Order         Order
	WechatCodeURL string
}

type OrderItem struct {
	ID      int64
	OrderID int64
	SPUID   int64
	SKUID   int64
	SKUSN   string
	SKUName string
	// Price 下单时单价快照, 单位为分
	Price    int64
	Quantity int64
	// BatchCode 履约批次号, FIFO分配成功后回填
	BatchCode string
}
