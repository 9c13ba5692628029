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

package web

// CheckoutReq 结算请求, 商品信息来自服务端购物车而非请求体
type CheckoutReq struct {
	RequestID string   `json:"requestID"` // 请求去重, 防止订单重复提交
	Channel   int64    `json:"channel"`   // 1 货到付款, 2 微信
	Receiver  Receiver `json:"receiver"`
	Address   Address  `json:"address"`
}

type Receiver struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Address struct {
	Province string `json:"province"`
	City     string `json:"city"`
	Detail   string `json:"detail"`
	Zip      string `json:"zip"`
}

type CheckoutResp struct {
	OrderSN        string `json:"orderSN"` // 前端用于轮询订单状态
	Status         uint8  `json:"status"`
	TotalAmount    int64  `json:"totalAmount"`
	WechatCodeURL  string `json:"wechatCodeURL,omitempty"`
	Carrier        string `json:"carrier,omitempty"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
}

// RetrieveOrderStatusReq 获取订单状态
type RetrieveOrderStatusReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderStatusResp struct {
	OrderStatus uint8 `json:"status"`
}

// ListOrdersReq 分页查询用户所有订单
type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

// RetrieveOrderDetailReq 获取订单详情
type RetrieveOrderDetailReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

// CancelOrderReq 取消订单
type CancelOrderReq struct {
	OrderSN string `json:"sn"`
}

type Order struct {
	SN             string      `json:"sn"`
	Channel        int64       `json:"channel"`
	SubtotalAmount int64       `json:"subtotalAmount"`
	ShippingFee    int64       `json:"shippingFee"`
	TotalAmount    int64       `json:"totalAmount"`
	Receiver       Receiver    `json:"receiver"`
	Address        Address     `json:"address"`
	Carrier        string      `json:"carrier,omitempty"`
	TrackingNumber string      `json:"trackingNumber,omitempty"`
	Status         uint8       `json:"status"`
	Items          []OrderItem `json:"items"`
	Ctime          int64       `json:"ctime"`
	Utime          int64       `json:"utime"`
}

type OrderItem struct {
	SKUSN     string `json:"skuSN"`
	SKUName   string `json:"skuName"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	BatchCode string `json:"batchCode,omitempty"`
}

type ChannelsResp struct {
	Channels []ChannelItem `json:"channels"`
}

type ChannelItem struct {
	Type int64  `json:"type"` // 1 货到付款, 2 微信
	Desc string `json:"desc"`
}
