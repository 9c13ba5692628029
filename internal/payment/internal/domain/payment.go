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

type ChannelType int64

const (
	// ChannelTypeCOD 货到付款, 下单即发货, 货款由承运商代收
	ChannelTypeCOD ChannelType = 1
	// ChannelTypeWechat 微信Native扫码支付
	ChannelTypeWechat ChannelType = 2
)

type Channel struct {
	Type ChannelType
	Desc string
}

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusUnpaid      PaymentStatus = 1
	PaymentStatusProcessing  PaymentStatus = 2
	PaymentStatusPaidSuccess PaymentStatus = 3
	PaymentStatusPaidFailed  PaymentStatus = 4
)
