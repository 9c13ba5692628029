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

type ReservationStatus uint8

func (s ReservationStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	ReservationStatusReserved  ReservationStatus = 1 // 预占中
	ReservationStatusConfirmed ReservationStatus = 2 // 已确认, 终态
	ReservationStatusReleased  ReservationStatus = 3 // 已释放, 终态
)

// Reservation 一次下单尝试对展示库存的短时预占。
// 以订单序列号为幂等键, 同一订单号只允许存在一条预占记录。
type Reservation struct {
	OrderSN   string
	Items     []ReservationItem
	Status    ReservationStatus
	Ctime     int64
	ExpiresAt int64
}

type ReservationItem struct {
	SPUID    int64 `json:"spu_id"`
	SKUID    int64 `json:"sku_id"`
	Quantity int64 `json:"quantity"`
}
