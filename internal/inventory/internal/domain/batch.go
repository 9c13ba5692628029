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

// StockBatch 一个批次对应一次实物入库, 按入库时间先进先出消耗。
// 剩余数量只能通过分配/释放两个入口变更。
type StockBatch struct {
	ID                int64
	SPUID             int64
	SKUID             int64
	BatchCode         string
	ImportedQuantity  int64
	RemainingQuantity int64
	// ImportPrice 入库单价, 单位为分, 0表示未记录
	ImportPrice int64
	ImportedAt  int64
	Ctime       int64
	Utime       int64
}

type AllocationStatus uint8

func (s AllocationStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	AllocationStatusAllocated AllocationStatus = 1 // 已分配
	AllocationStatusReleased  AllocationStatus = 2 // 已释放
)

// Allocation 一个订单项的一次分配结果。
// 一个订单项可能跨多个批次, Records 完整记录每个批次被消耗的数量,
// BatchCode 是第一个被消耗批次的批次号, 仅用于展示与追溯。
type Allocation struct {
	OrderItemID int64
	BatchCode   string
	Records     []AllocationRecord
}

type AllocationRecord struct {
	ID          int64
	OrderItemID int64
	BatchID     int64
	BatchCode   string
	Quantity    int64
	Status      AllocationStatus
}
