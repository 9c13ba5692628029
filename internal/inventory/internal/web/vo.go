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

// ImportBatchReq 批次入库请求
type ImportBatchReq struct {
	SPUID       int64  `json:"spuID"`
	SKUID       int64  `json:"skuID"`
	BatchCode   string `json:"batchCode,omitempty"` // 不传则自动生成
	Quantity    int64  `json:"quantity"`
	ImportPrice int64  `json:"importPrice"` // 进货单价, 单位为分
}

type ImportBatchResp struct {
	BatchCode string `json:"batchCode"`
}

// ListBatchesReq 查询SKU的全部批次
type ListBatchesReq struct {
	SKUID int64 `json:"skuID"`
}

type ListBatchesResp struct {
	TotalRemaining int64   `json:"totalRemaining"`
	Batches        []Batch `json:"batches"`
}

type Batch struct {
	BatchCode         string `json:"batchCode"`
	ImportedQuantity  int64  `json:"importedQuantity"`
	RemainingQuantity int64  `json:"remainingQuantity"`
	ImportPrice       int64  `json:"importPrice"`
	ImportedAt        int64  `json:"importedAt"`
}
