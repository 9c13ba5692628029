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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/inventory/internal/domain"
	"github.com/ecodeclub/eshop/internal/inventory/internal/repository/dao"
)

var (
	ErrInsufficientBatchStock = dao.ErrInsufficientBatchStock
	ErrDuplicatedBatchCode    = dao.ErrDuplicatedBatchCode
)

type InventoryRepository interface {
	CreateBatch(ctx context.Context, b domain.StockBatch) (domain.StockBatch, error)
	FindBatchesBySKUID(ctx context.Context, skuID int64) ([]domain.StockBatch, error)
	TotalRemainingBySKUID(ctx context.Context, skuID int64) (int64, error)
	AllocateFIFO(ctx context.Context, skuID, qty, orderItemID int64) (domain.Allocation, error)
	ReleaseByOrderItemID(ctx context.Context, orderItemID int64) error
}

func NewInventoryRepository(d dao.InventoryDAO) InventoryRepository {
	return &inventoryRepository{d: d}
}

type inventoryRepository struct {
	d dao.InventoryDAO
}

func (r *inventoryRepository) CreateBatch(ctx context.Context, b domain.StockBatch) (domain.StockBatch, error) {
	id, err := r.d.CreateBatch(ctx, dao.StockBatch{
		SPUID:            b.SPUID,
		SKUID:            b.SKUID,
		BatchCode:        b.BatchCode,
		ImportedQuantity: b.ImportedQuantity,
		ImportPrice:      b.ImportPrice,
		ImportedAt:       b.ImportedAt,
	})
	if err != nil {
		return domain.StockBatch{}, err
	}
	b.ID = id
	b.RemainingQuantity = b.ImportedQuantity
	return b, nil
}

func (r *inventoryRepository) FindBatchesBySKUID(ctx context.Context, skuID int64) ([]domain.StockBatch, error) {
	batches, err := r.d.FindBatchesBySKUID(ctx, skuID)
	if err != nil {
		return nil, err
	}
	return slice.Map(batches, func(idx int, src dao.StockBatch) domain.StockBatch {
		return r.toDomainBatch(src)
	}), nil
}

func (r *inventoryRepository) TotalRemainingBySKUID(ctx context.Context, skuID int64) (int64, error) {
	return r.d.TotalRemainingBySKUID(ctx, skuID)
}

func (r *inventoryRepository) AllocateFIFO(ctx context.Context, skuID, qty, orderItemID int64) (domain.Allocation, error) {
	rows, err := r.d.AllocateFIFO(ctx, skuID, qty, orderItemID)
	if err != nil {
		return domain.Allocation{}, err
	}
	res := domain.Allocation{
		OrderItemID: orderItemID,
		Records: slice.Map(rows, func(idx int, src dao.StockAllocation) domain.AllocationRecord {
			return domain.AllocationRecord{
				ID:          src.Id,
				OrderItemID: src.OrderItemId,
				BatchID:     src.BatchId,
				BatchCode:   src.BatchCode,
				Quantity:    src.Quantity,
				Status:      domain.AllocationStatus(src.Status),
			}
		}),
	}
	if len(res.Records) > 0 {
		res.BatchCode = res.Records[0].BatchCode
	}
	return res, nil
}

func (r *inventoryRepository) ReleaseByOrderItemID(ctx context.Context, orderItemID int64) error {
	return r.d.ReleaseByOrderItemID(ctx, orderItemID)
}

func (r *inventoryRepository) toDomainBatch(b dao.StockBatch) domain.StockBatch {
	return domain.StockBatch{
		ID:                b.Id,
		SPUID:             b.SPUID,
		SKUID:             b.SKUID,
		BatchCode:         b.BatchCode,
		ImportedQuantity:  b.ImportedQuantity,
		RemainingQuantity: b.RemainingQuantity,
		ImportPrice:       b.ImportPrice,
		ImportedAt:        b.ImportedAt,
		Ctime:             b.Ctime,
		Utime:             b.Utime,
	}
}
