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

package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/eshop/internal/inventory/internal/domain"
	"github.com/ecodeclub/eshop/internal/inventory/internal/repository"
)

var (
	ErrInsufficientBatchStock = repository.ErrInsufficientBatchStock
	ErrDuplicatedBatchCode    = repository.ErrDuplicatedBatchCode
)

//go:generate mockgen -source=./service.go -package=inventorymocks -destination=../../mocks/inventory.mock.go Service
type Service interface {
	// ImportBatch 入库一个新批次, 批次号为空时自动生成
	ImportBatch(ctx context.Context, b domain.StockBatch) (domain.StockBatch, error)
	FindBatchesBySKUID(ctx context.Context, skuID int64) ([]domain.StockBatch, error)
	TotalRemainingBySKUID(ctx context.Context, skuID int64) (int64, error)
	// AllocateFIFO 为一个订单项分配批次库存。
	// 分配不足时无任何副作用, 返回 ErrInsufficientBatchStock。
	// 同一订单项重复调用返回已有分配结果。
	AllocateFIFO(ctx context.Context, skuID, qty, orderItemID int64) (domain.Allocation, error)
	// Release 释放订单项占用的全部批次数量, 幂等
	Release(ctx context.Context, orderItemID int64) error
}

func NewService(repo repository.InventoryRepository, node *snowflake.Node) Service {
	return &service{repo: repo, node: node}
}

type service struct {
	repo repository.InventoryRepository
	node *snowflake.Node
}

func (s *service) ImportBatch(ctx context.Context, b domain.StockBatch) (domain.StockBatch, error) {
	if b.ImportedQuantity <= 0 {
		return domain.StockBatch{}, fmt.Errorf("入库数量非法: %d", b.ImportedQuantity)
	}
	if b.BatchCode == "" {
		b.BatchCode = fmt.Sprintf("BAT-%s", s.node.Generate().String())
	}
	return s.repo.CreateBatch(ctx, b)
}

func (s *service) FindBatchesBySKUID(ctx context.Context, skuID int64) ([]domain.StockBatch, error) {
	return s.repo.FindBatchesBySKUID(ctx, skuID)
}

func (s *service) TotalRemainingBySKUID(ctx context.Context, skuID int64) (int64, error) {
	return s.repo.TotalRemainingBySKUID(ctx, skuID)
}

func (s *service) AllocateFIFO(ctx context.Context, skuID, qty, orderItemID int64) (domain.Allocation, error) {
	if qty <= 0 {
		return domain.Allocation{}, fmt.Errorf("分配数量非法: %d", qty)
	}
	return s.repo.AllocateFIFO(ctx, skuID, qty, orderItemID)
}

func (s *service) Release(ctx context.Context, orderItemID int64) error {
	return s.repo.ReleaseByOrderItemID(ctx, orderItemID)
}
