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

import (
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/inventory/internal/domain"
	"github.com/ecodeclub/eshop/internal/inventory/internal/service"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type AdminHandler struct {
	svc        service.Service
	productSvc product.Service
}

func NewAdminHandler(svc service.Service, productSvc product.Service) *AdminHandler {
	return &AdminHandler{svc: svc, productSvc: productSvc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/inventory")
	g.POST("/batch/import", ginx.B[ImportBatchReq](h.ImportBatch))
	g.POST("/batch/list", ginx.B[ListBatchesReq](h.ListBatches))
}

// ImportBatch 批次入库, 同时抬高展示库存
func (h *AdminHandler) ImportBatch(ctx *ginx.Context, req ImportBatchReq) (ginx.Result, error) {
	b, err := h.svc.ImportBatch(ctx.Request.Context(), domain.StockBatch{
		SPUID:            req.SPUID,
		SKUID:            req.SKUID,
		BatchCode:        req.BatchCode,
		ImportedQuantity: req.Quantity,
		ImportPrice:      req.ImportPrice,
		ImportedAt:       time.Now().UnixMilli(),
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("批次入库失败: %w", err)
	}
	if err = h.productSvc.AdjustSKUStock(ctx.Request.Context(), req.SKUID, req.Quantity); err != nil {
		return systemErrorResult, fmt.Errorf("抬高展示库存失败: %w", err)
	}
	return ginx.Result{
		Data: ImportBatchResp{BatchCode: b.BatchCode},
	}, nil
}

func (h *AdminHandler) ListBatches(ctx *ginx.Context, req ListBatchesReq) (ginx.Result, error) {
	var (
		eg      errgroup.Group
		batches []domain.StockBatch
		total   int64
	)
	eg.Go(func() error {
		var err error
		batches, err = h.svc.FindBatchesBySKUID(ctx.Request.Context(), req.SKUID)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = h.svc.TotalRemainingBySKUID(ctx.Request.Context(), req.SKUID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListBatchesResp{
			TotalRemaining: total,
			Batches: slice.Map(batches, func(idx int, src domain.StockBatch) Batch {
				return Batch{
					BatchCode:         src.BatchCode,
					ImportedQuantity:  src.ImportedQuantity,
					RemainingQuantity: src.RemainingQuantity,
					ImportPrice:       src.ImportPrice,
					ImportedAt:        src.ImportedAt,
				}
			}),
		},
	}, nil
}
