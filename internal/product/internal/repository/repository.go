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

	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrInsufficientStock = dao.ErrInsufficientStock

type ProductRepository interface {
	FindSKUBySN(ctx context.Context, sn string) (domain.SKU, error)
	FindSKUByID(ctx context.Context, id int64) (domain.SKU, error)
	AdjustSKUStock(ctx context.Context, skuID int64, delta int64) error
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{
		dao:    d,
		logger: elog.DefaultLogger}
}

type productRepository struct {
	dao    dao.ProductDAO
	logger *elog.Component
}

func (p *productRepository) FindSKUBySN(ctx context.Context, sn string) (domain.SKU, error) {
	sku, err := p.dao.FindSKUBySN(ctx, sn)
	if err != nil {
		return domain.SKU{}, err
	}
	return p.toDomainSKU(sku), err
}

func (p *productRepository) FindSKUByID(ctx context.Context, id int64) (domain.SKU, error) {
	sku, err := p.dao.FindSKUByID(ctx, id)
	if err != nil {
		return domain.SKU{}, err
	}
	return p.toDomainSKU(sku), err
}

func (p *productRepository) AdjustSKUStock(ctx context.Context, skuID int64, delta int64) error {
	return p.dao.UpdateSKUStock(ctx, skuID, delta)
}

func (p *productRepository) toDomainSKU(sku dao.SKU) domain.SKU {
	return domain.SKU{
		ID:         sku.Id,
		SPUID:      sku.SPUID,
		SN:         sku.SN,
		Name:       sku.Name,
		Desc:       sku.Description,
		Price:      sku.Price,
		Stock:      sku.Stock,
		StockLimit: sku.StockLimit,
		Attrs:      sku.Attrs.String,
		Image:      sku.Image,
		Status:     domain.Status(sku.Status),
	}
}
