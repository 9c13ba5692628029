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
	"errors"

	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/cache"
)

var ErrInvalidQuantity = errors.New("商品数量非法")

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go Service
type Service interface {
	GetCart(ctx context.Context, uid int64) (domain.Cart, error)
	AddItem(ctx context.Context, uid int64, item domain.CartItem) error
	RemoveItem(ctx context.Context, uid int64, skuSN string) error
	// ClearCart 在订单完成批次分配之后才会被调用
	ClearCart(ctx context.Context, uid int64) error
}

func NewService(c cache.CartCache) Service {
	return &service{cache: c}
}

type service struct {
	cache cache.CartCache
}

func (s *service) GetCart(ctx context.Context, uid int64) (domain.Cart, error) {
	return s.cache.GetCart(ctx, uid)
}

func (s *service) AddItem(ctx context.Context, uid int64, item domain.CartItem) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	cart, err := s.cache.GetCart(ctx, uid)
	if err != nil {
		return err
	}
	found := false
	for i := range cart.Items {
		if cart.Items[i].SKUSN == item.SKUSN {
			cart.Items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, item)
	}
	return s.cache.SetCart(ctx, cart)
}

func (s *service) RemoveItem(ctx context.Context, uid int64, skuSN string) error {
	cart, err := s.cache.GetCart(ctx, uid)
	if err != nil {
		return err
	}
	items := make([]domain.CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		if it.SKUSN != skuSN {
			items = append(items, it)
		}
	}
	cart.Items = items
	return s.cache.SetCart(ctx, cart)
}

func (s *service) ClearCart(ctx context.Context, uid int64) error {
	return s.cache.DelCart(ctx, uid)
}
