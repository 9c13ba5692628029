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

package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
)

type CartCache interface {
	GetCart(ctx context.Context, uid int64) (domain.Cart, error)
	SetCart(ctx context.Context, cart domain.Cart) error
	DelCart(ctx context.Context, uid int64) error
}

type CartECache struct {
	ec ecache.Cache
}

func NewCartECache(ec ecache.Cache) CartCache {
	return &CartECache{
		ec: &ecache.NamespaceCache{
			Namespace: "cart:",
			C:         ec,
		},
	}
}

func (c *CartECache) GetCart(ctx context.Context, uid int64) (domain.Cart, error) {
	val := c.ec.Get(ctx, c.cartKey(uid))
	if val.KeyNotFound() {
		// 没有购物车记录等价于空购物车
		return domain.Cart{Uid: uid}, nil
	}
	data, err := val.AsString()
	if err != nil {
		return domain.Cart{}, err
	}
	var items []domain.CartItem
	if err = json.Unmarshal([]byte(data), &items); err != nil {
		return domain.Cart{}, fmt.Errorf("解析购物车数据失败: %w", err)
	}
	return domain.Cart{Uid: uid, Items: items}, nil
}

func (c *CartECache) SetCart(ctx context.Context, cart domain.Cart) error {
	data, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("序列化购物车数据失败: %w", err)
	}
	return c.ec.Set(ctx, c.cartKey(cart.Uid), string(data), 0)
}

func (c *CartECache) DelCart(ctx context.Context, uid int64) error {
	_, err := c.ec.Delete(ctx, c.cartKey(uid))
	return err
}

func (c *CartECache) cartKey(uid int64) string {
	return fmt.Sprintf("user:%d", uid)
}
