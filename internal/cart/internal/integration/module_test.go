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

//go:build e2e

package integration

import (
	"context"
	"testing"

	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/cart/internal/service"
	testioc "github.com/ecodeclub/eshop/internal/test/ioc"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestCartModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	rdb redis.Cmdable
	svc service.Service
}

func (s *ModuleTestSuite) SetupSuite() {
	s.rdb = testioc.InitRedis()
	s.svc = service.NewService(cache.NewCartECache(testioc.InitCache()))
}

func (s *ModuleTestSuite) TearDownTest() {
	ctx := context.Background()
	keys, err := s.rdb.Keys(ctx, "eshop:cart:*").Result()
	require.NoError(s.T(), err)
	if len(keys) > 0 {
		require.NoError(s.T(), s.rdb.Del(ctx, keys...).Err())
	}
}

func (s *ModuleTestSuite) TestGetCart_Empty() {
	t := s.T()

	c, err := s.svc.GetCart(context.Background(), 234)
	require.NoError(t, err)
	assert.Equal(t, int64(234), c.Uid)
	assert.Empty(t, c.Items)
}

func (s *ModuleTestSuite) TestAddItem() {
	t := s.T()
	ctx := context.Background()

	require.NoError(t, s.svc.AddItem(ctx, 234, domain.CartItem{SKUSN: "sku-11", Quantity: 2}))
	require.NoError(t, s.svc.AddItem(ctx, 234, domain.CartItem{SKUSN: "sku-12", Quantity: 1}))
	// 相同SKU合并数量
	require.NoError(t, s.svc.AddItem(ctx, 234, domain.CartItem{SKUSN: "sku-11", Quantity: 3}))

	c, err := s.svc.GetCart(ctx, 234)
	require.NoError(t, err)
	assert.Equal(t, []domain.CartItem{
		{SKUSN: "sku-11", Quantity: 5},
		{SKUSN: "sku-12", Quantity: 1},
	}, c.Items)
}

func (s *ModuleTestSuite) TestAddItem_InvalidQuantity() {
	t := s.T()

	err := s.svc.AddItem(context.Background(), 234, domain.CartItem{SKUSN: "sku-11", Quantity: 0})
	assert.ErrorIs(t, err, service.ErrInvalidQuantity)
}

func (s *ModuleTestSuite) TestRemoveItem() {
	t := s.T()
	ctx := context.Background()

	require.NoError(t, s.svc.AddItem(ctx, 234, domain.CartItem{SKUSN: "sku-11", Quantity: 2}))
	require.NoError(t, s.svc.AddItem(ctx, 234, domain.CartItem{SKUSN: "sku-12", Quantity: 1}))

	require.NoError(t, s.svc.RemoveItem(ctx, 234, "sku-11"))
	c, err := s.svc.GetCart(ctx, 234)
	require.NoError(t, err)
	assert.Equal(t, []domain.CartItem{{SKUSN: "sku-12", Quantity: 1}}, c.Items)

	// 删除不存在的SKU是空操作
	require.NoError(t, s.svc.RemoveItem(ctx, 234, "sku-unknown"))
}

func (s *ModuleTestSuite) TestClearCart() {
	t := s.T()
	ctx := context.Background()

	require.NoError(t, s.svc.AddItem(ctx, 234, domain.CartItem{SKUSN: "sku-11", Quantity: 2}))
	require.NoError(t, s.svc.ClearCart(ctx, 234))

	c, err := s.svc.GetCart(ctx, 234)
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	// 清空不存在的购物车也不报错
	require.NoError(t, s.svc.ClearCart(ctx, 235))
}
