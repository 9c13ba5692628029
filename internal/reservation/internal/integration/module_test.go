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
	"time"

	"github.com/ecodeclub/eshop/internal/reservation/internal/domain"
	"github.com/ecodeclub/eshop/internal/reservation/internal/repository"
	"github.com/ecodeclub/eshop/internal/reservation/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/reservation/internal/service"
	testioc "github.com/ecodeclub/eshop/internal/test/ioc"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestReservationModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	rdb redis.Cmdable
	svc service.Service
}

func (s *ModuleTestSuite) SetupSuite() {
	s.rdb = testioc.InitRedis()
	s.svc = service.NewService(
		repository.NewReservationRepository(
			cache.NewReservationRedisCache(s.rdb)))
}

func (s *ModuleTestSuite) TearDownTest() {
	ctx := context.Background()
	keys, err := s.rdb.Keys(ctx, "reservation:*").Result()
	require.NoError(s.T(), err)
	if len(keys) > 0 {
		require.NoError(s.T(), s.rdb.Del(ctx, keys...).Err())
	}
}

func (s *ModuleTestSuite) items() []domain.ReservationItem {
	return []domain.ReservationItem{
		{SPUID: 1, SKUID: 11, Quantity: 4},
		{SPUID: 1, SKUID: 12, Quantity: 1},
	}
}

func (s *ModuleTestSuite) advertised() map[int64]int64 {
	return map[int64]int64{11: 10, 12: 5}
}

func (s *ModuleTestSuite) TestReserve() {
	t := s.T()
	ctx := context.Background()

	r, err := s.svc.Reserve(ctx, "sn-1", s.items(), s.advertised(), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusReserved, r.Status)

	found, err := s.svc.FindByOrderSN(ctx, "sn-1")
	require.NoError(t, err)
	assert.Equal(t, s.items(), found.Items)
	assert.Equal(t, domain.ReservationStatusReserved, found.Status)

	// 同一订单号重复预占被拒绝
	_, err = s.svc.Reserve(ctx, "sn-1", s.items(), s.advertised(), time.Minute)
	assert.ErrorIs(t, err, service.ErrDuplicateReservation)
}

func (s *ModuleTestSuite) TestReserve_Insufficient() {
	t := s.T()
	ctx := context.Background()

	_, err := s.svc.Reserve(ctx, "sn-1", s.items(), s.advertised(), time.Minute)
	require.NoError(t, err)

	// sku 11 已被预占4件, 剩余可预占6件, 请求7件整体失败
	_, err = s.svc.Reserve(ctx, "sn-2", []domain.ReservationItem{
		{SPUID: 1, SKUID: 11, Quantity: 7},
	}, s.advertised(), time.Minute)
	assert.ErrorIs(t, err, service.ErrInsufficientStock)

	// 整体失败不产生任何副作用, 6件依然可以预占
	_, err = s.svc.Reserve(ctx, "sn-3", []domain.ReservationItem{
		{SPUID: 1, SKUID: 11, Quantity: 6},
	}, s.advertised(), time.Minute)
	require.NoError(t, err)
}

func (s *ModuleTestSuite) TestConfirm() {
	t := s.T()
	ctx := context.Background()

	_, err := s.svc.Reserve(ctx, "sn-1", s.items(), s.advertised(), time.Minute)
	require.NoError(t, err)

	require.NoError(t, s.svc.Confirm(ctx, "sn-1"))
	found, err := s.svc.FindByOrderSN(ctx, "sn-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, found.Status)

	// 终态幂等, 迟到的释放也不会改变状态
	require.NoError(t, s.svc.Confirm(ctx, "sn-1"))
	require.NoError(t, s.svc.Release(ctx, "sn-1"))
	found, err = s.svc.FindByOrderSN(ctx, "sn-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, found.Status)
}

func (s *ModuleTestSuite) TestRelease() {
	t := s.T()
	ctx := context.Background()

	_, err := s.svc.Reserve(ctx, "sn-1", s.items(), s.advertised(), time.Minute)
	require.NoError(t, err)
	require.NoError(t, s.svc.Release(ctx, "sn-1"))

	found, err := s.svc.FindByOrderSN(ctx, "sn-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusReleased, found.Status)

	// 预占计数已归还, 全量库存可以重新预占
	_, err = s.svc.Reserve(ctx, "sn-2", []domain.ReservationItem{
		{SPUID: 1, SKUID: 11, Quantity: 10},
		{SPUID: 1, SKUID: 12, Quantity: 5},
	}, s.advertised(), time.Minute)
	require.NoError(t, err)
}

func (s *ModuleTestSuite) TestRelease_NotFound() {
	t := s.T()

	err := s.svc.Release(context.Background(), "sn-unknown")
	assert.ErrorIs(t, err, service.ErrReservationNotFound)
}

func (s *ModuleTestSuite) TestSweepExpired() {
	t := s.T()
	ctx := context.Background()

	// 负TTL直接让预占逻辑过期
	_, err := s.svc.Reserve(ctx, "sn-expired", s.items(), s.advertised(), -time.Minute)
	require.NoError(t, err)
	_, err = s.svc.Reserve(ctx, "sn-alive", []domain.ReservationItem{
		{SPUID: 1, SKUID: 12, Quantity: 1},
	}, s.advertised(), time.Hour)
	require.NoError(t, err)

	released, err := s.svc.SweepExpired(ctx)
	require.NoError(t, err)
	require.Len(t, released, 1)
	assert.Equal(t, "sn-expired", released[0].OrderSN)

	found, err := s.svc.FindByOrderSN(ctx, "sn-expired")
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusReleased, found.Status)
	// 未过期的预占不受影响
	found, err = s.svc.FindByOrderSN(ctx, "sn-alive")
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusReserved, found.Status)

	// 再次清扫没有可释放的记录
	released, err = s.svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Empty(t, released)
}
