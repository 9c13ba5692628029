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
	"strings"
	"testing"

	"github.com/ecodeclub/eshop/internal/inventory/internal/domain"
	"github.com/ecodeclub/eshop/internal/inventory/internal/repository"
	"github.com/ecodeclub/eshop/internal/inventory/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/inventory/internal/service"
	sf "github.com/ecodeclub/eshop/internal/pkg/snowflake"
	testioc "github.com/ecodeclub/eshop/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestInventoryModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.InventoryDAO
	svc service.Service
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewInventoryGORMDAO(s.db)
	node, err := sf.NewNode(1)
	require.NoError(s.T(), err)
	s.svc = service.NewService(repository.NewInventoryRepository(s.dao), node)
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `stock_batches`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `stock_allocations`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TestImportBatch() {
	t := s.T()

	b, err := s.svc.ImportBatch(context.Background(), domain.StockBatch{
		SPUID:            1,
		SKUID:            11,
		ImportedQuantity: 5,
		ImportPrice:      12000,
	})
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	// 未指定批次号时自动生成
	assert.True(t, strings.HasPrefix(b.BatchCode, "BAT-"))
	assert.Equal(t, int64(5), b.RemainingQuantity)

	total, err := s.svc.TotalRemainingBySKUID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func (s *ModuleTestSuite) TestImportBatch_DuplicatedBatchCode() {
	t := s.T()
	ctx := context.Background()

	_, err := s.svc.ImportBatch(ctx, domain.StockBatch{
		SPUID: 1, SKUID: 11, BatchCode: "B-DUP", ImportedQuantity: 5,
	})
	require.NoError(t, err)
	_, err = s.svc.ImportBatch(ctx, domain.StockBatch{
		SPUID: 1, SKUID: 11, BatchCode: "B-DUP", ImportedQuantity: 3,
	})
	assert.ErrorIs(t, err, service.ErrDuplicatedBatchCode)
}

func (s *ModuleTestSuite) TestImportBatch_InvalidQuantity() {
	t := s.T()

	_, err := s.svc.ImportBatch(context.Background(), domain.StockBatch{
		SPUID:            1,
		SKUID:            11,
		ImportedQuantity: 0,
	})
	assert.Error(t, err)
}

func (s *ModuleTestSuite) TestAllocateFIFO_SpansBatches() {
	t := s.T()
	ctx := context.Background()

	// 先入库的批次先被消耗
	_, err := s.svc.ImportBatch(ctx, domain.StockBatch{
		SPUID: 1, SKUID: 11, BatchCode: "B-OLD", ImportedQuantity: 5, ImportedAt: 1000,
	})
	require.NoError(t, err)
	_, err = s.svc.ImportBatch(ctx, domain.StockBatch{
		SPUID: 1, SKUID: 11, BatchCode: "B-NEW", ImportedQuantity: 5, ImportedAt: 2000,
	})
	require.NoError(t, err)

	alloc, err := s.svc.AllocateFIFO(ctx, 11, 7, 1001)
	require.NoError(t, err)
	assert.Equal(t, "B-OLD", alloc.BatchCode)
	require.Len(t, alloc.Records, 2)
	assert.Equal(t, int64(5), alloc.Records[0].Quantity)
	assert.Equal(t, "B-OLD", alloc.Records[0].BatchCode)
	assert.Equal(t, int64(2), alloc.Records[1].Quantity)
	assert.Equal(t, "B-NEW", alloc.Records[1].BatchCode)

	total, err := s.svc.TotalRemainingBySKUID(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	// 同一订单项重复分配返回已有结果, 不再扣减
	again, err := s.svc.AllocateFIFO(ctx, 11, 7, 1001)
	require.NoError(t, err)
	assert.Equal(t, alloc.BatchCode, again.BatchCode)
	require.Len(t, again.Records, 2)
	total, err = s.svc.TotalRemainingBySKUID(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func (s *ModuleTestSuite) TestAllocateFIFO_InsufficientNoSideEffect() {
	t := s.T()
	ctx := context.Background()

	_, err := s.svc.ImportBatch(ctx, domain.StockBatch{
		SPUID: 1, SKUID: 12, BatchCode: "B-ONLY", ImportedQuantity: 3, ImportedAt: 1000,
	})
	require.NoError(t, err)

	_, err = s.svc.AllocateFIFO(ctx, 12, 4, 1002)
	assert.ErrorIs(t, err, service.ErrInsufficientBatchStock)

	// 分配失败不留下任何部分分配
	total, err := s.svc.TotalRemainingBySKUID(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	rows, err := s.dao.FindAllocationsByOrderItemID(ctx, 1002)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func (s *ModuleTestSuite) TestRelease() {
	t := s.T()
	ctx := context.Background()

	_, err := s.svc.ImportBatch(ctx, domain.StockBatch{
		SPUID: 1, SKUID: 13, BatchCode: "B-R1", ImportedQuantity: 5, ImportedAt: 1000,
	})
	require.NoError(t, err)
	_, err = s.svc.ImportBatch(ctx, domain.StockBatch{
		SPUID: 1, SKUID: 13, BatchCode: "B-R2", ImportedQuantity: 5, ImportedAt: 2000,
	})
	require.NoError(t, err)

	_, err = s.svc.AllocateFIFO(ctx, 13, 7, 1003)
	require.NoError(t, err)

	require.NoError(t, s.svc.Release(ctx, 1003))
	total, err := s.svc.TotalRemainingBySKUID(ctx, 13)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)

	// 重复释放是空操作, 不会把数量加爆
	require.NoError(t, s.svc.Release(ctx, 1003))
	total, err = s.svc.TotalRemainingBySKUID(ctx, 13)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)

	// 释放后可以重新分配
	alloc, err := s.svc.AllocateFIFO(ctx, 13, 10, 1003)
	require.NoError(t, err)
	assert.Len(t, alloc.Records, 2)
}
