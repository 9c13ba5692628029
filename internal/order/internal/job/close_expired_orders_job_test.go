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

package job

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	svcmocks "github.com/ecodeclub/eshop/internal/order/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCloseExpiredOrdersJob_CutoffBeyondReservationTTL(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := svcmocks.NewMockService(ctrl)

	orders := []domain.Order{{ID: 100, SN: "sn-expired", Status: domain.StatusPending}}
	var gotCtime int64
	svc.EXPECT().ListExpiredPendingOrders(gomock.Any(), 0, 10, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ int, ctime int64) ([]domain.Order, int64, error) {
			gotCtime = ctime
			return orders, int64(1), nil
		})
	svc.EXPECT().CloseExpiredOrders(gomock.Any(), orders).Return(nil)

	job := NewCloseExpiredOrdersJob(svc, 10, 15)
	require.NoError(t, job.Run(context.Background()))

	// 截止线必须落在预占时限再加冗余之前, 不能提前关正在支付中的订单
	now := time.Now()
	upper := now.Add(-15*time.Minute - 10*time.Second).UnixMilli()
	lower := now.Add(-15*time.Minute - 15*time.Second).UnixMilli()
	assert.LessOrEqual(t, gotCtime, upper)
	assert.GreaterOrEqual(t, gotCtime, lower)
}

func TestCloseExpiredOrdersJob_Paging(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := svcmocks.NewMockService(ctrl)

	batch := []domain.Order{
		{ID: 100, SN: "sn-1", Status: domain.StatusPending},
		{ID: 101, SN: "sn-2", Status: domain.StatusPending},
	}
	rest := []domain.Order{{ID: 102, SN: "sn-3", Status: domain.StatusPending}}
	first := svc.EXPECT().ListExpiredPendingOrders(gomock.Any(), 0, 2, gomock.Any()).
		Return(batch, int64(3), nil)
	svc.EXPECT().ListExpiredPendingOrders(gomock.Any(), 0, 2, gomock.Any()).
		Return(rest, int64(1), nil).After(first)
	svc.EXPECT().CloseExpiredOrders(gomock.Any(), batch).Return(nil)
	svc.EXPECT().CloseExpiredOrders(gomock.Any(), rest).Return(nil)

	job := NewCloseExpiredOrdersJob(svc, 2, 15)
	require.NoError(t, job.Run(context.Background()))
}
