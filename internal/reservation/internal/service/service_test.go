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
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/reservation/internal/domain"
	repomocks "github.com/ecodeclub/eshop/internal/reservation/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Reserve(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockReservationRepository(ctrl)
	svc := NewService(repo)

	items := []domain.ReservationItem{
		{SPUID: 1, SKUID: 11, Quantity: 2},
		{SPUID: 1, SKUID: 12, Quantity: 1},
	}
	advertised := map[int64]int64{11: 10, 12: 5}
	repo.EXPECT().Reserve(gomock.Any(), gomock.Any(), advertised).
		DoAndReturn(func(_ context.Context, r domain.Reservation, _ map[int64]int64) error {
			assert.Equal(t, "order-sn-1", r.OrderSN)
			assert.Equal(t, items, r.Items)
			assert.Equal(t, domain.ReservationStatusReserved, r.Status)
			assert.Greater(t, r.ExpiresAt, r.Ctime)
			return nil
		})

	r, err := svc.Reserve(context.Background(), "order-sn-1", items, advertised, 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusReserved, r.Status)
	assert.Equal(t, r.Ctime+(15*time.Minute).Milliseconds(), r.ExpiresAt)
}

func TestService_Reserve_InvalidItems(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := NewService(repomocks.NewMockReservationRepository(ctrl))

	testCases := []struct {
		name  string
		items []domain.ReservationItem
	}{
		{
			name:  "条目为空",
			items: nil,
		},
		{
			name:  "数量为零",
			items: []domain.ReservationItem{{SPUID: 1, SKUID: 11, Quantity: 0}},
		},
		{
			name:  "数量为负",
			items: []domain.ReservationItem{{SPUID: 1, SKUID: 11, Quantity: -3}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Reserve(context.Background(), "order-sn-1", tc.items, nil, time.Minute)
			assert.ErrorIs(t, err, ErrInvalidReservation)
		})
	}
}

func TestService_SweepExpired(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockReservationRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().ExpiredOrderSNs(gomock.Any(), gomock.Any()).
		Return([]string{"sn-reserved", "sn-confirmed", "sn-gone"}, nil)
	// 仍在预占中, 清扫释放
	repo.EXPECT().FindByOrderSN(gomock.Any(), "sn-reserved").
		Return(domain.Reservation{OrderSN: "sn-reserved", Status: domain.ReservationStatusReserved}, nil)
	repo.EXPECT().Release(gomock.Any(), "sn-reserved").Return(nil)
	// 迟到的确认赢了, 只清索引
	repo.EXPECT().FindByOrderSN(gomock.Any(), "sn-confirmed").
		Return(domain.Reservation{OrderSN: "sn-confirmed", Status: domain.ReservationStatusConfirmed}, nil)
	repo.EXPECT().RemoveFromExpiryIndex(gomock.Any(), "sn-confirmed").Return(nil)
	// 兜底TTL已删掉记录, 同样只清索引
	repo.EXPECT().FindByOrderSN(gomock.Any(), "sn-gone").
		Return(domain.Reservation{}, ErrReservationNotFound)
	repo.EXPECT().RemoveFromExpiryIndex(gomock.Any(), "sn-gone").Return(nil)

	released, err := svc.SweepExpired(context.Background())
	require.NoError(t, err)
	require.Len(t, released, 1)
	assert.Equal(t, "sn-reserved", released[0].OrderSN)
	assert.Equal(t, domain.ReservationStatusReleased, released[0].Status)
}
