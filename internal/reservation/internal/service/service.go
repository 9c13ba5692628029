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
	"fmt"
	"time"

	"github.com/ecodeclub/eshop/internal/reservation/internal/domain"
	"github.com/ecodeclub/eshop/internal/reservation/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrDuplicateReservation = repository.ErrDuplicateReservation
	ErrInsufficientStock    = repository.ErrInsufficientStock
	ErrReservationNotFound  = repository.ErrReservationNotFound
	ErrInvalidReservation   = errors.New("预占明细非法")
)

//go:generate mockgen -source=./service.go -package=reservationmocks -destination=../../mocks/reservation.mock.go Service
type Service interface {
	// Reserve 为一次下单尝试预占全部条目, 原子生效:
	// 任何一项不满足"展示库存-在途预占 >= 请求数量"时整体失败且无副作用。
	// 同一订单号重复调用返回 ErrDuplicateReservation。
	Reserve(ctx context.Context, orderSN string, items []domain.ReservationItem,
		advertised map[int64]int64, ttl time.Duration) (domain.Reservation, error)
	// Confirm 预占转终态"已确认", 对终态记录幂等
	Confirm(ctx context.Context, orderSN string) error
	// Release 预占转终态"已释放"并归还预占计数, 可重复调用
	Release(ctx context.Context, orderSN string) error
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Reservation, error)
	// SweepExpired 释放全部逻辑过期且仍处于预占中的记录, 由后台定时任务调用
	SweepExpired(ctx context.Context) ([]domain.Reservation, error)
}

func NewService(repo repository.ReservationRepository) Service {
	return &service{repo: repo, logger: elog.DefaultLogger}
}

type service struct {
	repo   repository.ReservationRepository
	logger *elog.Component
}

func (s *service) Reserve(ctx context.Context, orderSN string, items []domain.ReservationItem,
	advertised map[int64]int64, ttl time.Duration) (domain.Reservation, error) {
	if len(items) == 0 {
		return domain.Reservation{}, fmt.Errorf("%w: 条目为空", ErrInvalidReservation)
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return domain.Reservation{}, fmt.Errorf("%w: sku_id = %d, quantity = %d",
				ErrInvalidReservation, it.SKUID, it.Quantity)
		}
	}
	now := time.Now()
	r := domain.Reservation{
		OrderSN:   orderSN,
		Items:     items,
		Status:    domain.ReservationStatusReserved,
		Ctime:     now.UnixMilli(),
		ExpiresAt: now.Add(ttl).UnixMilli(),
	}
	if err := s.repo.Reserve(ctx, r, advertised); err != nil {
		return domain.Reservation{}, err
	}
	return r, nil
}

func (s *service) Confirm(ctx context.Context, orderSN string) error {
	return s.repo.Confirm(ctx, orderSN)
}

func (s *service) Release(ctx context.Context, orderSN string) error {
	return s.repo.Release(ctx, orderSN)
}

func (s *service) FindByOrderSN(ctx context.Context, orderSN string) (domain.Reservation, error) {
	return s.repo.FindByOrderSN(ctx, orderSN)
}

func (s *service) SweepExpired(ctx context.Context) ([]domain.Reservation, error) {
	sns, err := s.repo.ExpiredOrderSNs(ctx, time.Now().UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("查询过期预占失败: %w", err)
	}
	released := make([]domain.Reservation, 0, len(sns))
	for _, sn := range sns {
		r, err := s.repo.FindByOrderSN(ctx, sn)
		if err != nil {
			if errors.Is(err, ErrReservationNotFound) {
				// 兜底TTL已经删掉了记录, 只剩索引, 清掉即可
				_ = s.repo.RemoveFromExpiryIndex(ctx, sn)
				continue
			}
			return released, err
		}
		if r.Status != domain.ReservationStatusReserved {
			// 迟到的确认/释放赢了, 过期索引里的残留条目清掉
			_ = s.repo.RemoveFromExpiryIndex(ctx, sn)
			continue
		}
		if err = s.repo.Release(ctx, sn); err != nil {
			s.logger.Error("释放过期预占失败",
				elog.FieldErr(err),
				elog.String("order_sn", sn))
			continue
		}
		r.Status = domain.ReservationStatusReleased
		released = append(released, r)
	}
	return released, nil
}
