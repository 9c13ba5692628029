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

	"github.com/ecodeclub/eshop/internal/reservation/internal/domain"
	"github.com/ecodeclub/eshop/internal/reservation/internal/repository/cache"
)

var (
	ErrDuplicateReservation = cache.ErrDuplicateReservation
	ErrInsufficientStock    = cache.ErrInsufficientStock
	ErrReservationNotFound  = cache.ErrReservationNotFound
)

// ReservationRepository 预占记录的唯一写入口。
// 状态流转全部收敛在这里, 请求路径和后台清扫走同一套实现。
//
//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/reservation.mock.go ReservationRepository
type ReservationRepository interface {
	Reserve(ctx context.Context, r domain.Reservation, advertised map[int64]int64) error
	Confirm(ctx context.Context, orderSN string) error
	Release(ctx context.Context, orderSN string) error
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Reservation, error)
	ExpiredOrderSNs(ctx context.Context, now int64) ([]string, error)
	RemoveFromExpiryIndex(ctx context.Context, orderSN string) error
}

func NewReservationRepository(c cache.ReservationCache) ReservationRepository {
	return &reservationRepository{c: c}
}

type reservationRepository struct {
	c cache.ReservationCache
}

func (r *reservationRepository) Reserve(ctx context.Context, res domain.Reservation, advertised map[int64]int64) error {
	return r.c.Reserve(ctx, res, advertised)
}

func (r *reservationRepository) Confirm(ctx context.Context, orderSN string) error {
	return r.c.Confirm(ctx, orderSN)
}

func (r *reservationRepository) Release(ctx context.Context, orderSN string) error {
	return r.c.Release(ctx, orderSN)
}

func (r *reservationRepository) FindByOrderSN(ctx context.Context, orderSN string) (domain.Reservation, error) {
	return r.c.FindByOrderSN(ctx, orderSN)
}

func (r *reservationRepository) ExpiredOrderSNs(ctx context.Context, now int64) ([]string, error) {
	return r.c.ExpiredOrderSNs(ctx, now)
}

func (r *reservationRepository) RemoveFromExpiryIndex(ctx context.Context, orderSN string) error {
	return r.c.RemoveFromExpiryIndex(ctx, orderSN)
}
