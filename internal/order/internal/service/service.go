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

	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/inventory"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/payment"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/reservation"
	"github.com/ecodeclub/eshop/internal/shipping"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyCart              = errors.New("购物车为空")
	ErrOutOfStock             = errors.New("商品库存不足")
	ErrInsufficientBatchStock = errors.New("仓内批次库存不足")
	ErrPaymentSetupFailed     = errors.New("发起支付失败")
	ErrShipmentCreationFailed = errors.New("创建运单失败")
	ErrOrderNotFound          = repository.ErrOrderNotFound
	ErrInvalidOrderStatus     = errors.New("订单状态非法")
	ErrUnsupportedChannel     = errors.New("不支持的支付渠道")
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=./mocks/service.mock.go Service
type Service interface {
	// Checkout 把当前购物车转成订单并按渠道推进到下一个状态。
	// 失败时已落的库存预占/批次分配会被整体回滚
	Checkout(ctx context.Context, uid int64, channel payment.ChannelType,
		receiver domain.Receiver, address domain.Address) (domain.CheckoutResult, error)
	FindOrder(ctx context.Context, uid int64, orderSN string) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error)
	// CancelOrder 用户主动取消, 仅限待支付订单
	CancelOrder(ctx context.Context, uid int64, orderSN string) error
	// HandlePaymentConfirmed 消费支付成功事件, 可重复调用
	HandlePaymentConfirmed(ctx context.Context, orderSN string) error
	// HandlePaymentFailed 消费支付失败事件, 回滚整个下单事务
	HandlePaymentFailed(ctx context.Context, orderSN string) error
	ListExpiredPendingOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error)
	// CloseExpiredOrders 回滚一批超时未支付的订单
	CloseExpiredOrders(ctx context.Context, orders []domain.Order) error
}

type Config struct {
	// ReservationTTL 库存预占的逻辑过期时长
	ReservationTTL time.Duration
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	productSvc product.Service,
	reservationSvc reservation.Service,
	inventorySvc inventory.Service,
	shippingSvc shipping.Service,
	paymentSvc payment.Service,
	snGenerator *sequencenumber.Generator,
	cfg Config) Service {
	return &service{
		repo:           repo,
		cartSvc:        cartSvc,
		productSvc:     productSvc,
		reservationSvc: reservationSvc,
		inventorySvc:   inventorySvc,
		shippingSvc:    shippingSvc,
		paymentSvc:     paymentSvc,
		snGenerator:    snGenerator,
		reservationTTL: cfg.ReservationTTL,
		logger:         elog.DefaultLogger,
	}
}

type service struct {
	repo           repository.OrderRepository
	cartSvc        cart.Service
	productSvc     product.Service
	reservationSvc reservation.Service
	inventorySvc   inventory.Service
	shippingSvc    shipping.Service
	paymentSvc     payment.Service
	snGenerator    *sequencenumber.Generator
	reservationTTL time.Duration
	logger         *elog.Component
}

func (s *service) FindOrder(ctx context.Context, uid int64, orderSN string) (domain.Order, error) {
	return s.repo.FindOrderBySNAndBuyerID(ctx, orderSN, uid)
}

func (s *service) ListOrders(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrders(ctx, offset, limit, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx, uid)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) CancelOrder(ctx context.Context, uid int64, orderSN string) error {
	order, err := s.repo.FindOrderBySNAndBuyerID(ctx, orderSN, uid)
	if err != nil {
		return fmt.Errorf("查找订单失败: %w", err)
	}
	if order.Status != domain.StatusPending {
		return fmt.Errorf("%w: 当前状态 %d", ErrInvalidOrderStatus, order.Status.ToUint8())
	}
	return s.rollback(ctx, order)
}

func (s *service) ListExpiredPendingOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListExpiredPendingOrders(ctx, offset, limit, ctime)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalExpiredPendingOrders(ctx, ctime)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) CloseExpiredOrders(ctx context.Context, orders []domain.Order) error {
	for _, order := range orders {
		if err := s.rollback(ctx, order); err != nil {
			// 扫描到的快照是旧的, 订单在此期间被支付回调结算, 跳过
			if errors.Is(err, ErrInvalidOrderStatus) {
				s.logger.Warn("超时订单已被并发推进, 跳过",
					elog.String("order_sn", order.SN))
				continue
			}
			return fmt.Errorf("回滚超时订单失败: order_sn = %s: %w", order.SN, err)
		}
	}
	return nil
}
