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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
)

var (
	ErrOrderNotFound       = dao.ErrOrderNotFound
	ErrInvalidStatusChange = dao.ErrInvalidStatusChange
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/order.mock.go OrderRepository
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, error)
	TotalOrders(ctx context.Context, uid int64) (int64, error)
	UpdateOrderStatus(ctx context.Context, oid int64, from, to domain.OrderStatus) error
	MarkOrderPaid(ctx context.Context, oid int64, carrier, trackingNumber string) error
	UpdateOrderItemBatchCode(ctx context.Context, itemID int64, batchCode string) error
	DeleteOrderItems(ctx context.Context, oid int64) error
	ListExpiredPendingOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error)
	TotalExpiredPendingOrders(ctx context.Context, ctime int64) (int64, error)
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.d.CreateOrder(ctx, o.toOrderEntity(order), o.toOrderItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	// 回查订单项拿到自增ID, 后续FIFO分配以订单项ID作幂等键
	items, err := o.d.FindOrderItemsByOrderID(ctx, oid)
	if err != nil {
		return domain.Order{}, fmt.Errorf("回查订单项失败: %w", err)
	}
	order.Items = o.toOrderItemDomains(items)
	return order, nil
}

func (o *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.d.FindOrderItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单序列号及买家ID查找订单失败: %w", err)
	}
	items, err := o.d.FindOrderItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单ID查找订单项失败: %w", err)
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) ListOrders(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, error) {
	os, err := o.d.List(ctx, offset, limit, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		items, er := o.d.FindOrderItemsByOrderID(ctx, src.Id)
		if er != nil {
			return domain.Order{}
		}
		return o.toOrderDomain(src, items)
	}), err
}

func (o *orderRepository) TotalOrders(ctx context.Context, uid int64) (int64, error) {
	return o.d.Count(ctx, uid)
}

func (o *orderRepository) UpdateOrderStatus(ctx context.Context, oid int64, from, to domain.OrderStatus) error {
	return o.d.UpdateOrderStatus(ctx, oid, from.ToUint8(), to.ToUint8())
}

func (o *orderRepository) MarkOrderPaid(ctx context.Context, oid int64, carrier, trackingNumber string) error {
	return o.d.MarkOrderPaid(ctx, oid, carrier, trackingNumber)
}

func (o *orderRepository) UpdateOrderItemBatchCode(ctx context.Context, itemID int64, batchCode string) error {
	return o.d.UpdateOrderItemBatchCode(ctx, itemID, batchCode)
}

func (o *orderRepository) DeleteOrderItems(ctx context.Context, oid int64) error {
	return o.d.DeleteOrderItems(ctx, oid)
}

func (o *orderRepository) ListExpiredPendingOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error) {
	os, err := o.d.ListExpiredPendingOrders(ctx, offset, limit, ctime)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		items, er := o.d.FindOrderItemsByOrderID(ctx, src.Id)
		if er != nil {
			return domain.Order{}
		}
		return o.toOrderDomain(src, items)
	}), nil
}

func (o *orderRepository) TotalExpiredPendingOrders(ctx context.Context, ctime int64) (int64, error) {
	return o.d.CountExpiredPendingOrders(ctx, ctime)
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:             order.ID,
		SN:             order.SN,
		BuyerId:        order.BuyerID,
		Channel:        order.Channel,
		SubtotalAmount: order.SubtotalAmount,
		ShippingFee:    order.ShippingFee,
		TotalAmount:    order.TotalAmount,
		ReceiverName:   order.Receiver.Name,
		ReceiverPhone:  order.Receiver.Phone,
		Province:       order.Address.Province,
		City:           order.Address.City,
		Detail:         order.Address.Detail,
		Zip:            order.Address.Zip,
		Carrier:        order.Carrier,
		TrackingNumber: order.TrackingNumber,
		Status:         order.Status.ToUint8(),
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			SPUId:     src.SPUID,
			SKUId:     src.SKUID,
			SKUSN:     src.SKUSN,
			SKUName:   src.SKUName,
			Price:     src.Price,
			Quantity:  src.Quantity,
			BatchCode: src.BatchCode,
		}
	})
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:             order.Id,
		SN:             order.SN,
		BuyerID:        order.BuyerId,
		Channel:        order.Channel,
		SubtotalAmount: order.SubtotalAmount,
		ShippingFee:    order.ShippingFee,
		TotalAmount:    order.TotalAmount,
		Receiver: domain.Receiver{
			Name:  order.ReceiverName,
			Phone: order.ReceiverPhone,
		},
		Address: domain.Address{
			Province: order.Province,
			City:     order.City,
			Detail:   order.Detail,
			Zip:      order.Zip,
		},
		Carrier:        order.Carrier,
		TrackingNumber: order.TrackingNumber,
		Status:         domain.OrderStatus(order.Status),
		Items:          o.toOrderItemDomains(items),
		Ctime:          order.Ctime,
		Utime:          order.Utime,
	}
}

func (o *orderRepository) toOrderItemDomains(items []dao.OrderItem) []domain.OrderItem {
	return slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
		return domain.OrderItem{
			ID:        src.Id,
			OrderID:   src.OrderId,
			SPUID:     src.SPUId,
			SKUID:     src.SKUId,
			SKUSN:     src.SKUSN,
			SKUName:   src.SKUName,
			Price:     src.Price,
			Quantity:  src.Quantity,
			BatchCode: src.BatchCode,
		}
	})
}
