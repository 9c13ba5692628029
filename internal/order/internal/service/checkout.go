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

	"github.com/ecodeclub/eshop/internal/inventory"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/payment"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/reservation"
	"github.com/ecodeclub/eshop/internal/shipping"
	"github.com/gotomicro/ego/core/elog"
)

func (s *service) Checkout(ctx context.Context, uid int64, channel payment.ChannelType,
	receiver domain.Receiver, address domain.Address) (domain.CheckoutResult, error) {
	if channel != payment.ChannelTypeCOD && channel != payment.ChannelTypeWechat {
		return domain.CheckoutResult{}, fmt.Errorf("%w: %d", ErrUnsupportedChannel, channel)
	}

	// 解析购物车并用展示库存做快速拒绝, 此时还没有任何副作用
	lines, skus, err := s.resolveCartLines(ctx, uid)
	if err != nil {
		return domain.CheckoutResult{}, err
	}

	orderSN, err := s.snGenerator.Generate(uid)
	if err != nil {
		return domain.CheckoutResult{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}

	// 原子预占全部条目, 从这里开始才有需要回滚的副作用
	if err = s.reserve(ctx, orderSN, lines, skus); err != nil {
		return domain.CheckoutResult{}, err
	}

	order, err := s.createPendingOrder(ctx, uid, orderSN, channel, receiver, address, lines)
	if err != nil {
		// 订单还没落库, 只需要归还预占
		s.releaseReservation(ctx, orderSN)
		return domain.CheckoutResult{}, err
	}

	if err = s.allocateBatches(ctx, &order); err != nil {
		if er := s.rollback(ctx, order); er != nil {
			s.logger.Error("回滚订单失败",
				elog.FieldErr(er),
				elog.String("order_sn", order.SN))
		}
		return domain.CheckoutResult{}, err
	}

	// 走到这里订单已完整成立, 购物车才可以清空。
	// 更早清空的话, 中途崩溃会让用户既没下成单又丢了购物车
	if err = s.cartSvc.ClearCart(ctx, uid); err != nil {
		s.logger.Warn("清空购物车失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
	}

	switch channel {
	case payment.ChannelTypeCOD:
		return s.checkoutCOD(ctx, order)
	default:
		return s.checkoutWechat(ctx, order)
	}
}

type checkoutLine struct {
	sku product.SKU
	qty int64
}

func (s *service) resolveCartLines(ctx context.Context, uid int64) ([]checkoutLine, map[int64]product.SKU, error) {
	c, err := s.cartSvc.GetCart(ctx, uid)
	if err != nil {
		return nil, nil, fmt.Errorf("获取购物车失败: %w", err)
	}
	if len(c.Items) == 0 {
		return nil, nil, ErrEmptyCart
	}
	lines := make([]checkoutLine, 0, len(c.Items))
	skus := make(map[int64]product.SKU, len(c.Items))
	for _, item := range c.Items {
		sku, err := s.productSvc.FindSKUBySN(ctx, item.SKUSN)
		if err != nil {
			return nil, nil, fmt.Errorf("商品SKU序列号非法: %s: %w", item.SKUSN, err)
		}
		if item.Quantity < 1 || item.Quantity > sku.Stock {
			return nil, nil, fmt.Errorf("%w: sku = %s", ErrOutOfStock, sku.SN)
		}
		lines = append(lines, checkoutLine{sku: sku, qty: item.Quantity})
		skus[sku.ID] = sku
	}
	return lines, skus, nil
}

func (s *service) reserve(ctx context.Context, orderSN string, lines []checkoutLine, skus map[int64]product.SKU) error {
	items := make([]reservation.ReservationItem, 0, len(lines))
	advertised := make(map[int64]int64, len(skus))
	for _, line := range lines {
		items = append(items, reservation.ReservationItem{
			SPUID:    line.sku.SPUID,
			SKUID:    line.sku.ID,
			Quantity: line.qty,
		})
		advertised[line.sku.ID] = line.sku.Stock
	}
	_, err := s.reservationSvc.Reserve(ctx, orderSN, items, advertised, s.reservationTTL)
	if err != nil {
		if errors.Is(err, reservation.ErrInsufficientStock) {
			return fmt.Errorf("%w: %w", ErrOutOfStock, err)
		}
		return fmt.Errorf("预占库存失败: %w", err)
	}
	return nil
}

func (s *service) createPendingOrder(ctx context.Context, uid int64, orderSN string,
	channel payment.ChannelType, receiver domain.Receiver, address domain.Address,
	lines []checkoutLine) (domain.Order, error) {
	fee, err := s.shippingSvc.CalculateFee(ctx, shipping.Address(address))
	if err != nil {
		return domain.Order{}, fmt.Errorf("计算运费失败: %w", err)
	}
	items := make([]domain.OrderItem, 0, len(lines))
	var subtotal int64
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			SPUID:    line.sku.SPUID,
			SKUID:    line.sku.ID,
			SKUSN:    line.sku.SN,
			SKUName:  line.sku.Name,
			Price:    line.sku.Price,
			Quantity: line.qty,
		})
		subtotal += line.sku.Price * line.qty
	}
	order, err := s.repo.CreateOrder(ctx, domain.Order{
		SN:             orderSN,
		BuyerID:        uid,
		Channel:        int64(channel),
		SubtotalAmount: subtotal,
		ShippingFee:    fee,
		TotalAmount:    subtotal + fee,
		Receiver:       receiver,
		Address:        address,
		Status:         domain.StatusPending,
		Items:          items,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}
	return order, nil
}

// allocateBatches 逐订单项做FIFO批次分配并回填批次号。
// 任何一项不足都视为整单失败, 由调用方回滚
func (s *service) allocateBatches(ctx context.Context, order *domain.Order) error {
	for i := range order.Items {
		item := &order.Items[i]
		alloc, err := s.inventorySvc.AllocateFIFO(ctx, item.SKUID, item.Quantity, item.ID)
		if err != nil {
			if errors.Is(err, inventory.ErrInsufficientBatchStock) {
				return fmt.Errorf("%w: sku_id = %d: %w", ErrInsufficientBatchStock, item.SKUID, err)
			}
			return fmt.Errorf("分配批次库存失败: %w", err)
		}
		if err = s.repo.UpdateOrderItemBatchCode(ctx, item.ID, alloc.BatchCode); err != nil {
			return fmt.Errorf("回填批次号失败: %w", err)
		}
		item.BatchCode = alloc.BatchCode
	}
	return nil
}

func (s *service) checkoutCOD(ctx context.Context, order domain.Order) (domain.CheckoutResult, error) {
	shipment, err := s.shippingSvc.CreateShipment(ctx, order.SN,
		shipping.Receiver(order.Receiver), shipping.Address(order.Address), order.TotalAmount)
	if err != nil {
		if er := s.rollback(ctx, order); er != nil {
			s.logger.Error("回滚订单失败",
				elog.FieldErr(er),
				elog.String("order_sn", order.SN))
		}
		return domain.CheckoutResult{}, fmt.Errorf("%w: %w", ErrShipmentCreationFailed, err)
	}
	if err = s.settle(ctx, &order, shipment); err != nil {
		return domain.CheckoutResult{}, err
	}
	return domain.CheckoutResult{Order: order}, nil
}

func (s *service) checkoutWechat(ctx context.Context, order domain.Order) (domain.CheckoutResult, error) {
	codeURL, err := s.paymentSvc.CreatePaymentURL(ctx, payment.ChannelTypeWechat,
		order.SN, s.orderDescription(order), order.TotalAmount)
	if err != nil {
		if er := s.rollback(ctx, order); er != nil {
			s.logger.Error("回滚订单失败",
				elog.FieldErr(er),
				elog.String("order_sn", order.SN))
		}
		return domain.CheckoutResult{}, fmt.Errorf("%w: %w", ErrPaymentSetupFailed, err)
	}
	// 在线支付的订单停在待支付, 等支付事件推进
	return domain.CheckoutResult{Order: order, WechatCodeURL: codeURL}, nil
}

func (s *service) orderDescription(order domain.Order) string {
	if len(order.Items) == 1 {
		return order.Items[0].SKUName
	}
	return fmt.Sprintf("%s 等%d件商品", order.Items[0].SKUName, len(order.Items))
}

// settle 确认预占转正式销售: 预占终结 + 扣减展示库存 + 订单置为已支付
func (s *service) settle(ctx context.Context, order *domain.Order, shipment shipping.Shipment) error {
	if err := s.reservationSvc.Confirm(ctx, order.SN); err != nil {
		return fmt.Errorf("确认库存预占失败: %w", err)
	}
	for _, item := range order.Items {
		if err := s.productSvc.AdjustSKUStock(ctx, item.SKUID, -item.Quantity); err != nil {
			s.logger.Error("扣减展示库存失败",
				elog.FieldErr(err),
				elog.String("order_sn", order.SN),
				elog.Int64("sku_id", item.SKUID))
		}
	}
	if err := s.repo.MarkOrderPaid(ctx, order.ID, shipment.Carrier, shipment.TrackingNumber); err != nil {
		return fmt.Errorf("更新订单为已支付失败: %w", err)
	}
	order.Status = domain.StatusPaid
	order.Carrier = shipment.Carrier
	order.TrackingNumber = shipment.TrackingNumber
	return nil
}

func (s *service) HandlePaymentConfirmed(ctx context.Context, orderSN string) error {
	order, err := s.repo.FindOrderBySN(ctx, orderSN)
	if err != nil {
		return fmt.Errorf("订单未找到: order_sn = %s: %w", orderSN, err)
	}
	if order.Status != domain.StatusPending {
		// 重复投递或迟到的事件, 什么都不做
		return nil
	}
	shipment, err := s.shippingSvc.CreateShipment(ctx, order.SN,
		shipping.Receiver(order.Receiver), shipping.Address(order.Address), 0)
	if err != nil {
		// 钱已经收了但发不出货: 归还两边库存, 订单项保留给对账用
		s.releaseReservation(ctx, order.SN)
		s.releaseAllocations(ctx, order)
		if er := s.repo.UpdateOrderStatus(ctx, order.ID,
			domain.StatusPending, domain.StatusPaymentFailed); er != nil {
			s.logger.Error("标记支付失败状态失败",
				elog.FieldErr(er),
				elog.String("order_sn", order.SN))
		}
		return fmt.Errorf("%w: %w", ErrShipmentCreationFailed, err)
	}
	return s.settle(ctx, &order, shipment)
}

func (s *service) HandlePaymentFailed(ctx context.Context, orderSN string) error {
	order, err := s.repo.FindOrderBySN(ctx, orderSN)
	if err != nil {
		return fmt.Errorf("订单未找到: order_sn = %s: %w", orderSN, err)
	}
	if order.Status != domain.StatusPending {
		return nil
	}
	if err = s.rollback(ctx, order); err != nil {
		// 读到的还是待支付但CAS输给了并发结算, 当作迟到事件忽略
		if errors.Is(err, ErrInvalidOrderStatus) {
			return nil
		}
		return err
	}
	return nil
}

// rollback 撤销一笔下单事务已经落下的全部副作用。
// 先用状态CAS把订单抢成已取消, 抢不到说明订单已被并发推进
// (典型场景是支付回调正在发货), 此时绝不能再动它的库存。
// 抢到之后每个子步骤都幂等, 可以在部分生效的状态上反复调用
func (s *service) rollback(ctx context.Context, order domain.Order) error {
	err := s.repo.UpdateOrderStatus(ctx, order.ID, domain.StatusPending, domain.StatusCancelled)
	if err != nil {
		if !errors.Is(err, repository.ErrInvalidStatusChange) {
			return fmt.Errorf("取消订单失败: %w", err)
		}
		// CAS失败再读一次: 已取消说明是上次回滚中断后的重试, 继续补偿;
		// 其余状态说明订单刚被并发结算, 库存归属已经易主
		cur, ferr := s.repo.FindOrderBySN(ctx, order.SN)
		if ferr != nil {
			return fmt.Errorf("查找订单失败: %w", ferr)
		}
		if cur.Status != domain.StatusCancelled {
			return fmt.Errorf("%w: order_sn = %s, 当前状态 %d",
				ErrInvalidOrderStatus, order.SN, cur.Status.ToUint8())
		}
	}
	s.releaseReservation(ctx, order.SN)
	s.releaseAllocations(ctx, order)
	if err := s.repo.DeleteOrderItems(ctx, order.ID); err != nil {
		return fmt.Errorf("删除订单项失败: %w", err)
	}
	return nil
}

func (s *service) releaseReservation(ctx context.Context, orderSN string) {
	err := s.reservationSvc.Release(ctx, orderSN)
	if err != nil && !errors.Is(err, reservation.ErrReservationNotFound) {
		s.logger.Error("释放库存预占失败",
			elog.FieldErr(err),
			elog.String("order_sn", orderSN))
	}
}

func (s *service) releaseAllocations(ctx context.Context, order domain.Order) {
	for _, item := range order.Items {
		if err := s.inventorySvc.Release(ctx, item.ID); err != nil {
			s.logger.Error("释放批次分配失败",
				elog.FieldErr(err),
				elog.Int64("order_item_id", item.ID),
				elog.String("order_sn", order.SN))
		}
	}
}
